package entities

import "time"

// EstimateExport records a rendered workbook of an estimate.
//
// Storage model:
//   - blob: object store key ObjectKey (S3)
//   - registry (DynamoDB): PK id, GSI estimate_id-index on estimate_id
//
// DownloadURL is not persisted; it is presigned on read.
type EstimateExport struct {
	ID          string    `json:"id"`
	EstimateID  string    `json:"estimate_id"`
	ObjectKey   string    `json:"object_key"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
	DownloadURL string    `json:"download_url,omitempty"`
}
