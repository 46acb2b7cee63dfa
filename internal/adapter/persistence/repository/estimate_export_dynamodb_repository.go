package repository

import (
	"context"
	"sort"
	"time"

	"boq_service/internal/domain/entities"
	"boq_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultExportsTableName = "estimate_exports"
	exportsEstimateIDIndex  = "estimate_id-index"
)

// DynamoAPI is the subset of the DynamoDB client used by the export registry.
type DynamoAPI interface {
	dynamodb.QueryAPIClient
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

type estimateExportItem struct {
	ID          string `dynamodbav:"id"`
	EstimateID  string `dynamodbav:"estimate_id"`
	ObjectKey   string `dynamodbav:"object_key"`
	FileName    string `dynamodbav:"file_name"`
	ContentType string `dynamodbav:"content_type"`
	SizeBytes   int64  `dynamodbav:"size_bytes"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// EstimateExportDynamoRepository persists EstimateExport records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: estimate_id-index (PK: estimate_id)
type EstimateExportDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IEstimateExportRepository = (*EstimateExportDynamoRepository)(nil)

func NewEstimateExportDynamoRepository(ddb DynamoAPI) *EstimateExportDynamoRepository {
	return &EstimateExportDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EXPORTS_TABLE", defaultExportsTableName),
	}
}

func (r *EstimateExportDynamoRepository) Create(ctx context.Context, e entities.EstimateExport) (entities.EstimateExport, error) {
	av, err := attributevalue.MarshalMap(toEstimateExportItem(e))
	if err != nil {
		return entities.EstimateExport{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.EstimateExport{}, err
	}
	e.DownloadURL = ""
	return e, nil
}

func (r *EstimateExportDynamoRepository) GetByID(ctx context.Context, id string) (entities.EstimateExport, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EstimateExport{}, err
	}
	if len(out.Item) == 0 {
		return entities.EstimateExport{}, nil
	}

	var it estimateExportItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EstimateExport{}, err
	}
	return fromEstimateExportItem(it), nil
}

// ListByEstimateID returns the exports of an estimate, newest first.
func (r *EstimateExportDynamoRepository) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.EstimateExport, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(exportsEstimateIDIndex),
		KeyConditionExpression: aws.String("estimate_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: estimateID},
		},
	})

	items := make([]entities.EstimateExport, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it estimateExportItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromEstimateExportItem(it))
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func toEstimateExportItem(e entities.EstimateExport) estimateExportItem {
	return estimateExportItem{
		ID:          e.ID,
		EstimateID:  e.EstimateID,
		ObjectKey:   e.ObjectKey,
		FileName:    e.FileName,
		ContentType: e.ContentType,
		SizeBytes:   e.SizeBytes,
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEstimateExportItem(it estimateExportItem) entities.EstimateExport {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.EstimateExport{
		ID:          it.ID,
		EstimateID:  it.EstimateID,
		ObjectKey:   it.ObjectKey,
		FileName:    it.FileName,
		ContentType: it.ContentType,
		SizeBytes:   it.SizeBytes,
		CreatedAt:   createdAt,
	}
}
