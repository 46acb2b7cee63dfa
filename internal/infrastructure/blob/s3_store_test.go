package blob

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakeS3 struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, f.err
}

type fakePresigner struct {
	expires time.Duration
	key     string
}

func (f *fakePresigner) PresignGetObject(_ context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*PresignedRequest, error) {
	opts := &s3.PresignOptions{}
	for _, fn := range optFns {
		fn(opts)
	}
	f.expires = opts.Expires
	f.key = aws.ToString(in.Key)
	return &PresignedRequest{URL: "https://bucket.local/" + f.key}, nil
}

func TestS3Store_Put(t *testing.T) {
	ctx := context.Background()

	t.Run("uploads bytes with content type", func(t *testing.T) {
		client := &fakeS3{}
		store := newS3Store(client, &fakePresigner{}, "exports")

		if err := store.Put(ctx, "estimates/e-1/x.xlsx", []byte("data"), "application/test"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if aws.ToString(client.input.Bucket) != "exports" || aws.ToString(client.input.Key) != "estimates/e-1/x.xlsx" {
			t.Fatalf("unexpected input: %+v", client.input)
		}
		if aws.ToString(client.input.ContentType) != "application/test" || string(client.body) != "data" {
			t.Fatalf("unexpected payload %q %q", aws.ToString(client.input.ContentType), client.body)
		}
	})

	t.Run("wraps client errors", func(t *testing.T) {
		cause := errors.New("access denied")
		store := newS3Store(&fakeS3{err: cause}, &fakePresigner{}, "exports")
		if err := store.Put(ctx, "k", nil, ""); !errors.Is(err, cause) {
			t.Fatalf("expected wrapped cause, got %v", err)
		}
	})
}

func TestS3Store_PresignGetURL(t *testing.T) {
	ctx := context.Background()
	p := &fakePresigner{}
	store := newS3Store(&fakeS3{}, p, "exports")

	url, err := store.PresignGetURL(ctx, "k1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://bucket.local/k1" || p.expires != 15*time.Minute {
		t.Fatalf("unexpected presign %q ttl=%v", url, p.expires)
	}

	if _, err := store.PresignGetURL(ctx, "k2", time.Minute); err != nil || p.expires != time.Minute {
		t.Fatalf("expected ttl to be forwarded, got %v %v", p.expires, err)
	}
}

func TestNewS3Store_RequiresBucket(t *testing.T) {
	if _, err := NewS3Store(aws.Config{}, Config{}); err == nil {
		t.Fatalf("expected error for empty bucket")
	}
}
