package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"

	"github.com/ikl-data/loanpipe/lib/config"
	"github.com/ikl-data/loanpipe/lib/retry"
)

type Client struct {
	client *storage.Client
	bucket string
}

func LoadClient(ctx context.Context, cfg config.GCS) (*Client, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("gcs bucket is not configured")
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start storage client: %w", err)
	}

	return &Client{client: client, bucket: cfg.Bucket}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

func (c *Client) ObjectURI(objectName string) string {
	return fmt.Sprintf("gs://%s/%s", c.bucket, objectName)
}

// EnsureBucket creates the bucket with an age-based deletion lifecycle rule,
// or patches the rule onto an existing bucket that lacks one.
func (c *Client) EnsureBucket(ctx context.Context, projectID string, ttlDays int64) error {
	lifecycle := storage.Lifecycle{
		Rules: []storage.LifecycleRule{
			{
				Action:    storage.LifecycleAction{Type: storage.DeleteAction},
				Condition: storage.LifecycleCondition{AgeInDays: ttlDays},
			},
		},
	}

	handle := c.client.Bucket(c.bucket)
	attrs, err := handle.Attrs(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrBucketNotExist) {
			return fmt.Errorf("failed to look up bucket %q: %w", c.bucket, err)
		}

		if err = handle.Create(ctx, projectID, &storage.BucketAttrs{Lifecycle: lifecycle}); err != nil {
			return fmt.Errorf("failed to create bucket %q: %w", c.bucket, err)
		}

		slog.Info("Created bucket", slog.String("bucket", c.bucket), slog.Int64("ttlDays", ttlDays))
		return nil
	}

	for _, rule := range attrs.Lifecycle.Rules {
		if rule.Action.Type == storage.DeleteAction && rule.Condition.AgeInDays == ttlDays {
			slog.Info("Bucket already exists", slog.String("bucket", c.bucket))
			return nil
		}
	}

	if _, err = handle.Update(ctx, storage.BucketAttrsToUpdate{Lifecycle: &lifecycle}); err != nil {
		return fmt.Errorf("failed to update lifecycle on bucket %q: %w", c.bucket, err)
	}

	slog.Info("Updated bucket lifecycle", slog.String("bucket", c.bucket), slog.Int64("ttlDays", ttlDays))
	return nil
}

// NewWriter opens a streaming writer for the object. The object becomes
// visible once the writer is closed without error.
func (c *Client) NewWriter(ctx context.Context, objectName string) io.WriteCloser {
	return c.client.Bucket(c.bucket).Object(objectName).NewWriter(ctx)
}

// Upload copies the reader into the object, retrying transient failures. The
// reader must be seekable back to the start for retries, so we take the whole
// payload up front.
func (c *Client) Upload(ctx context.Context, objectName string, payload []byte) error {
	retryCfg := retry.NewRetryConfig(retry.NewRetryConfigArgs{
		JitterBaseMs:   1000,
		JitterMaxMs:    10000,
		MaxAttempts:    3,
		IsRetryableErr: isRetryableError,
	})

	return retryCfg.WithRetries(func(_ int, _ error) error {
		writer := c.NewWriter(ctx, objectName)
		if _, err := writer.Write(payload); err != nil {
			_ = writer.Close()
			return err
		}

		return writer.Close()
	})
}

func isRetryableError(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusTooManyRequests:
			return true
		default:
			return false
		}
	}

	// Transport-level errors are worth another attempt.
	return err != nil
}
