package backup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// ErrNotConfigured means the bucket or credentials are missing. Callers
// should tell the user how to fix it and point at the local Excel export
// as the fallback, not fail silently.
var ErrNotConfigured = errors.New("cloud backup is not configured: set GCS_BUCKET and GCS_CREDENTIALS_FILE")

const initRetryDelay = 3 * time.Second

// Client uploads state backups to a Google Cloud Storage bucket. The
// storage client is created lazily on first upload; if creation fails it
// is retried once after a fixed delay before giving up.
type Client struct {
	bucket    string
	credsFile string

	mu sync.Mutex
	sc *storage.Client
}

func NewClient(bucket, credsFile string) *Client {
	return &Client{bucket: bucket, credsFile: credsFile}
}

// Configured reports whether a bucket and a readable credentials file
// were provided.
func (c *Client) Configured() bool {
	if c.bucket == "" || c.credsFile == "" {
		return false
	}
	_, err := os.Stat(c.credsFile)
	return err == nil
}

func (c *Client) ensureClient(ctx context.Context) (*storage.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sc != nil {
		return c.sc, nil
	}

	sc, err := storage.NewClient(ctx, option.WithCredentialsFile(c.credsFile))
	if err != nil {
		time.Sleep(initRetryDelay)
		sc, err = storage.NewClient(ctx, option.WithCredentialsFile(c.credsFile))
		if err != nil {
			return nil, fmt.Errorf("create storage client: %w", err)
		}
	}

	c.sc = sc
	return sc, nil
}

// Upload writes data to the bucket under name. Concurrent uploads are
// not coalesced; two callers produce two objects (or two writes of the
// same object).
func (c *Client) Upload(ctx context.Context, name string, data []byte) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	sc, err := c.ensureClient(ctx)
	if err != nil {
		return err
	}

	w := sc.Bucket(c.bucket).Object(name).NewWriter(ctx)
	w.ContentType = "application/json"
	if _, err := w.Write(data); err != nil {
		// Close releases the upload handle; the write error is the one
		// worth reporting.
		_ = w.Close()
		return fmt.Errorf("write object %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close object %s: %w", name, err)
	}
	return nil
}
