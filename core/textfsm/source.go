package textfsm

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"netcollector/core/storage"

	"github.com/minio/minio-go/v7"
)

// Source opens templates by name.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// DirSource reads templates from a local directory.
type DirSource struct {
	Dir string
}

// Open opens Dir/name. Names escaping the directory are rejected.
func (s DirSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if !filepath.IsLocal(name) {
		return nil, fmt.Errorf("invalid template name %q", name)
	}
	return os.Open(filepath.Join(s.Dir, name))
}

// BucketSource reads templates from an object storage bucket.
type BucketSource struct {
	Client storage.Client
	Bucket string
	Prefix string
}

// Open fetches Prefix/name from the bucket.
func (s BucketSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if !filepath.IsLocal(name) {
		return nil, fmt.Errorf("invalid template name %q", name)
	}
	return s.Client.GetObject(ctx, s.Bucket, path.Join(s.Prefix, name), minio.GetObjectOptions{})
}
