package mockserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"badger-probe/core/storage"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"
)

// Source reads fixture bodies by file name.
type Source interface {
	// Name identifies the source in logs.
	Name() string
	// Read returns the raw fixture. Absent fixtures yield an error wrapping ErrFixtureNotFound.
	Read(ctx context.Context, name string) ([]byte, error)
}

// EmbeddedSource serves the fixtures compiled into the binary.
type EmbeddedSource struct{}

// NewEmbeddedSource creates a source backed by the bundled fixtures.
func NewEmbeddedSource() *EmbeddedSource {
	return &EmbeddedSource{}
}

func (s *EmbeddedSource) Name() string { return "embedded" }

func (s *EmbeddedSource) Read(_ context.Context, name string) ([]byte, error) {
	data, err := fs.ReadFile(embedded, "fixtures/"+name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFixtureNotFound, name)
	}
	return data, err
}

// DirSource reads fixtures from a local directory on every call, so edits show up without a restart.
type DirSource struct {
	dir string
}

// NewDirSource creates a source reading from dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

func (s *DirSource) Name() string { return "dir:" + s.dir }

func (s *DirSource) Read(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFixtureNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", name, err)
	}
	return data, nil
}

// BucketSource reads fixtures from an object storage bucket under a key prefix.
type BucketSource struct {
	client storage.Client
	bucket string
	prefix string
}

// NewBucketSource creates a source reading objects named prefix+fixture from bucket.
func NewBucketSource(client storage.Client, bucket, prefix string) *BucketSource {
	return &BucketSource{client: client, bucket: bucket, prefix: prefix}
}

func (s *BucketSource) Name() string { return "bucket:" + s.bucket }

func (s *BucketSource) Read(ctx context.Context, name string) ([]byte, error) {
	key := s.prefix + name
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, bucketError(key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, bucketError(key, err)
	}
	return data, nil
}

func bucketError(key string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%w: %s", ErrFixtureNotFound, key)
	}
	return fmt.Errorf("failed to get object %s: %w", key, err)
}

// DatabaseSource reads fixtures from the mock_fixtures table.
type DatabaseSource struct {
	db *gorm.DB
}

// NewDatabaseSource creates a source backed by db.
func NewDatabaseSource(db *gorm.DB) *DatabaseSource {
	return &DatabaseSource{db: db}
}

func (s *DatabaseSource) Name() string { return "database" }

func (s *DatabaseSource) Read(ctx context.Context, name string) ([]byte, error) {
	var f Fixture
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrFixtureNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query fixture %s: %w", name, err)
	}
	return []byte(f.Body), nil
}

// Missing returns the fixtures src cannot provide. Errors other than absence abort the scan.
func Missing(ctx context.Context, src Source) ([]string, error) {
	var missing []string
	for _, name := range FixtureNames() {
		if _, err := src.Read(ctx, name); err != nil {
			if errors.Is(err, ErrFixtureNotFound) {
				missing = append(missing, name)
				continue
			}
			return nil, err
		}
	}
	return missing, nil
}
