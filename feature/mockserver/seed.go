package mockserver

import (
	"bytes"
	"context"
	"fmt"

	"badger-probe/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedBucket uploads the bundled fixtures to bucket under prefix. The bucket is created when absent.
func SeedBucket(ctx context.Context, client storage.Client, bucket, prefix string, logger *zap.Logger) (int, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return 0, fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return 0, fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
		logger.Info("Created bucket", zap.String("bucket", bucket))
	}

	src := NewEmbeddedSource()
	count := 0
	for _, name := range FixtureNames() {
		data, err := src.Read(ctx, name)
		if err != nil {
			return count, err
		}
		key := prefix + name
		_, err = client.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: "application/json",
		})
		if err != nil {
			return count, fmt.Errorf("failed to upload %s: %w", key, err)
		}
		logger.Debug("Uploaded fixture", zap.String("key", key), zap.Int("size", len(data)))
		count++
	}
	return count, nil
}

// SeedDatabase creates the mock_fixtures table if needed and upserts the bundled fixtures.
func SeedDatabase(ctx context.Context, db *gorm.DB, logger *zap.Logger) (int, error) {
	if err := db.WithContext(ctx).AutoMigrate(&Fixture{}); err != nil {
		return 0, fmt.Errorf("failed to migrate fixtures table: %w", err)
	}

	src := NewEmbeddedSource()
	rows := make([]Fixture, 0, len(FixtureNames()))
	for _, name := range FixtureNames() {
		data, err := src.Read(ctx, name)
		if err != nil {
			return 0, err
		}
		rows = append(rows, Fixture{Name: name, Body: string(data)})
	}

	if err := upsertFixtures(ctx, db, rows); err != nil {
		return 0, err
	}

	logger.Debug("Seeded fixtures table", zap.Int("rows", len(rows)))
	return len(rows), nil
}

func upsertFixtures(ctx context.Context, db *gorm.DB, rows []Fixture) error {
	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to upsert fixtures: %w", err)
	}
	return nil
}
