package mockserver

import (
	"context"
	"errors"
	"testing"

	"badger-probe/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSeedBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("CreatesBucketAndUploads", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "fixtures-bucket").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "fixtures-bucket", mock.Anything).Return(nil)
		for _, name := range FixtureNames() {
			client.On("PutObject", mock.Anything, "fixtures-bucket", "fixtures/"+name, mock.Anything, mock.Anything,
				mock.MatchedBy(func(opts minio.PutObjectOptions) bool { return opts.ContentType == "application/json" })).
				Return(minio.UploadInfo{Key: "fixtures/" + name}, nil).Once()
		}

		n, err := SeedBucket(ctx, client, "fixtures-bucket", "fixtures/", zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, len(FixtureNames()), n)
		client.AssertExpectations(t)
	})

	t.Run("ExistingBucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "fixtures-bucket").Return(true, nil)
		client.On("PutObject", mock.Anything, "fixtures-bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil)

		n, err := SeedBucket(ctx, client, "fixtures-bucket", "", zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, len(FixtureNames()), n)
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UploadFailure", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "fixtures-bucket").Return(true, nil)
		client.On("PutObject", mock.Anything, "fixtures-bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("access denied"))

		n, err := SeedBucket(ctx, client, "fixtures-bucket", "", zap.NewNop())
		require.Error(t, err)
		assert.Zero(t, n)
		assert.Contains(t, err.Error(), "access denied")
	})

	t.Run("BucketCheckFailure", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "fixtures-bucket").Return(false, errors.New("unreachable"))

		_, err := SeedBucket(ctx, client, "fixtures-bucket", "", zap.NewNop())
		assert.Error(t, err)
	})
}

func TestUpsertFixtures(t *testing.T) {
	db, sqlMock := newMockDB(t)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec("INSERT INTO `mock_fixtures`.*ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(0, 2))
	sqlMock.ExpectCommit()

	err := upsertFixtures(context.Background(), db, []Fixture{
		{Name: FixtureProfile, Body: `{}`},
		{Name: FixtureRoutes, Body: `[]`},
	})
	require.NoError(t, err)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestSeedDatabase_MigrationFailure(t *testing.T) {
	db, _ := newMockDB(t)

	// No expectations: the first statement issued by the migrator fails.
	n, err := SeedDatabase(context.Background(), db, zap.NewNop())
	require.Error(t, err)
	assert.Zero(t, n)
	assert.Contains(t, err.Error(), "failed to migrate fixtures table")
}
