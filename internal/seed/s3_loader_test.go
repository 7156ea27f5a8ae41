package seed

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"testing"

	"product-catalog/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLoader is a mock implementation of the Loader interface for testing.
type mockLoader struct {
	loadFunc func(ctx context.Context, filePath string) ([]model.ProductInput, error)
}

func (m *mockLoader) Load(ctx context.Context, filePath string) ([]model.ProductInput, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx, filePath)
	}
	return nil, errors.New("not implemented")
}

// fakeObjectGetter serves a fixed body for one key.
type fakeObjectGetter struct {
	key  string
	body []byte
	err  error
}

func (f *fakeObjectGetter) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	if aws.ToString(params.Key) != f.key {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(f.body))}, nil
}

func gzipBytes(t *testing.T, content string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestS3Loader_Load(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		getter      *fakeObjectGetter
		key         string
		expectError bool
		expectCount int
	}{
		{
			name:        "Plain object",
			getter:      &fakeObjectGetter{key: "seed/catalog.json", body: []byte(testCatalog)},
			key:         "seed/catalog.json",
			expectCount: 2,
		},
		{
			name:        "Gzipped object",
			getter:      &fakeObjectGetter{key: "seed/catalog.json.gz", body: gzipBytes(t, testCatalog)},
			key:         "seed/catalog.json.gz",
			expectCount: 2,
		},
		{
			name:        "Missing key",
			getter:      &fakeObjectGetter{key: "seed/catalog.json", body: []byte(testCatalog)},
			key:         "seed/other.json",
			expectError: true,
		},
		{
			name:        "S3 error",
			getter:      &fakeObjectGetter{err: errors.New("access denied")},
			key:         "seed/catalog.json",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := newS3Loader(tt.getter, "catalog-bucket", zerolog.Nop())

			records, err := loader.Load(ctx, tt.key)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "catalog-bucket")
				return
			}
			require.NoError(t, err)
			assert.Len(t, records, tt.expectCount)
		})
	}
}

func TestFallbackLoader_S3Success(t *testing.T) {
	ctx := context.Background()

	s3Records := []model.ProductInput{{Name: "From S3", Description: "x", Price: model.NewPriceInput("1")}}
	s3Loader := &mockLoader{
		loadFunc: func(ctx context.Context, filePath string) ([]model.ProductInput, error) {
			assert.Equal(t, "seed/catalog.json", filePath, "S3 key should have prefix")
			return s3Records, nil
		},
	}

	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, filePath string) ([]model.ProductInput, error) {
			t.Error("file loader should not be called when S3 succeeds")
			return nil, errors.New("should not be called")
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, "seed/", zerolog.Nop())

	records, err := fallback.Load(ctx, "catalog.json")
	require.NoError(t, err)
	assert.Equal(t, s3Records, records)
}

func TestFallbackLoader_S3FailsFallsBackToLocal(t *testing.T) {
	ctx := context.Background()

	s3Loader := &mockLoader{
		loadFunc: func(ctx context.Context, filePath string) ([]model.ProductInput, error) {
			return nil, errors.New("S3 connection failed")
		},
	}

	localRecords := []model.ProductInput{{Name: "From disk", Description: "x", Price: model.NewPriceInput("1")}}
	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, filePath string) ([]model.ProductInput, error) {
			assert.Equal(t, "catalog.json", filePath, "local file path should not have prefix")
			return localRecords, nil
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, "seed/", zerolog.Nop())

	records, err := fallback.Load(ctx, "catalog.json")
	require.NoError(t, err)
	assert.Equal(t, localRecords, records)
}

func TestFallbackLoader_NoS3Loader(t *testing.T) {
	ctx := context.Background()

	fileCalled := false
	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, filePath string) ([]model.ProductInput, error) {
			fileCalled = true
			return []model.ProductInput{}, nil
		},
	}

	fallback := NewFallbackLoader(nil, fileLoader, "seed/", zerolog.Nop())

	_, err := fallback.Load(ctx, "catalog.json")
	require.NoError(t, err)
	assert.True(t, fileCalled)
}

func TestFallbackLoader_BothFail(t *testing.T) {
	ctx := context.Background()

	s3Loader := &mockLoader{}
	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, filePath string) ([]model.ProductInput, error) {
			return nil, errors.New("local file not found")
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, "seed/", zerolog.Nop())

	_, err := fallback.Load(ctx, "catalog.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "local file not found")
}
