package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fcd/internal/models"
	"fcd/internal/structures"
)

func newTestFileManager(t *testing.T) *FileManager {
	t.Helper()
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)
	t.Cleanup(compressor.Close)

	conf := &structures.Config{}
	conf.Persistence.Dir = t.TempDir()
	return NewFileManager(conf, compressor)
}

func TestFileManager_SaveLoadRoundTrip(t *testing.T) {
	fm := newTestFileManager(t)

	created := time.Date(2024, 5, 2, 10, 20, 30, 0, time.UTC)
	blob := &models.CatalogBlob{Films: []*models.Film{{
		ID:        "a",
		Title:     "Arrival",
		Director:  "Denis Villeneuve",
		IDNumber:  "A1",
		Year:      "2016",
		Tags:      []string{"first contact"},
		CreatedAt: created,
	}}}

	require.NoError(t, fm.SaveBlob(models.BlobKeyFilms, blob))

	var got models.CatalogBlob
	ok, err := fm.LoadBlob(models.BlobKeyFilms, &got)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got.Films, 1)
	assert.Equal(t, "Arrival", got.Films[0].Title)
	assert.Equal(t, []string{"first contact"}, got.Films[0].Tags)
	assert.True(t, created.Equal(got.Films[0].CreatedAt))
}

func TestFileManager_MissingBlobIsNotAnError(t *testing.T) {
	fm := newTestFileManager(t)

	var got models.CatalogBlob
	ok, err := fm.LoadBlob(models.BlobKeyFilms, &got)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, got.Films)
}

func TestFileManager_CorruptBlobReturnsError(t *testing.T) {
	fm := newTestFileManager(t)

	require.NoError(t, os.WriteFile(fm.blobPath(models.BlobKeyFilms), []byte("garbage"), 0o640))

	var got models.CatalogBlob
	_, err := fm.LoadBlob(models.BlobKeyFilms, &got)
	assert.Error(t, err)
}

func TestFileManager_IndependentBlobs(t *testing.T) {
	fm := newTestFileManager(t)

	require.NoError(t, os.WriteFile(fm.blobPath(models.BlobKeyFilms), []byte("garbage"), 0o640))
	require.NoError(t, fm.SaveBlob(models.BlobKeyRecentSearches, &models.SearchLogBlob{Queries: []string{"a"}}))

	var searches models.SearchLogBlob
	ok, err := fm.LoadBlob(models.BlobKeyRecentSearches, &searches)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, searches.Queries)
}

func TestFileManager_SaveOverwritesInFull(t *testing.T) {
	fm := newTestFileManager(t)

	require.NoError(t, fm.SaveBlob(models.BlobKeyRecentSearches, &models.SearchLogBlob{Queries: []string{"a", "b"}}))
	require.NoError(t, fm.SaveBlob(models.BlobKeyRecentSearches, &models.SearchLogBlob{Queries: []string{"c"}}))

	var got models.SearchLogBlob
	ok, err := fm.LoadBlob(models.BlobKeyRecentSearches, &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"c"}, got.Queries)
}

func TestFileManager_NoTmpFileLeftBehind(t *testing.T) {
	fm := newTestFileManager(t)

	require.NoError(t, fm.SaveBlob(models.BlobKeyFilms, &models.CatalogBlob{}))

	entries, err := os.ReadDir(fm.dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp")
	}
}

func TestFileManager_RawBlob(t *testing.T) {
	fm := newTestFileManager(t)

	_, ok, err := fm.RawBlob(models.BlobKeyFilms)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, fm.SaveBlob(models.BlobKeyFilms, &models.CatalogBlob{}))

	data, ok, err := fm.RawBlob(models.BlobKeyFilms)
	require.NoError(t, err)
	require.True(t, ok)

	onDisk, err := os.ReadFile(filepath.Join(fm.dir, models.BlobKeyFilms+".dat"))
	require.NoError(t, err)
	assert.Equal(t, onDisk, data)
}
