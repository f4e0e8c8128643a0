package models

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFilm(id, title string) *Film {
	return &Film{
		ID:        id,
		Title:     title,
		Director:  "Director",
		IDNumber:  "N-" + id,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestAdd_HeadInsertion(t *testing.T) {
	s := NewFilmStore()
	s.Add(testFilm("a", "A"))
	s.Add(testFilm("b", "B"))

	snap := s.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "b", snap[0].ID)
	assert.Equal(t, "a", snap[1].ID)
}

func TestAdd_NilIgnored(t *testing.T) {
	s := NewFilmStore()
	s.Add(nil)
	assert.Equal(t, 0, s.Len())
}

func TestAdd_DuplicateMetadataAllowed(t *testing.T) {
	s := NewFilmStore()
	s.Add(testFilm("a", "Same Title"))
	s.Add(testFilm("b", "Same Title"))
	assert.Equal(t, 2, s.Len())
}

func TestUpdate_Partial(t *testing.T) {
	s := NewFilmStore()
	f := testFilm("a", "A")
	f.Year = "1998"
	s.Add(f)

	year := "1999"
	ok := s.Update("a", &FilmPatch{Year: &year})
	require.True(t, ok)

	got, found := s.Get("a")
	require.True(t, found)
	assert.Equal(t, "1999", got.Year)
	assert.Equal(t, "A", got.Title)
	assert.Equal(t, "a", got.ID)
	assert.Equal(t, f.CreatedAt, got.CreatedAt)
}

func TestUpdate_UnknownID(t *testing.T) {
	s := NewFilmStore()
	s.Add(testFilm("a", "A"))

	title := "Changed"
	ok := s.Update("missing", &FilmPatch{Title: &title})
	assert.False(t, ok)

	got, _ := s.Get("a")
	assert.Equal(t, "A", got.Title)
}

func TestDelete_ReturnsRemoved(t *testing.T) {
	s := NewFilmStore()
	s.Add(testFilm("a", "A"))
	s.Add(testFilm("b", "B"))

	removed, ok := s.Delete("a")
	require.True(t, ok)
	assert.Equal(t, "A", removed.Title)
	assert.Equal(t, 1, s.Len())
}

func TestDelete_UnknownIDIsNoop(t *testing.T) {
	s := NewFilmStore()
	s.Add(testFilm("a", "A"))

	_, ok := s.Delete("missing")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	s := NewFilmStore()
	f := testFilm("a", "A")
	f.Tags = []string{"noir"}
	s.Add(f)

	snap := s.Snapshot()
	snap[0].Title = "mutated"
	snap[0].Tags[0] = "mutated"

	got, _ := s.Get("a")
	assert.Equal(t, "A", got.Title)
	assert.Equal(t, []string{"noir"}, got.Tags)
}

func TestRecent_CapsAtStoreSize(t *testing.T) {
	s := NewFilmStore()
	for i := 0; i < 3; i++ {
		s.Add(testFilm(strconv.Itoa(i), "T"))
	}

	assert.Len(t, s.Recent(5), 3)
	assert.Len(t, s.Recent(2), 2)
	assert.Len(t, s.Recent(-1), 0)
}

func TestRecent_NewestFirst(t *testing.T) {
	s := NewFilmStore()
	for i := 0; i < 7; i++ {
		s.Add(testFilm(strconv.Itoa(i), "T"))
	}

	recent := s.Recent(5)
	require.Len(t, recent, 5)
	assert.Equal(t, "6", recent[0].ID)
	assert.Equal(t, "2", recent[4].ID)
}

func TestPutData_ReplacesAndSkipsNil(t *testing.T) {
	s := NewFilmStore()
	s.Add(testFilm("old", "Old"))

	s.PutData([]*Film{testFilm("a", "A"), nil, testFilm("b", "B")})

	snap := s.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "a", snap[0].ID)
	assert.Equal(t, "b", snap[1].ID)
}
