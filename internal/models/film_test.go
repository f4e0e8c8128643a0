package models

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilmPatch_ApplyOnlyNamedFields(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	f := &Film{
		ID:        "a",
		Title:     "Arrival",
		Director:  "Denis Villeneuve",
		IDNumber:  "A1",
		Year:      "2016",
		CreatedAt: created,
	}

	year := "2017"
	(&FilmPatch{Year: &year}).Apply(f)

	assert.Equal(t, "2017", f.Year)
	assert.Equal(t, "Arrival", f.Title)
	assert.Equal(t, "a", f.ID)
	assert.Equal(t, created, f.CreatedAt)
}

func TestFilmPatch_SetToEmpty(t *testing.T) {
	f := &Film{ID: "a", Title: "T", Producer: "Someone"}

	empty := ""
	(&FilmPatch{Producer: &empty}).Apply(f)

	assert.Equal(t, "", f.Producer)
}

func TestFilmPatch_SliceCopied(t *testing.T) {
	f := &Film{ID: "a", Title: "T"}

	tags := []string{"noir"}
	(&FilmPatch{Tags: &tags}).Apply(f)
	tags[0] = "mutated"

	assert.Equal(t, []string{"noir"}, f.Tags)
}

func TestFilm_JSONRoundTrip(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)
	f := &Film{
		ID:        "a",
		Title:     "Arrival",
		Director:  "Denis Villeneuve",
		IDNumber:  "A1",
		Year:      "2016",
		Actors:    []string{"Amy Adams", "Jeremy Renner"},
		Genre:     []string{"sci-fi"},
		Tags:      []string{"first contact"},
		CreatedAt: created,
	}

	data, err := json.Marshal(f)
	require.NoError(t, err)

	var got Film
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, f.ID, got.ID)
	assert.Equal(t, f.Title, got.Title)
	assert.Equal(t, f.Actors, got.Actors)
	assert.True(t, f.CreatedAt.Equal(got.CreatedAt))
}

func TestFilm_OptionalFieldsOmitted(t *testing.T) {
	f := &Film{ID: "a", Title: "T", Director: "D", IDNumber: "1"}

	data, err := json.Marshal(f)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "year")
	assert.NotContains(t, string(data), "producer")
	assert.NotContains(t, string(data), "tags")
}

func TestFilm_CloneIndependence(t *testing.T) {
	f := &Film{ID: "a", Title: "T", Actors: []string{"X"}}

	c := f.Clone()
	c.Actors[0] = "mutated"
	c.Title = "mutated"

	assert.Equal(t, "T", f.Title)
	assert.Equal(t, []string{"X"}, f.Actors)
}
