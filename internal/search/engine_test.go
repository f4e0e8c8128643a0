package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fcd/internal/models"
)

func film(id, title string) *models.Film {
	return &models.Film{ID: id, Title: title, Director: "Director", IDNumber: "N" + id}
}

func titles(films []*models.Film) []string {
	out := make([]string, len(films))
	for i, f := range films {
		out[i] = f.Title
	}
	return out
}

func TestSearch_EmptyQueryReturnsNothing(t *testing.T) {
	catalog := []*models.Film{film("a", "Inception")}

	assert.Empty(t, Search(catalog, "", SortNone))
	assert.Empty(t, Search(catalog, "   ", SortNone))
	assert.Empty(t, Search(catalog, "\t\n", SortNone))
}

func TestSearch_CaseInsensitive(t *testing.T) {
	catalog := []*models.Film{film("a", "Inception")}

	assert.Len(t, Search(catalog, "inception", SortNone), 1)
	assert.Len(t, Search(catalog, "INCEPTION", SortNone), 1)
	assert.Len(t, Search(catalog, "cEpTi", SortNone), 1)
}

func TestSearch_TrimsQuery(t *testing.T) {
	catalog := []*models.Film{film("a", "Inception")}
	assert.Len(t, Search(catalog, "  inception  ", SortNone), 1)
}

func TestSearch_SubstringNotToken(t *testing.T) {
	catalog := []*models.Film{film("a", "Inception")}
	assert.Len(t, Search(catalog, "ncep", SortNone), 1)
	assert.Empty(t, Search(catalog, "inceptionx", SortNone))
}

func TestSearch_AllFieldsCovered(t *testing.T) {
	f := &models.Film{
		ID:       "a",
		Title:    "Heat",
		Director: "Michael Mann",
		IDNumber: "H-42",
		Year:     "1995",
		Producer: "Art Linson",
		Actors:   []string{"Al Pacino", "Robert De Niro"},
		Genre:    []string{"crime"},
		Tags:     []string{"noir", "classic"},
	}
	catalog := []*models.Film{f}

	for _, q := range []string{"heat", "mann", "h-42", "1995", "linson", "de niro", "crime", "noir"} {
		assert.Len(t, Search(catalog, q, SortNone), 1, "query %q", q)
	}
}

func TestSearch_TagOnlyMatch(t *testing.T) {
	f := film("a", "Heat")
	f.Tags = []string{"noir", "classic"}
	catalog := []*models.Film{f, film("b", "Other")}

	results := Search(catalog, "noir", SortNone)
	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0].ID)
}

func TestSearch_StableCatalogOrderWithoutSort(t *testing.T) {
	catalog := []*models.Film{film("a", "Zulu"), film("b", "Alpha"), film("c", "Zulu Redux")}

	results := Search(catalog, "n", SortNone) // matches "Director" in all
	assert.Equal(t, []string{"Zulu", "Alpha", "Zulu Redux"}, titles(results))
}

func TestSearch_NoMatch(t *testing.T) {
	catalog := []*models.Film{film("a", "Inception")}
	assert.Empty(t, Search(catalog, "tarkovsky", SortNone))
}

func TestSort_Alphabetical(t *testing.T) {
	films := []*models.Film{film("a", "Zulu"), film("b", "Alpha"), film("c", "Mango")}
	Sort(films, SortAlphabetical)
	assert.Equal(t, []string{"Alpha", "Mango", "Zulu"}, titles(films))
}

func TestSort_Director(t *testing.T) {
	a := film("a", "A")
	a.Director = "Villeneuve"
	b := film("b", "B")
	b.Director = "Anderson"
	films := []*models.Film{a, b}

	Sort(films, SortDirector)
	assert.Equal(t, []string{"B", "A"}, titles(films))
}

func TestSort_YearMissingSortsLast(t *testing.T) {
	y2001 := film("a", "A")
	y2001.Year = "2001"
	noYear := film("b", "B")
	y1990 := film("c", "C")
	y1990.Year = "1990"
	films := []*models.Film{y2001, noYear, y1990}

	Sort(films, SortYear)

	require.Len(t, films, 3)
	assert.Equal(t, "1990", films[0].Year)
	assert.Equal(t, "2001", films[1].Year)
	assert.Equal(t, "", films[2].Year)
}

func TestSort_ActorUsesFirstElement(t *testing.T) {
	a := film("a", "A")
	a.Actors = []string{"Zeta", "Aaron"}
	b := film("b", "B")
	b.Actors = []string{"Bale"}
	c := film("c", "C") // no actors: empty key sorts first
	films := []*models.Film{a, b, c}

	Sort(films, SortActor)
	assert.Equal(t, []string{"C", "B", "A"}, titles(films))
}

func TestSort_ProducerEmptyFirst(t *testing.T) {
	a := film("a", "A")
	a.Producer = "Selznick"
	b := film("b", "B")
	films := []*models.Film{a, b}

	Sort(films, SortProducer)
	assert.Equal(t, []string{"B", "A"}, titles(films))
}

func TestSort_GenreAndTags(t *testing.T) {
	a := film("a", "A")
	a.Genre = []string{"western"}
	a.Tags = []string{"b-tag"}
	b := film("b", "B")
	b.Genre = []string{"drama"}
	b.Tags = []string{"a-tag"}
	films := []*models.Film{a, b}

	Sort(films, SortGenre)
	assert.Equal(t, []string{"B", "A"}, titles(films))

	Sort(films, SortTags)
	assert.Equal(t, []string{"B", "A"}, titles(films))
}

func TestSort_Number(t *testing.T) {
	a := film("a", "A")
	a.IDNumber = "B2"
	b := film("b", "B")
	b.IDNumber = "A1"
	films := []*models.Film{a, b}

	Sort(films, SortNumber)
	assert.Equal(t, []string{"B", "A"}, titles(films))
}

func TestSearch_WithSortOption(t *testing.T) {
	catalog := []*models.Film{film("a", "Zulu"), film("b", "Alpha")}

	results := Search(catalog, "n", SortAlphabetical) // both match via Director
	assert.Equal(t, []string{"Alpha", "Zulu"}, titles(results))
}

func TestSearch_DoesNotMutateInput(t *testing.T) {
	catalog := []*models.Film{film("a", "Zulu"), film("b", "Alpha")}

	_ = Search(catalog, "n", SortAlphabetical)

	assert.Equal(t, "a", catalog[0].ID)
	assert.Equal(t, "b", catalog[1].ID)
}

func TestParseSortOption(t *testing.T) {
	for _, valid := range []string{"", "alphabetical", "director", "actor", "producer", "number", "genre", "year", "tags"} {
		_, ok := ParseSortOption(valid)
		assert.True(t, ok, "option %q", valid)
	}

	_, ok := ParseSortOption("bogus")
	assert.False(t, ok)
}
