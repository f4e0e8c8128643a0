package search

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"fcd/internal/models"
)

// SortOption selects which field-derived key orders search results.
type SortOption string

const (
	SortAlphabetical SortOption = "alphabetical"
	SortDirector     SortOption = "director"
	SortActor        SortOption = "actor"
	SortProducer     SortOption = "producer"
	SortNumber       SortOption = "number"
	SortGenre        SortOption = "genre"
	SortYear         SortOption = "year"
	SortTags         SortOption = "tags"

	// SortNone keeps the stable catalog order of the matched set.
	SortNone SortOption = ""
)

// ParseSortOption validates a raw sort value. The empty string is valid and
// means "no sorting".
func ParseSortOption(raw string) (SortOption, bool) {
	switch SortOption(raw) {
	case SortNone, SortAlphabetical, SortDirector, SortActor, SortProducer,
		SortNumber, SortGenre, SortYear, SortTags:
		return SortOption(raw), true
	}
	return SortNone, false
}

// Search filters films by case-insensitive substring containment across
// title, director, idNumber, year, producer and every element of actors,
// genre and tags. A query that trims to empty returns no results, never the
// full catalog. Matches keep their relative catalog order. When option is
// not SortNone the matched set is sorted in place.
//
// The scan is intentionally linear over the full snapshot on every call;
// the collection stays small enough that an index would not pay for itself.
func Search(films []*models.Film, query string, option SortOption) []*models.Film {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return []*models.Film{}
	}

	results := make([]*models.Film, 0)
	for _, f := range films {
		if f == nil {
			continue
		}
		if Matches(f, normalized) {
			results = append(results, f)
		}
	}

	if option != SortNone {
		Sort(results, option)
	}
	return results
}

// Matches reports whether the film contains the already-normalized
// (trimmed, lowercased) query as a substring of any searchable field.
func Matches(f *models.Film, normalized string) bool {
	if containsFold(f.Title, normalized) ||
		containsFold(f.Director, normalized) ||
		containsFold(f.IDNumber, normalized) ||
		containsFold(f.Year, normalized) ||
		containsFold(f.Producer, normalized) {
		return true
	}
	return anyContainsFold(f.Genre, normalized) ||
		anyContainsFold(f.Actors, normalized) ||
		anyContainsFold(f.Tags, normalized)
}

func containsFold(field, normalized string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(strings.ToLower(field), normalized)
}

func anyContainsFold(fields []string, normalized string) bool {
	for _, field := range fields {
		if containsFold(field, normalized) {
			return true
		}
	}
	return false
}

// Sort orders films ascending by the key the option derives. Films without
// a year sort after all films that have one; for the other optional keys the
// empty key is simply the smallest value and sorts first.
func Sort(films []*models.Film, option SortOption) {
	key := keyFunc(option)
	if key == nil {
		return
	}

	// Collators are not safe for concurrent use, so each call builds its own.
	coll := collate.New(language.Und)

	if option == SortYear {
		sort.Slice(films, func(i, j int) bool {
			a, b := films[i].Year, films[j].Year
			if a == "" {
				return false
			}
			if b == "" {
				return true
			}
			return coll.CompareString(a, b) < 0
		})
		return
	}

	sort.Slice(films, func(i, j int) bool {
		return coll.CompareString(key(films[i]), key(films[j])) < 0
	})
}

func keyFunc(option SortOption) func(*models.Film) string {
	switch option {
	case SortAlphabetical:
		return func(f *models.Film) string { return f.Title }
	case SortDirector:
		return func(f *models.Film) string { return f.Director }
	case SortNumber:
		return func(f *models.Film) string { return f.IDNumber }
	case SortYear:
		return func(f *models.Film) string { return f.Year }
	case SortActor:
		return func(f *models.Film) string { return firstOrEmpty(f.Actors) }
	case SortProducer:
		return func(f *models.Film) string { return f.Producer }
	case SortGenre:
		return func(f *models.Film) string { return firstOrEmpty(f.Genre) }
	case SortTags:
		return func(f *models.Film) string { return firstOrEmpty(f.Tags) }
	}
	return nil
}

func firstOrEmpty(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
