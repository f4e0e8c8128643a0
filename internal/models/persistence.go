package models

// Blob keys used by the persistence layer. Each key is an independent
// failure domain: a corrupt films blob never touches the search log.
const (
	BlobKeyFilms          = "films"
	BlobKeyRecentSearches = "recent-searches"
)

// CatalogBlob is the persisted form of the film catalog: the full ordered
// sequence, newest-first. CreatedAt round-trips as RFC 3339 through the
// Film JSON tags.
type CatalogBlob struct {
	Films []*Film `json:"films"`
}

// SearchLogBlob is the persisted form of the recent-search log,
// most-recent-first.
type SearchLogBlob struct {
	Queries []string `json:"queries"`
}
