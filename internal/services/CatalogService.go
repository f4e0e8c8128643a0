package services

import (
	"fmt"
	"strings"
	"time"

	"fcd/internal/catalog/interfaces"
	"fcd/internal/models"
	"fcd/internal/providers"
	"fcd/internal/search"
)

const recentFilmsLimit = 5

type CatalogServiceInterface interface {
	AddFilm(input *models.FilmInput) *models.Film
	UpdateFilm(id string, patch *models.FilmPatch) bool
	DeleteFilm(id string) (*models.Film, bool)
	GetFilm(id string) (*models.Film, bool)
	Films() []*models.Film
	RecentFilms() []*models.Film
	FilmCount() int
	SearchFilms(query string, option search.SortOption) []*models.Film
	AddRecentSearch(query string)
	RecentSearches() []string
	Restore() error
	PersistAll() error
}

type CatalogService struct {
	films       *models.FilmStore
	searches    *models.SearchLog
	fileManager interfaces.BlobStoreInterface
	notifier    providers.NotifierInterface
	identity    providers.IdentityProviderInterface
	clock       providers.ClockInterface
	logger      providers.Logger
	metrics     providers.MetricsProviderInterface
}

func NewCatalogService(fileManager interfaces.BlobStoreInterface, notifier providers.NotifierInterface, identity providers.IdentityProviderInterface, clock providers.ClockInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) CatalogServiceInterface {
	return &CatalogService{
		films:       models.NewFilmStore(),
		searches:    models.NewSearchLog(),
		fileManager: fileManager,
		notifier:    notifier,
		identity:    identity,
		clock:       clock,
		logger:      logger,
		metrics:     metrics,
	}
}

// AddFilm creates a film from the input, assigns it a fresh id and the
// current time, and prepends it to the catalog. Duplicate metadata is
// allowed by design. Returns a copy of the new record.
func (cs *CatalogService) AddFilm(input *models.FilmInput) *models.Film {
	film := &models.Film{
		ID:        cs.identity.NewID(),
		Title:     input.Title,
		Director:  input.Director,
		IDNumber:  input.IDNumber,
		Year:      input.Year,
		Genre:     input.Genre,
		Actors:    input.Actors,
		Producer:  input.Producer,
		Image:     input.Image,
		Tags:      input.Tags,
		CreatedAt: cs.clock.Now(),
	}

	cs.films.Add(film)
	cs.persistFilms()
	cs.notifier.Notify(providers.NotifySuccess, "Film Added",
		fmt.Sprintf("%q has been added to your library.", film.Title))

	return film.Clone()
}

// UpdateFilm merges the patch into the film matching id. An unknown id is a
// silent no-op: nothing is persisted and nothing is notified.
func (cs *CatalogService) UpdateFilm(id string, patch *models.FilmPatch) bool {
	if !cs.films.Update(id, patch) {
		return false
	}

	cs.persistFilms()
	cs.notifier.Notify(providers.NotifySuccess, "Film Updated",
		"The film has been updated successfully.")
	return true
}

// DeleteFilm removes the film matching id, returning the removed record.
// An unknown id is a silent no-op.
func (cs *CatalogService) DeleteFilm(id string) (*models.Film, bool) {
	removed, ok := cs.films.Delete(id)
	if !ok {
		return nil, false
	}

	cs.persistFilms()
	cs.notifier.Notify(providers.NotifySuccess, "Film Deleted",
		fmt.Sprintf("%q has been removed from your library.", removed.Title))
	return removed, true
}

func (cs *CatalogService) GetFilm(id string) (*models.Film, bool) {
	return cs.films.Get(id)
}

func (cs *CatalogService) Films() []*models.Film {
	return cs.films.Snapshot()
}

func (cs *CatalogService) RecentFilms() []*models.Film {
	return cs.films.Recent(recentFilmsLimit)
}

func (cs *CatalogService) FilmCount() int {
	return cs.films.Len()
}

// SearchFilms runs the pure search engine over a snapshot of the catalog.
// It never mutates catalog or search log.
func (cs *CatalogService) SearchFilms(query string, option search.SortOption) []*models.Film {
	cs.metrics.IncSearchesTotal()
	return search.Search(cs.films.Snapshot(), query, option)
}

func (cs *CatalogService) AddRecentSearch(query string) {
	if strings.TrimSpace(query) == "" {
		return
	}
	cs.searches.Add(query)
	cs.persistSearches()
}

func (cs *CatalogService) RecentSearches() []string {
	return cs.searches.Entries()
}

// Restore loads both blobs. Each blob is an independent failure domain: a
// missing or corrupt blob leaves that state empty and is only logged.
func (cs *CatalogService) Restore() error {
	var catalogBlob models.CatalogBlob
	ok, err := cs.fileManager.LoadBlob(models.BlobKeyFilms, &catalogBlob)
	if err != nil {
		cs.logger.Warnf(providers.TypeApp, "Failed to restore catalog, starting empty: %s", err)
	} else if ok {
		cs.films.PutData(catalogBlob.Films)
		cs.logger.Infof(providers.TypeApp, "Restored %d films", cs.films.Len())
	}

	var searchBlob models.SearchLogBlob
	ok, err = cs.fileManager.LoadBlob(models.BlobKeyRecentSearches, &searchBlob)
	if err != nil {
		cs.logger.Warnf(providers.TypeApp, "Failed to restore recent searches, starting empty: %s", err)
	} else if ok {
		cs.searches.PutData(searchBlob.Queries)
	}

	cs.metrics.SetFilmsTotal(cs.films.Len())
	return nil
}

// PersistAll overwrites both blobs in full.
func (cs *CatalogService) PersistAll() error {
	var firstErr error
	if err := cs.saveFilms(); err != nil {
		firstErr = err
	}
	if err := cs.saveSearches(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

func (cs *CatalogService) saveFilms() error {
	start := time.Now()
	err := cs.fileManager.SaveBlob(models.BlobKeyFilms, &models.CatalogBlob{Films: cs.films.GetData()})
	cs.metrics.ObservePersistenceDuration(time.Since(start))
	if err != nil {
		cs.metrics.IncPersistenceErrorsTotal()
		return err
	}
	cs.metrics.SetFilmsTotal(cs.films.Len())
	return nil
}

func (cs *CatalogService) saveSearches() error {
	start := time.Now()
	err := cs.fileManager.SaveBlob(models.BlobKeyRecentSearches, &models.SearchLogBlob{Queries: cs.searches.GetData()})
	cs.metrics.ObservePersistenceDuration(time.Since(start))
	if err != nil {
		cs.metrics.IncPersistenceErrorsTotal()
		return err
	}
	return nil
}

// persistFilms is the write-after-mutation path. Failures are surfaced in
// the log and metrics; the in-memory state stays authoritative either way.
func (cs *CatalogService) persistFilms() {
	if err := cs.saveFilms(); err != nil {
		cs.logger.Errorf(providers.TypeApp, "Failed to persist catalog: %s", err)
	}
}

func (cs *CatalogService) persistSearches() {
	if err := cs.saveSearches(); err != nil {
		cs.logger.Errorf(providers.TypeApp, "Failed to persist recent searches: %s", err)
	}
}
