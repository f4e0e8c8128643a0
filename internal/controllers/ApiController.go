package controllers

import (
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"

	"fcd/internal/models"
	"fcd/internal/providers"
	"fcd/internal/search"
	"fcd/internal/services"
)

// Generous body limit: film payloads may carry cover images as data URLs.
const maxRequestBodySize = 8 << 20

type ApiController struct {
	logger  providers.Logger
	service services.CatalogServiceInterface
}

func NewApiController(logger providers.Logger, service services.CatalogServiceInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

// AddFilm creates a new catalog record. Title, director and idNumber are
// required here at the boundary; the store itself accepts any string.
func (ac *ApiController) AddFilm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var input models.FilmInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(input.Title) == "" ||
		strings.TrimSpace(input.Director) == "" ||
		strings.TrimSpace(input.IDNumber) == "" {
		http.Error(w, "title, director and idNumber are required", http.StatusBadRequest)
		return
	}

	film := ac.service.AddFilm(&input)
	ac.logger.Debugf(providers.TypePost, "Added film %s", film.ID)
	writeJSON(w, http.StatusCreated, film)
}

// UpdateFilm applies a partial update to the film given by the id query
// parameter. The service treats an unknown id as a no-op; the HTTP layer
// reports it as 404 so clients can tell the difference.
func (ac *ApiController) UpdateFilm(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var patch models.FilmPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if !ac.service.UpdateFilm(id, &patch) {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	film, _ := ac.service.GetFilm(id)
	writeJSON(w, http.StatusOK, film)
}

// DeleteFilm removes the film given by the id query parameter.
func (ac *ApiController) DeleteFilm(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	removed, ok := ac.service.DeleteFilm(id)
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, removed)
}

// GetFilms returns the catalog newest-first. An optional limit query
// parameter truncates the result.
func (ac *ApiController) GetFilms(w http.ResponseWriter, r *http.Request) {
	films := ac.service.Films()
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit := cast.ToInt(raw)
		if limit > 0 && limit < len(films) {
			films = films[:limit]
		}
	}
	writeJSON(w, http.StatusOK, films)
}

// GetRecentFilms returns the five most recently added films.
func (ac *ApiController) GetRecentFilms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.RecentFilms())
}

// Search runs a free-text search. The search itself is pure; the submitted
// query is recorded in the recent-search log as a separate step, matching
// the original submit flow.
func (ac *ApiController) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	option, ok := search.ParseSortOption(r.URL.Query().Get("sort"))
	if !ok {
		http.Error(w, "unknown sort option", http.StatusBadRequest)
		return
	}

	results := ac.service.SearchFilms(query, option)
	ac.service.AddRecentSearch(query)

	writeJSON(w, http.StatusOK, results)
}

// GetRecentSearches returns the recent query log, most-recent-first.
func (ac *ApiController) GetRecentSearches(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.RecentSearches())
}
