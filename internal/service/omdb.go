package service

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"moviweb-backend/internal/config"
	"moviweb-backend/internal/logger"
)

// OMDbService resolves free-text movie titles into canonical metadata via the
// OMDb HTTP API. It is a best-effort lookup: every failure mode of the
// outbound call collapses into a nil result, so callers only ever learn that
// enrichment did not produce details, never why. It never touches storage.
type OMDbService struct {
	cfg        *config.Config
	httpClient *http.Client
}

// NewOMDbService creates a new OMDb service with a bounded request timeout
func NewOMDbService(cfg *config.Config) *OMDbService {
	timeout := time.Duration(cfg.OMDbTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &OMDbService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// MovieDetails holds the canonical metadata resolved for a title
type MovieDetails struct {
	Title       string
	Director    string
	ReleaseYear *int
	Rating      *float64
}

// omdbAPIResponse represents OMDb's title lookup payload. Year and imdbRating
// arrive as strings ("2021", "2021–", "N/A"). "Response":"False" is OMDb's
// application-level not-found indicator.
type omdbAPIResponse struct {
	Title      string `json:"Title"`
	Director   string `json:"Director"`
	Year       string `json:"Year"`
	ImdbRating string `json:"imdbRating"`
	Response   string `json:"Response"`
}

// FetchMovieDetails looks up a title and returns its metadata, or nil when the
// lookup fails for any reason: missing configuration, transport error,
// timeout, non-success status, malformed payload, or an OMDb "not found"
// response. The cause is logged at debug level only.
func (s *OMDbService) FetchMovieDetails(title string) *MovieDetails {
	log := logger.New().WithField("title", title)

	title = strings.TrimSpace(title)
	if title == "" || s.cfg.OMDbAPIKey == "" {
		log.Debug("omdb lookup skipped: empty title or missing api key")
		return nil
	}

	v := url.Values{}
	v.Set("apikey", s.cfg.OMDbAPIKey)
	v.Set("t", title)
	lookupURL := strings.TrimRight(s.cfg.OMDbBaseURL, "/") + "/?" + v.Encode()

	resp, err := s.httpClient.Get(lookupURL)
	if err != nil {
		log.Debugf("omdb request failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Debugf("omdb request returned status %d", resp.StatusCode)
		return nil
	}

	var payload omdbAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Debugf("omdb response decode failed: %v", err)
		return nil
	}
	if payload.Response != "True" || payload.Title == "" {
		log.Debug("omdb reported title not found")
		return nil
	}

	return &MovieDetails{
		Title:       payload.Title,
		Director:    payload.Director,
		ReleaseYear: parseYear(payload.Year),
		Rating:      parseRating(payload.ImdbRating),
	}
}

// parseYear extracts the leading year from OMDb's Year field, which may carry
// a range form like "2021–" for series.
func parseYear(raw string) *int {
	raw = strings.TrimSpace(raw)
	if len(raw) > 4 {
		raw = raw[:4]
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &year
}

func parseRating(raw string) *float64 {
	rating, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}
	return &rating
}
