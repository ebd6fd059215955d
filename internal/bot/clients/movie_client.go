package clients

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/Matthew11K/wa-media-bot/internal/common/httputil"
	"github.com/Matthew11K/wa-media-bot/internal/common/metrics"
	"github.com/Matthew11K/wa-media-bot/internal/config"
	"github.com/Matthew11K/wa-media-bot/internal/domain/errors"
	"github.com/Matthew11K/wa-media-bot/internal/domain/models"
	"github.com/go-resty/resty/v2"
)

type MovieSearcher interface {
	SearchMovies(ctx context.Context, query string, limit int) ([]*models.MovieResult, error)
	SearchTVShows(ctx context.Context, query string, limit int) ([]*models.TVResult, error)
}

type MovieClient struct {
	client  *resty.Client
	baseURL string
	token   string
	logger  *slog.Logger
}

func NewMovieClient(baseURL, token string, cfg *config.Config, logger *slog.Logger) MovieSearcher {
	client := httputil.CreateResilientHTTPClient(cfg, logger, "movie")

	return &MovieClient{
		client:  client,
		baseURL: baseURL,
		token:   token,
		logger:  logger,
	}
}

type movieItem struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
	SeasonCount  int     `json:"number_of_seasons"`
}

func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}

	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}

	return year
}

func (c *MovieClient) SearchMovies(ctx context.Context, query string, limit int) ([]*models.MovieResult, error) {
	requestURL := fmt.Sprintf("%s/search/movie?query=%s", c.baseURL, url.QueryEscape(query))

	var response struct {
		Results []movieItem `json:"results"`
	}

	startTime := time.Now()

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.token).
		SetResult(&response).
		Get(requestURL)

	if err != nil {
		return nil, err
	}

	metrics.RecordAPIRequest("movie", "search_movie", resp.StatusCode(), time.Since(startTime))

	if !resp.IsSuccess() {
		return nil, &errors.ErrSearchAPIStatus{Service: "movie", StatusCode: resp.StatusCode()}
	}

	results := make([]*models.MovieResult, 0, limit)

	for _, item := range response.Results {
		if len(results) == limit {
			break
		}

		results = append(results, &models.MovieResult{
			ID:     strconv.FormatInt(item.ID, 10),
			Title:  item.Title,
			Year:   yearOf(item.ReleaseDate),
			Rating: fmt.Sprintf("%.1f", item.VoteAverage),
			URL:    fmt.Sprintf("https://www.themoviedb.org/movie/%d", item.ID),
		})
	}

	return results, nil
}

func (c *MovieClient) SearchTVShows(ctx context.Context, query string, limit int) ([]*models.TVResult, error) {
	requestURL := fmt.Sprintf("%s/search/tv?query=%s", c.baseURL, url.QueryEscape(query))

	var response struct {
		Results []movieItem `json:"results"`
	}

	startTime := time.Now()

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.token).
		SetResult(&response).
		Get(requestURL)

	if err != nil {
		return nil, err
	}

	metrics.RecordAPIRequest("movie", "search_tv", resp.StatusCode(), time.Since(startTime))

	if !resp.IsSuccess() {
		return nil, &errors.ErrSearchAPIStatus{Service: "movie", StatusCode: resp.StatusCode()}
	}

	results := make([]*models.TVResult, 0, limit)

	for _, item := range response.Results {
		if len(results) == limit {
			break
		}

		results = append(results, &models.TVResult{
			ID:      strconv.FormatInt(item.ID, 10),
			Title:   item.Name,
			Year:    yearOf(item.FirstAirDate),
			Seasons: item.SeasonCount,
			URL:     fmt.Sprintf("https://www.themoviedb.org/tv/%d", item.ID),
		})
	}

	return results, nil
}
