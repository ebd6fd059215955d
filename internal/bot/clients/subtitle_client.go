package clients

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/Matthew11K/wa-media-bot/internal/common/httputil"
	"github.com/Matthew11K/wa-media-bot/internal/common/metrics"
	"github.com/Matthew11K/wa-media-bot/internal/config"
	"github.com/Matthew11K/wa-media-bot/internal/domain/errors"
	"github.com/Matthew11K/wa-media-bot/internal/domain/models"
	"github.com/go-resty/resty/v2"
)

type SubtitleSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]*models.SubtitleResult, error)
}

type SubtitleClient struct {
	client  *resty.Client
	baseURL string
	token   string
	logger  *slog.Logger
}

func NewSubtitleClient(baseURL, token string, cfg *config.Config, logger *slog.Logger) SubtitleSearcher {
	client := httputil.CreateResilientHTTPClient(cfg, logger, "subtitle")

	return &SubtitleClient{
		client:  client,
		baseURL: baseURL,
		token:   token,
		logger:  logger,
	}
}

func (c *SubtitleClient) Search(ctx context.Context, query string, limit int) ([]*models.SubtitleResult, error) {
	requestURL := fmt.Sprintf("%s/subtitles?query=%s", c.baseURL, url.QueryEscape(query))

	var response struct {
		Data []struct {
			ID         string `json:"id"`
			Attributes struct {
				Language string `json:"language"`
				Release  string `json:"release"`
				URL      string `json:"url"`
			} `json:"attributes"`
		} `json:"data"`
	}

	startTime := time.Now()

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Api-Key", c.token).
		SetResult(&response).
		Get(requestURL)

	if err != nil {
		return nil, err
	}

	metrics.RecordAPIRequest("subtitle", "search", resp.StatusCode(), time.Since(startTime))

	if !resp.IsSuccess() {
		return nil, &errors.ErrSearchAPIStatus{Service: "subtitle", StatusCode: resp.StatusCode()}
	}

	results := make([]*models.SubtitleResult, 0, limit)

	for _, item := range response.Data {
		if len(results) == limit {
			break
		}

		results = append(results, &models.SubtitleResult{
			ID:       item.ID,
			Title:    item.Attributes.Release,
			Language: item.Attributes.Language,
			URL:      item.Attributes.URL,
		})
	}

	return results, nil
}
