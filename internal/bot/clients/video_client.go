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

type VideoSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]*models.VideoResult, error)
	Formats(ctx context.Context, videoID string) ([]*models.QualityOption, error)
}

type VideoClient struct {
	client  *resty.Client
	baseURL string
	logger  *slog.Logger
}

func NewVideoClient(baseURL string, cfg *config.Config, logger *slog.Logger) VideoSearcher {
	client := httputil.CreateResilientHTTPClient(cfg, logger, "video")

	return &VideoClient{
		client:  client,
		baseURL: baseURL,
		logger:  logger,
	}
}

func (c *VideoClient) Search(ctx context.Context, query string, limit int) ([]*models.VideoResult, error) {
	requestURL := fmt.Sprintf("%s/search?q=%s&limit=%d", c.baseURL, url.QueryEscape(query), limit)

	var response struct {
		Results []*models.VideoResult `json:"results"`
	}

	startTime := time.Now()

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&response).
		Get(requestURL)

	if err != nil {
		return nil, err
	}

	metrics.RecordAPIRequest("video", "search", resp.StatusCode(), time.Since(startTime))

	if !resp.IsSuccess() {
		return nil, &errors.ErrSearchAPIStatus{Service: "video", StatusCode: resp.StatusCode()}
	}

	return response.Results, nil
}

func (c *VideoClient) Formats(ctx context.Context, videoID string) ([]*models.QualityOption, error) {
	requestURL := fmt.Sprintf("%s/videos/%s/formats", c.baseURL, url.PathEscape(videoID))

	var response struct {
		Formats []*models.QualityOption `json:"formats"`
	}

	startTime := time.Now()

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&response).
		Get(requestURL)

	if err != nil {
		return nil, err
	}

	metrics.RecordAPIRequest("video", "formats", resp.StatusCode(), time.Since(startTime))

	if !resp.IsSuccess() {
		return nil, &errors.ErrSearchAPIStatus{Service: "video", StatusCode: resp.StatusCode()}
	}

	return response.Formats, nil
}
