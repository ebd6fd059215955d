package clients

import (
	"context"
	"log/slog"
	"time"

	"github.com/Matthew11K/wa-media-bot/internal/common/httputil"
	"github.com/Matthew11K/wa-media-bot/internal/common/metrics"
	"github.com/Matthew11K/wa-media-bot/internal/config"
	"github.com/Matthew11K/wa-media-bot/internal/domain/errors"
	"github.com/Matthew11K/wa-media-bot/internal/domain/models"
	"github.com/go-resty/resty/v2"
)

type DownloadEnqueuer interface {
	Enqueue(ctx context.Context, job *models.DownloadJob) (string, error)
}

type DownloaderClient struct {
	client  *resty.Client
	baseURL string
	logger  *slog.Logger
}

func NewDownloaderClient(baseURL string, cfg *config.Config, logger *slog.Logger) DownloadEnqueuer {
	client := httputil.CreateResilientHTTPClient(cfg, logger, "downloader")

	return &DownloaderClient{
		client:  client,
		baseURL: baseURL,
		logger:  logger,
	}
}

func (c *DownloaderClient) Enqueue(ctx context.Context, job *models.DownloadJob) (string, error) {
	var response struct {
		JobID string `json:"jobId"`
	}

	startTime := time.Now()

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(job).
		SetResult(&response).
		Post(c.baseURL + "/jobs")

	if err != nil {
		return "", err
	}

	metrics.RecordAPIRequest("downloader", "enqueue", resp.StatusCode(), time.Since(startTime))

	if !resp.IsSuccess() {
		return "", &errors.ErrSearchAPIStatus{Service: "downloader", StatusCode: resp.StatusCode()}
	}

	c.logger.Info("Задача загрузки поставлена в очередь",
		"jobID", response.JobID,
		"kind", job.Kind,
	)

	return response.JobID, nil
}
