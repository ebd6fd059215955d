package models

import (
	"time"
)

type VideoResult struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Channel  string `json:"channel"`
	Duration string `json:"duration"`
	URL      string `json:"url"`
}

type QualityOption struct {
	Label  string `json:"label"`
	Format string `json:"format"`
	Size   string `json:"size"`
}

type MovieResult struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Year   int    `json:"year"`
	Rating string `json:"rating"`
	URL    string `json:"url"`
}

type TVResult struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Year    int    `json:"year"`
	Seasons int    `json:"seasons"`
	URL     string `json:"url"`
}

type SubtitleResult struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Language string `json:"language"`
	URL      string `json:"url"`
}

// DownloadJob ставится во внешний сервис загрузки; завершение приходит
// отдельным сообщением DownloadReady через Kafka.
type DownloadJob struct {
	ChatJID   string `json:"chatJid"`
	CallerJID string `json:"callerJid"`
	Kind      string `json:"kind"`
	Title     string `json:"title"`
	SourceURL string `json:"sourceUrl"`
	Quality   string `json:"quality,omitempty"`
}

type DownloadReady struct {
	JobID      string    `json:"jobId"`
	ChatJID    string    `json:"chatJid"`
	Title      string    `json:"title"`
	FileURL    string    `json:"fileUrl"`
	Error      string    `json:"error,omitempty"`
	FinishedAt time.Time `json:"finishedAt"`
}
