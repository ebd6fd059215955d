package models

import (
	"time"
)

type SelectionKind string

const (
	SelectionVideoSearch    SelectionKind = "video-search-results"
	SelectionVideoQuality   SelectionKind = "video-quality-choice"
	SelectionMovieSearch    SelectionKind = "movie-search-results"
	SelectionTVSearch       SelectionKind = "tv-search-results"
	SelectionSubtitleSearch SelectionKind = "subtitle-search-results"
)

// SelectionPayload - размеченное объединение по видам интеракций.
// Каждый вид несёт строго типизированный список вариантов.
type SelectionPayload interface {
	Kind() SelectionKind
	Len() int
}

type VideoSearchPayload struct {
	Query   string
	Results []VideoResult
}

func (VideoSearchPayload) Kind() SelectionKind { return SelectionVideoSearch }
func (p VideoSearchPayload) Len() int          { return len(p.Results) }

type VideoQualityPayload struct {
	Video   VideoResult
	Options []QualityOption
}

func (VideoQualityPayload) Kind() SelectionKind { return SelectionVideoQuality }
func (p VideoQualityPayload) Len() int          { return len(p.Options) }

type MovieSearchPayload struct {
	Query   string
	Results []MovieResult
}

func (MovieSearchPayload) Kind() SelectionKind { return SelectionMovieSearch }
func (p MovieSearchPayload) Len() int          { return len(p.Results) }

type TVSearchPayload struct {
	Query   string
	Results []TVResult
}

func (TVSearchPayload) Kind() SelectionKind { return SelectionTVSearch }
func (p TVSearchPayload) Len() int          { return len(p.Results) }

type SubtitleSearchPayload struct {
	Query   string
	Results []SubtitleResult
}

func (SubtitleSearchPayload) Kind() SelectionKind { return SelectionSubtitleSearch }
func (p SubtitleSearchPayload) Len() int          { return len(p.Results) }

// PendingSelection - единственный активный слот выбора для отправителя.
// Новый put перезаписывает предыдущий слот без очереди.
type PendingSelection struct {
	CallerJID string
	Payload   SelectionPayload
	CreatedAt time.Time
}

func (s *PendingSelection) Expired(ttl time.Duration, now time.Time) bool {
	if ttl <= 0 {
		return false
	}

	return now.Sub(s.CreatedAt) > ttl
}
