package scheduler

import (
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/Matthew11K/wa-media-bot/internal/common/metrics"
)

type SelectionStore interface {
	Sweep() int

	Len() int
}

// Scheduler периодически выметает просроченные слоты выбора и обновляет
// метрику числа активных слотов.
type Scheduler struct {
	scheduler  *gocron.Scheduler
	selections SelectionStore
	logger     *slog.Logger
	interval   time.Duration
}

func NewScheduler(selections SelectionStore, interval time.Duration, logger *slog.Logger) *Scheduler {
	scheduler := gocron.NewScheduler(time.UTC)

	return &Scheduler{
		scheduler:  scheduler,
		selections: selections,
		logger:     logger,
		interval:   interval,
	}
}

func (s *Scheduler) Start() {
	s.logger.Info("Запуск планировщика",
		"interval", s.interval.String(),
	)

	_, err := s.scheduler.Every(s.interval).Do(func() {
		swept := s.selections.Sweep()
		if swept > 0 {
			s.logger.Info("Удалены просроченные слоты выбора",
				"count", swept,
			)
		}

		metrics.SetActiveSelections(float64(s.selections.Len()))
	})

	if err != nil {
		s.logger.Error("Ошибка при настройке планировщика",
			"error", err,
		)

		return
	}

	s.scheduler.StartAsync()
}

func (s *Scheduler) Stop() {
	s.logger.Info("Остановка планировщика")
	s.scheduler.Stop()
}
