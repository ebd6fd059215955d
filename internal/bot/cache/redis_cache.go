package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Matthew11K/wa-media-bot/internal/domain/models"
)

type SearchCache interface {
	GetVideos(ctx context.Context, query string) ([]*models.VideoResult, error)
	SetVideos(ctx context.Context, query string, results []*models.VideoResult) error
	GetMovies(ctx context.Context, query string) ([]*models.MovieResult, error)
	SetMovies(ctx context.Context, query string, results []*models.MovieResult) error
	GetTVShows(ctx context.Context, query string) ([]*models.TVResult, error)
	SetTVShows(ctx context.Context, query string, results []*models.TVResult) error
	GetSubtitles(ctx context.Context, query string) ([]*models.SubtitleResult, error)
	SetSubtitles(ctx context.Context, query string, results []*models.SubtitleResult) error
}

type RedisSearchCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisSearchCache(redisURL, password string, db int, ttl time.Duration, logger *slog.Logger) (*RedisSearchCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ошибка при подключении к Redis: %w", err)
	}

	logger.Info("Соединение с Redis успешно установлено")

	return &RedisSearchCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}, nil
}

func (c *RedisSearchCache) get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			c.logger.Debug("Кэш не найден",
				"key", key,
			)

			return false, nil
		}

		c.logger.Error("Ошибка при получении данных из Redis",
			"error", err,
			"key", key,
		)

		return false, fmt.Errorf("ошибка при получении данных из Redis: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.Error("Ошибка при десериализации данных из Redis",
			"error", err,
			"key", key,
		)

		return false, fmt.Errorf("ошибка при десериализации данных из Redis: %w", err)
	}

	c.logger.Info("Данные успешно получены из кэша",
		"key", key,
	)

	return true, nil
}

func (c *RedisSearchCache) set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Error("Ошибка при сериализации данных для Redis",
			"error", err,
			"key", key,
		)

		return fmt.Errorf("ошибка при сериализации данных для Redis: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Error("Ошибка при сохранении данных в Redis",
			"error", err,
			"key", key,
		)

		return fmt.Errorf("ошибка при сохранении данных в Redis: %w", err)
	}

	c.logger.Info("Данные успешно сохранены в кэш",
		"key", key,
		"ttl", c.ttl,
	)

	return nil
}

func (c *RedisSearchCache) GetVideos(ctx context.Context, query string) ([]*models.VideoResult, error) {
	var results []*models.VideoResult

	found, err := c.get(ctx, "search:video:"+query, &results)
	if err != nil || !found {
		return nil, err
	}

	return results, nil
}

func (c *RedisSearchCache) SetVideos(ctx context.Context, query string, results []*models.VideoResult) error {
	return c.set(ctx, "search:video:"+query, results)
}

func (c *RedisSearchCache) GetMovies(ctx context.Context, query string) ([]*models.MovieResult, error) {
	var results []*models.MovieResult

	found, err := c.get(ctx, "search:movie:"+query, &results)
	if err != nil || !found {
		return nil, err
	}

	return results, nil
}

func (c *RedisSearchCache) SetMovies(ctx context.Context, query string, results []*models.MovieResult) error {
	return c.set(ctx, "search:movie:"+query, results)
}

func (c *RedisSearchCache) GetTVShows(ctx context.Context, query string) ([]*models.TVResult, error) {
	var results []*models.TVResult

	found, err := c.get(ctx, "search:tv:"+query, &results)
	if err != nil || !found {
		return nil, err
	}

	return results, nil
}

func (c *RedisSearchCache) SetTVShows(ctx context.Context, query string, results []*models.TVResult) error {
	return c.set(ctx, "search:tv:"+query, results)
}

func (c *RedisSearchCache) GetSubtitles(ctx context.Context, query string) ([]*models.SubtitleResult, error) {
	var results []*models.SubtitleResult

	found, err := c.get(ctx, "search:subtitle:"+query, &results)
	if err != nil || !found {
		return nil, err
	}

	return results, nil
}

func (c *RedisSearchCache) SetSubtitles(ctx context.Context, query string, results []*models.SubtitleResult) error {
	return c.set(ctx, "search:subtitle:"+query, results)
}

func (c *RedisSearchCache) Close() error {
	return c.client.Close()
}
