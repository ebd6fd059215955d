package cache_test

import (
	"context"
	"testing"
	"time"

	"log/slog"
	"os"

	"github.com/Matthew11K/wa-media-bot/internal/bot/cache"
	"github.com/Matthew11K/wa-media-bot/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRedisSearchCache(t *testing.T) {
	if testing.Short() {
		t.Skip("Пропускаем интеграционный тест в коротком режиме")
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	redisC, redisPort := startRedisContainer(t)
	defer func() {
		if err := redisC.Terminate(context.Background()); err != nil {
			t.Logf("Ошибка при остановке Redis контейнера: %v", err)
		}
	}()

	redisURL := "localhost:" + redisPort
	ttl := 30 * time.Second
	searchCache, err := cache.NewRedisSearchCache(redisURL, "", 0, ttl, logger)
	require.NoError(t, err)

	defer searchCache.Close()

	ctx := context.Background()
	query := "lofi hip hop radio"

	videos := []*models.VideoResult{
		{
			ID:       "dQw4w9WgXcQ",
			Title:    "lofi hip hop radio - beats to relax/study to",
			Channel:  "Lofi Girl",
			Duration: "1:02:45",
			URL:      "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		{
			ID:       "5qap5aO4i9A",
			Title:    "lofi hip hop radio - beats to sleep/chill to",
			Channel:  "Lofi Girl",
			Duration: "2:15:30",
			URL:      "https://www.youtube.com/watch?v=5qap5aO4i9A",
		},
	}

	cachedVideos, err := searchCache.GetVideos(ctx, query)
	require.NoError(t, err)
	assert.Nil(t, cachedVideos)

	err = searchCache.SetVideos(ctx, query, videos)
	require.NoError(t, err)

	cachedVideos, err = searchCache.GetVideos(ctx, query)
	require.NoError(t, err)
	require.NotNil(t, cachedVideos)
	require.Len(t, cachedVideos, 2)

	assert.Equal(t, videos[0].ID, cachedVideos[0].ID)
	assert.Equal(t, videos[0].Title, cachedVideos[0].Title)
	assert.Equal(t, videos[0].URL, cachedVideos[0].URL)
	assert.Equal(t, videos[1].ID, cachedVideos[1].ID)
	assert.Equal(t, videos[1].Channel, cachedVideos[1].Channel)

	movies := []*models.MovieResult{
		{
			ID:    "tt0133093",
			Title: "The Matrix",
			Year:  1999,
		},
	}

	cachedMovies, err := searchCache.GetMovies(ctx, "matrix")
	require.NoError(t, err)
	assert.Nil(t, cachedMovies)

	err = searchCache.SetMovies(ctx, "matrix", movies)
	require.NoError(t, err)

	cachedMovies, err = searchCache.GetMovies(ctx, "matrix")
	require.NoError(t, err)
	require.Len(t, cachedMovies, 1)
	assert.Equal(t, movies[0].Title, cachedMovies[0].Title)

	shortTTLCache, err := cache.NewRedisSearchCache(redisURL, "", 0, 1*time.Second, logger)
	require.NoError(t, err)
	defer shortTTLCache.Close()

	err = shortTTLCache.SetVideos(ctx, "ephemeral", videos)
	require.NoError(t, err)

	cachedVideos, err = shortTTLCache.GetVideos(ctx, "ephemeral")
	require.NoError(t, err)
	require.Len(t, cachedVideos, 2)

	time.Sleep(2 * time.Second)

	cachedVideos, err = shortTTLCache.GetVideos(ctx, "ephemeral")
	require.NoError(t, err)
	assert.Nil(t, cachedVideos)
}

func startRedisContainer(t *testing.T) (container testcontainers.Container, port string) {
	ctx := context.Background()

	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)

	mappedPort, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	return redisC, mappedPort.Port()
}
