package selection_test

import (
	"sync"
	"testing"
	"time"

	"github.com/Matthew11K/wa-media-bot/internal/bot/selection"
	"github.com/Matthew11K/wa-media-bot/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func videoPayload(titles ...string) models.VideoSearchPayload {
	results := make([]models.VideoResult, 0, len(titles))
	for i, title := range titles {
		results = append(results, models.VideoResult{
			ID:    string(rune('a' + i)),
			Title: title,
		})
	}

	return models.VideoSearchPayload{Query: "запрос", Results: results}
}

func TestStore_PutTakeRoundTrip(t *testing.T) {
	store := selection.NewStore(time.Minute)

	store.Put("111@s.whatsapp.net", videoPayload("первое", "второе"))

	sel, ok := store.Take("111@s.whatsapp.net")
	require.True(t, ok)
	assert.Equal(t, "111@s.whatsapp.net", sel.CallerJID)
	assert.Equal(t, models.SelectionVideoSearch, sel.Payload.Kind())
	assert.Equal(t, 2, sel.Payload.Len())

	_, ok = store.Take("111@s.whatsapp.net")
	assert.False(t, ok)
}

func TestStore_TakeUnknownCaller(t *testing.T) {
	store := selection.NewStore(time.Minute)

	_, ok := store.Take("404@s.whatsapp.net")
	assert.False(t, ok)
}

func TestStore_PutOverwritesExistingSlot(t *testing.T) {
	store := selection.NewStore(time.Minute)

	store.Put("111@s.whatsapp.net", videoPayload("старое"))
	store.Put("111@s.whatsapp.net", models.MovieSearchPayload{
		Query:   "матрица",
		Results: []models.MovieResult{{ID: "tt0133093", Title: "The Matrix"}},
	})

	sel, ok := store.Take("111@s.whatsapp.net")
	require.True(t, ok)
	assert.Equal(t, models.SelectionMovieSearch, sel.Payload.Kind())
	assert.Equal(t, 0, store.Len())
}

func TestStore_SlotsAreIndependentPerCaller(t *testing.T) {
	store := selection.NewStore(time.Minute)

	store.Put("111@s.whatsapp.net", videoPayload("одно"))
	store.Put("222@s.whatsapp.net", videoPayload("другое"))

	assert.Equal(t, 2, store.Len())

	_, ok := store.Take("111@s.whatsapp.net")
	require.True(t, ok)

	_, ok = store.Take("222@s.whatsapp.net")
	require.True(t, ok)

	assert.Equal(t, 0, store.Len())
}

// Два конкурентных Take от одного отправителя: ровно один получает слот.
func TestStore_ConcurrentTakeSingleConsumer(t *testing.T) {
	store := selection.NewStore(time.Minute)

	const iterations = 100

	for i := 0; i < iterations; i++ {
		store.Put("111@s.whatsapp.net", videoPayload("гонка"))

		var (
			wg   sync.WaitGroup
			hits int32
			mu   sync.Mutex
		)

		for j := 0; j < 2; j++ {
			wg.Add(1)

			go func() {
				defer wg.Done()

				if _, ok := store.Take("111@s.whatsapp.net"); ok {
					mu.Lock()
					hits++
					mu.Unlock()
				}
			}()
		}

		wg.Wait()

		require.EqualValues(t, 1, hits)
	}
}

func TestStore_TakeDiscardsExpiredSlot(t *testing.T) {
	store := selection.NewStore(10 * time.Millisecond)

	store.Put("111@s.whatsapp.net", videoPayload("скоро истечёт"))

	time.Sleep(30 * time.Millisecond)

	_, ok := store.Take("111@s.whatsapp.net")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestStore_SweepRemovesOnlyExpired(t *testing.T) {
	store := selection.NewStore(50 * time.Millisecond)

	store.Put("old@s.whatsapp.net", videoPayload("старое"))

	time.Sleep(80 * time.Millisecond)

	store.Put("fresh@s.whatsapp.net", videoPayload("свежее"))

	removed := store.Sweep()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Len())

	_, ok := store.Take("fresh@s.whatsapp.net")
	assert.True(t, ok)
}

func TestStore_ZeroTTLNeverExpires(t *testing.T) {
	store := selection.NewStore(0)

	store.Put("111@s.whatsapp.net", videoPayload("вечное"))

	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, 0, store.Sweep())

	_, ok := store.Take("111@s.whatsapp.net")
	assert.True(t, ok)
}
