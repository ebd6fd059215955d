package command_test

import (
	"testing"

	"github.com/Matthew11K/wa-media-bot/internal/bot/command"
	"github.com/Matthew11K/wa-media-bot/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ResolveByAlias(t *testing.T) {
	registry := command.NewRegistry()

	def := &models.CommandDefinition{
		Name:        "video",
		Category:    models.CategoryGeneral,
		Aliases:     []string{"v", "yt"},
		Description: "Найти видео по запросу",
	}

	registry.Register(def)

	byName, ok := registry.Resolve("video")
	require.True(t, ok)

	byAlias, ok := registry.Resolve("yt")
	require.True(t, ok)

	assert.Same(t, byName, byAlias)
	assert.Same(t, def, byName)
}

func TestRegistry_ResolveIsCaseSensitive(t *testing.T) {
	registry := command.NewRegistry()

	registry.Register(&models.CommandDefinition{
		Name:     "ping",
		Category: models.CategoryGeneral,
	})

	_, ok := registry.Resolve("PING")
	assert.False(t, ok)

	_, ok = registry.Resolve("ping")
	assert.True(t, ok)
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	registry := command.NewRegistry()

	_, ok := registry.Resolve("nonexistent")
	assert.False(t, ok)
}

func TestRegistry_LastRegistrationWins(t *testing.T) {
	registry := command.NewRegistry()

	registry.Register(&models.CommandDefinition{
		Name:        "ping",
		Category:    models.CategoryGeneral,
		Description: "первое определение",
	})

	second := &models.CommandDefinition{
		Name:        "ping",
		Category:    models.CategoryGeneral,
		Description: "второе определение",
	}

	registry.Register(second)

	def, ok := registry.Resolve("ping")
	require.True(t, ok)
	assert.Same(t, second, def)

	assert.Len(t, registry.All(), 1)
}

func TestRegistry_ListByCategoryKeepsOrderAndSkipsAliases(t *testing.T) {
	registry := command.NewRegistry()

	registry.Register(&models.CommandDefinition{
		Name:     "ping",
		Category: models.CategoryGeneral,
		Aliases:  []string{"p"},
	})
	registry.Register(&models.CommandDefinition{
		Name:     "help",
		Category: models.CategoryGeneral,
		Aliases:  []string{"h"},
	})
	registry.Register(&models.CommandDefinition{
		Name:      "ban",
		Category:  models.CategoryModeration,
		OwnerOnly: true,
	})

	general := registry.ListByCategory(models.CategoryGeneral)
	require.Len(t, general, 2)
	assert.Equal(t, "ping", general[0].Name)
	assert.Equal(t, "help", general[1].Name)

	moderation := registry.ListByCategory(models.CategoryModeration)
	require.Len(t, moderation, 1)
	assert.Equal(t, "ban", moderation[0].Name)

	assert.Empty(t, registry.ListByCategory(models.CategoryOwner))
}

// Повторная регистрация имени, перекрытого чужим алиасом, не должна
// задваивать команду в перечислениях.
func TestRegistry_ReListAfterAliasShadowing(t *testing.T) {
	registry := command.NewRegistry()

	registry.Register(&models.CommandDefinition{
		Name:     "stat",
		Category: models.CategoryGeneral,
	})

	// Алиас перекрывает основное имя предыдущей команды.
	registry.Register(&models.CommandDefinition{
		Name:     "stats",
		Category: models.CategoryGeneral,
		Aliases:  []string{"stat"},
	})

	restored := &models.CommandDefinition{
		Name:     "stat",
		Category: models.CategoryGeneral,
	}
	registry.Register(restored)

	all := registry.All()
	require.Len(t, all, 2)
	assert.Equal(t, "stat", all[0].Name)
	assert.Equal(t, "stats", all[1].Name)

	listed := registry.ListByCategory(models.CategoryGeneral)
	require.Len(t, listed, 2)

	byName, ok := registry.Resolve("stat")
	require.True(t, ok)
	assert.Same(t, restored, byName)
}
