package models

import (
	"context"
)

type Category string

const (
	CategoryGeneral    Category = "general"
	CategoryGroup      Category = "group"
	CategoryModeration Category = "moderation"
	CategorySettings   Category = "settings"
	CategoryOwner      Category = "owner"
)

// HandlerFunc выполняет бизнес-логику команды. Для ядра диспетчеризации
// обработчик непрозрачен: диспетчер только перехватывает ошибки.
type HandlerFunc func(ctx context.Context, caller *CallerContext, args []string) error

type CommandDefinition struct {
	Name        string
	Category    Category
	Aliases     []string
	Description string
	OwnerOnly   bool
	GroupOnly   bool
	AdminOnly   bool
	Handler     HandlerFunc
}
