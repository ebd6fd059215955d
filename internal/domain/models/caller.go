package models

import (
	"context"
)

// CallerContext описывает отправителя входящего сообщения.
// ResolveAdmin заполняется транспортным адаптером и вызывается лениво:
// только когда команда требует прав администратора группы.
type CallerContext struct {
	CallerJID string
	ChatJID   string
	Username  string
	IsGroup   bool
	IsOwner   bool
	IsBanned  bool

	ResolveAdmin func(ctx context.Context) (bool, error)
}
