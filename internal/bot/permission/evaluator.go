package permission

import (
	"context"

	"github.com/Matthew11K/wa-media-bot/internal/domain/models"
)

type DenyReason string

const (
	ReasonBanned    DenyReason = "banned"
	ReasonOwnerOnly DenyReason = "owner-only"
	ReasonGroupOnly DenyReason = "group-only"
	ReasonAdminOnly DenyReason = "admin-only"
)

type Decision struct {
	Allowed bool
	Reason  DenyReason
}

func allowed() Decision {
	return Decision{Allowed: true}
}

func denied(reason DenyReason) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Evaluate решает, может ли отправитель вызвать команду. Проверки идут в
// фиксированном порядке, и наружу выходит только первая провалившаяся:
// бан -> только владелец -> только группа -> только администратор.
// Статус администратора запрашивается лениво и только когда команда его
// требует и разговор групповой: для личных чатов команда с adminOnly без
// groupOnly разрешается без обращения к метаданным группы.
func Evaluate(ctx context.Context, def *models.CommandDefinition, caller *models.CallerContext) (Decision, error) {
	if caller.IsBanned && !caller.IsOwner {
		return denied(ReasonBanned), nil
	}

	if def.OwnerOnly && !caller.IsOwner {
		return denied(ReasonOwnerOnly), nil
	}

	if def.GroupOnly && !caller.IsGroup {
		return denied(ReasonGroupOnly), nil
	}

	if def.AdminOnly && caller.IsGroup {
		if caller.IsOwner {
			return allowed(), nil
		}

		if caller.ResolveAdmin == nil {
			return denied(ReasonAdminOnly), nil
		}

		isAdmin, err := caller.ResolveAdmin(ctx)
		if err != nil {
			return Decision{}, err
		}

		if !isAdmin {
			return denied(ReasonAdminOnly), nil
		}
	}

	return allowed(), nil
}

// DenialMessage возвращает текст отказа для пользователя.
func DenialMessage(reason DenyReason) string {
	switch reason {
	case ReasonBanned:
		return "Вы заблокированы и не можете использовать команды бота."
	case ReasonOwnerOnly:
		return "Эта команда доступна только владельцу бота."
	case ReasonGroupOnly:
		return "Эта команда работает только в групповых чатах."
	case ReasonAdminOnly:
		return "Эта команда доступна только администраторам группы."
	default:
		return "Команда недоступна."
	}
}
