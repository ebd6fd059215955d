package models

import (
	"time"
)

type User struct {
	JID          string
	Username     string
	Banned       bool
	CommandsUsed int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UsageRecord - журнал успешных диспетчеризаций, append-only.
// ChatJID пустой для личных чатов (в базе хранится NULL).
type UsageRecord struct {
	ID        int64
	CallerJID string
	Command   string
	ChatJID   string
	CreatedAt time.Time
}
