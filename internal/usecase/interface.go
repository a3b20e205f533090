package usecase

import (
	"context"
	"time"

	"github.com/Caiohenrks/bot-financeiro-telegram/internal/entity"
)

// RecordRepository is the durable store for income and expense rows.
// Every write is one atomic statement; a failed write leaves the store
// unchanged.
type RecordRepository interface {
	Create(ctx context.Context, record entity.Record) error

	// GetByRange returns one user's records of the variant with
	// from <= date <= to, ordered ascending by date.
	GetByRange(ctx context.Context, variant entity.Variant, userID int64, from, to time.Time) ([]entity.Record, error)

	// GetAll returns every record of the variant, optionally filtered by
	// owner. Order is unspecified; callers sort as needed.
	GetAll(ctx context.Context, variant entity.Variant, userID *int64) ([]entity.Record, error)
}

// UserRepository tracks the Telegram accounts that talked to the bot.
type UserRepository interface {
	// Upsert inserts the user or refreshes its mutable fields. Idempotent.
	Upsert(ctx context.Context, user entity.User) error

	List(ctx context.Context) ([]entity.User, error)
}

// IdempotenceRepository deduplicates redelivered transport updates.
type IdempotenceRepository interface {
	// MakeRecord returns true the first time it is called with an id.
	MakeRecord(id string) (bool, error)
}
