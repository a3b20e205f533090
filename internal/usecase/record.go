package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Caiohenrks/bot-financeiro-telegram/internal/entity"
)

var (
	ErrFutureDate    = errors.New("transaction date is in the future")
	ErrNonPositive   = errors.New("amount must be greater than zero")
	ErrBadCategory   = errors.New("category not in the variant's set")
	ErrBadClassifier = errors.New("classifier not in the variant's set")
	ErrNoDescription = errors.New("description is empty")
)

type CreateRecord struct {
	repo RecordRepository
	now  func() time.Time
}

func NewCreateRecord(repo RecordRepository) *CreateRecord {
	return &CreateRecord{repo: repo, now: time.Now}
}

// Execute revalidates the assembled record and performs the single insert.
// The dialogue already validated each field on entry, but a multi-turn
// session spans real time, so the date bound is checked again here.
func (c *CreateRecord) Execute(ctx context.Context, record entity.Record) error {
	if record.Description == "" {
		return ErrNoDescription
	}
	if !record.Variant.ValidCategory(record.Category) {
		return ErrBadCategory
	}
	if !record.Variant.ValidClassifier(record.Classifier) {
		return ErrBadClassifier
	}
	if !record.Amount.IsPositive() {
		return ErrNonPositive
	}
	if afterToday(record.Date, c.now()) {
		return ErrFutureDate
	}

	if err := c.repo.Create(ctx, record); err != nil {
		return fmt.Errorf("create %s: %w", record.Variant, err)
	}
	return nil
}

// afterToday compares calendar dates only. The record date and the
// clock may carry different zones, so an instant comparison would shift
// the bound by up to a day.
func afterToday(date, now time.Time) bool {
	dy, dm, dd := date.Date()
	ny, nm, nd := now.Date()
	if dy != ny {
		return dy > ny
	}
	if dm != nm {
		return dm > nm
	}
	return dd > nd
}

type GetRecordsByRange struct {
	repo RecordRepository
}

func NewGetRecordsByRange(repo RecordRepository) *GetRecordsByRange {
	return &GetRecordsByRange{repo: repo}
}

func (g *GetRecordsByRange) Execute(ctx context.Context, variant entity.Variant, userID int64, from, to time.Time) ([]entity.Record, error) {
	return g.repo.GetByRange(ctx, variant, userID, from, to)
}

type ListRecords struct {
	repo RecordRepository
}

func NewListRecords(repo RecordRepository) *ListRecords {
	return &ListRecords{repo: repo}
}

// Execute returns all records of the variant, for one user or for
// everyone when userID is nil.
func (l *ListRecords) Execute(ctx context.Context, variant entity.Variant, userID *int64) ([]entity.Record, error) {
	return l.repo.GetAll(ctx, variant, userID)
}
