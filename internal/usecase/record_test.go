package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Caiohenrks/bot-financeiro-telegram/internal/entity"
)

type stubRecordRepo struct {
	created   []entity.Record
	createErr error
}

func (s *stubRecordRepo) Create(_ context.Context, record entity.Record) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, record)
	return nil
}

func (s *stubRecordRepo) GetByRange(context.Context, entity.Variant, int64, time.Time, time.Time) ([]entity.Record, error) {
	return nil, nil
}

func (s *stubRecordRepo) GetAll(context.Context, entity.Variant, *int64) ([]entity.Record, error) {
	return nil, nil
}

func validRecord() entity.Record {
	return entity.Record{
		UserID:      1,
		Variant:     entity.Income,
		Description: "Consultoria",
		Category:    "Freelance",
		Classifier:  "Principal",
		Amount:      decimal.RequireFromString("1500.00"),
		Date:        time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
	}
}

func testCreateRecord(repo RecordRepository) *CreateRecord {
	c := NewCreateRecord(repo)
	c.now = func() time.Time {
		return time.Date(2024, time.June, 15, 23, 0, 0, 0, time.UTC)
	}
	return c
}

func TestCreateRecordPersists(t *testing.T) {
	repo := &stubRecordRepo{}
	c := testCreateRecord(repo)

	require.NoError(t, c.Execute(context.Background(), validRecord()))
	require.Len(t, repo.created, 1)
}

func TestCreateRecordRevalidates(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*entity.Record)
		want   error
	}{
		{
			name:   "future date",
			mutate: func(r *entity.Record) { r.Date = r.Date.AddDate(0, 0, 1) },
			want:   ErrFutureDate,
		},
		{
			name:   "zero amount",
			mutate: func(r *entity.Record) { r.Amount = decimal.Zero },
			want:   ErrNonPositive,
		},
		{
			name:   "category from the other variant",
			mutate: func(r *entity.Record) { r.Category = "Alimentação" },
			want:   ErrBadCategory,
		},
		{
			name:   "unknown classifier",
			mutate: func(r *entity.Record) { r.Classifier = "Cheque" },
			want:   ErrBadClassifier,
		},
		{
			name:   "empty description",
			mutate: func(r *entity.Record) { r.Description = "" },
			want:   ErrNoDescription,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRecordRepo{}
			c := testCreateRecord(repo)

			record := validRecord()
			tt.mutate(&record)

			assert.ErrorIs(t, c.Execute(context.Background(), record), tt.want)
			assert.Empty(t, repo.created, "invalid record must not reach the store")
		})
	}
}

func TestCreateRecordSameDayLaterClock(t *testing.T) {
	// Saving at 23:00 a record dated that same day must pass: the bound
	// is the calendar date, not the instant.
	repo := &stubRecordRepo{}
	c := testCreateRecord(repo)

	record := validRecord()
	record.Date = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, c.Execute(context.Background(), record))
}

func TestCreateRecordComparesCalendarDatesAcrossZones(t *testing.T) {
	// A record dated at UTC midnight saved under a clock twelve hours
	// ahead is still the same civil day and must pass.
	repo := &stubRecordRepo{}
	c := NewCreateRecord(repo)
	c.now = func() time.Time {
		return time.Date(2024, time.June, 15, 10, 0, 0, 0, time.FixedZone("UTC+12", 12*60*60))
	}

	assert.NoError(t, c.Execute(context.Background(), validRecord()))

	// Tomorrow's civil date is still rejected.
	record := validRecord()
	record.Date = time.Date(2024, time.June, 16, 0, 0, 0, 0, time.UTC)
	assert.ErrorIs(t, c.Execute(context.Background(), record), ErrFutureDate)
}

func TestCreateRecordWrapsStoreError(t *testing.T) {
	cause := errors.New("connection reset")
	c := testCreateRecord(&stubRecordRepo{createErr: cause})

	err := c.Execute(context.Background(), validRecord())
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "create receita")
}
