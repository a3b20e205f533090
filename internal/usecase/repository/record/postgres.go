// Package record persists users, incomes and expenses in Postgres.
package record

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Caiohenrks/bot-financeiro-telegram/internal/entity"
)

type userModel struct {
	// Telegram assigns the id, so it must not auto-increment.
	ID        int64  `gorm:"primaryKey;autoIncrement:false"`
	FirstName string `gorm:"size:100"`
	Username  string `gorm:"size:100"`
	CreatedAt time.Time
}

func (userModel) TableName() string { return "users" }

type incomeModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	UserID      int64           `gorm:"not null;index"`
	User        userModel       `gorm:"constraint:OnDelete:CASCADE"`
	Description string          `gorm:"size:255;not null"`
	Category    string          `gorm:"size:50;not null"`
	Source      string          `gorm:"size:50;not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	CreatedAt   time.Time
}

func (incomeModel) TableName() string { return "incomes" }

type expenseModel struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	UserID        int64           `gorm:"not null;index"`
	User          userModel       `gorm:"constraint:OnDelete:CASCADE"`
	Description   string          `gorm:"size:255;not null"`
	Category      string          `gorm:"size:50;not null"`
	PaymentMethod string          `gorm:"size:50;not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Date          time.Time       `gorm:"type:date;not null;index"`
	CreatedAt     time.Time
}

func (expenseModel) TableName() string { return "expenses" }

type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgres migrates the schema and returns the repository. The *gorm.DB
// is pooled and safe to share with the dashboard reader.
func NewPostgres(db *gorm.DB) (*PostgresRepository, error) {
	if err := db.AutoMigrate(&userModel{}, &incomeModel{}, &expenseModel{}); err != nil {
		return nil, err
	}
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, record entity.Record) error {
	tx := r.db.WithContext(ctx)
	if record.Variant == entity.Income {
		return tx.Create(&incomeModel{
			UserID:      record.UserID,
			Description: record.Description,
			Category:    record.Category,
			Source:      record.Classifier,
			Amount:      record.Amount,
			Date:        record.Date,
		}).Error
	}
	return tx.Create(&expenseModel{
		UserID:        record.UserID,
		Description:   record.Description,
		Category:      record.Category,
		PaymentMethod: record.Classifier,
		Amount:        record.Amount,
		Date:          record.Date,
	}).Error
}

func (r *PostgresRepository) GetByRange(ctx context.Context, variant entity.Variant, userID int64, from, to time.Time) ([]entity.Record, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date ASC")
	return r.scan(q, variant)
}

func (r *PostgresRepository) GetAll(ctx context.Context, variant entity.Variant, userID *int64) ([]entity.Record, error) {
	q := r.db.WithContext(ctx)
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	return r.scan(q, variant)
}

func (r *PostgresRepository) scan(q *gorm.DB, variant entity.Variant) ([]entity.Record, error) {
	records := []entity.Record{}

	if variant == entity.Income {
		var rows []incomeModel
		if err := q.Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, m := range rows {
			records = append(records, entity.Record{
				ID:          m.ID,
				UserID:      m.UserID,
				Variant:     entity.Income,
				Description: m.Description,
				Category:    m.Category,
				Classifier:  m.Source,
				Amount:      m.Amount,
				Date:        m.Date,
				CreatedAt:   m.CreatedAt,
			})
		}
		return records, nil
	}

	var rows []expenseModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, m := range rows {
		records = append(records, entity.Record{
			ID:          m.ID,
			UserID:      m.UserID,
			Variant:     entity.Expense,
			Description: m.Description,
			Category:    m.Category,
			Classifier:  m.PaymentMethod,
			Amount:      m.Amount,
			Date:        m.Date,
			CreatedAt:   m.CreatedAt,
		})
	}
	return records, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, user entity.User) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"first_name", "username"}),
		}).
		Create(&userModel{
			ID:        user.ID,
			FirstName: user.FirstName,
			Username:  user.Username,
		}).Error
}

func (r *PostgresRepository) List(ctx context.Context) ([]entity.User, error) {
	var rows []userModel
	if err := r.db.WithContext(ctx).Order("first_name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	users := make([]entity.User, 0, len(rows))
	for _, m := range rows {
		users = append(users, entity.User{
			ID:        m.ID,
			FirstName: m.FirstName,
			Username:  m.Username,
			CreatedAt: m.CreatedAt,
		})
	}
	return users, nil
}
