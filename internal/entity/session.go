package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DialogState names the prompt the bot is waiting on for a session.
type DialogState string

const (
	StateDescription DialogState = "description"
	StateCategory    DialogState = "category"
	StateClassifier  DialogState = "classifier"
	StateAmount      DialogState = "amount"
	StateDateChoice  DialogState = "dateChoice"
	StateDateManual  DialogState = "dateManual"
	StateMonthSelect DialogState = "monthSelect"
)

// Session is the in-progress multi-turn interaction of one user. It is
// ephemeral: held in memory only and discarded on save, cancel or a new
// entry-point command.
type Session struct {
	UserID int64
	State  DialogState

	// entry flow
	Variant     Variant
	Description string
	Category    string
	Classifier  string
	Amount      decimal.Decimal
	Date        time.Time

	// query flow
	QueryVariant Variant
}

// Record assembles the completed entry. Valid only once the flow reached
// the save step.
func (s *Session) Record() Record {
	return Record{
		UserID:      s.UserID,
		Variant:     s.Variant,
		Description: s.Description,
		Category:    s.Category,
		Classifier:  s.Classifier,
		Amount:      s.Amount,
		Date:        s.Date,
	}
}
