package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Variant distinguishes the two structurally parallel record kinds.
type Variant string

const (
	Income  Variant = "receita"
	Expense Variant = "despesa"
)

// Record is a single dated, categorized money entry owned by a user.
// Classifier holds the income source or the expense payment method,
// depending on the variant.
type Record struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	Variant     Variant         `json:"variant"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Classifier  string          `json:"classifier"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Keyboard grids from the bot, row layout included. Validation flattens
// them, so the sets stay closed without duplicating the labels.
var (
	incomeCategories = [][]string{
		{"Salário", "Investimentos"},
		{"Freelance", "Vendas"},
		{"Aluguéis", "Dividendos", "Renda Extra"},
	}

	expenseCategories = [][]string{
		{"Alimentação", "Moradia"},
		{"Transporte", "Saúde"},
		{"Lazer", "Educação", "Cartão de Crédito"},
	}

	incomeSources = [][]string{
		{"Principal", "Extra"},
		{"Investimento", "Bônus"},
		{"Outras"},
	}

	paymentMethods = [][]string{
		{"Cartão Crédito", "Cartão Débito"},
		{"Dinheiro", "PIX"},
		{"Boleto", "Transferência"},
	}
)

// CategoryRows returns the category keyboard layout for the variant.
func (v Variant) CategoryRows() [][]string {
	if v == Income {
		return incomeCategories
	}
	return expenseCategories
}

// ClassifierRows returns the source or payment-method keyboard layout.
func (v Variant) ClassifierRows() [][]string {
	if v == Income {
		return incomeSources
	}
	return paymentMethods
}

// ValidCategory reports whether label is one of the variant's categories.
// The match is exact: button input, not free text.
func (v Variant) ValidCategory(label string) bool {
	return gridContains(v.CategoryRows(), label)
}

// ValidClassifier reports whether label is a known source (income) or
// payment method (expense).
func (v Variant) ValidClassifier(label string) bool {
	return gridContains(v.ClassifierRows(), label)
}

func gridContains(rows [][]string, label string) bool {
	for _, row := range rows {
		for _, cell := range row {
			if cell == label {
				return true
			}
		}
	}
	return false
}
