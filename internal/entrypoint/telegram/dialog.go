package telegram

import (
	"time"

	"github.com/Caiohenrks/bot-financeiro-telegram/internal/entity"
)

const (
	labelToday     = "Hoje"
	labelOtherDate = "Outra data"
)

// stepResult is the outcome of feeding one message to a session. Exactly
// one of save/query is set when the flow reached a terminal action;
// otherwise only the reply matters and the session stays alive.
type stepResult struct {
	reply reply

	save bool

	query    bool
	from, to time.Time
}

// advance applies one inbound text to the session: it either records the
// answered field and moves to the next prompt, or re-prompts in place on
// invalid input. The caller owns the terminal actions (insert, query,
// session teardown).
func advance(s *entity.Session, input string, now time.Time) stepResult {
	switch s.State {
	case entity.StateDescription:
		return stepDescription(s, input)
	case entity.StateCategory:
		return stepCategory(s, input)
	case entity.StateClassifier:
		return stepClassifier(s, input)
	case entity.StateAmount:
		return stepAmount(s, input)
	case entity.StateDateChoice, entity.StateDateManual:
		return stepDate(s, input, now)
	case entity.StateMonthSelect:
		return stepMonthSelect(s, input, now)
	}
	return stepResult{}
}

func stepDescription(s *entity.Session, input string) stepResult {
	if input == "" {
		return stepResult{reply: reply{text: "⚠️ Descrição vazia! Qual a descrição?"}}
	}
	s.Description = input
	s.State = entity.StateCategory
	return stepResult{reply: categoryPrompt(s.Variant)}
}

func categoryPrompt(v entity.Variant) reply {
	return reply{
		text:     "🗂 Escolha a categoria:",
		keyboard: withCancel(v.CategoryRows()),
	}
}

func stepCategory(s *entity.Session, input string) stepResult {
	if !s.Variant.ValidCategory(input) {
		r := categoryPrompt(s.Variant)
		r.text = "⚠️ Categoria inválida! Use os botões."
		return stepResult{reply: r}
	}
	s.Category = input
	s.State = entity.StateClassifier
	return stepResult{reply: classifierPrompt(s.Variant)}
}

func classifierPrompt(v entity.Variant) reply {
	text := "💳 Qual a forma de pagamento?"
	if v == entity.Income {
		text = "🏦 Qual a fonte desta receita?"
	}
	return reply{text: text, keyboard: withCancel(v.ClassifierRows())}
}

func stepClassifier(s *entity.Session, input string) stepResult {
	if !s.Variant.ValidClassifier(input) {
		r := classifierPrompt(s.Variant)
		r.text = "⚠️ Forma de pagamento inválida! Use os botões."
		if s.Variant == entity.Income {
			r.text = "⚠️ Fonte inválida! Use os botões."
		}
		return stepResult{reply: r}
	}
	s.Classifier = input
	s.State = entity.StateAmount

	example := "150.75"
	if s.Variant == entity.Income {
		example = "1500.50"
	}
	return stepResult{reply: reply{
		text:     "💰 Qual o valor? (Ex: " + example + ")",
		keyboard: withCancel(nil),
	}}
}

func stepAmount(s *entity.Session, input string) stepResult {
	amount, err := parseAmount(input)
	if err != nil {
		text := "⚠️ Valor inválido! Digite um número positivo (ex: 1234.56 ou 1234,56)."
		if err == errAmountNotPositive {
			text = "⚠️ Valor deve ser maior que zero."
		}
		return stepResult{reply: reply{text: text, keyboard: withCancel(nil)}}
	}
	s.Amount = amount
	s.State = entity.StateDateChoice
	return stepResult{reply: reply{
		text:     "📅 Data da transação:",
		keyboard: withCancel(dateChoices),
	}}
}

// stepDate serves both date states: the choice buttons stay valid after
// a failed manual attempt, and anything else is taken as a typed date.
// The date is parsed in the clock's zone so today's own date never lands
// on the future side of the bound.
func stepDate(s *entity.Session, input string, now time.Time) stepResult {
	switch input {
	case labelToday:
		s.Date = today(now)
		return stepResult{save: true}
	case labelOtherDate:
		s.State = entity.StateDateManual
		return stepResult{reply: reply{
			text:     "📅 Digite a data (DD/MM/AAAA):",
			keyboard: withCancel(nil),
		}}
	}

	date, err := parseDate(input, now.Location())
	if err != nil {
		s.State = entity.StateDateManual
		return stepResult{reply: reply{
			text:     "⚠️ Formato inválido! Use DD/MM/AAAA",
			keyboard: withCancel(dateChoices),
		}}
	}
	if date.After(today(now)) {
		s.State = entity.StateDateManual
		return stepResult{reply: reply{
			text:     "⚠️ Data futura! Use uma data válida.",
			keyboard: withCancel(dateChoices),
		}}
	}
	s.Date = date
	return stepResult{save: true}
}

func stepMonthSelect(s *entity.Session, input string, now time.Time) stepResult {
	month, ok := monthNumber(input)
	if !ok {
		return stepResult{reply: reply{
			text:     "⚠️ Mês inválido! Use os botões.",
			keyboard: withCancel(monthKeyboard()),
		}}
	}
	from, to := monthBounds(now.Year(), month)
	return stepResult{query: true, from: from, to: to}
}
