package telegram

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Caiohenrks/bot-financeiro-telegram/internal/entity"
	"github.com/Caiohenrks/bot-financeiro-telegram/internal/usecase"
)

// inbound is one message stripped of transport details.
type inbound struct {
	userID    int64
	firstName string
	username  string

	command string // without the slash, empty for plain text
	text    string
}

// Router owns the session table and turns inbound messages into replies,
// touching the store only on the terminal save and query actions.
type Router struct {
	sessions *sessionStore

	upsertUser   *usecase.UpsertUser
	createRecord *usecase.CreateRecord
	getByRange   *usecase.GetRecordsByRange

	dashboardURL string
	now          func() time.Time
	log          *slog.Logger
}

func NewRouter(
	upsertUser *usecase.UpsertUser,
	createRecord *usecase.CreateRecord,
	getByRange *usecase.GetRecordsByRange,
	dashboardURL string,
	log *slog.Logger,
) *Router {
	return &Router{
		sessions:     newSessionStore(),
		upsertUser:   upsertUser,
		createRecord: createRecord,
		getByRange:   getByRange,
		dashboardURL: dashboardURL,
		now:          time.Now,
		log:          log,
	}
}

// Handle processes one message to completion. An empty reply text means
// nothing should be sent.
func (r *Router) Handle(ctx context.Context, in inbound) reply {
	if in.command != "" {
		return r.handleCommand(ctx, in)
	}

	session := r.sessions.get(in.userID)
	if session == nil {
		// Free text outside any flow is ignored, like the original bot.
		return reply{}
	}

	res := advance(session, in.text, r.now())
	switch {
	case res.save:
		return r.save(ctx, session)
	case res.query:
		return r.resolveQuery(ctx, session, res.from, res.to)
	default:
		return res.reply
	}
}

func (r *Router) handleCommand(ctx context.Context, in inbound) reply {
	switch in.command {
	case "start":
		return r.start(ctx, in)

	case "receita":
		session := r.sessions.begin(in.userID)
		session.Variant = entity.Income
		session.State = entity.StateDescription
		return reply{
			text:     "📥 Vamos registrar uma receita!\n\nPrimeiro, qual a descrição?",
			keyboard: withCancel(nil),
		}

	case "despesa":
		session := r.sessions.begin(in.userID)
		session.Variant = entity.Expense
		session.State = entity.StateDescription
		return reply{
			text:     "📤 Vamos registrar uma despesa!\n\nPrimeiro, qual a descrição?",
			keyboard: withCancel(nil),
		}

	case "consulta_receita":
		return r.beginQuery(in.userID, entity.Income, "receitas")

	case "consulta_despesa":
		return r.beginQuery(in.userID, entity.Expense, "despesas")

	case "dashboard":
		r.sessions.clear(in.userID)
		return reply{text: "🔗 Acesse o dashboard financeiro: " + r.dashboardURL +
			"\n\nLá você pode visualizar gráficos, análises detalhadas e simuladores financeiros."}

	case "cancelar":
		r.sessions.clear(in.userID)
		return reply{text: "❌ Operação cancelada.", keyboard: mainMenu}
	}

	return reply{}
}

func (r *Router) start(ctx context.Context, in inbound) reply {
	err := r.upsertUser.Execute(ctx, entity.User{
		ID:        in.userID,
		FirstName: in.firstName,
		Username:  in.username,
	})
	if err != nil {
		r.log.Error("register user", "user_id", in.userID, "error", err)
	}

	return reply{
		text:     "👋 Olá! O que você deseja registrar?",
		keyboard: mainMenu,
	}
}

func (r *Router) beginQuery(userID int64, variant entity.Variant, plural string) reply {
	session := r.sessions.begin(userID)
	session.QueryVariant = variant
	session.State = entity.StateMonthSelect
	return reply{
		text:     "📅 Qual mês você quer consultar as " + plural + "?",
		keyboard: withCancel(monthKeyboard()),
	}
}

// save performs the single insert of the session, then tears the session
// down whatever the outcome. Store failures become the generic message;
// there is no retry.
func (r *Router) save(ctx context.Context, session *entity.Session) reply {
	defer r.sessions.clear(session.UserID)

	err := r.createRecord.Execute(ctx, session.Record())
	if err == nil {
		return reply{text: "✅ Registro salvo com sucesso!", keyboard: mainMenu}
	}

	if errors.Is(err, usecase.ErrFutureDate) {
		return reply{text: "⚠️ Data futura não permitida! Use uma data válida.", keyboard: mainMenu}
	}

	r.log.Error("save record", "user_id", session.UserID, "variant", session.Variant, "error", err)
	return reply{text: "❌ Erro ao salvar! Tente novamente.", keyboard: mainMenu}
}

func (r *Router) resolveQuery(ctx context.Context, session *entity.Session, from, to time.Time) reply {
	defer r.sessions.clear(session.UserID)

	records, err := r.getByRange.Execute(ctx, session.QueryVariant, session.UserID, from, to)
	if err != nil {
		r.log.Error("query records", "user_id", session.UserID, "variant", session.QueryVariant, "error", err)
		return reply{text: "❌ Erro ao consultar! Tente novamente.", keyboard: mainMenu}
	}

	if len(records) == 0 {
		return reply{text: "📭 Nenhum registro encontrado para este mês.", keyboard: mainMenu}
	}

	lines := make([]string, 0, len(records))
	for _, rec := range records {
		lines = append(lines, "📌 "+rec.Date.Format(dateLayout)+" - "+rec.Category+
			" - R$"+rec.Amount.StringFixed(2)+" ("+rec.Description+")")
	}
	return reply{text: strings.Join(lines, "\n"), keyboard: mainMenu}
}
