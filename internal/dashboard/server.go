// Package dashboard serves the aggregate views and simulators as a JSON
// API. The front end polls on a fixed interval; every request recomputes
// its views from the raw rows, with no cache in between.
package dashboard

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Caiohenrks/bot-financeiro-telegram/internal/entity"
	"github.com/Caiohenrks/bot-financeiro-telegram/internal/report"
	"github.com/Caiohenrks/bot-financeiro-telegram/internal/simulator"
	"github.com/Caiohenrks/bot-financeiro-telegram/internal/usecase"
)

type Server struct {
	app      *fiber.App
	validate *validator.Validate

	listUsers   *usecase.ListUsers
	listRecords *usecase.ListRecords

	log *slog.Logger
}

func New(listUsers *usecase.ListUsers, listRecords *usecase.ListRecords, log *slog.Logger) *Server {
	s := &Server{
		app:         fiber.New(fiber.Config{AppName: "dashboard-financeiro"}),
		validate:    validator.New(),
		listUsers:   listUsers,
		listRecords: listRecords,
		log:         log,
	}

	s.app.Use(recover.New())

	api := s.app.Group("/api")
	api.Get("/users", s.users)
	api.Get("/overview", s.overview)
	api.Get("/analysis", s.analysis)
	api.Post("/simulators/investment", s.simulateInvestment)
	api.Post("/simulators/goal/months", s.simulateGoalMonths)
	api.Post("/simulators/goal/contribution", s.simulateGoalContribution)

	return s
}

// App exposes the fiber application, for serving and for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen(port int) error {
	return s.app.Listen(fmt.Sprintf(":%d", port))
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) users(c *fiber.Ctx) error {
	users, err := s.listUsers.Execute(c.Context())
	if err != nil {
		return s.storeError(c, "list users", err)
	}
	return c.JSON(fiber.Map{"users": users})
}

// userFilter reads the user_id query parameter. Absent or "all" means
// every user.
func userFilter(c *fiber.Ctx) (*int64, error) {
	raw := c.Query("user_id")
	if raw == "" || raw == "all" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid user_id %q", raw)
	}
	return &id, nil
}

type overviewResponse struct {
	Summary            report.Summary      `json:"summary"`
	ExpensesByCategory []report.Group      `json:"expenses_by_category"`
	IncomesBySource    []report.Group      `json:"incomes_by_source"`
	IncomesByMonth     []report.Group      `json:"incomes_by_month"`
	ExpensesByMonth    []report.Group      `json:"expenses_by_month"`
	Ratio              []report.RatioPoint `json:"ratio"`
}

func (s *Server) overview(c *fiber.Ctx) error {
	userID, err := userFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	incomes, expenses, err := s.fetch(c, userID)
	if err != nil {
		return s.storeError(c, "overview", err)
	}

	incomesByMonth := report.SumByMonth(incomes)
	expensesByMonth := report.SumByMonth(expenses)

	return c.JSON(overviewResponse{
		Summary:            report.Summarize(incomes, expenses),
		ExpensesByCategory: report.SumBy(expenses, report.ByCategory),
		IncomesBySource:    report.SumBy(incomes, report.ByClassifier),
		IncomesByMonth:     incomesByMonth,
		ExpensesByMonth:    expensesByMonth,
		Ratio:              report.RatioSeries(incomesByMonth, expensesByMonth),
	})
}

type analysisResponse struct {
	TopExpenseCategories []report.Group `json:"top_expense_categories"`
	TopIncomeSources     []report.Group `json:"top_income_sources"`
	ExpensesByMonth      []report.Group `json:"expenses_by_month"`
	IncomesByMonth       []report.Group `json:"incomes_by_month"`
	ExpensesByYear       []report.Group `json:"expenses_by_year"`
	IncomesByYear        []report.Group `json:"incomes_by_year"`
}

func (s *Server) analysis(c *fiber.Ctx) error {
	userID, err := userFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	incomes, expenses, err := s.fetch(c, userID)
	if err != nil {
		return s.storeError(c, "analysis", err)
	}

	return c.JSON(analysisResponse{
		TopExpenseCategories: report.TopN(expenses, report.ByCategory, 5),
		TopIncomeSources:     report.TopN(incomes, report.ByClassifier, 5),
		ExpensesByMonth:      report.SumByMonth(expenses),
		IncomesByMonth:       report.SumByMonth(incomes),
		ExpensesByYear:       report.SumByYear(expenses),
		IncomesByYear:        report.SumByYear(incomes),
	})
}

func (s *Server) fetch(c *fiber.Ctx, userID *int64) (incomes, expenses []entity.Record, err error) {
	incomes, err = s.listRecords.Execute(c.Context(), entity.Income, userID)
	if err != nil {
		return nil, nil, err
	}
	expenses, err = s.listRecords.Execute(c.Context(), entity.Expense, userID)
	if err != nil {
		return nil, nil, err
	}
	return incomes, expenses, nil
}

type investmentRequest struct {
	Initial    float64 `json:"initial" validate:"gte=0"`
	Monthly    float64 `json:"monthly" validate:"gte=0"`
	AnnualRate float64 `json:"annual_rate" validate:"gte=0"`
	Years      int     `json:"years" validate:"required,gt=0"`
}

func (s *Server) simulateInvestment(c *fiber.Ctx) error {
	var req investmentRequest
	if err := s.decode(c, &req); err != nil {
		return s.badInput(c)
	}
	return c.JSON(simulator.Project(req.Initial, req.Monthly, req.AnnualRate, req.Years*12))
}

type goalMonthsRequest struct {
	Target     float64 `json:"target" validate:"required,gt=0"`
	Monthly    float64 `json:"monthly" validate:"required,gt=0"`
	AnnualRate float64 `json:"annual_rate" validate:"gte=0"`
}

func (s *Server) simulateGoalMonths(c *fiber.Ctx) error {
	var req goalMonthsRequest
	if err := s.decode(c, &req); err != nil {
		return s.badInput(c)
	}
	return c.JSON(simulator.MonthsToTarget(req.Target, req.Monthly, req.AnnualRate))
}

type goalContributionRequest struct {
	Target     float64 `json:"target" validate:"required,gt=0"`
	Initial    float64 `json:"initial" validate:"gte=0"`
	AnnualRate float64 `json:"annual_rate" validate:"gte=0"`
	Months     int     `json:"months" validate:"required,gt=0"`
}

func (s *Server) simulateGoalContribution(c *fiber.Ctx) error {
	var req goalContributionRequest
	if err := s.decode(c, &req); err != nil {
		return s.badInput(c)
	}
	return c.JSON(simulator.RequiredContribution(req.Target, req.Initial, req.AnnualRate, req.Months))
}

func (s *Server) decode(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return err
	}
	return s.validate.Struct(req)
}

// badInput is the recoverable simulator-form condition: the page stays
// up, the form shows the fill-in message.
func (s *Server) badInput(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Por favor, preencha todos os campos corretamente.",
	})
}

func (s *Server) storeError(c *fiber.Ctx, op string, err error) error {
	s.log.Error(op, "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "erro ao consultar os dados",
	})
}
