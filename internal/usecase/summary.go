package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/AgentTarik/financas-api/internal/domain"
	"github.com/AgentTarik/financas-api/internal/storage"
	"github.com/AgentTarik/financas-api/telemetry"
)

type SummaryInput struct {
	Month int
	Year  int
}

type SummaryResult struct {
	OK      bool
	Summary domain.Summary
	Message string
	Reason  string // empty on success: validation | db
}

// GenerateSummary aggregates one month of incomes and expenses.
type GenerateSummary struct {
	log      *zap.Logger
	incomes  storage.TransactionRepo
	expenses storage.TransactionRepo
}

func NewGenerateSummary(log *zap.Logger, incomes, expenses storage.TransactionRepo) *GenerateSummary {
	return &GenerateSummary{log: log, incomes: incomes, expenses: expenses}
}

func (uc *GenerateSummary) Execute(ctx context.Context, in SummaryInput) SummaryResult {
	p, err := domain.NewPeriod(in.Month, in.Year)
	if err != nil {
		return SummaryResult{Message: err.Error(), Reason: "validation"}
	}

	// períodos além de ~1 ano no futuro não fazem sentido para resumo
	now := time.Now()
	requested := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.Local)
	horizon := time.Date(now.Year()+1, now.Month(), 1, 0, 0, 0, 0, time.Local)
	if requested.After(horizon) {
		return SummaryResult{Message: "Não é possível gerar resumo para períodos muito futuros", Reason: "validation"}
	}

	var incomes, expenses []domain.Transaction
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		incomes, err = uc.incomes.ListByPeriod(gctx, p)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = uc.expenses.ListByPeriod(gctx, p)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.log.Error("failed to load period transactions", zap.Error(err),
			zap.Int("mes", p.Month), zap.Int("ano", p.Year))
		return SummaryResult{Message: "Erro ao buscar transações do período", Reason: "db"}
	}

	summary := domain.BuildSummary(incomes, expenses, p)
	telemetry.IncSummariesGenerated()
	return SummaryResult{OK: true, Summary: summary, Message: "Resumo financeiro gerado com sucesso"}
}
