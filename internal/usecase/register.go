package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/AgentTarik/financas-api/internal/domain"
	"github.com/AgentTarik/financas-api/internal/storage"
	"github.com/AgentTarik/financas-api/telemetry"
)

// Kind labels the two transaction flavors. They share the registration
// algorithm and differ only in the repository written to.
type Kind string

const (
	KindIncome  Kind = "receita"
	KindExpense Kind = "despesa"
)

type RegisterInput struct {
	Description string
	Amount      float64
	Date        string
	TagIDs      []string
}

// RegisterResult is the failure-or-success union returned to callers.
// No error ever escapes the use case.
type RegisterResult struct {
	OK          bool
	Transaction domain.Transaction
	Message     string
	Reason      string // empty on success: validation | tag_not_found | db
}

// RegisterTransaction validates input, resolves tags and persists a new
// income or expense.
type RegisterTransaction struct {
	log    *zap.Logger
	kind   Kind
	txs    storage.TransactionRepo
	tags   storage.TagRepo
	notify func(domain.Transaction, Kind)
}

// NewRegisterTransaction wires one registration use case per kind. notify is
// optional and called after a successful save (event publishing).
func NewRegisterTransaction(log *zap.Logger, kind Kind, txs storage.TransactionRepo, tags storage.TagRepo, notify func(domain.Transaction, Kind)) *RegisterTransaction {
	return &RegisterTransaction{log: log, kind: kind, txs: txs, tags: tags, notify: notify}
}

func (uc *RegisterTransaction) Execute(ctx context.Context, in RegisterInput) RegisterResult {
	if strings.TrimSpace(in.Description) == "" {
		telemetry.IncTransactionsFailed("validation")
		return failure(fmt.Sprintf("Descrição da %s é obrigatória", uc.kind))
	}
	if in.Amount <= 0 {
		telemetry.IncTransactionsFailed("validation")
		return failure(fmt.Sprintf("Valor da %s deve ser maior que zero", uc.kind))
	}
	if strings.TrimSpace(in.Date) == "" {
		telemetry.IncTransactionsFailed("validation")
		return failure(fmt.Sprintf("Data da %s é obrigatória", uc.kind))
	}

	amount, err := domain.NewMoney(in.Amount)
	if err != nil {
		telemetry.IncTransactionsFailed("validation")
		return failure(err.Error())
	}
	date, err := domain.DateFromString(in.Date)
	if err != nil {
		telemetry.IncTransactionsFailed("validation")
		return failure(err.Error())
	}

	tags, err := uc.resolveTags(ctx, in.TagIDs)
	if err != nil {
		reason := "db"
		if errors.Is(err, storage.ErrTagNotFound) {
			reason = "tag_not_found"
		}
		telemetry.IncTransactionsFailed(reason)
		return failureWith(reason, err.Error())
	}

	tx, err := domain.CreateTransaction(in.Description, amount, date, tags)
	if err != nil {
		telemetry.IncTransactionsFailed("validation")
		return failure(err.Error())
	}

	if err := uc.txs.SaveTransaction(ctx, tx); err != nil {
		uc.log.Error("failed to save transaction", zap.Error(err), zap.String("kind", string(uc.kind)))
		telemetry.IncTransactionsFailed("db")
		return failureWith("db", fmt.Sprintf("Erro ao salvar %s", uc.kind))
	}

	if uc.notify != nil {
		uc.notify(tx, uc.kind)
	}
	telemetry.IncTransactionsRegistered(string(uc.kind))

	label := "Receita"
	if uc.kind == KindExpense {
		label = "Despesa"
	}
	return RegisterResult{OK: true, Transaction: tx, Message: label + " cadastrada com sucesso"}
}

// resolveTags fails as a whole when any id is unknown; a partially tagged
// transaction is never created.
func (uc *RegisterTransaction) resolveTags(ctx context.Context, ids []string) ([]domain.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	tags := make([]domain.Tag, 0, len(ids))
	for _, id := range ids {
		tag, err := uc.tags.FindTagByID(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrTagNotFound) {
				return nil, &TagNotFoundError{ID: id}
			}
			return nil, fmt.Errorf("Erro ao buscar tag %s", id)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// TagNotFoundError carries the offending id and unwraps to the storage
// sentinel so callers can still branch on it.
type TagNotFoundError struct{ ID string }

func (e *TagNotFoundError) Error() string {
	return fmt.Sprintf("Tag com ID %s não encontrada", e.ID)
}

func (e *TagNotFoundError) Unwrap() error { return storage.ErrTagNotFound }

func failure(msg string) RegisterResult {
	return RegisterResult{OK: false, Message: msg, Reason: "validation"}
}

func failureWith(reason, msg string) RegisterResult {
	return RegisterResult{OK: false, Message: msg, Reason: reason}
}
