package storage

import (
	"context"
	"errors"

	"github.com/AgentTarik/financas-api/internal/domain"
)

var (
	ErrTagNotFound         = errors.New("tag não encontrada")
	ErrTagAlreadyExists    = errors.New("já existe uma tag com este nome")
	ErrTransactionNotFound = errors.New("transação não encontrada")
)

// TagRepo is the persistence port for tags.
type TagRepo interface {
	SaveTag(ctx context.Context, tag domain.Tag) error
	FindTagByID(ctx context.Context, id string) (domain.Tag, error)
	FindTagByName(ctx context.Context, name string) (domain.Tag, error)
	ListTags(ctx context.Context) ([]domain.Tag, error)
	// DeleteTag removes the tag and all of its transaction associations.
	DeleteTag(ctx context.Context, id string) error
	CountTags(ctx context.Context) (int, error)
	// CountTagUses counts how many transactions (income + expense) carry the tag.
	CountTagUses(ctx context.Context, tagID string) (int, error)
}

// TransactionRepo is the persistence port shared by incomes and expenses.
// Each kind gets its own instance backed by its own table.
type TransactionRepo interface {
	SaveTransaction(ctx context.Context, tx domain.Transaction) error
	FindTransactionByID(ctx context.Context, id string) (domain.Transaction, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	ListByPeriod(ctx context.Context, p domain.Period) ([]domain.Transaction, error)
	ListByTag(ctx context.Context, tagID string) ([]domain.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	CountByPeriod(ctx context.Context, p domain.Period) (int, error)
}
