package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AgentTarik/financas-api/internal/domain"
)

func TestRegisterTransaction(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	t.Run("registers an income", func(t *testing.T) {
		txs := &fakeTxRepo{}
		uc := NewRegisterTransaction(log, KindIncome, txs, newFakeTagRepo(), nil)

		res := uc.Execute(ctx, RegisterInput{
			Description: "Salário",
			Amount:      5000,
			Date:        "2024-03-01",
		})

		require.True(t, res.OK)
		assert.Equal(t, "Receita cadastrada com sucesso", res.Message)
		assert.Empty(t, res.Reason)
		assert.Equal(t, 5000.0, res.Transaction.Amount.Value())
		require.Len(t, txs.saved, 1)
		assert.Equal(t, res.Transaction.ID, txs.saved[0].ID)
	})

	t.Run("registers an expense with tags", func(t *testing.T) {
		tag, err := domain.CreateTag("Alimentação", "", "")
		require.NoError(t, err)
		txs := &fakeTxRepo{}
		uc := NewRegisterTransaction(log, KindExpense, txs, newFakeTagRepo(tag), nil)

		res := uc.Execute(ctx, RegisterInput{
			Description: "Mercado",
			Amount:      350.50,
			Date:        "15/03/2024",
			TagIDs:      []string{tag.ID},
		})

		require.True(t, res.OK)
		assert.Equal(t, "Despesa cadastrada com sucesso", res.Message)
		require.Len(t, res.Transaction.Tags, 1)
		assert.Equal(t, tag.ID, res.Transaction.Tags[0].ID)
	})

	t.Run("rejects missing fields with kind-specific messages", func(t *testing.T) {
		txs := &fakeTxRepo{}
		uc := NewRegisterTransaction(log, KindIncome, txs, newFakeTagRepo(), nil)

		res := uc.Execute(ctx, RegisterInput{Amount: 10, Date: "2024-03-01"})
		assert.False(t, res.OK)
		assert.Equal(t, "Descrição da receita é obrigatória", res.Message)
		assert.Equal(t, "validation", res.Reason)

		res = uc.Execute(ctx, RegisterInput{Description: "x", Date: "2024-03-01"})
		assert.Equal(t, "Valor da receita deve ser maior que zero", res.Message)

		res = uc.Execute(ctx, RegisterInput{Description: "x", Amount: 10})
		assert.Equal(t, "Data da receita é obrigatória", res.Message)

		assert.Zero(t, txs.saveCalls)
	})

	t.Run("rejects invalid date", func(t *testing.T) {
		uc := NewRegisterTransaction(log, KindExpense, &fakeTxRepo{}, newFakeTagRepo(), nil)

		res := uc.Execute(ctx, RegisterInput{Description: "x", Amount: 10, Date: "não é data"})
		assert.False(t, res.OK)
		assert.Equal(t, "validation", res.Reason)
	})

	t.Run("unknown tag aborts the whole registration", func(t *testing.T) {
		known, err := domain.CreateTag("Conhecida", "", "")
		require.NoError(t, err)
		txs := &fakeTxRepo{}
		uc := NewRegisterTransaction(log, KindIncome, txs, newFakeTagRepo(known), nil)

		res := uc.Execute(ctx, RegisterInput{
			Description: "Freela",
			Amount:      800,
			Date:        "2024-03-01",
			TagIDs:      []string{known.ID, "inexistente"},
		})

		assert.False(t, res.OK)
		assert.Equal(t, "tag_not_found", res.Reason)
		assert.Equal(t, "Tag com ID inexistente não encontrada", res.Message)
		assert.Zero(t, txs.saveCalls, "nada deve ser salvo quando uma tag não existe")
	})

	t.Run("tag lookup failure maps to db", func(t *testing.T) {
		tags := newFakeTagRepo()
		tags.findErr = errFakeStorage
		uc := NewRegisterTransaction(log, KindIncome, &fakeTxRepo{}, tags, nil)

		res := uc.Execute(ctx, RegisterInput{
			Description: "Freela",
			Amount:      800,
			Date:        "2024-03-01",
			TagIDs:      []string{"qualquer"},
		})

		assert.False(t, res.OK)
		assert.Equal(t, "db", res.Reason)
	})

	t.Run("save failure maps to db", func(t *testing.T) {
		txs := &fakeTxRepo{saveErr: errFakeStorage}
		uc := NewRegisterTransaction(log, KindExpense, txs, newFakeTagRepo(), nil)

		res := uc.Execute(ctx, RegisterInput{Description: "x", Amount: 10, Date: "2024-03-01"})

		assert.False(t, res.OK)
		assert.Equal(t, "db", res.Reason)
		assert.Equal(t, "Erro ao salvar despesa", res.Message)
	})

	t.Run("notify runs after a successful save", func(t *testing.T) {
		var gotTx domain.Transaction
		var gotKind Kind
		notify := func(tx domain.Transaction, kind Kind) {
			gotTx = tx
			gotKind = kind
		}
		uc := NewRegisterTransaction(log, KindIncome, &fakeTxRepo{}, newFakeTagRepo(), notify)

		res := uc.Execute(ctx, RegisterInput{Description: "Bônus", Amount: 100, Date: "2024-03-01"})

		require.True(t, res.OK)
		assert.Equal(t, res.Transaction.ID, gotTx.ID)
		assert.Equal(t, KindIncome, gotKind)
	})

	t.Run("notify skipped on failure", func(t *testing.T) {
		called := false
		notify := func(domain.Transaction, Kind) { called = true }
		uc := NewRegisterTransaction(log, KindIncome, &fakeTxRepo{saveErr: errFakeStorage}, newFakeTagRepo(), notify)

		uc.Execute(ctx, RegisterInput{Description: "x", Amount: 10, Date: "2024-03-01"})

		assert.False(t, called)
	})
}
