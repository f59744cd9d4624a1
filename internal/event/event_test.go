package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AgentTarik/financas-api/internal/domain"
)

func registeredTx(t *testing.T) domain.Transaction {
	t.Helper()
	tag, err := domain.CreateTag("Alimentação", "", "")
	require.NoError(t, err)
	amount, err := domain.NewMoney(350.50)
	require.NoError(t, err)
	date, err := domain.DateFromString("2024-03-15")
	require.NoError(t, err)
	tx, err := domain.CreateTransaction("Mercado", amount, date, []domain.Tag{tag})
	require.NoError(t, err)
	return tx
}

func TestNewTransactionRegistered(t *testing.T) {
	tx := registeredTx(t)

	ev := NewTransactionRegistered(tx, "despesa")

	assert.Equal(t, "transaction_registered", ev.Event)
	assert.Equal(t, tx.ID, ev.TransactionID)
	assert.Equal(t, "despesa", ev.Kind)
	assert.Equal(t, 350.50, ev.Amount)
	assert.Equal(t, "2024-03-15", ev.Date)
	require.Len(t, ev.TagIDs, 1)
	assert.Equal(t, tx.Tags[0].ID, ev.TagIDs[0])
	assert.NotEmpty(t, ev.RegisteredAt)
}

func TestValidator(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	t.Run("accepts a freshly built event", func(t *testing.T) {
		ev := NewTransactionRegistered(registeredTx(t), "despesa")
		assert.NoError(t, v.Validate(ev))
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		ev := NewTransactionRegistered(registeredTx(t), "transferência")
		assert.Error(t, v.Validate(ev))
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		assert.Error(t, v.Validate(map[string]any{"event": "transaction_registered"}))
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		ev := NewTransactionRegistered(registeredTx(t), "receita")
		ev.Amount = -1
		assert.Error(t, v.Validate(ev))
	})
}
