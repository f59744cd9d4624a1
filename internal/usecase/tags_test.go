package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AgentTarik/financas-api/internal/domain"
	"github.com/AgentTarik/financas-api/internal/storage"
)

func TestTagService(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	t.Run("create with defaults", func(t *testing.T) {
		svc := NewTagService(log, newFakeTagRepo())

		tag, err := svc.Create(ctx, "Alimentação", "", "")
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultTagColor, tag.Color)
		assert.Equal(t, domain.DefaultTagIcon, tag.Icon)

		got, err := svc.Get(ctx, tag.ID)
		require.NoError(t, err)
		assert.True(t, got.Equal(tag))
	})

	t.Run("create rejects duplicate name", func(t *testing.T) {
		svc := NewTagService(log, newFakeTagRepo())

		_, err := svc.Create(ctx, "Lazer", "", "")
		require.NoError(t, err)

		_, err = svc.Create(ctx, "Lazer", "", "")
		assert.ErrorIs(t, err, storage.ErrTagAlreadyExists)
	})

	t.Run("create propagates validation errors", func(t *testing.T) {
		svc := NewTagService(log, newFakeTagRepo())

		_, err := svc.Create(ctx, "Lazer", "vermelho", "")
		assert.ErrorIs(t, err, domain.ErrTagColorInvalid)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("update applies only provided fields", func(t *testing.T) {
		svc := NewTagService(log, newFakeTagRepo())
		tag, err := svc.Create(ctx, "Mercado", "#4CAF50", "Cart")
		require.NoError(t, err)

		updated, err := svc.Update(ctx, tag.ID, "Supermercado", "", "")
		require.NoError(t, err)
		assert.Equal(t, "Supermercado", updated.Name)
		assert.Equal(t, "#4CAF50", updated.Color)
		assert.Equal(t, "Cart", updated.Icon)
	})

	t.Run("update of unknown tag fails", func(t *testing.T) {
		svc := NewTagService(log, newFakeTagRepo())

		_, err := svc.Update(ctx, "inexistente", "Nome", "", "")
		assert.ErrorIs(t, err, storage.ErrTagNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		svc := NewTagService(log, newFakeTagRepo())
		tag, err := svc.Create(ctx, "Temporária", "", "")
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, tag.ID))

		_, err = svc.Get(ctx, tag.ID)
		assert.ErrorIs(t, err, storage.ErrTagNotFound)
	})

	t.Run("uses requires an existing tag", func(t *testing.T) {
		svc := NewTagService(log, newFakeTagRepo())

		_, err := svc.Uses(ctx, "inexistente")
		assert.ErrorIs(t, err, storage.ErrTagNotFound)
	})

	t.Run("list", func(t *testing.T) {
		svc := NewTagService(log, newFakeTagRepo())
		_, err := svc.Create(ctx, "A", "", "")
		require.NoError(t, err)
		_, err = svc.Create(ctx, "B", "", "")
		require.NoError(t, err)

		tags, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, tags, 2)
	})
}
