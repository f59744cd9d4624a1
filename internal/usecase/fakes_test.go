package usecase

import (
	"context"
	"errors"

	"github.com/AgentTarik/financas-api/internal/domain"
	"github.com/AgentTarik/financas-api/internal/storage"
)

// fakeTagRepo serves tags from a map and can be forced to fail.
type fakeTagRepo struct {
	tags    map[string]domain.Tag
	findErr error
}

func newFakeTagRepo(tags ...domain.Tag) *fakeTagRepo {
	m := make(map[string]domain.Tag, len(tags))
	for _, tg := range tags {
		m[tg.ID] = tg
	}
	return &fakeTagRepo{tags: m}
}

func (f *fakeTagRepo) SaveTag(_ context.Context, tag domain.Tag) error {
	f.tags[tag.ID] = tag
	return nil
}

func (f *fakeTagRepo) FindTagByID(_ context.Context, id string) (domain.Tag, error) {
	if f.findErr != nil {
		return domain.Tag{}, f.findErr
	}
	tag, ok := f.tags[id]
	if !ok {
		return domain.Tag{}, storage.ErrTagNotFound
	}
	return tag, nil
}

func (f *fakeTagRepo) FindTagByName(_ context.Context, name string) (domain.Tag, error) {
	for _, tg := range f.tags {
		if tg.Name == name {
			return tg, nil
		}
	}
	return domain.Tag{}, storage.ErrTagNotFound
}

func (f *fakeTagRepo) ListTags(_ context.Context) ([]domain.Tag, error) {
	out := make([]domain.Tag, 0, len(f.tags))
	for _, tg := range f.tags {
		out = append(out, tg)
	}
	return out, nil
}

func (f *fakeTagRepo) DeleteTag(_ context.Context, id string) error {
	if _, ok := f.tags[id]; !ok {
		return storage.ErrTagNotFound
	}
	delete(f.tags, id)
	return nil
}

func (f *fakeTagRepo) CountTags(_ context.Context) (int, error) { return len(f.tags), nil }

func (f *fakeTagRepo) CountTagUses(_ context.Context, _ string) (int, error) { return 0, nil }

// fakeTxRepo records saves and serves canned period listings.
type fakeTxRepo struct {
	saved     []domain.Transaction
	byPeriod  []domain.Transaction
	saveErr   error
	listErr   error
	saveCalls int
}

var errFakeStorage = errors.New("storage indisponível")

func (f *fakeTxRepo) SaveTransaction(_ context.Context, tx domain.Transaction) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, tx)
	return nil
}

func (f *fakeTxRepo) FindTransactionByID(_ context.Context, id string) (domain.Transaction, error) {
	for _, tx := range f.saved {
		if tx.ID == id {
			return tx, nil
		}
	}
	return domain.Transaction{}, storage.ErrTransactionNotFound
}

func (f *fakeTxRepo) ListTransactions(_ context.Context) ([]domain.Transaction, error) {
	return f.saved, nil
}

func (f *fakeTxRepo) ListByPeriod(_ context.Context, _ domain.Period) ([]domain.Transaction, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.byPeriod, nil
}

func (f *fakeTxRepo) ListByTag(_ context.Context, _ string) ([]domain.Transaction, error) {
	return nil, nil
}

func (f *fakeTxRepo) DeleteTransaction(_ context.Context, _ string) error { return nil }

func (f *fakeTxRepo) CountByPeriod(_ context.Context, _ domain.Period) (int, error) {
	return len(f.byPeriod), nil
}
