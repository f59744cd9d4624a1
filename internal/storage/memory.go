package storage

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/AgentTarik/financas-api/internal/domain"
)

// MemoryStore implements TagRepo and holds one transaction table per kind.
// Used by tests and local runs without a database.
type MemoryStore struct {
	mu    sync.RWMutex
	tags  map[string]domain.Tag
	users map[string]User

	incomes  *memoryTxTable
	expenses *memoryTxTable
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{tags: make(map[string]domain.Tag), users: make(map[string]User)}
	s.incomes = &memoryTxTable{parent: s, txs: make(map[string]domain.Transaction)}
	s.expenses = &memoryTxTable{parent: s, txs: make(map[string]domain.Transaction)}
	return s
}

// Incomes returns the income transaction repository.
func (s *MemoryStore) Incomes() TransactionRepo { return s.incomes }

// Expenses returns the expense transaction repository.
func (s *MemoryStore) Expenses() TransactionRepo { return s.expenses }

func (s *MemoryStore) SaveTag(_ context.Context, tag domain.Tag) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, existing := range s.tags {
		if id != tag.ID && strings.EqualFold(existing.Name, tag.Name) {
			return ErrTagAlreadyExists
		}
	}
	s.tags[tag.ID] = tag
	return nil
}

func (s *MemoryStore) FindTagByID(_ context.Context, id string) (domain.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tags[id]
	if !ok {
		return domain.Tag{}, ErrTagNotFound
	}
	return t, nil
}

func (s *MemoryStore) FindTagByName(_ context.Context, name string) (domain.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tags {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return domain.Tag{}, ErrTagNotFound
}

func (s *MemoryStore) ListTags(_ context.Context) ([]domain.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Tag, 0, len(s.tags))
	for _, t := range s.tags {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemoryStore) DeleteTag(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tags[id]; !ok {
		return ErrTagNotFound
	}
	delete(s.tags, id)
	s.incomes.detachTagLocked(id)
	s.expenses.detachTagLocked(id)
	return nil
}

func (s *MemoryStore) CountTags(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tags), nil
}

func (s *MemoryStore) CountTagUses(_ context.Context, tagID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.incomes.countTagLocked(tagID) + s.expenses.countTagLocked(tagID), nil
}

// memoryTxTable is one in-memory transaction table; incomes and expenses each
// get their own, sharing the parent store's lock.
type memoryTxTable struct {
	parent *MemoryStore
	txs    map[string]domain.Transaction
}

func (m *memoryTxTable) SaveTransaction(_ context.Context, tx domain.Transaction) error {
	m.parent.mu.Lock()
	defer m.parent.mu.Unlock()
	m.txs[tx.ID] = tx
	return nil
}

func (m *memoryTxTable) FindTransactionByID(_ context.Context, id string) (domain.Transaction, error) {
	m.parent.mu.RLock()
	defer m.parent.mu.RUnlock()
	tx, ok := m.txs[id]
	if !ok {
		return domain.Transaction{}, ErrTransactionNotFound
	}
	return tx, nil
}

func (m *memoryTxTable) ListTransactions(_ context.Context) ([]domain.Transaction, error) {
	m.parent.mu.RLock()
	defer m.parent.mu.RUnlock()
	return m.collectLocked(func(domain.Transaction) bool { return true }), nil
}

func (m *memoryTxTable) ListByPeriod(_ context.Context, p domain.Period) ([]domain.Transaction, error) {
	m.parent.mu.RLock()
	defer m.parent.mu.RUnlock()
	return m.collectLocked(func(tx domain.Transaction) bool {
		return tx.Date.InPeriod(p.Month, p.Year)
	}), nil
}

func (m *memoryTxTable) ListByTag(_ context.Context, tagID string) ([]domain.Transaction, error) {
	m.parent.mu.RLock()
	defer m.parent.mu.RUnlock()
	return m.collectLocked(func(tx domain.Transaction) bool {
		for _, t := range tx.Tags {
			if t.ID == tagID {
				return true
			}
		}
		return false
	}), nil
}

func (m *memoryTxTable) DeleteTransaction(_ context.Context, id string) error {
	m.parent.mu.Lock()
	defer m.parent.mu.Unlock()
	if _, ok := m.txs[id]; !ok {
		return ErrTransactionNotFound
	}
	delete(m.txs, id)
	return nil
}

func (m *memoryTxTable) CountByPeriod(_ context.Context, p domain.Period) (int, error) {
	m.parent.mu.RLock()
	defer m.parent.mu.RUnlock()
	n := 0
	for _, tx := range m.txs {
		if tx.Date.InPeriod(p.Month, p.Year) {
			n++
		}
	}
	return n, nil
}

func (m *memoryTxTable) collectLocked(keep func(domain.Transaction) bool) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(m.txs))
	for _, tx := range m.txs {
		if keep(tx) {
			out = append(out, tx)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[j].Date.Before(out[i].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (m *memoryTxTable) detachTagLocked(tagID string) {
	for id, tx := range m.txs {
		kept := tx.Tags[:0:0]
		for _, t := range tx.Tags {
			if t.ID != tagID {
				kept = append(kept, t)
			}
		}
		tx.Tags = kept
		m.txs[id] = tx
	}
}

func (m *memoryTxTable) countTagLocked(tagID string) int {
	n := 0
	for _, tx := range m.txs {
		for _, t := range tx.Tags {
			if t.ID == tagID {
				n++
				break
			}
		}
	}
	return n
}
