package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	maxDescriptionLen = 200
	maxTagsPerTx      = 10
)

var (
	ErrTxIDRequired         = ValidationError("ID da transação é obrigatório")
	ErrDescriptionRequired  = ValidationError("Descrição da transação é obrigatória")
	ErrDescriptionTooLong   = ValidationError("Descrição da transação não pode ter mais de 200 caracteres")
	ErrTooManyTags          = ValidationError("Uma transação não pode ter mais de 10 tags")
	ErrTagAlreadyAssociated = ValidationError("Tag já está associada a esta transação")
	ErrTagNotAssociated     = ValidationError("Tag não está associada a esta transação")
)

// Transaction is an income or an expense. The two share this shape and are
// distinguished only by the repository they are persisted through.
type Transaction struct {
	ID          string
	Description string
	Amount      Money
	Date        Date
	Tags        []Tag
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewTransaction(id, description string, amount Money, date Date, tags []Tag, createdAt, updatedAt time.Time) (Transaction, error) {
	if strings.TrimSpace(id) == "" {
		return Transaction{}, ErrTxIDRequired
	}
	if err := validateDescription(description); err != nil {
		return Transaction{}, err
	}
	deduped := dedupeTags(tags)
	if len(deduped) > maxTagsPerTx {
		return Transaction{}, ErrTooManyTags
	}
	now := time.Now()
	if createdAt.IsZero() {
		createdAt = now
	}
	if updatedAt.IsZero() {
		updatedAt = now
	}
	return Transaction{
		ID:          id,
		Description: strings.TrimSpace(description),
		Amount:      amount,
		Date:        date,
		Tags:        deduped,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

// CreateTransaction generates a fresh id and stamps both timestamps.
func CreateTransaction(description string, amount Money, date Date, tags []Tag) (Transaction, error) {
	return NewTransaction(uuid.NewString(), description, amount, date, tags, time.Time{}, time.Time{})
}

func (tx Transaction) WithDescription(description string) (Transaction, error) {
	if err := validateDescription(description); err != nil {
		return Transaction{}, err
	}
	tx.Description = strings.TrimSpace(description)
	tx.UpdatedAt = time.Now()
	return tx, nil
}

func (tx Transaction) WithAmount(amount Money) Transaction {
	tx.Amount = amount
	tx.UpdatedAt = time.Now()
	return tx
}

func (tx Transaction) WithDate(date Date) Transaction {
	tx.Date = date
	tx.UpdatedAt = time.Now()
	return tx
}

func (tx Transaction) AddTag(tag Tag) (Transaction, error) {
	if tx.HasTag(tag) {
		return Transaction{}, ErrTagAlreadyAssociated
	}
	if len(tx.Tags)+1 > maxTagsPerTx {
		return Transaction{}, ErrTooManyTags
	}
	tags := make([]Tag, len(tx.Tags), len(tx.Tags)+1)
	copy(tags, tx.Tags)
	tx.Tags = append(tags, tag)
	tx.UpdatedAt = time.Now()
	return tx, nil
}

func (tx Transaction) RemoveTag(tag Tag) (Transaction, error) {
	idx := -1
	for i, t := range tx.Tags {
		if t.Equal(tag) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Transaction{}, ErrTagNotAssociated
	}
	tags := make([]Tag, 0, len(tx.Tags)-1)
	tags = append(tags, tx.Tags[:idx]...)
	tags = append(tags, tx.Tags[idx+1:]...)
	tx.Tags = tags
	tx.UpdatedAt = time.Now()
	return tx, nil
}

func (tx Transaction) HasTag(tag Tag) bool {
	for _, t := range tx.Tags {
		if t.Equal(tag) {
			return true
		}
	}
	return false
}

func (tx Transaction) Equal(other Transaction) bool { return tx.ID == other.ID }

func validateDescription(description string) error {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return ErrDescriptionRequired
	}
	if len([]rune(trimmed)) > maxDescriptionLen {
		return ErrDescriptionTooLong
	}
	return nil
}

func dedupeTags(tags []Tag) []Tag {
	out := make([]Tag, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	return out
}
