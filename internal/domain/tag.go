package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultTagColor = "#6B7280"
	DefaultTagIcon  = "Category"

	maxTagNameLen = 50
	maxIconLen    = 50
)

var (
	ErrTagIDRequired   = ValidationError("ID da tag é obrigatório")
	ErrTagNameRequired = ValidationError("Nome da tag é obrigatório")
	ErrTagNameTooLong  = ValidationError("Nome da tag não pode ter mais de 50 caracteres")
	ErrTagColorInvalid = ValidationError("Cor deve estar no formato hexadecimal (#RRGGBB)")
	ErrTagIconRequired = ValidationError("Ícone da tag é obrigatório")
	ErrTagIconTooLong  = ValidationError("Nome do ícone não pode ter mais de 50 caracteres")
)

var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Tag is a named, colored label applied to transactions.
// Identity is the id; two tags are equal iff ids match.
type Tag struct {
	ID        string
	Name      string
	Color     string
	Icon      string
	CreatedAt time.Time
}

func NewTag(id, name, color, icon string, createdAt time.Time) (Tag, error) {
	if strings.TrimSpace(id) == "" {
		return Tag{}, ErrTagIDRequired
	}
	if color == "" {
		color = DefaultTagColor
	}
	if icon == "" {
		icon = DefaultTagIcon
	}
	if err := validateTagName(name); err != nil {
		return Tag{}, err
	}
	if !hexColorRe.MatchString(color) {
		return Tag{}, ErrTagColorInvalid
	}
	if err := validateTagIcon(icon); err != nil {
		return Tag{}, err
	}
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return Tag{
		ID:        id,
		Name:      strings.TrimSpace(name),
		Color:     color,
		Icon:      strings.TrimSpace(icon),
		CreatedAt: createdAt,
	}, nil
}

// CreateTag generates a fresh id and creation timestamp.
func CreateTag(name, color, icon string) (Tag, error) {
	return NewTag(uuid.NewString(), name, color, icon, time.Now())
}

func (t Tag) Rename(name string) (Tag, error) {
	if err := validateTagName(name); err != nil {
		return Tag{}, err
	}
	t.Name = strings.TrimSpace(name)
	return t, nil
}

func (t Tag) Recolor(color string) (Tag, error) {
	if !hexColorRe.MatchString(color) {
		return Tag{}, ErrTagColorInvalid
	}
	t.Color = color
	return t, nil
}

func (t Tag) Reicon(icon string) (Tag, error) {
	if err := validateTagIcon(icon); err != nil {
		return Tag{}, err
	}
	t.Icon = strings.TrimSpace(icon)
	return t, nil
}

func (t Tag) Equal(other Tag) bool { return t.ID == other.ID }

func validateTagName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrTagNameRequired
	}
	if len([]rune(trimmed)) > maxTagNameLen {
		return ErrTagNameTooLong
	}
	return nil
}

func validateTagIcon(icon string) error {
	trimmed := strings.TrimSpace(icon)
	if trimmed == "" {
		return ErrTagIconRequired
	}
	if len([]rune(trimmed)) > maxIconLen {
		return ErrTagIconTooLong
	}
	return nil
}
