package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrNegativeAmount = ValidationError("Valor monetário não pode ser negativo")
	ErrInvalidAmount  = ValidationError("Valor monetário deve ser um número válido")
	ErrNegativeResult = ValidationError("Resultado da subtração não pode ser negativo")
	ErrNegativeFactor = ValidationError("Fator de multiplicação não pode ser negativo")
	ErrInvalidFormat  = ValidationError("Formato de valor monetário inválido")
)

// Money holds a non-negative amount rounded to 2 decimal places.
// All operations return new values.
type Money struct {
	value float64
}

func NewMoney(v float64) (Money, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Money{}, ErrInvalidAmount
	}
	if v < 0 {
		return Money{}, ErrNegativeAmount
	}
	// arredonda para 2 casas para evitar problemas de precisão
	return Money{value: math.Round(v*100) / 100}, nil
}

func Zero() Money { return Money{} }

// MoneyFromString parses a display string like "R$ 1.234,56" or "1234.56".
func MoneyFromString(s string) (Money, error) {
	clean := strings.NewReplacer("R$", "", " ", "", "\t", "").Replace(s)
	if strings.Contains(clean, ",") {
		// vírgula como separador decimal; pontos viram separador de milhar
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.Replace(clean, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return Money{}, ErrInvalidFormat
	}
	return NewMoney(v)
}

func (m Money) Value() float64 { return m.value }

func (m Money) IsZero() bool { return m.value == 0 }

func (m Money) Add(other Money) Money {
	r, _ := NewMoney(m.value + other.value)
	return r
}

func (m Money) Sub(other Money) (Money, error) {
	diff := m.value - other.value
	if diff < 0 {
		return Money{}, ErrNegativeResult
	}
	return NewMoney(diff)
}

func (m Money) Mul(factor float64) (Money, error) {
	if factor < 0 {
		return Money{}, ErrNegativeFactor
	}
	return NewMoney(m.value * factor)
}

func (m Money) Equal(other Money) bool { return m.value == other.value }

func (m Money) String() string {
	return "R$ " + strings.Replace(fmt.Sprintf("%.2f", m.value), ".", ",", 1)
}
