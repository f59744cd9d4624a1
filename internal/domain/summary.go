package domain

import (
	"time"
)

var (
	ErrInvalidMonth = ValidationError("Mês deve estar entre 1 e 12")
	ErrInvalidYear  = ValidationError("Ano deve ser válido")
)

// Period is the month/year pair that scopes a summary.
type Period struct {
	Month int `json:"mes"`
	Year  int `json:"ano"`
}

func NewPeriod(month, year int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, ErrInvalidMonth
	}
	if year < 1900 || year > time.Now().Year()+10 {
		return Period{}, ErrInvalidYear
	}
	return Period{Month: month, Year: year}, nil
}

// TagTotals accumulates per-tag income and expense sums for reporting views.
type TagTotals struct {
	Tag     Tag
	Income  Money
	Expense Money
}

// Summary is a derived aggregation over one period. It is never persisted
// and never mutated after construction.
type Summary struct {
	Period       Period
	TotalIncome  Money
	TotalExpense Money
	Balance      Money // magnitude only; sign exposed via the predicates
	IncomeCount  int
	ExpenseCount int
	ByTag        []TagTotals
	GeneratedAt  time.Time

	signedDiff float64
}

// BuildSummary filters both lists to exactly the period and aggregates.
// Repositories already scope by period; the re-filter keeps the math honest
// regardless of what they return.
func BuildSummary(incomes, expenses []Transaction, p Period) Summary {
	totalIncome := Zero()
	totalExpense := Zero()
	incomeCount := 0
	expenseCount := 0

	byTag := map[string]*TagTotals{}
	var order []string

	accumulate := func(tx Transaction, income bool) {
		for _, tag := range tx.Tags {
			entry, ok := byTag[tag.ID]
			if !ok {
				entry = &TagTotals{Tag: tag, Income: Zero(), Expense: Zero()}
				byTag[tag.ID] = entry
				order = append(order, tag.ID)
			}
			if income {
				entry.Income = entry.Income.Add(tx.Amount)
			} else {
				entry.Expense = entry.Expense.Add(tx.Amount)
			}
		}
	}

	for _, tx := range incomes {
		if !tx.Date.InPeriod(p.Month, p.Year) {
			continue
		}
		totalIncome = totalIncome.Add(tx.Amount)
		incomeCount++
		accumulate(tx, true)
	}
	for _, tx := range expenses {
		if !tx.Date.InPeriod(p.Month, p.Year) {
			continue
		}
		totalExpense = totalExpense.Add(tx.Amount)
		expenseCount++
		accumulate(tx, false)
	}

	diff := totalIncome.Value() - totalExpense.Value()
	balance, _ := NewMoney(abs(diff))

	totals := make([]TagTotals, 0, len(order))
	for _, id := range order {
		totals = append(totals, *byTag[id])
	}

	return Summary{
		Period:       p,
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      balance,
		IncomeCount:  incomeCount,
		ExpenseCount: expenseCount,
		ByTag:        totals,
		GeneratedAt:  time.Now(),
		signedDiff:   diff,
	}
}

func (s Summary) Positive() bool { return s.signedDiff > 0 }
func (s Summary) Negative() bool { return s.signedDiff < 0 }
func (s Summary) Balanced() bool { return s.signedDiff == 0 }

func (s Summary) AverageIncome() Money {
	if s.IncomeCount == 0 {
		return Zero()
	}
	m, _ := NewMoney(s.TotalIncome.Value() / float64(s.IncomeCount))
	return m
}

func (s Summary) AverageExpense() Money {
	if s.ExpenseCount == 0 {
		return Zero()
	}
	m, _ := NewMoney(s.TotalExpense.Value() / float64(s.ExpenseCount))
	return m
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
