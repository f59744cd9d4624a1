package api

import (
	"time"

	"github.com/AgentTarik/financas-api/internal/domain"
)

// Entrada para criar tag
type CreateTagRequest struct {
	Nome  string `json:"nome"  validate:"required,min=1,max=50"`
	Cor   string `json:"cor"   validate:"omitempty,hexcolor"`
	Icone string `json:"icone" validate:"omitempty,max=50"`
}

// Entrada para atualizar tag (campos vazios ficam como estão)
type UpdateTagRequest struct {
	Nome  string `json:"nome"  validate:"omitempty,min=1,max=50"`
	Cor   string `json:"cor"   validate:"omitempty,hexcolor"`
	Icone string `json:"icone" validate:"omitempty,max=50"`
}

// Resposta de tag
type TagResponse struct {
	ID       string    `json:"id"`
	Nome     string    `json:"nome"`
	Cor      string    `json:"cor"`
	Icone    string    `json:"icone"`
	CriadaEm time.Time `json:"criadaEm"`
}

func toTagResponse(t domain.Tag) TagResponse {
	return TagResponse{ID: t.ID, Nome: t.Name, Cor: t.Color, Icone: t.Icon, CriadaEm: t.CreatedAt}
}

// Entrada para criar receita/despesa
type CreateTransactionRequest struct {
	Descricao string   `json:"descricao" validate:"required,max=200"`
	Valor     float64  `json:"valor"     validate:"required,gt=0"`
	Data      string   `json:"data"      validate:"required"`  // YYYY-MM-DD, DD/MM/YYYY ou DD-MM-YYYY
	TagIDs    []string `json:"tagIds"    validate:"max=10,dive,uuid4"`
}

// Entrada para atualizar receita/despesa
type UpdateTransactionRequest struct {
	Descricao string    `json:"descricao" validate:"omitempty,max=200"`
	Valor     *float64  `json:"valor"     validate:"omitempty,gt=0"`
	Data      string    `json:"data"      validate:"omitempty"`
	TagIDs    *[]string `json:"tagIds"    validate:"omitempty,max=10,dive,uuid4"`
}

// Saída de receita/despesa
type TransactionResponse struct {
	ID           string        `json:"id"`
	Descricao    string        `json:"descricao"`
	Valor        float64       `json:"valor"`
	Data         string        `json:"data"` // YYYY-MM-DD
	Tags         []TagResponse `json:"tags"`
	CriadaEm     time.Time     `json:"criadaEm"`
	AtualizadaEm time.Time     `json:"atualizadaEm"`
}

func toTransactionResponse(tx domain.Transaction) TransactionResponse {
	tags := make([]TagResponse, 0, len(tx.Tags))
	for _, t := range tx.Tags {
		tags = append(tags, toTagResponse(t))
	}
	return TransactionResponse{
		ID:           tx.ID,
		Descricao:    tx.Description,
		Valor:        tx.Amount.Value(),
		Data:         tx.Date.Time().Format("2006-01-02"),
		Tags:         tags,
		CriadaEm:     tx.CreatedAt,
		AtualizadaEm: tx.UpdatedAt,
	}
}

// Saída do resumo financeiro
type SummaryResponse struct {
	Periodo            domain.Period       `json:"periodo"`
	TotalReceitas      float64             `json:"totalReceitas"`
	TotalDespesas      float64             `json:"totalDespesas"`
	Saldo              float64             `json:"saldo"`
	QuantidadeReceitas int                 `json:"quantidadeReceitas"`
	QuantidadeDespesas int                 `json:"quantidadeDespesas"`
	TemSaldoPositivo   bool                `json:"temSaldoPositivo"`
	TemSaldoNegativo   bool                `json:"temSaldoNegativo"`
	MediaReceitas      float64             `json:"mediaReceitas"`
	MediaDespesas      float64             `json:"mediaDespesas"`
	PorTag             []TagTotalsResponse `json:"porTag"`
	GeradoEm           time.Time           `json:"geradoEm"`
}

type TagTotalsResponse struct {
	Tag      TagResponse `json:"tag"`
	Receitas float64     `json:"receitas"`
	Despesas float64     `json:"despesas"`
}

func toSummaryResponse(s domain.Summary) SummaryResponse {
	byTag := make([]TagTotalsResponse, 0, len(s.ByTag))
	for _, tt := range s.ByTag {
		byTag = append(byTag, TagTotalsResponse{
			Tag:      toTagResponse(tt.Tag),
			Receitas: tt.Income.Value(),
			Despesas: tt.Expense.Value(),
		})
	}
	return SummaryResponse{
		Periodo:            s.Period,
		TotalReceitas:      s.TotalIncome.Value(),
		TotalDespesas:      s.TotalExpense.Value(),
		Saldo:              s.Balance.Value(),
		QuantidadeReceitas: s.IncomeCount,
		QuantidadeDespesas: s.ExpenseCount,
		TemSaldoPositivo:   s.Positive(),
		TemSaldoNegativo:   s.Negative(),
		MediaReceitas:      s.AverageIncome().Value(),
		MediaDespesas:      s.AverageExpense().Value(),
		PorTag:             byTag,
		GeradoEm:           s.GeneratedAt,
	}
}

// Credenciais
type RegisterRequest struct {
	ID       string `json:"id"       validate:"required,uuid4"`
	Nome     string `json:"nome"     validate:"required,min=4,max=80"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
