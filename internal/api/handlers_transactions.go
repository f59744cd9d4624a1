package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AgentTarik/financas-api/internal/domain"
	"github.com/AgentTarik/financas-api/internal/storage"
	"github.com/AgentTarik/financas-api/internal/usecase"
)

// CreateIncome godoc
// @Summary      Register an income
// @Tags         receitas
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateTransactionRequest  true  "Income payload"
// @Success      201      {object}  map[string]any
// @Failure      400      {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/receitas [post]
func (h *Handlers) CreateIncome(c *gin.Context) {
	h.createTransaction(c, h.RegisterIncome)
}

// CreateExpense godoc
// @Summary      Register an expense
// @Tags         despesas
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateTransactionRequest  true  "Expense payload"
// @Success      201      {object}  map[string]any
// @Failure      400      {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/despesas [post]
func (h *Handlers) CreateExpense(c *gin.Context) {
	h.createTransaction(c, h.RegisterExpense)
}

func (h *Handlers) createTransaction(c *gin.Context, uc *usecase.RegisterTransaction) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "JSON inválido"})
		return
	}
	if err := h.V.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Campos obrigatórios: descricao, valor, data"})
		return
	}

	res := uc.Execute(c.Request.Context(), usecase.RegisterInput{
		Description: req.Descricao,
		Amount:      req.Valor,
		Date:        req.Data,
		TagIDs:      req.TagIDs,
	})
	if !res.OK {
		status := http.StatusBadRequest
		if res.Reason == "db" {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"erro": res.Message})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"sucesso":   true,
		"mensagem":  res.Message,
		"transacao": toTransactionResponse(res.Transaction),
	})
}

// ListIncomes godoc
// @Summary      List incomes, optionally filtered by period or tag
// @Tags         receitas
// @Produce      json
// @Param        mes    query     int     false  "Month (1-12), requires ano"
// @Param        ano    query     int     false  "Year"
// @Param        tagId  query     string  false  "Tag id"
// @Success      200    {object}  map[string]any
// @Security     BearerAuth
// @Router       /v1/receitas [get]
func (h *Handlers) ListIncomes(c *gin.Context) { h.listTransactions(c, h.Incomes) }

// ListExpenses godoc
// @Summary      List expenses, optionally filtered by period or tag
// @Tags         despesas
// @Produce      json
// @Param        mes    query     int     false  "Month (1-12), requires ano"
// @Param        ano    query     int     false  "Year"
// @Param        tagId  query     string  false  "Tag id"
// @Success      200    {object}  map[string]any
// @Security     BearerAuth
// @Router       /v1/despesas [get]
func (h *Handlers) ListExpenses(c *gin.Context) { h.listTransactions(c, h.Expenses) }

func (h *Handlers) listTransactions(c *gin.Context, repo storage.TransactionRepo) {
	ctx := c.Request.Context()

	var (
		txs []domain.Transaction
		err error
	)
	switch {
	case c.Query("tagId") != "":
		txs, err = repo.ListByTag(ctx, c.Query("tagId"))
	case c.Query("mes") != "" || c.Query("ano") != "":
		var q struct {
			Mes int `form:"mes" binding:"required,min=1,max=12"`
			Ano int `form:"ano" binding:"required,min=1900"`
		}
		if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"erro": "Período inválido: informe mes (1-12) e ano"})
			return
		}
		var p domain.Period
		p, err = domain.NewPeriod(q.Mes, q.Ano)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"erro": err.Error()})
			return
		}
		txs, err = repo.ListByPeriod(ctx, p)
	default:
		txs, err = repo.ListTransactions(ctx)
	}
	if err != nil {
		h.Log.Error("list transactions failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro interno do servidor"})
		return
	}

	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toTransactionResponse(tx))
	}
	c.JSON(http.StatusOK, gin.H{"transacoes": out, "total": len(out)})
}

// GetIncome godoc
// @Summary      Get one income
// @Tags         receitas
// @Produce      json
// @Param        id   path      string  true  "Income id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/receitas/{id} [get]
func (h *Handlers) GetIncome(c *gin.Context) { h.getTransaction(c, h.Incomes) }

// GetExpense godoc
// @Summary      Get one expense
// @Tags         despesas
// @Produce      json
// @Param        id   path      string  true  "Expense id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/despesas/{id} [get]
func (h *Handlers) GetExpense(c *gin.Context) { h.getTransaction(c, h.Expenses) }

func (h *Handlers) getTransaction(c *gin.Context, repo storage.TransactionRepo) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "ID inválido"})
		return
	}
	tx, err := repo.FindTransactionByID(c.Request.Context(), id)
	if err != nil {
		h.transactionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transacao": toTransactionResponse(tx)})
}

// UpdateIncome godoc
// @Summary      Update an income
// @Tags         receitas
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Income id"
// @Param        payload  body      UpdateTransactionRequest  true  "Fields to change"
// @Success      200      {object}  map[string]any
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/receitas/{id} [put]
func (h *Handlers) UpdateIncome(c *gin.Context) { h.updateTransaction(c, h.Incomes) }

// UpdateExpense godoc
// @Summary      Update an expense
// @Tags         despesas
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Expense id"
// @Param        payload  body      UpdateTransactionRequest  true  "Fields to change"
// @Success      200      {object}  map[string]any
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/despesas/{id} [put]
func (h *Handlers) UpdateExpense(c *gin.Context) { h.updateTransaction(c, h.Expenses) }

func (h *Handlers) updateTransaction(c *gin.Context, repo storage.TransactionRepo) {
	id := c.Param("id")
	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "JSON inválido"})
		return
	}
	if err := h.V.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Dados inválidos"})
		return
	}

	ctx := c.Request.Context()
	tx, err := repo.FindTransactionByID(ctx, id)
	if err != nil {
		h.transactionError(c, err)
		return
	}

	if req.Descricao != "" {
		if tx, err = tx.WithDescription(req.Descricao); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"erro": err.Error()})
			return
		}
	}
	if req.Valor != nil {
		amount, err := domain.NewMoney(*req.Valor)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"erro": err.Error()})
			return
		}
		tx = tx.WithAmount(amount)
	}
	if req.Data != "" {
		date, err := domain.DateFromString(req.Data)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"erro": err.Error()})
			return
		}
		tx = tx.WithDate(date)
	}
	if req.TagIDs != nil {
		tags := make([]domain.Tag, 0, len(*req.TagIDs))
		for _, tagID := range *req.TagIDs {
			tag, err := h.Tags.Get(ctx, tagID)
			if err != nil {
				if errors.Is(err, storage.ErrTagNotFound) {
					c.JSON(http.StatusBadRequest, gin.H{"erro": "Tag com ID " + tagID + " não encontrada"})
					return
				}
				h.transactionError(c, err)
				return
			}
			tags = append(tags, tag)
		}
		if tx, err = domain.NewTransaction(tx.ID, tx.Description, tx.Amount, tx.Date, tags, tx.CreatedAt, tx.UpdatedAt); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"erro": err.Error()})
			return
		}
		// trocar o conjunto de tags também é uma mudança
		tx.UpdatedAt = time.Now()
	}

	if err := repo.SaveTransaction(ctx, tx); err != nil {
		h.transactionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sucesso": true, "transacao": toTransactionResponse(tx)})
}

// DeleteIncome godoc
// @Summary      Delete an income
// @Tags         receitas
// @Param        id   path  string  true  "Income id"
// @Success      204  "no content"
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/receitas/{id} [delete]
func (h *Handlers) DeleteIncome(c *gin.Context) { h.deleteTransaction(c, h.Incomes) }

// DeleteExpense godoc
// @Summary      Delete an expense
// @Tags         despesas
// @Param        id   path  string  true  "Expense id"
// @Success      204  "no content"
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/despesas/{id} [delete]
func (h *Handlers) DeleteExpense(c *gin.Context) { h.deleteTransaction(c, h.Expenses) }

func (h *Handlers) deleteTransaction(c *gin.Context, repo storage.TransactionRepo) {
	if err := repo.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		h.transactionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) transactionError(c *gin.Context, err error) {
	if errors.Is(err, storage.ErrTransactionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"erro": "Transação não encontrada"})
		return
	}
	h.Log.Error("transaction operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro interno do servidor"})
}
