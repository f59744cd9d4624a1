package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/AgentTarik/financas-api/internal/domain"
	"github.com/AgentTarik/financas-api/internal/storage"
	"github.com/AgentTarik/financas-api/internal/usecase"
)

func isDomainErr(err error) bool { return domain.IsValidation(err) }

// Handlers holds every dependency the HTTP surface needs.
type Handlers struct {
	Log *zap.Logger
	V   *validator.Validate

	Tags            *usecase.TagService
	RegisterIncome  *usecase.RegisterTransaction
	RegisterExpense *usecase.RegisterTransaction
	Summary         *usecase.GenerateSummary

	Incomes  storage.TransactionRepo
	Expenses storage.TransactionRepo

	DBPing       func(ctx context.Context) error
	KafkaEnabled bool
}

// Health godoc
// @Summary      Service health
// @Tags         ops
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /health [get]
func (h *Handlers) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
	defer cancel()

	db := "ok"
	if h.DBPing != nil {
		if err := h.DBPing(ctx); err != nil {
			db = "down"
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"db":            db,
		"kafka_enabled": h.KafkaEnabled,
	})
}
