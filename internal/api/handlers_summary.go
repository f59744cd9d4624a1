package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AgentTarik/financas-api/internal/usecase"
)

// GetSummary godoc
// @Summary      Monthly financial summary
// @Description  Totals, counts, averages, balance and per-tag breakdown for one month.
// @Tags         resumo
// @Produce      json
// @Param        mes  query     int  true  "Month (1-12)"
// @Param        ano  query     int  true  "Year"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/resumo [get]
func (h *Handlers) GetSummary(c *gin.Context) {
	month, errM := strconv.Atoi(c.Query("mes"))
	year, errY := strconv.Atoi(c.Query("ano"))
	if errM != nil || errY != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Parâmetros obrigatórios: mes, ano"})
		return
	}

	res := h.Summary.Execute(c.Request.Context(), usecase.SummaryInput{Month: month, Year: year})
	if !res.OK {
		status := http.StatusBadRequest
		if res.Reason == "db" {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"erro": res.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sucesso": true, "resumo": toSummaryResponse(res.Summary)})
}
