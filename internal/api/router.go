package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/AgentTarik/financas-api/docs"
	"github.com/AgentTarik/financas-api/telemetry"
)

// SetupRoutes wires every endpoint. authMW may be nil when auth is disabled.
func SetupRoutes(r *gin.Engine, h *Handlers, a *AuthHandlers, authMW gin.HandlerFunc) {
	if a != nil {
		auth := r.Group("/auth")
		{
			auth.POST("/register", a.Register)
			auth.POST("/login", a.Login)
		}
	}

	v1 := r.Group("/v1")
	if authMW != nil {
		v1.Use(authMW)
	}
	{
		v1.POST("/tags", h.CreateTag)
		v1.GET("/tags", h.ListTags)
		v1.GET("/tags/:id", h.GetTag)
		v1.PUT("/tags/:id", h.UpdateTag)
		v1.DELETE("/tags/:id", h.DeleteTag)

		v1.POST("/receitas", h.CreateIncome)
		v1.GET("/receitas", h.ListIncomes)
		v1.GET("/receitas/:id", h.GetIncome)
		v1.PUT("/receitas/:id", h.UpdateIncome)
		v1.DELETE("/receitas/:id", h.DeleteIncome)

		v1.POST("/despesas", h.CreateExpense)
		v1.GET("/despesas", h.ListExpenses)
		v1.GET("/despesas/:id", h.GetExpense)
		v1.PUT("/despesas/:id", h.UpdateExpense)
		v1.DELETE("/despesas/:id", h.DeleteExpense)

		v1.GET("/resumo", h.GetSummary)

		v1.GET("/events", h.KafkaPoll)
	}

	r.GET("/health", h.Health)
	r.GET("/metrics", telemetry.MetricsHandler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
