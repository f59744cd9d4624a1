package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/AgentTarik/financas-api/internal/storage"
)

// TokenIssuer abstracts JWT emission.
type TokenIssuer interface {
	Issue(userID string) (string, time.Time, error)
}

// AuthHandlers handles register/login.
type AuthHandlers struct {
	Log    *zap.Logger
	Users  storage.UserRepo
	V      *validator.Validate
	Tokens TokenIssuer
}

// Register godoc
// @Summary      Register the tracker owner
// @Description  Creates the login account.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      RegisterRequest  true  "Register payload"
// @Success      201      {object}  map[string]any
// @Failure      400      {object}  map[string]string
// @Failure      409      {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "JSON inválido"})
		return
	}
	if err := h.V.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Dados de cadastro inválidos"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	pwHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro interno do servidor"})
		return
	}

	u := storage.User{ID: req.ID, Name: req.Nome, Email: email, PasswordHash: string(pwHash)}
	if err := h.Users.CreateUser(c.Request.Context(), u); err != nil {
		h.Log.Warn("register failed", zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"erro": "Usuário já existe"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": req.ID, "nome": req.Nome, "email": email})
}

// Login godoc
// @Summary      Login with email and password
// @Description  Returns a short-lived JWT access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      LoginRequest  true  "Login payload"
// @Success      200      {object}  map[string]any
// @Failure      400      {object}  map[string]string
// @Failure      401      {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "JSON inválido"})
		return
	}
	if err := h.V.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Credenciais inválidas"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	u, err := h.Users.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"erro": "Credenciais inválidas"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"erro": "Credenciais inválidas"})
		return
	}

	token, exp, err := h.Tokens.Issue(u.ID)
	if err != nil {
		h.Log.Error("jwt issue failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro interno do servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   int(time.Until(exp).Seconds()),
		"usuario": gin.H{
			"id":    u.ID,
			"nome":  u.Name,
			"email": u.Email,
		},
	})
}
