package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AgentTarik/financas-api/internal/storage"
)

type stubIssuer struct{}

func (stubIssuer) Issue(userID string) (string, time.Time, error) {
	return "token-" + userID, time.Now().Add(time.Minute), nil
}

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	a := &AuthHandlers{
		Log:    zap.NewNop(),
		Users:  storage.NewMemoryStore(),
		V:      validator.New(),
		Tokens: stubIssuer{},
	}
	r := gin.New()
	r.POST("/auth/register", a.Register)
	r.POST("/auth/login", a.Login)
	return r
}

func TestAuthEndpoints(t *testing.T) {
	userID := uuid.NewString()
	register := gin.H{
		"id":       userID,
		"nome":     "Maria Silva",
		"email":    "Maria@Exemplo.com",
		"password": "senha-segura",
	}

	t.Run("register normalizes email", func(t *testing.T) {
		r := newAuthRouter(t)

		w := doJSON(t, r, http.MethodPost, "/auth/register", register)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, "maria@exemplo.com", decodeBody(t, w)["email"])
	})

	t.Run("register twice conflicts", func(t *testing.T) {
		r := newAuthRouter(t)
		doJSON(t, r, http.MethodPost, "/auth/register", register)

		w := doJSON(t, r, http.MethodPost, "/auth/register", register)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("register rejects short password", func(t *testing.T) {
		r := newAuthRouter(t)

		w := doJSON(t, r, http.MethodPost, "/auth/register", gin.H{
			"id": uuid.NewString(), "nome": "Maria Silva",
			"email": "m@exemplo.com", "password": "curta",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("login with right password", func(t *testing.T) {
		r := newAuthRouter(t)
		doJSON(t, r, http.MethodPost, "/auth/register", register)

		w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
			"email": "maria@exemplo.com", "password": "senha-segura",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decodeBody(t, w)
		assert.Equal(t, "token-"+userID, body["access_token"])
		assert.Equal(t, "Bearer", body["token_type"])
	})

	t.Run("login with wrong password", func(t *testing.T) {
		r := newAuthRouter(t)
		doJSON(t, r, http.MethodPost, "/auth/register", register)

		w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
			"email": "maria@exemplo.com", "password": "errada123",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("login with unknown email", func(t *testing.T) {
		r := newAuthRouter(t)

		w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
			"email": "ninguem@exemplo.com", "password": "qualquer-coisa",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
