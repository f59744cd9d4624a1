package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AgentTarik/financas-api/internal/storage"
)

// CreateTag godoc
// @Summary      Create a tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateTagRequest  true  "Tag payload"
// @Success      201      {object}  map[string]any
// @Failure      400      {object}  map[string]string
// @Failure      409      {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/tags [post]
func (h *Handlers) CreateTag(c *gin.Context) {
	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "JSON inválido"})
		return
	}
	if err := h.V.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Campos obrigatórios: nome"})
		return
	}

	tag, err := h.Tags.Create(c.Request.Context(), req.Nome, req.Cor, req.Icone)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrTagAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"erro": "Já existe uma tag com este nome"})
		case isDomainErr(err):
			c.JSON(http.StatusBadRequest, gin.H{"erro": err.Error()})
		default:
			h.Log.Error("create tag failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro interno do servidor"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"sucesso": true, "tag": toTagResponse(tag)})
}

// ListTags godoc
// @Summary      List tags
// @Tags         tags
// @Produce      json
// @Success      200  {object}  map[string]any
// @Security     BearerAuth
// @Router       /v1/tags [get]
func (h *Handlers) ListTags(c *gin.Context) {
	tags, err := h.Tags.List(c.Request.Context())
	if err != nil {
		h.Log.Error("list tags failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro interno do servidor"})
		return
	}
	out := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, toTagResponse(t))
	}
	c.JSON(http.StatusOK, gin.H{"tags": out})
}

// GetTag godoc
// @Summary      Get a tag with its usage count
// @Tags         tags
// @Produce      json
// @Param        id   path      string  true  "Tag id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/tags/{id} [get]
func (h *Handlers) GetTag(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "ID inválido"})
		return
	}
	tag, err := h.Tags.Get(c.Request.Context(), id)
	if err != nil {
		h.tagError(c, err)
		return
	}
	uses, err := h.Tags.Uses(c.Request.Context(), id)
	if err != nil {
		h.tagError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tag": toTagResponse(tag), "usos": uses})
}

// UpdateTag godoc
// @Summary      Rename, recolor or reicon a tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        id       path      string            true  "Tag id"
// @Param        payload  body      UpdateTagRequest  true  "Fields to change"
// @Success      200      {object}  map[string]any
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/tags/{id} [put]
func (h *Handlers) UpdateTag(c *gin.Context) {
	id := c.Param("id")
	var req UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "JSON inválido"})
		return
	}
	if err := h.V.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Dados inválidos"})
		return
	}

	tag, err := h.Tags.Update(c.Request.Context(), id, req.Nome, req.Cor, req.Icone)
	if err != nil {
		if isDomainErr(err) {
			c.JSON(http.StatusBadRequest, gin.H{"erro": err.Error()})
			return
		}
		h.tagError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sucesso": true, "tag": toTagResponse(tag)})
}

// DeleteTag godoc
// @Summary      Delete a tag and its associations
// @Tags         tags
// @Produce      json
// @Param        id   path      string  true  "Tag id"
// @Success      204  "no content"
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/tags/{id} [delete]
func (h *Handlers) DeleteTag(c *gin.Context) {
	if err := h.Tags.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.tagError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) tagError(c *gin.Context, err error) {
	if errors.Is(err, storage.ErrTagNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"erro": "Tag não encontrada"})
		return
	}
	h.Log.Error("tag operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro interno do servidor"})
}
