package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/leandrosouza2gf/ottoautoeletrtica/internal/adapter/http/dto/request"
	response "github.com/leandrosouza2gf/ottoautoeletrtica/internal/adapter/http/dto/response"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/usecase"
)

// ChatHandler serves the public status assistant.
type ChatHandler struct {
	usecase usecase.IChatUseCase
}

func NewChatHandler(uc usecase.IChatUseCase) *ChatHandler {
	return &ChatHandler{usecase: uc}
}

func (h *ChatHandler) Ask(c *gin.Context) {
	var payload request.ChatRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Número da OS e pergunta são obrigatórios"})
		return
	}

	resposta, err := h.usecase.Answer(c.Request.Context(), payload.NumeroOS, payload.Pergunta, payload.AccessToken)
	if err != nil {
		status, msg := mapChatError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, response.ChatResponse{Resposta: resposta})
}

func mapChatError(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrMissingOrderNumber), errors.Is(err, usecase.ErrMissingQuestion):
		return http.StatusBadRequest, "Número da OS e pergunta são obrigatórios"
	case errors.Is(err, usecase.ErrQuestionTooLong):
		return http.StatusBadRequest, "Pergunta muito longa. Máximo 500 caracteres."
	case errors.Is(err, usecase.ErrOrderNotFound):
		return http.StatusNotFound, "OS não encontrada"
	default:
		return http.StatusInternalServerError, "Erro ao processar solicitação"
	}
}
