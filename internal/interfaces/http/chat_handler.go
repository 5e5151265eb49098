package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockpilot-api/internal/application/chat"
	"github.com/jhoicas/stockpilot-api/internal/application/dto"
)

// ChatHandler expone el asistente conversacional.
type ChatHandler struct {
	uc *chat.UseCase
}

// NewChatHandler construye el handler de chat.
func NewChatHandler(uc *chat.UseCase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

// Chat godoc
// @Summary      Consultar el inventario en lenguaje natural
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "mensaje libre"
// @Success      200   {object}  dto.ChatResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if strings.TrimSpace(in.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "message es requerido"})
	}

	// El orquestador degrada cualquier fallo interno a texto: para un mensaje
	// bien formado la respuesta siempre es 200.
	resp := h.uc.Execute(c.UserContext(), GetTenantID(c), in.Message)
	return c.JSON(resp)
}
