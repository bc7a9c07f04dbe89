package controller

import (
	"strconv"

	"legalchat-be/internal/dto"
	"legalchat-be/internal/pkg/serverutils"
	"legalchat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	NewSession(ctx *fiber.Ctx) error
	GetSessions(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	EditMessage(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/new_session", c.NewSession)
	r.Get("/sessions", c.GetSessions)
	r.Get("/chat/:sessionId", c.GetHistory)
	r.Post("/chat/:sessionId/message", c.SendMessage)
	r.Put("/chat/:sessionId/edit/:messageId", c.EditMessage)
	r.Delete("/delete_session/:sessionId", c.DeleteSession)
}

func (c *chatController) NewSession(ctx *fiber.Ctx) error {
	res, err := c.service.CreateSession(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) GetSessions(ctx *fiber.Ctx) error {
	res, err := c.service.GetAllSessions(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) GetHistory(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("sessionId")

	res, err := c.service.GetChatHistory(ctx.Context(), sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("sessionId")

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Message cannot be empty")
	}
	// The only constraint on the payload is a present message, so any
	// validation failure maps to the canonical empty-message error.
	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.BadRequest("Message cannot be empty")
	}

	res, err := c.service.SendMessage(ctx.Context(), sessionId, req.Message)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) EditMessage(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("sessionId")
	messageId, err := strconv.ParseInt(ctx.Params("messageId"), 10, 64)
	if err != nil {
		return serverutils.NotFound("Message not found or cannot edit assistant messages")
	}

	var req dto.EditMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Message cannot be empty")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.BadRequest("Message cannot be empty")
	}

	res, err := c.service.EditMessage(ctx.Context(), sessionId, messageId, req.Message)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) DeleteSession(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("sessionId")

	if err := c.service.DeleteSession(ctx.Context(), sessionId); err != nil {
		return err
	}

	return ctx.JSON(&dto.DeleteSessionResponse{Status: "success"})
}
