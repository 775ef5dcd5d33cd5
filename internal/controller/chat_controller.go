package controller

import (
	"errors"

	"shakti_backend/internal/service"
	"shakti_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// @Summary Ask the mentor chatbot
// @Description Sends a prompt to the AI mentor and returns the full reply.
// @Tags chat
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body service.ChatRequest true "prompt"
// @Success 200 {object} util.Response
// @Router /api/chat [post]
func (c *ChatController) Ask(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reply, err := c.ChatService.Ask(ctx.Request.Context(), user.UserID, req.Prompt)
	if err != nil {
		if errors.Is(err, util.ErrEmptyPrompt) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, reply)
}

// @Summary Ask the mentor chatbot (streaming)
// @Description Streams the AI mentor reply as server-sent events.
// @Tags chat
// @Accept json
// @Produce text/event-stream
// @Security ApiKeyAuth
// @Param request body service.ChatRequest true "prompt"
// @Router /api/chat/stream [post]
func (c *ChatController) AskStream(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	stream, errChan := c.ChatService.AskStream(ctx.Request.Context(), user.UserID, req.Prompt)

	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("Transfer-Encoding", "chunked")

	for content := range stream {
		ctx.SSEvent("message", content)
		ctx.Writer.Flush()
	}

	if err := <-errChan; err != nil {
		ctx.SSEvent("error", err.Error())
		ctx.Writer.Flush()
		return
	}

	ctx.SSEvent("end", "done")
	ctx.Writer.Flush()
}

// @Summary Recent chat history
// @Tags chat
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/chat/history [get]
func (c *ChatController) History(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	turns, err := c.ChatService.History(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, turns)
}
