package controller

import (
	"errors"

	"shakti_backend/internal/service"
	"shakti_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TranslateController struct {
	TranslateService *service.TranslateService
}

func NewTranslateController(translateService *service.TranslateService) *TranslateController {
	return &TranslateController{TranslateService: translateService}
}

// @Summary Translate text
// @Description Translates English text into the requested Indian language.
// @Tags translate
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body service.TranslateRequest true "text and target language"
// @Success 200 {object} util.Response
// @Router /api/translate [post]
func (c *TranslateController) Translate(ctx *gin.Context) {
	var req service.TranslateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reply, err := c.TranslateService.Translate(ctx.Request.Context(), req.Text, req.Language)
	if err != nil {
		if errors.Is(err, util.ErrEmptyText) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, reply)
}
