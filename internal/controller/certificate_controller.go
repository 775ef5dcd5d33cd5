package controller

import (
	"errors"

	"shakti_backend/internal/repository"
	"shakti_backend/internal/service"
	"shakti_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CertificateController struct {
	CertificateService *service.CertificateService
	UserRepo           *repository.UserRepository
}

func NewCertificateController(certificateService *service.CertificateService, userRepo *repository.UserRepository) *CertificateController {
	return &CertificateController{CertificateService: certificateService, UserRepo: userRepo}
}

type certificateStatusResponse struct {
	Eligible    bool                     `json:"eligible"`
	Certificate *service.CertificateData `json:"certificate,omitempty"`
}

// @Summary Certificate status for a course
// @Description Reports eligibility and returns the certificate payload, issuing it on first eligible request.
// @Tags certificates
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId}/certificate [get]
func (c *CertificateController) Status(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.UserRepo.FindByID(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	eligible, cert, err := c.CertificateService.Status(ctx.Request.Context(), user, ctx.Param("courseId"))
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, certificateStatusResponse{Eligible: eligible, Certificate: cert})
}

// @Summary List my certificates
// @Tags certificates
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/certificates [get]
func (c *CertificateController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	certs, err := c.CertificateService.ListByUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, certs)
}
