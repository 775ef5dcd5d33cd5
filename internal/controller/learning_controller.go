package controller

import (
	"errors"

	"shakti_backend/internal/service"
	"shakti_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearningController struct {
	EnrollmentService *service.EnrollmentService
}

func NewLearningController(enrollmentService *service.EnrollmentService) *LearningController {
	return &LearningController{EnrollmentService: enrollmentService}
}

// @Summary Enroll in a course
// @Tags learning
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId}/enroll [post]
func (c *LearningController) Enroll(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	rec, err := c.EnrollmentService.Enroll(ctx.Request.Context(), user.UserID, ctx.Param("courseId"))
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rec)
}

// @Summary List my enrollments
// @Tags learning
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/enrollments [get]
func (c *LearningController) ListEnrollments(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	recs, err := c.EnrollmentService.List(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, recs)
}

// @Summary Course progress
// @Tags learning
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId}/progress [get]
func (c *LearningController) GetProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	prog, err := c.EnrollmentService.Progress(ctx.Request.Context(), user.UserID, ctx.Param("courseId"))
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, prog)
}

// @Summary Mark a lesson item complete
// @Description Marks a video, notes or assignment item done. Quiz items can only be completed by passing the quiz.
// @Tags learning
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param moduleId path string true "module id"
// @Param itemId path string true "item id"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId}/modules/{moduleId}/items/{itemId}/complete [post]
func (c *LearningController) CompleteItem(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	snap, err := c.EnrollmentService.CompleteItem(
		ctx.Request.Context(),
		user.UserID,
		ctx.Param("courseId"),
		ctx.Param("moduleId"),
		ctx.Param("itemId"),
	)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound), errors.Is(err, util.ErrItemNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrQuizCompletion), errors.Is(err, util.ErrNotEnrolled):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, snap)
}

// @Summary Submit quiz answers
// @Description Grades the attempt against the question bank. 70% or better passes and completes the item; failed attempts may be retaken.
// @Tags learning
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param moduleId path string true "module id"
// @Param itemId path string true "quiz item id"
// @Param answers body service.QuizSubmission true "selected option index per question id"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId}/modules/{moduleId}/items/{itemId}/quiz [post]
func (c *LearningController) SubmitQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var submission service.QuizSubmission
	if err := ctx.ShouldBindJSON(&submission); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.EnrollmentService.SubmitQuiz(
		ctx.Request.Context(),
		user.UserID,
		ctx.Param("courseId"),
		ctx.Param("moduleId"),
		ctx.Param("itemId"),
		submission.Answers,
	)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound), errors.Is(err, util.ErrItemNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrNotAQuiz), errors.Is(err, util.ErrNotEnrolled):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, resp)
}
