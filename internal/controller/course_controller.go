package controller

import (
	"shakti_backend/internal/catalog"
	"shakti_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// CourseController serves the static catalog. Correct quiz answers never
// leave the server; they are stripped by the catalog's JSON tags.
type CourseController struct {
	Catalog *catalog.Registry
}

func NewCourseController(reg *catalog.Registry) *CourseController {
	return &CourseController{Catalog: reg}
}

// @Summary List courses
// @Tags courses
// @Produce json
// @Param category query string false "filter by category"
// @Success 200 {object} util.Response
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	category := ctx.Query("category")

	courses := c.Catalog.Courses()
	if category != "" {
		filtered := make([]*catalog.Course, 0, len(courses))
		for _, course := range courses {
			if course.Category == category {
				filtered = append(filtered, course)
			}
		}
		courses = filtered
	}

	util.Success(ctx, gin.H{
		"courses":    courses,
		"categories": c.Catalog.Categories(),
	})
}

// @Summary Course detail
// @Tags courses
// @Produce json
// @Param courseId path string true "course id"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, ok := c.Catalog.Course(ctx.Param("courseId"))
	if !ok {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, course)
}
