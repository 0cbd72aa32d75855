package controller

import (
	"buriti_backend/internal/model"
	"buriti_backend/internal/service"
	"buriti_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Progress *service.ProgressService
}

func NewProgressController(progress *service.ProgressService) *ProgressController {
	return &ProgressController{Progress: progress}
}

// Get godoc
// @Summary Progress records of a user; self or admin only
// @Tags progress
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /progress/{userId} [get]
// @Security BearerAuth
func (ctrl *ProgressController) Get(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		util.BadRequest(c, "invalid user id")
		return
	}

	claims := util.GetUserFromContext(c)
	if claims.UserID != userID && claims.Role != model.Admin {
		util.Error(c, 403, "cannot read another user's progress")
		return
	}

	records, err := ctrl.Progress.GetByUser(userID)
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, records)
}

type setWatchedRequest struct {
	CourseID uint  `json:"cursoId" binding:"required"`
	ModuleID uint  `json:"moduloId" binding:"required"`
	LessonID uint  `json:"aulaId" binding:"required"`
	Watched  *bool `json:"assistida" binding:"required"`
}

// SetWatched godoc
// @Summary Upsert the watched flag for the caller's own lesson tuple
// @Tags progress
// @Accept json
// @Produce json
// @Param request body setWatchedRequest true "Lesson tuple and flag"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /progress [post]
// @Security BearerAuth
func (ctrl *ProgressController) SetWatched(c *gin.Context) {
	var req setWatchedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "cursoId, moduloId, aulaId and assistida are required")
		return
	}

	claims := util.GetUserFromContext(c)
	if err := ctrl.Progress.SetWatched(claims.UserID, req.CourseID, req.ModuleID, req.LessonID, *req.Watched); err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, gin.H{
		"cursoId":   req.CourseID,
		"moduloId":  req.ModuleID,
		"aulaId":    req.LessonID,
		"assistida": *req.Watched,
	})
}

// CourseSummary godoc
// @Summary Per-student completion percentages for a course
// @Tags progress
// @Produce json
// @Param courseId query int true "Course ID"
// @Success 200 {object} util.Response
// @Router /students/progress [get]
// @Security BearerAuth
func (ctrl *ProgressController) CourseSummary(c *gin.Context) {
	courseID, err := strconv.ParseUint(c.Query("courseId"), 10, 32)
	if err != nil || courseID == 0 {
		util.BadRequest(c, "courseId query parameter is required")
		return
	}

	summary, serr := ctrl.Progress.CourseProgressSummary(uint(courseID))
	if serr != nil {
		util.HandleError(c, serr)
		return
	}
	util.Success(c, summary)
}
