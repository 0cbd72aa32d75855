package controller

import (
	"buriti_backend/internal/model"
	"buriti_backend/internal/service"
	"buriti_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GradeController struct {
	Grades *service.GradeService
}

func NewGradeController(grades *service.GradeService) *GradeController {
	return &GradeController{Grades: grades}
}

// ListOwn godoc
// @Summary Caller's grades
// @Tags grades
// @Produce json
// @Success 200 {object} util.Response
// @Router /notas [get]
// @Security BearerAuth
func (ctrl *GradeController) ListOwn(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	grades, err := ctrl.Grades.ListOwn(claims.UserID)
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, grades)
}

type createGradeRequest struct {
	UserID   uint    `json:"user_id" binding:"required"`
	CourseID uint    `json:"curso_id" binding:"required"`
	Value    float64 `json:"nota" binding:"required"`
}

// Create godoc
// @Summary Record a grade for a user in a course
// @Tags grades
// @Accept json
// @Produce json
// @Param request body createGradeRequest true "Grade"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /notas [post]
// @Security BearerAuth
func (ctrl *GradeController) Create(c *gin.Context) {
	var req createGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "user_id, curso_id and nota are required")
		return
	}

	grade := &model.Grade{
		UserID:   req.UserID,
		CourseID: req.CourseID,
		Value:    req.Value,
	}
	if err := ctrl.Grades.Create(grade); err != nil {
		util.HandleError(c, err)
		return
	}
	util.Created(c, grade)
}
