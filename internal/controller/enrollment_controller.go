package controller

import (
	"buriti_backend/internal/model"
	"buriti_backend/internal/service"
	"buriti_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	Enrollments *service.EnrollmentService
}

func NewEnrollmentController(enrollments *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{Enrollments: enrollments}
}

// ListOwn godoc
// @Summary Caller's enrollments with their courses
// @Tags enrollments
// @Produce json
// @Success 200 {object} util.Response
// @Router /matriculas [get]
// @Security BearerAuth
func (ctrl *EnrollmentController) ListOwn(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	enrollments, err := ctrl.Enrollments.ListOwn(claims.UserID)
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, enrollments)
}

type createEnrollmentRequest struct {
	UserID   uint                   `json:"userId" binding:"required"`
	CourseID uint                   `json:"cursoId" binding:"required"`
	Status   model.EnrollmentStatus `json:"status"`
}

// Create godoc
// @Summary Enroll a user in a course; a duplicate active enrollment answers 409
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body createEnrollmentRequest true "Enrollment"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /matriculas [post]
// @Security BearerAuth
func (ctrl *EnrollmentController) Create(c *gin.Context) {
	var req createEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "userId and cursoId are required")
		return
	}
	if req.Status != "" && req.Status != model.EnrollmentActive && req.Status != model.EnrollmentInactive {
		util.BadRequest(c, "invalid status")
		return
	}

	enrollment := &model.Enrollment{
		UserID:   req.UserID,
		CourseID: req.CourseID,
		Status:   req.Status,
	}
	if err := ctrl.Enrollments.Create(enrollment); err != nil {
		util.HandleError(c, err)
		return
	}
	util.Created(c, enrollment)
}

type updateEnrollmentRequest struct {
	Status model.EnrollmentStatus `json:"status" binding:"required"`
}

// Update godoc
// @Summary Change an enrollment status
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path int true "Enrollment ID"
// @Param request body updateEnrollmentRequest true "New status"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /matriculas/{id} [put]
// @Security BearerAuth
func (ctrl *EnrollmentController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid enrollment id")
		return
	}
	var req updateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "status is required")
		return
	}
	if req.Status != model.EnrollmentActive && req.Status != model.EnrollmentInactive {
		util.BadRequest(c, "invalid status")
		return
	}

	enrollment, err := ctrl.Enrollments.UpdateStatus(id, req.Status)
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, enrollment)
}

// Delete godoc
// @Summary Remove an enrollment
// @Tags enrollments
// @Param id path int true "Enrollment ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /matriculas/{id} [delete]
// @Security BearerAuth
func (ctrl *EnrollmentController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid enrollment id")
		return
	}
	if err := ctrl.Enrollments.Delete(id); err != nil {
		util.HandleError(c, err)
		return
	}
	util.NoContent(c)
}

// Classmates godoc
// @Summary Users sharing an active enrollment with the caller
// @Tags enrollments
// @Produce json
// @Success 200 {object} util.Response
// @Router /users [get]
// @Security BearerAuth
func (ctrl *EnrollmentController) Classmates(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	classmates, err := ctrl.Enrollments.Classmates(claims.UserID)
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, classmates)
}
