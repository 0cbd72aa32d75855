package controller

import (
	"buriti_backend/internal/model"
	"buriti_backend/internal/service"
	"buriti_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TestController struct {
	Tests *service.TestService
}

func NewTestController(tests *service.TestService) *TestController {
	return &TestController{Tests: tests}
}

// List godoc
// @Summary Tests of the caller's active-enrollment courses
// @Tags tests
// @Produce json
// @Success 200 {object} util.Response
// @Router /testes [get]
// @Security BearerAuth
func (ctrl *TestController) List(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	tests, err := ctrl.Tests.ListForUser(claims.UserID)
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, tests)
}

type createTestRequest struct {
	CourseID    uint   `json:"curso_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// Create godoc
// @Summary Create a course test
// @Tags tests
// @Accept json
// @Produce json
// @Param request body createTestRequest true "Test"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /testes [post]
// @Security BearerAuth
func (ctrl *TestController) Create(c *gin.Context) {
	var req createTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "curso_id, title and description are required")
		return
	}

	test := &model.Test{
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := ctrl.Tests.Create(test); err != nil {
		util.HandleError(c, err)
		return
	}
	util.Created(c, test)
}

type updateTestRequest struct {
	Status string   `json:"status" binding:"required"`
	Grade  *float64 `json:"nota"`
}

// Update godoc
// @Summary Change a test status and optional grade
// @Tags tests
// @Accept json
// @Produce json
// @Param id path int true "Test ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /testes/{id} [put]
// @Security BearerAuth
func (ctrl *TestController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid test id")
		return
	}
	var req updateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "status is required")
		return
	}

	test, err := ctrl.Tests.Update(id, req.Status, req.Grade)
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, test)
}

// Delete godoc
// @Summary Delete a test
// @Tags tests
// @Param id path int true "Test ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /testes/{id} [delete]
// @Security BearerAuth
func (ctrl *TestController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid test id")
		return
	}
	if err := ctrl.Tests.Delete(id); err != nil {
		util.HandleError(c, err)
		return
	}
	util.NoContent(c)
}
