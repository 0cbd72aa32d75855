package controller

import (
	"buriti_backend/internal/model"
	"buriti_backend/internal/service"
	"buriti_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TaskController struct {
	Tasks *service.TaskService
}

func NewTaskController(tasks *service.TaskService) *TaskController {
	return &TaskController{Tasks: tasks}
}

// List godoc
// @Summary Tasks of the caller's active-enrollment courses
// @Tags tasks
// @Produce json
// @Success 200 {object} util.Response
// @Router /tarefas [get]
// @Security BearerAuth
func (ctrl *TaskController) List(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	tasks, err := ctrl.Tasks.ListForUser(claims.UserID)
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, tasks)
}

type createTaskRequest struct {
	CourseID    uint   `json:"curso_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// Create godoc
// @Summary Create a course task
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body createTaskRequest true "Task"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /tarefas [post]
// @Security BearerAuth
func (ctrl *TaskController) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "curso_id, title and description are required")
		return
	}

	task := &model.Task{
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := ctrl.Tasks.Create(task); err != nil {
		util.HandleError(c, err)
		return
	}
	util.Created(c, task)
}

type updateTaskRequest struct {
	Status string `json:"status" binding:"required"`
}

// Update godoc
// @Summary Change a task status
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /tarefas/{id} [put]
// @Security BearerAuth
func (ctrl *TaskController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid task id")
		return
	}
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "status is required")
		return
	}

	task, err := ctrl.Tasks.UpdateStatus(id, req.Status)
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, task)
}

// Delete godoc
// @Summary Delete a task
// @Tags tasks
// @Param id path int true "Task ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /tarefas/{id} [delete]
// @Security BearerAuth
func (ctrl *TaskController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid task id")
		return
	}
	if err := ctrl.Tasks.Delete(id); err != nil {
		util.HandleError(c, err)
		return
	}
	util.NoContent(c)
}

// SubmitResponse godoc
// @Summary Submit a task response file; requires active enrollment
// @Tags tasks
// @Accept mpfd
// @Produce json
// @Param id path int true "Task ID"
// @Param file formData file true "Response file"
// @Success 201 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /tarefas/{id}/responses [post]
// @Security BearerAuth
func (ctrl *TaskController) SubmitResponse(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid task id")
		return
	}
	file, _ := c.FormFile("file")

	claims := util.GetUserFromContext(c)
	response, err := ctrl.Tasks.SubmitResponse(c.Request.Context(), claims.UserID, id, file)
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Created(c, response)
}
