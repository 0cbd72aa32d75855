package controller

import (
	"buriti_backend/internal/service"
	"buriti_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ModuleController struct {
	Catalog *service.CatalogService
}

func NewModuleController(catalog *service.CatalogService) *ModuleController {
	return &ModuleController{Catalog: catalog}
}

type createModuleRequest struct {
	CourseID uint   `json:"cursoId" binding:"required"`
	Title    string `json:"titulo" binding:"required"`
	Ordem    *int   `json:"ordem"`
}

// Create godoc
// @Summary Create a module, appended to the course ordering
// @Tags modules
// @Accept json
// @Produce json
// @Param request body createModuleRequest true "Module"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /modulos [post]
// @Security BearerAuth
func (ctrl *ModuleController) Create(c *gin.Context) {
	var req createModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "cursoId and titulo are required")
		return
	}

	module, err := ctrl.Catalog.CreateModule(req.CourseID, req.Title, req.Ordem)
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Created(c, module)
}

// Delete godoc
// @Summary Delete a module and everything under it
// @Tags modules
// @Produce json
// @Param id path int true "Module ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /modulos/{id} [delete]
// @Security BearerAuth
func (ctrl *ModuleController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid module id")
		return
	}
	if err := ctrl.Catalog.DeleteModule(c.Request.Context(), id); err != nil {
		util.HandleError(c, err)
		return
	}
	util.NoContent(c)
}

type createLessonRequest struct {
	ModuleID uint   `json:"moduloId" binding:"required"`
	Title    string `json:"titulo" binding:"required"`
	Ordem    *int   `json:"ordem"`
}

// CreateLesson godoc
// @Summary Create a lesson, appended to the module ordering
// @Tags lessons
// @Accept json
// @Produce json
// @Param request body createLessonRequest true "Lesson"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /aulas [post]
// @Security BearerAuth
func (ctrl *ModuleController) CreateLesson(c *gin.Context) {
	var req createLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "moduloId and titulo are required")
		return
	}

	lesson, err := ctrl.Catalog.CreateLesson(req.ModuleID, req.Title, req.Ordem)
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Created(c, lesson)
}

type updateLessonRequest struct {
	Title string `json:"titulo" binding:"required"`
}

// UpdateLesson godoc
// @Summary Rename a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /aulas/{id} [put]
// @Security BearerAuth
func (ctrl *ModuleController) UpdateLesson(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid lesson id")
		return
	}
	var req updateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "titulo is required")
		return
	}

	lesson, err := ctrl.Catalog.UpdateLesson(id, req.Title)
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, lesson)
}

// DeleteLesson godoc
// @Summary Delete a lesson; progress rows are left untouched
// @Tags lessons
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /aulas/{id} [delete]
// @Security BearerAuth
func (ctrl *ModuleController) DeleteLesson(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid lesson id")
		return
	}
	if err := ctrl.Catalog.DeleteLesson(id); err != nil {
		util.HandleError(c, err)
		return
	}
	util.NoContent(c)
}
