package controller

import (
	"buriti_backend/internal/model"
	"buriti_backend/internal/service"
	"buriti_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	Catalog      *service.CatalogService
	Enrollments  *service.EnrollmentService
	Progress     *service.ProgressService
	Certificates *service.CertificateService
}

func NewCourseController(catalog *service.CatalogService, enrollments *service.EnrollmentService, progress *service.ProgressService, certificates *service.CertificateService) *CourseController {
	return &CourseController{
		Catalog:      catalog,
		Enrollments:  enrollments,
		Progress:     progress,
		Certificates: certificates,
	}
}

// List godoc
// @Summary List courses
// @Tags courses
// @Produce json
// @Success 200 {object} util.Response
// @Router /courses [get]
func (ctrl *CourseController) List(c *gin.Context) {
	courses, err := ctrl.Catalog.ListCourses()
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, courses)
}

// Get godoc
// @Summary Get a course with its ordered modules and lessons
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /courses/{id} [get]
func (ctrl *CourseController) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid course id")
		return
	}
	course, err := ctrl.Catalog.GetCourse(id)
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, course)
}

// Create godoc
// @Summary Create a course (multipart, optional cover image)
// @Tags courses
// @Accept mpfd
// @Produce json
// @Param title formData string true "Title"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /courses [post]
// @Security BearerAuth
func (ctrl *CourseController) Create(c *gin.Context) {
	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)
	course := &model.Course{
		Title:       c.PostForm("title"),
		Description: c.PostForm("descricao"),
		Modality:    c.PostForm("modality"),
		Duration:    c.PostForm("duration"),
		Price:       price,
		Status:      model.CourseStatus(c.PostForm("status")),
	}

	image, _ := c.FormFile("imagem")
	if err := ctrl.Catalog.CreateCourse(c.Request.Context(), course, image); err != nil {
		util.HandleError(c, err)
		return
	}
	util.Created(c, course)
}

// Update godoc
// @Summary Update a course; a new cover image replaces the old file
// @Tags courses
// @Accept mpfd
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /courses/{id} [put]
// @Security BearerAuth
func (ctrl *CourseController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid course id")
		return
	}

	var update service.CourseUpdate
	form := func(key string) *string {
		if v, ok := c.GetPostForm(key); ok {
			return &v
		}
		return nil
	}
	update.Title = form("title")
	update.Description = form("descricao")
	update.Modality = form("modality")
	update.Duration = form("duration")
	if v, ok := c.GetPostForm("price"); ok {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			util.BadRequest(c, "invalid price")
			return
		}
		update.Price = &price
	}
	if v, ok := c.GetPostForm("status"); ok {
		status := model.CourseStatus(v)
		update.Status = &status
	}

	image, _ := c.FormFile("imagem")
	course, err := ctrl.Catalog.UpdateCourse(c.Request.Context(), id, update, image)
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, course)
}

// Delete godoc
// @Summary Delete a course and its whole module tree
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /courses/{id} [delete]
// @Security BearerAuth
func (ctrl *CourseController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid course id")
		return
	}
	if err := ctrl.Catalog.DeleteCourse(c.Request.Context(), id); err != nil {
		util.HandleError(c, err)
		return
	}
	util.NoContent(c)
}

// Content godoc
// @Summary Full content tree of a course, enrollment-guarded for students
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /courses/{id}/conteudo [get]
// @Security BearerAuth
func (ctrl *CourseController) Content(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid course id")
		return
	}

	// 404 resolves before the guard so missing and forbidden stay distinct.
	if _, err := ctrl.Catalog.GetCourse(id); err != nil {
		util.HandleError(c, err)
		return
	}

	claims := util.GetUserFromContext(c)
	if claims.Role != model.Admin {
		if err := ctrl.Enrollments.RequireActiveEnrollment(claims.UserID, id); err != nil {
			util.HandleError(c, err)
			return
		}
	}

	content, err := ctrl.Catalog.CourseContent(id)
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, content)
}

type reorderModulesRequest struct {
	Modules []struct {
		ID uint `json:"id" binding:"required"`
	} `json:"modulos" binding:"required"`
}

// ReorderModules godoc
// @Summary Replace the module ordering of a course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param request body reorderModulesRequest true "Full ordered module list"
// @Success 200 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /courses/{id}/reorder-modulos [put]
// @Security BearerAuth
func (ctrl *CourseController) ReorderModules(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid course id")
		return
	}
	var req reorderModulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "modulos list is required")
		return
	}

	ids := make([]uint, 0, len(req.Modules))
	for _, m := range req.Modules {
		ids = append(ids, m.ID)
	}
	if err := ctrl.Catalog.ReorderModules(id, ids); err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, gin.H{"reordered": len(ids)})
}

// Certificate godoc
// @Summary Completion certificate, 403 until every lesson is watched
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /courses/{id}/certificado [get]
// @Security BearerAuth
func (ctrl *CourseController) Certificate(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid course id")
		return
	}
	claims := util.GetUserFromContext(c)

	text, err := ctrl.Certificates.CertificateText(claims.UserID, claims.Name, id)
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, gin.H{"certificado": text})
}

// Students godoc
// @Summary Actively enrolled students of a course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response
// @Router /courses/{id}/students [get]
// @Security BearerAuth
func (ctrl *CourseController) Students(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid course id")
		return
	}
	if _, err := ctrl.Catalog.GetCourse(id); err != nil {
		util.HandleError(c, err)
		return
	}
	students, err := ctrl.Enrollments.ActiveStudentsByCourse(id)
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, students)
}

// Roster godoc
// @Summary Enrollment roster of a course, any status
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response
// @Router /courses/{id}/matriculados [get]
// @Security BearerAuth
func (ctrl *CourseController) Roster(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid course id")
		return
	}
	if _, err := ctrl.Catalog.GetCourse(id); err != nil {
		util.HandleError(c, err)
		return
	}
	roster, err := ctrl.Enrollments.CourseRoster(id)
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, roster)
}
