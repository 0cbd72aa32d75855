package controller

import (
	"buriti_backend/internal/model"
	"buriti_backend/internal/service"
	"buriti_backend/internal/util"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	Content *service.ContentService
}

func NewContentController(content *service.ContentService) *ContentController {
	return &ContentController{Content: content}
}

// reorderItemsRequest is the shared body of every content reorder: the
// complete ordered sibling list.
type reorderItemsRequest struct {
	Items []struct {
		ID uint `json:"id" binding:"required"`
	} `json:"itens" binding:"required"`
}

func (r *reorderItemsRequest) ids() []uint {
	ids := make([]uint, 0, len(r.Items))
	for _, item := range r.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

func (ctrl *ContentController) reorder(c *gin.Context, fn func(courseID, moduleID uint, ids []uint) error) {
	courseID, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid course id")
		return
	}
	moduleID, ok := paramID(c, "moduleId")
	if !ok {
		util.BadRequest(c, "invalid module id")
		return
	}
	var req reorderItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "itens list is required")
		return
	}

	if err := fn(courseID, moduleID, req.ids()); err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, gin.H{"reordered": len(req.Items)})
}

func parseOrdem(c *gin.Context) (*int, bool) {
	v, ok := c.GetPostForm("ordem")
	if !ok {
		return nil, true
	}
	ordem, err := strconv.Atoi(v)
	if err != nil {
		return nil, false
	}
	return &ordem, true
}

// CreateVideo godoc
// @Summary Upload a video into a module (multipart)
// @Tags videos
// @Accept mpfd
// @Produce json
// @Param moduloId formData int true "Module ID"
// @Param titulo formData string true "Title"
// @Param video formData file true "Video file"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /videos [post]
// @Security BearerAuth
func (ctrl *ContentController) CreateVideo(c *gin.Context) {
	moduleID, err := strconv.ParseUint(c.PostForm("moduloId"), 10, 32)
	if err != nil || moduleID == 0 {
		util.BadRequest(c, "moduloId is required")
		return
	}
	ordem, ok := parseOrdem(c)
	if !ok {
		util.BadRequest(c, "invalid ordem")
		return
	}
	file, _ := c.FormFile("video")

	result, serr := ctrl.Content.CreateVideo(c.Request.Context(), uint(moduleID), c.PostForm("titulo"), ordem, file)
	if serr != nil {
		util.HandleError(c, serr)
		return
	}
	util.Created(c, result)
}

// DeleteVideo godoc
// @Summary Delete a video and its stored file
// @Tags videos
// @Param id path int true "Video ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /videos/{id} [delete]
// @Security BearerAuth
func (ctrl *ContentController) DeleteVideo(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid video id")
		return
	}
	if err := ctrl.Content.DeleteVideo(c.Request.Context(), id); err != nil {
		util.HandleError(c, err)
		return
	}
	util.NoContent(c)
}

// ReorderVideos godoc
// @Summary Replace the video ordering inside a module
// @Tags videos
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param moduleId path int true "Module ID"
// @Param request body reorderItemsRequest true "Full ordered video list"
// @Success 200 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /courses/{id}/modulos/{moduleId}/reorder-videos [put]
// @Security BearerAuth
func (ctrl *ContentController) ReorderVideos(c *gin.Context) {
	ctrl.reorder(c, ctrl.Content.ReorderVideos)
}

type createLiveSessionRequest struct {
	ModuleID    uint      `json:"moduloId" binding:"required"`
	Title       string    `json:"titulo" binding:"required"`
	MeetingURL  string    `json:"linkJitsi" binding:"required"`
	ScheduledAt time.Time `json:"dataHora" binding:"required"`
	Password    string    `json:"senha"`
	Ordem       *int      `json:"ordem"`
}

// CreateLiveSession godoc
// @Summary Schedule a live session in a module
// @Tags live-sessions
// @Accept json
// @Produce json
// @Param request body createLiveSessionRequest true "Live session"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /aulas-ao-vivo [post]
// @Security BearerAuth
func (ctrl *ContentController) CreateLiveSession(c *gin.Context) {
	var req createLiveSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "moduloId, titulo, linkJitsi and dataHora are required")
		return
	}

	session := &model.LiveSession{
		Title:       req.Title,
		MeetingURL:  req.MeetingURL,
		ScheduledAt: req.ScheduledAt,
		Password:    req.Password,
	}
	if err := ctrl.Content.CreateLiveSession(req.ModuleID, session, req.Ordem); err != nil {
		util.HandleError(c, err)
		return
	}
	util.Created(c, session)
}

// DeleteLiveSession godoc
// @Summary Delete a live session
// @Tags live-sessions
// @Param id path int true "Live session ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /aulas-ao-vivo/{id} [delete]
// @Security BearerAuth
func (ctrl *ContentController) DeleteLiveSession(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid live session id")
		return
	}
	if err := ctrl.Content.DeleteLiveSession(id); err != nil {
		util.HandleError(c, err)
		return
	}
	util.NoContent(c)
}

// ReorderLiveSessions godoc
// @Summary Replace the live session ordering inside a module
// @Tags live-sessions
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param moduleId path int true "Module ID"
// @Success 200 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /courses/{id}/modulos/{moduleId}/reorder-aulas-ao-vivo [put]
// @Security BearerAuth
func (ctrl *ContentController) ReorderLiveSessions(c *gin.Context) {
	ctrl.reorder(c, ctrl.Content.ReorderLiveSessions)
}

type createQuizRequest struct {
	ModuleID uint     `json:"moduloId" binding:"required"`
	Question string   `json:"pergunta" binding:"required"`
	Options  []string `json:"opcoes" binding:"required"`
	Correct  string   `json:"resposta" binding:"required"`
	MinGrade int      `json:"notaMinima" binding:"required"`
	Ordem    *int     `json:"ordem"`
}

// CreateQuiz godoc
// @Summary Create a quiz in a module
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body createQuizRequest true "Quiz"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /quizzes [post]
// @Security BearerAuth
func (ctrl *ContentController) CreateQuiz(c *gin.Context) {
	var req createQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "moduloId, pergunta, opcoes, resposta and notaMinima are required")
		return
	}

	options, err := util.MarshalJSONString(req.Options)
	if err != nil {
		util.BadRequest(c, "invalid opcoes")
		return
	}

	quiz := &model.Quiz{
		Question: req.Question,
		Options:  options,
		Correct:  req.Correct,
		MinGrade: req.MinGrade,
	}
	if err := ctrl.Content.CreateQuiz(req.ModuleID, quiz, req.Ordem); err != nil {
		util.HandleError(c, err)
		return
	}
	util.Created(c, quiz)
}

// DeleteQuiz godoc
// @Summary Delete a quiz
// @Tags quizzes
// @Param id path int true "Quiz ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /quizzes/{id} [delete]
// @Security BearerAuth
func (ctrl *ContentController) DeleteQuiz(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid quiz id")
		return
	}
	if err := ctrl.Content.DeleteQuiz(id); err != nil {
		util.HandleError(c, err)
		return
	}
	util.NoContent(c)
}

// ReorderQuizzes godoc
// @Summary Replace the quiz ordering inside a module
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param moduleId path int true "Module ID"
// @Success 200 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /courses/{id}/modulos/{moduleId}/reorder-quizzes [put]
// @Security BearerAuth
func (ctrl *ContentController) ReorderQuizzes(c *gin.Context) {
	ctrl.reorder(c, ctrl.Content.ReorderQuizzes)
}

type quizResponseRequest struct {
	Answer string `json:"resposta" binding:"required"`
}

// SubmitQuizResponse godoc
// @Summary Submit a graded quiz answer; requires active enrollment
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path int true "Quiz ID"
// @Param request body quizResponseRequest true "Answer"
// @Success 201 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /quizzes/{id}/responses [post]
// @Security BearerAuth
func (ctrl *ContentController) SubmitQuizResponse(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid quiz id")
		return
	}
	var req quizResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "resposta is required")
		return
	}

	claims := util.GetUserFromContext(c)
	response, err := ctrl.Content.SubmitQuizResponse(claims.UserID, id, req.Answer)
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Created(c, gin.H{"acerto": response.Correct, "nota": response.Grade})
}

// CreateUpload godoc
// @Summary Publish course material with a stored file (multipart)
// @Tags uploads
// @Accept mpfd
// @Produce json
// @Param moduloId formData int true "Module ID"
// @Param titulo formData string true "Title"
// @Param file formData file true "Material file"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /uploads [post]
// @Security BearerAuth
func (ctrl *ContentController) CreateUpload(c *gin.Context) {
	moduleID, err := strconv.ParseUint(c.PostForm("moduloId"), 10, 32)
	if err != nil || moduleID == 0 {
		util.BadRequest(c, "moduloId is required")
		return
	}
	ordem, ok := parseOrdem(c)
	if !ok {
		util.BadRequest(c, "invalid ordem")
		return
	}
	file, _ := c.FormFile("file")

	upload, serr := ctrl.Content.CreateUpload(c.Request.Context(), uint(moduleID),
		c.PostForm("titulo"), c.PostForm("instrucoes"), ordem, file)
	if serr != nil {
		util.HandleError(c, serr)
		return
	}
	util.Created(c, upload)
}

// ListUploads godoc
// @Summary Course material of a module; requires active enrollment
// @Tags uploads
// @Produce json
// @Param id path int true "Module ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /modulos/{id}/uploads [get]
// @Security BearerAuth
func (ctrl *ContentController) ListUploads(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid module id")
		return
	}
	claims := util.GetUserFromContext(c)
	uploads, err := ctrl.Content.ListModuleUploads(claims.UserID, id)
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, uploads)
}

// DeleteUpload godoc
// @Summary Delete course material and its stored file
// @Tags uploads
// @Param id path int true "Upload ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /uploads/{id} [delete]
// @Security BearerAuth
func (ctrl *ContentController) DeleteUpload(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid upload id")
		return
	}
	if err := ctrl.Content.DeleteUpload(c.Request.Context(), id); err != nil {
		util.HandleError(c, err)
		return
	}
	util.NoContent(c)
}

// ReorderUploads godoc
// @Summary Replace the material ordering inside a module
// @Tags uploads
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param moduleId path int true "Module ID"
// @Success 200 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /courses/{id}/modulos/{moduleId}/reorder-uploads [put]
// @Security BearerAuth
func (ctrl *ContentController) ReorderUploads(c *gin.Context) {
	ctrl.reorder(c, ctrl.Content.ReorderUploads)
}

// UploadProgress godoc
// @Summary Percentage of an in-flight video upload
// @Tags videos
// @Produce json
// @Param uploadId path string true "Upload ID"
// @Success 200 {object} util.Response
// @Router /videos/upload-progress/{uploadId} [get]
// @Security BearerAuth
func (ctrl *ContentController) UploadProgress(c *gin.Context) {
	uploadID := c.Param("uploadId")
	if uploadID == "" {
		util.BadRequest(c, "upload id is required")
		return
	}
	percent, err := ctrl.Content.GetUploadProgress(c.Request.Context(), uploadID)
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, gin.H{"uploadId": uploadID, "percent": percent})
}
