package controller

import (
	"buriti_backend/internal/service"
	"buriti_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ForumController struct {
	Forums *service.ForumService
}

func NewForumController(forums *service.ForumService) *ForumController {
	return &ForumController{Forums: forums}
}

// List godoc
// @Summary Forums of the caller's active-enrollment courses
// @Tags forums
// @Produce json
// @Success 200 {object} util.Response
// @Router /foruns [get]
// @Security BearerAuth
func (ctrl *ForumController) List(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	forums, err := ctrl.Forums.ListForUser(claims.UserID)
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, forums)
}

type createForumRequest struct {
	ModuleID uint   `json:"moduloId" binding:"required"`
	Title    string `json:"titulo" binding:"required"`
	Ordem    *int   `json:"ordem"`
}

// Create godoc
// @Summary Create a forum in a module
// @Tags forums
// @Accept json
// @Produce json
// @Param request body createForumRequest true "Forum"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /foruns [post]
// @Security BearerAuth
func (ctrl *ForumController) Create(c *gin.Context) {
	var req createForumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "moduloId and titulo are required")
		return
	}

	forum, err := ctrl.Forums.Create(req.ModuleID, req.Title, req.Ordem)
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Created(c, forum)
}

// Delete godoc
// @Summary Delete a forum and its messages
// @Tags forums
// @Param id path int true "Forum ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /foruns/{id} [delete]
// @Security BearerAuth
func (ctrl *ForumController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid forum id")
		return
	}
	if err := ctrl.Forums.Delete(id); err != nil {
		util.HandleError(c, err)
		return
	}
	util.NoContent(c)
}

// Reorder godoc
// @Summary Replace the forum ordering inside a module
// @Tags forums
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param moduleId path int true "Module ID"
// @Success 200 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /courses/{id}/modulos/{moduleId}/reorder-foruns [put]
// @Security BearerAuth
func (ctrl *ForumController) Reorder(c *gin.Context) {
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

	if err := ctrl.Forums.Reorder(courseID, moduleID, req.ids()); err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, gin.H{"reordered": len(req.Items)})
}

type postMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// PostMessage godoc
// @Summary Post to a forum; requires active enrollment
// @Tags forums
// @Accept json
// @Produce json
// @Param id path int true "Forum ID"
// @Param request body postMessageRequest true "Message"
// @Success 201 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /foruns/{id}/messages [post]
// @Security BearerAuth
func (ctrl *ForumController) PostMessage(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid forum id")
		return
	}
	var req postMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "message is required")
		return
	}

	claims := util.GetUserFromContext(c)
	message, err := ctrl.Forums.PostMessage(claims.UserID, claims.Name, id, req.Message)
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Created(c, message)
}

// ListMessages godoc
// @Summary Messages of a forum; requires active enrollment
// @Tags forums
// @Produce json
// @Param id path int true "Forum ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /foruns/{id}/messages [get]
// @Security BearerAuth
func (ctrl *ForumController) ListMessages(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid forum id")
		return
	}

	claims := util.GetUserFromContext(c)
	messages, err := ctrl.Forums.ListMessages(claims.UserID, id)
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, messages)
}
