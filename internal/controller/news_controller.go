package controller

import (
	"buriti_backend/internal/model"
	"buriti_backend/internal/service"
	"buriti_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NewsController struct {
	News *service.NewsService
}

func NewNewsController(news *service.NewsService) *NewsController {
	return &NewsController{News: news}
}

// List godoc
// @Summary Published news, newest first
// @Tags news
// @Produce json
// @Success 200 {object} util.Response
// @Router /noticias [get]
func (ctrl *NewsController) List(c *gin.Context) {
	items, err := ctrl.News.List()
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, items)
}

type createNewsRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"conteudo" binding:"required"`
	Category string `json:"categoria" binding:"required"`
	Link     string `json:"link"`
	Status   string `json:"status"`
}

// Create godoc
// @Summary Publish a news item
// @Tags news
// @Accept json
// @Produce json
// @Param request body createNewsRequest true "News item"
// @Success 201 {object} util.Response
// @Router /noticias [post]
// @Security BearerAuth
func (ctrl *NewsController) Create(c *gin.Context) {
	var req createNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "title, conteudo and categoria are required")
		return
	}

	news := &model.News{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Link:     req.Link,
		Status:   req.Status,
	}
	if err := ctrl.News.Create(news); err != nil {
		util.HandleError(c, err)
		return
	}
	util.Created(c, news)
}

type updateNewsRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"conteudo"`
	Category *string `json:"categoria"`
	Link     *string `json:"link"`
	Status   *string `json:"status"`
}

// Update godoc
// @Summary Update a news item
// @Tags news
// @Accept json
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /noticias/{id} [put]
// @Security BearerAuth
func (ctrl *NewsController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid news id")
		return
	}
	var req updateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "invalid request body")
		return
	}

	news, err := ctrl.News.Update(id, service.NewsUpdate{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Link:     req.Link,
		Status:   req.Status,
	})
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, news)
}

// Delete godoc
// @Summary Delete a news item
// @Tags news
// @Param id path int true "News ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /noticias/{id} [delete]
// @Security BearerAuth
func (ctrl *NewsController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid news id")
		return
	}
	if err := ctrl.News.Delete(id); err != nil {
		util.HandleError(c, err)
		return
	}
	util.NoContent(c)
}
