package controller

import (
	"buriti_backend/internal/service"
	"buriti_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users *service.UserService
}

func NewUserController(users *service.UserService) *UserController {
	return &UserController{Users: users}
}

// ListStudents godoc
// @Summary Every student account
// @Tags users
// @Produce json
// @Success 200 {object} util.Response
// @Router /admin/students [get]
// @Security BearerAuth
func (ctrl *UserController) ListStudents(c *gin.Context) {
	students, err := ctrl.Users.ListStudents()
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, students)
}

type updateUserRequest struct {
	Name            string `json:"nome"`
	CurrentPassword string `json:"senhaAtual"`
	NewPassword     string `json:"novaSenha"`
}

// UpdateSelf godoc
// @Summary Update own name or password; password change checks the current one
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /users/{id} [put]
// @Security BearerAuth
func (ctrl *UserController) UpdateSelf(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid user id")
		return
	}

	claims := util.GetUserFromContext(c)
	if claims.UserID != id {
		util.Error(c, 403, "cannot update another user")
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "invalid request body")
		return
	}

	user, err := ctrl.Users.UpdateSelf(id, req.Name, req.CurrentPassword, req.NewPassword)
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, user)
}
