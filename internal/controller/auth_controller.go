package controller

import (
	"buriti_backend/internal/service"
	"buriti_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required"`
}

// Login godoc
// @Summary User login
// @Description Authenticates with email and password, returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body loginRequest true "Credentials"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "email and password are required")
		return
	}

	result, err := ctrl.AuthService.Login(req.Email, req.Password)
	if err != nil {
		util.HandleError(c, err)
		return
	}
	util.Success(c, result)
}
