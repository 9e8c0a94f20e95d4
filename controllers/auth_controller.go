package controllers

import (
	"errors"

	"github.com/Nachiketh1704/InternHub/pkg/resp"
	"github.com/Nachiketh1704/InternHub/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Service *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Service: s}
}

// ทุก field optional แต่ต้องมี username หรือ email อย่างน้อยหนึ่ง
type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// POST /api/login — จุดเดียวทั้ง admin และ applicant
func (ctl *AuthController) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, err.Error())
		return
	}
	if req.Username == "" && req.Email == "" {
		resp.ValidationError(c, "either username or email is required")
		return
	}

	result, err := ctl.Service.Login(services.LoginInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			resp.Unauthorized(c, err.Error())
		case errors.Is(err, services.ErrNoApplicationFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrMissingCredentials):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.OK(c, result)
}
