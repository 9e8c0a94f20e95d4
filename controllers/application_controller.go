package controllers

import (
	"errors"

	"github.com/Nachiketh1704/InternHub/pkg/resp"
	"github.com/Nachiketh1704/InternHub/services"

	"github.com/gin-gonic/gin"
)

type ApplicationController struct{ Service *services.ApplicationService }

func NewApplicationController(s *services.ApplicationService) *ApplicationController {
	return &ApplicationController{Service: s}
}

// ===== Request DTO =====
type CreateApplicationReq struct {
	FullName        string `json:"full_name" binding:"required,min=2,max=100"`
	Email           string `json:"email" binding:"required,email"`
	PhoneNumber     string `json:"phone_number" binding:"required,min=10,max=15"`
	Role            string `json:"role" binding:"required,oneof=intern volunteer"`
	SkillsInterests string `json:"skills_interests" binding:"required,min=10"`
	Availability    string `json:"availability" binding:"required,min=5"`
}

// POST /api/applications — ยื่นใบสมัคร
func (ctl *ApplicationController) Create(c *gin.Context) {
	var req CreateApplicationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, err.Error())
		return
	}

	app, err := ctl.Service.Create(services.CreateApplicationInput{
		FullName:        req.FullName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		Role:            req.Role,
		SkillsInterests: req.SkillsInterests,
		Availability:    req.Availability,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailRegistered) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, app)
}

// GET /api/applicant/status/:id — applicant ดูสถานะใบสมัครตัวเอง
func (ctl *ApplicationController) Status(c *gin.Context) {
	app, err := ctl.Service.GetByAppID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrApplicationNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, app)
}
