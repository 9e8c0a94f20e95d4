package controllers

import (
	"errors"

	"github.com/Nachiketh1704/InternHub/pkg/resp"
	"github.com/Nachiketh1704/InternHub/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct{ Service *services.ApplicationService }

func NewAdminController(s *services.ApplicationService) *AdminController {
	return &AdminController{Service: s}
}

type StatusUpdateReq struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected under_review"`
}

// GET /api/admin/applications — รายการทั้งหมด ใหม่สุดก่อน
func (ctl *AdminController) List(c *gin.Context) {
	apps, err := ctl.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, apps)
}

// PUT /api/admin/applications/:id/status — เปลี่ยนสถานะใบสมัคร
func (ctl *AdminController) UpdateStatus(c *gin.Context) {
	var req StatusUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, err.Error())
		return
	}

	if err := ctl.Service.UpdateStatus(c.Param("id"), req.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrApplicationNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrInvalidStatus):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.Message(c, "Application status updated to "+req.Status)
}

// DELETE /api/admin/applications/:id — ลบถาวร
func (ctl *AdminController) Delete(c *gin.Context) {
	if err := ctl.Service.Delete(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrApplicationNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Application deleted successfully")
}
