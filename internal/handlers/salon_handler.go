package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Allain-afk/GlamQueue-sub001/internal/httperr"
	"github.com/Allain-afk/GlamQueue-sub001/internal/httpresp"
	"github.com/Allain-afk/GlamQueue-sub001/internal/models"
	"github.com/Allain-afk/GlamQueue-sub001/internal/session"
	"github.com/Allain-afk/GlamQueue-sub001/internal/timezone"
)

type SalonHandler struct {
	db *gorm.DB
}

func NewSalonHandler(db *gorm.DB) *SalonHandler {
	return &SalonHandler{db: db}
}

type UpdateSalonRequest struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
}

func (h *SalonHandler) GetMySalon(c *gin.Context) {
	sess := session.MustFromContext(c)
	if sess.SalonID == nil {
		httperr.Map(c, httperr.ErrBusiness("not_permitted"))
		return
	}

	var salon models.Salon
	if err := h.db.WithContext(c.Request.Context()).
		Where("id = ?", *sess.SalonID).
		First(&salon).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Map(c, httperr.ErrBusiness("salon_not_found"))
			return
		}
		httperr.Map(c, err)
		return
	}

	httpresp.OK(c, salon)
}

func (h *SalonHandler) UpdateMySalon(c *gin.Context) {
	sess := session.MustFromContext(c)
	if !sess.Role.IsAdmin() || sess.SalonID == nil {
		httperr.Map(c, httperr.ErrBusiness("not_permitted"))
		return
	}

	var salon models.Salon
	if err := h.db.WithContext(c.Request.Context()).
		Where("id = ?", *sess.SalonID).
		First(&salon).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Map(c, httperr.ErrBusiness("salon_not_found"))
			return
		}
		httperr.Map(c, err)
		return
	}

	var req UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid salon payload.")
		return
	}

	if req.Name != nil {
		salon.Name = *req.Name
	}
	if req.Phone != nil {
		salon.Phone = *req.Phone
	}
	if req.Address != nil {
		salon.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.Map(c, httperr.ErrBusiness("invalid_timezone"))
			return
		}
		salon.Timezone = *req.Timezone
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&salon).Error; err != nil {
		httperr.Map(c, err)
		return
	}

	httpresp.OK(c, salon)
}
