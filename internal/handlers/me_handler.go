package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Allain-afk/GlamQueue-sub001/internal/httperr"
	"github.com/Allain-afk/GlamQueue-sub001/internal/httpresp"
	"github.com/Allain-afk/GlamQueue-sub001/internal/models"
	"github.com/Allain-afk/GlamQueue-sub001/internal/session"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	sess := session.MustFromContext(c)

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Salon").
		Where("id = ?", sess.UserID).
		First(&user).Error; err != nil {

		httperr.Map(c, httperr.ErrBusiness("user_not_found"))
		return
	}

	resp := gin.H{"user": userView(&user)}
	if user.Salon != nil {
		resp["salon"] = salonView(user.Salon)
	}

	httpresp.OK(c, resp)
}
