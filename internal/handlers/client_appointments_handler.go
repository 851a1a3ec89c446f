package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Allain-afk/GlamQueue-sub001/internal/httperr"
	"github.com/Allain-afk/GlamQueue-sub001/internal/httpresp"
	"github.com/Allain-afk/GlamQueue-sub001/internal/session"
	apptuc "github.com/Allain-afk/GlamQueue-sub001/internal/usecase/appointment"
)

// ClientAppointmentsHandler is the booking surface of the client app.
type ClientAppointmentsHandler struct {
	create    *apptuc.Create
	listOwn   *apptuc.ListOwn
	cancelOwn *apptuc.CancelOwn
	remove    *apptuc.Delete
}

func NewClientAppointmentsHandler(
	create *apptuc.Create,
	listOwn *apptuc.ListOwn,
	cancelOwn *apptuc.CancelOwn,
	remove *apptuc.Delete,
) *ClientAppointmentsHandler {
	return &ClientAppointmentsHandler{
		create:    create,
		listOwn:   listOwn,
		cancelOwn: cancelOwn,
		remove:    remove,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	SalonID   string `json:"salon_id" binding:"required"`
	ServiceID string `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // "2:30 PM" or "14:30"
	Notes     string `json:"notes"`
}

// --------- Handlers ---------

func (h *ClientAppointmentsHandler) Create(c *gin.Context) {
	sess := session.MustFromContext(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment payload.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), apptuc.CreateInput{
		SalonID:   req.SalonID,
		ServiceID: req.ServiceID,
		ClientID:  sess.UserID,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.Map(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *ClientAppointmentsHandler) List(c *gin.Context) {
	sess := session.MustFromContext(c)

	items, err := h.listOwn.Execute(c.Request.Context(), sess)
	if err != nil {
		httperr.Map(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *ClientAppointmentsHandler) Cancel(c *gin.Context) {
	sess := session.MustFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Map(c, httperr.ErrBusiness("invalid_identifier"))
		return
	}

	ap, err := h.cancelOwn.Execute(c.Request.Context(), sess, id)
	if err != nil {
		httperr.Map(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *ClientAppointmentsHandler) Delete(c *gin.Context) {
	sess := session.MustFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Map(c, httperr.ErrBusiness("invalid_identifier"))
		return
	}

	if err := h.remove.Execute(c.Request.Context(), sess, id); err != nil {
		httperr.Map(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
