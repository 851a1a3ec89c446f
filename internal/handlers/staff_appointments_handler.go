package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Allain-afk/GlamQueue-sub001/internal/httperr"
	"github.com/Allain-afk/GlamQueue-sub001/internal/httpresp"
	"github.com/Allain-afk/GlamQueue-sub001/internal/models"
	"github.com/Allain-afk/GlamQueue-sub001/internal/session"
	apptuc "github.com/Allain-afk/GlamQueue-sub001/internal/usecase/appointment"
)

// StaffAppointmentsHandler is the salon dashboard's calendar and
// lifecycle surface.
type StaffAppointmentsHandler struct {
	listByDate  *apptuc.ListByDate
	listByMonth *apptuc.ListByMonth
	confirm     *apptuc.Confirm
	complete    *apptuc.Complete
	cancel      *apptuc.Cancel
	remove      *apptuc.Delete
}

func NewStaffAppointmentsHandler(
	listByDate *apptuc.ListByDate,
	listByMonth *apptuc.ListByMonth,
	confirm *apptuc.Confirm,
	complete *apptuc.Complete,
	cancel *apptuc.Cancel,
	remove *apptuc.Delete,
) *StaffAppointmentsHandler {
	return &StaffAppointmentsHandler{
		listByDate:  listByDate,
		listByMonth: listByMonth,
		confirm:     confirm,
		complete:    complete,
		cancel:      cancel,
		remove:      remove,
	}
}

// --------- Listing ---------

func (h *StaffAppointmentsHandler) ListByDate(c *gin.Context) {
	sess := session.MustFromContext(c)

	date := c.Query("date")
	if date == "" {
		httperr.Map(c, httperr.ErrBusiness("missing_params"))
		return
	}

	items, err := h.listByDate.Execute(c.Request.Context(), sess, date)
	if err != nil {
		httperr.Map(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *StaffAppointmentsHandler) ListByMonth(c *gin.Context) {
	sess := session.MustFromContext(c)

	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil {
		httperr.Map(c, httperr.ErrBusiness("missing_params"))
		return
	}

	items, err := h.listByMonth.Execute(c.Request.Context(), sess, year, month)
	if err != nil {
		httperr.Map(c, err)
		return
	}

	httpresp.List(c, items)
}

// --------- Lifecycle ---------

func (h *StaffAppointmentsHandler) Confirm(c *gin.Context) {
	h.transition(c, h.confirm.Execute)
}

func (h *StaffAppointmentsHandler) Complete(c *gin.Context) {
	h.transition(c, h.complete.Execute)
}

func (h *StaffAppointmentsHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cancel.Execute)
}

func (h *StaffAppointmentsHandler) Delete(c *gin.Context) {
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

// transition factors the shared shape of confirm, complete and cancel.
func (h *StaffAppointmentsHandler) transition(
	c *gin.Context,
	exec func(ctx context.Context, sess *session.Session, id uuid.UUID) (*models.Appointment, error),
) {
	sess := session.MustFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Map(c, httperr.ErrBusiness("invalid_identifier"))
		return
	}

	ap, err := exec(c.Request.Context(), sess, id)
	if err != nil {
		httperr.Map(c, err)
		return
	}

	httpresp.OK(c, ap)
}
