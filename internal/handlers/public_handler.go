package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/Allain-afk/GlamQueue-sub001/internal/domain/appointment"
	"github.com/Allain-afk/GlamQueue-sub001/internal/httperr"
	"github.com/Allain-afk/GlamQueue-sub001/internal/httpresp"
	apptuc "github.com/Allain-afk/GlamQueue-sub001/internal/usecase/appointment"
	intentuc "github.com/Allain-afk/GlamQueue-sub001/internal/usecase/intent"
)

// ======================================================
// HANDLER
// ======================================================

// PublicHandler serves the unauthenticated landing-page surface: the
// service catalog, the slot grid and the booking-intent capture.
type PublicHandler struct {
	repo         domain.Repository
	availability *apptuc.GetAvailability
	capture      *intentuc.Capture
}

func NewPublicHandler(
	repo domain.Repository,
	availability *apptuc.GetAvailability,
	capture *intentuc.Capture,
) *PublicHandler {
	return &PublicHandler{
		repo:         repo,
		availability: availability,
		capture:      capture,
	}
}

// ======================================================
// SERVICES
// ======================================================

func (h *PublicHandler) ListServices(c *gin.Context) {
	slug := c.Param("slug")

	salon, err := h.repo.GetSalonBySlug(c.Request.Context(), slug)
	if err != nil {
		httperr.Map(c, httperr.ErrBusiness("salon_not_found"))
		return
	}

	services, err := h.repo.ListActiveServices(
		c.Request.Context(),
		salon.ID,
		c.Query("category"),
		c.Query("query"),
	)
	if err != nil {
		httperr.Map(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"salon":    salon,
		"services": services,
	})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PublicHandler) Availability(c *gin.Context) {
	slug := c.Param("slug")
	dateStr := c.Query("date")
	serviceID := c.Query("service_id")

	if dateStr == "" || serviceID == "" {
		httperr.Map(c, httperr.ErrBusiness("missing_params"))
		return
	}

	salon, err := h.repo.GetSalonBySlug(c.Request.Context(), slug)
	if err != nil {
		httperr.Map(c, httperr.ErrBusiness("salon_not_found"))
		return
	}

	schedule, err := h.availability.Execute(
		c.Request.Context(),
		apptuc.AvailabilityInput{
			SalonID:   salon.ID,
			ServiceID: serviceID,
			Date:      dateStr,
		},
	)
	if err != nil {
		httperr.Map(c, err)
		return
	}

	httpresp.OK(c, schedule)
}

// ======================================================
// BOOKING INTENT
// ======================================================

type CaptureIntentRequest struct {
	VisitorKey     string `json:"visitor_key"`
	ServiceName    string `json:"service_name"`
	SalonName      string `json:"salon_name"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	ClientName     string `json:"client_name"`
	ClientPhone    string `json:"client_phone"`
	AdvanceBooking bool   `json:"advance_booking"`
}

func (h *PublicHandler) CaptureIntent(c *gin.Context) {
	var req CaptureIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking intent payload.")
		return
	}

	visitorKey, err := h.capture.Execute(c.Request.Context(), intentuc.CaptureInput{
		VisitorKey:     req.VisitorKey,
		ServiceName:    req.ServiceName,
		SalonName:      req.SalonName,
		Date:           req.Date,
		Time:           req.Time,
		ClientName:     req.ClientName,
		ClientPhone:    req.ClientPhone,
		AdvanceBooking: req.AdvanceBooking,
	})
	if err != nil {
		httperr.Map(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"visitor_key": visitorKey,
		"expires_in":  "1h",
	})
}
