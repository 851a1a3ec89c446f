package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ======================================================
// Business code → HTTP status / message
// ======================================================

var statusByCode = map[string]int{
	// validation
	"invalid_request":       http.StatusBadRequest,
	"invalid_identifier":    http.StatusBadRequest,
	"invalid_date_or_time":  http.StatusBadRequest,
	"past_slot":             http.StatusBadRequest,
	"outside_booking_hours": http.StatusBadRequest,
	"off_schedule":          http.StatusBadRequest,
	"missing_params":        http.StatusBadRequest,
	"invalid_plan":          http.StatusBadRequest,
	"invalid_timezone":      http.StatusBadRequest,
	"invalid_state":         http.StatusBadRequest,
	"invalid_email_domain":  http.StatusBadRequest,
	"ambiguous_name":        http.StatusBadRequest,

	// authorization
	"not_permitted":          http.StatusForbidden,
	"invalid_credentials":    http.StatusUnauthorized,
	"invalid_token":          http.StatusUnauthorized,
	"email_not_confirmed":    http.StatusUnauthorized,
	"invalid_or_expired_otp": http.StatusUnauthorized,

	// conflict
	"slot_taken":           http.StatusConflict,
	"trial_already_used":   http.StatusConflict,
	"email_already_exists": http.StatusConflict,
	"slug_already_exists":  http.StatusConflict,

	// not found
	"salon_not_found":       http.StatusNotFound,
	"service_not_found":     http.StatusNotFound,
	"appointment_not_found": http.StatusNotFound,
	"user_not_found":        http.StatusNotFound,
}

var messageByCode = map[string]string{
	"invalid_request":        "Invalid request data.",
	"invalid_identifier":     "Invalid identifier.",
	"invalid_date_or_time":   "Invalid date or time.",
	"past_slot":              "That time has already passed.",
	"outside_booking_hours":  "Time is outside booking hours.",
	"off_schedule":           "Time is not on the booking schedule.",
	"missing_params":         "Missing required parameters.",
	"invalid_plan":           "Unknown subscription plan.",
	"invalid_timezone":       "Invalid timezone.",
	"invalid_state":          "Appointment state does not allow this action.",
	"invalid_email_domain":   "Email domain does not look valid.",
	"ambiguous_name":         "More than one match for that name.",
	"not_permitted":          "You are not allowed to perform this action.",
	"invalid_credentials":    "Invalid email or password.",
	"invalid_token":          "Invalid or expired token.",
	"email_not_confirmed":    "Please confirm your email first.",
	"invalid_or_expired_otp": "Invalid or expired verification code.",
	"slot_taken":             "That time slot was just taken.",
	"trial_already_used":     "The free trial is no longer available for this account.",
	"email_already_exists":   "An account with this email already exists.",
	"slug_already_exists":    "That salon address is already taken.",
	"salon_not_found":        "Salon not found.",
	"service_not_found":      "Service not found.",
	"appointment_not_found":  "Appointment not found.",
	"user_not_found":         "User not found.",
}

// Map writes the HTTP response for a usecase error. Business errors map to
// their registered status and message; anything else becomes a 500 with a
// generic body and the raw error is logged.
func Map(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		status, ok := statusByCode[be.Code]
		if !ok {
			status = http.StatusInternalServerError
		}
		message := messageByCode[be.Code]
		if message == "" {
			message = "Request failed."
		}
		Write(c, status, be.Code, message)
		return
	}

	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled error")
	Internal(c, "internal_error", "Something went wrong.")
}
