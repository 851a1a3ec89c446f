package flow

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	domain "github.com/Allain-afk/GlamQueue-sub001/internal/domain/subscription"
	"github.com/Allain-afk/GlamQueue-sub001/internal/session"
)

// ===============================
// Screens
// ===============================

// Screen is the closed set of top-level destinations the server routes
// callers to. The UI renders them; it never decides them.
type Screen string

const (
	ScreenLanding              Screen = "landing"
	ScreenLogin                Screen = "login"
	ScreenOTPVerification      Screen = "otp-verification"
	ScreenAdminDashboard       Screen = "admin-dashboard"
	ScreenClientApp            Screen = "client-app"
	ScreenOnboarding           Screen = "onboarding"
	ScreenSubscriptionRequired Screen = "subscription-required"
)

// ===============================
// Controller
// ===============================

// AccessChecker is the access-gate slice the controller needs.
// *subscription.CheckAccess satisfies it.
type AccessChecker interface {
	Execute(ctx context.Context, userID uuid.UUID) (domain.Access, error)
}

type Controller struct {
	access AccessChecker
}

func NewController(access AccessChecker) *Controller {
	return &Controller{access: access}
}

// Start maps a fresh page load onto a screen.
func (ct *Controller) Start(ctx context.Context, sess *session.Session) Screen {
	if sess == nil {
		return ScreenLanding
	}
	return ct.AfterAuth(ctx, sess)
}

// AfterLogin is the screen that follows a successful password check.
// No session exists yet; the caller only holds an OTP ticket.
func (ct *Controller) AfterLogin() Screen {
	return ScreenOTPVerification
}

// AfterAuth routes a fully authenticated caller. Admins pass through the
// access gate; when the gate cannot answer, the dashboard stays shut.
func (ct *Controller) AfterAuth(ctx context.Context, sess *session.Session) Screen {
	if !sess.Role.IsAdmin() {
		return ScreenClientApp
	}

	access, err := ct.access.Execute(ctx, sess.UserID)
	if err != nil {
		log.Warn().Err(err).Msg("access gate unavailable, denying dashboard")
		return ScreenSubscriptionRequired
	}

	if !access.Found {
		return ScreenOnboarding
	}
	if !access.HasAccess {
		return ScreenSubscriptionRequired
	}
	return ScreenAdminDashboard
}
