package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/Allain-afk/GlamQueue-sub001/internal/config"
	"github.com/Allain-afk/GlamQueue-sub001/internal/domain/login"
	"github.com/Allain-afk/GlamQueue-sub001/internal/domain/role"
	"github.com/Allain-afk/GlamQueue-sub001/internal/flow"
	"github.com/Allain-afk/GlamQueue-sub001/internal/httperr"
	"github.com/Allain-afk/GlamQueue-sub001/internal/httpresp"
	"github.com/Allain-afk/GlamQueue-sub001/internal/models"
	"github.com/Allain-afk/GlamQueue-sub001/internal/session"
	"github.com/Allain-afk/GlamQueue-sub001/internal/timezone"
	intentuc "github.com/Allain-afk/GlamQueue-sub001/internal/usecase/intent"
	"github.com/Allain-afk/GlamQueue-sub001/internal/validators"
)

// UserStore is the account persistence the auth flows need. The gorm
// implementation lives in infra/repository.
type UserStore interface {
	CreateSalonWithOwner(ctx context.Context, salon *models.Salon, owner *models.User) error
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail returns (nil, nil) when no account matches.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	ConfirmEmail(ctx context.Context, id uuid.UUID) error
}

// ======================================================
// HANDLER
// ======================================================

type AuthHandler struct {
	users     UserStore
	tickets   login.TicketStore
	reconcile *intentuc.Reconcile
	flow      *flow.Controller
	cfg       *config.Config
}

func NewAuthHandler(
	users UserStore,
	tickets login.TicketStore,
	reconcile *intentuc.Reconcile,
	flowCtrl *flow.Controller,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{
		users:     users,
		tickets:   tickets,
		reconcile: reconcile,
		flow:      flowCtrl,
		cfg:       cfg,
	}
}

// --------- Requests ---------

type RegisterSalonRequest struct {
	SalonName     string `json:"salon_name" binding:"required"`
	SalonSlug     string `json:"salon_slug" binding:"required"`
	SalonPhone    string `json:"salon_phone"`
	SalonAddress  string `json:"salon_address"`
	SalonTimezone string `json:"salon_timezone"`

	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type VerifyOTPRequest struct {
	TicketID   string `json:"ticket_id" binding:"required"`
	Code       string `json:"code" binding:"required"`
	VisitorKey string `json:"visitor_key"`
}

// ======================================================
// REGISTER SALON (admin owner account)
// ======================================================

func (h *AuthHandler) RegisterSalon(c *gin.Context) {
	var req RegisterSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid registration payload.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := h.checkEmail(email); err != nil {
		httperr.Map(c, err)
		return
	}

	tz := strings.TrimSpace(req.SalonTimezone)
	if tz == "" {
		tz = timezone.DefaultTimezone
	}
	if !timezone.IsValid(tz) {
		httperr.Map(c, httperr.ErrBusiness("invalid_timezone"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	salon := &models.Salon{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(req.SalonName),
		Slug:     strings.ToLower(strings.TrimSpace(req.SalonSlug)),
		Phone:    req.SalonPhone,
		Address:  req.SalonAddress,
		Timezone: tz,
	}

	owner := &models.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         role.Admin.String(),
	}

	if err := h.users.CreateSalonWithOwner(c.Request.Context(), salon, owner); err != nil {
		httperr.Map(c, err)
		return
	}

	h.issueConfirmToken(c.Request.Context(), owner)

	httpresp.Created(c, gin.H{
		"user":   userView(owner),
		"salon":  salonView(salon),
		"screen": flow.ScreenLogin,
	})
}

// ======================================================
// SIGNUP (client account)
// ======================================================

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid signup payload.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := h.checkEmail(email); err != nil {
		httperr.Map(c, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         role.Client.String(),
	}

	if err := h.users.CreateUser(c.Request.Context(), user); err != nil {
		httperr.Map(c, err)
		return
	}

	h.issueConfirmToken(c.Request.Context(), user)

	httpresp.Created(c, gin.H{
		"user":   userView(user),
		"screen": flow.ScreenLogin,
	})
}

// ======================================================
// LOGIN → OTP TICKET
// ======================================================

// Login checks the password and opens the OTP sub-flow. No session is
// issued here; the credentials are dropped as soon as the ticket exists.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid login payload.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.users.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		httperr.Map(c, err)
		return
	}
	if user == nil {
		httperr.Map(c, httperr.ErrBusiness("invalid_credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Map(c, httperr.ErrBusiness("invalid_credentials"))
		return
	}

	if !user.EmailConfirmed {
		httperr.Map(c, httperr.ErrBusiness("email_not_confirmed"))
		return
	}

	ticket := login.NewTicket(user.ID, time.Now().UTC())
	if err := h.tickets.SaveTicket(c.Request.Context(), ticket); err != nil {
		httperr.Map(c, err)
		return
	}

	// Development delivery. A real deployment hands the code to an SMS
	// or email provider instead.
	log.Info().
		Str("ticket_id", ticket.ID).
		Str("code", ticket.Code).
		Msg("otp code issued")

	httpresp.OK(c, gin.H{
		"ticket_id": ticket.ID,
		"screen":    h.flow.AfterLogin(),
	})
}

// ======================================================
// VERIFY OTP → SESSION
// ======================================================

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid verification payload.")
		return
	}

	ticket, err := h.tickets.ConsumeTicket(c.Request.Context(), req.TicketID)
	if err != nil {
		httperr.Map(c, err)
		return
	}
	// The ticket is spent either way; a wrong code costs the caller a
	// fresh login.
	if ticket == nil || ticket.Code != req.Code {
		httperr.Map(c, httperr.ErrBusiness("invalid_or_expired_otp"))
		return
	}

	user, err := h.users.GetUserByID(c.Request.Context(), ticket.UserID)
	if err != nil {
		httperr.Map(c, httperr.ErrBusiness("user_not_found"))
		return
	}

	h.issueSession(c, user, req.VisitorKey)
}

// ======================================================
// CONFIRM EMAIL → SESSION
// ======================================================

func (h *AuthHandler) ConfirmEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		httperr.Map(c, httperr.ErrBusiness("missing_params"))
		return
	}

	confirm, err := h.tickets.ConsumeConfirmToken(c.Request.Context(), token)
	if err != nil {
		httperr.Map(c, err)
		return
	}
	if confirm == nil {
		httperr.Map(c, httperr.ErrBusiness("invalid_token"))
		return
	}

	if err := h.users.ConfirmEmail(c.Request.Context(), confirm.UserID); err != nil {
		httperr.Map(c, err)
		return
	}

	user, err := h.users.GetUserByID(c.Request.Context(), confirm.UserID)
	if err != nil {
		httperr.Map(c, httperr.ErrBusiness("user_not_found"))
		return
	}
	user.EmailConfirmed = true

	h.issueSession(c, user, c.Query("visitor_key"))
}

// ======================================================
// Shared pieces
// ======================================================

// issueSession finishes any authentication event: sign the JWT, replay a
// pending booking intent if one is waiting, and route to a screen.
func (h *AuthHandler) issueSession(c *gin.Context, user *models.User, visitorKey string) {
	r, err := role.Parse(user.Role)
	if err != nil {
		httperr.Map(c, err)
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	booking := h.reconcile.Execute(c.Request.Context(), visitorKey, user.ID)

	sess := &session.Session{
		UserID:  user.ID,
		SalonID: user.SalonID,
		Role:    r,
	}
	screen := h.flow.AfterAuth(c.Request.Context(), sess)

	resp := gin.H{
		"token":  token,
		"user":   userView(user),
		"screen": screen,
	}
	if booking != nil {
		resp["booking"] = booking
	}

	httpresp.OK(c, resp)
}

// checkEmail runs the offline shape check plus, when configured, the MX
// lookup.
func (h *AuthHandler) checkEmail(email string) error {
	if !validators.ValidEmailShape(email) {
		return httperr.ErrBusiness("invalid_email_domain")
	}
	if h.cfg.VerifyEmailDomain && !validators.EmailDomainResolves(email) {
		return httperr.ErrBusiness("invalid_email_domain")
	}
	return nil
}

// issueConfirmToken writes the confirmation record and logs the token.
// Development delivery, same as the OTP code.
func (h *AuthHandler) issueConfirmToken(ctx context.Context, user *models.User) {
	confirm := login.NewConfirmToken(user.ID, time.Now().UTC())
	if err := h.tickets.SaveConfirmToken(ctx, confirm); err != nil {
		log.Error().Err(err).
			Str("user_id", user.ID.String()).
			Msg("confirm token write failed")
		return
	}

	log.Info().
		Str("user_id", user.ID.String()).
		Str("token", confirm.Token).
		Msg("email confirmation token issued")
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": user.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}
	if user.SalonID != nil {
		claims["salon_id"] = user.SalonID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

// --------- Views ---------

func userView(user *models.User) gin.H {
	view := gin.H{
		"id":              user.ID,
		"name":            user.Name,
		"email":           user.Email,
		"phone":           user.Phone,
		"role":            user.Role,
		"email_confirmed": user.EmailConfirmed,
	}
	if user.SalonID != nil {
		view["salon_id"] = user.SalonID
	}
	return view
}

func salonView(salon *models.Salon) gin.H {
	return gin.H{
		"id":       salon.ID,
		"name":     salon.Name,
		"slug":     salon.Slug,
		"phone":    salon.Phone,
		"address":  salon.Address,
		"timezone": salon.Timezone,
	}
}
