package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Allain-afk/GlamQueue-sub001/internal/domain/appointment"
	"github.com/Allain-afk/GlamQueue-sub001/internal/models"
	apptuc "github.com/Allain-afk/GlamQueue-sub001/internal/usecase/appointment"
	intentuc "github.com/Allain-afk/GlamQueue-sub001/internal/usecase/intent"
)

type publicEnv struct {
	repo    *fakeRepo
	intents *fakeIntentStore
	router  *gin.Engine
}

func newPublicEnv(t *testing.T) *publicEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &publicEnv{
		repo:    newFakeRepo(),
		intents: newFakeIntentStore(),
	}

	h := NewPublicHandler(
		env.repo,
		apptuc.NewGetAvailability(env.repo),
		intentuc.NewCapture(env.intents),
	)

	r := gin.New()
	pub := r.Group("/api/public")
	{
		pub.GET("/:slug/services", h.ListServices)
		pub.GET("/:slug/availability", h.Availability)
		pub.POST("/booking-intent", h.CaptureIntent)
	}
	env.router = r
	return env
}

func slotByLabel(t *testing.T, body map[string]any, label string) map[string]any {
	t.Helper()
	slots, ok := body["slots"].([]any)
	require.True(t, ok, "body: %v", body)
	for _, raw := range slots {
		s := raw.(map[string]any)
		if s["label"] == label {
			return s
		}
	}
	t.Fatalf("slot %q not in response", label)
	return nil
}

// ----- services -----

func TestListServices_ActiveOnly(t *testing.T) {
	env := newPublicEnv(t)
	salon := env.repo.addSalon("Glam Studio", "glam-studio", "UTC")
	env.repo.addService(salon.ID, "Haircut", 45)
	env.repo.addService(salon.ID, "Manicure", 30)
	retired := env.repo.addService(salon.ID, "Perm", 90)
	retired.Active = false

	w := doGET(t, env.router, "/api/public/glam-studio/services")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)

	services := body["services"].([]any)
	assert.Len(t, services, 2, "retired services stay off the landing page")
	assert.Equal(t, "glam-studio", body["salon"].(map[string]any)["slug"])
}

func TestListServices_CategoryFilter(t *testing.T) {
	env := newPublicEnv(t)
	salon := env.repo.addSalon("Glam Studio", "glam-studio", "UTC")
	hair := env.repo.addService(salon.ID, "Haircut", 45)
	hair.Category = "hair"
	nails := env.repo.addService(salon.ID, "Manicure", 30)
	nails.Category = "nails"

	w := doGET(t, env.router, "/api/public/glam-studio/services?category=nails")

	require.Equal(t, http.StatusOK, w.Code)
	services := decodeBody(t, w)["services"].([]any)
	require.Len(t, services, 1)
	assert.Equal(t, "Manicure", services[0].(map[string]any)["name"])
}

func TestListServices_UnknownSlug(t *testing.T) {
	env := newPublicEnv(t)

	w := doGET(t, env.router, "/api/public/no-such-salon/services")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "salon_not_found", decodeBody(t, w)["error_code"])
}

// ----- availability -----

func TestAvailability_RendersDayGrid(t *testing.T) {
	env := newPublicEnv(t)
	salon := env.repo.addSalon("Glam Studio", "glam-studio", "UTC")
	service := env.repo.addService(salon.ID, "Haircut", 45)

	booked := &models.Appointment{
		ID:        uuid.New(),
		SalonID:   salon.ID,
		ServiceID: service.ID,
		ClientID:  uuid.New(),
		StartTime: time.Date(2031, 5, 20, 10, 0, 0, 0, time.UTC),
		Status:    string(domain.StatusPending),
	}
	env.repo.appointments[booked.ID] = booked

	w := doGET(t, env.router,
		"/api/public/glam-studio/availability?date=2031-05-20&service_id="+service.ID.String())

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)

	assert.Equal(t, "2031-05-20", body["date"])
	assert.Len(t, body["slots"].([]any), 19)
	assert.Equal(t, false, slotByLabel(t, body, "10:00 AM")["available"])
	assert.Equal(t, true, slotByLabel(t, body, "10:30 AM")["available"])
}

func TestAvailability_MissingParams(t *testing.T) {
	env := newPublicEnv(t)
	salon := env.repo.addSalon("Glam Studio", "glam-studio", "UTC")
	service := env.repo.addService(salon.ID, "Haircut", 45)

	w := doGET(t, env.router, "/api/public/glam-studio/availability?date=2031-05-20")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing_params", decodeBody(t, w)["error_code"])

	w = doGET(t, env.router, "/api/public/glam-studio/availability?service_id="+service.ID.String())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAvailability_UnknownSlug(t *testing.T) {
	env := newPublicEnv(t)

	w := doGET(t, env.router,
		"/api/public/no-such-salon/availability?date=2031-05-20&service_id="+uuid.NewString())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "salon_not_found", decodeBody(t, w)["error_code"])
}

// ----- booking intent -----

func TestCaptureIntent_StoresSelection(t *testing.T) {
	env := newPublicEnv(t)

	w := doJSON(t, env.router, http.MethodPost, "/api/public/booking-intent", gin.H{
		"service_name": "Haircut",
		"salon_name":   "Glam Studio",
		"date":         "2031-05-20",
		"time":         "2:00 PM",
		"client_name":  "Ana Cruz",
		"client_phone": "+63 917 555 0101",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)

	key, _ := body["visitor_key"].(string)
	require.NotEmpty(t, key)
	assert.Equal(t, "1h", body["expires_in"])

	stored := env.intents.items[key]
	require.NotNil(t, stored)
	assert.Equal(t, "Haircut", stored.ServiceName)
}

func TestCaptureIntent_MissingFields(t *testing.T) {
	env := newPublicEnv(t)

	w := doJSON(t, env.router, http.MethodPost, "/api/public/booking-intent", gin.H{
		"service_name": "Haircut",
		"salon_name":   "Glam Studio",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing_params", decodeBody(t, w)["error_code"])
	assert.Empty(t, env.intents.items)
}

func TestCaptureIntent_MalformedBody(t *testing.T) {
	env := newPublicEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/public/booking-intent", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", decodeBody(t, w)["error_code"])
}
