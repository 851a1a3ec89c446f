package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Allain-afk/GlamQueue-sub001/internal/flow"
	"github.com/Allain-afk/GlamQueue-sub001/internal/httperr"
	"github.com/Allain-afk/GlamQueue-sub001/internal/httpresp"
	"github.com/Allain-afk/GlamQueue-sub001/internal/session"
	subuc "github.com/Allain-afk/GlamQueue-sub001/internal/usecase/subscription"
)

// SubscriptionHandler exposes the tier catalog, the access gate and plan
// selection. Payment capture is external; selection only writes the
// record the gate reads.
type SubscriptionHandler struct {
	checkAccess *subuc.CheckAccess
	selectPlan  *subuc.SelectPlan
	flow        *flow.Controller
}

func NewSubscriptionHandler(
	checkAccess *subuc.CheckAccess,
	selectPlan *subuc.SelectPlan,
	flowCtrl *flow.Controller,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		checkAccess: checkAccess,
		selectPlan:  selectPlan,
		flow:        flowCtrl,
	}
}

// --------- Catalog ---------

var planCatalog = []gin.H{
	{"plan": "trial", "label": "Free Trial", "days": subuc.TrialDays, "price_month": 0.0},
	{"plan": "paid", "label": "Pro", "days": subuc.PeriodDays, "price_month": 29.0},
	{"plan": "enterprise", "label": "Enterprise", "days": subuc.PeriodDays, "price_month": 99.0},
}

func (h *SubscriptionHandler) Plans(c *gin.Context) {
	httpresp.OK(c, gin.H{"plans": planCatalog})
}

// --------- Access gate ---------

func (h *SubscriptionHandler) Access(c *gin.Context) {
	sess := session.MustFromContext(c)
	if !sess.Role.IsAdmin() {
		httperr.Map(c, httperr.ErrBusiness("not_permitted"))
		return
	}

	access, err := h.checkAccess.Execute(c.Request.Context(), sess.UserID)
	if err != nil {
		httperr.Map(c, err)
		return
	}

	httpresp.OK(c, access)
}

// --------- Plan selection ---------

type SelectPlanRequest struct {
	Plan string `json:"plan" binding:"required"`
}

func (h *SubscriptionHandler) Select(c *gin.Context) {
	sess := session.MustFromContext(c)

	var req SelectPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid plan payload.")
		return
	}

	sub, err := h.selectPlan.Execute(c.Request.Context(), sess, req.Plan)
	if err != nil {
		httperr.Map(c, err)
		return
	}

	// Re-run the gate so the caller lands on the right screen directly.
	httpresp.OK(c, gin.H{
		"subscription": sub,
		"screen":       h.flow.AfterAuth(c.Request.Context(), sess),
	})
}
