package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Allain-afk/GlamQueue-sub001/internal/flow"
	"github.com/Allain-afk/GlamQueue-sub001/internal/httpresp"
	"github.com/Allain-afk/GlamQueue-sub001/internal/session"
)

// FlowHandler lets an already-authenticated client ask where to resume.
type FlowHandler struct {
	flow *flow.Controller
}

func NewFlowHandler(flowCtrl *flow.Controller) *FlowHandler {
	return &FlowHandler{flow: flowCtrl}
}

func (h *FlowHandler) Screen(c *gin.Context) {
	sess, _ := session.FromContext(c)

	httpresp.OK(c, gin.H{
		"screen": h.flow.Start(c.Request.Context(), sess),
	})
}
