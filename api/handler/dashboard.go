package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/ace-ify/Blud-Dona/pkg/httpcontext"
	dashboardUC "github.com/ace-ify/Blud-Dona/usecase/dashboard"
)

type DashboardHandler struct {
	baseHandler
	sessions sessionResolver
	uc       *dashboardUC.UseCase
}

func NewDashboardHandler(uc *dashboardUC.UseCase, sessions sessionResolver, adapter *httpcontext.Adapter, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		baseHandler: newBaseHandler(adapter, logger),
		sessions:    sessions,
		uc:          uc,
	}
}

// @Summary Dashboard snapshot
// @Tags dashboard
// @Success 200 {object} transport.Envelope
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) Overview(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	user, err := h.sessions.Resolve(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	snapshot, err := h.uc.Load(stdCtx, user)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, snapshot)
}
