package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/ace-ify/Blud-Dona/api/transport"
	"github.com/ace-ify/Blud-Dona/domain"
	"github.com/ace-ify/Blud-Dona/pkg/httpcontext"
	profileUC "github.com/ace-ify/Blud-Dona/usecase/profile"
)

type ProfileHandler struct {
	baseHandler
	sessions sessionResolver
	uc       *profileUC.UseCase
}

func NewProfileHandler(uc *profileUC.UseCase, sessions sessionResolver, adapter *httpcontext.Adapter, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		baseHandler: newBaseHandler(adapter, logger),
		sessions:    sessions,
		uc:          uc,
	}
}

// @Summary Profile form values
// @Tags profile
// @Success 200 {object} transport.Envelope
// @Router /api/v1/profile [get]
func (h *ProfileHandler) Get(ctx *fasthttp.RequestCtx) {
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
	h.respondSuccess(ctx, http.StatusOK, user)
}

// @Summary Update profile
// @Tags profile
// @Accept json
// @Produce json
// @Router /api/v1/profile [put]
func (h *ProfileHandler) Update(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var form profileUC.Form
	if err := json.Unmarshal(ctx.PostBody(), &form); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest,
			transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	user, err := h.sessions.Resolve(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	updated, err := h.uc.Submit(stdCtx, user, form)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}
