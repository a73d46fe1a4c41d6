package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/ace-ify/Blud-Dona/api/transport"
	"github.com/ace-ify/Blud-Dona/domain"
	"github.com/ace-ify/Blud-Dona/pkg/httpcontext"
	requestUC "github.com/ace-ify/Blud-Dona/usecase/request"
)

type RequestHandler struct {
	baseHandler
	sessions sessionResolver
	uc       *requestUC.UseCase
}

func NewRequestHandler(uc *requestUC.UseCase, sessions sessionResolver, adapter *httpcontext.Adapter, logger *zap.Logger) *RequestHandler {
	return &RequestHandler{
		baseHandler: newBaseHandler(adapter, logger),
		sessions:    sessions,
		uc:          uc,
	}
}

// @Summary List visible blood requests
// @Tags requests
// @Success 200 {object} transport.Envelope
// @Router /api/v1/requests [get]
func (h *RequestHandler) List(ctx *fasthttp.RequestCtx) {
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

	requests, err := h.uc.Visible(stdCtx, user)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, requests)
}

// @Summary Create a blood request
// @Tags requests
// @Accept json
// @Produce json
// @Router /api/v1/requests [post]
func (h *RequestHandler) Create(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var form requestUC.Form
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

	created, err := h.uc.Submit(stdCtx, user, form)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}
