package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/valyala/fasthttp"

	"github.com/ace-ify/Blud-Dona/api/transport"
	"github.com/ace-ify/Blud-Dona/domain"
	requestUC "github.com/ace-ify/Blud-Dona/usecase/request"
)

type fakeResolver struct {
	user *domain.User
	err  error
}

func (f *fakeResolver) Resolve(ctx context.Context, userID string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type fakeRequestRepo struct {
	created     *domain.BloodRequest
	createCalls int
}

func (f *fakeRequestRepo) List(ctx context.Context) ([]domain.BloodRequest, error) {
	return nil, nil
}

func (f *fakeRequestRepo) Create(ctx context.Context, req *domain.BloodRequest) (*domain.BloodRequest, error) {
	f.createCalls++
	created := *req
	created.ID = "new-request"
	f.created = &created
	return &created, nil
}

func newRequestHandler(repo *fakeRequestRepo, resolver *fakeResolver) *RequestHandler {
	uc := requestUC.New(repo, nil, nil)
	return NewRequestHandler(uc, resolver, nil, nil)
}

func newRequestCtx(userID string, body []byte) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	if userID != "" {
		ctx.Request.Header.Set("X-User-ID", userID)
	}
	if body != nil {
		ctx.Request.SetBody(body)
	}
	return ctx
}

func decodeEnvelope(t *testing.T, ctx *fasthttp.RequestCtx) transport.Envelope {
	t.Helper()
	var env transport.Envelope
	if err := json.Unmarshal(ctx.Response.Body(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, ctx.Response.Body())
	}
	return env
}

func TestCreateRejectsMissingIdentity(t *testing.T) {
	repo := &fakeRequestRepo{}
	h := newRequestHandler(repo, &fakeResolver{})

	ctx := newRequestCtx("", []byte(`{}`))
	h.Create(ctx)

	if ctx.Response.StatusCode() != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", ctx.Response.StatusCode())
	}
	if repo.createCalls != 0 {
		t.Errorf("create calls = %d, want 0", repo.createCalls)
	}
}

func TestCreateRejectsMalformedJSON(t *testing.T) {
	repo := &fakeRequestRepo{}
	h := newRequestHandler(repo, &fakeResolver{user: &domain.User{ID: "1"}})

	ctx := newRequestCtx("1", []byte(`{not json`))
	h.Create(ctx)

	if ctx.Response.StatusCode() != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", ctx.Response.StatusCode())
	}
	if repo.createCalls != 0 {
		t.Errorf("create calls = %d, want 0", repo.createCalls)
	}
}

func TestCreateReturnsFieldErrorsInMeta(t *testing.T) {
	repo := &fakeRequestRepo{}
	h := newRequestHandler(repo, &fakeResolver{user: &domain.User{ID: "1", Role: domain.RoleRequester}})

	body, _ := json.Marshal(map[string]interface{}{
		"blood_type": "X+",
		"quantity":   0,
		"urgency":    "high",
	})
	ctx := newRequestCtx("1", body)
	h.Create(ctx)

	if ctx.Response.StatusCode() != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", ctx.Response.StatusCode())
	}
	env := decodeEnvelope(t, ctx)
	if env.Status != "error" {
		t.Errorf("envelope status = %q", env.Status)
	}
	meta, ok := env.Meta.(map[string]interface{})
	if !ok {
		t.Fatalf("meta should carry the field map, got %T", env.Meta)
	}
	if _, ok := meta["blood_type"]; !ok {
		t.Errorf("missing blood_type field error: %v", meta)
	}
	if _, ok := meta["quantity"]; !ok {
		t.Errorf("missing quantity field error: %v", meta)
	}
	if repo.createCalls != 0 {
		t.Errorf("create calls = %d, want 0", repo.createCalls)
	}
}

func TestCreateSubmitsValidForm(t *testing.T) {
	repo := &fakeRequestRepo{}
	resolver := &fakeResolver{user: &domain.User{
		ID:   "req-1",
		Name: "Kofi",
		Role: domain.RoleRequester,
		Location: &domain.Location{
			City:    "Accra",
			Country: "Ghana",
		},
	}}
	h := newRequestHandler(repo, resolver)

	body, _ := json.Marshal(map[string]interface{}{
		"blood_type": "O-",
		"quantity":   3,
		"urgency":    "critical",
		"notes":      "surgery tomorrow",
	})
	ctx := newRequestCtx("req-1", body)
	h.Create(ctx)

	if ctx.Response.StatusCode() != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", ctx.Response.StatusCode(), ctx.Response.Body())
	}
	if repo.createCalls != 1 {
		t.Fatalf("create calls = %d, want 1", repo.createCalls)
	}
	if repo.created.RequesterID != "req-1" || repo.created.Status != domain.RequestPending {
		t.Errorf("created %+v", repo.created)
	}

	env := decodeEnvelope(t, ctx)
	if env.Status != "success" {
		t.Errorf("envelope status = %q", env.Status)
	}
}

func TestCreateSurfacesGatewayFailure(t *testing.T) {
	repo := &fakeRequestRepo{}
	resolver := &fakeResolver{err: domain.ErrGatewayUnavailable}
	h := newRequestHandler(repo, resolver)

	ctx := newRequestCtx("1", []byte(`{"blood_type":"O-","quantity":1,"urgency":"low"}`))
	h.Create(ctx)

	if ctx.Response.StatusCode() != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", ctx.Response.StatusCode())
	}
}

func TestListFiltersForDonor(t *testing.T) {
	repo := &fakeRequestRepo{}
	h := newRequestHandler(repo, &fakeResolver{user: &domain.User{ID: "d1", Role: domain.RoleDonor}})

	ctx := newRequestCtx("d1", nil)
	h.List(ctx)

	if ctx.Response.StatusCode() != http.StatusOK {
		t.Fatalf("status = %d, want 200", ctx.Response.StatusCode())
	}
	env := decodeEnvelope(t, ctx)
	if env.Status != "success" {
		t.Errorf("envelope status = %q", env.Status)
	}
	// empty listing still serializes as a JSON array
	if _, ok := env.Data.([]interface{}); !ok {
		t.Errorf("data should be an array, got %T", env.Data)
	}
}
