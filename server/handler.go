package server

import (
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/ncobase/echoapi/ecode"
	"github.com/ncobase/echoapi/logging/logger"
	"github.com/ncobase/echoapi/net/resp"
	"github.com/ncobase/echoapi/router"
	"github.com/ncobase/echoapi/validator"
)

// Handler serves the demo endpoints.
type Handler struct {
	builder *resp.Builder
	logger  *logger.Logger
}

// NewHandler creates a new handler.
func NewHandler(b *resp.Builder, l *logger.Logger) *Handler {
	return &Handler{builder: b, logger: l}
}

// RegisterRoutes registers the handler routes on r.
func (h *Handler) RegisterRoutes(r router.Interface) {
	r.NotFound(h.NotFound)
	r.GET("/health", h.Health)

	api := r.Group("/api")
	api.GET("/errors", h.FindError)
	api.GET("/status", h.Status)
	api.POST("/validate", h.Validate)
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, h.builder.Success(map[string]any{"status": "healthy"}))
}

// NotFound renders the 404 envelope for unmatched routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, h.httpError(r, http.StatusNotFound))
}

// FindError renders the configured error for ?code=.
func (h *Handler) FindError(w http.ResponseWriter, r *http.Request) {
	code := ecode.ParseCode(r.URL.Query().Get("code"))
	res, err := h.builder.FindError(code, nil, nil)
	if err != nil {
		h.logger.WithContext(r.Context()).WithError(err).Warn("error code lookup failed")
		res = h.httpError(r, http.StatusNotFound)
	}
	h.write(w, r, res)
}

// Status renders the plain HTTP error for ?code=.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := strconv.Atoi(r.URL.Query().Get("code"))
	if err != nil {
		h.write(w, r, h.httpError(r, http.StatusBadRequest))
		return
	}
	res, err := h.builder.HTTPError(status, nil, nil)
	if err != nil {
		h.logger.WithContext(r.Context()).WithError(err).Warn("unknown http status")
		res = h.httpError(r, http.StatusBadRequest)
	}
	h.write(w, r, res)
}

// SignupRequest is the demo payload validated by /api/validate.
type SignupRequest struct {
	Name  string `json:"name" validate:"required,min=3"`
	Email string `json:"email" validate:"required,email"`
	Age   int    `json:"age" validate:"gte=18"`
}

// Validate validates a SignupRequest body.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		res, _ := h.builder.HTTPError(http.StatusBadRequest, map[string]any{
			"error": map[string]any{"detail": err.Error()},
		}, nil)
		h.write(w, r, res)
		return
	}

	result, err := validator.ValidateStruct(&req)
	if err != nil {
		h.logger.WithContext(r.Context()).WithError(err).Error("validation failed to run")
		h.write(w, r, h.httpError(r, http.StatusInternalServerError))
		return
	}
	if res := h.builder.ValidatorError(result); res != nil {
		h.write(w, r, res)
		return
	}
	h.write(w, r, h.builder.Success(map[string]any{"name": req.Name}))
}

// httpError builds a plain HTTP error for a status known to have a phrase.
func (h *Handler) httpError(r *http.Request, status int) *resp.Response {
	res, err := h.builder.HTTPError(status, nil, nil)
	if err != nil {
		h.logger.WithContext(r.Context()).WithError(err).Error("failed to build http error")
		return h.builder.Error(status, "", nil, resp.WithStatus(status))
	}
	return res
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, res *resp.Response) {
	if err := res.Write(w); err != nil {
		h.logger.WithContext(r.Context()).WithError(err).Error("failed to write response")
	}
}
