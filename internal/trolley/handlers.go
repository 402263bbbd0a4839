package trolley

import (
	"encoding/json"
	"errors"
	"net/http"

	validator "github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/wooldev/trolley-api/internal/common"
	"github.com/wooldev/trolley-api/internal/obs"
	"github.com/wooldev/trolley-api/internal/resource"
)

// Handler exposes the trolley pricing endpoints.
type Handler struct {
	local    Calculator
	remote   Calculator
	validate *validator.Validate
	logger   zerolog.Logger
}

// HandlerConfig groups Handler dependencies.
type HandlerConfig struct {
	Local    Calculator
	Remote   Calculator
	Validate *validator.Validate
	Logger   zerolog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(cfg HandlerConfig) (*Handler, error) {
	if cfg.Local == nil {
		return nil, errors.New("trolley: local calculator is required")
	}
	if cfg.Remote == nil {
		cfg.Remote = cfg.Local
	}
	if cfg.Validate == nil {
		cfg.Validate = validator.New()
	}
	return &Handler{
		local:    cfg.Local,
		remote:   cfg.Remote,
		validate: cfg.Validate,
		logger:   cfg.Logger,
	}, nil
}

// Total handles POST /api/v1/trolley/total using the remote calculator.
func (h *Handler) Total(w http.ResponseWriter, r *http.Request) {
	h.total(w, r, h.remote, "remote")
}

// LocalTotal handles POST /api/v1/trolley/total/local using the in-process engine.
func (h *Handler) LocalTotal(w http.ResponseWriter, r *http.Request) {
	h.total(w, r, h.local, "local")
}

func (h *Handler) total(w http.ResponseWriter, r *http.Request, calc Calculator, backend string) {
	var in Trolley
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&in); err != nil {
		obs.RecordTrolleyPricing(backend, "invalid")
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid trolley payload", nil)
		return
	}
	if err := h.validate.Struct(in); err != nil {
		obs.RecordTrolleyPricing(backend, "invalid")
		common.JSONError(w, http.StatusBadRequest, "MISSING_FIELD", "trolley is missing required fields", fieldErrors(err))
		return
	}
	if _, err := Validate(&in); err != nil {
		obs.RecordTrolleyPricing(backend, "invalid")
		h.writeError(w, err)
		return
	}

	total, err := calc.Total(r.Context(), &in)
	if err != nil {
		obs.RecordTrolleyPricing(backend, "error")
		h.logger.Error().Err(err).Str("backend", backend).Msg("calculate trolley total")
		h.writeError(w, err)
		return
	}
	obs.RecordTrolleyPricing(backend, "ok")
	common.JSONData(w, http.StatusOK, map[string]any{"total": json.Number(total.String())})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrMissingField):
		common.JSONError(w, http.StatusBadRequest, "MISSING_FIELD", err.Error(), nil)
	case errors.Is(err, ErrInconsistentTrolley):
		common.JSONError(w, http.StatusBadRequest, "INVALID_TROLLEY", err.Error(), nil)
	case errors.Is(err, ErrEmptyCatalog):
		common.JSONError(w, http.StatusInternalServerError, "PRICING_PRECONDITION", err.Error(), nil)
	default:
		var remoteErr *resource.Error
		if errors.As(err, &remoteErr) {
			status := remoteErr.StatusCode
			if status < http.StatusBadRequest {
				status = http.StatusBadGateway
			}
			common.JSONError(w, status, "REMOTE_ERROR", "remote trolley calculation failed", map[string]any{
				"status": remoteErr.StatusCode,
				"body":   remoteErr.Body,
			})
			return
		}
		var appErr *common.AppError
		if errors.As(err, &appErr) {
			status := appErr.HTTPStatus
			if status == 0 {
				status = http.StatusInternalServerError
			}
			common.JSONError(w, status, appErr.Code, appErr.Message, appErr.Details)
			return
		}
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
	}
}

func fieldErrors(err error) any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return map[string]any{"fields": fields}
}
