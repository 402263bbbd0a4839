package catalog

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/wooldev/trolley-api/internal/common"
	"github.com/wooldev/trolley-api/internal/obs"
	"github.com/wooldev/trolley-api/internal/resource"
)

// Handler exposes the catalog sorting endpoint.
type Handler struct {
	Service *Service
	Logger  zerolog.Logger
}

// Sort handles GET /api/v1/sort?sortOption=...
func (h *Handler) Sort(w http.ResponseWriter, r *http.Request) {
	opt := ParseOption(r.URL.Query().Get("sortOption"))

	products, err := h.Service.SortedProducts(r.Context(), opt)
	if err != nil {
		obs.RecordSortRequest(opt.String(), "error")
		h.Logger.Error().Err(err).Str("option", opt.String()).Msg("sort catalog")
		h.writeError(w, err)
		return
	}
	obs.RecordSortRequest(opt.String(), "ok")
	if len(products) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	common.JSONData(w, http.StatusOK, products)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var remoteErr *resource.Error
	if errors.As(err, &remoteErr) {
		status := remoteErr.StatusCode
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		common.JSONError(w, status, "REMOTE_ERROR", "catalog fetch failed", map[string]any{
			"status": remoteErr.StatusCode,
			"body":   remoteErr.Body,
		})
		return
	}
	common.JSONError(w, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
}
