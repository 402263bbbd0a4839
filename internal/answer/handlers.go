// Package answer exposes the identification endpoint that reports which
// shopper credentials this deployment submits to the resource service.
package answer

import (
	"net/http"

	"github.com/wooldev/trolley-api/internal/common"
)

// Handler serves the configured shopper identity.
type Handler struct {
	Name  string
	Token string
}

// User handles GET /api/v1/answers/user.
func (h Handler) User(w http.ResponseWriter, _ *http.Request) {
	if h.Token == "" {
		common.Render(w, common.NewAppError("CONFIG_INVALID", "resource token is not configured", http.StatusInternalServerError, nil))
		return
	}
	common.JSONData(w, http.StatusOK, map[string]string{
		"name":  h.Name,
		"token": h.Token,
	})
}
