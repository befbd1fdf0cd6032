package geocode

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	apperrors "pvzadmin/pkg/errors"
	"pvzadmin/pkg/httputil"
	"pvzadmin/pkg/logger"
)

type GeocodeHandler struct {
	service GeocodeService
	log     *logger.Logger
}

func NewHandler(service GeocodeService, log *logger.Logger) *GeocodeHandler {
	return &GeocodeHandler{service: service, log: log}
}

func (h *GeocodeHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/geocode", h.Lookup)
}

func (h *GeocodeHandler) Lookup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	address := strings.TrimSpace(r.URL.Query().Get("address"))
	if address == "" {
		httputil.WriteError(w, apperrors.InvalidInput("address query parameter is required"))
		return
	}

	coords, err := h.service.Lookup(r.Context(), address)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, coords)
}
