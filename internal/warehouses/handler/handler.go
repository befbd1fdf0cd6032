package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"pvzadmin/internal/warehouses/service"
	"pvzadmin/pkg/httputil"
	"pvzadmin/pkg/logger"
	"pvzadmin/pkg/model"
)

type WarehouseHandler struct {
	service service.WarehouseService
	log     *logger.Logger
}

func NewWarehouseHandler(service service.WarehouseService, log *logger.Logger) *WarehouseHandler {
	return &WarehouseHandler{service: service, log: log}
}

func (h *WarehouseHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	httputil.WriteSuccess(w, h.service.List(r.Context()))
}

// First serves the legacy single-warehouse accessor.
func (h *WarehouseHandler) First(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	warehouse, err := h.service.First(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, warehouse)
}

func (h *WarehouseHandler) PickupPoints(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	httputil.WriteSuccess(w, h.service.PickupPoints(r.Context()))
}

func (h *WarehouseHandler) PickupPointByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	point, err := h.service.PickupPointByID(r.Context(), ps.ByName("id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, point)
}

func (h *WarehouseHandler) BusinessPoints(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	points, err := h.service.BusinessPoints(r.Context(), ps.ByName("id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if points == nil {
		points = []model.BusinessPickupPoint{}
	}
	httputil.WriteSuccess(w, points)
}

func (h *WarehouseHandler) Attach(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Attach(r.Context(), ps.ByName("id"), ps.ByName("bppId")); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteOK(w)
}

func (h *WarehouseHandler) Detach(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Detach(r.Context(), ps.ByName("id"), ps.ByName("bppId")); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteOK(w)
}

func (h *WarehouseHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/warehouses", h.List)
	router.GET("/warehouse", h.First)
	router.GET("/pickup-points", h.PickupPoints)
	router.GET("/pickup-points/:id", h.PickupPointByID)
	router.GET("/warehouses/:id/business-pickup-points", h.BusinessPoints)
	router.POST("/warehouses/:id/business-pickup-points/:bppId", h.Attach)
	router.DELETE("/warehouses/:id/business-pickup-points/:bppId", h.Detach)
}
