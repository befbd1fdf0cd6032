package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"pvzadmin/internal/points/service"
	"pvzadmin/pkg/httputil"
	"pvzadmin/pkg/logger"
	"pvzadmin/pkg/model"
)

type PointHandler struct {
	service service.PointService
	log     *logger.Logger
}

func NewPointHandler(service service.PointService, log *logger.Logger) *PointHandler {
	return &PointHandler{service: service, log: log}
}

func (h *PointHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	httputil.WriteSuccess(w, h.service.List(r.Context()))
}

func (h *PointHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	point, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, point)
}

func (h *PointHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var draft model.PickupPointDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		httputil.WriteInvalidJSON(w)
		return
	}

	id, err := h.service.Create(r.Context(), &draft)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteCreatedID(w, id)
}

func (h *PointHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var draft model.PickupPointDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		httputil.WriteInvalidJSON(w)
		return
	}

	point, err := h.service.Update(r.Context(), ps.ByName("id"), &draft)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, point)
}

func (h *PointHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteOK(w)
}

func (h *PointHandler) Links(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	links := h.service.Links(r.Context())
	if links == nil {
		links = []model.WarehouseBusinessLink{}
	}
	httputil.WriteSuccess(w, links)
}

func (h *PointHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/business-pickup-points", h.List)
	router.POST("/business-pickup-points", h.Create)
	router.GET("/business-pickup-points/:id", h.GetByID)
	router.PUT("/business-pickup-points/:id", h.Update)
	router.DELETE("/business-pickup-points/:id", h.Delete)
	router.GET("/warehouse-business-links", h.Links)
}
