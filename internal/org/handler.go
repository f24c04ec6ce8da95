package org

import (
	"net/http"

	"github.com/hotelops/hotel-operations/internal/transport"
	"github.com/hotelops/hotel-operations/pkg/logger"
)

type ServiceAPI interface {
	Departments() ([]Department, error)
	Locations() ([]Location, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     svc,
	}
}

func (h *Handler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	deps, err := h.Service.Departments()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, deps)
}

func (h *Handler) ListLocations(w http.ResponseWriter, r *http.Request) {
	locs, err := h.Service.Locations()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, locs)
}
