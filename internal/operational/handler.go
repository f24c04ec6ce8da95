package operational

import (
	"net/http"

	"github.com/hotelops/hotel-operations/internal/transport"
	"github.com/hotelops/hotel-operations/pkg/logger"
)

type ServiceAPI interface {
	Stats(location string) Stats
	WeeklyRevenue(location string) []RevenuePoint
	WeeklyRevPAR(location string) []RevPARPoint
	Occupancy(location string) Occupancy
	DepartmentExpenses(location string) []DepartmentExpense
	Mix(location string) RevenueMix
	Performance(location string) []Performance
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

func location(r *http.Request) string {
	return r.URL.Query().Get("location")
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	h.WriteData(w, http.StatusOK, map[string]interface{}{"stats": h.Service.Stats(location(r))})
}

func (h *Handler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	h.WriteData(w, http.StatusOK, map[string]interface{}{"revenue": h.Service.WeeklyRevenue(location(r))})
}

func (h *Handler) GetRevPAR(w http.ResponseWriter, r *http.Request) {
	h.WriteData(w, http.StatusOK, map[string]interface{}{"revpar": h.Service.WeeklyRevPAR(location(r))})
}

func (h *Handler) GetOccupancy(w http.ResponseWriter, r *http.Request) {
	h.WriteData(w, http.StatusOK, map[string]interface{}{"occupancy": h.Service.Occupancy(location(r))})
}

func (h *Handler) GetDepartmentExpenses(w http.ResponseWriter, r *http.Request) {
	h.WriteData(w, http.StatusOK, map[string]interface{}{"expenses": h.Service.DepartmentExpenses(location(r))})
}

func (h *Handler) GetRevenueMix(w http.ResponseWriter, r *http.Request) {
	h.WriteData(w, http.StatusOK, map[string]interface{}{"mix": h.Service.Mix(location(r))})
}

func (h *Handler) GetPerformance(w http.ResponseWriter, r *http.Request) {
	h.WriteData(w, http.StatusOK, map[string]interface{}{"performance": h.Service.Performance(location(r))})
}
