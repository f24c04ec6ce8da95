package dailyreport

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"

	"github.com/hotelops/hotel-operations/internal"
	"github.com/hotelops/hotel-operations/internal/auth"
	"github.com/hotelops/hotel-operations/internal/transport"
	"github.com/hotelops/hotel-operations/pkg/logger"
)

type ServiceAPI interface {
	CreateReport(actor *auth.Principal, dto CreateDailyReportDTO) (*DailyReport, error)
	GetReport(actor *auth.Principal, id int64) (*DailyReport, error)
	ListReports(actor *auth.Principal, filter ListFilter) (*Page, error)
	UpdateReport(actor *auth.Principal, id int64, dto UpdateDailyReportDTO) (*DailyReport, error)
	DeleteReport(actor *auth.Principal, id int64) error
	SubmitReport(actor *auth.Principal, id int64) (*DailyReport, error)
	DecideReport(actor *auth.Principal, id int64, dto DecideDailyReportDTO) (*DailyReport, error)
	ReportStats(actor *auth.Principal, filter StatsFilter) (*Stats, error)
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

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateDailyReportDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.Service.CreateReport(actor, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusCreated, report)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := parseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	report, err := h.Service.GetReport(actor, id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, report)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	filter, err := parseListFilter(r)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	page, err := h.Service.ListReports(actor, filter)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, page)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := parseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	var dto UpdateDailyReportDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.Service.UpdateReport(actor, id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, report)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := parseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	if err := h.Service.DeleteReport(actor, id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteMessage(w, http.StatusOK, "daily report deleted")
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := parseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	report, err := h.Service.SubmitReport(actor, id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, report)
}

func (h *Handler) Decide(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := parseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	var dto DecideDailyReportDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.Service.DecideReport(actor, id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, report)
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	filter, err := parseStatsFilter(r)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	stats, err := h.Service.ReportStats(actor, filter)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, stats)
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	q := r.URL.Query()
	var f ListFilter

	f.ResortName = q.Get("resortName")
	f.Scope = q.Get("scope")
	if v := q.Get("status"); v != "" {
		st := Status(v)
		if !st.Valid() {
			return f, internal.NewValidationFieldError("status", "invalid value for status", internal.ErrCodeValidationFailed)
		}
		f.Status = &st
	}

	for _, p := range []struct {
		name string
		dst  **time.Time
	}{
		{"startDate", &f.DateFrom},
		{"endDate", &f.DateTo},
	} {
		if v := q.Get(p.name); v != "" {
			t, err := time.Parse("2006-01-02", v)
			if err != nil {
				return f, internal.NewValidationFieldError(p.name, "invalid value for "+p.name, internal.ErrCodeInvalidDate)
			}
			*p.dst = &t
		}
	}

	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return f, internal.NewValidationFieldError("page", "invalid value for page", internal.ErrCodeValidationFailed)
		}
		f.Page = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return f, internal.NewValidationFieldError("limit", "invalid value for limit", internal.ErrCodeValidationFailed)
		}
		f.PageSize = n
	}

	return f, nil
}

func parseStatsFilter(r *http.Request) (StatsFilter, error) {
	q := r.URL.Query()
	var f StatsFilter

	f.ResortName = q.Get("location")
	f.Scope = q.Get("scope")

	for _, p := range []struct {
		name string
		dst  **time.Time
	}{
		{"dateFrom", &f.DateFrom},
		{"dateTo", &f.DateTo},
	} {
		if v := q.Get(p.name); v != "" {
			t, err := time.Parse("2006-01-02", v)
			if err != nil {
				return f, internal.NewValidationFieldError(p.name, "invalid value for "+p.name, internal.ErrCodeInvalidDate)
			}
			*p.dst = &t
		}
	}

	return f, nil
}
