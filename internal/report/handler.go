package report

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

// ServiceAPI defines the report operations the handler depends on.
type ServiceAPI interface {
	CreateReport(actor *auth.Principal, dto CreateReportDTO) (*ExpenseReport, error)
	GetReport(actor *auth.Principal, id int64) (*ExpenseReport, error)
	ListReports(actor *auth.Principal, filter ListFilter) (*Page, error)
	UpdateReport(actor *auth.Principal, id int64, dto UpdateReportDTO) (*ExpenseReport, error)
	DeleteReport(actor *auth.Principal, id int64) error
	SubmitReport(actor *auth.Principal, id int64) (*ExpenseReport, error)
	DecideReport(actor *auth.Principal, id int64, dto DecideReportDTO) (*ExpenseReport, error)
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

	var dto CreateReportDTO
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

	var dto UpdateReportDTO
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

	h.WriteMessage(w, http.StatusOK, "report deleted")
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

	var dto DecideReportDTO
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

	f.HotelName = q.Get("hotelName")
	f.Scope = q.Get("scope")
	if v := q.Get("status"); v != "" {
		st := Status(v)
		if !st.Valid() {
			return f, errInvalidQueryParam("status")
		}
		f.Status = &st
	}

	var err error
	if f.DateFrom, err = parseDateParam(q.Get("startDate"), "startDate"); err != nil {
		return f, err
	}
	if f.DateTo, err = parseDateParam(q.Get("endDate"), "endDate"); err != nil {
		return f, err
	}
	if f.Page, err = parseIntParam(q.Get("page"), "page"); err != nil {
		return f, err
	}
	if f.PageSize, err = parseIntParam(q.Get("limit"), "limit"); err != nil {
		return f, err
	}

	return f, nil
}

func parseStatsFilter(r *http.Request) (StatsFilter, error) {
	q := r.URL.Query()
	var f StatsFilter

	f.HotelName = q.Get("hotelName")
	f.Scope = q.Get("scope")

	var err error
	if f.DateFrom, err = parseDateParam(q.Get("startDate"), "startDate"); err != nil {
		return f, err
	}
	if f.DateTo, err = parseDateParam(q.Get("endDate"), "endDate"); err != nil {
		return f, err
	}

	return f, nil
}

func parseDateParam(value, name string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, errInvalidQueryParam(name)
	}
	return &t, nil
}

func parseIntParam(value, name string) (int, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errInvalidQueryParam(name)
	}
	return n, nil
}

func errInvalidQueryParam(name string) error {
	return internal.NewValidationFieldError(name, "invalid value for "+name, internal.ErrCodeValidationFailed)
}
