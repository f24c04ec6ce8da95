package candidate

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"

	"github.com/hotelops/hotel-operations/internal"
	"github.com/hotelops/hotel-operations/internal/auth"
	"github.com/hotelops/hotel-operations/internal/transport"
	"github.com/hotelops/hotel-operations/pkg/logger"
)

const multipartMemoryLimit = 10 << 20

type ServiceAPI interface {
	CreateCandidate(uploaderID int64, dto CreateCandidateDTO, cv *CVUpload) (*Candidate, error)
	GetCandidate(id int64) (*Candidate, error)
	ListCandidates(filter ListFilter) (*Page, error)
	UpdateCandidate(id int64, dto UpdateCandidateDTO) (*Candidate, error)
	DeleteCandidate(id int64) error
	OpenCV(id int64) (io.ReadCloser, string, error)
	ListComments(candidateID int64) ([]Comment, error)
	AddComment(actor *auth.Principal, candidateID int64, dto CreateCommentDTO) (*Comment, error)
	DeleteComment(actor *auth.Principal, candidateID, commentID int64) error
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

// Create accepts a multipart form with candidate fields plus an optional
// "cv" file part.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	dto := CreateCandidateDTO{
		Name:       r.FormValue("name"),
		Email:      r.FormValue("email"),
		Phone:      r.FormValue("phone"),
		Role:       r.FormValue("role"),
		Department: r.FormValue("department"),
		Location:   r.FormValue("location"),
		Source:     r.FormValue("source"),
		Notes:      r.FormValue("notes"),
	}

	var cv *CVUpload
	if file, header, err := r.FormFile("cv"); err == nil {
		defer file.Close()
		cv = &CVUpload{
			FileName: header.Filename,
			Size:     header.Size,
			Content:  file,
		}
	}

	c, err := h.Service.CreateCandidate(actor.ID, dto, cv)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusCreated, c)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	c, err := h.Service.GetCandidate(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, c)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	page, err := h.Service.ListCandidates(filter)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, page)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	var dto UpdateCandidateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.Service.UpdateCandidate(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, c)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	if err := h.Service.DeleteCandidate(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteMessage(w, http.StatusOK, "candidate deleted")
}

// DownloadCV streams the stored CV with the original file name.
func (h *Handler) DownloadCV(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	f, name, err := h.Service.OpenCV(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	if _, err := io.Copy(w, f); err != nil {
		h.Logger.Error("failed to stream cv", "error", err, "candidate_id", id)
	}
}

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	comments, err := h.Service.ListComments(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, comments)
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := parseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	var dto CreateCommentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.Service.AddComment(actor, id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusCreated, c)
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := parseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	commentID, err := strconv.ParseInt(chi.URLParam(r, "commentId"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	if err := h.Service.DeleteComment(actor, id, commentID); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteMessage(w, http.StatusOK, "comment deleted")
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	q := r.URL.Query()
	var f ListFilter

	f.Department = q.Get("department")
	f.Location = q.Get("location")
	f.Search = q.Get("search")

	if v := q.Get("status"); v != "" {
		st := Status(v)
		if !st.Valid() {
			return f, internal.NewValidationFieldError("status", "invalid value for status", internal.ErrCodeInvalidStatus)
		}
		f.Status = &st
	}

	// dateRange is relative to now. The dashboard sends the labelled
	// presets; the short aliases stay for API callers.
	if v := q.Get("dateRange"); v != "" {
		now := time.Now()
		var cutoff time.Time
		switch v {
		case "today":
			cutoff = now.Truncate(24 * time.Hour)
		case "week", "Last 7 days":
			cutoff = now.AddDate(0, 0, -7)
		case "month":
			cutoff = now.AddDate(0, -1, 0)
		case "Last 30 days":
			cutoff = now.AddDate(0, 0, -30)
		case "Last 90 days":
			cutoff = now.AddDate(0, 0, -90)
		case "Last year":
			cutoff = now.AddDate(-1, 0, 0)
		default:
			return f, internal.NewValidationFieldError("dateRange", "invalid value for dateRange", internal.ErrCodeValidationFailed)
		}
		f.CreatedAfter = &cutoff
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
