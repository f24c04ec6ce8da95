package candidate_test

import (
	"io"
	"net/http/httptest"
	"net/url"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hotelops/hotel-operations/internal/auth"
	"github.com/hotelops/hotel-operations/internal/candidate"
)

// stubCandidateService records the filter the handler parsed out of the
// query string.
type stubCandidateService struct {
	lastFilter candidate.ListFilter
}

func (s *stubCandidateService) CreateCandidate(uploaderID int64, dto candidate.CreateCandidateDTO, cv *candidate.CVUpload) (*candidate.Candidate, error) {
	return &candidate.Candidate{}, nil
}

func (s *stubCandidateService) GetCandidate(id int64) (*candidate.Candidate, error) {
	return &candidate.Candidate{}, nil
}

func (s *stubCandidateService) ListCandidates(filter candidate.ListFilter) (*candidate.Page, error) {
	s.lastFilter = filter
	page := candidate.NewPage(nil, 0, 1, 20)
	return &page, nil
}

func (s *stubCandidateService) UpdateCandidate(id int64, dto candidate.UpdateCandidateDTO) (*candidate.Candidate, error) {
	return &candidate.Candidate{}, nil
}

func (s *stubCandidateService) DeleteCandidate(id int64) error { return nil }

func (s *stubCandidateService) OpenCV(id int64) (io.ReadCloser, string, error) {
	return nil, "", nil
}

func (s *stubCandidateService) ListComments(candidateID int64) ([]candidate.Comment, error) {
	return []candidate.Comment{}, nil
}

func (s *stubCandidateService) AddComment(actor *auth.Principal, candidateID int64, dto candidate.CreateCommentDTO) (*candidate.Comment, error) {
	return &candidate.Comment{}, nil
}

func (s *stubCandidateService) DeleteComment(actor *auth.Principal, candidateID, commentID int64) error {
	return nil
}

var _ = Describe("Candidate list query parsing", func() {
	var (
		stub    *stubCandidateService
		handler *candidate.Handler
	)

	BeforeEach(func() {
		stub = &stubCandidateService{}
		handler = candidate.NewHandler(stub)
	})

	list := func(query string) int {
		req := httptest.NewRequest("GET", "/api/v1/candidates?"+query, nil)
		rec := httptest.NewRecorder()
		handler.List(rec, req)
		return rec.Code
	}

	expectCutoff := func(preset string, want time.Time) {
		code := list("dateRange=" + url.QueryEscape(preset))

		Expect(code).To(Equal(200))
		Expect(stub.lastFilter.CreatedAfter).NotTo(BeNil())
		Expect(stub.lastFilter.CreatedAfter.Unix()).To(BeNumerically("~", want.Unix(), 60))
	}

	It("should accept the dashboard's labelled presets", func() {
		now := time.Now()
		expectCutoff("Last 7 days", now.AddDate(0, 0, -7))
		expectCutoff("Last 30 days", now.AddDate(0, 0, -30))
		expectCutoff("Last 90 days", now.AddDate(0, 0, -90))
		expectCutoff("Last year", now.AddDate(-1, 0, 0))
	})

	It("should keep the short aliases", func() {
		now := time.Now()
		expectCutoff("week", now.AddDate(0, 0, -7))
		expectCutoff("month", now.AddDate(0, -1, 0))
	})

	It("should reject an unknown dateRange value", func() {
		code := list("dateRange=fortnight")

		Expect(code).To(Equal(400))
	})
})
