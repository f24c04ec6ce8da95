package candidate_test

import (
	"log/slog"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hotelops/hotel-operations/internal"
	"github.com/hotelops/hotel-operations/internal/auth"
	"github.com/hotelops/hotel-operations/internal/candidate"
)

type mockCommentRepository struct {
	comments    []candidate.Comment
	nextID      int64
	createError error
}

func newMockCommentRepository() *mockCommentRepository {
	return &mockCommentRepository{nextID: 1}
}

func (m *mockCommentRepository) Create(c *candidate.Comment) error {
	if m.createError != nil {
		return m.createError
	}
	c.ID = m.nextID
	m.nextID++
	c.CreatedAt = time.Now().Add(time.Duration(c.ID) * time.Second)
	m.comments = append(m.comments, *c)
	return nil
}

func (m *mockCommentRepository) GetByID(id int64) (*candidate.Comment, error) {
	for _, c := range m.comments {
		if c.ID == id {
			copy := c
			return &copy, nil
		}
	}
	return nil, internal.ErrCommentNotFound
}

// ListByCandidate mirrors the repository ordering: newest first.
func (m *mockCommentRepository) ListByCandidate(candidateID int64) ([]candidate.Comment, error) {
	var out []candidate.Comment
	for i := len(m.comments) - 1; i >= 0; i-- {
		if m.comments[i].CandidateID == candidateID {
			out = append(out, m.comments[i])
		}
	}
	return out, nil
}

func (m *mockCommentRepository) Delete(id int64) error {
	for i, c := range m.comments {
		if c.ID == id {
			m.comments = append(m.comments[:i], m.comments[i+1:]...)
			return nil
		}
	}
	return internal.ErrCommentNotFound
}

var _ = Describe("Candidate comments", func() {
	var (
		svc          *candidate.Service
		mockRepo     *mockCandidateRepository
		mockComments *mockCommentRepository
		recruiter    *auth.Principal
		colleague    *auth.Principal
		admin        *auth.Principal
		candidateID  int64
	)

	BeforeEach(func() {
		dir, err := os.MkdirTemp("", "cv-uploads-*")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)

		store, err := candidate.NewFileStore(internal.UploadsConfig{
			Dir:         dir,
			MaxSizeMB:   1,
			AllowedExts: ".pdf",
		})
		Expect(err).NotTo(HaveOccurred())

		mockRepo = newMockCandidateRepository()
		mockComments = newMockCommentRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		svc = candidate.NewService(mockRepo, mockComments, store, logger)

		recruiter = &auth.Principal{ID: 7, Name: "Priya Menon", Role: auth.RoleStaff}
		colleague = &auth.Principal{ID: 8, Name: "Rahul Shah", Role: auth.RoleStaff}
		admin = &auth.Principal{ID: 9, Name: "Dev Kapoor", Role: auth.RoleAdmin}

		created, err := svc.CreateCandidate(recruiter.ID, candidate.CreateCandidateDTO{
			Name:  "Asha Nair",
			Email: "asha.nair@example.com",
		}, nil)
		Expect(err).NotTo(HaveOccurred())
		candidateID = created.ID
	})

	Describe("AddComment", func() {
		It("should stamp the author snapshot and trim the content", func() {
			c, err := svc.AddComment(recruiter, candidateID, candidate.CreateCommentDTO{
				Content: "  strong phone screen  ",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(c.ID).To(BeNumerically(">", 0))
			Expect(c.CandidateID).To(Equal(candidateID))
			Expect(c.AuthorID).To(Equal(recruiter.ID))
			Expect(c.Author).To(Equal("Priya Menon"))
			Expect(c.Content).To(Equal("strong phone screen"))
		})

		It("should reject blank content", func() {
			_, err := svc.AddComment(recruiter, candidateID, candidate.CreateCommentDTO{
				Content: "   ",
			})

			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("should report not found for a missing candidate", func() {
			_, err := svc.AddComment(recruiter, 99999, candidate.CreateCommentDTO{
				Content: "note",
			})

			Expect(err).To(Equal(internal.ErrCandidateNotFound))
		})
	})

	Describe("ListComments", func() {
		It("should return the thread newest-first", func() {
			for _, content := range []string{"first note", "second note", "third note"} {
				_, err := svc.AddComment(recruiter, candidateID, candidate.CreateCommentDTO{Content: content})
				Expect(err).NotTo(HaveOccurred())
			}

			comments, err := svc.ListComments(candidateID)

			Expect(err).NotTo(HaveOccurred())
			Expect(comments).To(HaveLen(3))
			Expect(comments[0].Content).To(Equal("third note"))
			Expect(comments[1].Content).To(Equal("second note"))
			Expect(comments[2].Content).To(Equal("first note"))
		})

		It("should return an empty thread, not nil", func() {
			comments, err := svc.ListComments(candidateID)

			Expect(err).NotTo(HaveOccurred())
			Expect(comments).NotTo(BeNil())
			Expect(comments).To(BeEmpty())
		})

		It("should report not found for a missing candidate", func() {
			_, err := svc.ListComments(99999)

			Expect(err).To(Equal(internal.ErrCandidateNotFound))
		})
	})

	Describe("DeleteComment", func() {
		var commentID int64

		BeforeEach(func() {
			c, err := svc.AddComment(recruiter, candidateID, candidate.CreateCommentDTO{
				Content: "keep in the running",
			})
			Expect(err).NotTo(HaveOccurred())
			commentID = c.ID
		})

		It("should let the author delete their own comment", func() {
			Expect(svc.DeleteComment(recruiter, candidateID, commentID)).To(Succeed())

			comments, err := svc.ListComments(candidateID)
			Expect(err).NotTo(HaveOccurred())
			Expect(comments).To(BeEmpty())
		})

		It("should let a user administrator delete any comment", func() {
			Expect(svc.DeleteComment(admin, candidateID, commentID)).To(Succeed())
		})

		It("should refuse another staff member", func() {
			err := svc.DeleteComment(colleague, candidateID, commentID)

			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeForbidden))

			comments, listErr := svc.ListComments(candidateID)
			Expect(listErr).NotTo(HaveOccurred())
			Expect(comments).To(HaveLen(1))
		})

		It("should reject a comment that belongs to another candidate", func() {
			other, err := svc.CreateCandidate(recruiter.ID, candidate.CreateCandidateDTO{
				Name:  "Vikram Rao",
				Email: "vikram.rao@example.com",
			}, nil)
			Expect(err).NotTo(HaveOccurred())

			err = svc.DeleteComment(recruiter, other.ID, commentID)

			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("should report not found for a missing comment", func() {
			err := svc.DeleteComment(recruiter, candidateID, 99999)

			Expect(err).To(Equal(internal.ErrCommentNotFound))
		})
	})
})
