package candidate

import (
	"io"
	"log/slog"
	"strings"

	"github.com/hotelops/hotel-operations/internal"
	"github.com/hotelops/hotel-operations/internal/auth"
)

// Repository defines the data access methods for candidates.
type Repository interface {
	Create(c *Candidate) error
	GetByID(id int64) (*Candidate, error)
	GetByEmail(email string) (*Candidate, error)
	List(filter ListFilter) ([]Candidate, int64, error)
	Update(c *Candidate) error
	Delete(id int64) error
}

// CVUpload is an incoming CV file from a multipart request.
type CVUpload struct {
	FileName string
	Size     int64
	Content  io.Reader
}

type Service struct {
	repo     Repository
	comments CommentRepository
	files    *FileStore
	logger   *slog.Logger
}

func NewService(repo Repository, comments CommentRepository, files *FileStore, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		comments: comments,
		files:    files,
		logger:   logger,
	}
}

// CreateCandidate records a new applicant, storing the CV when one was
// attached. Candidate emails are unique across the pipeline.
func (s *Service) CreateCandidate(uploaderID int64, dto CreateCandidateDTO, cv *CVUpload) (*Candidate, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("candidate validation failed", "error", err)
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(dto.Email))
	if existing, err := s.repo.GetByEmail(email); err == nil && existing != nil {
		return nil, internal.NewValidationError("a candidate with this email already exists", internal.ErrCodeDuplicateEmail)
	}

	c := &Candidate{
		Name:       dto.Name,
		Email:      email,
		Phone:      dto.Phone,
		Role:       dto.Role,
		Department: dto.Department,
		Location:   dto.Location,
		Source:     dto.Source,
		Status:     StatusUploaded,
		UploadedBy: uploaderID,
		Notes:      dto.Notes,
	}

	if cv != nil {
		stored, err := s.files.Save(cv.FileName, cv.Size, cv.Content)
		if err != nil {
			s.logger.Error("failed to store cv", "error", err, "file_name", cv.FileName)
			return nil, err
		}
		c.CVPath = stored
		c.CVFileName = cv.FileName
	}

	if err := s.repo.Create(c); err != nil {
		// Do not leave an orphaned file behind on a failed insert.
		if c.CVPath != "" {
			if rmErr := s.files.Remove(c.CVPath); rmErr != nil {
				s.logger.Warn("failed to remove orphaned cv", "error", rmErr, "cv_path", c.CVPath)
			}
		}
		s.logger.Error("failed to create candidate", "error", err, "email", email)
		return nil, err
	}

	s.logger.Info("candidate created", "candidate_id", c.ID, "uploaded_by", uploaderID)
	return c, nil
}

func (s *Service) GetCandidate(id int64) (*Candidate, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListCandidates(filter ListFilter) (*Page, error) {
	filter.Normalize()

	candidates, total, err := s.repo.List(filter)
	if err != nil {
		s.logger.Error("failed to list candidates", "error", err)
		return nil, err
	}

	page := NewPage(candidates, total, filter.Page, filter.PageSize)
	return &page, nil
}

func (s *Service) UpdateCandidate(id int64, dto UpdateCandidateDTO) (*Candidate, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("candidate update validation failed", "error", err, "candidate_id", id)
		return nil, err
	}

	c, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*dto.Email))
		if email != c.Email {
			if existing, err := s.repo.GetByEmail(email); err == nil && existing != nil {
				return nil, internal.NewValidationError("a candidate with this email already exists", internal.ErrCodeDuplicateEmail)
			}
		}
	}

	dto.Apply(c)

	if err := s.repo.Update(c); err != nil {
		s.logger.Error("failed to update candidate", "error", err, "candidate_id", id)
		return nil, err
	}

	s.logger.Info("candidate updated", "candidate_id", id, "status", c.Status)
	return c, nil
}

// DeleteCandidate removes the record and any stored CV.
func (s *Service) DeleteCandidate(id int64) error {
	c, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete candidate", "error", err, "candidate_id", id)
		return err
	}

	if err := s.files.Remove(c.CVPath); err != nil {
		s.logger.Warn("failed to remove cv file", "error", err, "candidate_id", id, "cv_path", c.CVPath)
	}

	s.logger.Info("candidate deleted", "candidate_id", id)
	return nil
}

// ListComments returns the candidate's discussion thread, newest first.
func (s *Service) ListComments(candidateID int64) ([]Comment, error) {
	if _, err := s.repo.GetByID(candidateID); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByCandidate(candidateID)
	if err != nil {
		s.logger.Error("failed to list comments", "error", err, "candidate_id", candidateID)
		return nil, err
	}
	if comments == nil {
		comments = []Comment{}
	}
	return comments, nil
}

func (s *Service) AddComment(actor *auth.Principal, candidateID int64, dto CreateCommentDTO) (*Comment, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("comment validation failed", "error", err, "candidate_id", candidateID)
		return nil, err
	}
	if _, err := s.repo.GetByID(candidateID); err != nil {
		return nil, err
	}

	c := &Comment{
		CandidateID: candidateID,
		AuthorID:    actor.ID,
		Author:      actor.Name,
		Content:     strings.TrimSpace(dto.Content),
	}

	if err := s.comments.Create(c); err != nil {
		s.logger.Error("failed to create comment", "error", err, "candidate_id", candidateID)
		return nil, err
	}

	s.logger.Info("comment added", "comment_id", c.ID, "candidate_id", candidateID, "author_id", actor.ID)
	return c, nil
}

// DeleteComment removes a comment. Only the author or a user administrator
// may delete one.
func (s *Service) DeleteComment(actor *auth.Principal, candidateID, commentID int64) error {
	if _, err := s.repo.GetByID(candidateID); err != nil {
		return err
	}

	c, err := s.comments.GetByID(commentID)
	if err != nil {
		return err
	}
	if c.CandidateID != candidateID {
		return internal.NewValidationError("comment does not belong to this candidate", internal.ErrCodeValidationFailed)
	}
	if actor.ID != c.AuthorID && !actor.Role.CanManageUsers() {
		s.logger.Warn("comment deletion denied",
			"comment_id", commentID, "user_id", actor.ID, "author_id", c.AuthorID)
		return internal.NewForbiddenError("not authorized to delete this comment", internal.ErrCodeNotOwner)
	}

	if err := s.comments.Delete(commentID); err != nil {
		s.logger.Error("failed to delete comment", "error", err, "comment_id", commentID)
		return err
	}

	s.logger.Info("comment deleted", "comment_id", commentID, "candidate_id", candidateID, "user_id", actor.ID)
	return nil
}

// OpenCV returns the stored CV stream plus the original file name for the
// download headers.
func (s *Service) OpenCV(id int64) (io.ReadCloser, string, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if c.CVPath == "" {
		return nil, "", internal.NewNotFoundError("candidate has no cv on file", internal.ErrCodeCandidateNotFound)
	}

	f, err := s.files.Open(c.CVPath)
	if err != nil {
		s.logger.Error("failed to open cv file", "error", err, "candidate_id", id, "cv_path", c.CVPath)
		return nil, "", internal.NewNotFoundError("cv file is missing", internal.ErrCodeCandidateNotFound)
	}

	name := c.CVFileName
	if name == "" {
		name = c.CVPath
	}
	return f, name, nil
}
