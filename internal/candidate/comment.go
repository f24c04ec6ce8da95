package candidate

import (
	"strings"
	"time"

	"github.com/hotelops/hotel-operations/internal/core/validation"
)

// Comment is one note left on a candidate during screening. Author is a
// display-name snapshot taken when the comment is written, so the thread
// survives account renames.
type Comment struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	CandidateID int64     `json:"candidate_id" gorm:"column:candidate_id;not null;index"`
	AuthorID    int64     `json:"author_id" gorm:"column:author_id;not null"`
	Author      string    `json:"author" gorm:"column:author;not null"`
	Content     string    `json:"content" gorm:"column:content;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (Comment) TableName() string {
	return "candidate_comments"
}

// CommentRepository defines the data access methods for candidate comments.
// ListByCandidate returns the thread newest-first.
type CommentRepository interface {
	Create(c *Comment) error
	GetByID(id int64) (*Comment, error)
	ListByCandidate(candidateID int64) ([]Comment, error)
	Delete(id int64) error
}

type CreateCommentDTO struct {
	Content string `json:"content"`
}

func (d *CreateCommentDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("content", strings.TrimSpace(d.Content)).Required().MaxLength(2000)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}
