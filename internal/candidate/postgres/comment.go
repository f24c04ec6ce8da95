package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hotelops/hotel-operations/internal"
	"github.com/hotelops/hotel-operations/internal/candidate"
)

// CommentRepository implements the candidate.CommentRepository interface
// using GORM.
type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) candidate.CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(c *candidate.Comment) error {
	return r.db.Create(c).Error
}

func (r *CommentRepository) GetByID(id int64) (*candidate.Comment, error) {
	var c candidate.Comment
	err := r.db.Where("id = ?", id).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrCommentNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepository) ListByCandidate(candidateID int64) ([]candidate.Comment, error) {
	var comments []candidate.Comment
	err := r.db.
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&candidate.Comment{}).Error
}
