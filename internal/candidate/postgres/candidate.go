package postgres

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/hotelops/hotel-operations/internal"
	"github.com/hotelops/hotel-operations/internal/candidate"
)

// CandidateRepository implements the candidate.Repository interface using GORM.
type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) candidate.Repository {
	return &CandidateRepository{db: db}
}

func (r *CandidateRepository) Create(c *candidate.Candidate) error {
	return r.db.Create(c).Error
}

func (r *CandidateRepository) GetByID(id int64) (*candidate.Candidate, error) {
	var c candidate.Candidate
	err := r.db.Where("id = ?", id).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrCandidateNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CandidateRepository) GetByEmail(email string) (*candidate.Candidate, error) {
	var c candidate.Candidate
	err := r.db.Where("email = ?", email).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrCandidateNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CandidateRepository) List(filter candidate.ListFilter) ([]candidate.Candidate, int64, error) {
	query := r.db.Model(&candidate.Candidate{})

	if filter.Department != "" {
		query = query.Where("department = ?", filter.Department)
	}
	if filter.Location != "" {
		query = query.Where("location = ?", filter.Location)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Search != "" {
		needle := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(role) LIKE ?",
			needle, needle, needle)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at >= ?", *filter.CreatedAfter)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var candidates []candidate.Candidate
	err := query.
		Order("created_at DESC, id ASC").
		Limit(filter.PageSize).
		Offset(filter.Offset()).
		Find(&candidates).Error
	if err != nil {
		return nil, 0, err
	}

	return candidates, total, nil
}

func (r *CandidateRepository) Update(c *candidate.Candidate) error {
	c.UpdatedAt = time.Now()
	return r.db.Save(c).Error
}

func (r *CandidateRepository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&candidate.Candidate{}).Error
}
