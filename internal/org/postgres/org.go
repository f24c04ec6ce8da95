package postgres

import (
	"gorm.io/gorm"

	"github.com/hotelops/hotel-operations/internal/org"
)

// OrgRepository implements the org.Repository interface using GORM.
type OrgRepository struct {
	db *gorm.DB
}

func NewOrgRepository(db *gorm.DB) org.Repository {
	return &OrgRepository{db: db}
}

func (r *OrgRepository) ActiveDepartments() ([]org.Department, error) {
	var deps []org.Department
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&deps).Error
	return deps, err
}

func (r *OrgRepository) ActiveLocations() ([]org.Location, error) {
	var locs []org.Location
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&locs).Error
	return locs, err
}
