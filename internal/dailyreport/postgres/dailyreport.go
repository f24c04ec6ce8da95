package postgres

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/hotelops/hotel-operations/internal"
	"github.com/hotelops/hotel-operations/internal/dailyreport"
)

// DailyReportRepository implements the dailyreport.Repository interface
// using GORM.
type DailyReportRepository struct {
	db *gorm.DB
}

func NewDailyReportRepository(db *gorm.DB) dailyreport.Repository {
	return &DailyReportRepository{db: db}
}

func (r *DailyReportRepository) Create(rep *dailyreport.DailyReport) error {
	return r.db.Create(rep).Error
}

func (r *DailyReportRepository) GetByID(id int64) (*dailyreport.DailyReport, error) {
	var rep dailyreport.DailyReport
	err := r.db.Where("id = ?", id).First(&rep).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrReportNotFound
		}
		return nil, err
	}
	return &rep, nil
}

func (r *DailyReportRepository) List(filter dailyreport.ListFilter) ([]dailyreport.DailyReport, int64, error) {
	query := r.db.Model(&dailyreport.DailyReport{})
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.ResortName != "" {
		query = query.Where("LOWER(resort_name) LIKE ?", "%"+strings.ToLower(filter.ResortName)+"%")
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.DateFrom != nil {
		query = query.Where("report_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("report_date <= ?", *filter.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []dailyreport.DailyReport
	err := query.
		Order("created_at DESC, id ASC").
		Limit(filter.PageSize).
		Offset(filter.Offset()).
		Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}

func (r *DailyReportRepository) Update(rep *dailyreport.DailyReport, expectedStatus dailyreport.Status) error {
	res := r.db.Model(&dailyreport.DailyReport{}).
		Where("id = ? AND status = ? AND is_locked = ?", rep.ID, expectedStatus, false).
		Select("*").
		Omit("id", "created_at").
		Updates(rep)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.conflictOrNotFound(rep.ID)
	}
	return nil
}

func (r *DailyReportRepository) Delete(id int64, expectedStatus dailyreport.Status) error {
	res := r.db.
		Where("id = ? AND status = ? AND is_locked = ?", id, expectedStatus, false).
		Delete(&dailyreport.DailyReport{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.conflictOrNotFound(id)
	}
	return nil
}

// Stats aggregates status counts, revenue and occupancy in one query.
func (r *DailyReportRepository) Stats(filter dailyreport.StatsFilter) (*dailyreport.Stats, error) {
	query := r.db.Model(&dailyreport.DailyReport{})
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.ResortName != "" {
		query = query.Where("LOWER(resort_name) LIKE ?", "%"+strings.ToLower(filter.ResortName)+"%")
	}
	if filter.DateFrom != nil {
		query = query.Where("report_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("report_date <= ?", *filter.DateTo)
	}

	var stats dailyreport.Stats
	err := query.Select(
		"COUNT(*) AS total_reports, " +
			"COUNT(CASE WHEN status = 'draft' THEN 1 END) AS draft_count, " +
			"COUNT(CASE WHEN status = 'submitted' THEN 1 END) AS submitted_count, " +
			"COUNT(CASE WHEN status = 'approved' THEN 1 END) AS approved_count, " +
			"COUNT(CASE WHEN status = 'rejected' THEN 1 END) AS rejected_count, " +
			"COALESCE(SUM(total_revenue_for_day), 0) AS total_revenue, " +
			"COALESCE(AVG(occupancy_ratio), 0) AS average_occupancy, " +
			"COALESCE(SUM(rooms_occupied), 0) AS total_rooms_occupied, " +
			"COALESCE(SUM(total_guests), 0) AS total_guests").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *DailyReportRepository) conflictOrNotFound(id int64) error {
	var count int64
	if err := r.db.Model(&dailyreport.DailyReport{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return internal.ErrReportNotFound
	}
	return internal.ErrUpdateConflict
}
