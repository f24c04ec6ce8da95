package postgres

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/hotelops/hotel-operations/internal"
	"github.com/hotelops/hotel-operations/internal/report"
)

// ReportRepository implements the report.Repository interface using GORM.
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) report.Repository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(rep *report.ExpenseReport) error {
	return r.db.Create(rep).Error
}

func (r *ReportRepository) GetByID(id int64) (*report.ExpenseReport, error) {
	var rep report.ExpenseReport
	err := r.db.Where("id = ?", id).First(&rep).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrReportNotFound
		}
		return nil, err
	}
	return &rep, nil
}

// List returns one page of reports matching the filter plus the total match
// count. Ordering is newest-first with id as the tie-break so pagination is
// stable across requests.
func (r *ReportRepository) List(filter report.ListFilter) ([]report.ExpenseReport, int64, error) {
	query := r.applyListFilter(r.db.Model(&report.ExpenseReport{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []report.ExpenseReport
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

// Update persists the report only if the stored row still carries the
// expected status and is unlocked. Zero affected rows means another writer
// transitioned the report in between; that is an update conflict, not a
// silent overwrite.
func (r *ReportRepository) Update(rep *report.ExpenseReport, expectedStatus report.Status) error {
	res := r.db.Model(&report.ExpenseReport{}).
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

// Delete removes the report under the same conditional-write rule as Update.
func (r *ReportRepository) Delete(id int64, expectedStatus report.Status) error {
	res := r.db.
		Where("id = ? AND status = ? AND is_locked = ?", id, expectedStatus, false).
		Delete(&report.ExpenseReport{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.conflictOrNotFound(id)
	}
	return nil
}

// Stats aggregates status counts and financial totals in one query.
func (r *ReportRepository) Stats(filter report.StatsFilter) (*report.Stats, error) {
	query := r.db.Model(&report.ExpenseReport{})
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.HotelName != "" {
		query = query.Where("LOWER(hotel_name) LIKE ?", "%"+strings.ToLower(filter.HotelName)+"%")
	}
	if filter.DateFrom != nil {
		query = query.Where("report_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("report_date <= ?", *filter.DateTo)
	}

	var stats report.Stats
	err := query.Select(
		"COUNT(*) AS total_reports, " +
			"COUNT(CASE WHEN status = 'draft' THEN 1 END) AS draft_count, " +
			"COUNT(CASE WHEN status = 'submitted' THEN 1 END) AS submitted_count, " +
			"COUNT(CASE WHEN status = 'approved' THEN 1 END) AS approved_count, " +
			"COUNT(CASE WHEN status = 'rejected' THEN 1 END) AS rejected_count, " +
			"COALESCE(SUM(total_expenses), 0) AS total_expenses, " +
			"COALESCE(SUM(total_revenue), 0) AS total_revenue, " +
			"COALESCE(SUM(net_profit), 0) AS net_profit, " +
			"COALESCE(AVG(profit_margin), 0) AS avg_profit_margin").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *ReportRepository) applyListFilter(query *gorm.DB, filter report.ListFilter) *gorm.DB {
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.HotelName != "" {
		// LOWER/LIKE instead of ILIKE keeps the predicate portable to the
		// sqlite driver used in tests.
		query = query.Where("LOWER(hotel_name) LIKE ?", "%"+strings.ToLower(filter.HotelName)+"%")
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
	return query
}

// conflictOrNotFound disambiguates a zero-row conditional write: the report
// either vanished or was transitioned/locked concurrently.
func (r *ReportRepository) conflictOrNotFound(id int64) error {
	var count int64
	if err := r.db.Model(&report.ExpenseReport{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return internal.ErrReportNotFound
	}
	return internal.ErrUpdateConflict
}
