package report

import (
	"log/slog"

	"github.com/hotelops/hotel-operations/internal/auth"
)

// Repository defines the data access methods for expense reports. Update and
// Delete are conditional writes: they only apply when the stored row still
// has the expected status and is unlocked, and report ErrUpdateConflict
// otherwise. That is the whole concurrency story; there are no row locks.
type Repository interface {
	Create(report *ExpenseReport) error
	GetByID(id int64) (*ExpenseReport, error)
	List(filter ListFilter) ([]ExpenseReport, int64, error)
	Update(report *ExpenseReport, expectedStatus Status) error
	Delete(id int64, expectedStatus Status) error
	Stats(filter StatsFilter) (*Stats, error)
}

// Service handles expense report business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateReport creates a new draft report owned by the actor. Totals are
// derived server-side before the report is stored.
func (s *Service) CreateReport(actor *auth.Principal, dto CreateReportDTO) (*ExpenseReport, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("report validation failed", "error", err, "user_id", actor.ID)
		return nil, err
	}

	report := dto.ToReport(actor.ID)
	Recompute(report)

	if err := s.repo.Create(report); err != nil {
		s.logger.Error("failed to create report", "error", err, "user_id", actor.ID)
		return nil, err
	}

	s.logger.Info("report created",
		"report_id", report.ID,
		"user_id", actor.ID,
		"hotel_name", report.HotelName)

	return report, nil
}

// GetReport retrieves a single report, applying the access gate.
func (s *Service) GetReport(actor *auth.Principal, id int64) (*ExpenseReport, error) {
	report, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := Authorize(actor, report, OpView); err != nil {
		s.logger.Warn("report access denied",
			"report_id", id, "user_id", actor.ID, "owner_id", report.OwnerID)
		return nil, err
	}

	return report, nil
}

// ListReports returns one page of reports matching the filter. Listings are
// owner-scoped by default; only elevated actors may widen to scope=all.
func (s *Service) ListReports(actor *auth.Principal, filter ListFilter) (*Page, error) {
	if filter.Scope != ScopeAll || !actor.Role.Elevated() {
		filter.OwnerID = &actor.ID
	}
	filter.Normalize()

	reports, total, err := s.repo.List(filter)
	if err != nil {
		s.logger.Error("failed to list reports", "error", err, "user_id", actor.ID)
		return nil, err
	}

	page := NewPage(reports, total, filter.Page, filter.PageSize)
	return &page, nil
}

// UpdateReport applies a partial content update to a draft report. The merged
// report is persisted conditionally on the status observed here; a concurrent
// transition surfaces as ErrUpdateConflict.
func (s *Service) UpdateReport(actor *auth.Principal, id int64, dto UpdateReportDTO) (*ExpenseReport, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("report update validation failed", "error", err, "report_id", id)
		return nil, err
	}

	report, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := Authorize(actor, report, OpUpdate); err != nil {
		s.logger.Warn("report update denied",
			"report_id", id, "user_id", actor.ID, "status", report.Status)
		return nil, err
	}
	if err := report.EnsureMutable(); err != nil {
		return nil, err
	}

	expected := report.Status
	dto.Apply(report)
	Recompute(report)
	report.Touch(actor.ID)

	if err := s.repo.Update(report, expected); err != nil {
		s.logger.Error("failed to update report", "error", err, "report_id", id)
		return nil, err
	}

	s.logger.Info("report updated", "report_id", id, "user_id", actor.ID)
	return report, nil
}

// DeleteReport removes a draft report.
func (s *Service) DeleteReport(actor *auth.Principal, id int64) error {
	report, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	if err := Authorize(actor, report, OpDelete); err != nil {
		s.logger.Warn("report delete denied",
			"report_id", id, "user_id", actor.ID, "status", report.Status)
		return err
	}
	if err := report.EnsureMutable(); err != nil {
		return err
	}

	if err := s.repo.Delete(id, report.Status); err != nil {
		s.logger.Error("failed to delete report", "error", err, "report_id", id)
		return err
	}

	s.logger.Info("report deleted", "report_id", id, "user_id", actor.ID)
	return nil
}

// SubmitReport moves a draft report into the submitted state. Totals are
// recomputed one final time so the figures reviewers see are always derived
// from the line items on record.
func (s *Service) SubmitReport(actor *auth.Principal, id int64) (*ExpenseReport, error) {
	report, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := Authorize(actor, report, OpSubmit); err != nil {
		s.logger.Warn("report submit denied",
			"report_id", id, "user_id", actor.ID, "status", report.Status)
		return nil, err
	}

	expected := report.Status
	if err := report.Submit(actor.ID); err != nil {
		return nil, err
	}
	Recompute(report)

	if err := s.repo.Update(report, expected); err != nil {
		s.logger.Error("failed to submit report", "error", err, "report_id", id)
		return nil, err
	}

	s.logger.Info("report submitted", "report_id", id, "user_id", actor.ID)
	return report, nil
}

// DecideReport approves or rejects a submitted report. Both outcomes lock
// the report permanently.
func (s *Service) DecideReport(actor *auth.Principal, id int64, dto DecideReportDTO) (*ExpenseReport, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("report decision validation failed", "error", err, "report_id", id)
		return nil, err
	}

	report, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := Authorize(actor, report, OpApprove); err != nil {
		s.logger.Warn("report decision denied",
			"report_id", id, "user_id", actor.ID, "role", actor.Role)
		return nil, err
	}

	expected := report.Status
	if err := report.Decide(dto.Status, actor.ID, dto.ApprovalNotes); err != nil {
		return nil, err
	}

	if err := s.repo.Update(report, expected); err != nil {
		s.logger.Error("failed to store report decision", "error", err, "report_id", id)
		return nil, err
	}

	s.logger.Info("report decision stored",
		"report_id", id,
		"approver_id", actor.ID,
		"decision", report.Status)

	return report, nil
}

// ReportStats returns the aggregate financial summary for the actor's
// visible reports.
func (s *Service) ReportStats(actor *auth.Principal, filter StatsFilter) (*Stats, error) {
	if filter.Scope != ScopeAll || !actor.Role.Elevated() {
		filter.OwnerID = &actor.ID
	}

	stats, err := s.repo.Stats(filter)
	if err != nil {
		s.logger.Error("failed to compute report stats", "error", err, "user_id", actor.ID)
		return nil, err
	}
	return stats, nil
}
