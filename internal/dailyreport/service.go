package dailyreport

import (
	"log/slog"

	"github.com/hotelops/hotel-operations/internal"
	"github.com/hotelops/hotel-operations/internal/auth"
)

// Repository defines the data access methods for daily reports. Update and
// Delete are conditional writes with the same conflict semantics as the
// expense report repository.
type Repository interface {
	Create(report *DailyReport) error
	GetByID(id int64) (*DailyReport, error)
	List(filter ListFilter) ([]DailyReport, int64, error)
	Update(report *DailyReport, expectedStatus Status) error
	Delete(id int64, expectedStatus Status) error
	Stats(filter StatsFilter) (*Stats, error)
}

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

func (s *Service) CreateReport(actor *auth.Principal, dto CreateDailyReportDTO) (*DailyReport, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("daily report validation failed", "error", err, "user_id", actor.ID)
		return nil, err
	}

	report := dto.ToReport(actor.ID)
	Recompute(report)

	if err := s.repo.Create(report); err != nil {
		s.logger.Error("failed to create daily report", "error", err, "user_id", actor.ID)
		return nil, err
	}

	s.logger.Info("daily report created",
		"report_id", report.ID,
		"user_id", actor.ID,
		"resort_name", report.ResortName)

	return report, nil
}

func (s *Service) GetReport(actor *auth.Principal, id int64) (*DailyReport, error) {
	report, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if actor.ID != report.OwnerID && !actor.Role.Elevated() {
		s.logger.Warn("daily report access denied",
			"report_id", id, "user_id", actor.ID, "owner_id", report.OwnerID)
		return nil, internal.ErrNotOwner
	}

	return report, nil
}

func (s *Service) ListReports(actor *auth.Principal, filter ListFilter) (*Page, error) {
	if filter.Scope != "all" || !actor.Role.Elevated() {
		filter.OwnerID = &actor.ID
	}
	filter.Normalize()

	reports, total, err := s.repo.List(filter)
	if err != nil {
		s.logger.Error("failed to list daily reports", "error", err, "user_id", actor.ID)
		return nil, err
	}

	page := NewPage(reports, total, filter.Page, filter.PageSize)
	return &page, nil
}

func (s *Service) UpdateReport(actor *auth.Principal, id int64, dto UpdateDailyReportDTO) (*DailyReport, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("daily report update validation failed", "error", err, "report_id", id)
		return nil, err
	}

	report, err := s.authorizeMutation(actor, id)
	if err != nil {
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
		s.logger.Error("failed to update daily report", "error", err, "report_id", id)
		return nil, err
	}

	s.logger.Info("daily report updated", "report_id", id, "user_id", actor.ID)
	return report, nil
}

func (s *Service) DeleteReport(actor *auth.Principal, id int64) error {
	report, err := s.authorizeMutation(actor, id)
	if err != nil {
		return err
	}
	if err := report.EnsureMutable(); err != nil {
		return err
	}

	if err := s.repo.Delete(id, report.Status); err != nil {
		s.logger.Error("failed to delete daily report", "error", err, "report_id", id)
		return err
	}

	s.logger.Info("daily report deleted", "report_id", id, "user_id", actor.ID)
	return nil
}

func (s *Service) SubmitReport(actor *auth.Principal, id int64) (*DailyReport, error) {
	report, err := s.authorizeMutation(actor, id)
	if err != nil {
		return nil, err
	}

	expected := report.Status
	if err := report.Submit(actor.ID); err != nil {
		return nil, err
	}
	Recompute(report)

	if err := s.repo.Update(report, expected); err != nil {
		s.logger.Error("failed to submit daily report", "error", err, "report_id", id)
		return nil, err
	}

	s.logger.Info("daily report submitted", "report_id", id, "user_id", actor.ID)
	return report, nil
}

func (s *Service) DecideReport(actor *auth.Principal, id int64, dto DecideDailyReportDTO) (*DailyReport, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("daily report decision validation failed", "error", err, "report_id", id)
		return nil, err
	}

	if !actor.Role.Elevated() {
		s.logger.Warn("daily report decision denied",
			"report_id", id, "user_id", actor.ID, "role", actor.Role)
		return nil, internal.ErrNotElevated
	}

	report, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	expected := report.Status
	if err := report.Decide(dto.Status, actor.ID, dto.ApprovalNotes); err != nil {
		return nil, err
	}

	if err := s.repo.Update(report, expected); err != nil {
		s.logger.Error("failed to store daily report decision", "error", err, "report_id", id)
		return nil, err
	}

	s.logger.Info("daily report decision stored",
		"report_id", id,
		"approver_id", actor.ID,
		"decision", report.Status)

	return report, nil
}

func (s *Service) ReportStats(actor *auth.Principal, filter StatsFilter) (*Stats, error) {
	if filter.Scope != "all" || !actor.Role.Elevated() {
		filter.OwnerID = &actor.ID
	}

	stats, err := s.repo.Stats(filter)
	if err != nil {
		s.logger.Error("failed to compute daily report stats", "error", err, "user_id", actor.ID)
		return nil, err
	}
	return stats, nil
}

// authorizeMutation fetches the report and applies the ownership and lock
// checks shared by update, delete and submit.
func (s *Service) authorizeMutation(actor *auth.Principal, id int64) (*DailyReport, error) {
	report, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if actor.ID != report.OwnerID && !actor.Role.Elevated() {
		s.logger.Warn("daily report mutation denied",
			"report_id", id, "user_id", actor.ID, "owner_id", report.OwnerID)
		return nil, internal.ErrNotOwner
	}
	if report.IsLocked {
		return nil, internal.ErrReportLocked
	}

	return report, nil
}
