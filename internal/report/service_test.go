package report_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hotelops/hotel-operations/internal"
	"github.com/hotelops/hotel-operations/internal/auth"
	"github.com/hotelops/hotel-operations/internal/report"
)

func TestReport(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Report Suite")
}

// Mock repository for testing
type mockReportRepository struct {
	reports     map[int64]*report.ExpenseReport
	nextID      int64
	createError error
	listError   error
	updateError error
	lastFilter  report.ListFilter
	statsFilter report.StatsFilter
	stats       *report.Stats
}

func newMockReportRepository() *mockReportRepository {
	return &mockReportRepository{
		reports: make(map[int64]*report.ExpenseReport),
		nextID:  1,
		stats:   &report.Stats{},
	}
}

func (m *mockReportRepository) Create(r *report.ExpenseReport) error {
	if m.createError != nil {
		return m.createError
	}
	r.ID = m.nextID
	m.nextID++
	r.CreatedAt = time.Now()
	stored := *r
	m.reports[r.ID] = &stored
	return nil
}

func (m *mockReportRepository) GetByID(id int64) (*report.ExpenseReport, error) {
	r, ok := m.reports[id]
	if !ok {
		return nil, internal.ErrReportNotFound
	}
	copy := *r
	return &copy, nil
}

func (m *mockReportRepository) List(filter report.ListFilter) ([]report.ExpenseReport, int64, error) {
	m.lastFilter = filter
	if m.listError != nil {
		return nil, 0, m.listError
	}
	var out []report.ExpenseReport
	for _, r := range m.reports {
		if filter.OwnerID != nil && r.OwnerID != *filter.OwnerID {
			continue
		}
		out = append(out, *r)
	}
	return out, int64(len(out)), nil
}

// Update mirrors the conditional write: it only applies when the stored row
// still has the expected status and is unlocked.
func (m *mockReportRepository) Update(r *report.ExpenseReport, expectedStatus report.Status) error {
	if m.updateError != nil {
		return m.updateError
	}
	stored, ok := m.reports[r.ID]
	if !ok {
		return internal.ErrReportNotFound
	}
	if stored.Status != expectedStatus || stored.IsLocked {
		return internal.ErrUpdateConflict
	}
	copy := *r
	m.reports[r.ID] = &copy
	return nil
}

func (m *mockReportRepository) Delete(id int64, expectedStatus report.Status) error {
	stored, ok := m.reports[id]
	if !ok {
		return internal.ErrReportNotFound
	}
	if stored.Status != expectedStatus || stored.IsLocked {
		return internal.ErrUpdateConflict
	}
	delete(m.reports, id)
	return nil
}

func (m *mockReportRepository) Stats(filter report.StatsFilter) (*report.Stats, error) {
	m.statsFilter = filter
	return m.stats, nil
}

var _ = Describe("ReportService", func() {
	var (
		svc      *report.Service
		mockRepo *mockReportRepository
		staff    *auth.Principal
		manager  *auth.Principal
	)

	BeforeEach(func() {
		mockRepo = newMockReportRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		svc = report.NewService(mockRepo, logger)
		staff = &auth.Principal{ID: 1, Role: auth.RoleStaff}
		manager = &auth.Principal{ID: 2, Role: auth.RoleManager}
	})

	seedDraft := func(ownerID int64) *report.ExpenseReport {
		r := &report.ExpenseReport{
			OwnerID:    ownerID,
			HotelName:  "Goa Beach Resort",
			ReportDate: time.Now().AddDate(0, 0, -1),
			Status:     report.StatusDraft,
		}
		Expect(mockRepo.Create(r)).To(Succeed())
		return r
	}

	Describe("CreateReport", func() {
		It("should create a draft with server-derived totals", func() {
			dto := report.CreateReportDTO{
				HotelName:  "Goa Beach Resort",
				ReportDate: time.Now().AddDate(0, 0, -1),
				Purchases: []report.PurchaseItem{
					{Item: "Rice", Quantity: dec("50"), UnitPrice: dec("200")},
				},
				TotalRevenue: dec("190000"),
			}

			created, err := svc.CreateReport(staff, dto)

			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).To(BeNumerically(">", 0))
			Expect(created.OwnerID).To(Equal(staff.ID))
			Expect(created.Status).To(Equal(report.StatusDraft))
			Expect(created.TotalPurchaseAmount.String()).To(Equal("10000"))
			Expect(created.TotalExpenses.String()).To(Equal("10000"))
			Expect(created.NetProfit.String()).To(Equal("180000"))
			Expect(created.ProfitMargin.StringFixed(2)).To(Equal("94.74"))
		})

		It("should reject a missing hotel name", func() {
			dto := report.CreateReportDTO{ReportDate: time.Now()}

			created, err := svc.CreateReport(staff, dto)

			Expect(err).To(HaveOccurred())
			Expect(created).To(BeNil())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("should reject a future report date", func() {
			dto := report.CreateReportDTO{
				HotelName:  "Goa Beach Resort",
				ReportDate: time.Now().AddDate(0, 0, 2),
			}

			_, err := svc.CreateReport(staff, dto)

			Expect(err).To(HaveOccurred())
		})

		It("should reject a negative line amount", func() {
			dto := report.CreateReportDTO{
				HotelName:  "Goa Beach Resort",
				ReportDate: time.Now(),
				Bills: []report.Bill{
					{Department: "Kitchen", Amount: dec("-10"), Status: report.BillPending},
				},
			}

			_, err := svc.CreateReport(staff, dto)

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("GetReport", func() {
		It("should return the owner's report", func() {
			seeded := seedDraft(staff.ID)

			got, err := svc.GetReport(staff, seeded.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(got.ID).To(Equal(seeded.ID))
		})

		It("should deny another staff member's report with NOT_OWNER", func() {
			seeded := seedDraft(99)

			_, err := svc.GetReport(staff, seeded.ID)

			Expect(err).To(Equal(internal.ErrNotOwner))
		})

		It("should return NOT_FOUND for a missing report", func() {
			_, err := svc.GetReport(staff, 12345)

			Expect(err).To(Equal(internal.ErrReportNotFound))
		})
	})

	Describe("ListReports", func() {
		BeforeEach(func() {
			seedDraft(staff.ID)
			seedDraft(99)
		})

		It("should owner-scope staff listings", func() {
			page, err := svc.ListReports(staff, report.ListFilter{})

			Expect(err).NotTo(HaveOccurred())
			Expect(page.Reports).To(HaveLen(1))
			Expect(mockRepo.lastFilter.OwnerID).NotTo(BeNil())
			Expect(*mockRepo.lastFilter.OwnerID).To(Equal(staff.ID))
		})

		It("should owner-scope staff even when they ask for scope=all", func() {
			page, err := svc.ListReports(staff, report.ListFilter{Scope: report.ScopeAll})

			Expect(err).NotTo(HaveOccurred())
			Expect(page.Reports).To(HaveLen(1))
		})

		It("should owner-scope an elevated actor by default", func() {
			_, err := svc.ListReports(manager, report.ListFilter{})

			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepo.lastFilter.OwnerID).NotTo(BeNil())
			Expect(*mockRepo.lastFilter.OwnerID).To(Equal(manager.ID))
		})

		It("should widen to all owners for an elevated actor with scope=all", func() {
			page, err := svc.ListReports(manager, report.ListFilter{Scope: report.ScopeAll})

			Expect(err).NotTo(HaveOccurred())
			Expect(page.Reports).To(HaveLen(2))
			Expect(mockRepo.lastFilter.OwnerID).To(BeNil())
		})

		It("should normalize paging defaults", func() {
			_, err := svc.ListReports(staff, report.ListFilter{Page: -3, PageSize: 0})

			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepo.lastFilter.Page).To(Equal(1))
			Expect(mockRepo.lastFilter.PageSize).To(Equal(10))
		})
	})

	Describe("UpdateReport", func() {
		It("should merge fields and recompute totals", func() {
			seeded := seedDraft(staff.ID)
			revenue := dec("1000")
			bills := []report.Bill{{Department: "Kitchen", Amount: dec("700"), Status: report.BillPaid}}
			dto := report.UpdateReportDTO{Bills: &bills, TotalRevenue: &revenue}

			updated, err := svc.UpdateReport(staff, seeded.ID, dto)

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.TotalBillsAmount.String()).To(Equal("700"))
			Expect(updated.NetProfit.String()).To(Equal("300"))
			Expect(updated.ProfitMargin.StringFixed(2)).To(Equal("30.00"))
		})

		It("should leave omitted fields untouched", func() {
			seeded := seedDraft(staff.ID)
			notes := "restocked"
			dto := report.UpdateReportDTO{Notes: &notes}

			updated, err := svc.UpdateReport(staff, seeded.ID, dto)

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.HotelName).To(Equal(seeded.HotelName))
			Expect(updated.Notes).To(Equal("restocked"))
		})

		It("should refuse updates on a submitted report", func() {
			seeded := seedDraft(staff.ID)
			mockRepo.reports[seeded.ID].Status = report.StatusSubmitted
			name := "Renamed"

			_, err := svc.UpdateReport(staff, seeded.ID, report.UpdateReportDTO{HotelName: &name})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidTransition))
		})

		It("should refuse updates on a locked report with REPORT_LOCKED", func() {
			seeded := seedDraft(staff.ID)
			mockRepo.reports[seeded.ID].Status = report.StatusApproved
			mockRepo.reports[seeded.ID].IsLocked = true
			name := "Renamed"

			_, err := svc.UpdateReport(staff, seeded.ID, report.UpdateReportDTO{HotelName: &name})

			Expect(err).To(Equal(internal.ErrReportLocked))
		})

		It("should surface a concurrent transition as a conflict", func() {
			seeded := seedDraft(staff.ID)
			// Another request transitions the row between the read and the write.
			mockRepo.updateError = internal.ErrUpdateConflict
			name := "Renamed"

			_, err := svc.UpdateReport(staff, seeded.ID, report.UpdateReportDTO{HotelName: &name})

			Expect(err).To(Equal(internal.ErrUpdateConflict))
		})
	})

	Describe("DeleteReport", func() {
		It("should delete an owned draft", func() {
			seeded := seedDraft(staff.ID)

			Expect(svc.DeleteReport(staff, seeded.ID)).To(Succeed())

			_, err := mockRepo.GetByID(seeded.ID)
			Expect(err).To(Equal(internal.ErrReportNotFound))
		})

		It("should deny deleting someone else's draft", func() {
			seeded := seedDraft(99)

			err := svc.DeleteReport(staff, seeded.ID)

			Expect(err).To(Equal(internal.ErrNotOwner))
		})
	})

	Describe("SubmitReport", func() {
		It("should move an owned draft to submitted", func() {
			seeded := seedDraft(staff.ID)

			submitted, err := svc.SubmitReport(staff, seeded.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(submitted.Status).To(Equal(report.StatusSubmitted))
			Expect(mockRepo.reports[seeded.ID].Status).To(Equal(report.StatusSubmitted))
		})

		It("should refuse a double submit", func() {
			seeded := seedDraft(staff.ID)
			mockRepo.reports[seeded.ID].Status = report.StatusSubmitted

			_, err := svc.SubmitReport(staff, seeded.ID)

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidTransition))
		})
	})

	Describe("DecideReport", func() {
		var submittedID int64

		BeforeEach(func() {
			seeded := seedDraft(staff.ID)
			mockRepo.reports[seeded.ID].Status = report.StatusSubmitted
			submittedID = seeded.ID
		})

		It("should let a manager approve and lock the report", func() {
			dto := report.DecideReportDTO{Status: report.StatusApproved, ApprovalNotes: "ok"}

			decided, err := svc.DecideReport(manager, submittedID, dto)

			Expect(err).NotTo(HaveOccurred())
			Expect(decided.Status).To(Equal(report.StatusApproved))
			Expect(decided.IsLocked).To(BeTrue())
			Expect(mockRepo.reports[submittedID].IsLocked).To(BeTrue())
		})

		It("should deny a staff owner with NOT_ELEVATED", func() {
			dto := report.DecideReportDTO{Status: report.StatusApproved}

			_, err := svc.DecideReport(staff, submittedID, dto)

			Expect(err).To(Equal(internal.ErrNotElevated))
		})

		It("should reject a decision payload outside approved/rejected", func() {
			dto := report.DecideReportDTO{Status: report.StatusDraft}

			_, err := svc.DecideReport(manager, submittedID, dto)

			Expect(err).To(HaveOccurred())
		})

		It("should conflict when two managers race on the same report", func() {
			dto := report.DecideReportDTO{Status: report.StatusApproved}

			_, err := svc.DecideReport(manager, submittedID, dto)
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.DecideReport(manager, submittedID, report.DecideReportDTO{Status: report.StatusRejected})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidTransition))
		})
	})

	Describe("ReportStats", func() {
		It("should owner-scope staff stats", func() {
			_, err := svc.ReportStats(staff, report.StatsFilter{Scope: report.ScopeAll})

			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepo.statsFilter.OwnerID).NotTo(BeNil())
			Expect(*mockRepo.statsFilter.OwnerID).To(Equal(staff.ID))
		})

		It("should widen stats for an elevated actor with scope=all", func() {
			_, err := svc.ReportStats(manager, report.StatsFilter{Scope: report.ScopeAll})

			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepo.statsFilter.OwnerID).To(BeNil())
		})
	})
})
