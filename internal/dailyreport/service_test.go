package dailyreport_test

import (
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/hotelops/hotel-operations/internal"
	"github.com/hotelops/hotel-operations/internal/auth"
	"github.com/hotelops/hotel-operations/internal/dailyreport"
)

type mockDailyReportRepository struct {
	reports     map[int64]*dailyreport.DailyReport
	nextID      int64
	statsFilter dailyreport.StatsFilter
	stats       *dailyreport.Stats
	statsError  error
}

func newMockDailyReportRepository() *mockDailyReportRepository {
	return &mockDailyReportRepository{
		reports: make(map[int64]*dailyreport.DailyReport),
		nextID:  1,
		stats:   &dailyreport.Stats{},
	}
}

func (m *mockDailyReportRepository) Create(r *dailyreport.DailyReport) error {
	r.ID = m.nextID
	m.nextID++
	stored := *r
	m.reports[r.ID] = &stored
	return nil
}

func (m *mockDailyReportRepository) GetByID(id int64) (*dailyreport.DailyReport, error) {
	r, ok := m.reports[id]
	if !ok {
		return nil, internal.ErrReportNotFound
	}
	copy := *r
	return &copy, nil
}

func (m *mockDailyReportRepository) List(filter dailyreport.ListFilter) ([]dailyreport.DailyReport, int64, error) {
	var out []dailyreport.DailyReport
	for _, r := range m.reports {
		if filter.OwnerID != nil && r.OwnerID != *filter.OwnerID {
			continue
		}
		out = append(out, *r)
	}
	return out, int64(len(out)), nil
}

func (m *mockDailyReportRepository) Update(r *dailyreport.DailyReport, expectedStatus dailyreport.Status) error {
	stored, ok := m.reports[r.ID]
	if !ok {
		return internal.ErrReportNotFound
	}
	if stored.Status != expectedStatus || stored.IsLocked {
		return internal.ErrUpdateConflict
	}
	updated := *r
	m.reports[r.ID] = &updated
	return nil
}

func (m *mockDailyReportRepository) Delete(id int64, expectedStatus dailyreport.Status) error {
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

func (m *mockDailyReportRepository) Stats(filter dailyreport.StatsFilter) (*dailyreport.Stats, error) {
	if m.statsError != nil {
		return nil, m.statsError
	}
	m.statsFilter = filter
	return m.stats, nil
}

var _ = Describe("DailyReportService", func() {
	var (
		svc      *dailyreport.Service
		mockRepo *mockDailyReportRepository
		staff    *auth.Principal
		manager  *auth.Principal
	)

	BeforeEach(func() {
		mockRepo = newMockDailyReportRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		svc = dailyreport.NewService(mockRepo, logger)
		staff = &auth.Principal{ID: 1, Role: auth.RoleStaff}
		manager = &auth.Principal{ID: 2, Role: auth.RoleManager}
	})

	Describe("ReportStats", func() {
		It("should owner-scope staff stats even with scope=all", func() {
			_, err := svc.ReportStats(staff, dailyreport.StatsFilter{Scope: "all"})

			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepo.statsFilter.OwnerID).NotTo(BeNil())
			Expect(*mockRepo.statsFilter.OwnerID).To(Equal(staff.ID))
		})

		It("should owner-scope an elevated actor by default", func() {
			_, err := svc.ReportStats(manager, dailyreport.StatsFilter{})

			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepo.statsFilter.OwnerID).NotTo(BeNil())
			Expect(*mockRepo.statsFilter.OwnerID).To(Equal(manager.ID))
		})

		It("should widen stats for an elevated actor with scope=all", func() {
			_, err := svc.ReportStats(manager, dailyreport.StatsFilter{Scope: "all"})

			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepo.statsFilter.OwnerID).To(BeNil())
		})

		It("should pass resort and date criteria through to the repository", func() {
			_, err := svc.ReportStats(staff, dailyreport.StatsFilter{ResortName: "Goa"})

			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepo.statsFilter.ResortName).To(Equal("Goa"))
		})

		It("should return the aggregate unchanged", func() {
			mockRepo.stats = &dailyreport.Stats{
				TotalReports:  2,
				TotalRevenue:  decimal.NewFromInt(127000),
				TotalGuests:   340,
				ApprovedCount: 1,
				DraftCount:    1,
			}

			stats, err := svc.ReportStats(staff, dailyreport.StatsFilter{})

			Expect(err).NotTo(HaveOccurred())
			Expect(stats.TotalReports).To(Equal(int64(2)))
			Expect(stats.TotalRevenue.Equal(decimal.NewFromInt(127000))).To(BeTrue())
			Expect(stats.TotalGuests).To(Equal(int64(340)))
		})

		It("should surface repository failures", func() {
			mockRepo.statsError = internal.NewInternalError("db down", nil)

			_, err := svc.ReportStats(staff, dailyreport.StatsFilter{})

			Expect(err).To(HaveOccurred())
		})
	})
})
