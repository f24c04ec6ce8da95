package report_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hotelops/hotel-operations/internal"
	"github.com/hotelops/hotel-operations/internal/auth"
	"github.com/hotelops/hotel-operations/internal/report"
)

var _ = Describe("Report lifecycle", func() {
	Describe("Submit", func() {
		It("should move a draft to submitted", func() {
			r := &report.ExpenseReport{Status: report.StatusDraft}

			err := r.Submit(7)

			Expect(err).NotTo(HaveOccurred())
			Expect(r.Status).To(Equal(report.StatusSubmitted))
			Expect(r.LastModifiedBy).To(Equal(int64(7)))
		})

		It("should reject submitting a submitted report", func() {
			r := &report.ExpenseReport{Status: report.StatusSubmitted}

			err := r.Submit(7)

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidTransition))
			Expect(r.Status).To(Equal(report.StatusSubmitted))
		})
	})

	Describe("Decide", func() {
		It("should approve a submitted report and lock it", func() {
			r := &report.ExpenseReport{Status: report.StatusSubmitted}

			err := r.Decide(report.StatusApproved, 42, "looks good")

			Expect(err).NotTo(HaveOccurred())
			Expect(r.Status).To(Equal(report.StatusApproved))
			Expect(r.IsLocked).To(BeTrue())
			Expect(r.ApprovedBy).NotTo(BeNil())
			Expect(*r.ApprovedBy).To(Equal(int64(42)))
			Expect(r.ApprovedAt).NotTo(BeNil())
			Expect(r.ApprovalNotes).To(Equal("looks good"))
		})

		It("should reject a submitted report and still lock it", func() {
			r := &report.ExpenseReport{Status: report.StatusSubmitted}

			err := r.Decide(report.StatusRejected, 42, "numbers do not add up")

			Expect(err).NotTo(HaveOccurred())
			Expect(r.Status).To(Equal(report.StatusRejected))
			Expect(r.IsLocked).To(BeTrue())
		})

		It("should refuse to approve a draft", func() {
			r := &report.ExpenseReport{Status: report.StatusDraft}

			err := r.Decide(report.StatusApproved, 42, "")

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidTransition))
			Expect(r.Status).To(Equal(report.StatusDraft))
			Expect(r.IsLocked).To(BeFalse())
		})

		It("should refuse decisions other than approved or rejected", func() {
			r := &report.ExpenseReport{Status: report.StatusSubmitted}

			err := r.Decide(report.StatusDraft, 42, "")

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidStatus))
		})

		It("should refuse to re-decide a locked report", func() {
			r := &report.ExpenseReport{Status: report.StatusApproved, IsLocked: true}

			err := r.Decide(report.StatusRejected, 42, "")

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidTransition))
			Expect(r.Status).To(Equal(report.StatusApproved))
		})
	})

	Describe("EnsureMutable", func() {
		It("should allow edits to a draft", func() {
			r := &report.ExpenseReport{Status: report.StatusDraft}
			Expect(r.EnsureMutable()).To(Succeed())
		})

		It("should refuse edits once submitted", func() {
			r := &report.ExpenseReport{Status: report.StatusSubmitted}

			err := r.EnsureMutable()

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidTransition))
		})
	})
})

var _ = Describe("Authorize", func() {
	var (
		owner    *auth.Principal
		stranger *auth.Principal
		manager  *auth.Principal
	)

	BeforeEach(func() {
		owner = &auth.Principal{ID: 1, Role: auth.RoleStaff}
		stranger = &auth.Principal{ID: 2, Role: auth.RoleStaff}
		manager = &auth.Principal{ID: 3, Role: auth.RoleManager}
	})

	Context("viewing", func() {
		It("should allow the owner", func() {
			r := &report.ExpenseReport{OwnerID: 1}
			Expect(report.Authorize(owner, r, report.OpView)).To(Succeed())
		})

		It("should allow an elevated non-owner", func() {
			r := &report.ExpenseReport{OwnerID: 1}
			Expect(report.Authorize(manager, r, report.OpView)).To(Succeed())
		})

		It("should deny a non-owner staff member with NOT_OWNER", func() {
			r := &report.ExpenseReport{OwnerID: 1}

			err := report.Authorize(stranger, r, report.OpView)

			Expect(err).To(Equal(internal.ErrNotOwner))
		})

		It("should allow viewing a locked report", func() {
			r := &report.ExpenseReport{OwnerID: 1, IsLocked: true}
			Expect(report.Authorize(owner, r, report.OpView)).To(Succeed())
		})
	})

	Context("mutating", func() {
		It("should allow the owner to update an unlocked report", func() {
			r := &report.ExpenseReport{OwnerID: 1}
			Expect(report.Authorize(owner, r, report.OpUpdate)).To(Succeed())
		})

		It("should deny mutation of a locked report with REPORT_LOCKED even for the owner", func() {
			r := &report.ExpenseReport{OwnerID: 1, IsLocked: true}

			Expect(report.Authorize(owner, r, report.OpUpdate)).To(Equal(internal.ErrReportLocked))
			Expect(report.Authorize(owner, r, report.OpDelete)).To(Equal(internal.ErrReportLocked))
			Expect(report.Authorize(owner, r, report.OpSubmit)).To(Equal(internal.ErrReportLocked))
		})

		It("should deny a locked report to an elevated actor with REPORT_LOCKED, not NOT_OWNER", func() {
			r := &report.ExpenseReport{OwnerID: 1, IsLocked: true}

			err := report.Authorize(manager, r, report.OpUpdate)

			Expect(err).To(Equal(internal.ErrReportLocked))
		})

		It("should check ownership before the lock for strangers", func() {
			r := &report.ExpenseReport{OwnerID: 1, IsLocked: true}

			err := report.Authorize(stranger, r, report.OpUpdate)

			Expect(err).To(Equal(internal.ErrNotOwner))
		})
	})

	Context("approving", func() {
		It("should require an elevated role regardless of ownership", func() {
			r := &report.ExpenseReport{OwnerID: 1, Status: report.StatusSubmitted}

			err := report.Authorize(owner, r, report.OpApprove)

			Expect(err).To(Equal(internal.ErrNotElevated))
		})

		It("should allow any elevated role", func() {
			r := &report.ExpenseReport{OwnerID: 1, Status: report.StatusSubmitted}

			for _, role := range []auth.Role{auth.RoleManager, auth.RoleAdmin, auth.RoleMaster} {
				actor := &auth.Principal{ID: 99, Role: role}
				Expect(report.Authorize(actor, r, report.OpApprove)).To(Succeed())
			}
		})
	})
})
