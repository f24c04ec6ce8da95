package report

import (
	"fmt"
	"time"

	"github.com/hotelops/hotel-operations/internal"
)

// The lifecycle is a one-way machine:
//
//	draft -> submitted -> approved | rejected
//
// Content mutation and deletion are draft-only. A decision (approve or
// reject) locks the report permanently; locked reports are read-only.

// CanSubmit reports whether a submit transition is valid from the current state.
func (r *ExpenseReport) CanSubmit() bool {
	return r.Status == StatusDraft && !r.IsLocked
}

// CanDecide reports whether approve/reject is valid from the current state.
func (r *ExpenseReport) CanDecide() bool {
	return r.Status == StatusSubmitted && !r.IsLocked
}

// Mutable reports whether report content may still change.
func (r *ExpenseReport) Mutable() bool {
	return r.Status == StatusDraft && !r.IsLocked
}

// Submit moves a draft report to submitted. Any other starting state is an
// invalid transition and leaves the report untouched.
func (r *ExpenseReport) Submit(actorID int64) error {
	if !r.CanSubmit() {
		return internal.NewInvalidTransitionError(
			fmt.Sprintf("cannot submit report in status %q", r.Status))
	}

	r.Status = StatusSubmitted
	r.Touch(actorID)
	return nil
}

// Decide resolves a submitted report to approved or rejected, stamps the
// approval metadata and locks the report permanently.
func (r *ExpenseReport) Decide(decision Status, approverID int64, notes string) error {
	if decision != StatusApproved && decision != StatusRejected {
		return internal.NewValidationError(
			"status must be either approved or rejected", internal.ErrCodeInvalidStatus)
	}
	if !r.CanDecide() {
		return internal.NewInvalidTransitionError(
			fmt.Sprintf("cannot %s report in status %q", decision, r.Status))
	}

	now := time.Now()
	r.Status = decision
	r.ApprovedBy = &approverID
	r.ApprovedAt = &now
	r.ApprovalNotes = notes
	r.IsLocked = true
	r.Touch(approverID)
	return nil
}

// EnsureMutable guards content updates and deletion.
func (r *ExpenseReport) EnsureMutable() error {
	if !r.Mutable() {
		return internal.NewInvalidTransitionError(
			fmt.Sprintf("cannot modify report in status %q", r.Status))
	}
	return nil
}
