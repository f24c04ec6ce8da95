package report

import (
	"github.com/hotelops/hotel-operations/internal"
	"github.com/hotelops/hotel-operations/internal/auth"
)

// Operation enumerates the gated report operations.
type Operation int

const (
	OpView Operation = iota
	OpUpdate
	OpDelete
	OpSubmit
	OpApprove
)

func (op Operation) mutating() bool {
	switch op {
	case OpUpdate, OpDelete, OpSubmit:
		return true
	}
	return false
}

// Authorize is the single access decision for every report operation. It is a
// pure predicate: it never mutates the report or the actor.
//
// Reads need ownership or an elevated role. Mutations additionally require an
// unlocked report; the lock violation is reported distinctly from the
// permission ones. Approve/reject need an elevated role regardless of
// ownership (the submitted-state requirement is the lifecycle's concern).
func Authorize(actor *auth.Principal, r *ExpenseReport, op Operation) error {
	if op == OpApprove {
		if !actor.Role.Elevated() {
			return internal.ErrNotElevated
		}
		return nil
	}

	if actor.ID != r.OwnerID && !actor.Role.Elevated() {
		return internal.ErrNotOwner
	}

	if op.mutating() && r.IsLocked {
		return internal.ErrReportLocked
	}

	return nil
}
