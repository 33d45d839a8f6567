package session

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/hireloop/hireloop/internal/types"
)

// ErrNotFound indicates an unknown session or job.
type ErrNotFound struct {
	Kind string
	ID   uuid.UUID
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// ErrTerminal indicates an operation on a completed or abandoned session.
type ErrTerminal struct {
	Status types.SessionStatus
}

func (e *ErrTerminal) Error() string {
	return fmt.Sprintf("session is %s and can no longer be modified", e.Status)
}

// ErrWithdrawNotAllowed indicates an abandon attempt the lifecycle forbids:
// after the interview completed, or after responses were already committed.
type ErrWithdrawNotAllowed struct {
	Reason string
}

func (e *ErrWithdrawNotAllowed) Error() string {
	return fmt.Sprintf("withdrawal not allowed: %s", e.Reason)
}
