package rop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Unit is the payload of a success that carries nothing.
type Unit struct{}

var UnitValue = Unit{}

func (Unit) String() string {
	return "()"
}

// Unexpected is a failure captured at a call boundary: a recovered panic or
// an error returned by an asynchronous computation.
type Unexpected struct {
	ID        uuid.UUID
	CreatedAt time.Time // UTC
	Value     any
	Stack     []byte
}

func NewUnexpected(value any) Unexpected {
	return Unexpected{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Value:     value,
	}
}

func (u Unexpected) Error() string {
	if err, ok := u.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(u.Value)
}

// Unwrap returns Value when it is an error.
func (u Unexpected) Unwrap() error {
	err, _ := u.Value.(error)
	return err
}

// Canceled reports whether the failure came from context cancellation or a
// deadline.
func (u Unexpected) Canceled() bool {
	return IsCancellationError(u.Unwrap())
}
