package registry

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/porrinha/internal/argvec"
)

// SpecError reports a player sub-command that could not be turned into a
// Player.
type SpecError struct {
	Seat   int
	Kind   string
	Reason string
	Err    error
}

// Error implements the error interface for SpecError.
func (e *SpecError) Error() string {
	msg := fmt.Sprintf("player %d (%s): %s", e.Seat, e.Kind, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the factory error, if any.
func (e *SpecError) Unwrap() error {
	return e.Err
}

// checkConsumed fails when the factory left tokens in spec.
func checkConsumed(seat int, spec *argvec.Vector) error {
	if spec.Size() == 0 {
		return nil
	}
	return &SpecError{
		Seat:   seat,
		Kind:   spec.ProgramName(),
		Reason: fmt.Sprintf("unexpected arguments %s", strings.Join(spec.Remaining(), " ")),
	}
}
