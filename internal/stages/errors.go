package stages

import "errors"

var (
	// ErrUnknownFunc is returned when a stage names a builtin that does not
	// exist for its kind.
	ErrUnknownFunc = errors.New("stages: unknown function")

	// ErrInvalidStage is returned when a stage config fails validation.
	ErrInvalidStage = errors.New("stages: invalid stage")

	// ErrNoResult is returned when a jq map expression produces no value.
	ErrNoResult = errors.New("stages: expression produced no value")

	// ErrOperand is returned when a builtin receives a value it cannot handle.
	ErrOperand = errors.New("stages: unsupported operand")
)
