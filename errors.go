package overlay

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned by the fitters when there is nothing to fit.
	ErrEmptyInput = errors.New("overlay: empty input")

	// ErrNoConvergence is returned when a font-size search exceeds its
	// iteration cap, which only happens when the measure is not monotonic
	// in size or the text does not fit even at the smallest size.
	ErrNoConvergence = errors.New("overlay: font size search did not converge")
)

// MeasurementUnavailableError reports a failure of the injected TextMeasurer.
// It always wraps the measurer's own error.
type MeasurementUnavailableError struct {
	Op  string // measurer call that failed, e.g. "bounds"
	Err error
}

func (e *MeasurementUnavailableError) Error() string {
	return fmt.Sprintf("overlay: text measurer %s failed: %v", e.Op, e.Err)
}

func (e *MeasurementUnavailableError) Unwrap() error { return e.Err }

// measurementError wraps err unless it is nil or already wrapped.
func measurementError(op string, err error) error {
	if err == nil {
		return nil
	}
	var mu *MeasurementUnavailableError
	if errors.As(err, &mu) {
		return err
	}
	Logger().Warn("text measurer failed", "op", op, "err", err)
	return &MeasurementUnavailableError{Op: op, Err: err}
}

// InvalidColorOperandError is the panic value raised when a Color is
// multiplied by something that is neither numeric nor a Color.
type InvalidColorOperandError struct {
	Operand any
}

func (e *InvalidColorOperandError) Error() string {
	return fmt.Sprintf("overlay: cannot multiply a Color by %T", e.Operand)
}
