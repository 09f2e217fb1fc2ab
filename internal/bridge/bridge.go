// Package bridge submits scripts to a live browser session and hands their
// completion value back to the calling step.
package bridge

import (
	"context"
	"errors"
	"fmt"

	"github.com/themizzi/wpaccept/internal/script"
)

// ErrSessionUnavailable is wrapped by BridgeError when there is no open page to evaluate in
var ErrSessionUnavailable = errors.New("browser session unavailable")

// BridgeError is returned when a remote evaluation fails or the session cannot be reached
type BridgeError struct {
	Script string
	Err    error
}

func (e *BridgeError) Error() string {
	return fmt.Sprintf("script evaluation failed: %v", e.Err)
}

func (e *BridgeError) Unwrap() error {
	return e.Err
}

// Evaluator evaluates a self-invoking script expression and blocks until the
// remote evaluation completes. Evaluator does no escaping of script.
type Evaluator interface {
	Evaluate(ctx context.Context, script string) (Result, error)
}

// Run renders op and evaluates it
func Run(ctx context.Context, e Evaluator, op script.Op) (Result, error) {
	js, err := script.Render(op)
	if err != nil {
		return Result{}, err
	}
	return e.Evaluate(ctx, js)
}
