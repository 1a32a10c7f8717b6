package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/quotegen/internal/platform/logging"
)

// Use cases that touch both the remote source and local storage run as
// Validate → Perform → Verify → Archive → Respond. Nothing is persisted until
// the performed result has been verified, so a half-failed remote call never
// leaves a partial write behind.

// ExecutionStep represents a step in the transactional pattern.
type ExecutionStep string

const (
	StepValidate ExecutionStep = "validate"
	StepPerform  ExecutionStep = "perform"
	StepVerify   ExecutionStep = "verify"
	StepArchive  ExecutionStep = "archive"
	StepRespond  ExecutionStep = "respond"
)

// ExecutionError wraps errors with the step where they occurred.
type ExecutionError struct {
	Step    ExecutionStep
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Step, e.Message, e.Cause)
	}

	return fmt.Sprintf("%s failed: %s", e.Step, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

var stepMessages = map[ExecutionStep]string{
	StepValidate: "input validation failed",
	StepPerform:  "operation failed",
	StepVerify:   "verification failed",
	StepArchive:  "state persistence failed",
}

// Executor runs operations using the transactional pattern.
type Executor struct {
	logger *slog.Logger
}

// NewExecutor creates a new executor with the given logger.
func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Executor{logger: logger}
}

// Operation defines the functions for each step. Any nil step is skipped and
// passes the zero value along.
type Operation[I, P, V, O any] struct {
	// Name identifies this operation for logging.
	Name string

	// Validate checks inputs and preconditions.
	Validate func(ctx context.Context, input I) error

	// Perform executes the main operation, typically a remote call.
	Perform func(ctx context.Context, input I) (P, error)

	// Verify turns the performed result into the state worth keeping.
	Verify func(ctx context.Context, input I, performed P) (V, error)

	// Archive persists the verified state.
	Archive func(ctx context.Context, input I, verified V) error

	// Respond shapes the result for the caller.
	Respond func(ctx context.Context, input I, verified V) (O, error)
}

// runStep logs around fn and wraps its error with the step name.
// Respond errors are returned unwrapped.
func runStep[T any](ctx context.Context, logger *slog.Logger, step ExecutionStep, fn func() (T, error)) (T, error) {
	logger.Log(ctx, logging.LevelTrace, "step started", slog.String("step", string(step)))

	out, err := fn()
	if err == nil {
		logger.DebugContext(ctx, "step completed", slog.String("step", string(step)))

		return out, nil
	}

	if step == StepValidate {
		logger.WarnContext(ctx, "step failed", slog.String("step", string(step)), slog.Any("error", err))
	} else {
		logger.ErrorContext(ctx, "step failed", slog.String("step", string(step)), slog.Any("error", err))
	}

	if step == StepRespond {
		return out, err
	}

	return out, &ExecutionError{Step: step, Message: stepMessages[step], Cause: err}
}

// Execute runs an operation through the full transactional pattern.
func Execute[I, P, V, O any](ctx context.Context, exec *Executor, op Operation[I, P, V, O], input I) (O, error) {
	var zero O

	logger, ok := logging.Lookup(ctx)
	if !ok {
		logger = exec.logger
	}

	logger = logger.With(slog.String("operation", op.Name))
	start := time.Now()

	_, err := runStep(ctx, logger, StepValidate, func() (struct{}, error) {
		if op.Validate == nil {
			return struct{}{}, nil
		}

		return struct{}{}, op.Validate(ctx, input)
	})
	if err != nil {
		return zero, err
	}

	performed, err := runStep(ctx, logger, StepPerform, func() (P, error) {
		var p P
		if op.Perform == nil {
			return p, nil
		}

		return op.Perform(ctx, input)
	})
	if err != nil {
		return zero, err
	}

	verified, err := runStep(ctx, logger, StepVerify, func() (V, error) {
		var v V
		if op.Verify == nil {
			return v, nil
		}

		return op.Verify(ctx, input, performed)
	})
	if err != nil {
		return zero, err
	}

	_, err = runStep(ctx, logger, StepArchive, func() (struct{}, error) {
		if op.Archive == nil {
			return struct{}{}, nil
		}

		return struct{}{}, op.Archive(ctx, input, verified)
	})
	if err != nil {
		return zero, err
	}

	result, err := runStep(ctx, logger, StepRespond, func() (O, error) {
		if op.Respond == nil {
			return zero, nil
		}

		return op.Respond(ctx, input, verified)
	})
	if err != nil {
		return zero, err
	}

	logger.InfoContext(ctx, "operation completed", slog.Duration("duration", time.Since(start)))

	return result, nil
}

// IsExecutionError checks if an error occurred during execution.
func IsExecutionError(err error) bool {
	var execErr *ExecutionError

	return errors.As(err, &execErr)
}

// GetExecutionStep extracts the step from an execution error.
func GetExecutionStep(err error) (ExecutionStep, bool) {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Step, true
	}

	return "", false
}
