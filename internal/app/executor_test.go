package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotegen/internal/domain"
)

func TestExecute_RunsStepsInOrder(t *testing.T) {
	var calls []ExecutionStep

	op := Operation[string, int, int, string]{
		Name: "order",
		Validate: func(context.Context, string) error {
			calls = append(calls, StepValidate)
			return nil
		},
		Perform: func(_ context.Context, in string) (int, error) {
			calls = append(calls, StepPerform)
			return len(in), nil
		},
		Verify: func(_ context.Context, _ string, p int) (int, error) {
			calls = append(calls, StepVerify)
			return p * 2, nil
		},
		Archive: func(context.Context, string, int) error {
			calls = append(calls, StepArchive)
			return nil
		},
		Respond: func(_ context.Context, in string, v int) (string, error) {
			calls = append(calls, StepRespond)
			return in + "!", nil
		},
	}

	out, err := Execute(context.Background(), NewExecutor(discardLogger()), op, "abc")

	require.NoError(t, err)
	assert.Equal(t, "abc!", out)
	assert.Equal(t, []ExecutionStep{StepValidate, StepPerform, StepVerify, StepArchive, StepRespond}, calls)
}

func TestExecute_StopsAtFailingStep(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name     string
		op       Operation[int, int, int, int]
		wantStep ExecutionStep
	}{
		{
			name: "validate",
			op: Operation[int, int, int, int]{
				Validate: func(context.Context, int) error { return domain.NewValidationError("text", "cannot be empty") },
				Perform:  func(context.Context, int) (int, error) { panic("must not run") },
			},
			wantStep: StepValidate,
		},
		{
			name: "perform",
			op: Operation[int, int, int, int]{
				Perform: func(context.Context, int) (int, error) { return 0, boom },
				Archive: func(context.Context, int, int) error { panic("must not run") },
			},
			wantStep: StepPerform,
		},
		{
			name: "verify",
			op: Operation[int, int, int, int]{
				Verify:  func(context.Context, int, int) (int, error) { return 0, boom },
				Archive: func(context.Context, int, int) error { panic("must not run") },
			},
			wantStep: StepVerify,
		},
		{
			name: "archive",
			op: Operation[int, int, int, int]{
				Archive: func(context.Context, int, int) error { return boom },
				Respond: func(context.Context, int, int) (int, error) { panic("must not run") },
			},
			wantStep: StepArchive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Execute(context.Background(), NewExecutor(nil), tt.op, 1)

			require.Error(t, err)
			assert.True(t, IsExecutionError(err))

			step, ok := GetExecutionStep(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantStep, step)
		})
	}
}

func TestExecute_ValidationCauseIsPreserved(t *testing.T) {
	op := Operation[int, int, int, int]{
		Validate: func(context.Context, int) error { return domain.NewValidationError("category", "cannot be empty") },
	}

	_, err := Execute(context.Background(), NewExecutor(nil), op, 0)

	assert.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "validate failed: input validation failed")
}

func TestExecute_RespondErrorIsNotWrapped(t *testing.T) {
	boom := errors.New("render failed")
	op := Operation[int, int, int, int]{
		Respond: func(context.Context, int, int) (int, error) { return 0, boom },
	}

	_, err := Execute(context.Background(), NewExecutor(nil), op, 0)

	assert.Equal(t, boom, err)
	assert.False(t, IsExecutionError(err))
}

func TestExecute_NilStepsPassZeroValues(t *testing.T) {
	out, err := Execute(context.Background(), NewExecutor(nil), Operation[int, int, int, string]{Name: "empty"}, 5)

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestGetExecutionStep_PlainError(t *testing.T) {
	_, ok := GetExecutionStep(errors.New("plain"))

	assert.False(t, ok)
}
