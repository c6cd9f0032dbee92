package poll

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUntil_StopsAtTerminalAndFetchesFullOnce(t *testing.T) {
	statuses := []string{"EXTRACTING", "EXTRACTING", "COMPLETED"}
	var statusCalls, fullCalls atomic.Int32

	result, err := Until(context.Background(), time.Millisecond,
		"EXTRACTING",
		func(s string) bool { return s == "COMPLETED" || s == "FAILED" },
		func(context.Context) (string, error) {
			i := statusCalls.Add(1)
			return statuses[i-1], nil
		},
		func(context.Context) (string, error) {
			fullCalls.Add(1)
			return "record", nil
		},
	)
	require.NoError(t, err)
	require.Equal(t, "record", result)
	require.Equal(t, int32(3), statusCalls.Load(), "must stop on the tick that observes COMPLETED")
	require.Equal(t, int32(1), fullCalls.Load(), "full record fetched exactly once")
}

func TestUntil_AlreadyTerminal_SkipsPolling(t *testing.T) {
	var statusCalls atomic.Int32

	result, err := Until(context.Background(), time.Millisecond,
		"FAILED",
		func(s string) bool { return s == "COMPLETED" || s == "FAILED" },
		func(context.Context) (string, error) {
			statusCalls.Add(1)
			return "", nil
		},
		func(context.Context) (int, error) { return 42, nil },
	)
	require.NoError(t, err)
	require.Equal(t, 42, result)
	require.Zero(t, statusCalls.Load())
}

func TestUntil_StatusErrorPropagates(t *testing.T) {
	boom := errors.New("boom")

	_, err := Until(context.Background(), time.Millisecond,
		"GENERATING",
		func(s string) bool { return s != "GENERATING" },
		func(context.Context) (string, error) { return "", boom },
		func(context.Context) (string, error) { return "", nil },
	)
	require.ErrorIs(t, err, boom)
}

func TestUntil_ContextCancelStopsLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := Until(ctx, 10*time.Millisecond,
			"GENERATING",
			func(s string) bool { return false },
			func(context.Context) (string, error) { return "GENERATING", nil },
			func(context.Context) (string, error) { return "", nil },
		)
		done <- err
	}()

	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("poll loop leaked after cancellation")
	}
}
