package result_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/relay/result"
	"github.com/dshills/relay/token"
)

func TestOkResult(t *testing.T) {
	r := result.Ok(42)

	assert.True(t, r.HasValue())
	assert.False(t, r.HasErr())
	assert.NoError(t, r.Err())

	v, ok := r.Value()
	require.True(t, ok)
	assert.Equal(t, 42, v)

	v, err := r.Get()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestErrResult(t *testing.T) {
	boom := errors.New("boom")
	r := result.Err[int](boom)

	assert.False(t, r.HasValue())
	assert.True(t, r.HasErr())
	assert.Same(t, boom, r.Err())

	_, ok := r.Value()
	assert.False(t, ok)

	_, err := r.Get()
	assert.ErrorIs(t, err, boom)
}

func TestClassification(t *testing.T) {
	cancelled := token.New()
	cancelled.Cancel()
	timedOut := token.WithTimeout(-time.Millisecond)

	tests := []struct {
		name         string
		err          error
		wantCancel   bool
		wantTimedOut bool
	}{
		{name: "explicit cancel", err: cancelled.Err(), wantCancel: true},
		{name: "timeout", err: timedOut.Err(), wantCancel: true, wantTimedOut: true},
		{name: "wrapped timeout", err: fmt.Errorf("fetch: %w", timedOut.Err()), wantCancel: true, wantTimedOut: true},
		{name: "plain failure", err: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := result.Err[int](tt.err)
			assert.Equal(t, tt.wantCancel, r.Cancelled())
			assert.Equal(t, tt.wantTimedOut, r.TimedOut())
		})
	}
}

func TestSuccessNeverClassifiesAsFailure(t *testing.T) {
	r := result.Ok("fine")

	assert.False(t, r.Cancelled())
	assert.False(t, r.TimedOut())
}
