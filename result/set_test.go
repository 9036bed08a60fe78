package result_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/relay/result"
)

var errFirst = errors.New("first failure")

func TestSetFirstValueSkipsFailures(t *testing.T) {
	set := result.Set[int]{
		result.Err[int](errFirst),
		result.Ok(7),
		result.Ok(9),
	}

	v, ok := set.FirstValue()
	require.True(t, ok)
	assert.Equal(t, 7, v, "first success in order, not first entry")
}

func TestSetFirstErrIgnoresLaterSuccess(t *testing.T) {
	set := result.Set[int]{
		result.Err[int](errFirst),
		result.Ok(7),
	}

	assert.ErrorIs(t, set.FirstErr(), errFirst)
}

func TestSetGet(t *testing.T) {
	second := errors.New("second failure")

	tests := []struct {
		name    string
		set     result.Set[int]
		want    int
		wantErr error
	}{
		{
			name: "first success wins",
			set:  result.Set[int]{result.Err[int](errFirst), result.Ok(3), result.Ok(4)},
			want: 3,
		},
		{
			name:    "all failed surfaces first error",
			set:     result.Set[int]{result.Err[int](errFirst), result.Err[int](second)},
			wantErr: errFirst,
		},
		{
			name:    "empty set",
			set:     result.Set[int]{},
			wantErr: result.ErrNoResult,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.set.Get()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestSetAggregateFlags(t *testing.T) {
	empty := result.Set[int]{}
	assert.False(t, empty.HasValue())
	assert.False(t, empty.HasErr())

	mixed := result.Set[int]{result.Ok(1), result.Err[int](errFirst)}
	assert.True(t, mixed.HasValue())
	assert.True(t, mixed.HasErr())
}

func TestSetVisitorsPreserveOrder(t *testing.T) {
	set := result.Set[int]{
		result.Ok(1),
		result.Err[int](errFirst),
		result.Ok(2),
		result.Err[int](errors.New("second failure")),
	}

	var values []int
	set.EachValue(func(v int) { values = append(values, v) })
	assert.Equal(t, []int{1, 2}, values)

	var errs []error
	set.EachErr(func(err error) { errs = append(errs, err) })
	require.Len(t, errs, 2)
	assert.ErrorIs(t, errs[0], errFirst)
}
