package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskInput_Validate_Valid(t *testing.T) {
	cases := []DiskInput{
		NewDiskInput(nil, 0, 2),
		NewDiskInput([]int{0, 1}, 1, 2),
		NewDiskInput(textbookQueue, 53, 200),
		NewDiskInput([]int{199, 199, 0}, 199, 200),
	}
	for _, in := range cases {
		assert.NoError(t, in.Validate(), "%+v", in)
	}
}

func TestDiskInput_Validate_ReportsFirstOffendingRequest(t *testing.T) {
	in := NewDiskInput([]int{5, 250, -3}, 10, 200)

	err := in.Validate()

	var iie *InvalidInputError
	require.True(t, errors.As(err, &iie))
	assert.Equal(t, "requests[1]", iie.Field)
	assert.Equal(t, 250, iie.Value)
	assert.Contains(t, err.Error(), "250")
	assert.Contains(t, err.Error(), "[0, 200)")
}

func TestDiskInput_Validate_DiskSizeCheckedFirst(t *testing.T) {
	// GIVEN a disk size below the minimum and an out-of-range head
	err := NewDiskInput(nil, 5, 0).Validate()

	var iie *InvalidInputError
	require.True(t, errors.As(err, &iie))
	assert.Equal(t, "disk_size", iie.Field)
}

func TestInvalidInputError_WrappedStillMatches(t *testing.T) {
	err := NewDiskInput(nil, 9, 5).Validate()
	wrapped := errors.Join(errors.New("loading scenario"), err)
	assert.ErrorIs(t, wrapped, ErrInvalidInput)
}

func TestDiskInput_LastTrack(t *testing.T) {
	assert.Equal(t, 199, NewDiskInput(nil, 0, 200).LastTrack())
}
