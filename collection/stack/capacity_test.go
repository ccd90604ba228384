package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boundedstack/stackutils/commonerrors"
	"github.com/boundedstack/stackutils/commonerrors/errortest"
)

func TestCapacityPolicy_Validate(t *testing.T) {
	require.NoError(t, DefaultCapacityPolicy().Validate())
	require.NoError(t, CapacityPolicy{Initial: 1, Min: 1, Max: 1}.Validate())

	tests := []struct {
		description string
		policy      CapacityPolicy
	}{
		{
			description: "undefined",
		},
		{
			description: "zero minimum",
			policy:      CapacityPolicy{Initial: 16, Min: 0, Max: 32},
		},
		{
			description: "negative minimum",
			policy:      CapacityPolicy{Initial: 16, Min: -2, Max: 32},
		},
		{
			description: "initial below minimum",
			policy:      CapacityPolicy{Initial: 8, Min: 16, Max: 32},
		},
		{
			description: "initial above maximum",
			policy:      CapacityPolicy{Initial: 64, Min: 16, Max: 32},
		},
		{
			description: "maximum below minimum",
			policy:      CapacityPolicy{Initial: 16, Min: 16, Max: 8},
		},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.description, func(t *testing.T) {
			errortest.AssertError(t, test.policy.Validate(), commonerrors.ErrInvalid)
		})
	}
}

func TestCapacityPolicy_Grow(t *testing.T) {
	policy := DefaultCapacityPolicy()
	c, ok := policy.Grow(16)
	assert.True(t, ok)
	assert.Equal(t, 32, c)
	c, ok = policy.Grow(20000)
	assert.True(t, ok)
	assert.Equal(t, DefaultMaxCapacity, c)
	c, ok = policy.Grow(DefaultMaxCapacity)
	assert.False(t, ok)
	assert.Equal(t, DefaultMaxCapacity, c)

	policy = CapacityPolicy{Initial: 16, Min: 16, Max: 40}
	var sequence []int
	for c, ok = policy.Initial, true; ok; c, ok = policy.Grow(c) {
		sequence = append(sequence, c)
	}
	assert.Equal(t, []int{16, 32, 40}, sequence)
}

func TestCapacityPolicy_Shrink(t *testing.T) {
	policy := DefaultCapacityPolicy()
	tests := []struct {
		capacity         int
		size             int
		expectedShrink   bool
		expectedCapacity int
	}{
		{capacity: 32, size: 7, expectedShrink: true, expectedCapacity: 16},
		{capacity: 32, size: 8, expectedCapacity: 32},
		{capacity: 16, size: 0, expectedCapacity: 16},
		{capacity: 64, size: 3, expectedShrink: true, expectedCapacity: 32},
		{capacity: 1024, size: 255, expectedShrink: true, expectedCapacity: 512},
		{capacity: 1024, size: 256, expectedCapacity: 1024},
	}
	for i := range tests {
		test := tests[i]
		c, ok := policy.Shrink(test.capacity, test.size)
		assert.Equal(t, test.expectedShrink, ok)
		assert.Equal(t, test.expectedCapacity, c)
	}

	c, ok := CapacityPolicy{Initial: 24, Min: 20, Max: 64}.Shrink(24, 1)
	assert.True(t, ok)
	assert.Equal(t, 20, c)
}

func TestCapacityPolicy_Clamp(t *testing.T) {
	policy := CapacityPolicy{Initial: 4, Min: 2, Max: 50}
	assert.Equal(t, 2, policy.Clamp(0))
	assert.Equal(t, 2, policy.Clamp(-10))
	assert.Equal(t, 17, policy.Clamp(17))
	assert.Equal(t, 50, policy.Clamp(64))
}
