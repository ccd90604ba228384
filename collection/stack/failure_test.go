package stack

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/boundedstack/stackutils/commonerrors"
	"github.com/boundedstack/stackutils/commonerrors/errortest"
	"github.com/boundedstack/stackutils/logs/logstest"
)

var errNoMemory = errors.New("no memory left")

const int64Size = 8

func TestNewStack_AllocationFailure(t *testing.T) {
	ctlr := gomock.NewController(t)
	defer ctlr.Finish()

	allocator := NewMockIAllocator(ctlr)
	allocator.EXPECT().Allocate(DefaultInitialCapacity * int64Size).Return(errNoMemory).Times(1)

	s, err := NewStack[int64](WithAllocator(allocator))
	errortest.AssertError(t, err, ErrOutOfMemory)
	assert.True(t, errors.Is(err, errNoMemory))
	assert.True(t, IsResourceFailure(err))
	assert.Nil(t, s)
}

func TestStack_GrowFailure(t *testing.T) {
	ctlr := gomock.NewController(t)
	defer ctlr.Finish()

	allocator := NewMockIAllocator(ctlr)
	gomock.InOrder(
		allocator.EXPECT().Allocate(16*int64Size).Return(nil),
		allocator.EXPECT().Allocate(32*int64Size).Return(errNoMemory),
		allocator.EXPECT().Free(16*int64Size),
	)

	s, err := NewStack[int64](WithAllocator(allocator))
	require.NoError(t, err)
	for i := 0; i < 16; i++ {
		require.NoError(t, s.Push(int64(i)))
	}
	err = s.Push(16)
	errortest.AssertError(t, err, ErrOutOfMemory)
	assert.Equal(t, OutcomeOutOfMemory, OutcomeOf(err))
	assert.Equal(t, 16, s.Size())
	assert.Equal(t, 16, s.Capacity())
	v, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, int64(15), v)
	s.Destroy()
}

func TestStack_ShrinkFailure(t *testing.T) {
	ctlr := gomock.NewController(t)
	defer ctlr.Finish()

	allocator := NewMockIAllocator(ctlr)
	gomock.InOrder(
		allocator.EXPECT().Allocate(16*int64Size).Return(nil),
		// growth on the 17th push
		allocator.EXPECT().Allocate(32*int64Size).Return(nil),
		allocator.EXPECT().Free(16*int64Size),
		// shrinking once 7 elements are left
		allocator.EXPECT().Allocate(16*int64Size).Return(errNoMemory),
		// shrinking once 6 elements are left
		allocator.EXPECT().Allocate(16*int64Size).Return(nil),
		allocator.EXPECT().Free(32*int64Size),
		allocator.EXPECT().Free(16*int64Size),
	)

	s, err := NewStack[int64](WithAllocator(allocator), WithLogger(logstest.NewTestLogger(t)))
	require.NoError(t, err)
	for i := 0; i < 17; i++ {
		require.NoError(t, s.Push(int64(i)))
	}
	assert.Equal(t, 32, s.Capacity())
	for i := 16; i >= 7; i-- {
		v, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, int64(i), v)
	}
	assert.Equal(t, 7, s.Size())
	assert.Equal(t, 32, s.Capacity())

	v, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, int64(6), v)
	assert.Equal(t, 16, s.Capacity())
	for i := 5; i >= 0; i-- {
		v, err = s.Pop()
		require.NoError(t, err)
		assert.Equal(t, int64(i), v)
	}
	s.Destroy()
}

func TestStringStack_CopyFailure(t *testing.T) {
	ctlr := gomock.NewController(t)
	defer ctlr.Finish()

	slotSize := int(unsafe.Sizeof(&OwnedString{}))
	allocator := NewMockIAllocator(ctlr)
	gomock.InOrder(
		allocator.EXPECT().Allocate(2*slotSize).Return(nil),
		allocator.EXPECT().Allocate(1).Return(nil),
		allocator.EXPECT().Allocate(1).Return(nil),
		allocator.EXPECT().Allocate(4*slotSize).Return(nil),
		allocator.EXPECT().Free(2*slotSize),
		allocator.EXPECT().Allocate(5).Return(errNoMemory),
		allocator.EXPECT().Allocate(2).Return(nil),
		allocator.EXPECT().Free(2),
		allocator.EXPECT().Free(1),
		allocator.EXPECT().Free(1),
		allocator.EXPECT().Free(4*slotSize),
	)

	s, err := NewStringStack(WithAllocator(allocator), WithCapacityPolicy(CapacityPolicy{Initial: 2, Min: 2, Max: 8}))
	require.NoError(t, err)
	require.NoError(t, s.Push("a"))
	require.NoError(t, s.Push("b"))

	err = s.Push("hello")
	errortest.AssertError(t, err, ErrOutOfMemory)
	assert.True(t, commonerrors.Any(err, errNoMemory))
	assert.Equal(t, 2, s.Size())
	// The storage grew before the copy failed and stays valid.
	assert.Equal(t, 4, s.Capacity())

	require.NoError(t, s.Push("hi"))
	assert.Equal(t, 3, s.Size())
	s.Destroy()
}
