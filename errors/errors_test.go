package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestIs(t *testing.T) {
	err1 := New("error 1")
	err2 := New("error 2")
	wrapped := Wrap(err1, "wrapped")

	assert.True(t, Is(wrapped, err1))
	assert.False(t, Is(wrapped, err2))
	assert.False(t, Is(nil, err1))
}

func TestKeyPathError(t *testing.T) {
	err := &KeyPathError{
		Keypath:   []string{"person", "adress"},
		Segment:   "adress",
		Index:     1,
		BestKey:   "address",
		BestScore: 67,
	}

	assert.True(t, Is(err, ErrKeyNotFound))
	assert.True(t, IsKeyNotFound(err))
	assert.Contains(t, err.Error(), `"adress"`)
	assert.Contains(t, err.Error(), `"person.adress"`)
	assert.Contains(t, err.Error(), `"address"`)
	assert.Contains(t, err.Error(), "67")
}

func TestKeyPathErrorWithoutCandidate(t *testing.T) {
	err := &KeyPathError{
		Keypath: []string{"anything"},
		Segment: "anything",
		Index:   0,
	}

	assert.True(t, IsKeyNotFound(err))
	assert.NotContains(t, err.Error(), "candidate")
}

func TestKeyPathErrorAs(t *testing.T) {
	var err error = &KeyPathError{
		Keypath: []string{"a", "b"},
		Segment: "b",
		Index:   1,
	}
	wrapped := Wrap(err, "lookup failed")

	var kpe *KeyPathError
	require.True(t, As(wrapped, &kpe))
	assert.Equal(t, "b", kpe.Segment)
	assert.Equal(t, 1, kpe.Index)
	assert.True(t, IsKeyNotFound(wrapped))
}

func TestTraversalError(t *testing.T) {
	err := &TraversalError{
		Keypath: []string{"person", "name", "first"},
		Segment: "first",
		Index:   2,
		Value:   "John",
	}

	assert.True(t, Is(err, ErrTraversal))
	assert.True(t, IsTraversal(err))
	assert.False(t, IsKeyNotFound(err))
	assert.Contains(t, err.Error(), "string")
	assert.Contains(t, err.Error(), `"person.name.first"`)
}

func TestNewInvalidThreshold(t *testing.T) {
	err := NewInvalidThreshold(150)

	assert.True(t, Is(err, ErrInvalidThreshold))
	assert.Contains(t, err.Error(), "150")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Contains(t, hints[0], "[0,100]")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithStack(nil))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.False(t, IsKeyNotFound(nil))
	assert.False(t, IsTraversal(nil))
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func ExampleNewInvalidThreshold() {
	err := NewInvalidThreshold(-5)
	fmt.Println(err)
	// Output: threshold -5 out of range: invalid threshold
}
