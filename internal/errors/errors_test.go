package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrTypeDatabase, "connection failed")
	assert.Equal(t, "database: connection failed", err.Error())

	wrapped := Wrap(stderrors.New("disk full"), ErrTypeDatabase, "write failed")
	assert.Equal(t, "database: write failed (caused by: disk full)", wrapped.Error())
}

func TestWrapUnwrap(t *testing.T) {
	cause := stderrors.New("original")
	err := Wrap(cause, ErrTypeDataset, "load failed")

	require.ErrorIs(t, err, cause)
	assert.Equal(t, cause, err.Unwrap())
}

func TestIsType(t *testing.T) {
	err := New(ErrTypeValidation, "bad input")

	assert.True(t, IsType(err, ErrTypeValidation))
	assert.False(t, IsType(err, ErrTypeDatabase))
	assert.False(t, IsType(stderrors.New("plain"), ErrTypeValidation))

	// Works through wrapping layers.
	outer := fmt.Errorf("context: %w", err)
	assert.True(t, IsType(outer, ErrTypeValidation))
}

func TestGetType(t *testing.T) {
	assert.Equal(t, ErrTypeConfig, GetType(New(ErrTypeConfig, "bad config")))
	assert.Equal(t, ErrTypeInternal, GetType(stderrors.New("plain")))
}

func TestSuggestions(t *testing.T) {
	err := New(ErrTypeDataset, "missing column").
		WithSuggestion("check the header row")

	require.Len(t, err.Suggestions, 1)

	err = NewDatasetError("bad csv", stderrors.New("parse error"))
	assert.Len(t, err.Suggestions, 2)
	assert.True(t, IsType(err, ErrTypeDataset))
}

func TestNewf(t *testing.T) {
	err := Newf(ErrTypeValidation, "row %d: bad value %q", 3, "x")
	assert.Equal(t, `validation: row 3: bad value "x"`, err.Error())
}
