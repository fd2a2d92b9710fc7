package consts

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrno_Wrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("no such name")
	err := ErrResourceLookup.Wrap(cause)

	assert.ErrorIs(t, err, ErrResourceLookup)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, "resource lookup failed: no such name", err.Error())
	assert.Equal(t, "resource lookup failed", ErrResourceLookup.Error())

	wrapped := fmt.Errorf("activate: %w", err)
	var en *Errno
	assert.True(t, errors.As(wrapped, &en))
	assert.Equal(t, codes.Unavailable, en.Code())
}

func TestErrno_GRPCStatus(t *testing.T) {
	t.Parallel()

	err := ErrInvalidArgument.Wrap(errors.New("dataSourceName is empty"))
	s, ok := status.FromError(err)
	assert.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, s.Code())
	assert.Equal(t, "invalid argument: dataSourceName is empty", s.Message())
}

func TestErrno_SameCodeDifferentErrors(t *testing.T) {
	t.Parallel()

	assert.NotErrorIs(t, ErrMapperKnown.Wrap(nil), ErrAlreadyBound)
	assert.ErrorIs(t, ErrAlreadyBound.Wrap(nil), ErrAlreadyBound)
}
