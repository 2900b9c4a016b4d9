package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusErrorUnwrap(t *testing.T) {
	tests := []struct {
		code int
		want error
	}{
		{code: 401, want: ErrUnauthorized},
		{code: 403, want: ErrUnauthorized},
		{code: 404, want: ErrNotFound},
		{code: 410, want: ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.code), func(t *testing.T) {
			err := NewStatusError("http://x", tt.code)
			assert.True(t, Is(err, tt.want))
		})
	}

	err := NewStatusError("http://x", 500)
	assert.False(t, Is(err, ErrNotFound))
	assert.False(t, Is(err, ErrUnauthorized))
	assert.Equal(t, "GET http://x: unexpected status 500", err.Error())
}

func TestFileError(t *testing.T) {
	inner := fmt.Errorf("disk full")
	err := NewFileError("/tmp/r.md", "write", inner)
	assert.Equal(t, "write operation failed on /tmp/r.md: disk full", err.Error())
	assert.True(t, Is(err, inner))

	var fe *FileError
	assert.True(t, As(Wrap(err, "report"), &fe))
	assert.Equal(t, "/tmp/r.md", fe.Path)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ctx"))
}
