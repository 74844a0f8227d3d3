package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("user with id=%d not found", 7)))
	assert.Equal(t, KindForbidden, KindOf(Forbidden("nope")))
	assert.Equal(t, KindValidation, KindOf(Validation("bad dates")))
	assert.Equal(t, KindConflict, KindOf(Conflict("already resolved")))
	assert.Equal(t, KindUnknown, KindOf(errors.New("db down")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("approve booking: %w", Conflict("already resolved"))
	assert.True(t, IsKind(err, KindConflict))
}

func TestMessage(t *testing.T) {
	err := NotFound("item with id=%d not found", 42)
	assert.Equal(t, "item with id=42 not found", err.Error())
}
