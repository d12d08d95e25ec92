package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("invalid configuration", "LabelText", InvalidConfig, nil)

	assert.Equal(t, "invalid configuration: LabelText", err.Error())
	assert.Equal(t, "LabelText", err.Param())
	assert.True(t, IsInvalidConfig(err))
	assert.False(t, IsInvalidRule(err))
}

func TestRuleError(t *testing.T) {
	cause := fmt.Errorf("missing closing ]")
	err := NewRuleError("invalid extension pattern", "([", InvalidPattern, cause)

	assert.Equal(t, "invalid extension pattern: ([: missing closing ]", err.Error())
	assert.Equal(t, "([", err.Rule())
	assert.True(t, IsInvalidPattern(err))
	assert.False(t, IsInvalidRule(err))
	assert.Equal(t, cause, Unwrap(err))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))

	base := New("boom")
	wrapped := Wrapf(base, "while doing %s", "work")
	assert.Equal(t, "while doing work: boom", wrapped.Error())
	assert.Equal(t, base, Unwrap(wrapped))
}

func TestKindChecksOnUnrelatedErrors(t *testing.T) {
	plain := fmt.Errorf("plain")
	assert.False(t, IsInvalidConfig(plain))
	assert.False(t, IsInvalidRule(plain))
	assert.False(t, IsInvalidPattern(plain))
}
