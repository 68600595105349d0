package validator_test

import (
	"strings"
	"testing"

	"app/internal/validator"

	"github.com/stretchr/testify/assert"
)

func TestCredentialValidator(t *testing.T) {
	v := validator.NewCredentialValidator()

	assert.NoError(t, v.ValidateCredentials("alice", "secret"))

	err := v.ValidateCredentials("", "secret")
	assert.ErrorContains(t, err, "username required")

	err = v.ValidateCredentials("   ", "secret")
	assert.ErrorContains(t, err, "username required")

	err = v.ValidateCredentials("alice", "")
	assert.ErrorContains(t, err, "password required")

	err = v.ValidateCredentials(strings.Repeat("a", 65), "secret")
	assert.ErrorContains(t, err, "username too long")

	//bcryptの72バイト上限
	err = v.ValidateCredentials("alice", strings.Repeat("p", 73))
	assert.ErrorContains(t, err, "password too long")
}
