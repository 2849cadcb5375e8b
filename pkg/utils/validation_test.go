package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAction(t *testing.T) {
	assert.NoError(t, ValidateAction("A"))
	assert.NoError(t, ValidateAction("R"))

	for _, invalid := range []string{"", "a", "r", "APPROVE", "X"} {
		err := ValidateAction(invalid)
		assert.Error(t, err, "action %q should be invalid", invalid)
	}
}

func TestValidateRequestType(t *testing.T) {
	assert.NoError(t, ValidateRequestType("ORDER_APPROVAL"))
	assert.Error(t, ValidateRequestType(""))
}

func TestHumanizeRequestType(t *testing.T) {
	cases := map[string]string{
		"ORDER_APPROVAL":          "Order Approval",
		"ASSET_MOVEMENT_APPROVAL": "Asset Movement Approval",
		"custom_type":             "Custom Type",
	}
	for in, want := range cases {
		assert.Equal(t, want, HumanizeRequestType(in))
	}
}

func TestValidateLimitAndOffset(t *testing.T) {
	assert.Equal(t, 20, ValidateLimit(0))
	assert.Equal(t, 20, ValidateLimit(-5))
	assert.Equal(t, 100, ValidateLimit(500))
	assert.Equal(t, 50, ValidateLimit(50))

	assert.Equal(t, 0, ValidateOffset(-1))
	assert.Equal(t, 30, ValidateOffset(30))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("approver@example.com"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
}
