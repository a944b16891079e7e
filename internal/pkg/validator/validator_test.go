package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2024-03-04")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), date)

	_, ok = IsValidDate("04-03-2024")
	assert.False(t, ok)
	_, ok = IsValidDate("2024-13-01")
	assert.False(t, ok)
	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidDateTime(t *testing.T) {
	_, ok := IsValidDateTime("2024-01-15T10:30:00Z")
	assert.True(t, ok)
	_, ok = IsValidDateTime("2024-01-15T10:30:00+07:00")
	assert.True(t, ok)
	_, ok = IsValidDateTime("2024-01-15 10:30")
	assert.False(t, ok)
	_, ok = IsValidDateTime("")
	assert.False(t, ok)
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("018f2c6a-7b9a-7c3d-8e4f-1a2b3c4d5e6f"))
	// Version 4 is not accepted.
	assert.False(t, IsValidUUID("7e774a0e-79cc-4b4c-a2a9-2c04a3c556cb"))
	assert.False(t, IsValidUUID("not-a-uuid"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "reason", Message: "reason is required"},
		{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"},
	}

	assert.Equal(t, "reason: reason is required; end_date: end_date must be in YYYY-MM-DD format", errs.Error())
	assert.Equal(t, map[string]string{
		"reason":   "reason is required",
		"end_date": "end_date must be in YYYY-MM-DD format",
	}, errs.ToMap())
}
