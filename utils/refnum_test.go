package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewParcelNumber(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	first := NewParcelNumber(now)
	second := NewParcelNumber(now)

	assert.True(t, strings.HasPrefix(first, "PCL-20260831-"))
	assert.NotEqual(t, first, second, "parcel numbers must not collide within a day")
}

func TestNewWorkOrderNumber(t *testing.T) {
	wo := NewWorkOrderNumber("Cutting")
	assert.True(t, strings.HasPrefix(wo, "CUT-WO-"))
	assert.Len(t, wo, len("CUT-WO-")+8)

	// Short and empty stage names still produce a prefix
	assert.True(t, strings.HasPrefix(NewWorkOrderNumber("PP"), "PP-WO-"))
	assert.True(t, strings.HasPrefix(NewWorkOrderNumber(""), "GEN-WO-"))
}
