//go:build windows

package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/windows"
)

func TestPriorityClass(t *testing.T) {
	tests := []struct {
		tier Tier
		want uint32
	}{
		{tier: TierBelowNormal, want: windows.BELOW_NORMAL_PRIORITY_CLASS},
		{tier: TierNormal, want: windows.NORMAL_PRIORITY_CLASS},
		{tier: TierHigh, want: windows.HIGH_PRIORITY_CLASS},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, priorityClass(tt.tier), "tier %s", tt.tier)
	}
}

func TestPriorityClassFromDelta(t *testing.T) {
	assert.Equal(t, uint32(windows.BELOW_NORMAL_PRIORITY_CLASS), priorityClass(TierFor(5)))
	assert.Equal(t, uint32(windows.NORMAL_PRIORITY_CLASS), priorityClass(TierFor(0)))
	assert.Equal(t, uint32(windows.HIGH_PRIORITY_CLASS), priorityClass(TierFor(-5)))
}
