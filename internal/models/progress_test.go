package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleProgress_CompleteIsIdempotent(t *testing.T) {
	p := NewModuleProgress(5)
	assert.True(t, p.Complete("m1"))
	assert.False(t, p.Complete("m1"))
	assert.Equal(t, 1, p.Count())
	assert.True(t, p.IsCompleted("m1"))
}

func TestModuleProgress_BonusUnlocksAtThreshold(t *testing.T) {
	p := NewModuleProgress(5)
	for i := 0; i < 4; i++ {
		p.Complete(fmt.Sprintf("m%d", i))
	}
	assert.False(t, p.BonusAvailable())
	assert.False(t, p.ClaimBonus())

	p.Complete("m4")
	assert.True(t, p.BonusAvailable())
}

func TestModuleProgress_ClaimOnlyOnce(t *testing.T) {
	p := NewModuleProgress(5)
	for i := 0; i < 5; i++ {
		p.Complete(fmt.Sprintf("m%d", i))
	}
	require.True(t, p.ClaimBonus())
	assert.True(t, p.IsClaimed())

	p.Complete("m5")
	p.Complete("m6")
	assert.False(t, p.BonusAvailable())
	assert.False(t, p.ClaimBonus())
}

func TestModuleProgress_DefaultThreshold(t *testing.T) {
	p := NewModuleProgress(0)
	assert.Equal(t, 5, p.Threshold())
}

func TestModuleProgress_CompletedSorted(t *testing.T) {
	p := NewModuleProgress(5)
	p.Complete("b")
	p.Complete("a")
	assert.Equal(t, []string{"a", "b"}, p.Completed())
}
