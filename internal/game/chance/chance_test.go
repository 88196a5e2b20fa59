package chance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/montyhall/internal/game/chance"
)

// TestCryptoSource_Intn_InRange verifies the postcondition:
// every value returned by Intn(3) is in [0, 3).
func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := chance.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(3)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 3)
	}
}

func TestCryptoSource_Intn_PanicsOnZero(t *testing.T) {
	src := chance.NewCryptoSource()
	assert.Panics(t, func() { src.Intn(0) })
}

func TestSeededSource_PanicsOnNegative(t *testing.T) {
	src := chance.NewSeededSource(1)
	assert.Panics(t, func() { src.Intn(-1) })
}

// TestSeededSource_Deterministic verifies two sources with the same seed agree.
func TestSeededSource_Deterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Uint64().Draw(rt, "seed")
		n := rapid.IntRange(1, 10).Draw(rt, "n")
		a := chance.NewSeededSource(seed)
		b := chance.NewSeededSource(seed)
		for i := 0; i < 20; i++ {
			va, vb := a.Intn(n), b.Intn(n)
			assert.Equal(rt, va, vb)
			assert.GreaterOrEqual(rt, va, 0)
			assert.Less(rt, va, n)
		}
	})
}

// TestSeededSource_CoversRange verifies every value of a small range is reachable.
func TestSeededSource_CoversRange(t *testing.T) {
	src := chance.NewSeededSource(42)
	seen := map[int]bool{}
	for i := 0; i < 300; i++ {
		seen[src.Intn(3)] = true
	}
	assert.Len(t, seen, 3)
}

func TestPicker_LogsEachPick(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	p := chance.NewPicker(chance.NewSeededSource(7), zap.New(core))

	v := p.Pick("car door", 3)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "random pick", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "car door", fields["label"])
	assert.EqualValues(t, 3, fields["n"])
	assert.EqualValues(t, v, fields["result"])
}
