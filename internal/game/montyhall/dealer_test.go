package montyhall_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/montyhall/internal/game/chance"
	"github.com/cory-johannsen/montyhall/internal/game/montyhall"
)

func winRate(t *testing.T, decision string, trials int) float64 {
	t.Helper()
	dealer := montyhall.NewDealer(chance.NewPicker(chance.NewSeededSource(1977), zap.NewNop()), zap.NewNop())
	wins := 0
	for i := 0; i < trials; i++ {
		prize, err := dealer.Trial(montyhall.Door1, decision)
		require.NoError(t, err)
		if prize == montyhall.Car {
			wins++
		}
	}
	return float64(wins) / float64(trials)
}

func TestTrial_SwitchWinsTwoThirds(t *testing.T) {
	assert.InDelta(t, 2.0/3.0, winRate(t, "y", 10000), 0.03)
}

func TestTrial_StayWinsOneThird(t *testing.T) {
	assert.InDelta(t, 1.0/3.0, winRate(t, "n", 10000), 0.03)
}

func TestTrial_SwitchWithCarAtDoor2(t *testing.T) {
	p, src := stubPicker(1)
	dealer := montyhall.NewDealer(p, zap.NewNop())

	prize, err := dealer.Trial(montyhall.Door1, "y")
	require.NoError(t, err)
	assert.Equal(t, montyhall.Car, prize)
	assert.Equal(t, []int{3}, src.calls)
}

func TestDeal_SwitchWithCarAtDoor2(t *testing.T) {
	p, _ := stubPicker(1)
	dealer := montyhall.NewDealer(p, zap.NewNop())

	r := dealer.Deal(montyhall.Door1, montyhall.Switch)
	assert.Equal(t, montyhall.Door1, r.Chosen)
	assert.Equal(t, montyhall.Door3, r.Revealed)
	assert.Equal(t, montyhall.Door2, r.Final)
	assert.Equal(t, montyhall.Switch, r.Decision())
	assert.True(t, r.Won())
	assert.NotEqual(t, uuid.Nil, r.ID)
}

func TestTrial_MissingDecisionStays(t *testing.T) {
	p, _ := stubPicker(0)
	dealer := montyhall.NewDealer(p, zap.NewNop())
	prize, err := dealer.Trial(montyhall.Door1, "")
	require.NoError(t, err)
	assert.Equal(t, montyhall.Car, prize)
}

func TestTrial_UnrecognizedDecision(t *testing.T) {
	dealer := montyhall.NewDealer(chance.NewPicker(chance.NewCryptoSource(), zap.NewNop()), zap.NewNop())
	_, err := dealer.Trial(montyhall.Door1, "maybe")
	assert.ErrorIs(t, err, montyhall.ErrUnrecognizedDecision)
}

func TestTrial_InvalidDoor(t *testing.T) {
	dealer := montyhall.NewDealer(chance.NewPicker(chance.NewCryptoSource(), zap.NewNop()), zap.NewNop())
	_, err := dealer.Trial(montyhall.Door(7), "y")
	assert.ErrorIs(t, err, montyhall.ErrInvalidDoor)
}

func TestDealer_LogsRound(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	p, _ := stubPicker(2)
	dealer := montyhall.NewDealer(p, zap.New(core))

	r := dealer.Deal(montyhall.Door3, montyhall.Stay)

	msgs := make([]string, 0, logs.Len())
	for _, e := range logs.All() {
		msgs = append(msgs, e.Message)
		assert.Equal(t, r.ID.String(), e.ContextMap()["round"])
	}
	assert.Equal(t, []string{"prizes hidden", "goat revealed", "round settled"}, msgs)
	settled := logs.FilterMessage("round settled").All()[0].ContextMap()
	assert.Equal(t, "car", settled["prize"])
	assert.Equal(t, "stay", settled["decision"])
}
