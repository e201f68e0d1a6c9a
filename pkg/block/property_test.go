package block

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPropertyRoundTripBool(t *testing.T) {
	p := Property{Name: "powered", Kind: KindBool, GroupSize: 1}
	const base State = 100
	for _, v := range []bool{true, false} {
		s := p.EncodeBool(base, base, v)
		require.Equal(t, v, p.DecodeBool(s, base))
	}
}

func TestPropertyRoundTripEnum(t *testing.T) {
	p := Property{Name: "facing", Kind: KindEnum, Values: []string{"north", "south", "west", "east"}, GroupSize: 2}
	const base State = 50
	for _, v := range p.Values {
		s := p.EncodeEnum(base, base, v)
		require.Equal(t, v, p.DecodeEnum(s, base))
	}
}

func TestPropertyRoundTripInt(t *testing.T) {
	p := Property{Name: "delay", Kind: KindInt, Min: 1, Max: 4, GroupSize: 1}
	const base State = 0
	for v := p.Min; v <= p.Max; v++ {
		s := p.EncodeInt(base, base, v)
		require.Equal(t, v, p.DecodeInt(s, base))
	}
}

// TestMixedRadixIndependence verifies that encoding one property never
// disturbs another property's digit: encode then decode is identity
// across every property.
func TestMixedRadixIndependence(t *testing.T) {
	powered := Property{Name: "powered", Kind: KindBool, GroupSize: 1}
	delay := Property{Name: "delay", Kind: KindInt, Min: 1, Max: 4, GroupSize: 2}
	const base State = 0

	s := base
	s = powered.EncodeBool(s, base, true)
	s = delay.EncodeInt(s, base, 3)

	require.True(t, powered.DecodeBool(s, base))
	require.Equal(t, 3, delay.DecodeInt(s, base))

	s = powered.EncodeBool(s, base, false)
	require.False(t, powered.DecodeBool(s, base))
	require.Equal(t, 3, delay.DecodeInt(s, base), "changing powered must not disturb delay")
}
