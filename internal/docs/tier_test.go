package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTier(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Tier
	}{
		{"user", TierNone},
		{"mod", TierMod},
		{"admin", TierAdmin},
		{"guildowner", TierGuildOwner},
		{"botowner", TierBotOwner},
		{"BotOwner", TierBotOwner},
	} {
		got, err := ParseTier(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseTierInvalid(t *testing.T) {
	_, err := ParseTier("superadmin")
	require.ErrorIs(t, err, ErrInvalidTier)

	_, err = ParseTier("")
	require.ErrorIs(t, err, ErrInvalidTier)
}

func TestTierOrdering(t *testing.T) {
	tiers := Tiers()
	require.Len(t, tiers, 5)
	for i := 1; i < len(tiers); i++ {
		assert.Greater(t, tiers[i], tiers[i-1])
	}
}

func TestBandContains(t *testing.T) {
	band := Band{Min: TierMod, Max: TierGuildOwner}

	assert.False(t, band.Contains(TierNone))
	assert.True(t, band.Contains(TierMod))
	assert.True(t, band.Contains(TierAdmin))
	assert.True(t, band.Contains(TierGuildOwner))
	assert.False(t, band.Contains(TierBotOwner))
}

func TestBandValid(t *testing.T) {
	assert.True(t, FullBand().Valid())
	assert.True(t, Band{Min: TierMod, Max: TierMod}.Valid())
	assert.False(t, Band{Min: TierAdmin, Max: TierMod}.Valid())
}
