package bot

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSize(t *testing.T) {
	assert.NoError(t, CheckSize(0, defaultUploadLimit))
	assert.NoError(t, CheckSize(defaultUploadLimit, defaultUploadLimit))

	err := CheckSize(defaultUploadLimit+1, defaultUploadLimit)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestUploadLimitNoGuild(t *testing.T) {
	s := &discordgo.Session{State: discordgo.NewState()}
	assert.Equal(t, defaultUploadLimit, UploadLimit(s, ""))
}

func TestUploadLimitByPremiumTier(t *testing.T) {
	tests := []struct {
		name string
		tier discordgo.PremiumTier
		want int
	}{
		{"no boost", discordgo.PremiumTierNone, 25 * 1024 * 1024},
		{"tier 1", discordgo.PremiumTier1, 25 * 1024 * 1024},
		{"tier 2", discordgo.PremiumTier2, 50 * 1024 * 1024},
		{"tier 3", discordgo.PremiumTier3, 100 * 1024 * 1024},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &discordgo.Session{State: discordgo.NewState()}
			require.NoError(t, s.State.GuildAdd(&discordgo.Guild{
				ID:          "guild-1",
				PremiumTier: tt.tier,
			}))
			assert.Equal(t, tt.want, UploadLimit(s, "guild-1"))
		})
	}
}
