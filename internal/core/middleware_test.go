package core

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeDeathAmongst/vrt-cogs/internal/cog"
	"github.com/LeDeathAmongst/vrt-cogs/internal/docs"
)

func TestWithRateLimit(t *testing.T) {
	var refusals []string
	SetResponder(func(s *discordgo.Session, e *discordgo.InteractionCreate, msg string) error {
		refusals = append(refusals, msg)
		return nil
	})
	defer SetResponder(nil)

	fake := &fakeCommand{name: "throttled", cogName: "core"}
	wrapped := ApplyMiddlewares(fake, WithRateLimit(time.Hour, 1))

	ctx := &SlashContext{Event: &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{GuildID: "guild-1"},
	}}

	require.NoError(t, wrapped.Run(ctx))
	assert.Equal(t, 1, fake.runs)

	require.NoError(t, wrapped.Run(ctx))
	assert.Equal(t, 1, fake.runs, "second call inside the window is refused")
	require.Len(t, refusals, 1)
	assert.Contains(t, refusals[0], "Slow down")
}

func TestWithTierCheck(t *testing.T) {
	var refusals []string
	SetResponder(func(s *discordgo.Session, e *discordgo.InteractionCreate, msg string) error {
		refusals = append(refusals, msg)
		return nil
	})
	defer SetResponder(nil)

	memberTier := docs.TierMod
	SetTierResolver(func(s *discordgo.Session, guildID string, m *discordgo.Member) docs.Tier {
		return memberTier
	})
	defer SetTierResolver(nil)

	fake := &fakeCommand{
		name:     "shutdown",
		desc:     "Shut down the bot",
		cogName:  "core",
		requires: cog.Requirements{OwnerOnly: true},
	}
	wrapped := ApplyMiddlewares(fake, WithTierCheck())

	ctx := &SlashContext{Event: &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			GuildID: "guild-1",
			Member:  &discordgo.Member{User: &discordgo.User{ID: "u1"}},
		},
	}}

	require.NoError(t, wrapped.Run(ctx))
	assert.Zero(t, fake.runs, "a mod cannot run an owner-only command")
	require.Len(t, refusals, 1)
	assert.Contains(t, refusals[0], "privilege level")

	memberTier = docs.TierBotOwner
	require.NoError(t, wrapped.Run(ctx))
	assert.Equal(t, 1, fake.runs)
}

func TestResolveMemberTierFallback(t *testing.T) {
	SetTierResolver(nil)
	got := ResolveMemberTier(nil, "guild-1", &discordgo.Member{})
	assert.Equal(t, docs.TierNone, got, "no resolver installed means the open tier")
}
