package docs

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeDeathAmongst/vrt-cogs/internal/cog"
)

func coreFixture() *cog.Cog {
	c := &cog.Cog{Name: "Core", Help: "Core bot management commands."}
	c.AddSlash(&cog.Command{Name: "ping", Description: "Check the bot's latency"})
	c.AddSlash(&cog.Command{
		Name:        "shutdown",
		Description: "Shut down the bot",
		Requires:    cog.Requirements{OwnerOnly: true},
	})
	return c
}

func TestAssembleAlwaysFiveTiers(t *testing.T) {
	set, _ := Assemble(coreFixture(), AssembleOptions{}, FullBand())
	require.Len(t, set, len(Tiers()))
	for _, tier := range Tiers() {
		_, ok := set[tier]
		assert.True(t, ok, "tier %s missing from the set", tier)
	}
}

func TestAssembleBandFilter(t *testing.T) {
	// Band capped at mod: ping (open) lands in the user blob, the
	// owner-only shutdown is filtered out entirely.
	set, rows := Assemble(coreFixture(), AssembleOptions{}, Band{Min: TierNone, Max: TierMod})

	assert.Contains(t, set[TierNone], "ping")
	assert.Empty(t, set[TierBotOwner])
	for _, row := range rows {
		assert.NotContains(t, row.Name, "shutdown")
	}
}

func TestAssembleHelpHeader(t *testing.T) {
	c := coreFixture()

	set, _ := Assemble(c, AssembleOptions{IncludeHelp: true}, FullBand())
	for _, tier := range Tiers() {
		assert.True(t, strings.HasPrefix(set[tier], "Core\n====\n\nCore bot management commands.\n\n"),
			"tier %s must start with the cog header", tier)
	}

	set, _ = Assemble(c, AssembleOptions{}, FullBand())
	assert.False(t, strings.HasPrefix(set[TierNone], "Core\n"), "header only with IncludeHelp")

	empty := &cog.Cog{Name: "Blank"}
	empty.AddSlash(&cog.Command{Name: "noop", Description: "does nothing"})
	set, _ = Assemble(empty, AssembleOptions{IncludeHelp: true}, FullBand())
	assert.False(t, strings.HasPrefix(set[TierNone], "Blank\n"), "blank help gets no header")
}

func TestAssembleHiddenCommands(t *testing.T) {
	c := &cog.Cog{Name: "Secretive"}
	c.AddSlash(&cog.Command{Name: "visible", Description: "shown"})
	c.AddSlash(&cog.Command{Name: "sneaky", Description: "not shown", Hidden: true})

	set, _ := Assemble(c, AssembleOptions{}, FullBand())
	assert.Contains(t, set[TierNone], "visible")
	assert.NotContains(t, set[TierNone], "sneaky")

	set, _ = Assemble(c, AssembleOptions{IncludeHidden: true}, FullBand())
	assert.Contains(t, set[TierNone], "sneaky")
}

func TestAssembleExclusionPropagates(t *testing.T) {
	// A parent with no documentable content poisons its whole subtree,
	// even when the children themselves would render.
	c := &cog.Cog{Name: "Settings"}
	parent := &cog.Command{Name: "config"}
	c.AddSlash(parent)
	parent.AddChild(&cog.Command{Name: "show", Description: "Show the current config"})
	parent.AddChild(&cog.Command{Name: "reset", Description: "Reset the config"})
	c.AddSlash(&cog.Command{Name: "status", Description: "Service status"})

	set, rows := Assemble(c, AssembleOptions{}, FullBand())
	assert.NotContains(t, set[TierNone], "config show")
	assert.NotContains(t, set[TierNone], "config reset")
	assert.Contains(t, set[TierNone], "status")
	require.Len(t, rows, 1)
	assert.Equal(t, "status command for Settings cog", rows[0].Name)
}

func TestAssembleBandSkipDoesNotPropagate(t *testing.T) {
	// A parent filtered out by the band is skipped on its own; children
	// with a tier inside the band still render.
	c := &cog.Cog{Name: "Admin"}
	parent := &cog.Command{
		Name:        "guildset",
		Description: "Guild settings",
		Requires:    cog.Requirements{Permissions: discordgo.PermissionAdministrator},
	}
	c.AddSlash(parent)
	parent.AddChild(&cog.Command{Name: "view", Description: "View settings"})

	set, _ := Assemble(c, AssembleOptions{}, Band{Min: TierNone, Max: TierMod})
	assert.NotContains(t, set[TierAdmin], "guildset")
	assert.Contains(t, set[TierNone], "guildset view")
}

func TestAssembleRows(t *testing.T) {
	c := coreFixture()
	set, rows := Assemble(c, AssembleOptions{}, FullBand())
	require.Len(t, rows, 2)

	assert.Equal(t, "ping command for Core cog", rows[0].Name)
	assert.Equal(t, "shutdown command for Core cog", rows[1].Name)
	for _, row := range rows {
		assert.True(t, strings.HasPrefix(row.Text, row.Name+"\n"))
	}

	// Every row's rendered body also lives in exactly the tier blob the
	// command classifies into.
	body := strings.TrimPrefix(rows[1].Text, rows[1].Name+"\n")
	assert.Contains(t, set[TierBotOwner], body)
}

func TestAssembleDeterministic(t *testing.T) {
	opts := AssembleOptions{IncludeHelp: true, ExtendedInfo: true}
	setA, rowsA := Assemble(coreFixture(), opts, FullBand())
	setB, rowsB := Assemble(coreFixture(), opts, FullBand())
	assert.Equal(t, setA, setB)
	assert.Equal(t, rowsA, rowsB)
}

func TestAssembleMessagePassAfterSlash(t *testing.T) {
	c := &cog.Cog{Name: "Fun"}
	c.AddMessage(&cog.Command{Name: "roll", Description: "Roll some dice"})
	c.AddSlash(&cog.Command{Name: "joke", Description: "Tell a joke"})

	_, rows := Assemble(c, AssembleOptions{}, FullBand())
	require.Len(t, rows, 2)
	assert.Equal(t, "joke command for Fun cog", rows[0].Name)
	assert.Equal(t, "roll command for Fun cog", rows[1].Name)
}
