package core

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeDeathAmongst/vrt-cogs/internal/cog"
)

type fakeCommand struct {
	name     string
	desc     string
	cogName  string
	hidden   bool
	requires cog.Requirements
	def      *discordgo.ApplicationCommand
	runs     int
}

func (f *fakeCommand) Name() string               { return f.name }
func (f *fakeCommand) Description() string        { return f.desc }
func (f *fakeCommand) Cog() string                { return f.cogName }
func (f *fakeCommand) Hidden() bool               { return f.hidden }
func (f *fakeCommand) Requires() cog.Requirements { return f.requires }
func (f *fakeCommand) Run(ctx interface{}) error  { f.runs++; return nil }

func (f *fakeCommand) SlashDefinition() *discordgo.ApplicationCommand { return f.def }

func TestDescriptorExpandsOptions(t *testing.T) {
	fake := &fakeCommand{
		name:    "makedocs",
		desc:    "Generate documentation",
		cogName: "autodocs",
		def: &discordgo.ApplicationCommand{
			Name: "makedocs",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "cog_name",
					Description: "Cog to document",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "max_privilege_level",
					Description: "Upper tier bound",
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "botowner", Value: "botowner"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "include_hidden",
					Description: "Include hidden commands",
				},
			},
		},
	}

	desc := Descriptor(fake)
	assert.Equal(t, "makedocs", desc.QualifiedName)
	require.Len(t, desc.Params, 3)

	assert.Equal(t, cog.Param{
		Name: "cog_name", TypeHint: "string",
		Description: "Cog to document", Required: true,
	}, desc.Params[0])
	assert.Equal(t, "botowner", desc.Params[1].Default,
		"first choice surfaces as the default for optional options")
	assert.Equal(t, "boolean", desc.Params[2].TypeHint)
}

func TestDescriptorExpandsSubcommands(t *testing.T) {
	fake := &fakeCommand{
		name:     "announce",
		desc:     "Server announcements",
		cogName:  "moderation",
		requires: cog.Requirements{Permissions: discordgo.PermissionManageServer},
		def: &discordgo.ApplicationCommand{
			Name: "announce",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "send",
					Description: "Post the announcement",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "text",
							Description: "Announcement body",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "preview",
					Description: "Preview without posting",
				},
			},
		},
	}

	desc := Descriptor(fake)
	require.Len(t, desc.Children, 2)

	send := desc.Children[0]
	assert.Equal(t, "announce send", send.QualifiedName)
	assert.Equal(t, fake.requires, send.Requires, "children inherit the parent's requirements")
	require.Len(t, send.Params, 1)
	assert.Equal(t, "text", send.Params[0].Name)

	assert.Equal(t, "announce preview", desc.Children[1].QualifiedName)
	assert.Empty(t, desc.Children[1].Params)
}

func TestRootUnwrapsMiddlewares(t *testing.T) {
	fake := &fakeCommand{name: "ping", cogName: "core"}

	wrapped := ApplyMiddlewares(fake, WithGuildOnly(), WithTierCheck())
	assert.NotSame(t, fake, wrapped)
	assert.Same(t, fake, Root(wrapped))

	_, ok := Root(wrapped).(SlashProvider)
	assert.True(t, ok, "provider assertions must reach the real type")
}

func TestWithGuildOnly(t *testing.T) {
	fake := &fakeCommand{name: "guilded", cogName: "core"}
	wrapped := ApplyMiddlewares(fake, WithGuildOnly())

	dm := &SlashContext{Event: &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{GuildID: ""},
	}}
	require.NoError(t, wrapped.Run(dm))
	assert.Zero(t, fake.runs, "DM invocations are dropped")

	inGuild := &SlashContext{Event: &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{GuildID: "guild-1"},
	}}
	require.NoError(t, wrapped.Run(inGuild))
	assert.Equal(t, 1, fake.runs)
}

func TestBuildCogsGroupsByCog(t *testing.T) {
	Register(&fakeCommand{name: "zz_probe_slash", desc: "probe", cogName: "probe", def: &discordgo.ApplicationCommand{Name: "zz_probe_slash"}})
	Register(&fakeCommand{name: "zz_probe_other", desc: "probe", cogName: "probe"})
	DescribeCog("probe", "Probe cog help.")

	reg := BuildCogs()
	bundle, err := reg.Get("probe")
	require.NoError(t, err)
	assert.Equal(t, "Probe cog help.", bundle.Help)

	var slash, message []string
	for _, cmd := range bundle.WalkSlash() {
		slash = append(slash, cmd.Name)
	}
	for _, cmd := range bundle.WalkMessage() {
		message = append(message, cmd.Name)
	}
	assert.Contains(t, slash, "zz_probe_slash")
	assert.Contains(t, slash, "zz_probe_other",
		"slash-capable commands register as slash descriptors")
	assert.Empty(t, message)
}
