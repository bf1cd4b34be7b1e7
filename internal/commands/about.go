package commands

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/LeDeathAmongst/vrt-cogs/internal/bot"
	"github.com/LeDeathAmongst/vrt-cogs/internal/cog"
	"github.com/LeDeathAmongst/vrt-cogs/internal/core"
	"github.com/LeDeathAmongst/vrt-cogs/internal/version"
)

func init() {
	core.Register(core.ApplyMiddlewares(
		&AboutCommand{},
		core.WithCommandLog(),
	))
}

type AboutCommand struct{}

func (c *AboutCommand) Name() string               { return "about" }
func (c *AboutCommand) Description() string        { return "Show bot version and links" }
func (c *AboutCommand) Cog() string                { return "core" }
func (c *AboutCommand) Hidden() bool               { return false }
func (c *AboutCommand) Requires() cog.Requirements { return cog.Requirements{} }

func (c *AboutCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *AboutCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*core.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	msg := fmt.Sprintf("%s %s\n%s", version.AppName, version.AppVersion, version.RepoURL)
	return bot.RespondEphemeral(slash.Session, slash.Event, msg)
}
