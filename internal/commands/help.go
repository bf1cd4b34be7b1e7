package commands

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/LeDeathAmongst/vrt-cogs/internal/bot"
	"github.com/LeDeathAmongst/vrt-cogs/internal/cog"
	"github.com/LeDeathAmongst/vrt-cogs/internal/core"
)

func init() {
	core.Register(core.ApplyMiddlewares(
		&HelpCommand{},
		core.WithCommandLog(),
	))
}

type HelpCommand struct{}

func (c *HelpCommand) Name() string               { return "help" }
func (c *HelpCommand) Description() string        { return "Get a list of available commands" }
func (c *HelpCommand) Cog() string                { return "core" }
func (c *HelpCommand) Hidden() bool               { return false }
func (c *HelpCommand) Requires() cog.Requirements { return cog.Requirements{} }

func (c *HelpCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *HelpCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*core.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	var sb strings.Builder
	for _, name := range slash.Cogs.Names() {
		bundle, err := slash.Cogs.Get(name)
		if err != nil {
			continue
		}
		cmds := append(bundle.WalkSlash(), bundle.WalkMessage()...)
		if len(cmds) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("**%s**\n", name))
		for _, cmd := range cmds {
			if cmd.Hidden || cmd.Parent != nil {
				continue
			}
			sb.WriteString(fmt.Sprintf("`%s` - %s\n", cmd.QualifiedName, cmd.Description))
		}
		sb.WriteString("\n")
	}

	return bot.RespondEphemeral(slash.Session, slash.Event, sb.String())
}
