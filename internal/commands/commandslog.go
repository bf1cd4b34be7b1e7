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
		&CommandsLogCommand{},
		core.WithTierCheck(),
		core.WithGuildOnly(),
	))
}

// CommandsLogCommand shows the recent command history persisted for the
// guild. Owner-only and hidden from the default help listing.
type CommandsLogCommand struct{}

func (c *CommandsLogCommand) Name() string        { return "commandslog" }
func (c *CommandsLogCommand) Description() string { return "Show recently used commands" }
func (c *CommandsLogCommand) Cog() string         { return "core" }
func (c *CommandsLogCommand) Hidden() bool        { return true }

func (c *CommandsLogCommand) Requires() cog.Requirements {
	return cog.Requirements{OwnerOnly: true}
}

func (c *CommandsLogCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *CommandsLogCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*core.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	history, err := slash.Store.GetCommandHistory(slash.Event.GuildID)
	if err != nil {
		return fmt.Errorf("failed to read command history: %w", err)
	}
	if len(history) == 0 {
		return bot.RespondEphemeral(slash.Session, slash.Event, "No commands logged yet.")
	}

	var sb strings.Builder
	for _, rec := range history {
		sb.WriteString(fmt.Sprintf("%s /%s by %s in #%s\n",
			rec.Datetime.Format("2006-01-02 15:04"), rec.Command, rec.Username, rec.ChannelName))
	}
	return bot.RespondEphemeral(slash.Session, slash.Event, sb.String())
}
