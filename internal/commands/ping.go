package commands

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/LeDeathAmongst/vrt-cogs/internal/bot"
	"github.com/LeDeathAmongst/vrt-cogs/internal/cog"
	"github.com/LeDeathAmongst/vrt-cogs/internal/core"
)

func init() {
	core.DescribeCog("core", "Core bot commands.")
	core.Register(core.ApplyMiddlewares(
		&PingCommand{},
		core.WithCommandLog(),
	))
}

type PingCommand struct{}

func (c *PingCommand) Name() string               { return "ping" }
func (c *PingCommand) Description() string        { return "Check the bot's latency" }
func (c *PingCommand) Cog() string                { return "core" }
func (c *PingCommand) Hidden() bool               { return false }
func (c *PingCommand) Requires() cog.Requirements { return cog.Requirements{} }

func (c *PingCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *PingCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*core.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	latency := slash.Session.HeartbeatLatency().Round(time.Millisecond)
	return bot.RespondEphemeral(slash.Session, slash.Event, fmt.Sprintf("Pong! %s", latency))
}
