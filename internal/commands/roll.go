package commands

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/LeDeathAmongst/vrt-cogs/internal/cog"
	"github.com/LeDeathAmongst/vrt-cogs/internal/core"
)

func init() {
	core.DescribeCog("fun", "Small diversions.")
	core.Register(core.ApplyMiddlewares(
		&RollCommand{},
		core.WithGuildOnly(),
	))
}

// RollCommand is a message-triggered command: mention the bot with
// "roll" to get a d20. It exists mostly so the general-command
// traversal pass has something to document.
type RollCommand struct{}

func (c *RollCommand) Name() string               { return "roll" }
func (c *RollCommand) Description() string        { return "Roll a twenty-sided die" }
func (c *RollCommand) Cog() string                { return "fun" }
func (c *RollCommand) Hidden() bool               { return false }
func (c *RollCommand) Requires() cog.Requirements { return cog.Requirements{} }

func (c *RollCommand) Run(ctx interface{}) error {
	if v, ok := ctx.(*core.MessageContext); ok {
		return c.Message(v)
	}
	return nil
}

func (c *RollCommand) Message(ctx *core.MessageContext) error {
	if !strings.Contains(strings.ToLower(ctx.Event.Content), "roll") {
		return nil
	}
	reply := fmt.Sprintf("<@%s> rolled a %d", ctx.Event.Author.ID, rand.Intn(20)+1)
	_, err := ctx.Session.ChannelMessageSend(ctx.Event.ChannelID, reply)
	return err
}
