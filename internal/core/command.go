// Package core defines the bot command contract, the registry commands
// self-register into, and the middleware chain wrapped around them.
package core

import (
	"github.com/bwmarrin/discordgo"

	"github.com/LeDeathAmongst/vrt-cogs/internal/cog"
	"github.com/LeDeathAmongst/vrt-cogs/internal/config"
	"github.com/LeDeathAmongst/vrt-cogs/internal/storage"
)

// Command is one invocable bot command.
type Command interface {
	Name() string
	Description() string
	Cog() string
	Hidden() bool
	Requires() cog.Requirements
	Run(ctx interface{}) error
}

// SlashProvider marks commands registered with Discord as slash commands.
type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}

// AutocompleteProvider marks commands that answer autocomplete queries.
type AutocompleteProvider interface {
	Autocomplete(ctx *SlashContext) []*discordgo.ApplicationCommandOptionChoice
}

// MessageHandler marks commands triggered by mention-prefixed messages.
type MessageHandler interface {
	Message(ctx *MessageContext) error
}

// SlashContext is what the runtime hands a command for a slash interaction.
type SlashContext struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Store   *storage.Storage
	Cogs    *cog.Registry
	Cfg     *config.Config
}

// MessageContext is what the runtime hands a command for a message trigger.
type MessageContext struct {
	Session *discordgo.Session
	Event   *discordgo.MessageCreate
	Store   *storage.Storage
	Cogs    *cog.Registry
	Cfg     *config.Config
}
