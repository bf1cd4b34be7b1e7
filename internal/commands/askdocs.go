package commands

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/LeDeathAmongst/vrt-cogs/internal/assistant"
	"github.com/LeDeathAmongst/vrt-cogs/internal/bot"
	"github.com/LeDeathAmongst/vrt-cogs/internal/cog"
	"github.com/LeDeathAmongst/vrt-cogs/internal/core"
)

func init() {
	core.DescribeCog("assistant", "Documentation lookups for the assistant integration.")
	core.Register(core.ApplyMiddlewares(
		&AskDocsCommand{},
		core.WithCommandLog(),
		core.WithGuildOnly(),
	))
}

// AskDocsCommand fronts the assistant lookup service over a slash
// command so members can query command documentation in place.
type AskDocsCommand struct {
	once sync.Once
	svc  *assistant.Service
}

func (c *AskDocsCommand) Name() string               { return "askdocs" }
func (c *AskDocsCommand) Description() string        { return "Query command and cog documentation" }
func (c *AskDocsCommand) Cog() string                { return "assistant" }
func (c *AskDocsCommand) Hidden() bool               { return false }
func (c *AskDocsCommand) Requires() cog.Requirements { return cog.Requirements{} }

func (c *AskDocsCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "lookup",
				Description: "What to look up",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Command info", Value: "command_info"},
					{Name: "Command names for a cog", Value: "command_names"},
					{Name: "Cog description", Value: "cog_info"},
					{Name: "Loaded cogs", Value: "cog_list"},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "query",
				Description: "Command or cog name, where applicable",
			},
		},
	}
}

func (c *AskDocsCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*core.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	c.once.Do(func() {
		botName := ""
		if slash.Session.State != nil && slash.Session.State.User != nil {
			botName = slash.Session.State.User.Username
		}
		c.svc = assistant.New(slash.Cogs, "/", botName)
	})

	var lookup, query string
	for _, opt := range slash.Event.ApplicationCommandData().Options {
		switch opt.Name {
		case "lookup":
			lookup = opt.StringValue()
		case "query":
			query = opt.StringValue()
		}
	}

	var answer string
	switch lookup {
	case "command_info":
		tier := core.ResolveMemberTier(slash.Session, slash.Event.GuildID, slash.Event.Member)
		answer = c.svc.CommandInfo(tier, query)
	case "command_names":
		answer = c.svc.CommandNames(query)
	case "cog_info":
		answer = c.svc.CogInfo(query)
	case "cog_list":
		answer = c.svc.CogList()
	default:
		answer = "Unknown lookup"
	}

	return bot.RespondEphemeral(slash.Session, slash.Event, answer)
}
