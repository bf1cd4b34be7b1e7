package commands

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/LeDeathAmongst/vrt-cogs/internal/bot"
	"github.com/LeDeathAmongst/vrt-cogs/internal/cog"
	"github.com/LeDeathAmongst/vrt-cogs/internal/core"
)

func init() {
	core.Register(core.ApplyMiddlewares(
		&AnnounceCommand{},
		core.WithCommandLog(),
		core.WithTierCheck(),
		core.WithGuildOnly(),
	))
}

// AnnounceCommand posts server announcements. Subcommands exercise the
// nested descriptor path in the generated documentation.
type AnnounceCommand struct{}

func (c *AnnounceCommand) Name() string        { return "announce" }
func (c *AnnounceCommand) Description() string { return "Post a server announcement" }
func (c *AnnounceCommand) Cog() string         { return "moderation" }
func (c *AnnounceCommand) Hidden() bool        { return false }

func (c *AnnounceCommand) Requires() cog.Requirements {
	return cog.Requirements{Permissions: discordgo.PermissionManageServer}
}

func (c *AnnounceCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "send",
				Description: "Send an announcement to a channel",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionChannel,
						Name:        "channel",
						Description: "Channel to announce in",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "message",
						Description: "The announcement text, [botname] is substituted",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "preview",
				Description: "Preview an announcement without posting it",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "message",
						Description: "The announcement text",
						Required:    true,
					},
				},
			},
		},
	}
}

func (c *AnnounceCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*core.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	opts := slash.Event.ApplicationCommandData().Options
	if len(opts) == 0 {
		return bot.RespondEphemeral(slash.Session, slash.Event, "Nothing to announce.")
	}

	sub := opts[0]
	switch sub.Name {
	case "send":
		var channelID, message string
		for _, opt := range sub.Options {
			switch opt.Name {
			case "channel":
				channelID = opt.ChannelValue(slash.Session).ID
			case "message":
				message = opt.StringValue()
			}
		}
		if _, err := slash.Session.ChannelMessageSend(channelID, message); err != nil {
			return fmt.Errorf("failed to send announcement: %w", err)
		}
		return bot.RespondEphemeral(slash.Session, slash.Event, "Announcement sent.")
	case "preview":
		message := sub.Options[0].StringValue()
		return bot.RespondEphemeral(slash.Session, slash.Event, "Preview:\n"+message)
	default:
		return bot.RespondEphemeral(slash.Session, slash.Event, "Unknown subcommand.")
	}
}
