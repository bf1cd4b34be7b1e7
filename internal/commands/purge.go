package commands

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/LeDeathAmongst/vrt-cogs/internal/bot"
	"github.com/LeDeathAmongst/vrt-cogs/internal/cog"
	"github.com/LeDeathAmongst/vrt-cogs/internal/core"
)

func init() {
	core.DescribeCog("moderation", "Moderation tools for keeping channels tidy.")
	core.Register(core.ApplyMiddlewares(
		&PurgeCommand{},
		core.WithCommandLog(),
		core.WithTierCheck(),
		core.WithGuildOnly(),
	))
}

type PurgeCommand struct{}

func (c *PurgeCommand) Name() string        { return "purge" }
func (c *PurgeCommand) Description() string { return "Bulk delete recent messages in this channel" }
func (c *PurgeCommand) Cog() string         { return "moderation" }
func (c *PurgeCommand) Hidden() bool        { return false }

func (c *PurgeCommand) Requires() cog.Requirements {
	return cog.Requirements{Permissions: discordgo.PermissionManageMessages}
}

func (c *PurgeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "How many messages to delete (max 100)",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "author",
				Description: "Only delete messages from this user",
			},
		},
	}
}

func (c *PurgeCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*core.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	var amount int64
	var author *discordgo.User
	for _, opt := range slash.Event.ApplicationCommandData().Options {
		switch opt.Name {
		case "amount":
			amount = opt.IntValue()
		case "author":
			author = opt.UserValue(slash.Session)
		}
	}
	if amount < 1 || amount > 100 {
		return bot.RespondEphemeral(slash.Session, slash.Event, "Amount must be between 1 and 100.")
	}

	msgs, err := slash.Session.ChannelMessages(slash.Event.ChannelID, int(amount), "", "", "")
	if err != nil {
		return fmt.Errorf("failed to list messages: %w", err)
	}

	var ids []string
	for _, m := range msgs {
		if author != nil && m.Author.ID != author.ID {
			continue
		}
		ids = append(ids, m.ID)
	}
	if len(ids) > 0 {
		if err := slash.Session.ChannelMessagesBulkDelete(slash.Event.ChannelID, ids); err != nil {
			return fmt.Errorf("failed to bulk delete: %w", err)
		}
	}

	return bot.RespondEphemeral(slash.Session, slash.Event,
		fmt.Sprintf("Deleted %d messages.", len(ids)))
}
