package core

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/LeDeathAmongst/vrt-cogs/internal/cog"
)

// BuildCogs converts the registered commands into read-only descriptor
// trees grouped by cog. Built once at startup; the docs engine and the
// assistant lookups traverse the result.
func BuildCogs() *cog.Registry {
	reg := cog.NewRegistry()
	for _, c := range All() {
		root := Root(c)
		bundle := reg.GetOrCreate(root.Cog())
		if bundle.Help == "" {
			bundle.Help = CogHelp(root.Cog())
		}

		desc := Descriptor(root)
		if _, ok := root.(SlashProvider); ok {
			bundle.AddSlash(desc)
		} else {
			bundle.AddMessage(desc)
		}
	}
	return reg
}

// Descriptor builds the documentation descriptor for one command,
// expanding slash options into parameters and subcommand children.
func Descriptor(c Command) *cog.Command {
	desc := &cog.Command{
		Name:          c.Name(),
		QualifiedName: c.Name(),
		Description:   c.Description(),
		Hidden:        c.Hidden(),
		Requires:      c.Requires(),
	}

	if sp, ok := c.(SlashProvider); ok {
		if def := sp.SlashDefinition(); def != nil {
			expandOptions(desc, def.Options)
		}
	}
	return desc
}

func expandOptions(parent *cog.Command, opts []*discordgo.ApplicationCommandOption) {
	for _, opt := range opts {
		switch opt.Type {
		case discordgo.ApplicationCommandOptionSubCommand,
			discordgo.ApplicationCommandOptionSubCommandGroup:
			child := parent.AddChild(&cog.Command{
				Name:        opt.Name,
				Description: opt.Description,
				Requires:    parent.Requires,
			})
			expandOptions(child, opt.Options)
		default:
			parent.Params = append(parent.Params, cog.Param{
				Name:        opt.Name,
				TypeHint:    optionTypeHint(opt.Type),
				Description: opt.Description,
				Required:    opt.Required,
				Default:     optionDefault(opt),
			})
		}
	}
}

func optionTypeHint(t discordgo.ApplicationCommandOptionType) string {
	switch t {
	case discordgo.ApplicationCommandOptionString:
		return "string"
	case discordgo.ApplicationCommandOptionInteger:
		return "integer"
	case discordgo.ApplicationCommandOptionBoolean:
		return "boolean"
	case discordgo.ApplicationCommandOptionUser:
		return "user"
	case discordgo.ApplicationCommandOptionChannel:
		return "channel"
	case discordgo.ApplicationCommandOptionRole:
		return "role"
	case discordgo.ApplicationCommandOptionNumber:
		return "number"
	case discordgo.ApplicationCommandOptionAttachment:
		return "attachment"
	default:
		return "value"
	}
}

// optionDefault surfaces the first choice as the displayed default for
// optional choice-restricted options.
func optionDefault(opt *discordgo.ApplicationCommandOption) string {
	if opt.Required || len(opt.Choices) == 0 {
		return ""
	}
	return fmt.Sprintf("%v", opt.Choices[0].Value)
}
