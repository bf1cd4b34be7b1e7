package commands

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/LeDeathAmongst/vrt-cogs/internal/bot"
	"github.com/LeDeathAmongst/vrt-cogs/internal/cog"
	"github.com/LeDeathAmongst/vrt-cogs/internal/core"
	"github.com/LeDeathAmongst/vrt-cogs/internal/docs"
	"github.com/LeDeathAmongst/vrt-cogs/internal/namecache"
	"github.com/LeDeathAmongst/vrt-cogs/pkg/jobmgr"
)

func init() {
	core.DescribeCog("autodocs", "Document your cogs with ease!\n\n"+
		"Easily create documentation for any cog in reStructuredText format.")
	core.Register(core.ApplyMiddlewares(
		&MakeDocsCommand{jobs: jobmgr.NewManager()},
		core.WithCommandLog(),
		core.WithRateLimit(5*time.Second, 2),
		core.WithTierCheck(),
		core.WithGuildOnly(),
	))
}

// MakeDocsCommand generates privilege-filtered documentation for one
// cog (or every loaded cog) and delivers it over Discord.
type MakeDocsCommand struct {
	jobs *jobmgr.Manager

	// lazily built cog-name list for autocomplete
	namesOnce sync.Once
	names     *namecache.Cache
}

func (c *MakeDocsCommand) Name() string        { return "makedocs" }
func (c *MakeDocsCommand) Description() string { return "Create documentation for a cog" }
func (c *MakeDocsCommand) Cog() string         { return "autodocs" }
func (c *MakeDocsCommand) Hidden() bool        { return false }

func (c *MakeDocsCommand) Requires() cog.Requirements {
	return cog.Requirements{OwnerOnly: true}
}

var tierChoices = func() []*discordgo.ApplicationCommandOptionChoice {
	var out []*discordgo.ApplicationCommandOptionChoice
	for _, t := range docs.Tiers() {
		out = append(out, &discordgo.ApplicationCommandOptionChoice{Name: t.String(), Value: t.String()})
	}
	return out
}()

func (c *MakeDocsCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "cog_name",
				Description:  "The cog to document, or 'all' for every loaded cog",
				Required:     true,
				Autocomplete: true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "replace_prefix",
				Description: "Replace all occurrences of [p] with the bot's prefix",
			},
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "replace_botname",
				Description: "Replace all occurrences of [botname] with the bot's name",
			},
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "extended_info",
				Description: "Include parameter types and descriptions",
			},
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "include_hidden",
				Description: "Include hidden commands",
			},
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "include_help",
				Description: "Include the cog help text at the top of the docs",
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "max_privilege_level",
				Description: "Hide commands above this privilege level",
				Choices:     tierChoices,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "min_privilege_level",
				Description: "Hide commands below this privilege level",
				Choices:     tierChoices,
			},
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "csv_export",
				Description: "Include a csv with each command isolated per row",
			},
		},
	}
}

// request carries the parsed makedocs options.
type request struct {
	cogName   string
	opts      docs.AssembleOptions
	band      docs.Band
	csvExport bool
}

func (c *MakeDocsCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*core.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	req, err := parseRequest(slash)
	if err != nil {
		return bot.RespondEphemeral(slash.Session, slash.Event, err.Error())
	}

	// Validate the target before deferring so NotFound answers fast.
	if req.cogName != "all" {
		if _, err := slash.Cogs.Get(req.cogName); err != nil {
			return bot.RespondEphemeral(slash.Session, slash.Event,
				"I could not find that cog, maybe it is not loaded?")
		}
	}

	if err := bot.RespondDeferred(slash.Session, slash.Event); err != nil {
		return fmt.Errorf("failed to defer response: %w", err)
	}

	// Rendering a large cog set takes non-trivial wall clock time; run
	// it off the gateway handler goroutine.
	jobName := "makedocs:" + slash.Event.GuildID
	err = c.jobs.StartAsync(jobName, func(context.Context) error {
		c.generate(slash, req)
		return nil
	})
	if err != nil {
		return bot.FollowupMessage(slash.Session, slash.Event,
			"Documentation is already being generated for this server, try again in a moment.")
	}
	return nil
}

func parseRequest(slash *core.SlashContext) (request, error) {
	req := request{
		opts: docs.AssembleOptions{IncludeHelp: true},
		band: docs.FullBand(),
	}

	botName := ""
	if slash.Session.State != nil && slash.Session.State.User != nil {
		botName = slash.Session.State.User.Username
	}
	req.opts.BotName = botName

	for _, opt := range slash.Event.ApplicationCommandData().Options {
		switch opt.Name {
		case "cog_name":
			req.cogName = opt.StringValue()
		case "replace_prefix":
			if opt.BoolValue() {
				req.opts.Prefix = "/"
			}
		case "replace_botname":
			req.opts.ReplaceBotName = opt.BoolValue()
		case "extended_info":
			req.opts.ExtendedInfo = opt.BoolValue()
		case "include_hidden":
			req.opts.IncludeHidden = opt.BoolValue()
		case "include_help":
			req.opts.IncludeHelp = opt.BoolValue()
		case "max_privilege_level":
			tier, err := docs.ParseTier(opt.StringValue())
			if err != nil {
				return req, err
			}
			req.band.Max = tier
		case "min_privilege_level":
			tier, err := docs.ParseTier(opt.StringValue())
			if err != nil {
				return req, err
			}
			req.band.Min = tier
		case "csv_export":
			req.csvExport = opt.BoolValue()
		}
	}

	if !req.band.Valid() {
		return req, fmt.Errorf("min privilege level %s is above max privilege level %s",
			req.band.Min, req.band.Max)
	}
	return req, nil
}

// generate runs on a worker goroutine: assembles the docs and delivers
// the artifacts, reporting size overruns instead of attempting delivery.
func (c *MakeDocsCommand) generate(slash *core.SlashContext, req request) {
	packager := docs.NewPackager(slash.Cogs, docs.DefaultIgnored)

	if req.cogName == "all" {
		arc, names, err := packager.BuildAll(req.opts, req.band, req.csvExport)
		if err != nil {
			c.deliverError(slash, err)
			return
		}
		log.Info().Int("cogs", len(names)).Int("bytes", len(arc.Data)).Msg("generated docs archive")
		err = bot.FollowupFile(slash.Session, slash.Event,
			"Here are the docs for all of your currently loaded cogs!", arc.Name, arc.Data)
		c.deliverError(slash, err)
		return
	}

	artifacts, err := packager.BuildCog(req.cogName, req.opts, req.band, req.csvExport)
	if err != nil {
		c.deliverError(slash, err)
		return
	}

	index := docs.GenerateIndex([]string{req.cogName})
	artifacts = append(artifacts, docs.Artifact{Name: "index.rst", Data: []byte(index)})

	for _, a := range artifacts {
		msg := fmt.Sprintf("Here are your docs for %s!", req.cogName)
		if err := bot.FollowupFile(slash.Session, slash.Event, msg, flatName(a.Name), a.Data); err != nil {
			c.deliverError(slash, err)
			return
		}
	}
}

func (c *MakeDocsCommand) deliverError(slash *core.SlashContext, err error) {
	switch {
	case err == nil:
		return
	case errors.Is(err, bot.ErrTooLarge):
		_ = bot.FollowupMessage(slash.Session, slash.Event, "File size too large!")
	case errors.Is(err, cog.ErrNotFound):
		_ = bot.FollowupMessage(slash.Session, slash.Event,
			"I could not find that cog, maybe it is not loaded?")
	default:
		log.Error().Err(err).Msg("failed to generate docs")
		_ = bot.FollowupMessage(slash.Session, slash.Event, "Something went wrong generating the docs.")
	}
}

// flatName turns a tiered artifact path into a Discord-safe filename.
func flatName(name string) string {
	out := make([]byte, len(name))
	for i := 0; i < len(name); i++ {
		if name[i] == '/' {
			out[i] = '_'
		} else {
			out[i] = name[i]
		}
	}
	return string(out)
}

// Autocomplete answers cog_name suggestions from the short-lived name
// cache.
func (c *MakeDocsCommand) Autocomplete(ctx *core.SlashContext) []*discordgo.ApplicationCommandOptionChoice {
	cogs := ctx.Cogs
	c.namesOnce.Do(func() {
		c.names = namecache.New(8*time.Second, nil, func() []string {
			return cogs.Names()
		})
	})

	query := ""
	for _, opt := range ctx.Event.ApplicationCommandData().Options {
		if opt.Name == "cog_name" && opt.Focused {
			query = opt.StringValue()
		}
	}

	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, name := range c.names.Matches(query, 25) {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: name, Value: name})
	}
	return choices
}
