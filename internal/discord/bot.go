// Package discord wires the command registry to a live gateway
// session: intents, handler dispatch, slash registration and the tier
// resolver injected into the middleware chain.
package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/LeDeathAmongst/vrt-cogs/internal/bot"
	"github.com/LeDeathAmongst/vrt-cogs/internal/cog"
	"github.com/LeDeathAmongst/vrt-cogs/internal/config"
	"github.com/LeDeathAmongst/vrt-cogs/internal/core"
	"github.com/LeDeathAmongst/vrt-cogs/internal/docs"
	"github.com/LeDeathAmongst/vrt-cogs/internal/storage"
)

// Bot owns the Discord session and dispatches interactions to the
// command registry.
type Bot struct {
	dg    *discordgo.Session
	cfg   *config.Config
	store *storage.Storage
	cogs  *cog.Registry
}

func NewBot(cfg *config.Config, store *storage.Storage, cogs *cog.Registry) *Bot {
	b := &Bot{cfg: cfg, store: store, cogs: cogs}

	core.SetTierResolver(func(s *discordgo.Session, guildID string, m *discordgo.Member) docs.Tier {
		return ResolveTier(s, cfg, guildID, m)
	})
	core.SetResponder(bot.RespondEphemeral)

	return b
}

// Run opens the gateway session and blocks until the context is done.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onInteractionCreate)
	dg.AddHandler(b.onMessageCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received, closing session")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Info().Str("user", r.User.Username).Msg("bot is ready")
	if err := b.registerCommands(); err != nil {
		log.Error().Err(err).Msg("failed to register commands")
	}
}

func (b *Bot) slashContext(s *discordgo.Session, i *discordgo.InteractionCreate) *core.SlashContext {
	return &core.SlashContext{
		Session: s,
		Event:   i,
		Store:   b.store,
		Cogs:    b.cogs,
		Cfg:     b.cfg,
	}
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		cmd, ok := core.Get(name)
		if !ok {
			log.Warn().Str("command", name).Msg("unknown command")
			return
		}
		if err := cmd.Run(b.slashContext(s, i)); err != nil {
			log.Error().Err(err).Str("command", name).Msg("command failed")
			_ = bot.RespondEphemeral(s, i, fmt.Sprintf("Error running command: %v", err))
		}

	case discordgo.InteractionApplicationCommandAutocomplete:
		name := i.ApplicationCommandData().Name
		cmd, ok := core.Get(name)
		if !ok {
			return
		}
		provider, ok := core.Root(cmd).(core.AutocompleteProvider)
		if !ok {
			return
		}
		choices := provider.Autocomplete(b.slashContext(s, i))
		err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionApplicationCommandAutocompleteResult,
			Data: &discordgo.InteractionResponseData{Choices: choices},
		})
		if err != nil {
			log.Warn().Err(err).Str("command", name).Msg("autocomplete response failed")
		}
	}
}

// onMessageCreate routes mention-prefixed messages to message commands.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == s.State.User.ID {
		return
	}

	mentioned := false
	for _, user := range m.Mentions {
		if user.ID == s.State.User.ID {
			mentioned = true
			break
		}
	}
	if !mentioned {
		return
	}

	ctx := &core.MessageContext{
		Session: s,
		Event:   m,
		Store:   b.store,
		Cogs:    b.cogs,
		Cfg:     b.cfg,
	}
	for _, cmd := range core.All() {
		if _, ok := core.Root(cmd).(core.MessageHandler); !ok {
			continue
		}
		if err := cmd.Run(ctx); err != nil {
			log.Error().Err(err).Str("command", cmd.Name()).Msg("message command failed")
		}
	}
}

// registerCommands pushes slash definitions to Discord, skipping any
// whose stable hash is unchanged since the last run.
func (b *Bot) registerCommands() error {
	appID := b.dg.State.User.ID
	if appID == "" {
		user, err := b.dg.User("@me")
		if err != nil {
			return fmt.Errorf("failed to fetch bot user: %w", err)
		}
		appID = user.ID
	}

	known := loadCommandHashes()
	updated := make(map[string]string, len(known))

	for _, cmd := range core.All() {
		sp, ok := core.Root(cmd).(core.SlashProvider)
		if !ok {
			continue
		}
		def := sp.SlashDefinition()
		if def == nil {
			continue
		}
		if def.Type == 0 {
			def.Type = discordgo.ChatApplicationCommand
		}

		hash := hashCommand(def)
		updated[def.Name] = hash
		if known[def.Name] == hash {
			continue
		}

		if _, err := b.dg.ApplicationCommandCreate(appID, "", def); err != nil {
			log.Error().Err(err).Str("command", def.Name).Msg("failed to register command")
			continue
		}
		log.Info().Str("command", def.Name).Msg("registered command")
	}

	saveCommandHashes(updated)
	return nil
}

// BotName returns the session's display name once ready.
func (b *Bot) BotName() string {
	if b.dg != nil && b.dg.State != nil && b.dg.State.User != nil {
		return strings.TrimSpace(b.dg.State.User.Username)
	}
	return ""
}
