package core

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/LeDeathAmongst/vrt-cogs/internal/docs"
	"github.com/LeDeathAmongst/vrt-cogs/internal/storage"
)

type Middleware func(Command) Command

type wrappedCommand struct {
	Command
	wrap func(ctx interface{}) error
}

func (w *wrappedCommand) Run(ctx interface{}) error {
	if w.wrap != nil {
		return w.wrap(ctx)
	}
	return w.Command.Run(ctx)
}

func (w *wrappedCommand) Unwrap() Command { return w.Command }

func (w *wrappedCommand) SlashDefinition() *discordgo.ApplicationCommand {
	if sp, ok := Root(w.Command).(SlashProvider); ok {
		return sp.SlashDefinition()
	}
	return nil
}

// ApplyMiddlewares wraps a command, innermost first.
func ApplyMiddlewares(cmd Command, mws ...Middleware) Command {
	for _, mw := range mws {
		cmd = mw(cmd)
	}
	return cmd
}

// WithGuildOnly drops invocations that arrive outside a guild.
func WithGuildOnly() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx interface{}) error {
				switch v := ctx.(type) {
				case *SlashContext:
					if v.Event.GuildID == "" {
						return nil
					}
				case *MessageContext:
					if v.Event.GuildID == "" {
						return nil
					}
				}
				return cmd.Run(ctx)
			},
		}
	}
}

// TierResolver resolves a member's privilege tier. Injected by the
// discord package so core never imports session helpers.
type TierResolver func(s *discordgo.Session, guildID string, m *discordgo.Member) docs.Tier

// Responder delivers a plain refusal message. Injected for the same reason.
type Responder func(s *discordgo.Session, e *discordgo.InteractionCreate, msg string) error

var (
	resolveTier TierResolver
	refuse      Responder
)

// SetTierResolver installs the tier resolver middleware relies on.
func SetTierResolver(f TierResolver) { resolveTier = f }

// SetResponder installs the refusal responder middleware relies on.
func SetResponder(f Responder) { refuse = f }

// ResolveMemberTier resolves a member's tier via the injected resolver,
// defaulting to the open tier when no resolver is installed.
func ResolveMemberTier(s *discordgo.Session, guildID string, m *discordgo.Member) docs.Tier {
	if resolveTier == nil || m == nil {
		return docs.TierNone
	}
	return resolveTier(s, guildID, m)
}

// WithTierCheck refuses commands whose classified tier exceeds the
// invoking member's resolved tier.
func WithTierCheck() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx interface{}) error {
				v, ok := ctx.(*SlashContext)
				if !ok {
					return cmd.Run(ctx)
				}
				if v.Event.GuildID == "" || v.Event.Member == nil || resolveTier == nil {
					return cmd.Run(ctx)
				}

				required := docs.Classify(Descriptor(Root(cmd)))
				have := resolveTier(v.Session, v.Event.GuildID, v.Event.Member)
				if have < required {
					if refuse != nil {
						return refuse(v.Session, v.Event,
							"You do not have the required privilege level to use this command.")
					}
					return nil
				}
				return cmd.Run(ctx)
			},
		}
	}
}

// WithCommandLog records each slash invocation to storage.
func WithCommandLog() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx interface{}) error {
				if v, ok := ctx.(*SlashContext); ok && v.Store != nil && v.Event.Member != nil {
					err := logCommand(v.Session, v.Store, v.Event, cmd.Name())
					if err != nil {
						log.Warn().Err(err).Str("command", cmd.Name()).Msg("failed to log command")
					}
				}
				return cmd.Run(ctx)
			},
		}
	}
}

func logCommand(s *discordgo.Session, store *storage.Storage, e *discordgo.InteractionCreate, name string) error {
	channelName := ""
	if ch, err := s.State.Channel(e.ChannelID); err == nil && ch != nil {
		channelName = ch.Name
	}
	guildName := ""
	if g, err := s.State.Guild(e.GuildID); err == nil && g != nil {
		guildName = g.Name
	}
	return store.SetCommand(e.GuildID, storage.CommandHistoryRecord{
		ChannelID:   e.ChannelID,
		ChannelName: channelName,
		GuildName:   guildName,
		UserID:      e.Member.User.ID,
		Username:    e.Member.User.Username,
		Command:     name,
		Datetime:    time.Now().UTC(),
	})
}

// WithRateLimit throttles a command with a shared token bucket. Over
// the limit the invocation is refused, not queued.
func WithRateLimit(every time.Duration, burst int) Middleware {
	limiter := rate.NewLimiter(rate.Every(every), burst)
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx interface{}) error {
				if v, ok := ctx.(*SlashContext); ok && !limiter.Allow() {
					if refuse != nil {
						return refuse(v.Session, v.Event,
							"Slow down, documentation is still being generated. Try again shortly.")
					}
					return nil
				}
				return cmd.Run(ctx)
			},
		}
	}
}
