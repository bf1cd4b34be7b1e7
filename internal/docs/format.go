package docs

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/LeDeathAmongst/vrt-cogs/internal/cog"
)

// Placeholder tokens understood by command descriptions.
const (
	prefixToken  = "[p]"
	botnameToken = "[botname]"
)

// RenderOptions controls how a single command is formatted. The Min/Max
// tiers are carried for display only; inclusion filtering is the
// assembler's job.
type RenderOptions struct {
	Prefix         string // empty disables [p] substitution
	BotName        string
	ReplaceBotName bool
	ExtendedInfo   bool
	EmbeddingStyle bool // flat text, no rst markup
	MinTier        Tier
	MaxTier        Tier
}

// Renderer formats one command descriptor into a documentation block.
// It is stateless apart from its options; Render is a pure function of
// the descriptor.
type Renderer struct {
	opts RenderOptions
}

func NewRenderer(opts RenderOptions) *Renderer {
	return &Renderer{opts: opts}
}

// Render returns the documentation block for a command, or "" when the
// command has no documentable content. Callers must treat "" as "omit
// silently", not as an error.
func (r *Renderer) Render(c *cog.Command) string {
	if c.Description == "" && len(c.Params) == 0 {
		return ""
	}

	var sb strings.Builder

	name := c.QualifiedName
	if r.opts.EmbeddingStyle {
		sb.WriteString(name + "\n")
	} else {
		sb.WriteString(name + "\n" + strings.Repeat("-", len(name)) + "\n")
	}

	usage := prefixToken + name
	for _, p := range c.Params {
		usage += " " + paramSyntax(p)
	}
	if r.opts.EmbeddingStyle {
		sb.WriteString("\nUsage: " + usage + "\n")
	} else {
		sb.WriteString("\n.. code-block:: text\n\n    " + usage + "\n")
	}

	if c.Description != "" {
		sb.WriteString("\n" + c.Description + "\n")
	}

	if tier := Classify(c); tier > TierNone {
		if r.opts.EmbeddingStyle {
			sb.WriteString("\nRestricted to: " + tier.String() + "\n")
		} else {
			sb.WriteString("\nRestricted to: ``" + tier.String() + "``\n")
		}
		if perms := permissionNames(c.Requires.Permissions); len(perms) > 0 {
			sb.WriteString("Required permissions: " + strings.Join(perms, ", ") + "\n")
		}
	}

	if r.opts.ExtendedInfo && len(c.Params) > 0 {
		sb.WriteString("\nParameters:\n")
		for _, p := range c.Params {
			line := fmt.Sprintf(" - %s (%s)", p.Name, p.TypeHint)
			if p.Description != "" {
				line += ": " + p.Description
			}
			if p.Default != "" {
				line += fmt.Sprintf(" (default: %s)", p.Default)
			}
			sb.WriteString(line + "\n")
		}
	}

	return r.substitute(strings.TrimRight(sb.String(), "\n"))
}

// substitute resolves placeholder tokens when the matching flags are set.
func (r *Renderer) substitute(s string) string {
	if r.opts.Prefix != "" {
		s = strings.ReplaceAll(s, prefixToken, r.opts.Prefix)
	}
	if r.opts.ReplaceBotName && r.opts.BotName != "" {
		s = strings.ReplaceAll(s, botnameToken, r.opts.BotName)
	}
	return s
}

func paramSyntax(p cog.Param) string {
	if p.Required {
		return "<" + p.Name + ">"
	}
	if p.Default != "" {
		return "[" + p.Name + "=" + p.Default + "]"
	}
	return "[" + p.Name + "]"
}

var permissionLabels = []struct {
	bit  int64
	name string
}{
	{discordgo.PermissionAdministrator, "Administrator"},
	{discordgo.PermissionManageServer, "Manage Server"},
	{discordgo.PermissionManageRoles, "Manage Roles"},
	{discordgo.PermissionManageMessages, "Manage Messages"},
	{discordgo.PermissionKickMembers, "Kick Members"},
	{discordgo.PermissionBanMembers, "Ban Members"},
	{discordgo.PermissionModerateMembers, "Moderate Members"},
	{discordgo.PermissionManageChannels, "Manage Channels"},
	{discordgo.PermissionMentionEveryone, "Mention Everyone"},
}

// permissionNames renders declared permission bits in a stable order.
func permissionNames(perms int64) []string {
	var out []string
	for _, p := range permissionLabels {
		if perms&p.bit != 0 {
			out = append(out, p.name)
		}
	}
	return out
}
