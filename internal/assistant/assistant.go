// Package assistant exposes read-only documentation lookups for the
// assistant integration. Every lookup answers in plain text, including
// the not-found and not-permitted cases, so the caller can relay the
// string verbatim.
package assistant

import (
	"fmt"
	"strings"

	"github.com/LeDeathAmongst/vrt-cogs/internal/cog"
	"github.com/LeDeathAmongst/vrt-cogs/internal/docs"
)

// Service answers documentation queries against the loaded cogs.
type Service struct {
	reg     *cog.Registry
	prefix  string
	botName string
}

func New(reg *cog.Registry, prefix, botName string) *Service {
	return &Service{reg: reg, prefix: prefix, botName: botName}
}

// CommandInfo documents one command, filtered against the querying
// user's resolved tier.
func (s *Service) CommandInfo(userTier docs.Tier, commandName string) string {
	bundle, cmd, ok := s.reg.FindCommand(commandName)
	if !ok {
		return "Command not found, check valid commands for this cog first"
	}

	if docs.Classify(cmd) > userTier {
		return "You do not have the required permissions to see that command"
	}

	renderer := docs.NewRenderer(docs.RenderOptions{
		Prefix:         s.prefix,
		BotName:        s.botName,
		ReplaceBotName: true,
		EmbeddingStyle: true,
	})
	doc := renderer.Render(cmd)
	if doc == "" {
		return "That command has no documentation"
	}
	return fmt.Sprintf("Cog name: %s\nCommand:\n%s", bundle.Name, doc)
}

// CommandNames lists the qualified command names of one cog.
func (s *Service) CommandNames(cogName string) string {
	bundle, err := s.reg.Get(cogName)
	if err != nil {
		return "Could not find that cog, check loaded cogs first"
	}

	var names []string
	for _, cmd := range append(bundle.WalkSlash(), bundle.WalkMessage()...) {
		names = append(names, cmd.QualifiedName)
	}
	return fmt.Sprintf("Available commands for the %s cog:\n%s", cogName, strings.Join(names, "\n"))
}

// CogInfo returns a cog's description.
func (s *Service) CogInfo(cogName string) string {
	bundle, err := s.reg.Get(cogName)
	if err != nil {
		return "Could not find that cog, check loaded cogs first"
	}
	if bundle.Help == "" {
		return "This cog has no description"
	}
	return fmt.Sprintf("Description of the %s cog: %s", cogName, bundle.Help)
}

// CogList names every loaded cog.
func (s *Service) CogList() string {
	return "Currently loaded cogs:\n" + strings.Join(s.reg.Names(), "\n")
}
