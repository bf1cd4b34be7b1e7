package docs

import (
	"fmt"
	"strings"

	"github.com/LeDeathAmongst/vrt-cogs/internal/cog"
)

// DocumentSet maps every tier to its accumulated documentation blob.
// All five tiers are always present; tiers outside the requested band
// stay empty.
type DocumentSet map[Tier]string

// TabularRow mirrors one rendered command for flat csv export.
type TabularRow struct {
	Name string
	Text string
}

// AssembleOptions bundles the caller-facing flags of one assembly.
type AssembleOptions struct {
	Prefix         string
	BotName        string
	ReplaceBotName bool
	ExtendedInfo   bool
	IncludeHidden  bool
	IncludeHelp    bool
	EmbeddingStyle bool
}

// Assemble walks a cog's command descriptors, renders each command that
// passes the hidden/band filters, and buckets the output per tier.
// Rendering is deterministic: identical descriptors and options yield
// byte-identical output. Rows cover every rendered command in traversal
// order, unfiltered by tier.
func Assemble(c *cog.Cog, opts AssembleOptions, band Band) (DocumentSet, []TabularRow) {
	set := make(DocumentSet, len(Tiers()))
	for _, t := range Tiers() {
		set[t] = ""
	}

	if opts.IncludeHelp && strings.TrimSpace(c.Help) != "" {
		header := c.Name + "\n" + strings.Repeat("=", len(c.Name)) + "\n\n" +
			strings.TrimSpace(c.Help) + "\n\n"
		for _, t := range Tiers() {
			set[t] = header
		}
	}

	renderer := NewRenderer(RenderOptions{
		Prefix:         opts.Prefix,
		BotName:        opts.BotName,
		ReplaceBotName: opts.ReplaceBotName,
		ExtendedInfo:   opts.ExtendedInfo,
		EmbeddingStyle: opts.EmbeddingStyle,
		MinTier:        band.Min,
		MaxTier:        band.Max,
	})

	var rows []TabularRow
	excluded := make(map[*cog.Command]bool)

	process := func(cmd *cog.Command) {
		if hasExcludedAncestor(cmd, excluded) {
			return
		}
		if cmd.Hidden && !opts.IncludeHidden {
			return
		}
		tier := Classify(cmd)
		if !band.Contains(tier) {
			return
		}
		doc := renderer.Render(cmd)
		if doc == "" {
			// Unrenderable: drop silently and exclude the whole subtree.
			excluded[cmd] = true
			return
		}
		set[tier] += doc + "\n\n"
		label := fmt.Sprintf("%s command for %s cog", cmd.QualifiedName, c.Name)
		rows = append(rows, TabularRow{Name: label, Text: label + "\n" + doc})
	}

	// Structured commands first, then general commands, each in
	// registration order.
	for _, cmd := range c.WalkSlash() {
		process(cmd)
	}
	for _, cmd := range c.WalkMessage() {
		process(cmd)
	}

	return set, rows
}

func hasExcludedAncestor(cmd *cog.Command, excluded map[*cog.Command]bool) bool {
	for p := cmd.Parent; p != nil; p = p.Parent {
		if excluded[p] {
			return true
		}
	}
	return false
}
