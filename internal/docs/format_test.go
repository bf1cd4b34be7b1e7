package docs

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeDeathAmongst/vrt-cogs/internal/cog"
)

func TestRenderBasic(t *testing.T) {
	cmd := &cog.Command{
		Name:          "ping",
		QualifiedName: "ping",
		Description:   "Check the bot's latency",
	}

	doc := NewRenderer(RenderOptions{}).Render(cmd)
	require.NotEmpty(t, doc)

	assert.True(t, strings.HasPrefix(doc, "ping\n----\n"), "rst underline header")
	assert.Contains(t, doc, "[p]ping")
	assert.Contains(t, doc, "Check the bot's latency")
	assert.NotContains(t, doc, "Restricted to")
}

func TestRenderSkipSignal(t *testing.T) {
	cmd := &cog.Command{Name: "ghost", QualifiedName: "ghost"}
	doc := NewRenderer(RenderOptions{}).Render(cmd)
	assert.Empty(t, doc, "no description and no parameters must yield the skip signal")
}

func TestRenderSubstitution(t *testing.T) {
	cmd := &cog.Command{
		Name:          "greet",
		QualifiedName: "greet",
		Description:   "Use [p]greet to make [botname] say hi",
	}

	doc := NewRenderer(RenderOptions{
		Prefix:         "!",
		BotName:        "Duckbot",
		ReplaceBotName: true,
	}).Render(cmd)

	assert.NotContains(t, doc, "[p]")
	assert.NotContains(t, doc, "[botname]")
	assert.Contains(t, doc, "!greet")
	assert.Contains(t, doc, "Duckbot")
}

func TestRenderSubstitutionDisabled(t *testing.T) {
	cmd := &cog.Command{
		Name:          "greet",
		QualifiedName: "greet",
		Description:   "Use [p]greet to make [botname] say hi",
	}

	doc := NewRenderer(RenderOptions{BotName: "Duckbot"}).Render(cmd)
	assert.Contains(t, doc, "[p]greet", "empty prefix disables substitution")
	assert.Contains(t, doc, "[botname]", "flag off leaves the token alone")
}

func TestRenderExtendedInfo(t *testing.T) {
	cmd := &cog.Command{
		Name:          "purge",
		QualifiedName: "purge",
		Description:   "Bulk delete messages",
		Params: []cog.Param{
			{Name: "amount", TypeHint: "integer", Description: "How many to delete", Required: true},
			{Name: "author", TypeHint: "user", Description: "Filter by author"},
		},
		Requires: cog.Requirements{Permissions: discordgo.PermissionManageMessages},
	}

	plain := NewRenderer(RenderOptions{}).Render(cmd)
	assert.Contains(t, plain, "[p]purge <amount> [author]")
	assert.NotContains(t, plain, "Parameters:")

	extended := NewRenderer(RenderOptions{ExtendedInfo: true}).Render(cmd)
	assert.Contains(t, extended, "Parameters:")
	assert.Contains(t, extended, "amount (integer): How many to delete")
	assert.Contains(t, extended, "author (user): Filter by author")
	assert.Contains(t, extended, "Restricted to: ``mod``")
	assert.Contains(t, extended, "Manage Messages")
}

func TestRenderEmbeddingStyle(t *testing.T) {
	cmd := &cog.Command{
		Name:          "shutdown",
		QualifiedName: "shutdown",
		Description:   "Shut down the bot",
		Requires:      cog.Requirements{OwnerOnly: true},
	}

	doc := NewRenderer(RenderOptions{EmbeddingStyle: true}).Render(cmd)
	assert.NotContains(t, doc, "----", "no rst underline in embedding style")
	assert.NotContains(t, doc, ".. code-block::")
	assert.Contains(t, doc, "Usage: [p]shutdown")
	assert.Contains(t, doc, "Restricted to: botowner")
	assert.NotContains(t, doc, "``")
}

func TestRenderDeterministic(t *testing.T) {
	cmd := &cog.Command{
		Name:          "announce",
		QualifiedName: "announce",
		Description:   "Post a server announcement",
		Requires:      cog.Requirements{Permissions: discordgo.PermissionManageServer},
	}
	r := NewRenderer(RenderOptions{ExtendedInfo: true})
	assert.Equal(t, r.Render(cmd), r.Render(cmd))
}
