package discord

import (
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bwmarrin/discordgo"
)

// Registration hashes persist across restarts so unchanged commands are
// not re-pushed to Discord every boot.

func commandHashPath() string {
	return filepath.Join("data", "commands", "global.json")
}

func loadCommandHashes() map[string]string {
	out := make(map[string]string)
	if data, err := os.ReadFile(commandHashPath()); err == nil {
		_ = json.Unmarshal(data, &out)
	}
	return out
}

func saveCommandHashes(hashes map[string]string) {
	path := commandHashPath()
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	if data, err := json.MarshalIndent(hashes, "", "  "); err == nil {
		_ = os.WriteFile(path, data, 0644)
	}
}

// hashCommand returns a deterministic SHA-1 of a command definition's
// stable fields, ignoring runtime-only fields like IDs and versions.
func hashCommand(cmd *discordgo.ApplicationCommand) string {
	stable := map[string]interface{}{
		"name":        cmd.Name,
		"description": cmd.Description,
		"type":        cmd.Type,
	}
	if len(cmd.Options) > 0 {
		stable["options"] = normalizeOptions(cmd.Options)
	}
	data, _ := json.Marshal(stable)
	sum := sha1.Sum(data)
	return fmt.Sprintf("%x", sum)
}

func normalizeOptions(opts []*discordgo.ApplicationCommandOption) []map[string]interface{} {
	out := make([]map[string]interface{}, len(opts))
	for i, o := range opts {
		entry := map[string]interface{}{
			"name":        o.Name,
			"description": o.Description,
			"type":        o.Type,
			"required":    o.Required,
		}
		if len(o.Choices) > 0 {
			choices := make([]map[string]interface{}, len(o.Choices))
			for j, ch := range o.Choices {
				choices[j] = map[string]interface{}{"name": ch.Name, "value": ch.Value}
			}
			entry["choices"] = choices
		}
		if len(o.Options) > 0 {
			entry["options"] = normalizeOptions(o.Options)
		}
		out[i] = entry
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i]["name"].(string) < out[j]["name"].(string)
	})
	return out
}
