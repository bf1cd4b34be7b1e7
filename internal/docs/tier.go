// Package docs renders privilege-aware documentation for cogs: it
// classifies commands into tiers, formats each command into an rst
// block, buckets the output per tier, and packages the result for
// delivery.
package docs

import (
	"errors"
	"fmt"
	"strings"
)

// Tier is the ordinal privilege level required to use a command.
// Comparisons use the ordinal, never the label.
type Tier int

const (
	TierNone Tier = iota
	TierMod
	TierAdmin
	TierGuildOwner
	TierBotOwner
)

// The lowest tier is labeled "user", matching the permission vocabulary
// the invocation surface exposes.
var tierLabels = [...]string{"user", "mod", "admin", "guildowner", "botowner"}

// ErrInvalidTier is returned for a privilege label outside the enumeration.
var ErrInvalidTier = errors.New("invalid privilege level")

func (t Tier) String() string {
	if t < TierNone || t > TierBotOwner {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return tierLabels[t]
}

// Tiers returns all tiers in ascending order of authority.
func Tiers() []Tier {
	return []Tier{TierNone, TierMod, TierAdmin, TierGuildOwner, TierBotOwner}
}

// ParseTier maps a label to its tier, case-insensitively.
func ParseTier(s string) (Tier, error) {
	for i, label := range tierLabels {
		if strings.EqualFold(s, label) {
			return Tier(i), nil
		}
	}
	return TierNone, fmt.Errorf("%w: %q", ErrInvalidTier, s)
}

// Band is the caller-supplied inclusion range: a command is documented
// only when Min <= tier <= Max.
type Band struct {
	Min Tier
	Max Tier
}

// FullBand includes every tier.
func FullBand() Band {
	return Band{Min: TierNone, Max: TierBotOwner}
}

func (b Band) Contains(t Tier) bool {
	return t >= b.Min && t <= b.Max
}

// Valid reports whether the band can include anything at all.
func (b Band) Valid() bool {
	return b.Min <= b.Max
}
