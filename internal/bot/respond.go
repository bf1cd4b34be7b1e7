// Package bot holds session-facing helpers shared by commands and the
// dispatcher, kept separate so commands never import the discord
// package directly.
package bot

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// ErrTooLarge signals an artifact over the delivery size limit;
// generation work is reported, never retried.
var ErrTooLarge = errors.New("artifact exceeds upload size limit")

// Fallback when the guild's upload limit cannot be resolved (Discord's
// base attachment cap).
const defaultUploadLimit = 25 * 1024 * 1024

// Respond sends a public message response to an interaction.
func Respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
}

// RespondEphemeral sends an ephemeral message response to an interaction.
func RespondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// RespondDeferred acknowledges an interaction so slow work can follow up later.
func RespondDeferred(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
}

// FollowupMessage sends a plain follow-up after a deferred response.
func FollowupMessage(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: content,
	})
	return err
}

// FollowupFile sends a follow-up with one attached file, refusing with
// ErrTooLarge when the payload exceeds the guild's upload limit.
func FollowupFile(s *discordgo.Session, i *discordgo.InteractionCreate, content, filename string, data []byte) error {
	if err := CheckSize(len(data), UploadLimit(s, i.GuildID)); err != nil {
		return err
	}
	_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: content,
		Files: []*discordgo.File{
			{Name: filename, ContentType: "application/octet-stream", Reader: bytes.NewReader(data)},
		},
	})
	return err
}

// CheckSize validates an artifact size against a delivery limit.
func CheckSize(size, limit int) error {
	if size > limit {
		return fmt.Errorf("%w: %d bytes over %d limit", ErrTooLarge, size, limit)
	}
	return nil
}

// UploadLimit resolves the guild's file size limit, falling back to the
// base attachment cap.
func UploadLimit(s *discordgo.Session, guildID string) int {
	if guildID == "" {
		return defaultUploadLimit
	}
	g, err := s.State.Guild(guildID)
	if err != nil || g == nil {
		g, err = s.Guild(guildID)
		if err != nil || g == nil {
			return defaultUploadLimit
		}
	}

	// Boost tiers raise the cap.
	switch g.PremiumTier {
	case discordgo.PremiumTier2:
		return 50 * 1024 * 1024
	case discordgo.PremiumTier3:
		return 100 * 1024 * 1024
	default:
		return defaultUploadLimit
	}
}
