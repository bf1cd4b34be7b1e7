// Package storage persists per-guild state on top of keshon/datastore.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/keshon/datastore"
)

const commandHistoryLimit = 50

// Storage wraps the datastore with typed accessors.
type Storage struct {
	ds *datastore.DataStore
}

// CommandHistoryRecord is one logged command invocation.
type CommandHistoryRecord struct {
	ChannelID   string    `json:"channel_id"`
	ChannelName string    `json:"channel_name"`
	GuildName   string    `json:"guild_name"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	Command     string    `json:"command"`
	Datetime    time.Time `json:"datetime"`
}

// Record is everything stored for one guild.
type Record struct {
	CommandsHistoryList []CommandHistoryRecord `json:"cmd_history"`
}

func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open datastore: %w", err)
	}
	return &Storage{ds: ds}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

// getOrCreateGuildRecord decodes the stored guild record, creating an
// empty one when the guild has no entry yet.
func (s *Storage) getOrCreateGuildRecord(guildID string) (*Record, error) {
	data, exists := s.ds.Get(guildID)
	if !exists {
		return &Record{}, nil
	}

	// datastore hands values back as any; round-trip through JSON to
	// recover the typed record.
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode guild record: %w", err)
	}
	var record Record
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("failed to decode guild record: %w", err)
	}
	return &record, nil
}

// SetCommand appends one command invocation to the guild's history,
// trimming the list to the newest entries.
func (s *Storage) SetCommand(guildID string, rec CommandHistoryRecord) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}

	record.CommandsHistoryList = append(record.CommandsHistoryList, rec)
	if n := len(record.CommandsHistoryList); n > commandHistoryLimit {
		record.CommandsHistoryList = record.CommandsHistoryList[n-commandHistoryLimit:]
	}

	s.ds.Add(guildID, record)
	return nil
}

// GetCommandHistory returns the guild's logged invocations, newest last.
func (s *Storage) GetCommandHistory(guildID string) ([]CommandHistoryRecord, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.CommandsHistoryList, nil
}
