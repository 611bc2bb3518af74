package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/zacharyschulte/ironlog/internal/models"
)

// SchemaVersion tags exported documents.
const SchemaVersion = "v4"

// ErrBadBackup marks an import payload that cannot be applied. Nothing is
// written when it is returned.
var ErrBadBackup = errors.New("invalid backup payload")

// Backup is the export document: the five store documents verbatim, each
// absent when its key was never written.
type Backup struct {
	Version    string          `json:"version"`
	Templates  json.RawMessage `json:"templates,omitempty"`
	History    json.RawMessage `json:"history,omitempty"`
	Profile    json.RawMessage `json:"profile,omitempty"`
	Exercises  json.RawMessage `json:"exercises,omitempty"`
	Plans      json.RawMessage `json:"plans,omitempty"`
	ExportedAt time.Time       `json:"exportedAt"`
}

// Export snapshots the whole store into a Backup.
func Export(ctx context.Context, s *Store) (Backup, error) {
	b := Backup{Version: SchemaVersion, ExportedAt: time.Now()}
	for _, kv := range []struct {
		key  string
		dest *json.RawMessage
	}{
		{KeyTemplates, &b.Templates},
		{KeyHistory, &b.History},
		{KeyProfile, &b.Profile},
		{KeyExercises, &b.Exercises},
		{KeyPlans, &b.Plans},
	} {
		raw, err := s.Get(ctx, kv.key)
		if err != nil {
			return Backup{}, err
		}
		*kv.dest = raw
	}
	return b, nil
}

// Import replaces each field present in the payload verbatim, atomically.
// Absent fields are left untouched. An unparseable payload leaves the store
// unmodified.
func Import(ctx context.Context, s *Store, data []byte) error {
	var b Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("%w: %v", ErrBadBackup, err)
	}
	if err := b.check(); err != nil {
		return err
	}
	return s.Update(ctx, func(tx *Tx) error {
		for _, kv := range []struct {
			key string
			raw json.RawMessage
		}{
			{KeyTemplates, b.Templates},
			{KeyHistory, b.History},
			{KeyProfile, b.Profile},
			{KeyExercises, b.Exercises},
			{KeyPlans, b.Plans},
		} {
			if kv.raw == nil {
				continue
			}
			if err := tx.Put(ctx, kv.key, kv.raw); err != nil {
				return err
			}
		}
		return nil
	})
}

// check verifies every present field decodes into its document shape, so a
// malformed backup is rejected whole instead of half-applied.
func (b *Backup) check() error {
	checks := []struct {
		name string
		raw  json.RawMessage
		dest any
	}{
		{"templates", b.Templates, &[]models.Template{}},
		{"history", b.History, &[]models.HistoryEntry{}},
		{"profile", b.Profile, &profileDoc{}},
		{"exercises", b.Exercises, &map[string]models.Exercise{}},
		{"plans", b.Plans, &[]models.ProgressionPlan{}},
	}
	for _, c := range checks {
		if c.raw == nil {
			continue
		}
		if err := json.Unmarshal(c.raw, c.dest); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrBadBackup, c.name, err)
		}
	}
	return nil
}

// Reset erases all five documents.
func Reset(ctx context.Context, s *Store) error {
	return s.Update(ctx, func(tx *Tx) error {
		for _, key := range AllKeys {
			if err := tx.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
}
