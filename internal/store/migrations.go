package store

import (
	"errors"

	"github.com/google/uuid"
)

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Profiles table - per-exercise thresholds and session goals
		`CREATE TABLE IF NOT EXISTS profiles (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			side TEXT NOT NULL DEFAULT 'left' CHECK(side IN ('left', 'right')),
			down_threshold REAL NOT NULL,
			up_threshold REAL NOT NULL,
			target_reps INTEGER NOT NULL DEFAULT 20,
			milestone_interval INTEGER NOT NULL DEFAULT 5,
			speech_cooldown_ms INTEGER NOT NULL DEFAULT 2000,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			CHECK(down_threshold < up_threshold)
		)`,

		// Settings table - stores application settings as key-value pairs
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}

// seedDefaults inserts the built-in squat profile when the table is
// fresh, so a first run needs no setup.
func (s *Store) seedDefaults() error {
	_, err := s.Profiles().GetByName(DefaultProfileName)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}

	return s.Profiles().Create(&Profile{
		ID:                uuid.NewString(),
		Name:              DefaultProfileName,
		Side:              "left",
		DownThreshold:     100,
		UpThreshold:       160,
		TargetReps:        20,
		MilestoneInterval: 5,
		SpeechCooldownMs:  2000,
	})
}
