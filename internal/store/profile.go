package store

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// DefaultProfileName is the profile seeded on first run.
const DefaultProfileName = "squat"

// Profile holds the per-exercise thresholds and goals for a session.
type Profile struct {
	ID                string
	Name              string
	Side              string
	DownThreshold     float64
	UpThreshold       float64
	TargetReps        int
	MilestoneInterval int
	SpeechCooldownMs  int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// SpeechCooldown returns the cooldown as a duration.
func (p *Profile) SpeechCooldown() time.Duration {
	return time.Duration(p.SpeechCooldownMs) * time.Millisecond
}

// ProfileRepository provides CRUD operations for exercise profiles.
type ProfileRepository struct {
	db *sql.DB
}

// Profiles returns the profile repository for this store.
func (s *Store) Profiles() *ProfileRepository {
	return &ProfileRepository{db: s.db}
}

// Create inserts a new profile into the database.
func (r *ProfileRepository) Create(p *Profile) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := r.db.Exec(
		`INSERT INTO profiles (id, name, side, down_threshold, up_threshold,
		 target_reps, milestone_interval, speech_cooldown_ms, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Side, p.DownThreshold, p.UpThreshold,
		p.TargetReps, p.MilestoneInterval, p.SpeechCooldownMs, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

// GetByID retrieves a profile by its ID.
func (r *ProfileRepository) GetByID(id string) (*Profile, error) {
	return r.getByField("id", id)
}

// GetByName retrieves a profile by its unique name.
func (r *ProfileRepository) GetByName(name string) (*Profile, error) {
	return r.getByField("name", name)
}

func (r *ProfileRepository) getByField(field, value string) (*Profile, error) {
	p := &Profile{}

	query := `SELECT id, name, side, down_threshold, up_threshold,
	 target_reps, milestone_interval, speech_cooldown_ms, created_at, updated_at
	 FROM profiles WHERE ` + field + ` = ?`

	err := r.db.QueryRow(query, value).Scan(
		&p.ID, &p.Name, &p.Side, &p.DownThreshold, &p.UpThreshold,
		&p.TargetReps, &p.MilestoneInterval, &p.SpeechCooldownMs, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return p, nil
}

// List retrieves all profiles ordered by name.
func (r *ProfileRepository) List() ([]*Profile, error) {
	rows, err := r.db.Query(
		`SELECT id, name, side, down_threshold, up_threshold,
		 target_reps, milestone_interval, speech_cooldown_ms, created_at, updated_at
		 FROM profiles ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*Profile
	for rows.Next() {
		p := &Profile{}
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Side, &p.DownThreshold, &p.UpThreshold,
			&p.TargetReps, &p.MilestoneInterval, &p.SpeechCooldownMs, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	return profiles, rows.Err()
}

// Update persists changes to an existing profile.
func (r *ProfileRepository) Update(p *Profile) error {
	p.UpdatedAt = time.Now()

	result, err := r.db.Exec(
		`UPDATE profiles SET name = ?, side = ?, down_threshold = ?, up_threshold = ?,
		 target_reps = ?, milestone_interval = ?, speech_cooldown_ms = ?, updated_at = ?
		 WHERE id = ?`,
		p.Name, p.Side, p.DownThreshold, p.UpThreshold,
		p.TargetReps, p.MilestoneInterval, p.SpeechCooldownMs, p.UpdatedAt, p.ID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a profile by its ID.
func (r *ProfileRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
