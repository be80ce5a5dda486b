package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func TestNew_SeedsDefaultProfile(t *testing.T) {
	s := newTestStore(t)

	p, err := s.Profiles().GetByName(DefaultProfileName)
	if err != nil {
		t.Fatalf("GetByName(%q) error = %v", DefaultProfileName, err)
	}

	if p.DownThreshold != 100 || p.UpThreshold != 160 {
		t.Errorf("seeded thresholds = %.0f/%.0f, want 100/160", p.DownThreshold, p.UpThreshold)
	}
	if p.TargetReps != 20 {
		t.Errorf("seeded target = %d, want 20", p.TargetReps)
	}
	if p.Side != "left" {
		t.Errorf("seeded side = %q, want left", p.Side)
	}
}

func TestNew_SeedIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 2; i++ {
		s, err := New(dbPath)
		if err != nil {
			t.Fatalf("New() run %d error = %v", i, err)
		}
		s.Close()
	}

	s := newTestStore(t)
	profiles, err := s.Profiles().List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	// newTestStore uses its own temp dir, so exactly the one seed.
	if len(profiles) != 1 {
		t.Errorf("got %d profiles, want 1", len(profiles))
	}
}

func TestProfileRepository_CRUD(t *testing.T) {
	s := newTestStore(t)
	repo := s.Profiles()

	p := &Profile{
		ID:                uuid.NewString(),
		Name:              "deep-squat",
		Side:              "right",
		DownThreshold:     80,
		UpThreshold:       165,
		TargetReps:        15,
		MilestoneInterval: 3,
		SpeechCooldownMs:  1500,
	}

	if err := repo.Create(p); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByID(p.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Name != "deep-squat" || got.Side != "right" || got.DownThreshold != 80 {
		t.Errorf("GetByID() = %+v, want created profile", got)
	}
	if got.SpeechCooldown().Milliseconds() != 1500 {
		t.Errorf("SpeechCooldown() = %v, want 1.5s", got.SpeechCooldown())
	}

	got.TargetReps = 25
	if err := repo.Update(got); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	updated, err := repo.GetByName("deep-squat")
	if err != nil {
		t.Fatalf("GetByName() error = %v", err)
	}
	if updated.TargetReps != 25 {
		t.Errorf("TargetReps after update = %d, want 25", updated.TargetReps)
	}

	list, err := repo.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 2 { // seeded squat + deep-squat
		t.Errorf("got %d profiles, want 2", len(list))
	}

	if err := repo.Delete(p.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.GetByID(p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrNotFound", err)
	}
}

func TestProfileRepository_NotFound(t *testing.T) {
	s := newTestStore(t)
	repo := s.Profiles()

	if _, err := repo.GetByName("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByName() error = %v, want ErrNotFound", err)
	}
	if err := repo.Update(&Profile{ID: "missing"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
	if err := repo.Delete("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestProfileRepository_RejectsInvertedThresholds(t *testing.T) {
	s := newTestStore(t)

	err := s.Profiles().Create(&Profile{
		ID:            uuid.NewString(),
		Name:          "broken",
		Side:          "left",
		DownThreshold: 170,
		UpThreshold:   100,
		TargetReps:    20,
	})
	if err == nil {
		t.Error("Create() accepted down_threshold >= up_threshold")
	}
}

func TestSettingsRepository(t *testing.T) {
	s := newTestStore(t)
	repo := s.Settings()

	if _, err := repo.Get("camera"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() on empty table error = %v, want ErrNotFound", err)
	}

	if err := repo.Set("camera", "1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := repo.Set("camera", "2"); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}

	got, err := repo.Get("camera")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "2" {
		t.Errorf("Get() = %q, want %q", got, "2")
	}
}
