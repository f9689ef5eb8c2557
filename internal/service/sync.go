package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"hevy-insights/internal/repo"
	"hevy-insights/internal/store"
	"hevy-insights/internal/workout"
)

// SyncService refreshes the repository from the remote source and
// keeps the on-disk snapshot in step so later runs can start from it.
type SyncService struct {
	repo  *repo.Repository
	store *store.Store
}

// NewSyncService creates a new sync service. The store may be nil, in
// which case refreshes skip snapshot persistence.
func NewSyncService(r *repo.Repository, s *store.Store) *SyncService {
	return &SyncService{repo: r, store: s}
}

// RefreshResult reports the outcome of a refresh.
type RefreshResult struct {
	WorkoutCount  int
	Pages         int
	PagesCapped   bool
	FetchedAt     time.Time
	SnapshotSaved bool
}

// Refresh re-fetches the workout collection and persists it. The
// repository guarantees a failed fetch leaves the previous cache (and
// therefore the previous snapshot) untouched.
func (s *SyncService) Refresh(ctx context.Context, force bool) (*RefreshResult, error) {
	records, err := s.repo.FetchWorkouts(ctx, force)
	if err != nil {
		return nil, err
	}

	stats := s.repo.Stats()
	result := &RefreshResult{
		WorkoutCount: len(records),
		Pages:        stats.LastPages,
		PagesCapped:  stats.PagesCapped,
		FetchedAt:    stats.FetchedAt,
	}

	if s.store != nil {
		if err := s.store.SaveSnapshot(records, stats.FetchedAt); err != nil {
			return result, fmt.Errorf("saving snapshot: %w", err)
		}
		result.SnapshotSaved = true
	}
	return result, nil
}

// ExportFile writes the current collection to path as a JSON array of
// workout records.
func (s *SyncService) ExportFile(ctx context.Context, path string) error {
	records, err := s.repo.FetchWorkouts(ctx, false)
	if err != nil {
		return err
	}
	if records == nil {
		records = []workout.Record{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

// ImportFile loads a previously exported JSON file, makes it the
// repository's authoritative dataset, and persists it as the
// snapshot. Malformed input surfaces before anything is replaced.
func (s *SyncService) ImportFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading import: %w", err)
	}

	var records []workout.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("parsing import: %w", workout.ErrMalformed)
	}

	s.repo.ImportWorkouts(records)

	if s.store != nil {
		if err := s.store.SaveSnapshot(records, s.repo.Stats().FetchedAt); err != nil {
			return len(records), fmt.Errorf("saving snapshot: %w", err)
		}
	}
	return len(records), nil
}
