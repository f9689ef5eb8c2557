package service

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"hevy-insights/internal/analysis"
	"hevy-insights/internal/repo"
	"hevy-insights/internal/store"
)

func TestRefreshPersistsSnapshot(t *testing.T) {
	records := testWorkouts()
	r := repo.NewImported(records)
	s := store.NewTestStore(t)
	sync := NewSyncService(r, s)

	result, err := sync.Refresh(context.Background(), false)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if result.WorkoutCount != len(records) || !result.SnapshotSaved {
		t.Errorf("result = %+v", result)
	}

	loaded, _, err := s.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if len(loaded) != len(records) {
		t.Errorf("snapshot has %d records, want %d", len(loaded), len(records))
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	records := testWorkouts()
	original := repo.NewImported(records)
	sync := NewSyncService(original, nil)

	path := filepath.Join(t.TempDir(), "export.json")
	if err := sync.ExportFile(context.Background(), path); err != nil {
		t.Fatalf("ExportFile: %v", err)
	}

	imported := repo.NewImported(nil)
	importSync := NewSyncService(imported, nil)
	n, err := importSync.ImportFile(path)
	if err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	if n != len(records) {
		t.Errorf("imported %d records, want %d", n, len(records))
	}

	// Re-importing an exported dataset must reproduce an identical
	// exercise aggregate map.
	got, err := imported.FetchWorkouts(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(analysis.BuildHistory(got), analysis.BuildHistory(records)) {
		t.Error("aggregates differ after export/import round trip")
	}
}

func TestImportFileRejectsMalformedInput(t *testing.T) {
	r := repo.NewImported(testWorkouts())
	sync := NewSyncService(r, nil)

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := sync.ImportFile(path); err == nil {
		t.Fatal("expected error for malformed import")
	}

	// The existing dataset is untouched.
	got, _ := r.FetchWorkouts(context.Background(), false)
	if len(got) != len(testWorkouts()) {
		t.Errorf("collection changed after failed import: %d records", len(got))
	}
}
