package model

import "testing"

func TestDefaultAppConfig(t *testing.T) {
	cfg := DefaultAppConfig()

	if cfg.RecentProjects == nil {
		t.Error("RecentProjects must not be nil")
	}
	if cfg.DefaultOptions.PanelWidth != DefaultOptions().PanelWidth {
		t.Error("default options mismatch")
	}
}

func TestAddRecentProject(t *testing.T) {
	cfg := DefaultAppConfig()

	cfg.AddRecentProject("/tmp/a.json")
	cfg.AddRecentProject("/tmp/b.json")
	cfg.AddRecentProject("/tmp/a.json") // moves to front, no duplicate

	if len(cfg.RecentProjects) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(cfg.RecentProjects))
	}
	if cfg.RecentProjects[0] != "/tmp/a.json" {
		t.Errorf("most recent project must be first, got %s", cfg.RecentProjects[0])
	}
	if cfg.RecentProjects[1] != "/tmp/b.json" {
		t.Errorf("unexpected second entry: %s", cfg.RecentProjects[1])
	}
}

func TestAddRecentProjectTruncates(t *testing.T) {
	cfg := DefaultAppConfig()
	for i := 0; i < 15; i++ {
		cfg.AddRecentProject(string(rune('a'+i)) + ".json")
	}
	if len(cfg.RecentProjects) != maxRecentProjects {
		t.Errorf("expected %d entries, got %d", maxRecentProjects, len(cfg.RecentProjects))
	}
	if cfg.RecentProjects[0] != "o.json" {
		t.Errorf("most recent must be first, got %s", cfg.RecentProjects[0])
	}
}
