package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.IDLength != 8 {
		t.Errorf("IDLength = %d, want 8", cfg.IDLength)
	}
	if cfg.AncestorDepth != 10 {
		t.Errorf("AncestorDepth = %d, want 10", cfg.AncestorDepth)
	}
	if cfg.TruncateName != 0 {
		t.Errorf("TruncateName = %d, want 0 (unlimited)", cfg.TruncateName)
	}
	if cfg.BookmarkLimit != 0 {
		t.Errorf("BookmarkLimit = %d, want 0 (unlimited)", cfg.BookmarkLimit)
	}

	for model, seg := range map[string]SegmentConfig{"jj": cfg.JJ, "git": cfg.Git} {
		if !seg.ShowPrefix || !seg.ShowName || !seg.ShowID || !seg.ShowStatus || !seg.ShowColor || !seg.ShowPrefixColor {
			t.Errorf("%s: all display toggles should default to true, got %+v", model, seg)
		}
		if seg.Symbol == "" {
			t.Errorf("%s: default symbol should not be empty", model)
		}
	}
}

func TestStripPrefix(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StripBookmarkPrefix = []string{"dmmulroy/", "acme-team/"}

	tests := []struct {
		name     string
		expected string
	}{
		{"dmmulroy/feat-x", "feat-x"},
		{"acme-team/fix-y", "fix-y"},
		{"staging", "staging"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.StripPrefix(tt.name); got != tt.expected {
				t.Errorf("StripPrefix(%q) = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}
}

func TestStripPrefix_FirstMatchWins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StripBookmarkPrefix = []string{"a/", "a/b/"}

	if got := cfg.StripPrefix("a/b/branch"); got != "b/branch" {
		t.Errorf("StripPrefix = %q, want configured order to win (%q)", got, "b/branch")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		width    int
		name     string
		expected string
	}{
		{0, "very-long-bookmark-name", "very-long-bookmark-name"},
		{5, "very-long-bookmark-name", "very…"},
		{10, "very-long-feature-name", "very-long…"},
		{10, "short", "short"},
		{5, "exact", "exact"},
		{3, "héllö-wörld", "hé…"}, // rune-aware, not byte-aware
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.TruncateName = tt.width
			if got := cfg.Truncate(tt.name); got != tt.expected {
				t.Errorf("Truncate(%q) width %d = %q, want %q", tt.name, tt.width, got, tt.expected)
			}
		})
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	setTestConfigHome(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.IDLength != 8 || cfg.AncestorDepth != 10 {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_ReadsFileAndKeepsDefaults(t *testing.T) {
	setTestConfigHome(t, t.TempDir())

	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := "truncate_name = 12\nstrip_bookmark_prefix = [\"me/\"]\n\n[jj]\nshow_status = false\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, loadErr := Load()
	if loadErr != nil {
		t.Fatalf("Load() error = %v", loadErr)
	}

	if cfg.TruncateName != 12 {
		t.Errorf("TruncateName = %d, want 12", cfg.TruncateName)
	}
	if len(cfg.StripBookmarkPrefix) != 1 || cfg.StripBookmarkPrefix[0] != "me/" {
		t.Errorf("StripBookmarkPrefix = %v, want [me/]", cfg.StripBookmarkPrefix)
	}
	if cfg.JJ.ShowStatus {
		t.Error("jj.show_status should be overridden to false")
	}
	// Untouched keys keep their defaults.
	if cfg.IDLength != 8 {
		t.Errorf("IDLength = %d, want default 8", cfg.IDLength)
	}
	if !cfg.JJ.ShowColor {
		t.Error("jj.show_color should keep its default true")
	}
}

// setTestConfigHome points os.UserConfigDir at a temp directory.
func setTestConfigHome(t *testing.T, dir string) {
	t.Helper()
	switch runtime.GOOS {
	case "windows":
		t.Setenv("AppData", dir)
	case "darwin":
		t.Setenv("HOME", dir)
	default:
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
}
