package modal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	if theme.Dialog.Width != 460 || theme.Dialog.Height != 180 {
		t.Errorf("default dialog size = %dx%d, want 460x180",
			theme.Dialog.Width, theme.Dialog.Height)
	}
	if theme.Dialog.OKLabel != "OK" || theme.Dialog.CancelLabel != "Cancel" {
		t.Errorf("default labels = %q/%q, want OK/Cancel",
			theme.Dialog.OKLabel, theme.Dialog.CancelLabel)
	}
	if theme.Backdrop.Opacity != 0.3 {
		t.Errorf("default backdrop opacity = %v, want 0.3", theme.Backdrop.Opacity)
	}
}

func TestLoadThemeMissingFileUsesDefaults(t *testing.T) {
	theme, err := LoadTheme(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}
	if theme.Dialog.Width != 460 {
		t.Errorf("dialog width = %d, want default 460", theme.Dialog.Width)
	}
}

func TestLoadThemeOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	content := `
[dialog]
title = "Delete file?"
width = 520

[backdrop]
opacity = 0.5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme returned error: %v", err)
	}

	if theme.Dialog.Title != "Delete file?" {
		t.Errorf("title = %q, want %q", theme.Dialog.Title, "Delete file?")
	}
	if theme.Dialog.Width != 520 {
		t.Errorf("width = %d, want 520", theme.Dialog.Width)
	}
	if theme.Backdrop.Opacity != 0.5 {
		t.Errorf("backdrop opacity = %v, want 0.5", theme.Backdrop.Opacity)
	}

	// Values absent from the file keep their defaults.
	if theme.Dialog.Height != 180 {
		t.Errorf("height = %d, want default 180", theme.Dialog.Height)
	}
	if theme.Dialog.OKLabel != "OK" {
		t.Errorf("ok label = %q, want default OK", theme.Dialog.OKLabel)
	}
}

func TestLoadThemeInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte("[dialog\nbroken"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadTheme(path); err == nil {
		t.Error("invalid TOML should return an error")
	}
}
