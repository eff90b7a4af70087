package modal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Theme holds the visual parameters for the dialog and its backdrop.
// Colors are hex strings ("#RRGGBB" or "#RRGGBBAA").
type Theme struct {
	Dialog   DialogTheme   `toml:"dialog"`
	Backdrop BackdropTheme `toml:"backdrop"`
}

// DialogTheme styles the dialog window.
type DialogTheme struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`

	Title   string `toml:"title"`
	Message string `toml:"message"`

	OKLabel     string `toml:"ok_label"`
	CancelLabel string `toml:"cancel_label"`

	Background   string  `toml:"background"`
	TitleBar     string  `toml:"title_bar"`
	TextColor    string  `toml:"text_color"`
	CornerRadius float32 `toml:"corner_radius"`
}

// BackdropTheme styles the dimming layer behind the dialog.
type BackdropTheme struct {
	Color   string  `toml:"color"`
	Opacity float32 `toml:"opacity"`
}

// DefaultTheme returns the built-in look.
func DefaultTheme() Theme {
	return Theme{
		Dialog: DialogTheme{
			Width:        460,
			Height:       180,
			Title:        "Confirm",
			Message:      "Are you sure you want to proceed?",
			OKLabel:      "OK",
			CancelLabel:  "Cancel",
			Background:   "#F5F5F5",
			TitleBar:     "#E8E8E8",
			TextColor:    "#1F2937",
			CornerRadius: 10,
		},
		Backdrop: BackdropTheme{
			Color:   "#000000",
			Opacity: 0.3,
		},
	}
}

// LoadTheme reads a theme file, falling back to defaults when the file
// does not exist. Values present in the file override defaults; omitted
// values keep them.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return theme, nil
		}
		return theme, fmt.Errorf("read theme %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &theme); err != nil {
		return theme, fmt.Errorf("parse theme %s: %w", path, err)
	}
	return theme, nil
}
