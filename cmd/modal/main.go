package main

import (
	"log"
	"runtime"

	"github.com/agiangrant/modal"
)

func init() {
	// GUI event loops must stay on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	log.Println("Starting modal dialog")

	theme, err := modal.LoadTheme("theme.toml")
	if err != nil {
		log.Fatalf("Failed to load theme: %v", err)
	}

	if !modal.IsDesktop() {
		log.Printf("Platform %s has no floating window support; dialog may render fullscreen", modal.CurrentPlatform())
	}

	app := modal.New(theme)
	if err := app.Run(); err != nil {
		log.Fatalf("Failed to run dialog: %v", err)
	}

	log.Println("Dialog closed")
}
