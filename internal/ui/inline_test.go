package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func feedEntry(kind, detail string) EventEntry {
	return EventEntry{Timestamp: time.Now(), Kind: kind, Detail: detail}
}

func TestWatchModel(t *testing.T) {
	t.Run("creates new watch model", func(t *testing.T) {
		model := NewWatchModel("scope", "x11")

		if model.title != "scope" {
			t.Errorf("Expected title 'scope', got %q", model.title)
		}
		if model.driverName != "x11" {
			t.Errorf("Expected driver 'x11', got %q", model.driverName)
		}
		if model.open {
			t.Error("Window should not be open initially")
		}
		if model.paused {
			t.Error("Feed should not be paused initially")
		}
	})

	t.Run("renders opening view", func(t *testing.T) {
		model := NewWatchModel("scope", "x11")
		view := model.View()

		// Check for key elements
		if !strings.Contains(view, "PUGLTOOL") {
			t.Error("Should contain 'PUGLTOOL'")
		}
		if !strings.Contains(view, "Opening") {
			t.Error("Should show opening status")
		}
		if !strings.Contains(view, "scope") {
			t.Error("Should show window title")
		}
		if !strings.Contains(view, "driver:x11") {
			t.Error("Should show driver name")
		}
		if !strings.Contains(view, "No events yet") {
			t.Error("Should show empty feed placeholder")
		}
	})

	t.Run("handles window opened message", func(t *testing.T) {
		model := NewWatchModel("scope", "x11")

		updatedModel, _ := model.Update(ViewOpenedMsg{})
		updated := updatedModel.(*WatchModel)

		if !updated.open {
			t.Error("Should be open after ViewOpenedMsg")
		}
		if updated.message != "Window mapped" {
			t.Errorf("Expected mapped message, got %q", updated.message)
		}

		view := updated.View()
		if !strings.Contains(view, "● Open") {
			t.Error("Should show open status")
		}
	})

	t.Run("window closed quits the watcher", func(t *testing.T) {
		model := NewWatchModel("scope", "x11")
		model.open = true

		updatedModel, cmd := model.Update(ViewClosedMsg{})
		updated := updatedModel.(*WatchModel)

		if updated.open {
			t.Error("Should not be open after ViewClosedMsg")
		}
		if !updated.closed {
			t.Error("Should be closed after ViewClosedMsg")
		}
		if cmd == nil {
			t.Error("Should return quit command when the window closes")
		}
	})

	t.Run("tracks pointer and window size", func(t *testing.T) {
		model := NewWatchModel("scope", "x11")

		updatedModel, _ := model.Update(ViewSizeMsg{Width: 640, Height: 480})
		updatedModel, _ = updatedModel.Update(PointerMsg{X: 100.5, Y: 200.25})
		updated := updatedModel.(*WatchModel)

		if updated.viewWidth != 640 || updated.viewHeight != 480 {
			t.Errorf("Expected 640x480, got %dx%d", updated.viewWidth, updated.viewHeight)
		}
		if updated.pointerX != 100.5 || updated.pointerY != 200.25 {
			t.Errorf("Pointer = (%v,%v)", updated.pointerX, updated.pointerY)
		}

		view := updated.View()
		if !strings.Contains(view, "640x480") {
			t.Error("Should show window geometry")
		}
	})

	t.Run("feeds events into the buffer", func(t *testing.T) {
		model := NewWatchModel("scope", "x11")

		updatedModel, _ := model.Update(EventMsg{Entry: feedEntry("KEY PRESS", "a code=38")})
		updatedModel, _ = updatedModel.Update(EventMsg{Entry: feedEntry("MOTION", "(10.0,20.0)")})
		updated := updatedModel.(*WatchModel)

		if len(updated.eventBuffer) != 2 {
			t.Fatalf("Expected 2 buffered events, got %d", len(updated.eventBuffer))
		}
		if updated.eventTotal != 2 {
			t.Errorf("Expected 2 total events, got %d", updated.eventTotal)
		}

		view := updated.View()
		if !strings.Contains(view, "KEY PRESS") {
			t.Error("Should render event kind")
		}
		if !strings.Contains(view, "a code=38") {
			t.Error("Should render event detail")
		}
	})

	t.Run("toggles pause with space key", func(t *testing.T) {
		model := NewWatchModel("scope", "x11")

		// Toggle on
		updatedModel, _ := model.Update(tea.KeyMsg{Type: tea.KeySpace})
		updated := updatedModel.(*WatchModel)

		if !updated.paused {
			t.Error("Should be paused after space key")
		}

		// Paused feed drops entries but keeps counting
		updatedModel, _ = updated.Update(EventMsg{Entry: feedEntry("MOTION", "(1.0,2.0)")})
		updated = updatedModel.(*WatchModel)

		if len(updated.eventBuffer) != 0 {
			t.Error("Paused feed should not buffer events")
		}
		if updated.eventTotal != 1 {
			t.Errorf("Expected total to keep counting, got %d", updated.eventTotal)
		}

		view := updated.View()
		if !strings.Contains(view, "■ PAUSED") {
			t.Error("Should show paused status")
		}

		// Toggle off
		updatedModel, _ = updated.Update(tea.KeyMsg{Type: tea.KeySpace})
		updated = updatedModel.(*WatchModel)

		if updated.paused {
			t.Error("Should not be paused after second space key")
		}
	})

	t.Run("clears the feed with c key", func(t *testing.T) {
		model := NewWatchModel("scope", "x11")
		model.AddEvent(feedEntry("EXPOSE", "640x480 at (0,0)"))
		model.AddEvent(feedEntry("CLOSE", ""))

		updatedModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
		updated := updatedModel.(*WatchModel)

		if len(updated.eventBuffer) != 0 {
			t.Errorf("Expected empty buffer, got %d entries", len(updated.eventBuffer))
		}
	})

	t.Run("trims the buffer to the feed limit", func(t *testing.T) {
		model := NewWatchModel("scope", "x11")
		model.maxFeedLines = 3

		for i := 0; i < 5; i++ {
			model.AddEvent(feedEntry("MOTION", strings.Repeat("x", i+1)))
		}

		if len(model.eventBuffer) != 3 {
			t.Fatalf("Expected 3 buffered events, got %d", len(model.eventBuffer))
		}
		if model.eventBuffer[0].Detail != "xxx" {
			t.Errorf("Expected oldest entries dropped, first is %q", model.eventBuffer[0].Detail)
		}
	})

	t.Run("renders status messages", func(t *testing.T) {
		model := NewWatchModel("scope", "x11")
		model.SetMessage("error", "Driver gone")

		view := model.View()

		if !strings.Contains(view, "Driver gone") {
			t.Error("Should display the status message")
		}
		if model.messageExpiry.IsZero() {
			t.Error("Should set message expiry")
		}
	})

	t.Run("clears expired messages", func(t *testing.T) {
		model := NewWatchModel("scope", "x11")
		model.SetMessage("info", "Test message")
		model.messageExpiry = time.Now().Add(-1 * time.Second) // Already expired

		updatedModel, _ := model.Update(tea.WindowSizeMsg{})
		updated := updatedModel.(*WatchModel)

		if updated.message != "" {
			t.Error("Should have cleared expired message")
		}
	})

	t.Run("quits on q key", func(t *testing.T) {
		model := NewWatchModel("scope", "x11")

		_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

		if cmd == nil {
			t.Error("Should return quit command")
		}
	})
}
