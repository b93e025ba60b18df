package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// EventEntry is one formatted line of the event feed.
type EventEntry struct {
	Timestamp time.Time
	Kind      string
	Detail    string
}

// WatchModel is the inline UI for the events command. It shows a status
// bar for the watched window and a scrolling feed of its events.
type WatchModel struct {
	title      string
	driverName string
	open       bool
	closed     bool
	paused     bool

	// Watched window state, fed from the event loop
	viewWidth  int
	viewHeight int
	pointerX   float64
	pointerY   float64
	eventTotal int

	spinner       spinner.Model
	message       string
	messageType   string // "info", "error", "success"
	messageExpiry time.Time

	// Event feed
	eventBuffer  []EventEntry
	maxFeedLines int
	windowHeight int
	windowWidth  int
}

// NewWatchModel creates the event watcher UI for one window.
func NewWatchModel(title, driverName string) *WatchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	return &WatchModel{
		title:        title,
		driverName:   driverName,
		spinner:      s,
		eventBuffer:  make([]EventEntry, 0),
		maxFeedLines: 200, // Keep the last 200 feed entries
		windowHeight: 24,  // Default terminal height
		windowWidth:  80,  // Default terminal width
	}
}

// AddEvent appends an entry to the event feed buffer.
func (m *WatchModel) AddEvent(entry EventEntry) {
	m.eventBuffer = append(m.eventBuffer, entry)

	// Keep only the last maxFeedLines entries
	if len(m.eventBuffer) > m.maxFeedLines {
		m.eventBuffer = m.eventBuffer[len(m.eventBuffer)-m.maxFeedLines:]
	}
}

// Init initializes the watch model
func (m *WatchModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages for the watch model
func (m *WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case " ":
			m.paused = !m.paused
			if m.paused {
				m.SetMessage("info", "Event feed paused")
			} else {
				m.SetMessage("success", "Event feed resumed")
			}
		case "c":
			m.eventBuffer = m.eventBuffer[:0]
			m.SetMessage("info", "Event feed cleared")
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case spinner.TickMsg:
		if !m.open && !m.closed {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case ViewOpenedMsg:
		m.open = true
		m.SetMessage("success", "Window mapped")

	case ViewClosedMsg:
		m.open = false
		m.closed = true
		m.SetMessage("info", "Window closed")
		return m, tea.Quit

	case ViewSizeMsg:
		m.viewWidth = msg.Width
		m.viewHeight = msg.Height

	case PointerMsg:
		m.pointerX = msg.X
		m.pointerY = msg.Y

	case EventMsg:
		m.eventTotal++
		if !m.paused {
			m.AddEvent(msg.Entry)
		}

	case tea.WindowSizeMsg:
		m.windowHeight = msg.Height
		m.windowWidth = msg.Width
	}

	// Clear expired messages
	if !m.messageExpiry.IsZero() && time.Now().After(m.messageExpiry) {
		m.message = ""
		m.messageType = ""
		m.messageExpiry = time.Time{}
	}

	return m, tea.Batch(cmds...)
}

// View renders the watcher with status bar + event feed
func (m *WatchModel) View() string {
	var output strings.Builder

	statusBarHeight := 1
	availableHeight := m.windowHeight - statusBarHeight - 1 // -1 for padding
	if availableHeight < 1 {
		availableHeight = 10 // Minimum height
	}

	output.WriteString(m.renderStatusBar())
	output.WriteString("\n")
	output.WriteString(m.renderFeed(availableHeight))

	return output.String()
}

// renderStatusBar renders the status bar line
func (m *WatchModel) renderStatusBar() string {
	var parts []string

	// App name
	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	parts = append(parts, nameStyle.Render("PUGLTOOL"))

	// Window status
	switch {
	case m.open:
		openStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
		parts = append(parts, openStyle.Render("● Open"))
	case m.closed:
		closedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		parts = append(parts, closedStyle.Render("○ Closed"))
	default:
		waitStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
		parts = append(parts, waitStyle.Render(m.spinner.View()+" Opening"))
	}

	// Window title and driver
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("247"))
	parts = append(parts, titleStyle.Render(m.title))
	parts = append(parts, titleStyle.Render("driver:"+m.driverName))

	// Window geometry and pointer
	geoStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("247"))
	if m.viewWidth > 0 && m.viewHeight > 0 {
		parts = append(parts, geoStyle.Render(fmt.Sprintf("%dx%d", m.viewWidth, m.viewHeight)))
	}
	parts = append(parts, geoStyle.Render(fmt.Sprintf("(%.0f,%.0f)", m.pointerX, m.pointerY)))

	// Feed status
	if m.paused {
		pausedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
		parts = append(parts, pausedStyle.Render("■ PAUSED"))
	} else {
		liveStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		parts = append(parts, liveStyle.Render(fmt.Sprintf("▶ %d events", m.eventTotal)))
	}

	// Temporary message
	if m.message != "" {
		var msgStyle lipgloss.Style
		switch m.messageType {
		case "success":
			msgStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
		case "error":
			msgStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		default:
			msgStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("247"))
		}
		parts = append(parts, msgStyle.Render(m.message))
	}

	// Controls hint
	controlsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	controls := "[space] pause • [c] clear • [q] quit"
	parts = append(parts, controlsStyle.Render(controls))

	// Join with separators
	separator := lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Render(" │ ")
	return strings.Join(parts, separator)
}

// renderFeed renders the recent event entries
func (m *WatchModel) renderFeed(maxLines int) string {
	if len(m.eventBuffer) == 0 {
		dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		return dimStyle.Render("No events yet...")
	}

	var lines []string

	// Show the most recent entries that fit in the available space
	startIdx := 0
	if len(m.eventBuffer) > maxLines {
		startIdx = len(m.eventBuffer) - maxLines
	}

	for i := startIdx; i < len(m.eventBuffer); i++ {
		lines = append(lines, m.formatEventEntry(m.eventBuffer[i]))
	}

	return strings.Join(lines, "\n")
}

// formatEventEntry formats a single feed entry with colors
func (m *WatchModel) formatEventEntry(entry EventEntry) string {
	timeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	var kindStyle lipgloss.Style
	switch {
	case strings.HasPrefix(entry.Kind, "KEY"), entry.Kind == "TEXT":
		kindStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	case strings.HasPrefix(entry.Kind, "BUTTON"),
		entry.Kind == "MOTION", entry.Kind == "SCROLL",
		strings.HasPrefix(entry.Kind, "POINTER"):
		kindStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	case entry.Kind == "EXPOSE", entry.Kind == "RESIZE":
		kindStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	case strings.HasPrefix(entry.Kind, "FOCUS"):
		kindStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	case entry.Kind == "CLOSE":
		kindStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	case entry.Kind == "TIMER":
		kindStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	default:
		kindStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("247"))
	}

	detailStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255"))

	return fmt.Sprintf("%s %s %s",
		timeStyle.Render(entry.Timestamp.Format("15:04:05.000")),
		kindStyle.Render(fmt.Sprintf("%-14s", entry.Kind)),
		detailStyle.Render(entry.Detail))
}

// SetMessage sets a temporary message
func (m *WatchModel) SetMessage(msgType, message string) {
	m.message = message
	m.messageType = msgType
	m.messageExpiry = time.Now().Add(3 * time.Second)
}

// Message types for reactive updates
type (
	ViewOpenedMsg struct{}
	ViewClosedMsg struct{}
	ViewSizeMsg   struct{ Width, Height int }
	PointerMsg    struct{ X, Y float64 }
	EventMsg      struct{ Entry EventEntry }
)
