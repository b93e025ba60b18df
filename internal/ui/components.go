package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// InfoPanel represents a panel with information
type InfoPanel struct {
	Title   string
	Content []string
	Width   int
}

// View renders the info panel
func (p *InfoPanel) View() string {
	var b strings.Builder

	if p.Title != "" {
		b.WriteString(SubheaderStyle.Render(p.Title))
		b.WriteString("\n")
	}

	for _, line := range p.Content {
		b.WriteString(TextStyle.Render(line))
		b.WriteString("\n")
	}

	return BoxStyle.Width(p.Width).Render(b.String())
}

// ControlsHelp displays keyboard controls
type ControlsHelp struct {
	Controls []Control
	Width    int
}

// Control represents a keyboard control
type Control struct {
	Key  string
	Desc string
}

// View renders the controls help
func (c *ControlsHelp) View() string {
	var b strings.Builder

	b.WriteString(SubheaderStyle.Render("Controls:"))
	b.WriteString("\n\n")

	maxKeyLen := 0
	for _, ctrl := range c.Controls {
		if len(ctrl.Key) > maxKeyLen {
			maxKeyLen = len(ctrl.Key)
		}
	}

	for _, ctrl := range c.Controls {
		key := ControlKeyStyle.Width(maxKeyLen).Render(ctrl.Key)
		desc := ControlDescStyle.Render(ctrl.Desc)
		b.WriteString(fmt.Sprintf("  %s  %s\n", key, desc))
	}

	return BoxStyle.Width(c.Width).Render(b.String())
}

// Message displays a styled message
type Message struct {
	Type    MessageType
	Content string
}

// MessageType represents the type of message
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageWarning
	MessageError
)

// View renders the message
func (m *Message) View() string {
	var style lipgloss.Style
	var prefix string

	switch m.Type {
	case MessageSuccess:
		style = SuccessStyle
		prefix = IconSuccess + " "
	case MessageWarning:
		style = WarningStyle
		prefix = IconWarning + " "
	case MessageError:
		style = ErrorStyle
		prefix = IconError + " "
	default:
		style = InfoStyle
		prefix = IconInfo + " "
	}

	return style.Render(prefix + m.Content)
}
