package tui

import (
	"fmt"

	"github.com/andy/rolodex/internal/app"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen represents the current active screen
type Screen int

const (
	ScreenAssistant Screen = iota
	ScreenContacts
	ScreenBirthdays
)

// String returns the screen name
func (s Screen) String() string {
	switch s {
	case ScreenAssistant:
		return "Assistant"
	case ScreenContacts:
		return "Contacts"
	case ScreenBirthdays:
		return "Birthdays"
	default:
		return "Unknown"
	}
}

// Model is the root Bubble Tea model
type Model struct {
	app           *app.App
	currentScreen Screen
	width         int
	height        int

	// Screen models (lazy initialized)
	assistant tea.Model
	contacts  tea.Model
	birthdays tea.Model

	// Error state
	err error
}

// New creates a new root model
func New(a *app.App) Model {
	return Model{
		app:           a,
		currentScreen: ScreenAssistant,
		assistant:     NewAssistantModel(a),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	if m.assistant != nil {
		return m.assistant.Init()
	}
	return nil
}

// initScreen lazy-initializes a screen on first visit,
// and sends a RefreshDataMsg on subsequent visits so screens reload data.
func (m *Model) initScreen(screen Screen) tea.Cmd {
	switch screen {
	case ScreenAssistant:
		if m.assistant == nil {
			m.assistant = NewAssistantModel(m.app)
			return m.assistant.Init()
		}
		return func() tea.Msg { return RefreshDataMsg{} }
	case ScreenContacts:
		if m.contacts == nil {
			m.contacts = NewContactsModel(m.app)
			return m.contacts.Init()
		}
		return func() tea.Msg { return RefreshDataMsg{} }
	case ScreenBirthdays:
		if m.birthdays == nil {
			m.birthdays = NewBirthdaysModel(m.app)
			return m.birthdays.Init()
		}
		return func() tea.Msg { return RefreshDataMsg{} }
	}
	return nil
}

// InputCapturer is implemented by screens that capture keyboard input (e.g. text forms).
// When active, global navigation keys (A, C, B, Q) are suppressed.
type InputCapturer interface {
	IsCapturingInput() bool
}

// activeScreenCapturingInput returns true if the current screen is capturing text input
func (m *Model) activeScreenCapturingInput() bool {
	var screen tea.Model
	switch m.currentScreen {
	case ScreenAssistant:
		screen = m.assistant
	case ScreenContacts:
		screen = m.contacts
	case ScreenBirthdays:
		screen = m.birthdays
	}
	if ic, ok := screen.(InputCapturer); ok {
		return ic.IsCapturingInput()
	}
	return false
}

// Update implements tea.Model - routes keys to screens
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Skip global navigation when a screen is capturing text input
		if !m.activeScreenCapturingInput() {
			switch {
			case key.Matches(msg, DefaultKeyMap.Quit):
				return m, tea.Quit

			case key.Matches(msg, DefaultKeyMap.Assistant):
				m.currentScreen = ScreenAssistant
				cmd := m.initScreen(ScreenAssistant)
				return m, cmd

			case key.Matches(msg, DefaultKeyMap.Contacts):
				m.currentScreen = ScreenContacts
				cmd := m.initScreen(ScreenContacts)
				return m, cmd

			case key.Matches(msg, DefaultKeyMap.Birthdays):
				m.currentScreen = ScreenBirthdays
				cmd := m.initScreen(ScreenBirthdays)
				return m, cmd
			}
		}

	case SwitchScreenMsg:
		m.currentScreen = msg.Screen
		cmd := m.initScreen(msg.Screen)
		return m, cmd

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	// Route message to current screen
	var cmd tea.Cmd
	switch m.currentScreen {
	case ScreenAssistant:
		if m.assistant != nil {
			m.assistant, cmd = m.assistant.Update(msg)
		}
	case ScreenContacts:
		if m.contacts != nil {
			m.contacts, cmd = m.contacts.Update(msg)
		}
	case ScreenBirthdays:
		if m.birthdays != nil {
			m.birthdays, cmd = m.birthdays.Update(msg)
		}
	}

	return m, cmd
}

// View implements tea.Model - renders header + current screen + footer
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	// Header
	header := headerStyle.Render(fmt.Sprintf("rolodex - %s", m.currentScreen.String()))

	// Footer with navigation keys
	footer := footerStyle.Render("[A]ssistant  [C]ontacts  [B]irthdays  [Q]uit")

	// Current screen content
	var content string
	switch m.currentScreen {
	case ScreenAssistant:
		if m.assistant != nil {
			content = m.assistant.View()
		} else {
			content = "Loading..."
		}
	case ScreenContacts:
		if m.contacts != nil {
			content = m.contacts.View()
		} else {
			content = "Loading..."
		}
	case ScreenBirthdays:
		if m.birthdays != nil {
			content = m.birthdays.View()
		} else {
			content = "Loading..."
		}
	}

	if m.err != nil {
		content = lipgloss.JoinVertical(lipgloss.Left, content,
			errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}
