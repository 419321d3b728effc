package tui

import (
	"fmt"
	"strings"

	"github.com/andy/rolodex/internal/app"
	"github.com/andy/rolodex/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// contactMode represents the current screen mode
type contactMode int

const (
	contactModeList contactMode = iota
	contactModeNew
)

// form field indices
const (
	fieldName = iota
	fieldPhone
	fieldBirthday
	fieldCount
)

// ContactsModel displays a navigable list of contacts with a new-contact form
type ContactsModel struct {
	app       *app.App
	records   []*domain.Record
	cursor    int
	err       error
	statusMsg string

	// Form state
	mode       contactMode
	fields     []textinput.Model
	fieldFocus int
}

// NewContactsModel creates a new contacts screen model
func NewContactsModel(a *app.App) tea.Model {
	m := &ContactsModel{app: a}
	m.reload()
	return m
}

// IsCapturingInput returns true when the form is active
func (m *ContactsModel) IsCapturingInput() bool {
	return m.mode == contactModeNew
}

func (m *ContactsModel) Init() tea.Cmd {
	return nil
}

func (m *ContactsModel) reload() {
	m.records = m.app.Book.Book().Records()
	if m.cursor >= len(m.records) {
		m.cursor = max(0, len(m.records)-1)
	}
}

func (m *ContactsModel) initForm() {
	m.fields = make([]textinput.Model, fieldCount)

	// Name field
	m.fields[fieldName] = textinput.New()
	m.fields[fieldName].Placeholder = "Contact name"
	m.fields[fieldName].CharLimit = 100
	m.fields[fieldName].Width = 40

	// Phone field
	m.fields[fieldPhone] = textinput.New()
	m.fields[fieldPhone].Placeholder = "1234567890"
	m.fields[fieldPhone].CharLimit = 10
	m.fields[fieldPhone].Width = 15

	// Birthday field
	m.fields[fieldBirthday] = textinput.New()
	m.fields[fieldBirthday].Placeholder = "DD.MM.YYYY (optional)"
	m.fields[fieldBirthday].CharLimit = 10
	m.fields[fieldBirthday].Width = 15

	m.fieldFocus = fieldName
	m.fields[fieldName].Focus()
}

func (m *ContactsModel) saveContact() {
	name := m.fields[fieldName].Value()
	phone := m.fields[fieldPhone].Value()
	birthday := strings.TrimSpace(m.fields[fieldBirthday].Value())

	if _, err := m.app.Book.AddContact(name, phone); err != nil {
		m.err = err
		return
	}
	if birthday != "" {
		if err := m.app.Book.SetBirthday(name, birthday); err != nil {
			// The contact is already in the book; report the bad birthday
			m.err = err
			m.mode = contactModeList
			m.reload()
			return
		}
	}

	m.err = nil
	m.statusMsg = fmt.Sprintf("Saved: %s", strings.TrimSpace(name))
	m.mode = contactModeList
	m.reload()
}

func (m *ContactsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle form mode
	if m.mode == contactModeNew {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.reload()
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		m.err = nil

		switch {
		case key.Matches(msg, DefaultKeyMap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, DefaultKeyMap.Down):
			if m.cursor < len(m.records)-1 {
				m.cursor++
			}
		case key.Matches(msg, DefaultKeyMap.New):
			m.mode = contactModeNew
			m.initForm()
			return m, textinput.Blink
		case key.Matches(msg, DefaultKeyMap.Delete):
			if len(m.records) > 0 && m.cursor < len(m.records) {
				name := m.records[m.cursor].Name.String()
				if err := m.app.Book.Delete(name); err != nil {
					m.err = err
				} else {
					m.statusMsg = fmt.Sprintf("Deleted: %s", name)
				}
				m.reload()
			}
		}
	}

	return m, nil
}

func (m *ContactsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateFields(msg)
	}

	switch keyMsg.Type {
	case tea.KeyEsc:
		m.mode = contactModeList
		m.err = nil
		return m, nil

	case tea.KeyTab, tea.KeyDown:
		m.focusField((m.fieldFocus + 1) % fieldCount)
		return m, textinput.Blink

	case tea.KeyShiftTab, tea.KeyUp:
		m.focusField((m.fieldFocus + fieldCount - 1) % fieldCount)
		return m, textinput.Blink

	case tea.KeyEnter:
		if m.fieldFocus < fieldCount-1 {
			m.focusField(m.fieldFocus + 1)
			return m, textinput.Blink
		}
		m.saveContact()
		return m, nil
	}

	return m, m.updateFields(msg)
}

func (m *ContactsModel) focusField(i int) {
	m.fields[m.fieldFocus].Blur()
	m.fieldFocus = i
	m.fields[i].Focus()
}

func (m *ContactsModel) updateFields(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i := range m.fields {
		var cmd tea.Cmd
		m.fields[i], cmd = m.fields[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *ContactsModel) View() string {
	if m.mode == contactModeNew {
		return m.viewForm()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Contacts"))
	b.WriteString("\n\n")

	if len(m.records) == 0 {
		b.WriteString(subtitleStyle.Render("No contacts yet. Press n to add one."))
	}

	for i, rec := range m.records {
		line := fmt.Sprintf("%-20s %s", truncate(rec.Name.String(), 20), joinPhones(rec))
		if rec.Birthday != nil {
			line += birthdayStyle.Render("  🎂 " + rec.Birthday.String())
		}
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.statusMsg != "" {
		b.WriteString(successStyle.Render(m.statusMsg))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}
	b.WriteString(subtitleStyle.Render("n new  d delete  ↑/↓ move"))

	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}

func (m *ContactsModel) viewForm() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("New Contact"))
	b.WriteString("\n\n")

	labels := []string{"Name", "Phone", "Birthday"}
	for i, field := range m.fields {
		b.WriteString(fmt.Sprintf("%-10s %s\n", labels[i], field.View()))
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}
	b.WriteString(subtitleStyle.Render("tab next field  enter save  esc cancel"))

	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}

func joinPhones(rec *domain.Record) string {
	phones := make([]string, len(rec.Phones))
	for i, p := range rec.Phones {
		phones[i] = p.String()
	}
	if len(phones) == 0 {
		return subtitleStyle.Render("no phones")
	}
	return strings.Join(phones, "; ")
}
