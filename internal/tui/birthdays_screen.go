package tui

import (
	"fmt"
	"strings"

	"github.com/andy/rolodex/internal/app"
	"github.com/andy/rolodex/internal/book"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// BirthdaysModel shows upcoming birthdays with their congratulation dates
type BirthdaysModel struct {
	app      *app.App
	window   int
	upcoming []book.Upcoming
}

// NewBirthdaysModel creates a new birthdays screen model
func NewBirthdaysModel(a *app.App) tea.Model {
	m := &BirthdaysModel{
		app:    a,
		window: a.Config.Book.BirthdayWindowDays,
	}
	m.reload()
	return m
}

func (m *BirthdaysModel) Init() tea.Cmd {
	return nil
}

func (m *BirthdaysModel) reload() {
	m.upcoming = m.app.Book.UpcomingBirthdays(m.window)
}

func (m *BirthdaysModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.reload()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "+", "=":
			m.window++
			m.reload()
		case "-", "_":
			if m.window > 0 {
				m.window--
				m.reload()
			}
		}
	}

	return m, nil
}

func (m *BirthdaysModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Upcoming Birthdays"))
	b.WriteString("  ")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("next %d days", m.window)))
	b.WriteString("\n\n")

	if len(m.upcoming) == 0 {
		b.WriteString(subtitleStyle.Render("No upcoming birthdays."))
		b.WriteString("\n")
	}

	for _, u := range m.upcoming {
		name := truncate(u.Record.Name.String(), 20)
		when := u.Date.Format("Monday, 02.01.2006")
		switch u.DaysUntil {
		case 0:
			b.WriteString(fmt.Sprintf("  %-20s %s %s\n", name, when, birthdayStyle.Render("🎂 today!")))
		case 1:
			b.WriteString(fmt.Sprintf("  %-20s %s %s\n", name, when, successStyle.Render("tomorrow")))
		default:
			b.WriteString(fmt.Sprintf("  %-20s %s %s\n", name, when,
				subtitleStyle.Render(fmt.Sprintf("in %d days", u.DaysUntil))))
		}
	}

	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("+/- adjust window"))

	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}
