package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andy/rolodex/internal/app"
	"github.com/andy/rolodex/internal/book"
	"github.com/andy/rolodex/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// usageText is shown for any field validation failure, same wording as the
// CLI usage message.
const usageText = `Invalid input. Format:
  add <name> <phone_number>
  change <name> <old_phone> <new_phone>
  phone <name>
  delete <name>
  add-birthday <name> <DD.MM.YYYY>
  show-birthday <name>
  birthdays
  all`

// historyLimit caps how many prompt/response pairs stay on screen
const historyLimit = 50

type assistantLine struct {
	prompt   bool
	text     string
	isError  bool
	isNotice bool
}

// AssistantModel is the conversational prompt: the successor of the original
// assistant bot's read-eval-print loop.
type AssistantModel struct {
	app     *app.App
	input   textinput.Model
	history []assistantLine
}

// NewAssistantModel creates a new assistant screen model
func NewAssistantModel(a *app.App) tea.Model {
	input := textinput.New()
	input.Placeholder = "Enter a command (try: help)"
	input.CharLimit = 120
	input.Width = 60
	input.Focus()

	return &AssistantModel{
		app:   a,
		input: input,
		history: []assistantLine{
			{text: "Welcome to the assistant bot!", isNotice: true},
		},
	}
}

// IsCapturingInput reports whether keystrokes should go to the prompt
func (m *AssistantModel) IsCapturingInput() bool {
	return m.input.Focused()
}

func (m *AssistantModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *AssistantModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshDataMsg:
		return m, nil

	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyEsc:
			// Release the prompt so the global navigation keys work
			m.input.Blur()
			return m, nil

		case !m.input.Focused() && key.Matches(msg, DefaultKeyMap.Select):
			m.input.Focus()
			return m, textinput.Blink

		case msg.Type == tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				m.push(assistantLine{text: "Please enter a command.", isError: true})
				return m, nil
			}

			m.push(assistantLine{prompt: true, text: line})
			return m.dispatch(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// dispatch parses one command line and runs it against the book service
func (m *AssistantModel) dispatch(line string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(line)
	command := strings.ToLower(fields[0])
	args := fields[1:]

	svc := m.app.Book

	switch command {
	case "close", "exit":
		// The book is persisted by the app on shutdown
		m.push(assistantLine{text: "Good bye!", isNotice: true})
		return m, tea.Quit

	case "hello":
		m.reply("How can I help you?")

	case "help":
		m.reply(usageText)

	case "add":
		if len(args) != 2 {
			m.fail(usageText)
			break
		}
		created, err := svc.AddContact(args[0], args[1])
		if err != nil {
			m.replyErr(err)
			break
		}
		if created {
			m.reply("Contact added.")
		} else {
			m.reply("Contact updated.")
		}

	case "change":
		if len(args) != 3 {
			m.fail(usageText)
			break
		}
		if err := svc.ChangePhone(args[0], args[1], args[2]); err != nil {
			m.replyErr(err)
			break
		}
		m.reply("Contact updated.")

	case "phone":
		if len(args) != 1 {
			m.fail(usageText)
			break
		}
		rec, err := svc.Find(args[0])
		if err != nil {
			m.replyErr(err)
			break
		}
		if rec == nil {
			m.reply("Contact not found.")
			break
		}
		m.reply(rec.String())

	case "all":
		records := svc.Book().Records()
		if len(records) == 0 {
			m.reply("No contacts available.")
			break
		}
		var b strings.Builder
		b.WriteString("All contacts:\n")
		for _, rec := range records {
			fmt.Fprintf(&b, "  %s\n", rec)
		}
		m.reply(strings.TrimRight(b.String(), "\n"))

	case "delete":
		if len(args) != 1 {
			m.fail(usageText)
			break
		}
		if err := svc.Delete(args[0]); err != nil {
			m.replyErr(err)
			break
		}
		m.reply("Contact deleted.")

	case "add-birthday":
		if len(args) != 2 {
			m.fail(usageText)
			break
		}
		if err := svc.SetBirthday(args[0], args[1]); err != nil {
			m.replyErr(err)
			break
		}
		m.reply("Birthday added.")

	case "show-birthday":
		if len(args) != 1 {
			m.fail(usageText)
			break
		}
		birthday, err := svc.Birthday(args[0])
		if err != nil {
			m.replyErr(err)
			break
		}
		if birthday == nil {
			m.reply("Birthday not set.")
			break
		}
		m.reply(fmt.Sprintf("%s's birthday is on %s.", strings.TrimSpace(args[0]), birthday))

	case "birthdays":
		upcoming := svc.UpcomingBirthdays(m.app.Config.Book.BirthdayWindowDays)
		if len(upcoming) == 0 {
			m.reply("No upcoming birthdays.")
			break
		}
		var b strings.Builder
		b.WriteString("Upcoming birthdays:\n")
		for _, u := range upcoming {
			fmt.Fprintf(&b, "  %s: %s\n", u.Record.Name, u.Date.Format("Monday, 02.01.2006"))
		}
		m.reply(strings.TrimRight(b.String(), "\n"))

	case "save":
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		if err := svc.Save(path); err != nil {
			m.replyErr(err)
			break
		}
		m.reply("Data saved.")

	case "load":
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		if err := svc.Load(path); err != nil {
			m.replyErr(err)
			break
		}
		m.reply("Data loaded.")

	default:
		m.fail("Invalid command.")
	}

	return m, nil
}

func (m *AssistantModel) reply(text string) {
	m.push(assistantLine{text: text})
}

func (m *AssistantModel) fail(text string) {
	m.push(assistantLine{text: text, isError: true})
}

// replyErr renders a service error the way the original bot did: validation
// failures show the usage text, lookup misses show their fixed message.
func (m *AssistantModel) replyErr(err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrInvalidPhone),
		errors.Is(err, domain.ErrInvalidBirthday):
		m.fail(usageText)
	case errors.Is(err, book.ErrContactNotFound):
		m.fail("Contact not found.")
	case errors.Is(err, domain.ErrPhoneNotFound):
		m.fail("Phone number not found.")
	default:
		m.fail(fmt.Sprintf("An unexpected error occurred: %v", err))
	}
}

func (m *AssistantModel) push(line assistantLine) {
	m.history = append(m.history, line)
	if len(m.history) > historyLimit {
		m.history = m.history[len(m.history)-historyLimit:]
	}
}

func (m *AssistantModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Assistant"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Commands: hello, add, change, phone, all, delete, add-birthday, show-birthday, birthdays, save, load, close"))
	b.WriteString("\n\n")

	for _, line := range m.history {
		switch {
		case line.prompt:
			b.WriteString(promptStyle.Render("> " + line.text))
		case line.isError:
			b.WriteString(errorStyle.Render(line.text))
		case line.isNotice:
			b.WriteString(successStyle.Render(line.text))
		default:
			b.WriteString(responseStyle.Render(line.text))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.input.Focused() {
		b.WriteString(subtitleStyle.Render("esc to release the prompt"))
	} else {
		b.WriteString(subtitleStyle.Render("enter to type a command"))
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}
