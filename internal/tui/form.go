package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/termfolio/internal/model"
)

const (
	fieldName = iota
	fieldEmail
	fieldMessage
	fieldCount
)

const messageHeight = 4

var (
	errMissingFields = errors.New("please fill in every field")
	errInvalidEmail  = errors.New("please enter a valid email address")
)

// contactForm is the name/email/message form at the bottom of the page.
type contactForm struct {
	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	focus   int
	active  bool
	err     string
}

func newContactForm() *contactForm {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.Prompt = "› "
	name.CharLimit = 80

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Prompt = "› "
	email.CharLimit = 120

	message := textarea.New()
	message.Placeholder = "Tell me about your project..."
	message.ShowLineNumbers = false
	message.SetHeight(messageHeight)
	message.CharLimit = 2000

	return &contactForm{name: name, email: email, message: message}
}

func (f *contactForm) setWidth(width int) {
	w := maxInt(width-4, 10)
	f.name.Width = w
	f.email.Width = w
	f.message.SetWidth(w)
}

// activate focuses the current field.
func (f *contactForm) activate() tea.Cmd {
	f.active = true
	return f.focusField(f.focus)
}

func (f *contactForm) deactivate() {
	f.active = false
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
}

func (f *contactForm) focusField(i int) tea.Cmd {
	f.focus = (i%fieldCount + fieldCount) % fieldCount
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
	switch f.focus {
	case fieldName:
		return f.name.Focus()
	case fieldEmail:
		return f.email.Focus()
	default:
		return f.message.Focus()
	}
}

func (f *contactForm) next(delta int) tea.Cmd {
	return f.focusField(f.focus + delta)
}

func (f *contactForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldEmail:
		f.email, cmd = f.email.Update(msg)
	default:
		f.message, cmd = f.message.Update(msg)
	}
	f.err = ""
	return cmd
}

func (f *contactForm) values() model.ContactMessage {
	return model.ContactMessage{
		Name:    strings.TrimSpace(f.name.Value()),
		Email:   strings.TrimSpace(f.email.Value()),
		Message: strings.TrimSpace(f.message.Value()),
	}
}

func validateMessage(msg model.ContactMessage) error {
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return errMissingFields
	}
	if !strings.Contains(msg.Email, "@") {
		return errInvalidEmail
	}
	return nil
}

func (f *contactForm) reset() {
	f.name.Reset()
	f.email.Reset()
	f.message.Reset()
	f.err = ""
	f.focus = fieldName
	if f.active {
		f.focusField(fieldName)
	}
}

// view renders the form at a fixed height.
func (f *contactForm) view(width int) []string {
	label := func(i int, text string) string {
		if f.active && f.focus == i {
			return accentStyle.Render(text)
		}
		return headingStyle.Render(text)
	}
	lines := []string{
		headingStyle.Render("Send a Message"),
		"",
		label(fieldName, "Name"),
		f.name.View(),
		label(fieldEmail, "Email"),
		f.email.View(),
		label(fieldMessage, "Message"),
	}
	msg := strings.Split(f.message.View(), "\n")
	for i := 0; i < messageHeight; i++ {
		if i < len(msg) {
			lines = append(lines, msg[i])
		} else {
			lines = append(lines, "")
		}
	}
	lines = append(lines, "")
	if f.active {
		lines = append(lines, footerStyle.Render("tab next field · ctrl+s send · esc close"))
	} else {
		lines = append(lines, footerStyle.Render("press f to write a message"))
	}
	if f.err != "" {
		lines = append(lines, errorStyle.Render(f.err))
	} else {
		lines = append(lines, "")
	}
	for i, l := range lines {
		lines[i] = fit(l, width)
	}
	return lines
}
