package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vibetune/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with VibeTune styling and an inline
// validation message.
type TextInput struct {
	Model  textinput.Model
	Label  string
	Masked bool
	err    string
}

// NewTextInput creates a new styled text input. Masked inputs echo bullets.
func NewTextInput(label, placeholder string, masked bool, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	if masked {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return TextInput{
		Model:  ti,
		Label:  label,
		Masked: masked,
	}
}

// Focus focuses the input and returns the cursor blink command.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update handles messages. Editing clears the validation message.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); ok && t.Model.Focused() {
		t.err = ""
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label, input and any validation message.
func (t TextInput) View() string {
	view := ""
	if t.Label != "" {
		style := theme.Unselected
		if t.Model.Focused() {
			style = theme.Selected
		}
		view = style.Render(t.Label) + "\n"
	}
	view += t.Model.View()
	if t.err != "" {
		view += "\n" + theme.ErrorText.Render("✗ "+t.err)
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(s string) {
	t.Model.SetValue(s)
}

// Reset clears the value and the validation message.
func (t *TextInput) Reset() {
	t.Model.Reset()
	t.err = ""
}

// SetError shows msg under the input. An empty msg clears it.
func (t *TextInput) SetError(msg string) {
	t.err = msg
}

// Error returns the validation message.
func (t TextInput) Error() string {
	return t.err
}
