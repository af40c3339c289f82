package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/shopmate/internal/domain/auth"
	"github.com/alexisbeaulieu97/shopmate/internal/domain/checkout"
)

// fieldSpec describes one input of a form.
type fieldSpec struct {
	key         string
	label       string
	placeholder string
	secret      bool
	limit       int
}

type formField struct {
	fieldSpec
	input  textinput.Model
	hidden bool
}

// form is a vertical list of text inputs with a single focused field.
type form struct {
	fields []*formField
	focus  int
}

func newForm(specs ...fieldSpec) *form {
	f := &form{}
	for _, spec := range specs {
		in := textinput.New()
		in.Placeholder = spec.placeholder
		in.Prompt = ""
		if spec.limit > 0 {
			in.CharLimit = spec.limit
		}
		if spec.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		f.fields = append(f.fields, &formField{fieldSpec: spec, input: in})
	}
	f.focusAt(0)
	return f
}

func (f *form) value(key string) string {
	for _, field := range f.fields {
		if field.key == key {
			return field.input.Value()
		}
	}
	return ""
}

func (f *form) setValue(key, value string) {
	for _, field := range f.fields {
		if field.key == key {
			field.input.SetValue(value)
			return
		}
	}
}

func (f *form) focusedKey() string {
	if f.focus < 0 || f.focus >= len(f.fields) {
		return ""
	}
	return f.fields[f.focus].key
}

func (f *form) setHidden(key string, hidden bool) {
	for _, field := range f.fields {
		if field.key == key {
			field.hidden = hidden
		}
	}
	if f.focus < len(f.fields) && f.fields[f.focus].hidden {
		f.next()
	}
}

func (f *form) focusAt(index int) {
	for i, field := range f.fields {
		if i == index {
			field.input.Focus()
		} else {
			field.input.Blur()
		}
	}
	f.focus = index
}

func (f *form) next() {
	f.step(1)
}

func (f *form) prev() {
	f.step(-1)
}

func (f *form) step(delta int) {
	n := len(f.fields)
	if n == 0 {
		return
	}
	index := f.focus
	for i := 0; i < n; i++ {
		index = (index + delta + n) % n
		if !f.fields[index].hidden {
			f.focusAt(index)
			return
		}
	}
}

func (f *form) reset() {
	for _, field := range f.fields {
		field.input.Reset()
	}
	f.focusAt(0)
	if len(f.fields) > 0 && f.fields[0].hidden {
		f.next()
	}
}

// update forwards a message to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	if f.focus < 0 || f.focus >= len(f.fields) {
		return nil
	}
	var cmd tea.Cmd
	field := f.fields[f.focus]
	field.input, cmd = field.input.Update(msg)
	return cmd
}

func (f *form) view(s Styles) string {
	var b strings.Builder
	for i, field := range f.fields {
		if field.hidden {
			continue
		}
		label := s.Label.Render(field.label)
		if i == f.focus {
			label = s.FocusedLabel.Render("› " + field.label)
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(s.Input.Render(field.input.View()))
		b.WriteString("\n")
	}
	return b.String()
}

func newLoginForm() *form {
	return newForm(
		fieldSpec{key: "email", label: "Email", placeholder: "you@example.com", limit: 254},
		fieldSpec{key: "password", label: "Password", secret: true, limit: 128},
	)
}

func (f *form) credentials() auth.Credentials {
	return auth.Credentials{Email: f.value("email"), Password: f.value("password")}
}

func newRegisterForm() *form {
	return newForm(
		fieldSpec{key: "name", label: "Full Name", placeholder: "Ada Lovelace", limit: 120},
		fieldSpec{key: "email", label: "Email", placeholder: "you@example.com", limit: 254},
		fieldSpec{key: "password", label: "Password", secret: true, limit: 128},
		fieldSpec{key: "confirmPassword", label: "Confirm Password", secret: true, limit: 128},
	)
}

func (f *form) registration() auth.Registration {
	return auth.Registration{
		Name:     f.value("name"),
		Email:    f.value("email"),
		Password: f.value("password"),
		Confirm:  f.value("confirmPassword"),
	}
}

func newCheckoutForm() *form {
	return newForm(
		fieldSpec{key: "name", label: "Full Name", limit: 120},
		fieldSpec{key: "email", label: "Email", placeholder: "you@example.com", limit: 254},
		fieldSpec{key: "address", label: "Address", limit: 200},
		fieldSpec{key: "city", label: "City", limit: 80},
		fieldSpec{key: "state", label: "State", limit: 80},
		fieldSpec{key: "zipCode", label: "ZIP Code", limit: 10},
		fieldSpec{key: "cardNumber", label: "Card Number", placeholder: "1234 5678 9012 3456", limit: 23},
		fieldSpec{key: "expiryDate", label: "Expiry Date", placeholder: "MM/YY", limit: 5},
		fieldSpec{key: "cvv", label: "CVV", placeholder: "123", secret: true, limit: 4},
		fieldSpec{key: "upiId", label: "UPI ID", placeholder: "name@bank", limit: 64},
	)
}

// showPayment hides the inputs that do not apply to method.
func (f *form) showPayment(method checkout.PaymentMethod) {
	card := method == checkout.PaymentCard
	f.setHidden("cardNumber", !card)
	f.setHidden("expiryDate", !card)
	f.setHidden("cvv", !card)
	f.setHidden("upiId", method != checkout.PaymentUPI)
}

func (f *form) checkoutForm(method checkout.PaymentMethod) checkout.Form {
	return checkout.Form{
		Name:          f.value("name"),
		Email:         f.value("email"),
		Address:       f.value("address"),
		City:          f.value("city"),
		State:         f.value("state"),
		ZipCode:       f.value("zipCode"),
		PaymentMethod: method,
		CardNumber:    f.value("cardNumber"),
		ExpiryDate:    f.value("expiryDate"),
		CVV:           f.value("cvv"),
		UPIID:         f.value("upiId"),
	}
}
