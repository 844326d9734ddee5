package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lixenwraith/vtframe/terminal"
)

// Binding identifies a key independent of modifiers that the Key value already encodes
type Binding struct {
	Key  terminal.Key
	Rune rune
}

// BindingOf derives the lookup key for an event
func BindingOf(ev terminal.Event) Binding {
	if ev.Key == terminal.KeyRune {
		return Binding{Key: terminal.KeyRune, Rune: ev.Rune}
	}
	return Binding{Key: ev.Key}
}

// RuneBinding binds a printable character
func RuneBinding(r rune) Binding {
	if r == ' ' {
		return Binding{Key: terminal.KeySpace}
	}
	return Binding{Key: terminal.KeyRune, Rune: r}
}

// KeyBinding binds a non-printable key
func KeyBinding(k terminal.Key) Binding {
	return Binding{Key: k}
}

// Rune aliases for characters awkward to write bare in config files
var runeAliases = map[string]rune{
	"backslash": '\\',
	"hash":      '#',
	"colon":     ':',
}

// ParseBinding accepts a key name ("ctrl_q", "f5", "escape"), an alias or a single character
func ParseBinding(s string) (Binding, error) {
	if k, ok := terminal.ParseKey(s); ok {
		return Binding{Key: k}, nil
	}
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return RuneBinding(r), nil
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return RuneBinding(r), nil
	}
	return Binding{}, fmt.Errorf("unknown key %q", s)
}

// String renders the binding in ParseBinding syntax
func (b Binding) String() string {
	if b.Key == terminal.KeyRune {
		return string(b.Rune)
	}
	return b.Key.String()
}

// Action handles a bound key
type Action func(ev terminal.Event)

// Bindings maps keys to actions
type Bindings map[Binding]Action

// Bind installs fn for b, replacing any existing action
func (m Bindings) Bind(b Binding, fn Action) {
	m[b] = fn
}

// Unbind removes the action for b
func (m Bindings) Unbind(b Binding) {
	delete(m, b)
}

// Handle runs the action bound to ev's key and reports whether one existed
func (m Bindings) Handle(ev terminal.Event) bool {
	fn, ok := m[BindingOf(ev)]
	if !ok || fn == nil {
		return false
	}
	fn(ev)
	return true
}

// BindNamed resolves a config table of action name → key name against the provided actions.
// Unknown action names and unparsable keys are reported together
func (m Bindings) BindNamed(keys map[string]string, actions map[string]Action) error {
	var errs []string
	for name, keyName := range keys {
		fn, ok := actions[name]
		if !ok {
			errs = append(errs, fmt.Sprintf("unknown action %q", name))
			continue
		}
		b, err := ParseBinding(keyName)
		if err != nil {
			errs = append(errs, fmt.Sprintf("action %q: %v", name, err))
			continue
		}
		m.Bind(b, fn)
	}
	if len(errs) > 0 {
		return fmt.Errorf("key bindings: %s", strings.Join(errs, "; "))
	}
	return nil
}
