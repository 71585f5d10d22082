package editbox

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/unkn0wn-root/editline/internal/errdef"
)

// KeyMap encodes the keybindings recognized by the edit box.
type KeyMap struct {
	CharacterBackward key.Binding
	CharacterForward  key.Binding
	WordBackward      key.Binding
	WordForward       key.Binding
	LineStart         key.Binding
	LineEnd           key.Binding

	SelectBackward     key.Binding
	SelectForward      key.Binding
	SelectWordBackward key.Binding
	SelectWordForward  key.Binding
	SelectToStart      key.Binding
	SelectToEnd        key.Binding
	SelectAll          key.Binding

	DeleteCharacterBackward key.Binding
	DeleteCharacterForward  key.Binding

	Copy   key.Binding
	Cut    key.Binding
	Paste  key.Binding
	Submit key.Binding
}

// DefaultKeyMap is the default set of key bindings for navigating and acting
// upon the edit box.
var DefaultKeyMap = KeyMap{
	CharacterBackward: key.NewBinding(
		key.WithKeys("left", "ctrl+b"),
		key.WithHelp("left", "character backward"),
	),
	CharacterForward: key.NewBinding(
		key.WithKeys("right", "ctrl+f"),
		key.WithHelp("right", "character forward"),
	),
	WordBackward: key.NewBinding(
		key.WithKeys("ctrl+left", "alt+left", "alt+b"),
		key.WithHelp("ctrl+left", "word backward"),
	),
	WordForward: key.NewBinding(
		key.WithKeys("ctrl+right", "alt+right", "alt+f"),
		key.WithHelp("ctrl+right", "word forward"),
	),
	LineStart: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "line start"),
	),
	LineEnd: key.NewBinding(
		key.WithKeys("end", "ctrl+e"),
		key.WithHelp("end", "line end"),
	),

	SelectBackward: key.NewBinding(
		key.WithKeys("shift+left"),
		key.WithHelp("shift+left", "extend selection backward"),
	),
	SelectForward: key.NewBinding(
		key.WithKeys("shift+right"),
		key.WithHelp("shift+right", "extend selection forward"),
	),
	SelectWordBackward: key.NewBinding(
		key.WithKeys("ctrl+shift+left", "alt+shift+left"),
		key.WithHelp("ctrl+shift+left", "extend selection word backward"),
	),
	SelectWordForward: key.NewBinding(
		key.WithKeys("ctrl+shift+right", "alt+shift+right"),
		key.WithHelp("ctrl+shift+right", "extend selection word forward"),
	),
	SelectToStart: key.NewBinding(
		key.WithKeys("shift+home"),
		key.WithHelp("shift+home", "extend selection to start"),
	),
	SelectToEnd: key.NewBinding(
		key.WithKeys("shift+end"),
		key.WithHelp("shift+end", "extend selection to end"),
	),
	SelectAll: key.NewBinding(
		key.WithKeys("ctrl+a"),
		key.WithHelp("ctrl+a", "select all"),
	),

	DeleteCharacterBackward: key.NewBinding(
		key.WithKeys("backspace", "ctrl+h"),
		key.WithHelp("backspace", "delete character backward"),
	),
	DeleteCharacterForward: key.NewBinding(
		key.WithKeys("delete", "ctrl+d"),
		key.WithHelp("delete", "delete character forward"),
	),

	Copy: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "copy selection"),
	),
	Cut: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "cut selection"),
	),
	Paste: key.NewBinding(
		key.WithKeys("ctrl+v"),
		key.WithHelp("ctrl+v", "paste"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
}

// ApplyOverrides replaces individual bindings by name with the given key
// sequences. Names match the settings file keys: "character_backward",
// "select_all", "submit" and so on. Unknown names are an error so typos in
// the settings file surface at startup instead of silently losing a binding.
func (km *KeyMap) ApplyOverrides(overrides map[string][]string) error {
	for name, keys := range overrides {
		if len(keys) == 0 {
			return errdef.New(errdef.CodeConfig, "key override %q has no keys", name)
		}
		binding, ok := km.bindingByName(name)
		if !ok {
			return errdef.New(errdef.CodeConfig, "unknown key override %q", name)
		}
		binding.SetKeys(keys...)
	}
	return nil
}

func (km *KeyMap) bindingByName(name string) (*key.Binding, bool) {
	switch name {
	case "character_backward":
		return &km.CharacterBackward, true
	case "character_forward":
		return &km.CharacterForward, true
	case "word_backward":
		return &km.WordBackward, true
	case "word_forward":
		return &km.WordForward, true
	case "line_start":
		return &km.LineStart, true
	case "line_end":
		return &km.LineEnd, true
	case "select_backward":
		return &km.SelectBackward, true
	case "select_forward":
		return &km.SelectForward, true
	case "select_word_backward":
		return &km.SelectWordBackward, true
	case "select_word_forward":
		return &km.SelectWordForward, true
	case "select_to_start":
		return &km.SelectToStart, true
	case "select_to_end":
		return &km.SelectToEnd, true
	case "select_all":
		return &km.SelectAll, true
	case "delete_character_backward":
		return &km.DeleteCharacterBackward, true
	case "delete_character_forward":
		return &km.DeleteCharacterForward, true
	case "copy":
		return &km.Copy, true
	case "cut":
		return &km.Cut, true
	case "paste":
		return &km.Paste, true
	case "submit":
		return &km.Submit, true
	default:
		return nil, false
	}
}
