package petform

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	UpDown key.Binding
	Submit key.Binding
	Edit   key.Binding
	Delete key.Binding
	Photo  key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		UpDown: key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "select pet")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add/update")),
		Edit:   key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "edit")),
		Delete: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete")),
		Photo:  key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "photo")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel edit")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.UpDown, k.Submit, k.Edit, k.Delete, k.Photo, k.Cancel, k.Quit}
}
