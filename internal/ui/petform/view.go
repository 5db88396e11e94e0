package petform

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	focusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	suggestStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#fab387"))
	buttonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("#4CAF50")).Padding(0, 1)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 2)
)

func (m Model) View() string {
	var b strings.Builder

	box := boxStyle
	if m.width > 4 {
		box = box.Width(m.width - 4)
	}

	b.WriteString(titleStyle.Render("Pets"))
	b.WriteString("\n\n")

	b.WriteString(box.Render(strings.Join([]string{
		m.renderField(fieldSearch),
		m.renderField(fieldFilterAge) + mutedStyle.Render("  (only numbers allowed)"),
		m.renderField(fieldFilterDescription),
	}, "\n")))
	b.WriteString("\n")

	b.WriteString(box.Render(m.renderForm()))
	b.WriteString("\n")

	b.WriteString(box.Render(m.renderList()))
	b.WriteString("\n")

	if m.status != "" {
		st := okStyle
		if m.statusErr {
			st = errorStyle
		}
		b.WriteString(st.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render(m.renderHelp()))
	return b.String()
}

func (m Model) renderField(f field) string {
	label := labelStyle.Render(fieldLabels[f] + ": ")
	value := m.fields[f]
	if f == m.focus {
		label = focusStyle.Render("> " + fieldLabels[f] + ": ")
		value += "█"
	}
	return label + value
}

func (m Model) renderForm() string {
	photo := mutedStyle.Render("no photo")
	if m.image != "" {
		photo = m.image
	}

	action := "Add Pet"
	if m.editingID != "" {
		action = "Update Pet"
	}

	return strings.Join([]string{
		labelStyle.Render("Photo: ") + photo,
		m.renderField(fieldName),
		m.renderField(fieldAge),
		m.renderField(fieldDescription),
		buttonStyle.Render(action),
	}, "\n")
}

func (m Model) renderList() string {
	vis := m.visible()
	if len(vis) == 0 {
		lines := []string{mutedStyle.Render("No pets")}
		if s := Suggest(m.items, m.fields[fieldSearch]); len(s) > 0 {
			lines = append(lines, suggestStyle.Render("Did you mean: "+strings.Join(s, ", ")+"?"))
		}
		return strings.Join(lines, "\n")
	}

	lines := make([]string, 0, len(vis)*3)
	for i, p := range vis {
		prefix := "  "
		if i == m.cursor {
			prefix = "> "
		}
		head := fmt.Sprintf("%sName: %s  Age: %s", prefix, p.Name, p.Age)
		if i == m.cursor {
			head = focusStyle.Render(head)
		}
		lines = append(lines, head)
		if p.HasDescription() {
			lines = append(lines, "    Description: "+p.Description)
		}
		if p.Image != "" {
			lines = append(lines, mutedStyle.Render("    Photo: "+p.Image))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderHelp() string {
	parts := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
