package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/floatkit/internal/ui/components"
	"github.com/alexisbeaulieu97/floatkit/internal/widgets"
)

// Row and column positions shared by View and layout.
const (
	contentIndent = 2
	labelRow      = 2
	selectRow     = 3
	buttonRow     = 8
	statusRow     = 10
	buttonGap     = 2
)

var buttonLabels = map[string]string{
	buttonSave:   "Save",
	buttonDelete: "Delete…",
	buttonNotify: "Notify",
}

func buttonWidth(theme components.Theme, label string) int {
	return lipgloss.Width(components.NewButton(label).ViewWithContext(components.RenderContext{Theme: theme}))
}

// View renders the controls and composites every open overlay on top.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	rows := make([]string, statusRow+1)
	rows[0] = titleStyle.Render("floatkit • overlay showcase")
	rows[labelRow] = indent(sectionStyle.Render("Fruit"))

	trigger := strings.Split(m.fruit.View(), "\n")
	for i, line := range trigger {
		if selectRow+i < buttonRow {
			rows[selectRow+i] = indent(line)
		}
	}

	rows[buttonRow] = indent(m.renderButtons())
	rows[statusRow] = indent(m.renderStatus())
	rows = append(rows, "", indent(m.help.View(helpKeys{m.keys})))

	base := strings.Join(rows, "\n")
	stage := widgets.NewStage(m.width, m.height)
	return stage.Compose(base, m.layers()...)
}

func (m *Model) layers() []widgets.Layer {
	var layers []widgets.Layer
	if layer, ok := m.fruit.Layer(); ok {
		layers = append(layers, layer)
	}
	if layer, ok := m.hint.Layer(); ok {
		layers = append(layers, layer)
	}
	if layer, ok := m.confirm.Layer(); ok {
		layers = append(layers, layer)
	}
	if layer, ok := m.toaster.Layer(); ok {
		layers = append(layers, layer)
	}
	return layers
}

func (m *Model) context() components.RenderContext {
	return components.RenderContext{Theme: m.theme}
}

func (m *Model) renderButtons() string {
	focused := m.Focused()
	row := components.HStack().WithGap(buttonGap)
	for _, id := range buttonOrder {
		variant := components.ButtonVariantSecondary
		if id == buttonDelete {
			variant = components.ButtonVariantError
		}
		state := components.ButtonStateIdle
		if id == focused {
			state = components.ButtonStateFocused
		}
		row.Add(components.NewButton(buttonLabels[id]).WithVariant(variant).WithState(state))
	}
	return row.ViewWithContext(m.context())
}

func (m *Model) renderStatus() string {
	return components.HStack(
		components.NewBadge(m.statusTag).WithVariant(m.statusTone),
		components.NewText(statusStyle.Render(m.status)),
	).WithGap(1).ViewWithContext(m.context())
}

func indent(s string) string {
	return strings.Repeat(" ", contentIndent) + s
}
