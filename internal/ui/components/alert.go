package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DismissGlyph is drawn at the end of a dismissible alert's first row.
const DismissGlyph = "×"

// AlertVariant is the tone of an alert.
type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantSuccess
	AlertVariantWarning
	AlertVariantError
)

// ParseAlertVariant maps a tone name to its variant. Unknown names are info.
func ParseAlertVariant(name string) AlertVariant {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "success":
		return AlertVariantSuccess
	case "warning":
		return AlertVariantWarning
	case "error":
		return AlertVariantError
	default:
		return AlertVariantInfo
	}
}

type alertAccent AlertVariant

// ResolveAlert returns the frame and the accent (icon and title) styles of
// an alert variant.
func ResolveAlert(theme Theme, variant AlertVariant) (frame, accent lipgloss.Style) {
	frame = theme.Variants.Resolve(variant, lipgloss.NewStyle(), theme)
	accent = theme.Variants.Resolve(alertAccent(variant), lipgloss.NewStyle(), theme)
	return frame, accent
}

// Alert is a framed message with a tone icon, an optional title and an
// optional dismiss control.
type Alert struct {
	BaseComponent
	message     string
	title       string
	icon        string
	variant     AlertVariant
	dismissible bool
	width       int
}

// NewAlert creates an info alert with the given message.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
		variant:       AlertVariantInfo,
		icon:          "ℹ",
	}
}

// View renders the alert with the default theme.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert. The frame width comes from WithWidth, or
// ctx.Width when unset; zero leaves the alert as wide as its content.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	if theme.Variants == nil {
		theme = theme.Normalize()
	}
	frame := theme.Variants.Resolve(a.variant, a.ComputeStyle(theme), theme)
	accent := theme.Variants.Resolve(alertAccent(a.variant), lipgloss.NewStyle(), theme)

	heading, detail := a.title, a.message
	if heading == "" {
		heading, detail = a.message, ""
	}
	if a.icon != "" {
		heading = a.icon + " " + heading
	}

	width := a.width
	if width <= 0 {
		width = ctx.Width
	}
	inner := 0
	if width > 0 {
		inner = max(width-frame.GetHorizontalFrameSize(), lipgloss.Width(DismissGlyph)+2)
		frame = frame.Width(inner + frame.GetHorizontalPadding())
	}

	var header string
	switch {
	case a.dismissible && inner > 0:
		title := accent.Width(inner - lipgloss.Width(DismissGlyph) - 1).Render(heading)
		header = lipgloss.JoinHorizontal(lipgloss.Top, title, " ", DismissGlyph)
	case a.dismissible:
		header = accent.Render(heading) + " " + DismissGlyph
	case inner > 0:
		header = accent.Width(inner).Render(heading)
	default:
		header = accent.Render(heading)
	}

	if detail == "" {
		return frame.Render(header)
	}
	body := lipgloss.NewStyle()
	if inner > 0 {
		body = body.Width(inner)
	}
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, header, body.Render(detail)))
}

// WithVariant sets the tone and its default icon.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	switch variant {
	case AlertVariantSuccess:
		a.icon = "✓"
	case AlertVariantWarning:
		a.icon = "!"
	case AlertVariantError:
		a.icon = "✗"
	default:
		a.icon = "ℹ"
	}
	return a
}

// WithIcon replaces the tone icon; an empty icon draws none.
func (a *Alert) WithIcon(icon string) *Alert {
	a.icon = icon
	return a
}

// WithTitle adds a title line above the message.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithDismiss toggles the dismiss control.
func (a *Alert) WithDismiss(dismissible bool) *Alert {
	a.dismissible = dismissible
	return a
}

// WithWidth fixes the outer width, border included.
func (a *Alert) WithWidth(width int) *Alert {
	a.width = width
	return a
}

// WithAppliers applies theme-based style modifiers to the frame.
func (a *Alert) WithAppliers(appliers ...StyleFunc) *Alert {
	a.AddAppliers(appliers...)
	return a
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}

// Variant returns the alert tone.
func (a *Alert) Variant() AlertVariant {
	return a.variant
}

// SuccessAlert creates a success alert.
func SuccessAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantSuccess)
}

// WarningAlert creates a warning alert.
func WarningAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantWarning)
}

// ErrorAlert creates an error alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantError)
}

func alertSlot(variant AlertVariant) PaletteSlot {
	switch variant {
	case AlertVariantSuccess:
		return PaletteSuccess
	case AlertVariantWarning:
		return PaletteWarning
	case AlertVariantError:
		return PaletteDanger
	default:
		return PaletteInfo
	}
}

func registerAlertVariants(registry *VariantRegistry) {
	for _, variant := range []AlertVariant{AlertVariantInfo, AlertVariantSuccess, AlertVariantWarning, AlertVariantError} {
		slot := alertSlot(variant)
		registry.Register(variant, NewCompositeStrategy(
			Typography(TypographyVariantBody),
			Border(BorderVariantRounded),
			BorderColour(slot),
			PaddingX(SpacingSizeSmall),
		))
		registry.Register(alertAccent(variant), NewCompositeStrategy(Foreground(slot), State(true, false, false)))
	}
}
