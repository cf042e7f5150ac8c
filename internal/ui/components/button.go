package components

import (
	"github.com/charmbracelet/lipgloss"
)

type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantSuccess
	ButtonVariantError
	ButtonVariantWarning
	ButtonVariantInfo
	ButtonVariantMuted
)

// ButtonState is the interaction state a button is drawn in.
type ButtonState int

const (
	ButtonStateIdle ButtonState = iota
	ButtonStateFocused
	ButtonStateDisabled
)

// ResolveButton maps a variant and state to the button style.
func ResolveButton(theme Theme, variant ButtonVariant, state ButtonState) lipgloss.Style {
	style := theme.Variants.Resolve(variant, lipgloss.NewStyle(), theme)
	return theme.Variants.Resolve(state, style, theme)
}

// Button renders a labelled action.
type Button struct {
	BaseComponent
	label   string
	variant ButtonVariant
	state   ButtonState
}

// NewButton creates a new button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
	}
}

// View renders the button with the default theme.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	style := theme.Variants.Resolve(b.variant, b.ComputeStyle(theme), theme)
	style = theme.Variants.Resolve(b.state, style, theme)
	return style.Render(b.label)
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithState sets the interaction state.
func (b *Button) WithState(state ButtonState) *Button {
	b.state = state
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// State returns the interaction state.
func (b *Button) State() ButtonState {
	return b.state
}

func registerButtonVariants(registry *VariantRegistry) {
	slots := map[ButtonVariant]PaletteSlot{
		ButtonVariantPrimary:   PalettePrimary,
		ButtonVariantSecondary: PaletteSecondary,
		ButtonVariantSuccess:   PaletteSuccess,
		ButtonVariantError:     PaletteDanger,
		ButtonVariantWarning:   PaletteWarning,
		ButtonVariantInfo:      PaletteInfo,
		ButtonVariantMuted:     PaletteNeutral,
	}
	for variant, slot := range slots {
		registry.Register(variant, NewCompositeStrategy(
			Background(slot),
			PaddingX(SpacingSizeMedium),
		))
	}

	registry.Register(ButtonStateFocused, NewCompositeStrategy(State(true, false, true)))
	registry.Register(ButtonStateDisabled, NewCompositeStrategy(State(false, true, false)))
}
