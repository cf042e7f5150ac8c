package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Surface names a styled region of an overlay.
type Surface int

const (
	SurfaceTooltip Surface = iota
	SurfaceBackdrop
	SurfacePlaceholder
	SurfaceErrorText
)

// TriggerState is the state a select trigger is drawn in.
type TriggerState int

const (
	TriggerIdle TriggerState = iota
	TriggerFocused
	TriggerOpen
	TriggerDisabled
	TriggerInvalid
)

// OptionState flags how a listbox option is drawn. States combine.
type OptionState int

const (
	OptionActive OptionState = 1 << iota
	OptionSelected
	OptionDisabled
)

// ResolveSurface returns the style of an overlay region.
func ResolveSurface(theme Theme, surface Surface) lipgloss.Style {
	return theme.Variants.Resolve(surface, lipgloss.NewStyle(), theme)
}

// ResolveTrigger returns the select trigger style.
func ResolveTrigger(theme Theme, state TriggerState) lipgloss.Style {
	return theme.Variants.Resolve(state, lipgloss.NewStyle(), theme)
}

// ResolveOption returns the style of one listbox row.
func ResolveOption(theme Theme, state OptionState) lipgloss.Style {
	style := lipgloss.NewStyle().Inherit(theme.Typography.Body).PaddingLeft(1).PaddingRight(1)
	for _, flag := range []OptionState{OptionSelected, OptionActive, OptionDisabled} {
		if state&flag != 0 {
			style = theme.Variants.Resolve(flag, style, theme)
		}
	}
	return style
}

func registerOverlayVariants(registry *VariantRegistry) {
	registry.Register(SurfaceTooltip, NewCompositeStrategy(
		Background(PaletteNeutral),
		PaddingX(SpacingSizeSmall),
	))
	registry.Register(SurfaceBackdrop, NewCompositeStrategy(
		Foreground(PaletteNeutral),
		State(false, true, false),
	))
	registry.Register(SurfacePlaceholder, NewCompositeStrategy(Typography(TypographyVariantMuted)))
	registry.Register(SurfaceErrorText, NewCompositeStrategy(Foreground(PaletteDanger)))

	trigger := []StyleFunc{
		Typography(TypographyVariantBody),
		Border(BorderVariantRounded),
		PaddingX(SpacingSizeSmall),
	}
	withTrigger := func(extra ...StyleFunc) StyleStrategy {
		return NewCompositeStrategy(append(append([]StyleFunc(nil), trigger...), extra...)...)
	}
	registry.Register(TriggerIdle, withTrigger(BorderColour(PaletteNeutral)))
	registry.Register(TriggerFocused, withTrigger(BorderColour(PalettePrimary)))
	registry.Register(TriggerOpen, withTrigger(BorderColour(PalettePrimary), State(true, false, false)))
	registry.Register(TriggerDisabled, withTrigger(BorderColour(PaletteNeutral), State(false, true, false)))
	registry.Register(TriggerInvalid, withTrigger(BorderColour(PaletteDanger)))

	registry.Register(OptionSelected, NewCompositeStrategy(Foreground(PalettePrimary), State(true, false, false)))
	registry.Register(OptionActive, NewCompositeStrategy(Background(PalettePrimary)))
	registry.Register(OptionDisabled, NewCompositeStrategy(State(false, true, false)))
}
