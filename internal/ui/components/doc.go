// Package components resolves enumerated component options to lipgloss
// styles through a theme-owned variant registry.
//
// # Theme System
//
// Themes are immutable and passed explicitly, either directly to a resolve
// function or through a RenderContext:
//
//	theme := components.DarkTheme()
//	trigger := components.ResolveTrigger(theme, components.TriggerOpen)
//	row := components.ResolveOption(theme, components.OptionActive|components.OptionSelected)
//
// Static components such as Badge and Button are thin wrappers over the same
// registry:
//
//	label := components.SuccessBadge("saved").ViewWithContext(ctx)
//
// Card, Alert and Stack compose those pieces into the frames the overlay
// widgets draw:
//
//	dialog := components.NewCard(components.BodyText("Discard changes?")).
//		WithVariant(components.CardVariantDialog).
//		WithFooter(components.HStack(cancel, ok).WithGap(1))
//
// # Style Modifiers
//
// Registry entries are built from StyleFunc modifiers:
//
//   - Background(slot): Semantic background color with matching foreground
//   - Foreground(slot): Semantic text color
//   - Border(variant), BorderColour(slot): Border style and tint from the theme
//   - Padding/PaddingX/PaddingY(size): Spacing from theme scale
//   - Typography(variant): Typography preset from theme
//
// Custom themes start from a built-in theme, replace palette slots and call
// Normalize; a theme without a registry gets the default variants.
package components
