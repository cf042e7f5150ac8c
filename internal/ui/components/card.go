package components

import (
	"github.com/charmbracelet/lipgloss"
)

// CardVariant selects the frame a card is drawn in.
type CardVariant int

const (
	// CardVariantPanel is a plain bordered panel, used for dropdown lists.
	CardVariantPanel CardVariant = iota
	// CardVariantDialog is the accented, padded frame of a modal dialog.
	CardVariantDialog
)

type cardSection int

const (
	cardHeader cardSection = iota
	cardBody
	cardFooter
)

// ResolveCard returns the frame style of a card variant.
func ResolveCard(theme Theme, variant CardVariant) lipgloss.Style {
	return theme.Variants.Resolve(variant, lipgloss.NewStyle(), theme)
}

// Card frames an optional title, a body and an optional footer. Sections are
// separated by the spacing the theme registers for them.
type Card struct {
	BaseComponent
	variant CardVariant
	title   string
	body    []Renderable
	footer  Renderable
	width   int
}

// NewCard creates a panel card with the given body rows.
func NewCard(body ...Renderable) *Card {
	return &Card{
		BaseComponent: NewBaseComponent(),
		body:          body,
	}
}

// View renders the card with the default theme.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card with the given theme context.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	if theme.Variants == nil {
		theme = theme.Normalize()
		ctx = ctx.WithTheme(theme)
	}
	section := func(s cardSection) lipgloss.Style {
		return theme.Variants.Resolve(s, lipgloss.NewStyle(), theme)
	}

	sections := make([]string, 0, 3)
	if c.title != "" {
		sections = append(sections, section(cardHeader).Render(c.title))
	}
	if body := VStack(c.body...).ViewWithContext(ctx); body != "" {
		sections = append(sections, section(cardBody).Render(body))
	}
	if c.footer != nil {
		if footer := VStack(c.footer).ViewWithContext(ctx); footer != "" {
			sections = append(sections, section(cardFooter).Render(footer))
		}
	}

	frame := theme.Variants.Resolve(c.variant, c.ComputeStyle(theme), theme)
	if c.width > 0 {
		frame = frame.Width(c.width)
	}
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// WithVariant sets the card frame.
func (c *Card) WithVariant(variant CardVariant) *Card {
	c.variant = variant
	return c
}

// WithTitle sets the header line.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithFooter sets the footer row, typically a stack of buttons.
func (c *Card) WithFooter(footer Renderable) *Card {
	c.footer = footer
	return c
}

// WithWidth fixes the frame width, padding included and border excluded.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

// WithAppliers applies theme-based style modifiers to the frame.
func (c *Card) WithAppliers(appliers ...StyleFunc) *Card {
	c.AddAppliers(appliers...)
	return c
}

// Add appends body rows.
func (c *Card) Add(rows ...Renderable) *Card {
	c.body = append(c.body, rows...)
	return c
}

func registerCardVariants(registry *VariantRegistry) {
	registry.Register(CardVariantPanel, NewCompositeStrategy(
		Typography(TypographyVariantBody),
		Border(BorderVariantRounded),
		BorderColour(PaletteNeutral),
	))
	registry.Register(CardVariantDialog, NewCompositeStrategy(
		Typography(TypographyVariantBody),
		Border(BorderVariantRounded),
		BorderColour(PalettePrimary),
		PaddingX(SpacingSizeSmall),
	))

	registry.Register(cardHeader, NewCompositeStrategy(
		Typography(TypographyVariantTitle),
		func(base lipgloss.Style, _ Theme) lipgloss.Style { return base.MarginBottom(1) },
	))
	registry.Register(cardBody, NewCompositeStrategy(Typography(TypographyVariantBody)))
	registry.Register(cardFooter, NewCompositeStrategy(
		func(base lipgloss.Style, _ Theme) lipgloss.Style { return base.MarginTop(1) },
	))
}
