package components

// Text is a run of content drawn in one typography preset. A Text without a
// preset is passed through untouched, which lets pre-rendered rows take part
// in stacks and cards.
type Text struct {
	BaseComponent
	content string
	styled  bool
}

// NewText wraps content without styling it.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with the default theme.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given theme context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	if !t.styled {
		return t.content
	}
	return t.ComputeStyle(ctx.Theme).Render(t.content)
}

// Content returns the unstyled content.
func (t *Text) Content() string {
	return t.content
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	t.styled = true
	return t
}

// TitleText creates text in the theme's title preset.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantTitle))
}

// BodyText creates text in the theme's body preset.
func BodyText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantBody))
}

// MutedText creates text in the theme's muted preset.
func MutedText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantMuted))
}
