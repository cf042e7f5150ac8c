package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeByName(t *testing.T) {
	for _, name := range ThemeNames() {
		theme, err := ThemeByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, theme.Name)
		assert.NotNil(t, theme.Variants)
	}

	_, err := ThemeByName("neon")
	assert.ErrorContains(t, err, "unknown theme")

	theme, err := ThemeByName(" DARK ")
	require.NoError(t, err)
	assert.Equal(t, "dark", theme.Name)
}

func TestNormalizeFillsRegistryAndSpacing(t *testing.T) {
	theme := Theme{Palette: DefaultTheme().Palette}.Normalize()
	require.NotNil(t, theme.Variants)
	assert.Equal(t, 2, PaddingValue(theme, SpacingSizeMedium))
	assert.NotNil(t, theme.Variants.Get(CardVariantPanel))
	assert.NotNil(t, theme.Variants.Get(AlertVariantInfo))
}

func TestVariantKeysDoNotCollide(t *testing.T) {
	theme := DefaultTheme()
	// ButtonVariantPrimary, BadgeVariantDefault and CardVariantPanel are all
	// zero but registered under distinct types.
	button := theme.Variants.Get(ButtonVariantPrimary)
	badge := theme.Variants.Get(BadgeVariantDefault)
	card := theme.Variants.Get(CardVariantPanel)
	require.NotNil(t, button)
	require.NotNil(t, badge)
	require.NotNil(t, card)

	assert.Equal(t, theme.Palette.Primary.Base, ResolveButton(theme, ButtonVariantPrimary, ButtonStateIdle).GetBackground())
	assert.Equal(t, theme.Palette.Neutral.Base, ResolveBadge(theme, BadgeVariantDefault).GetBackground())
	assert.Equal(t, theme.Palette.Neutral.Base, ResolveCard(theme, CardVariantPanel).GetBorderTopForeground())
}

func TestResolveOptionCombinesStates(t *testing.T) {
	theme := DefaultTheme()

	active := ResolveOption(theme, OptionActive)
	assert.Equal(t, theme.Palette.Primary.Base, active.GetBackground())

	selected := ResolveOption(theme, OptionSelected)
	assert.True(t, selected.GetBold())

	disabled := ResolveOption(theme, OptionDisabled)
	assert.True(t, disabled.GetFaint())
}

func TestResolveTriggerStates(t *testing.T) {
	theme := DefaultTheme()
	assert.Equal(t, theme.Palette.Danger.Base, ResolveTrigger(theme, TriggerInvalid).GetBorderTopForeground())
	assert.Equal(t, theme.Palette.Primary.Base, ResolveTrigger(theme, TriggerFocused).GetBorderTopForeground())
	assert.True(t, ResolveTrigger(theme, TriggerDisabled).GetFaint())
}

func TestResolveAlertTones(t *testing.T) {
	theme := DefaultTheme()
	frame, accent := ResolveAlert(theme, AlertVariantWarning)
	assert.Equal(t, theme.Palette.Warning.Base, frame.GetBorderTopForeground())
	assert.Equal(t, theme.Palette.Warning.Base, accent.GetForeground())

	assert.Equal(t, AlertVariantError, ParseAlertVariant("Error"))
	assert.Equal(t, AlertVariantInfo, ParseAlertVariant("unknown"))
	_, fallback := ResolveAlert(theme, ParseAlertVariant("unknown"))
	assert.Equal(t, theme.Palette.Info.Base, fallback.GetForeground())
}

func TestButtonAndBadgeRender(t *testing.T) {
	ctx := DefaultContext()
	out := NewButton("OK").WithState(ButtonStateFocused).ViewWithContext(ctx)
	assert.Contains(t, out, "OK")
	assert.Equal(t, ButtonStateFocused, NewButton("x").WithState(ButtonStateFocused).State())

	badge := ErrorBadge("failed")
	assert.Contains(t, badge.View(), "failed")
	assert.Equal(t, "failed", badge.Text())
}

func TestAddAppliersKeepsExistingStrategy(t *testing.T) {
	theme := DefaultTheme()
	b := NewBaseComponent()
	b.AddAppliers(Foreground(PaletteDanger))
	b.AddAppliers(State(true, false, false))

	style := b.ComputeStyle(theme)
	assert.Equal(t, theme.Palette.Danger.Base, style.GetForeground())
	assert.True(t, style.GetBold())
}

func plainLines(out string) []string {
	return strings.Split(ansi.Strip(out), "\n")
}

func TestTextWithoutPresetPassesThrough(t *testing.T) {
	row := "a\nbbb"
	assert.Equal(t, row, NewText(row).View())
	assert.Equal(t, row, NewText(row).Content())
	assert.Equal(t, "Title", ansi.Strip(TitleText("Title").View()))
}

func TestStackGapAndAlignment(t *testing.T) {
	row := HStack(NewText("a"), NewText(""), NewText("b")).WithGap(2).View()
	assert.Equal(t, "a  b", row)

	col := VStack(NewText("a"), NewText("b")).WithGap(1).View()
	assert.Equal(t, []string{"a", " ", "b"}, plainLines(col))

	right := VStack(NewText("a"), NewText("ccc")).WithAlign(lipgloss.Right).View()
	assert.Equal(t, []string{"  a", "ccc"}, plainLines(right))

	assert.Empty(t, VStack(NewText("")).View())
}

func TestCardSections(t *testing.T) {
	ctx := DefaultContext()
	out := NewCard(BodyText("body")).
		WithVariant(CardVariantDialog).
		WithTitle("Heading").
		WithFooter(HStack(NewText("[ok]"), NewText("[no]")).WithGap(1)).
		WithWidth(20).
		ViewWithContext(ctx)
	lines := plainLines(out)

	// border, title, margin, body, margin, footer, border
	require.Len(t, lines, 7)
	assert.Equal(t, 22, lipgloss.Width(lines[0]))
	assert.Contains(t, lines[1], "Heading")
	assert.Contains(t, lines[3], "body")
	assert.Contains(t, lines[5], "[ok] [no]")

	frame := ResolveCard(ctx.Theme, CardVariantDialog)
	assert.Equal(t, ctx.Theme.Palette.Primary.Base, frame.GetBorderTopForeground())
	assert.Equal(t, 1, frame.GetPaddingLeft())
}

func TestCardWithoutThemeRegistry(t *testing.T) {
	theme := DefaultTheme()
	theme.Variants = nil
	out := NewCard(NewText("row")).ViewWithContext(RenderContext{Theme: theme})
	assert.Len(t, plainLines(out), 3)
}

func TestAlertDismissGlyphSitsAtRightEdge(t *testing.T) {
	out := NewAlert("Saved to disk").
		WithTitle("Saved").
		WithVariant(AlertVariantSuccess).
		WithDismiss(true).
		WithWidth(30).
		View()
	lines := plainLines(out)
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.Equal(t, 30, lipgloss.Width(line))
	}
	assert.True(t, strings.HasPrefix(strings.TrimLeft(lines[1], "│ "), "✓ Saved"))
	assert.True(t, strings.HasSuffix(lines[1], DismissGlyph+" │"))
	assert.Contains(t, lines[2], "Saved to disk")
}

func TestAlertWithoutTitleUsesMessageAsHeading(t *testing.T) {
	alert := ErrorAlert("disk full")
	lines := plainLines(alert.View())
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "✗ disk full")
	assert.Equal(t, AlertVariantError, alert.Variant())
	assert.Equal(t, "disk full", alert.Message())

	plain := NewAlert("x").WithIcon("").View()
	assert.Contains(t, plainLines(plain)[1], "│ x │")
}
