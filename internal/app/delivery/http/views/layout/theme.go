package layout

import (
	"context"
	"fmt"
)

type themeContextKey struct{}

// Theme carries the design tokens the primitives read at render time.
type Theme struct {
	SpacingUnit   int
	TextSecondary string
}

func DefaultTheme() Theme {
	return Theme{
		SpacingUnit:   8,
		TextSecondary: "rgba(255, 255, 255, 0.7)",
	}
}

// Spacing returns n spacing units as a CSS pixel length.
func (t Theme) Spacing(n int) string {
	return fmt.Sprintf("%dpx", t.SpacingUnit*n)
}

func WithTheme(ctx context.Context, theme Theme) context.Context {
	return context.WithValue(ctx, themeContextKey{}, theme)
}

func ThemeFromContext(ctx context.Context) Theme {
	if theme, ok := ctx.Value(themeContextKey{}).(Theme); ok && theme.SpacingUnit > 0 {
		return theme
	}
	return DefaultTheme()
}
