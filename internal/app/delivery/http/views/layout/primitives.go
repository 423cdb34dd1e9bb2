package layout

import (
	"context"
	"fmt"
	"io"
	"login-service/internal/pkg/utils"
	"strings"

	"github.com/a-h/templ"
)

const (
	DefaultLabelWidth = "70%"
	DefaultValueWidth = "30%"
)

const (
	flexWrapperStyle = "display: flex; width: 100%; align-items: center;"
)

// styledDiv renders children inside a div carrying style.
func styledDiv(style func(ctx context.Context) string, children []templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div style="`+templ.EscapeString(style(ctx))+`">`); err != nil {
			return err
		}
		for _, child := range children {
			if child == nil {
				continue
			}
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func static(style string) func(context.Context) string {
	return func(context.Context) string { return style }
}

// cssLength returns width when it is a plain CSS length, fallback otherwise.
func cssLength(width, fallback string) string {
	width = strings.TrimSpace(width)
	if width == "" || utils.ValidateVar(width, "css_length") != nil {
		return fallback
	}
	return width
}

func VerticallyCentered(children ...templ.Component) templ.Component {
	return styledDiv(static("flex: 1; display: flex; align-items: center; justify-content: center; flex-direction: column; text-align: center; overflow: auto;"), children)
}

func DisclaimerContainer(children ...templ.Component) templ.Component {
	return styledDiv(static("margin: 16px 0; color: rgb(158, 150, 137); font-size: 14px;"), children)
}

// Row takes its bottom margin from the theme in ctx.
func Row(children ...templ.Component) templ.Component {
	return styledDiv(func(ctx context.Context) string {
		return fmt.Sprintf("min-height: 32px; display: flex; align-items: center; margin-bottom: %s; flex: 1;", ThemeFromContext(ctx).Spacing(2))
	}, children)
}

func Label(width string, children ...templ.Component) templ.Component {
	return styledDiv(func(ctx context.Context) string {
		return fmt.Sprintf("width: %s; color: %s;", cssLength(width, DefaultLabelWidth), ThemeFromContext(ctx).TextSecondary)
	}, children)
}

func Value(width string, children ...templ.Component) templ.Component {
	return styledDiv(static(fmt.Sprintf("display: flex; justify-content: flex-start; align-items: center; width: %s;", cssLength(width, DefaultValueWidth))), children)
}

func FlexWrapper(children ...templ.Component) templ.Component {
	return styledDiv(static(flexWrapperStyle), children)
}

func FreeFlowText(children ...templ.Component) templ.Component {
	return styledDiv(static("word-break: break-word; min-width: 30%; text-align: left;"), children)
}

func SpaceBetweenFlex(children ...templ.Component) templ.Component {
	return styledDiv(static(flexWrapperStyle+" justify-content: space-between;"), children)
}

func CenteredFlex(children ...templ.Component) templ.Component {
	return styledDiv(static(flexWrapperStyle+" justify-content: center;"), children)
}

func FluidContainer(children ...templ.Component) templ.Component {
	return styledDiv(static(flexWrapperStyle+" flex: 1;"), children)
}

func Overlay(zIndex int, children ...templ.Component) templ.Component {
	return styledDiv(static(fmt.Sprintf("display: flex; position: absolute; width: 100%%; height: 100%%; top: 0; left: 0; z-index: %d;", zIndex)), children)
}

// Text renders s escaped.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}
