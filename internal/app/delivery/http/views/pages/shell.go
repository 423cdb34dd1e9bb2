package pages

import (
	"context"
	"io"
	"login-service/internal/app/delivery/http/views/layout"

	"github.com/a-h/templ"
)

const pageStyle = `body{margin:0;min-height:100vh;display:flex;flex-direction:column;background:#191919;color:#fff;font-family:system-ui,sans-serif}` +
	`.card{min-width:300px;background:#242424;border-radius:8px;padding:24px;text-align:left}` +
	`.card h1{font-size:20px;margin:0 0 16px}` +
	`label{display:block;margin-bottom:8px}` +
	`input{box-sizing:border-box;width:100%;padding:8px;border-radius:4px;border:1px solid #555;background:#111;color:#fff}` +
	`input.invalid{border-color:#dc3545}` +
	`.feedback{color:#dc3545;font-size:14px;margin-top:4px}` +
	`button{width:100%;padding:10px;border:0;border-radius:4px;background:#2dc262;color:#fff;font-size:16px;cursor:pointer}` +
	`button:disabled,input:disabled{opacity:.6;cursor:not-allowed}`

// document wraps body in the html skeleton shared by every page.
func document(lang, title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!DOCTYPE html><html lang="` + templ.EscapeString(lang) + `"><head><meta charset="utf-8">` +
			`<meta name="viewport" content="width=device-width, initial-scale=1">` +
			`<title>` + templ.EscapeString(title) + `</title><style>` + pageStyle + `</style></head><body>`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := layout.VerticallyCentered(body).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

func raw(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func card(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="card">`); err != nil {
			return err
		}
		for _, child := range children {
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}
