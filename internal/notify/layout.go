package notify

import (
	"context"
	"io"

	"github.com/a-h/templ"
	cmp "maragu.dev/gomponents"
)

const (
	emailHead   = `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`
	emailBody   = `</title></head><body style="font-family:sans-serif;color:#1a2e1f;line-height:1.5">`
	emailFooter = `<p style="color:#64748b;font-size:12px">EcoWaste · Smart waste management for a cleaner tomorrow</p></body></html>`
)

// emailLayout is the HTML document shared by every notification.
func emailLayout(subject string, content cmp.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, emailHead+templ.EscapeString(subject)+emailBody); err != nil {
			return err
		}
		if err := content.Render(w); err != nil {
			return err
		}
		_, err := io.WriteString(w, emailFooter)
		return err
	})
}
