package exgain

import (
	_ "embed"

	"github.com/charmbracelet/glamour"
	"github.com/pkg/errors"
)

//go:embed help.md
var helpText string

// renderHelp renders the key help for the given width.
func renderHelp(width int) (out string, err error) {

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(max(20, width-4)),
	)
	if err != nil {
		err = errors.Wrapf(err, "failed to create help renderer")
		return
	}

	out, err = renderer.Render(helpText)
	err = errors.Wrapf(err, "failed to render help")
	return
}
