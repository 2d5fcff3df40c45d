// Package render formats resolved definitions for the terminal.
package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/taranathan/dibble/internal/domain"
)

// Indentation levels of the output format. Dates and examples share the
// deepest level, aligned past the sense numbering.
const (
	posIndent    = "  "
	senseIndent  = "    "
	detailIndent = "       "
)

// Renderer writes formatted definitions to a single output writer. It
// assumes definitions already passed shard validation and has no error
// paths of its own.
type Renderer struct {
	w      io.Writer
	styles Styles
}

// New returns a Renderer for w with the default style registry.
func New(w io.Writer) *Renderer {
	return &Renderer{w: w, styles: DefaultStyles(lipgloss.NewRenderer(w))}
}

// NewWithStyles returns a Renderer for w using a caller-built registry.
func NewWithStyles(w io.Writer, styles Styles) *Renderer {
	return &Renderer{w: w, styles: styles}
}

// Definition writes the full formatted entry for def, everything in
// source order. Etymologies get a numbered header only when there is more
// than one; example sentences appear only when showExamples is set; a
// blank line closes out each part of speech.
func (r *Renderer) Definition(def *domain.Definition, showExamples bool) {
	fmt.Fprintln(r.w, r.styles.Word.Render(def.Word))

	for ei, etym := range def.Etymologies {
		if len(def.Etymologies) > 1 {
			fmt.Fprintln(r.w, r.styles.Etymology.Render(fmt.Sprintf("Etymology %d:", ei+1)))
		}

		for _, pos := range etym.PartsOfSpeech {
			fmt.Fprintln(r.w, posIndent+r.styles.POS.Render(pos.PartOfSpeech))

			for si, sense := range pos.Senses {
				fmt.Fprintf(r.w, "%s%s %s\n", senseIndent,
					r.styles.SenseNum.Render(fmt.Sprintf("%d.", si+1)), sense.Sense)

				if sense.Date != "" {
					fmt.Fprintln(r.w, detailIndent+r.styles.Date.Render("["+sense.Date+"]"))
				}

				if showExamples {
					for _, ex := range sense.Examples {
						fmt.Fprintln(r.w, detailIndent+r.styles.Example.Render(`"`+ex+`"`))
					}
				}
			}

			fmt.Fprintln(r.w)
		}
	}
}

// WordNotFound reports a lookup miss. A word absent from its shard is a
// product outcome, not a failure, so this renders like any other output.
func (r *Renderer) WordNotFound(word string) {
	fmt.Fprintln(r.w, r.styles.Alert.Render("Word not found: "+word))
}

// Alert writes msg on its own line in the alert style.
func (r *Renderer) Alert(msg string) {
	fmt.Fprintln(r.w, r.styles.Alert.Render(msg))
}
