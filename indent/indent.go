// Package indent prints text indented by how deeply nested the caller is.
package indent

import (
	"fmt"
	"io"
	"strings"

	"github.com/sjaensch/guards/err"
)

const unit = "     "

// Indenter tracks a nesting depth. Each Enter must be matched by a Leave;
// the same Indenter may be entered again while already inside it.
// It is not safe for concurrent use.
type Indenter struct {
	level int
	w     io.Writer
}

// New returns an Indenter at level 0 that prints to w.
func New(w io.Writer) *Indenter {
	return &Indenter{w: w}
}

// Enter goes one level deeper and returns the new level.
func (i *Indenter) Enter() int {
	i.level++
	return i.level
}

// Leave goes back up one level.
func (i *Indenter) Leave() {
	err.Assertf(i.level > 0, "leave without matching enter")
	i.level--
}

// Level returns the current depth.
func (i *Indenter) Level() int {
	return i.level
}

// Do runs fn one level deeper and restores the level afterwards, even if
// fn panics.
func (i *Indenter) Do(fn func(level int)) {
	level := i.Enter()
	defer i.Leave()
	fn(level)
}

// Print writes text on its own line, prefixed by five spaces per level.
func (i *Indenter) Print(text string) {
	fmt.Fprintln(i.w, strings.Repeat(unit, i.level)+text)
}
