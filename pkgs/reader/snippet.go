package reader

import (
	"fmt"
	"strings"
)

// Snippet renders a Clang/Rust-style source pointer: the offending line
// with a caret under the named column, preceded by a "--> line:col"
// header.
func Snippet(input string, line, column int) string {
	lines := strings.Split(input, "\n")
	if line < 1 || line > len(lines) {
		return fmt.Sprintf("--> %d:%d", line, column)
	}
	src := lines[line-1]

	col := column
	if col < 1 {
		col = 1
	}
	pad := strings.Repeat(" ", col-1)

	return fmt.Sprintf("--> %d:%d\n%s\n%s^", line, column, src, pad)
}
