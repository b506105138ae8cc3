package lib

import (
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffContext is the number of unchanged lines kept around each change
const DiffContext = 3

// ColorDiff renders a line diff from before to after. Removed lines are
// prefixed with "- " in red, added lines with "+ " in green, and long runs of
// unchanged lines are elided. Identical inputs give "".
func ColorDiff(before, after string) string {
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	removed := color.New(color.FgRed).SprintFunc()
	added := color.New(color.FgGreen).SprintFunc()

	var sb strings.Builder
	for i, d := range diffs {
		lines := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, l := range lines {
				sb.WriteString(removed("- " + l))
				sb.WriteByte('\n')
			}
		case diffmatchpatch.DiffInsert:
			for _, l := range lines {
				sb.WriteString(added("+ " + l))
				sb.WriteByte('\n')
			}
		default:
			for _, l := range contextLines(lines, i == 0, i == len(diffs)-1) {
				sb.WriteString(l)
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// contextLines trims an unchanged run to the lines adjacent to changes
func contextLines(lines []string, first, last bool) []string {
	const elided = "  ..."
	indent := func(ls []string) []string {
		out := make([]string, len(ls))
		for i, l := range ls {
			out[i] = "  " + l
		}
		return out
	}

	switch {
	case first && last:
		return indent(lines)
	case first:
		if len(lines) <= DiffContext {
			return indent(lines)
		}
		return append([]string{elided}, indent(lines[len(lines)-DiffContext:])...)
	case last:
		if len(lines) <= DiffContext {
			return indent(lines)
		}
		return append(indent(lines[:DiffContext]), elided)
	default:
		if len(lines) <= 2*DiffContext {
			return indent(lines)
		}
		out := indent(lines[:DiffContext])
		out = append(out, elided)
		return append(out, indent(lines[len(lines)-DiffContext:])...)
	}
}
