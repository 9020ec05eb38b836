package subseq

import (
	"fmt"
	"io"
	"strings"
)

func verticalFormatFor(a any) string {
	switch a.(type) {
	case []int8, []uint8, []rune:
		return "%3c"
	case []int16, []uint16, []uint32, []int64, []uint64:
		return "% 20d"
	case []string:
		return "%s"
	default:
		return "%v"
	}
}

// FormatVertical prints a representation of the edit script with one
// item per line, eg:
//
//	    a
//	-   x
//	    b
//	+   c
func (es EditScript[T]) FormatVertical(out io.Writer, a []T) {
	format := verticalFormatFor(a)
	for _, op := range es {
		switch op.Op {
		case Identical:
			fmt.Fprintf(out, "  %s\n", fmt.Sprintf(format, a[op.A]))
		case Delete:
			fmt.Fprintf(out, "- %s\n", fmt.Sprintf(format, a[op.A]))
		case Insert:
			fmt.Fprintf(out, "+ %s\n", fmt.Sprintf(format, op.Val))
		}
	}
}

func horizontalFormatFor(a any) string {
	switch a.(type) {
	case []int8, []uint8, []rune:
		return "%c"
	default:
		return "%v"
	}
}

// FormatHorizontal prints a representation of the edit script across
// three lines, with the top line showing the result of applying the
// edit, the middle line the operations applied and the bottom line any
// items deleted, eg:
//
//	a bc
//	|-|+
//	 x
func (es EditScript[T]) FormatHorizontal(out io.Writer, a []T) {
	format := horizontalFormatFor(a)
	displaySizes := make([]int, 0, len(es))
	for _, op := range es {
		var f string
		switch op.Op {
		case Identical:
			f = fmt.Sprintf(format, a[op.A])
			_, _ = io.WriteString(out, f)
		case Delete:
			f = fmt.Sprintf(format, a[op.A])
			_, _ = io.WriteString(out, strings.Repeat(" ", len(f)))
		case Insert:
			f = fmt.Sprintf(format, op.Val)
			_, _ = io.WriteString(out, f)
		}
		displaySizes = append(displaySizes, len(f))
	}
	_, _ = io.WriteString(out, "\n")

	pad := func(o string, i int) {
		_, _ = io.WriteString(out, o)
		_, _ = io.WriteString(out, strings.Repeat(" ", displaySizes[i]-len(o)))
	}

	for i, op := range es {
		switch op.Op {
		case Identical:
			pad("|", i)
		case Delete:
			pad("-", i)
		case Insert:
			pad("+", i)
		}
	}
	_, _ = io.WriteString(out, "\n")
	for i, op := range es {
		switch op.Op {
		case Delete:
			_, _ = io.WriteString(out, fmt.Sprintf(format, a[op.A]))
		default:
			pad("", i)
		}
	}
	_, _ = io.WriteString(out, "\n")
}
