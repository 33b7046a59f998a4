package render

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/hashicorp/go-argbind"
)

// ColorEnabled reports whether f is a terminal that should get color.
func ColorEnabled(f *os.File) bool {
	if f == nil {
		return false
	}

	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func painter(useColor bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if useColor {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c
}

// Report renders the outcome of a Map call: a status line followed, on
// failure, by a table with one row per problem in the order they were
// found.
func Report(r *argbind.Result, useColor bool) string {
	errs := r.Errors()
	if len(errs) == 0 {
		return painter(useColor, color.FgGreen, color.Bold).Sprint("ok: all arguments bound")
	}

	var b strings.Builder
	noun := "problems"
	if len(errs) == 1 {
		noun = "problem"
	}
	b.WriteString(painter(useColor, color.FgRed, color.Bold).Sprintf(
		"error: %d %s with the arguments", len(errs), noun))
	b.WriteString("\n")

	rows := make([][]string, 0, len(errs))
	for i, err := range errs {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			err.Kind.String(),
			err.Slot,
			tokenCell(err),
			detail(err),
		})
	}

	b.WriteString(renderTable(
		[]string{"#", "Problem", "Slot", "Token", "Detail"},
		rows,
		[]columnAlignment{alignRight},
	))

	return b.String()
}

func tokenCell(err *argbind.MappingError) string {
	switch err.Kind {
	case argbind.ErrorMissingRequiredValue:
		return "-"
	default:
		return strconv.Quote(err.Token)
	}
}

func detail(err *argbind.MappingError) string {
	switch err.Kind {
	case argbind.ErrorUnknownOption:
		return "no option with this name"
	case argbind.ErrorMissingRequiredValue:
		return "required, no value given"
	case argbind.ErrorTypeMismatch:
		return "expected " + err.Expected.String()
	case argbind.ErrorDuplicatePositional:
		return fmt.Sprintf("position %d was already bound", err.Position)
	case argbind.ErrorPropertyNotFound:
		return fmt.Sprintf("no value at position %d", err.Position)
	case argbind.ErrorMissingOptionValue:
		return "option needs a value"
	default:
		return err.Error()
	}
}

// Slots renders the slots of a registry as a table in declaration order.
func Slots(reg *argbind.Registry, prefix string) string {
	props := reg.Properties()
	rows := make([][]string, 0, len(props))
	for _, p := range props {
		spec := p.Spec()
		rows = append(rows, []string{
			spec.Kind.String(),
			match(spec, prefix),
			spec.Field,
			spec.Type.String(),
			yesNo(spec.Required),
			defaultCell(spec),
		})
	}

	return renderTable(
		[]string{"Kind", "Match", "Field", "Type", "Required", "Default"},
		rows,
		nil,
	)
}

func match(spec *argbind.SlotSpec, prefix string) string {
	if spec.Kind == argbind.KindValue {
		return "#" + strconv.Itoa(spec.Position)
	}

	names := make([]string, len(spec.Names))
	for i, n := range spec.Names {
		if len(n) == 1 {
			names[i] = prefix + n
		} else {
			names[i] = prefix + prefix + n
		}
	}

	return strings.Join(names, ", ")
}

func defaultCell(spec *argbind.SlotSpec) string {
	if spec.Default == nil {
		return ""
	}

	return strconv.Quote(*spec.Default)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}

	return "no"
}
