// Package output formats what the command line tool shows to humans.
package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

type Class int

const (
	Required Class = iota //explicitly requested information, printed even in quiet mode
	Error
	Normal
	Verbose
)

type Printer struct {
	classes    map[Class]bool
	terminal   io.Writer
	diagnosis  io.Writer
	useEscapes bool
}

// NewPrinter only uses escape sequences if allowed and the terminal writer is attached to a terminal.
func NewPrinter(terminal io.Writer, diagnosis io.Writer, include []Class, allowEscapes bool) (p Printer) {
	p = Printer{
		classes:    map[Class]bool{},
		terminal:   terminal,
		diagnosis:  diagnosis,
		useEscapes: allowEscapes && IsTerminal(terminal),
	}
	for _, class := range include {
		p.classes[class] = true
	}
	return
}

// IsTerminal is false for anything but an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, isFile := w.(*os.File)
	return isFile && term.IsTerminal(int(f.Fd()))
}

func (p Printer) Out(class Class, format string, values ...interface{}) {
	if !p.classes[class] {
		return
	}
	target := &p.terminal
	if class == Error {
		target = &p.diagnosis
	}
	fmt.Fprintf(*target, format, values...)
}

// Enabled allows skipping work for output that would be discarded anyway.
func (p Printer) Enabled(class Class) bool {
	return p.classes[class]
}

func (p Printer) Escapes() bool {
	return p.useEscapes
}

func (p Printer) Dim(text string) string {
	if !p.useEscapes {
		return text
	}
	return TerminalFormatAsDim(text)
}

func (p Printer) Bold(text string) string {
	if !p.useEscapes {
		return text
	}
	return TerminalFormatAsBold(text)
}

func (p Printer) Failure(text string) string {
	if !p.useEscapes {
		return text
	}
	return TerminalFormatAsError(text)
}
