package shell

import (
	"bufio"
	"fmt"
	"io"

	"github.com/smarty/s25update/core"
)

// ConsoleProgress redraws a single line per label using a carriage return.
// Redraws are limited to percentage (or size) changes so that chatty
// transports don't flood the terminal.
type ConsoleProgress struct {
	output   io.Writer
	label    string
	rendered string
}

func NewConsoleProgress(output io.Writer) *ConsoleProgress {
	return &ConsoleProgress{output: output}
}

func (this *ConsoleProgress) Report(label string, done, total int64) {
	status := renderProgress(done, total)
	if label == this.label && status == this.rendered {
		return
	}
	this.label = label
	this.rendered = status
	_, _ = fmt.Fprintf(this.output, "\r%s%s", label, status)
}

// Finish leaves the cursor at the end of the progress line.
func (this *ConsoleProgress) Finish(label string) {
	if label != this.label {
		_, _ = fmt.Fprintf(this.output, "\r%s", label)
	}
	this.label = ""
	this.rendered = ""
}

func renderProgress(done, total int64) string {
	if total > 0 {
		return fmt.Sprintf("%6.2f%%", float64(done)*100.0/float64(total))
	}
	return core.HumanFileSize(float64(done))
}

type ConsolePrompter struct {
	input  *bufio.Reader
	output io.Writer
}

func NewConsolePrompter(input io.Reader, output io.Writer) *ConsolePrompter {
	return &ConsolePrompter{input: bufio.NewReader(input), output: output}
}

// Prompt blocks until at least one byte of input is available.
func (this *ConsolePrompter) Prompt(question string) (byte, error) {
	_, _ = fmt.Fprint(this.output, question)
	return this.input.ReadByte()
}
