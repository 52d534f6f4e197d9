package controllers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks the user for values on an input stream. Prompts are only
// printed when the input is an interactive terminal, so piped answers work
// without cluttering the output.
type Prompter struct {
	reader      *bufio.Reader
	output      io.Writer
	interactive bool
}

// NewPrompter creates a Prompter reading from input and writing prompts to output.
func NewPrompter(input io.Reader, output io.Writer) *Prompter {
	return &Prompter{
		reader:      bufio.NewReader(input),
		output:      output,
		interactive: isTerminal(input),
	}
}

// Ask prints question (when interactive) and returns the trimmed answer.
func (it *Prompter) Ask(question string) (string, error) {
	if it.interactive {
		if _, err := fmt.Fprint(it.output, question); err != nil {
			return "", err
		}
	}

	answer, err := it.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && answer != "") {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(answer), nil
}

func isTerminal(input io.Reader) bool {
	file, ok := input.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
