// Copyright 2025 The ViaMapa Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// prompter drives the interactive question/answer flow. It reads from an
// io.Reader so tests can feed it canned answers.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// ask prints a label and returns the trimmed answer line.
func (p *prompter) ask(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)

	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("reading input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// askYesNo returns true only for a "y"/"yes" answer.
func (p *prompter) askYesNo(label string) (bool, error) {
	answer, err := p.ask(label + " (y/n)")
	if err != nil {
		return false, err
	}

	answer = strings.ToLower(answer)

	return answer == "y" || answer == "yes", nil
}
