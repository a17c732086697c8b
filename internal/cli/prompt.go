package cli

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Prompter collects interactive input line by line. Reading from an
// io.Reader keeps the commands testable with scripted input.
type Prompter struct {
	reader *bufio.Reader
	output *Output
}

// NewPrompter creates a Prompter reading from in.
func NewPrompter(in io.Reader, output *Output) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		output: output,
	}
}

// Text prompts for a non-empty line of text.
func (p *Prompter) Text(message string) (string, error) {
	for {
		p.output.Printf("%s ", message)
		line, err := p.reader.ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
		p.output.Warning("A value is required.")
	}
}

// Float prompts for a number until validate accepts it.
func (p *Prompter) Float(message string, validate func(float64) bool) (float64, error) {
	for {
		raw, err := p.Text(message)
		if err != nil {
			return 0, err
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || !validate(value) {
			p.output.Warning("Invalid value: %s", raw)
			continue
		}
		return value, nil
	}
}

// Select prompts for one of the given choices, by number or by name.
func (p *Prompter) Select(message string, choices []string) (string, error) {
	for {
		p.output.Println(message)
		for i, choice := range choices {
			p.output.Printf("  %d) %s\n", i+1, choice)
		}
		raw, err := p.Text(">")
		if err != nil {
			return "", err
		}
		if index, err := strconv.Atoi(raw); err == nil && index >= 1 && index <= len(choices) {
			return choices[index-1], nil
		}
		for _, choice := range choices {
			if strings.EqualFold(raw, choice) {
				return choice, nil
			}
		}
		p.output.Warning("Pick one of the listed choices.")
	}
}
