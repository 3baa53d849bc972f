package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	coordinatePrompt = "Enter latitude and longitude (e.g., 3.081 101.585): "
	timePrompt       = "Enter time to query (now for current, or YYYY-MM-DD HH:MM; leave blank for now): "
)

// Prompter reads answers from one buffered reader so piped input survives across prompts
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ask prints the prompt and returns the trimmed answer. End of input counts as an empty answer.
func (p *Prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	input, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(input), nil
}

// promptForCoordinates asks for a coordinate pair
func (p *Prompter) promptForCoordinates() (Coordinate, error) {
	input, err := p.ask(coordinatePrompt)
	if err != nil {
		return Coordinate{}, err
	}
	return parseCoordinateLine(input)
}

// promptForTime asks for the target time
func (p *Prompter) promptForTime() (TargetTime, error) {
	input, err := p.ask(timePrompt)
	if err != nil {
		return TargetTime{}, err
	}
	return parseTimeInput(input)
}
