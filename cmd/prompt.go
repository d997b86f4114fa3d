package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"maze-projector/config"
)

var errNoFile = errors.New("no maze file given")

// prompter asks questions on out and reads answers from in
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// ask prints the question and returns the trimmed answer. A missing final
// newline is accepted; an empty stream is an error.
func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	answer, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || answer == "") {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(answer), nil
}

// askInt reads a positive integer; a blank answer is rejected
func (p *prompter) askInt(question, name string) (int, error) {
	answer, err := p.ask(question)
	if err != nil {
		return 0, err
	}
	return config.ParseIntArgument(name, answer)
}

// runInteractive prompts for the maze file and drawing parameters, then
// saves the image
func (a *app) runInteractive(in io.Reader, out io.Writer) error {
	p := newPrompter(in, out)

	path, err := p.ask("Enter the maze file name (e.g., maze.txt): ")
	if err != nil {
		return err
	}
	if path == "" {
		return errNoFile
	}

	cellSize, err := p.askInt(
		fmt.Sprintf("Enter cell side length in pixels (e.g., %d): ", a.cfg.Render.CellSize),
		"cell size")
	if err != nil {
		return err
	}

	wallThickness, err := p.askInt(
		fmt.Sprintf("Enter wall thickness in pixels (e.g., %d): ", a.cfg.Render.WallThickness),
		"wall thickness")
	if err != nil {
		return err
	}

	return a.draw(out, path, drawOptions{
		cellSize:      cellSize,
		wallThickness: wallThickness,
		output:        a.cfg.Render.Output,
		labels:        a.cfg.Render.Labels,
	})
}
