package maze

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Tokens of the text format
const (
	WallSegment  = "---"
	OpenSegment  = "   "
	WallChar     = '|'
	OpenChar     = ' '
	VertexChar   = 'o'
	segmentWidth = 3
	blockWidth   = segmentWidth + 1
)

const maxLineBytes = 1 << 20

// Option adjusts how a maze is parsed
type Option func(*parseOptions)

type parseOptions struct {
	strictMarkers bool
	expectRows    int
	expectCols    int
}

// WithStrictMarkers rejects cell interiors holding text other than a marker
func WithStrictMarkers() Option {
	return func(o *parseOptions) {
		o.strictMarkers = true
	}
}

// WithExpectedSize makes parsing fail unless the inferred dimensions
// are exactly rows x cols
func WithExpectedSize(rows, cols int) Option {
	return func(o *parseOptions) {
		o.expectRows = rows
		o.expectCols = cols
	}
}

// sourceLine is a non-blank input line with its 1-based position in the source
type sourceLine struct {
	text   string
	number int
}

// LoadFile opens and parses a maze file
func LoadFile(path string, opts ...Option) (*Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Source: path, Err: err}
	}
	defer file.Close()

	lines, err := readLines(file, path)
	if err != nil {
		return nil, err
	}
	return parse(lines, opts)
}

// Parse reads a maze description from r
func Parse(r io.Reader, opts ...Option) (*Grid, error) {
	lines, err := readLines(r, "input")
	if err != nil {
		return nil, err
	}
	return parse(lines, opts)
}

// ParseString parses a maze held in memory
func ParseString(text string, opts ...Option) (*Grid, error) {
	return Parse(strings.NewReader(text), opts...)
}

// ParseLines parses an already split maze description
func ParseLines(lines []string, opts ...Option) (*Grid, error) {
	kept := make([]sourceLine, 0, len(lines))
	for i, line := range lines {
		if l, ok := keepLine(line, i+1); ok {
			kept = append(kept, l)
		}
	}
	return parse(kept, opts)
}

func readLines(r io.Reader, source string) ([]sourceLine, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var lines []sourceLine
	number := 0
	for scanner.Scan() {
		number++
		if l, ok := keepLine(scanner.Text(), number); ok {
			lines = append(lines, l)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ReadError{Source: source, Err: err}
	}
	return lines, nil
}

// keepLine drops whitespace-only lines and a trailing carriage return
func keepLine(line string, number int) (sourceLine, bool) {
	line = strings.TrimSuffix(line, "\r")
	if strings.TrimSpace(line) == "" {
		return sourceLine{}, false
	}
	return sourceLine{text: line, number: number}, true
}

func parse(lines []sourceLine, opts []Option) (*Grid, error) {
	var options parseOptions
	for _, opt := range opts {
		opt(&options)
	}

	rows, cols, err := inferDimensions(lines)
	if err != nil {
		return nil, err
	}

	if options.expectRows > 0 || options.expectCols > 0 {
		if rows != options.expectRows || cols != options.expectCols {
			return nil, formatErrorf(0, "expected a %dx%d maze, found %dx%d",
				options.expectRows, options.expectCols, rows, cols)
		}
	}

	// Every line is checked before any cell is read so a malformed
	// maze never yields a partial grid.
	width := cols*blockWidth + 1
	for i, line := range lines {
		if len(line.text) != width {
			kind := "boundary"
			if i%2 == 1 {
				kind = "content"
			}
			return nil, formatErrorf(line.number, "malformed %s line: length %d, want %d",
				kind, len(line.text), width)
		}
	}

	grid := New(rows, cols)
	for r := 0; r < rows; r++ {
		top := lines[2*r].text
		content := lines[2*r+1]
		bottom := lines[2*r+2].text

		for c := 0; c < cols; c++ {
			start := c*blockWidth + 1
			end := start + segmentWidth

			marker, known := ParseMarker(content.text[start:end])
			if !known && options.strictMarkers {
				return nil, formatErrorf(content.number, "unrecognized content %q in cell (%d, %d)",
					strings.TrimSpace(content.text[start:end]), r, c)
			}

			grid.set(r, c, Cell{
				North:  top[start:end] == WallSegment,
				South:  bottom[start:end] == WallSegment,
				West:   content.text[c*blockWidth] == WallChar,
				East:   content.text[end] == WallChar,
				Marker: marker,
			})
		}
	}

	return grid, nil
}

// inferDimensions derives the row count from the number of lines and the
// column count from the width of the first boundary line
func inferDimensions(lines []sourceLine) (rows, cols int, err error) {
	if len(lines)%2 == 0 {
		return 0, 0, formatErrorf(0, "odd line count required, got %d lines", len(lines))
	}
	first := lines[0]
	if (len(first.text)-1)%blockWidth != 0 {
		return 0, 0, formatErrorf(first.number,
			"invalid column inference: boundary line length %d is not 4*columns+1", len(first.text))
	}
	return (len(lines) - 1) / 2, (len(first.text) - 1) / blockWidth, nil
}
