package model

import (
	"bufio"
	"io"
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/rules"
)

const maxLineBytes = 1 << 20

// Parser turns pattern text into a Grid.
//
// Each line is a row: '#' is a live cell and '_' a dead one. Reading stops at
// the first empty line. Other characters are skipped unless Strict is set, in
// which case they are rejected. Rows of different lengths are always rejected.
type Parser struct {
	Strict bool
}

// Parse reads a grid with the default lenient Parser
func Parse(r io.Reader) (*Grid, error) {
	return Parser{}.Parse(r)
}

// ParseFile reads a grid from a file with the default lenient Parser
func ParseFile(path string) (*Grid, error) {
	return Parser{}.ParseFile(path)
}

// ParseFile opens path and parses its contents
func (p Parser) ParseFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &InputUnavailableError{Source: path, Err: err}
	}
	defer f.Close()

	grid, err := p.parse(f, path)
	if err != nil {
		return nil, errors.Wrapf(err, "[ParseFile] %s", path)
	}
	return grid, nil
}

// Parse reads rows from r until the first empty line or end of input
func (p Parser) Parse(r io.Reader) (*Grid, error) {
	return p.parse(r, "input")
}

func (p Parser) parse(r io.Reader, source string) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var rows [][]rules.State
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if line == "" {
			break
		}
		if !utf8.ValidString(line) {
			return nil, &InputUnavailableError{
				Source: source,
				Err:    errors.Errorf("line %d is not valid UTF-8", lineNo),
			}
		}

		row, err := p.parseLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, errors.Wrapf(ErrMalformedInput,
				"[Parse] line %d has %d cells, expected %d", lineNo, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, &InputUnavailableError{Source: source, Err: err}
	}

	if len(rows) == 0 {
		return nil, errors.Wrap(ErrMalformedInput, "[Parse] no rows before the first empty line")
	}
	if len(rows[0]) == 0 {
		return nil, errors.Wrap(ErrMalformedInput, "[Parse] line 1 has no cells")
	}

	return &Grid{rows: len(rows), cols: len(rows[0]), cells: rows}, nil
}

func (p Parser) parseLine(line string, lineNo int) ([]rules.State, error) {
	row := make([]rules.State, 0, len(line))
	col := 0
	for _, ch := range line {
		col++
		state, ok := rules.FromRune(ch)
		if !ok {
			if p.Strict {
				return nil, errors.Wrapf(ErrMalformedInput,
					"[Parse] unexpected character %q at line %d, column %d", ch, lineNo, col)
			}
			continue
		}
		row = append(row, state)
	}
	return row, nil
}
