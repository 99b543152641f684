package terrainio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/floodgrid/terrain"
)

// localHeader marks a terrain file whose data follows inline rather than
// living behind a URL.
const localHeader = "local"

// Parse reads a complete terrain description from r.
// Returns ErrRemoteTerrain if the header names a URL instead of inline
// data, ErrBadValue / ErrSourceOutOfRange / ErrTruncated on malformed
// content, or the Terrain on success.
func Parse(r io.Reader) (*terrain.Terrain, error) {
	t, remote, err := parseStream(r)
	if err != nil {
		return nil, err
	}
	if remote != "" {
		return nil, fmt.Errorf("%w: %s", ErrRemoteTerrain, remote)
	}
	return t, nil
}

// parseStream reads a terrain description. If the header names a URL the
// URL is returned and no further data is read; otherwise the fully
// validated Terrain is returned.
func parseStream(r io.Reader) (*terrain.Terrain, string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	header, err := readLine(sc)
	if err != nil {
		return nil, "", fmt.Errorf("reading header: %w", err)
	}
	if header != localHeader {
		return nil, header, nil
	}

	rows, cols, err := readDimensions(sc)
	if err != nil {
		return nil, "", err
	}
	sources, err := readSources(sc, rows, cols)
	if err != nil {
		return nil, "", err
	}
	heights, err := readHeights(sc, rows, cols)
	if err != nil {
		return nil, "", err
	}

	t, err := terrain.New(heights, sources)
	if err != nil {
		return nil, "", fmt.Errorf("terrainio: %w", err)
	}
	return t, "", nil
}

// readLine returns the next line, trimmed of surrounding whitespace.
// Returns ErrTruncated at end of input.
func readLine(sc *bufio.Scanner) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", ErrTruncated
	}
	return strings.TrimSpace(sc.Text()), nil
}

// readInt reads one line holding a single integer.
func readInt(sc *bufio.Scanner, what string) (int, error) {
	line, err := readLine(sc)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", what, err)
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", ErrBadValue, what, line)
	}
	return n, nil
}

// readDimensions reads the row and column counts, rejecting non-positive
// sizes individually so the error names every offending value.
func readDimensions(sc *bufio.Scanner) (rows, cols int, err error) {
	if rows, err = readInt(sc, "dimension"); err != nil {
		return 0, 0, err
	}
	if cols, err = readInt(sc, "dimension"); err != nil {
		return 0, 0, err
	}
	switch {
	case rows <= 0 && cols <= 0:
		return 0, 0, fmt.Errorf("%w: invalid dimension sizes %d and %d", ErrBadValue, rows, cols)
	case rows <= 0:
		return 0, 0, fmt.Errorf("%w: invalid dimension size %d", ErrBadValue, rows)
	case cols <= 0:
		return 0, 0, fmt.Errorf("%w: invalid dimension size %d", ErrBadValue, cols)
	}
	return rows, cols, nil
}

// readSources reads the source count and that many coordinates. A source
// may sit on one "row col" line or have its row and column on two
// consecutive lines; both layouts occur in the wild.
func readSources(sc *bufio.Scanner, rows, cols int) ([]terrain.GridLocation, error) {
	count, err := readInt(sc, "source count")
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		return nil, fmt.Errorf("%w: invalid number of sources %d", ErrBadValue, count)
	}

	sources := make([]terrain.GridLocation, 0, count)
	for i := 0; i < count; i++ {
		line, err := readLine(sc)
		if err != nil {
			return nil, fmt.Errorf("reading source %d: %w", i, err)
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return nil, fmt.Errorf("%w: empty source line %d", ErrBadValue, i)
		}
		row, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid source row %q", ErrBadValue, fields[0])
		}
		var colText string
		if len(fields) > 1 {
			colText = fields[1]
		} else {
			if colText, err = readLine(sc); err != nil {
				return nil, fmt.Errorf("reading source %d column: %w", i, err)
			}
		}
		col, err := strconv.Atoi(colText)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid source column %q", ErrBadValue, colText)
		}

		if row < 0 || row >= rows {
			return nil, fmt.Errorf("%w: row %d outside [0,%d)", ErrSourceOutOfRange, row, rows)
		}
		if col < 0 || col >= cols {
			return nil, fmt.Errorf("%w: column %d outside [0,%d)", ErrSourceOutOfRange, col, cols)
		}
		sources = append(sources, terrain.GridLocation{Row: row, Col: col})
	}
	return sources, nil
}

// readHeights reads the remaining whitespace-separated values and shapes
// them into a rows×cols matrix, row-major. Values beyond rows×cols are
// ignored; fewer is ErrTruncated.
func readHeights(sc *bufio.Scanner, rows, cols int) ([][]float64, error) {
	need := rows * cols
	data := make([]float64, 0, need)
	for len(data) < need && sc.Scan() {
		for _, tok := range strings.Fields(sc.Text()) {
			h, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid height %q", ErrBadValue, tok)
			}
			if math.IsNaN(h) || math.IsInf(h, 0) {
				return nil, fmt.Errorf("%w: non-finite height %q", ErrBadValue, tok)
			}
			data = append(data, h)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading heights: %w", err)
	}
	if len(data) < need {
		return nil, fmt.Errorf("%w: got %d heights, want %d", ErrTruncated, len(data), need)
	}

	heights := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		heights[r] = data[r*cols : (r+1)*cols : (r+1)*cols]
	}
	return heights, nil
}
