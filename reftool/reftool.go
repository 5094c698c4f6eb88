package reftool

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Extension names one of the known transient file suffixes of spec.md §6.3.
type Extension string

// The known p.* extensions.
const (
	Mat  Extension = ".mat"
	Cost Extension = ".cost"
	Sign Extension = ".sign"
	Zsol Extension = ".zsol"
	Feas Extension = ".feas"
	Mar  Extension = ".mar"
	Gro  Extension = ".gro"
	Gra  Extension = ".gra"
	Nf   Extension = ".nf"
	Min  Extension = ".min"
	Err  Extension = ".err"
)

// Extensions lists every known p.* extension, in the order spec.md §6.3
// introduces them.
var Extensions = []Extension{Mat, Cost, Sign, Zsol, Feas, Mar, Gro, Gra, Nf, Min, Err}

func known(ext Extension) bool {
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Path joins dir, prefix and ext into a transient file path.
func Path(dir, prefix string, ext Extension) (string, error) {
	if !known(ext) {
		return "", fmt.Errorf("Path: %w: %s", ErrUnknownExtension, ext)
	}
	return filepath.Join(dir, prefix+string(ext)), nil
}

// Clean removes every known-extension file for prefix under dir. Missing
// files are not an error, so a caller can Clean a working directory before
// every invocation regardless of what the previous run left behind.
func Clean(dir, prefix string) error {
	for _, ext := range Extensions {
		p, err := Path(dir, prefix, ext)
		if err != nil {
			return err
		}
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("Clean: %s: %w", p, err)
		}
	}
	return nil
}

// WriteMatrix writes rows in the p.* convention: a header line with the
// row and column counts, followed by one whitespace-separated line per
// row. An empty matrix still writes a "0 0" header.
func WriteMatrix(w io.Writer, rows [][]int64) error {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	for _, row := range rows {
		if len(row) != cols {
			return fmt.Errorf("WriteMatrix: %w", ErrRowLengthMismatch)
		}
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", len(rows), cols); err != nil {
		return fmt.Errorf("WriteMatrix: %w", err)
	}
	for _, row := range rows {
		fields := make([]string, len(row))
		for i, v := range row {
			fields[i] = strconv.FormatInt(v, 10)
		}
		if _, err := fmt.Fprintln(bw, strings.Join(fields, " ")); err != nil {
			return fmt.Errorf("WriteMatrix: %w", err)
		}
	}
	return bw.Flush()
}

// ReadMatrix reads a dense integer matrix in the p.* convention.
func ReadMatrix(r io.Reader) ([][]int64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("ReadMatrix: %w", err)
		}
		return nil, fmt.Errorf("ReadMatrix: %w", ErrMalformedHeader)
	}
	rows, cols, err := parseHeader(sc.Text())
	if err != nil {
		return nil, err
	}

	out := make([][]int64, 0, rows)
	for i := 0; i < rows; i++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("ReadMatrix: %w", err)
			}
			return nil, fmt.Errorf("ReadMatrix: %w", ErrTruncatedMatrix)
		}
		row, err := parseRow(sc.Text(), cols)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}

func parseHeader(line string) (rows, cols int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("parseHeader: %w", ErrMalformedHeader)
	}
	rows, rerr := strconv.Atoi(fields[0])
	cols, cerr := strconv.Atoi(fields[1])
	if rerr != nil || cerr != nil || rows < 0 || cols < 0 {
		return 0, 0, fmt.Errorf("parseHeader: %w", ErrMalformedHeader)
	}
	return rows, cols, nil
}

func parseRow(line string, cols int) ([]int64, error) {
	fields := strings.Fields(line)
	if len(fields) != cols {
		return nil, fmt.Errorf("parseRow: %w", ErrRowLengthMismatch)
	}
	row := make([]int64, cols)
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parseRow: %w", ErrMalformedHeader)
		}
		row[i] = v
	}
	return row, nil
}

// WriteVector writes v as a one-row matrix.
func WriteVector(w io.Writer, v []int64) error {
	return WriteMatrix(w, [][]int64{v})
}

// ReadVector reads a one-row matrix and returns its single row. An empty
// (0-row) file reads back as an empty vector.
func ReadVector(r io.Reader) ([]int64, error) {
	rows, err := ReadMatrix(r)
	if err != nil {
		return nil, err
	}
	switch len(rows) {
	case 0:
		return []int64{}, nil
	case 1:
		return rows[0], nil
	default:
		return nil, fmt.Errorf("ReadVector: %w", ErrNotAVector)
	}
}

// WriteMatrixFile writes rows to the dir/prefix+ext transient file,
// creating or truncating it.
func WriteMatrixFile(dir, prefix string, ext Extension, rows [][]int64) error {
	p, err := Path(dir, prefix, ext)
	if err != nil {
		return err
	}
	f, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("WriteMatrixFile: %w", err)
	}
	defer f.Close()
	return WriteMatrix(f, rows)
}

// ReadMatrixFile reads the dir/prefix+ext transient file as a matrix.
func ReadMatrixFile(dir, prefix string, ext Extension) ([][]int64, error) {
	p, err := Path(dir, prefix, ext)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("ReadMatrixFile: %w", err)
	}
	defer f.Close()
	return ReadMatrix(f)
}

// WriteVectorFile writes v to the dir/prefix+ext transient file as a
// one-row matrix.
func WriteVectorFile(dir, prefix string, ext Extension, v []int64) error {
	p, err := Path(dir, prefix, ext)
	if err != nil {
		return err
	}
	f, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("WriteVectorFile: %w", err)
	}
	defer f.Close()
	return WriteVector(f, v)
}

// ReadVectorFile reads the dir/prefix+ext transient file as a one-row
// matrix and returns its single row.
func ReadVectorFile(dir, prefix string, ext Extension) ([]int64, error) {
	p, err := Path(dir, prefix, ext)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("ReadVectorFile: %w", err)
	}
	defer f.Close()
	return ReadVector(f)
}

// WriteErrFile copies an external process's stderr bytes verbatim into the
// dir/prefix+Err transient file; p.err carries free-form text, not the
// dimension-headered matrix convention the other extensions use.
func WriteErrFile(dir, prefix string, stderr []byte) error {
	p, err := Path(dir, prefix, Err)
	if err != nil {
		return err
	}
	if err := os.WriteFile(p, stderr, 0o644); err != nil {
		return fmt.Errorf("WriteErrFile: %w", err)
	}
	return nil
}

// ReadErrFile reads back the dir/prefix+Err transient file verbatim.
func ReadErrFile(dir, prefix string) ([]byte, error) {
	p, err := Path(dir, prefix, Err)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("ReadErrFile: %w", err)
	}
	return b, nil
}
