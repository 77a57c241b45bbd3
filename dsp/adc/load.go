package adc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// fieldCount is the number of tokens on a sample line.
const fieldCount = 5

// Record is one parsed sample line.
type Record struct {
	Name      string
	Type      string
	Qualifier string
	Value     int32
	Address   string
}

// Parse reads every record from r in line order. Blank lines and lines
// starting with '#' are skipped.
func Parse(r io.Reader) ([]Record, error) {
	var records []Record

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		rec, err := parseLine(text)
		if err != nil {
			return nil, &LoadError{Line: line, Err: err}
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, &LoadError{Line: line, Err: err}
	}

	return records, nil
}

func parseLine(text string) (Record, error) {
	fields := strings.Fields(text)
	if len(fields) != fieldCount {
		return Record{}, fmt.Errorf("%w: want %d fields, got %d", ErrMalformedLine, fieldCount, len(fields))
	}

	v, err := strconv.ParseInt(fields[3], 10, 32)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %q", ErrInvalidValue, fields[3])
	}

	return Record{
		Name:      fields[0],
		Type:      fields[1],
		Qualifier: fields[2],
		Value:     int32(v),
		Address:   fields[4],
	}, nil
}

// ReadValues parses r and returns the sample values in line order.
func ReadValues(r io.Reader) ([]int32, error) {
	records, err := Parse(r)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, &LoadError{Err: ErrNoSamples}
	}

	values := make([]int32, len(records))
	for i, rec := range records {
		values[i] = rec.Value
	}
	return values, nil
}

// Load reads the sample log at path.
func Load(path string) ([]int32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	values, err := ReadValues(f)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
			return nil, le
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	return values, nil
}

// WriteRecords writes values as a sample log. Variables are named
// name[i] and addressed in XRAM with a two-byte stride from baseAddr.
func WriteRecords(w io.Writer, name string, values []int32, baseAddr uint32) error {
	bw := bufio.NewWriter(w)
	for i, v := range values {
		addr := baseAddr + uint32(2*i)
		if _, err := fmt.Fprintf(bw, "%s[%d]\tsigned\tint\t%d\tXRAM:0x%X\n", name, i, v, addr); err != nil {
			return err
		}
	}
	return bw.Flush()
}
