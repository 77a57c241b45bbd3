package adc

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleLog = `HOT_VOLTS__ACVoltage_buf[0]	signed	int	-7437	XRAM:0x400
HOT_VOLTS__ACVoltage_buf[1]	signed	int	-6950	XRAM:0x402

# comment lines are ignored
HOT_VOLTS__ACVoltage_buf[2]   signed   int   12   XRAM:0x404
`

func TestParse(t *testing.T) {
	records, err := Parse(strings.NewReader(sampleLog))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len=%d want 3", len(records))
	}

	want := Record{
		Name:      "HOT_VOLTS__ACVoltage_buf[0]",
		Type:      "signed",
		Qualifier: "int",
		Value:     -7437,
		Address:   "XRAM:0x400",
	}
	if records[0] != want {
		t.Fatalf("records[0]=%+v want %+v", records[0], want)
	}
	if records[2].Value != 12 {
		t.Fatalf("records[2].Value=%d want 12", records[2].Value)
	}
}

func TestReadValuesPreservesOrder(t *testing.T) {
	values, err := ReadValues(strings.NewReader(sampleLog))
	if err != nil {
		t.Fatalf("ReadValues error: %v", err)
	}

	want := []int32{-7437, -6950, 12}
	if len(values) != len(want) {
		t.Fatalf("len=%d want %d", len(values), len(want))
	}
	for i := range want {
		if values[i] != want[i] {
			t.Fatalf("values[%d]=%d want %d", i, values[i], want[i])
		}
	}
}

func TestReadValuesErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		line  int
		want  error
	}{
		{"non-integer value", "a[0] signed int 12 XRAM:0x0\na[1] signed int 1.5 XRAM:0x2\n", 2, ErrInvalidValue},
		{"text value", "a[0] signed int abc XRAM:0x0\n", 1, ErrInvalidValue},
		{"overflow", "a[0] signed int 2147483648 XRAM:0x0\n", 1, ErrInvalidValue},
		{"missing field", "a[0] signed int 12\n", 1, ErrMalformedLine},
		{"extra field", "a[0] signed int 12 XRAM:0x0 junk\n", 1, ErrMalformedLine},
		{"empty", "\n# nothing\n", 0, ErrNoSamples},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			values, err := ReadValues(strings.NewReader(tc.input))
			if values != nil {
				t.Fatalf("expected no partial buffer, got %v", values)
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("error=%v want %v", err, tc.want)
			}

			var le *LoadError
			if !errors.As(err, &le) {
				t.Fatalf("expected *LoadError, got %T", err)
			}
			if le.Line != tc.line {
				t.Fatalf("Line=%d want %d", le.Line, tc.line)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ADC0Data.txt")
	if err := os.WriteFile(path, []byte(sampleLog), 0o644); err != nil {
		t.Fatal(err)
	}

	values, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(values) != 3 || values[0] != -7437 {
		t.Fatalf("unexpected values: %v", values)
	}
}

func TestLoadErrorsCarryPath(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "missing.txt")
	_, err := Load(missing)
	var le *LoadError
	if !errors.As(err, &le) || le.Path != missing {
		t.Fatalf("expected *LoadError with path, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}

	bad := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(bad, []byte("x[0] signed int nope XRAM:0x0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = Load(bad)
	if !errors.As(err, &le) || le.Path != bad || le.Line != 1 {
		t.Fatalf("expected *LoadError at %s:1, got %v", bad, err)
	}
	if !strings.Contains(err.Error(), bad+":1") {
		t.Fatalf("error message %q should mention file and line", err.Error())
	}
}

func TestWriteRecordsRoundTrip(t *testing.T) {
	in := []int32{math.MinInt32, -1, 0, 1, math.MaxInt32}

	var buf bytes.Buffer
	if err := WriteRecords(&buf, "HOT_VOLTS__ACVoltage_buf", in, 0x400); err != nil {
		t.Fatalf("WriteRecords error: %v", err)
	}

	records, err := Parse(&buf)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(records) != len(in) {
		t.Fatalf("len=%d want %d", len(records), len(in))
	}
	for i, rec := range records {
		if rec.Value != in[i] {
			t.Fatalf("records[%d].Value=%d want %d", i, rec.Value, in[i])
		}
	}
	if records[1].Name != "HOT_VOLTS__ACVoltage_buf[1]" || records[1].Address != "XRAM:0x402" {
		t.Fatalf("unexpected record: %+v", records[1])
	}
}
