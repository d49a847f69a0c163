package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/pigmentfit/simplex"
)

// Irradiance is a set of raw (wavelength, irradiance) samples.
type Irradiance struct {
	Wavelength []float64
	Value      []float64
}

// Len returns the sample count.
func (s Irradiance) Len() int { return len(s.Wavelength) }

// ReadIrradiance parses two-column irradiance samples. A first row that does
// not parse as numbers is treated as a header and skipped.
func ReadIrradiance(r io.Reader) (Irradiance, error) {
	records, err := readAll(r)
	if err != nil {
		return Irradiance{}, fmt.Errorf("irradiance: %w", err)
	}
	if len(records) > 0 && !numericRow(records[0]) {
		records = records[1:]
	}
	if len(records) == 0 {
		return Irradiance{}, fmt.Errorf("irradiance: %w", ErrEmpty)
	}

	var s Irradiance
	s.Wavelength = make([]float64, 0, len(records))
	s.Value = make([]float64, 0, len(records))
	for i, rec := range records {
		if len(rec) != 2 {
			return Irradiance{}, fmt.Errorf("irradiance: line %d has %d fields, want 2: %w", i+1, len(rec), ErrShape)
		}
		vals, err := parseRow(rec)
		if err != nil {
			return Irradiance{}, fmt.Errorf("irradiance: line %d: %w", i+1, err)
		}
		s.Wavelength = append(s.Wavelength, vals[0])
		s.Value = append(s.Value, vals[1])
	}

	return s, nil
}

// ReadFractions parses the mixture table: a header row, then a label column
// followed by six volume fractions per row.
func ReadFractions(r io.Reader) ([]simplex.Composition, error) {
	records, err := readAll(r)
	if err != nil {
		return nil, fmt.Errorf("fractions: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("fractions: %w", ErrEmpty)
	}

	out := make([]simplex.Composition, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != simplex.Components+1 {
			return nil, fmt.Errorf("fractions: row %d has %d fields, want %d: %w",
				i+1, len(rec), simplex.Components+1, ErrShape)
		}
		vals, err := parseRow(rec[1:])
		if err != nil {
			return nil, fmt.Errorf("fractions: row %d: %w", i+1, err)
		}
		var c simplex.Composition
		copy(c[:], vals)
		out = append(out, c)
	}

	return out, nil
}

// ReadAbsorbance parses the absorbance table: a header row, then one row per
// wavelength and one column per mixture. Values are not clamped here;
// NewEmpirical does that.
func ReadAbsorbance(r io.Reader) ([][]float64, error) {
	records, err := readAll(r)
	if err != nil {
		return nil, fmt.Errorf("absorbance: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("absorbance: %w", ErrEmpty)
	}

	out := make([][]float64, 0, len(records)-1)
	for i, rec := range records[1:] {
		vals, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("absorbance: row %d: %w", i+1, err)
		}
		out = append(out, vals)
	}

	return out, nil
}

// Read builds an Empirical dataset from a fractions table and an absorbance table.
func Read(fractions, absorbance io.Reader) (*Empirical, error) {
	comps, err := ReadFractions(fractions)
	if err != nil {
		return nil, err
	}
	abs, err := ReadAbsorbance(absorbance)
	if err != nil {
		return nil, err
	}

	return NewEmpirical(comps, abs)
}

// LoadIrradiance reads irradiance samples from a file.
func LoadIrradiance(path string) (Irradiance, error) {
	f, err := os.Open(path)
	if err != nil {
		return Irradiance{}, err
	}
	defer f.Close()

	return ReadIrradiance(f)
}

// Load reads an Empirical dataset from a fractions file and an absorbance file.
func Load(fractionsPath, absorbancePath string) (*Empirical, error) {
	ff, err := os.Open(fractionsPath)
	if err != nil {
		return nil, err
	}
	defer ff.Close()
	af, err := os.Open(absorbancePath)
	if err != nil {
		return nil, err
	}
	defer af.Close()

	return Read(ff, af)
}

func readAll(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrMalformed)
	}

	return records, nil
}

func numericRow(rec []string) bool {
	for _, f := range rec {
		if _, err := strconv.ParseFloat(strings.TrimSpace(f), 64); err != nil {
			return false
		}
	}

	return true
}

func parseRow(rec []string) ([]float64, error) {
	out := make([]float64, len(rec))
	for j, f := range rec {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("column %d %q: %w", j, f, ErrMalformed)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("column %d %q: %w", j, f, ErrMalformed)
		}
		out[j] = v
	}

	return out, nil
}
