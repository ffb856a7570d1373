package risknav

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
)

// this file handles the import/export format of the book: two CSV files
// matching the upstream engine's export, one for positions and one for
// the policy table.

var positionHeader = []string{
	"date", "name", "category", "class", "subclass", "sector",
	"geography", "country", "currency",
	"mtm_cad", "exposure_cad", "fx_exposure_cad",
	"duration", "equity_beta", "inflation_beta",
	"carbon_intensity", "esg_score",
}

var policyHeader = []string{
	"kind", "class", "target", "range_min", "range_max",
	"issuer_limit", "sector_limit", "description",
}

// DecodePositions reads positions from 'r' in the export CSV format.
// Empty numeric cells are kept as zero values and recorded in the
// position's Missing list for the data-quality report.
func DecodePositions(r io.Reader) ([]Position, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(positionHeader)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read positions header: %w", err)
	}
	for i, want := range positionHeader {
		if header[i] != want {
			return nil, fmt.Errorf("unexpected positions column %d: got %q want %q", i, header[i], want)
		}
	}

	var positions []Position
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read positions line %d: %w", line+1, err)
		}
		line++

		p := Position{
			Name:      record[1],
			Category:  Category(record[2]),
			Class:     record[3],
			Subclass:  record[4],
			Sector:    record[5],
			Geography: record[6],
			Country:   record[7],
			Currency:  record[8],
		}
		p.Date, err = ParseDate(record[0])
		if err != nil {
			return nil, fmt.Errorf("positions line %d: %w", line, err)
		}
		p.MTM = readMoney(record[9], "mtm_cad", &p)
		p.Exposure = readMoney(record[10], "exposure_cad", &p)
		p.FXExposure = readMoney(record[11], "fx_exposure_cad", &p)
		p.Duration = readFloat(record[12], "duration", &p)
		p.EquityBeta = readFloat(record[13], "equity_beta", &p)
		p.InflationBeta = readFloat(record[14], "inflation_beta", &p)
		p.CarbonIntensity = readFloat(record[15], "carbon_intensity", &p)
		p.ESGScore = readFloat(record[16], "esg_score", &p)
		positions = append(positions, p)
	}
	return positions, nil
}

// readMoney parses a CAD cell, recording an empty cell as missing.
func readMoney(cell, column string, p *Position) Money {
	if cell == "" {
		p.Missing = append(p.Missing, column)
		return CAD(0)
	}
	d, err := decimal.NewFromString(cell)
	if err != nil {
		p.Missing = append(p.Missing, column)
		return CAD(0)
	}
	return CAD(d)
}

// readFloat parses a numeric cell, recording an empty cell as missing.
func readFloat(cell, column string, p *Position) float64 {
	if cell == "" {
		p.Missing = append(p.Missing, column)
		return 0
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		p.Missing = append(p.Missing, column)
		return 0
	}
	return v
}

// EncodePositions writes positions to 'w' in the export CSV format.
func EncodePositions(w io.Writer, positions []Position) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(positionHeader); err != nil {
		return fmt.Errorf("cannot write positions header: %w", err)
	}
	for _, p := range positions {
		record := []string{
			p.Date.String(), p.Name, string(p.Category), p.Class, p.Subclass, p.Sector,
			p.Geography, p.Country, p.Currency,
			decimalCell(p.MTM), decimalCell(p.Exposure), decimalCell(p.FXExposure),
			floatCell(p.Duration), floatCell(p.EquityBeta), floatCell(p.InflationBeta),
			floatCell(p.CarbonIntensity), floatCell(p.ESGScore),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write position %q: %w", p.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func decimalCell(m Money) string { return strconv.FormatFloat(m.AsFloat(), 'f', 2, 64) }

func floatCell(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// DecodePolicies reads the policy-limit table from 'r'.
func DecodePolicies(r io.Reader) ([]Policy, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(policyHeader)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read policy header: %w", err)
	}
	for i, want := range policyHeader {
		if header[i] != want {
			return nil, fmt.Errorf("unexpected policy column %d: got %q want %q", i, header[i], want)
		}
	}

	var policies []Policy
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read policy line %d: %w", line+1, err)
		}
		line++

		pol := Policy{
			Kind:        PolicyKind(record[0]),
			Class:       record[1],
			Description: record[7],
		}
		fields := []*float64{&pol.Target, &pol.RangeMin, &pol.RangeMax, &pol.IssuerLimit, &pol.SectorLimit}
		for i, f := range fields {
			v, err := strconv.ParseFloat(record[2+i], 64)
			if err != nil {
				return nil, fmt.Errorf("policy line %d column %q: %w", line, policyHeader[2+i], err)
			}
			*f = v
		}
		policies = append(policies, pol)
	}
	return policies, nil
}

// EncodePolicies writes the policy-limit table to 'w'.
func EncodePolicies(w io.Writer, policies []Policy) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(policyHeader); err != nil {
		return fmt.Errorf("cannot write policy header: %w", err)
	}
	for _, pol := range policies {
		record := []string{
			string(pol.Kind), pol.Class,
			floatCell(pol.Target), floatCell(pol.RangeMin), floatCell(pol.RangeMax),
			floatCell(pol.IssuerLimit), floatCell(pol.SectorLimit),
			pol.Description,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write policy %q: %w", pol.Class, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeBook reads a full book from a positions reader and a policy reader.
func DecodeBook(positions, policies io.Reader) (*Book, error) {
	pos, err := DecodePositions(positions)
	if err != nil {
		return nil, err
	}
	pol, err := DecodePolicies(policies)
	if err != nil {
		return nil, err
	}
	return NewBook(pos, pol), nil
}
