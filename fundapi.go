package risknav

import (
	"fmt"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

// fundapi is the client side of the remote risk API: another dashboard's
// /api/positions endpoint, serving the day's position export as JSON.
// Responses go through the daily disk cache; the upstream publishes once
// per business day.

// FetchPositions retrieves the positions published at 'base' for the
// given date. A zero date fetches the most recent publication.
func FetchPositions(base string, on Date) ([]Position, error) {
	addr, err := positionsURL(base, on)
	if err != nil {
		return nil, err
	}

	var jobj any
	if err := jwget(dailyClient(), addr, &jobj); err != nil {
		return nil, fmt.Errorf("error fetching positions from %q: %w", base, err)
	}

	// The endpoint wraps its payload in the standard {ok, data} envelope.
	jrows, err := jsonpath.Get("$.data.positions[*]", jobj)
	if err != nil {
		return nil, fmt.Errorf("error extracting positions: %w", err)
	}
	rows, ok := jrows.([]any)
	if !ok {
		return nil, fmt.Errorf("error extracting positions: not a list but %T", jrows)
	}

	positions := make([]Position, 0, len(rows))
	for i, row := range rows {
		p, err := decodeAPIPosition(row)
		if err != nil {
			return nil, fmt.Errorf("error decoding position %d: %w", i, err)
		}
		positions = append(positions, p)
	}
	return positions, nil
}

func positionsURL(base string, on Date) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid risk API address %q: %w", base, err)
	}
	u = u.JoinPath("api", "positions")
	if !on.IsZero() {
		q := u.Query()
		q.Set("date", on.String())
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// decodeAPIPosition maps one JSON object of the wire format onto a
// Position. The API is never fully trusted: every field access goes
// through jsonpath with a typed fallback.
func decodeAPIPosition(row any) (Position, error) {
	p := Position{
		Name:      jstring(row, "$.name"),
		Category:  Category(jstring(row, "$.category")),
		Class:     jstring(row, "$.class"),
		Subclass:  jstring(row, "$.subclass"),
		Sector:    jstring(row, "$.sector"),
		Geography: jstring(row, "$.geography"),
		Country:   jstring(row, "$.country"),
		Currency:  jstring(row, "$.currency"),

		Duration:        jfloat(row, "$.duration"),
		EquityBeta:      jfloat(row, "$.equity_beta"),
		InflationBeta:   jfloat(row, "$.inflation_beta"),
		CarbonIntensity: jfloat(row, "$.carbon_intensity"),
		ESGScore:        jfloat(row, "$.esg_score"),
	}

	day := jstring(row, "$.date")
	on, err := ParseDate(day)
	if err != nil {
		return Position{}, fmt.Errorf("invalid position date %q: %w", day, err)
	}
	p.Date = on

	if p.Name == "" {
		return Position{}, fmt.Errorf("position without a name")
	}
	p.MTM = CAD(jfloat(row, "$.mtm_cad"))
	p.Exposure = CAD(jfloat(row, "$.exposure_cad"))
	p.FXExposure = CAD(jfloat(row, "$.fx_exposure_cad"))
	return p, nil
}

// jstring extracts a string at path, empty when absent or mistyped.
func jstring(obj any, path string) string {
	v, err := jsonpath.Get(path, obj)
	if err != nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// jfloat extracts a number at path, zero when absent or mistyped.
func jfloat(obj any, path string) float64 {
	v, err := jsonpath.Get(path, obj)
	if err != nil {
		return 0
	}
	f, _ := v.(float64)
	return f
}
