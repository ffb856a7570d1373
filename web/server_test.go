package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/lakefield/risknav"
	"github.com/lakefield/risknav/demo"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	book := demo.Generate(demo.DefaultConfig())
	s, err := New(book, Config{Addr: ":0"})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return s
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func wantPage(t *testing.T, s *Server, path string, contains ...string) {
	t.Helper()
	w := get(t, s, path)
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s: status %d, body %q", path, w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range contains {
		if !strings.Contains(body, want) {
			t.Errorf("GET %s: body missing %q", path, want)
		}
	}
}

func TestHealthPage(t *testing.T) {
	s := testServer(t)
	wantPage(t, s, "/",
		"Fund Health",
		"Funded Status",
		"Fixed Income",
		"Lakefield",
	)
}

func TestLimitsPage(t *testing.T) {
	s := testServer(t)
	wantPage(t, s, "/limits",
		"Limit Monitor",
		"FX Net Exposure",
		"Issuer Concentration",
	)
}

func TestStressPage(t *testing.T) {
	s := testServer(t)
	wantPage(t, s, "/stress?scenario=Rate+Hike+Shock",
		"Rate Hike Shock",
		"Surplus Waterfall",
		"Top Movers",
	)
}

func TestPipelinePage(t *testing.T) {
	s := testServer(t)
	wantPage(t, s, "/pipeline",
		"Data Pipeline",
		"Column Checks",
		"Daily Coverage",
	)
}

func TestTopicsPages(t *testing.T) {
	s := testServer(t)
	wantPage(t, s, "/topics", "Requirements")
	wantPage(t, s, "/topics/theme", "Theme")

	if w := get(t, s, "/topics/no-such-topic"); w.Code != http.StatusNotFound {
		t.Errorf("unknown topic: status %d, want 404", w.Code)
	}
}

func TestThemeCSS(t *testing.T) {
	s := testServer(t)
	w := get(t, s, "/theme.css")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Errorf("Content-Type = %q, want text/css", ct)
	}
	if !strings.Contains(w.Body.String(), "--accent") {
		t.Error("stylesheet missing --accent variable")
	}
}

func TestCopilotAsk(t *testing.T) {
	s := testServer(t)
	form := url.Values{"question": {"hedge 85% of our FX exposure"}}
	req := httptest.NewRequest(http.MethodPost, "/copilot", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %q", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{"Execution Trail", "Analyze", "Audit", "Answer"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestBadDateRejected(t *testing.T) {
	s := testServer(t)
	if w := get(t, s, "/?date=not-a-date"); w.Code != http.StatusBadRequest {
		t.Errorf("page: status %d, want 400", w.Code)
	}

	w := get(t, s, "/api/snapshot?date=not-a-date")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("api: status %d, want 400", w.Code)
	}
	var resp apiResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.OK || resp.Error == "" {
		t.Errorf("envelope = %+v, want ok=false with error", resp)
	}
}

func TestAPISnapshot(t *testing.T) {
	s := testServer(t)
	w := get(t, s, "/api/snapshot")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	var resp struct {
		OK   bool `json:"ok"`
		Data struct {
			FundedStatus float64 `json:"funded_status"`
			TotalAssets  float64 `json:"total_assets_cad"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.OK {
		t.Fatal("ok = false")
	}
	if resp.Data.FundedStatus < 1.0 || resp.Data.FundedStatus > 1.3 {
		t.Errorf("funded_status = %v, out of plausible range", resp.Data.FundedStatus)
	}
	if resp.Data.TotalAssets < 100e9 {
		t.Errorf("total_assets_cad = %v, want > 100e9", resp.Data.TotalAssets)
	}
}

func TestAPISeries(t *testing.T) {
	s := testServer(t)
	w := get(t, s, "/api/series")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var resp struct {
		OK   bool              `json:"ok"`
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 10 {
		t.Errorf("series length = %d, want 10", len(resp.Data))
	}
}

func TestAPIStress(t *testing.T) {
	s := testServer(t)
	w := get(t, s, "/api/stress?rate_bp=150&equity_pct=-10")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var resp struct {
		OK   bool `json:"ok"`
		Data struct {
			Scenario struct {
				RateBP float64 `json:"rate_bp"`
			} `json:"scenario"`
			BaselineFunded float64 `json:"baseline_funded"`
			StressedFunded float64 `json:"stressed_funded"`
			DeltaFunded    float64 `json:"delta_funded"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Scenario.RateBP != 150 {
		t.Errorf("rate_bp = %v, want 150", resp.Data.Scenario.RateBP)
	}
	if resp.Data.DeltaFunded != resp.Data.StressedFunded-resp.Data.BaselineFunded {
		t.Errorf("delta_funded inconsistent: %v vs %v - %v",
			resp.Data.DeltaFunded, resp.Data.StressedFunded, resp.Data.BaselineFunded)
	}
}

func TestUnknownRoute(t *testing.T) {
	s := testServer(t)
	if w := get(t, s, "/no-such-page"); w.Code != http.StatusNotFound {
		t.Errorf("status %d, want 404", w.Code)
	}
}

// The pull pipeline reads another dashboard's /api/positions endpoint, so
// the client decoder and the handler have to agree on the wire shape.
func TestFetchPositionsRoundTrip(t *testing.T) {
	book := demo.Generate(demo.DefaultConfig())
	s, err := New(book, Config{Addr: ":0"})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	got, err := risknav.FetchPositions(ts.URL, risknav.Date{})
	if err != nil {
		t.Fatalf("FetchPositions() error: %v", err)
	}
	want := book.On(book.LastDate())
	if len(got) == 0 || len(got) != len(want) {
		t.Fatalf("FetchPositions() returned %d positions, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i].Name != want[i].Name {
			t.Fatalf("position %d: name %q, want %q", i, got[i].Name, want[i].Name)
		}
	}

	on := book.Dates()[0]
	got, err = risknav.FetchPositions(ts.URL, on)
	if err != nil {
		t.Fatalf("FetchPositions(%v) error: %v", on, err)
	}
	if len(got) != len(book.On(on)) {
		t.Fatalf("FetchPositions(%v) returned %d positions, want %d", on, len(got), len(book.On(on)))
	}
	if got[0].Date != on {
		t.Errorf("position date = %v, want %v", got[0].Date, on)
	}
}
