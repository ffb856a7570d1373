package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ── JSON helpers ────────────────────────────────────────────────────────

// apiResponse is the standard envelope for all API responses.
type apiResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func jsonOK(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(apiResponse{OK: true, Data: data}); err != nil {
		slog.Error("encode api response", "error", err)
	}
}

func jsonError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiResponse{OK: false, Error: msg})
}

// ── Endpoints ───────────────────────────────────────────────────────────

// GET /api/snapshot?date=
func (s *Server) apiSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := s.snapshotFor(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	jsonOK(w, snap)
}

// GET /api/series
func (s *Server) apiSeries(w http.ResponseWriter, r *http.Request) {
	jsonOK(w, s.book.Series())
}

// GET /api/positions?date=
func (s *Server) apiPositions(w http.ResponseWriter, r *http.Request) {
	snap, err := s.snapshotFor(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	jsonOK(w, map[string]any{
		"date":      snap.On(),
		"positions": snap.Positions(),
	})
}

// GET /api/stress?scenario=&rate_bp=&equity_pct=&inflation_pct=&date=
func (s *Server) apiStress(w http.ResponseWriter, r *http.Request) {
	snap, err := s.snapshotFor(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	sc := scenarioFromQuery(r)
	result := snap.Stress(sc)
	jsonOK(w, map[string]any{
		"scenario": map[string]any{
			"name":          sc.Name,
			"rate_bp":       sc.RateBP,
			"equity_pct":    sc.EquityPct,
			"inflation_pct": sc.InflationPct,
		},
		"baseline_funded":      snap.FundedStatus(),
		"stressed_assets":      result.StressedAssets(),
		"stressed_liabilities": result.StressedLiabilities(),
		"stressed_surplus":     result.StressedSurplus(),
		"stressed_funded":      result.StressedFunded(),
		"delta_funded":         result.DeltaFunded(),
	})
}
