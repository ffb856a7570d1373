// Package risknav implements the data model of a risk dashboard for the
// Lakefield Pension Plan, a fictional Canadian defined-benefit fund.
//
// The package consumes position-level metrics precomputed by an upstream
// risk engine (a flat position table and a policy-limit table) and turns
// them into the per-date views the dashboard tabs display: funded status
// and duration KPIs, asset mix against policy, traffic-light compliance
// limits, linear stress scenarios, and a data-quality report. It performs
// no risk calculation of its own beyond display aggregation.
//
// Rendering lives in subpackages: renderer produces markdown reports for
// the terminal, web serves the same views as HTML pages, agent runs the
// AI copilot, and demo generates a deterministic sample book.
package risknav
