// Package form turns a raw front-end request (dimension text plus a chosen
// method) into the fixed result text shown to the user.
//
// The CLI and the terminal form share it, so both render identical output:
//
//	Minimum Multiplications: 26000
//	Invalid input!
package form

import (
	"log/slog"
	"strconv"

	"github.com/katalvlaran/chainorder/chain"
	"github.com/katalvlaran/chainorder/internal/logging"
)

const (
	// ResultPrefix precedes the cost in a successful response.
	ResultPrefix = "Minimum Multiplications: "

	// OrderPrefix precedes the parenthesization when it was requested.
	OrderPrefix = "Parenthesization: "

	// InvalidInput is shown for parse errors, degenerate chains and overflow alike.
	InvalidInput = "Invalid input!"
)

// Request is one press of "Compute".
type Request struct {
	Dimensions string
	Method     chain.Method
	ShowOrder  bool
}

// Response carries the rendered text plus the underlying outcome.
type Response struct {
	Text   string
	Result chain.Result
	Err    error
}

// OK reports whether the computation succeeded.
func (r Response) OK() bool { return r.Err == nil }

// Handler computes requests. It holds no per-request state.
type Handler struct {
	log  *slog.Logger
	warn func(n int) bool
}

// NewHandler returns a Handler logging to log. warn, if non-nil, decides
// whether a Backtracking request over n matrices gets a slowness warning.
func NewHandler(log *slog.Logger, warn func(n int) bool) *Handler {
	if log == nil {
		log = logging.Discard()
	}
	return &Handler{log: log, warn: warn}
}

// Compute parses req.Dimensions, solves with req.Method and renders the result.
// Errors never escape as panics; they are reported in Response.Err and as
// InvalidInput text.
func (h *Handler) Compute(req Request) Response {
	p, err := chain.ParseDimensions(req.Dimensions)
	if err != nil {
		h.log.Warn("rejecting dimensions", "input", req.Dimensions, "err", err)
		return Response{Text: InvalidInput, Err: err}
	}

	n := len(p) - 1
	if req.Method == chain.MethodBacktracking && h.warn != nil && h.warn(n) {
		h.log.Warn("backtracking grows exponentially with chain length", "matrices", n)
	}

	res, err := chain.Solve(p, chain.Options{Method: req.Method, ReturnOrder: req.ShowOrder})
	if err != nil {
		h.log.Warn("solve failed", "method", req.Method.String(), "matrices", n, "err", err)
		return Response{Text: InvalidInput, Err: err}
	}

	h.log.Debug("solved", "method", res.Method.String(), "matrices", n, "cost", res.Cost)
	return Response{Text: Render(res), Result: res}
}

// Render formats a successful result.
func Render(res chain.Result) string {
	s := ResultPrefix + strconv.FormatInt(res.Cost, 10)
	if res.Order != "" {
		s += "\n" + OrderPrefix + res.Order
	}
	return s
}
