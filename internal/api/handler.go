// Package api serves concreteness metrics over HTTP.
package api

import (
	"net/http"

	"github.com/EZ-Api/concreteness"
	"github.com/EZ-Api/concreteness/internal/batch"
	"github.com/EZ-Api/concreteness/internal/httputils"
	"github.com/EZ-Api/concreteness/internal/log"
	"github.com/EZ-Api/concreteness/internal/report"
)

// MaxBatchTexts caps the number of texts in one batch request.
const MaxBatchTexts = 1000

// AnalysisFields are the per-request overrides shared by every text
// endpoint. Unset fields fall back to the server's configured options.
type AnalysisFields struct {
	IncludeStopwords      *bool    `json:"include_stopwords"`
	OnlyRatedWords        *bool    `json:"only_rated_words"`
	VeryConcreteThreshold *float64 `json:"very_concrete_threshold"`
	VeryAbstractThreshold *float64 `json:"very_abstract_threshold"`
	Explain               bool     `json:"explain"`
}

// TextRequest is the body of POST /analyze, /avg and /ratio.
type TextRequest struct {
	Text string `json:"text"`
	AnalysisFields
}

// BatchRequest is the body of POST /analyze/batch.
type BatchRequest struct {
	Texts []string `json:"texts"`
	AnalysisFields
}

// WordResponse answers GET /words/{word}. Rating is null for unknown words.
type WordResponse struct {
	Word   string   `json:"word"`
	Rating *float64 `json:"rating"`
	Known  bool     `json:"known"`
}

// AvgResponse answers POST /avg.
type AvgResponse struct {
	Average report.Float `json:"average"`
}

// RatioResponse answers POST /ratio. A ratio of +Inf is sent as "+Inf".
type RatioResponse struct {
	Ratio report.Float `json:"ratio"`
}

// Handler serves the API endpoints over one analyzer.
type Handler struct {
	logger   *log.Logger
	analyzer concreteness.Analyzer
	defaults concreteness.Options
	words    int
	jobs     int
}

// Config configures NewHandler.
type Config struct {
	Logger *log.Logger
	// Analyzer defaults to an uncached analyzer over Table.
	Analyzer concreteness.Analyzer
	// Table defaults to the embedded table.
	Table *concreteness.Table
	// Defaults seed every request's options.
	Defaults concreteness.Options
	// Jobs caps batch workers. Zero or less uses GOMAXPROCS.
	Jobs int
}

// NewHandler builds a handler from cfg.
func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewDiscard()
	}
	table := cfg.Table
	if table == nil {
		table = concreteness.MustDefaultTable()
	}
	analyzer := cfg.Analyzer
	if analyzer == nil {
		analyzer = concreteness.New(table)
	}
	return &Handler{
		logger:   logger,
		analyzer: analyzer,
		defaults: cfg.Defaults,
		words:    table.Len(),
		jobs:     cfg.Jobs,
	}
}

// HandleHealth reports liveness and the size of the loaded table.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	httputils.JSONResponse(w, http.StatusOK, map[string]any{
		"status": "ok",
		"words":  h.words,
	})
}

// HandleWord looks up the path word exactly as given.
func (h *Handler) HandleWord(w http.ResponseWriter, r *http.Request) {
	word := r.PathValue("word")
	rating := h.analyzer.WordConcreteness(word)

	resp := WordResponse{Word: word, Known: rating.Known}
	if v, ok := rating.Get(); ok {
		resp.Rating = &v
	}
	httputils.JSONResponse(w, http.StatusOK, resp)
}

// HandleAnalyze returns every metric for one text.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if !h.decode(w, r, &req) {
		return
	}
	result := h.analyzer.Analyze(req.Text, h.options(req.AnalysisFields))
	httputils.JSONResponse(w, http.StatusOK, report.Summarize(report.Record{Result: result}))
}

// HandleAnalyzeBatch analyses many texts concurrently and returns their
// summaries in request order.
func (h *Handler) HandleAnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if !h.decode(w, r, &req) {
		return
	}
	if len(req.Texts) > MaxBatchTexts {
		httputils.HandleError(w, &httputils.HTTPError{
			Code:    http.StatusRequestEntityTooLarge,
			Message: "Too many texts in one batch",
		})
		return
	}

	results, err := batch.Texts(r.Context(), h.analyzer, req.Texts, h.options(req.AnalysisFields), h.jobs)
	if err != nil {
		h.logger.Error("[%s] batch analysis: %v", RequestIDFrom(r.Context()), err)
		httputils.HandleError(w, err)
		return
	}
	summaries := make([]report.Summary, 0, len(results))
	for _, result := range results {
		summaries = append(summaries, report.Summarize(report.Record{Result: result}))
	}
	httputils.JSONResponse(w, http.StatusOK, summaries)
}

// HandleAvg returns the average concreteness of one text.
func (h *Handler) HandleAvg(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if !h.decode(w, r, &req) {
		return
	}
	avg := h.analyzer.AvgTextConcreteness(req.Text, h.options(req.AnalysisFields))
	httputils.JSONResponse(w, http.StatusOK, AvgResponse{Average: report.Float(avg)})
}

// HandleRatio returns the concrete/abstract ratio of one text.
func (h *Handler) HandleRatio(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if !h.decode(w, r, &req) {
		return
	}
	ratio := h.analyzer.ConcreteAbstractRatio(req.Text, h.options(req.AnalysisFields))
	httputils.JSONResponse(w, http.StatusOK, RatioResponse{Ratio: report.Float(ratio)})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httputils.DecodeJSON(w, r, v); err != nil {
		h.logger.Error("[%s] decoding request: %v", RequestIDFrom(r.Context()), err)
		httputils.HandleError(w, err)
		return false
	}
	return true
}

func (h *Handler) options(req AnalysisFields) concreteness.Options {
	opts := h.defaults
	if req.IncludeStopwords != nil {
		opts.IncludeStopwords = *req.IncludeStopwords
	}
	if req.OnlyRatedWords != nil {
		opts.Denominator = concreteness.DenominatorFor(*req.OnlyRatedWords)
	}
	if req.VeryConcreteThreshold != nil || req.VeryAbstractThreshold != nil {
		thresholds := concreteness.DefaultThresholds()
		if h.defaults.Thresholds != nil {
			thresholds = *h.defaults.Thresholds
		}
		if req.VeryConcreteThreshold != nil {
			thresholds.VeryConcrete = *req.VeryConcreteThreshold
		}
		if req.VeryAbstractThreshold != nil {
			thresholds.VeryAbstract = *req.VeryAbstractThreshold
		}
		opts.Thresholds = &thresholds
	}
	opts.Explain = req.Explain
	return opts
}
