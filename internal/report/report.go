// Package report assembles the dashboard payload: KPIs, summary statistics,
// a row preview, and the fixed chart set, all computed over the filtered
// table carried by a single request.
package report

import (
	"errors"
	"math"

	"github.com/mkumar312/movie-ratings-dashboard/internal/charts"
	"github.com/mkumar312/movie-ratings-dashboard/internal/dataset"
	"github.com/mkumar312/movie-ratings-dashboard/internal/domain"
	"github.com/mkumar312/movie-ratings-dashboard/internal/stats"
)

// ErrUnknownChart indicates the requested chart name does not exist.
var ErrUnknownChart = errors.New("report: unknown chart")

// Chart names addressable through the single-chart endpoint.
const (
	ChartJoint             = "joint"
	ChartScatterByGenre    = "scatter_by_genre"
	ChartAudienceHistogram = "audience_histogram"
	ChartBudgetHistogram   = "budget_histogram"
	ChartBudgetAudienceKDE = "budget_audience_kde"
	ChartBudgetCriticKDE   = "budget_critic_kde"
	ChartBudgetByGenre     = "budget_by_genre"
	ChartCriticBox         = "critic_box"
	ChartCriticViolin      = "critic_violin"
	ChartGenreYearFacets   = "genre_year_facets"
	ChartComposite         = "composite"
)

// ChartNames lists every addressable chart, in presentation order.
var ChartNames = []string{
	ChartJoint,
	ChartScatterByGenre,
	ChartAudienceHistogram,
	ChartBudgetHistogram,
	ChartBudgetAudienceKDE,
	ChartBudgetCriticKDE,
	ChartBudgetByGenre,
	ChartCriticBox,
	ChartCriticViolin,
	ChartGenreYearFacets,
	ChartComposite,
}

// Aggregates are the KPI values over the filtered set. The mean pointers are
// nil when the set is empty, which is distinct from a zero value.
type Aggregates struct {
	AvgCriticRating   *float64 `json:"avgCriticRating"`
	AvgAudienceRating *float64 `json:"avgAudienceRating"`
	AvgBudgetMillions *float64 `json:"avgBudgetMillions"`
	Count             int      `json:"count"`
}

// FieldSummary is the describe() row for one numeric column. Statistics that
// are undefined for the row count (e.g. deviation of one value) are nil.
type FieldSummary struct {
	Field  charts.Field `json:"field"`
	Count  int          `json:"count"`
	Mean   *float64     `json:"mean"`
	Std    *float64     `json:"std"`
	Min    *float64     `json:"min"`
	Q1     *float64     `json:"q1"`
	Median *float64     `json:"median"`
	Q3     *float64     `json:"q3"`
	Max    *float64     `json:"max"`
}

// ChartSet is the fixed sequence of chart specifications on the dashboard.
type ChartSet struct {
	Joint             *charts.Joint            `json:"joint"`
	ScatterByGenre    *charts.GroupedScatter   `json:"scatterByGenre"`
	AudienceHistogram *charts.Histogram        `json:"audienceHistogram"`
	BudgetHistogram   *charts.Histogram        `json:"budgetHistogram"`
	BudgetAudienceKDE *charts.Density2D        `json:"budgetAudienceKde"`
	BudgetCriticKDE   *charts.Density2D        `json:"budgetCriticKde"`
	BudgetByGenre     *charts.StackedHistogram `json:"budgetByGenre"`
	CriticBox         *charts.Box              `json:"criticBox"`
	CriticViolin      *charts.Violin           `json:"criticViolin"`
	GenreYearFacets   *charts.FacetGrid        `json:"genreYearFacets"`
	Composite         *charts.Composite        `json:"composite"`
}

// Report is the full response for one filter state.
type Report struct {
	Filter     domain.Filter  `json:"filter"`
	Aggregates Aggregates     `json:"aggregates"`
	Summary    []FieldSummary `json:"summary,omitempty"`
	Preview    []domain.Movie `json:"preview"`
	Charts     ChartSet       `json:"charts"`
}

// Meta describes the loaded dataset for UI controls.
type Meta struct {
	Genres  []string `json:"genres"`
	YearMin int      `json:"yearMin"`
	YearMax int      `json:"yearMax"`
	Count   int      `json:"count"`
}

// Params tunes one report request.
type Params struct {
	JointKind    charts.JointKind
	Bins         int
	PreviewLimit int
}

// Options carries the process-wide defaults for report generation.
type Options struct {
	DefaultBins  int
	PreviewLimit int
	PreviewMax   int
}

func (o Options) withDefaults() Options {
	if o.DefaultBins <= 0 {
		o.DefaultBins = charts.DefaultBins
	}
	if o.PreviewLimit <= 0 {
		o.PreviewLimit = 10
	}
	if o.PreviewMax <= 0 {
		o.PreviewMax = 15
	}
	return o
}

// Generator produces reports against the process-wide loaded table. The table
// is read-only after load, so a Generator is safe for concurrent requests.
type Generator struct {
	table *dataset.Table
	opts  Options
}

// New constructs a Generator over the loaded table.
func New(table *dataset.Table, opts Options) *Generator {
	return &Generator{table: table, opts: opts.withDefaults()}
}

// Meta reports the dataset metadata driving the UI controls.
func (g *Generator) Meta() Meta {
	yearMin, yearMax := g.table.YearRange()
	return Meta{
		Genres:  g.table.Genres(),
		YearMin: yearMin,
		YearMax: yearMax,
		Count:   g.table.Len(),
	}
}

// FullSpan returns the filter selecting the whole dataset, the default state
// of the UI controls.
func (g *Generator) FullSpan() domain.Filter {
	return g.table.FullSpan()
}

// Preview returns the first rows of the filtered set, capped at PreviewMax.
func (g *Generator) Preview(f domain.Filter, limit int) []domain.Movie {
	if limit <= 0 {
		limit = g.opts.PreviewLimit
	}
	if limit > g.opts.PreviewMax {
		limit = g.opts.PreviewMax
	}
	return g.table.Filter(f).Head(limit)
}

// Build computes the full report for one filter state.
func (g *Generator) Build(f domain.Filter, p Params) Report {
	p = g.fillParams(p)
	filtered := g.table.Filter(f)

	preview := filtered.Head(p.PreviewLimit)
	if preview == nil {
		preview = []domain.Movie{}
	}

	return Report{
		Filter:     f,
		Aggregates: aggregates(filtered),
		Summary:    summaries(filtered),
		Preview:    preview,
		Charts:     g.chartSet(filtered, p),
	}
}

// Chart computes a single chart spec by name for one filter state.
func (g *Generator) Chart(name string, f domain.Filter, p Params) (interface{}, error) {
	p = g.fillParams(p)
	filtered := g.table.Filter(f)

	switch name {
	case ChartJoint:
		return charts.NewJoint(filtered, charts.FieldCriticRating, charts.FieldAudienceRating, p.JointKind, p.Bins), nil
	case ChartScatterByGenre:
		return charts.NewGroupedScatter(filtered, charts.FieldCriticRating, charts.FieldAudienceRating), nil
	case ChartAudienceHistogram:
		return charts.NewHistogram(filtered, charts.FieldAudienceRating, p.Bins, true), nil
	case ChartBudgetHistogram:
		return charts.NewHistogram(filtered, charts.FieldBudgetMillions, p.Bins, false), nil
	case ChartBudgetAudienceKDE:
		return charts.NewDensity2D(filtered, charts.FieldBudgetMillions, charts.FieldAudienceRating, true, "Greens"), nil
	case ChartBudgetCriticKDE:
		return charts.NewDensity2D(filtered, charts.FieldBudgetMillions, charts.FieldCriticRating, true, "Blues"), nil
	case ChartBudgetByGenre:
		return charts.NewStackedHistogram(filtered, charts.FieldBudgetMillions, p.Bins), nil
	case ChartCriticBox:
		return charts.NewBox(filtered, charts.FieldCriticRating), nil
	case ChartCriticViolin:
		return charts.NewViolin(filtered, charts.FieldCriticRating), nil
	case ChartGenreYearFacets:
		return charts.NewFacetGrid(filtered, charts.FieldBudgetMillions, p.Bins), nil
	case ChartComposite:
		return charts.NewComposite(filtered), nil
	}
	return nil, ErrUnknownChart
}

func (g *Generator) fillParams(p Params) Params {
	if p.JointKind == "" {
		p.JointKind = charts.JointHex
	}
	if p.Bins <= 0 {
		p.Bins = g.opts.DefaultBins
	}
	if p.PreviewLimit <= 0 {
		p.PreviewLimit = g.opts.PreviewLimit
	}
	if p.PreviewLimit > g.opts.PreviewMax {
		p.PreviewLimit = g.opts.PreviewMax
	}
	return p
}

func (g *Generator) chartSet(filtered *dataset.Table, p Params) ChartSet {
	return ChartSet{
		Joint:             charts.NewJoint(filtered, charts.FieldCriticRating, charts.FieldAudienceRating, p.JointKind, p.Bins),
		ScatterByGenre:    charts.NewGroupedScatter(filtered, charts.FieldCriticRating, charts.FieldAudienceRating),
		AudienceHistogram: charts.NewHistogram(filtered, charts.FieldAudienceRating, p.Bins, true),
		BudgetHistogram:   charts.NewHistogram(filtered, charts.FieldBudgetMillions, p.Bins, false),
		BudgetAudienceKDE: charts.NewDensity2D(filtered, charts.FieldBudgetMillions, charts.FieldAudienceRating, true, "Greens"),
		BudgetCriticKDE:   charts.NewDensity2D(filtered, charts.FieldBudgetMillions, charts.FieldCriticRating, true, "Blues"),
		BudgetByGenre:     charts.NewStackedHistogram(filtered, charts.FieldBudgetMillions, p.Bins),
		CriticBox:         charts.NewBox(filtered, charts.FieldCriticRating),
		CriticViolin:      charts.NewViolin(filtered, charts.FieldCriticRating),
		GenreYearFacets:   charts.NewFacetGrid(filtered, charts.FieldBudgetMillions, p.Bins),
		Composite:         charts.NewComposite(filtered),
	}
}

func aggregates(t *dataset.Table) Aggregates {
	return Aggregates{
		AvgCriticRating:   finitePtr(stats.Mean(t.CriticRatings())),
		AvgAudienceRating: finitePtr(stats.Mean(t.AudienceRatings())),
		AvgBudgetMillions: finitePtr(stats.Mean(t.Budgets())),
		Count:             t.Len(),
	}
}

func summaries(t *dataset.Table) []FieldSummary {
	if t.Len() == 0 {
		return nil
	}
	return []FieldSummary{
		fieldSummary(charts.FieldCriticRating, t.CriticRatings()),
		fieldSummary(charts.FieldAudienceRating, t.AudienceRatings()),
		fieldSummary(charts.FieldBudgetMillions, t.Budgets()),
	}
}

func fieldSummary(field charts.Field, values []float64) FieldSummary {
	s := stats.Describe(values)
	return FieldSummary{
		Field:  field,
		Count:  s.Count,
		Mean:   finitePtr(s.Mean),
		Std:    finitePtr(s.Std),
		Min:    finitePtr(s.Min),
		Q1:     finitePtr(s.Q1),
		Median: finitePtr(s.Median),
		Q3:     finitePtr(s.Q3),
		Max:    finitePtr(s.Max),
	}
}

// finitePtr maps an undefined statistic to nil so JSON encoding never sees a
// NaN and consumers can tell "not available" from zero.
func finitePtr(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
