// Package charts builds renderer-agnostic chart specifications from a movie
// table. Builders are pure functions of their input: the same filtered table
// always produces the same spec, and an empty table produces a placeholder
// spec flagged Empty rather than an error.
package charts

import (
	"github.com/mkumar312/movie-ratings-dashboard/internal/domain"
)

// Field names a numeric column of the dataset.
type Field string

const (
	FieldCriticRating   Field = "CriticRating"
	FieldAudienceRating Field = "AudienceRating"
	FieldBudgetMillions Field = "BudgetMillions"
	FieldYear           Field = "Year"
)

// Values extracts the field's column from the rows.
func (f Field) Values(movies []domain.Movie) []float64 {
	out := make([]float64, len(movies))
	for i, m := range movies {
		out[i] = f.valueOf(m)
	}
	return out
}

func (f Field) valueOf(m domain.Movie) float64 {
	switch f {
	case FieldCriticRating:
		return m.CriticRating
	case FieldAudienceRating:
		return m.AudienceRating
	case FieldBudgetMillions:
		return m.BudgetMillions
	case FieldYear:
		return float64(m.Year)
	}
	return 0
}

// JointKind selects how the joint distribution chart is presented.
type JointKind string

const (
	JointScatter JointKind = "scatter"
	JointHex     JointKind = "hex"
	JointReg     JointKind = "reg"
	JointKDE     JointKind = "kde"
	JointHist    JointKind = "hist"
	JointResid   JointKind = "resid"
)

// ValidJointKind reports whether k is one of the supported presentations.
func ValidJointKind(k JointKind) bool {
	switch k {
	case JointScatter, JointHex, JointReg, JointKDE, JointHist, JointResid:
		return true
	}
	return false
}

// palette provides stable series colors keyed by position.
var palette = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

func colorFor(i int) string { return palette[i%len(palette)] }

// Point is a single x/y observation.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DensityCurve is a 1-D kernel density estimate evaluated on a grid.
type DensityCurve struct {
	Field Field     `json:"field"`
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
}

// Histogram bins one numeric field. Density, when present, is a KDE overlay
// of the same values.
type Histogram struct {
	Field    Field         `json:"field"`
	BinEdges []float64     `json:"binEdges"`
	Counts   []int         `json:"counts"`
	Density  *DensityCurve `json:"density,omitempty"`
	Color    string        `json:"color"`
	Empty    bool          `json:"empty"`
}

// Density2D is a 2-D kernel density estimate on a rectangular grid. Z is
// indexed [yi][xi].
type Density2D struct {
	XField   Field       `json:"xField"`
	YField   Field       `json:"yField"`
	X        []float64   `json:"x"`
	Y        []float64   `json:"y"`
	Z        [][]float64 `json:"z"`
	Fill     bool        `json:"fill"`
	Colormap string      `json:"colormap"`
	Empty    bool        `json:"empty"`
}

// StackedSeries is one layer of a stacked histogram.
type StackedSeries struct {
	Name   string `json:"name"`
	Color  string `json:"color"`
	Counts []int  `json:"counts"`
}

// StackedHistogram bins one field with per-group layers sharing bin edges.
type StackedHistogram struct {
	Field    Field           `json:"field"`
	GroupBy  string          `json:"groupBy"`
	BinEdges []float64       `json:"binEdges"`
	Series   []StackedSeries `json:"series"`
	Empty    bool            `json:"empty"`
}

// ScatterSeries is one colored point group of a grouped scatter chart.
type ScatterSeries struct {
	Name   string  `json:"name"`
	Color  string  `json:"color"`
	Points []Point `json:"points"`
}

// GroupedScatter plots one field pair with a series per group value.
type GroupedScatter struct {
	XField  Field           `json:"xField"`
	YField  Field           `json:"yField"`
	GroupBy string          `json:"groupBy"`
	Series  []ScatterSeries `json:"series"`
	Empty   bool            `json:"empty"`
}

// Trend is a fitted least-squares line.
type Trend struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// Joint is the joint distribution of a field pair, with marginal histograms.
// Which payload fields are populated depends on Kind: Points for scatter and
// reg (with Trend), Points holding residuals for resid, Density for kde, and
// Cells with the shared bin edges for hex and hist.
type Joint struct {
	XField    Field      `json:"xField"`
	YField    Field      `json:"yField"`
	Kind      JointKind  `json:"kind"`
	Points    []Point    `json:"points,omitempty"`
	Trend     *Trend     `json:"trend,omitempty"`
	Density   *Density2D `json:"density,omitempty"`
	XBinEdges []float64  `json:"xBinEdges,omitempty"`
	YBinEdges []float64  `json:"yBinEdges,omitempty"`
	Cells     [][]int    `json:"cells,omitempty"`
	XMarginal *Histogram `json:"xMarginal,omitempty"`
	YMarginal *Histogram `json:"yMarginal,omitempty"`
	Empty     bool       `json:"empty"`
}

// BoxGroup is the box-plot summary of one group.
type BoxGroup struct {
	Name        string    `json:"name"`
	Min         float64   `json:"min"`
	Q1          float64   `json:"q1"`
	Median      float64   `json:"median"`
	Q3          float64   `json:"q3"`
	Max         float64   `json:"max"`
	WhiskerLow  float64   `json:"whiskerLow"`
	WhiskerHigh float64   `json:"whiskerHigh"`
	Outliers    []float64 `json:"outliers,omitempty"`
	Color       string    `json:"color"`
}

// Box compares one field's distribution across groups.
type Box struct {
	Field   Field      `json:"field"`
	GroupBy string     `json:"groupBy"`
	Groups  []BoxGroup `json:"groups"`
	Empty   bool       `json:"empty"`
}

// ViolinGroup is the density profile of one group.
type ViolinGroup struct {
	Name    string    `json:"name"`
	Support []float64 `json:"support"`
	Density []float64 `json:"density"`
	Q1      float64   `json:"q1"`
	Median  float64   `json:"median"`
	Q3      float64   `json:"q3"`
	Color   string    `json:"color"`
}

// Violin compares one field's density profile across groups.
type Violin struct {
	Field   Field         `json:"field"`
	GroupBy string        `json:"groupBy"`
	Groups  []ViolinGroup `json:"groups"`
	Empty   bool          `json:"empty"`
}

// FacetCell is one sub-chart of a facet grid.
type FacetCell struct {
	Row  string     `json:"row"`
	Col  string     `json:"col"`
	Hist *Histogram `json:"hist"`
}

// FacetGrid splits one field's histogram into a row×col grid of sub-charts.
type FacetGrid struct {
	Field    Field       `json:"field"`
	RowField string      `json:"rowField"`
	ColField string      `json:"colField"`
	Rows     []string    `json:"rows"`
	Cols     []string    `json:"cols"`
	Cells    []FacetCell `json:"cells"`
	Empty    bool        `json:"empty"`
}

// CompositePanel is one quadrant of the composite chart. Exactly one of the
// chart pointers is set.
type CompositePanel struct {
	Row       int        `json:"row"`
	Col       int        `json:"col"`
	Title     string     `json:"title"`
	Density2D *Density2D `json:"density2d,omitempty"`
	Violin    *Violin    `json:"violin,omitempty"`
}

// Composite is the fixed 2×2 dashboard grid.
type Composite struct {
	Title  string           `json:"title"`
	Panels []CompositePanel `json:"panels"`
	Empty  bool             `json:"empty"`
}
