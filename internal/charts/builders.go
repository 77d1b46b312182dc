package charts

import (
	"math"
	"sort"
	"strconv"

	"github.com/mkumar312/movie-ratings-dashboard/internal/dataset"
	"github.com/mkumar312/movie-ratings-dashboard/internal/domain"
	"github.com/mkumar312/movie-ratings-dashboard/internal/stats"
)

const (
	densityPoints = 100
	densityGrid2D = 40
	// DefaultBins matches the bin count used across the dashboard histograms.
	DefaultBins = 20
)

// NewHistogram bins one field of the table. withDensity adds a KDE overlay.
func NewHistogram(t *dataset.Table, field Field, bins int, withDensity bool) *Histogram {
	h := &Histogram{Field: field, Color: colorFor(0)}
	if t.Len() == 0 {
		h.Empty = true
		return h
	}
	values := field.Values(t.Movies())
	h.BinEdges, h.Counts = stats.Histogram(values, bins)
	if withDensity {
		h.Density = newDensityCurve(values, field)
	}
	return h
}

func newDensityCurve(values []float64, field Field) *DensityCurve {
	x, y := stats.KDE(values, densityPoints)
	return &DensityCurve{Field: field, X: x, Y: y}
}

// NewDensity2D estimates the joint density of a field pair on a fixed grid.
func NewDensity2D(t *dataset.Table, xField, yField Field, fill bool, colormap string) *Density2D {
	d := &Density2D{XField: xField, YField: yField, Fill: fill, Colormap: colormap}
	if t.Len() == 0 {
		d.Empty = true
		return d
	}
	xs := xField.Values(t.Movies())
	ys := yField.Values(t.Movies())
	d.X, d.Y, d.Z = stats.KDE2D(xs, ys, densityGrid2D, densityGrid2D)
	return d
}

// NewStackedHistogram bins one field with a layer per genre over shared edges.
func NewStackedHistogram(t *dataset.Table, field Field, bins int) *StackedHistogram {
	s := &StackedHistogram{Field: field, GroupBy: "Genre"}
	if t.Len() == 0 {
		s.Empty = true
		return s
	}
	all := field.Values(t.Movies())
	edges, _ := stats.Histogram(all, bins)
	s.BinEdges = edges

	for i, genre := range t.Genres() {
		values := genreValues(t, genre, field)
		s.Series = append(s.Series, StackedSeries{
			Name:   genre,
			Color:  colorFor(i),
			Counts: countWithEdges(values, edges),
		})
	}
	return s
}

// NewGroupedScatter plots a field pair with one series per genre.
func NewGroupedScatter(t *dataset.Table, xField, yField Field) *GroupedScatter {
	g := &GroupedScatter{XField: xField, YField: yField, GroupBy: "Genre"}
	if t.Len() == 0 {
		g.Empty = true
		return g
	}
	for i, genre := range t.Genres() {
		series := ScatterSeries{Name: genre, Color: colorFor(i)}
		for _, m := range t.Movies() {
			if m.Genre == genre {
				series.Points = append(series.Points, Point{X: xField.valueOf(m), Y: yField.valueOf(m)})
			}
		}
		g.Series = append(g.Series, series)
	}
	return g
}

// NewJoint builds the joint distribution of a field pair in the requested
// presentation, with marginal histograms on both axes.
func NewJoint(t *dataset.Table, xField, yField Field, kind JointKind, bins int) *Joint {
	j := &Joint{XField: xField, YField: yField, Kind: kind}
	if t.Len() == 0 {
		j.Empty = true
		return j
	}
	xs := xField.Values(t.Movies())
	ys := yField.Values(t.Movies())

	switch kind {
	case JointScatter:
		j.Points = zipPoints(xs, ys)
	case JointReg:
		j.Points = zipPoints(xs, ys)
		slope, intercept := stats.LinearFit(xs, ys)
		if !math.IsNaN(slope) {
			j.Trend = &Trend{Slope: slope, Intercept: intercept}
		}
	case JointResid:
		res := stats.Residuals(xs, ys)
		if res != nil {
			j.Points = zipPoints(xs, res)
		}
	case JointKDE:
		j.Density = NewDensity2D(t, xField, yField, true, "Blues")
	case JointHex, JointHist:
		j.XBinEdges, _ = stats.Histogram(xs, bins)
		j.YBinEdges, _ = stats.Histogram(ys, bins)
		j.Cells = count2D(xs, ys, j.XBinEdges, j.YBinEdges)
	}

	j.XMarginal = marginal(xs, xField, bins)
	j.YMarginal = marginal(ys, yField, bins)
	return j
}

func marginal(values []float64, field Field, bins int) *Histogram {
	edges, counts := stats.Histogram(values, bins)
	return &Histogram{Field: field, BinEdges: edges, Counts: counts, Color: colorFor(0)}
}

// NewBox summarizes one field per genre with Tukey 1.5×IQR whiskers.
func NewBox(t *dataset.Table, field Field) *Box {
	b := &Box{Field: field, GroupBy: "Genre"}
	if t.Len() == 0 {
		b.Empty = true
		return b
	}
	for i, genre := range t.Genres() {
		values := genreValues(t, genre, field)
		if len(values) == 0 {
			continue
		}
		b.Groups = append(b.Groups, boxGroup(genre, values, colorFor(i)))
	}
	return b
}

func boxGroup(name string, values []float64, color string) BoxGroup {
	min, max := stats.MinMax(values)
	q1 := stats.Quantile(values, 0.25)
	q3 := stats.Quantile(values, 0.75)
	iqr := q3 - q1
	loFence := q1 - 1.5*iqr
	hiFence := q3 + 1.5*iqr

	g := BoxGroup{
		Name:        name,
		Min:         min,
		Q1:          q1,
		Median:      stats.Quantile(values, 0.5),
		Q3:          q3,
		Max:         max,
		WhiskerLow:  math.Inf(1),
		WhiskerHigh: math.Inf(-1),
		Color:       color,
	}
	for _, v := range values {
		if v < loFence || v > hiFence {
			g.Outliers = append(g.Outliers, v)
			continue
		}
		if v < g.WhiskerLow {
			g.WhiskerLow = v
		}
		if v > g.WhiskerHigh {
			g.WhiskerHigh = v
		}
	}
	// All values can be outliers only when the fence collapses; fall back to
	// the quartiles so the spec stays renderable.
	if math.IsInf(g.WhiskerLow, 1) {
		g.WhiskerLow, g.WhiskerHigh = q1, q3
	}
	return g
}

// NewViolin profiles one field's density per genre.
func NewViolin(t *dataset.Table, field Field) *Violin {
	return newViolin(t.Movies(), t.Genres(), field, "Genre", func(m domain.Movie) string { return m.Genre })
}

// NewViolinByYear profiles one field's density per release year.
func NewViolinByYear(movies []domain.Movie, field Field) *Violin {
	years := distinctYears(movies)
	return newViolin(movies, years, field, "Year", func(m domain.Movie) string { return strconv.Itoa(m.Year) })
}

func newViolin(movies []domain.Movie, groups []string, field Field, groupBy string, key func(domain.Movie) string) *Violin {
	v := &Violin{Field: field, GroupBy: groupBy}
	if len(movies) == 0 {
		v.Empty = true
		return v
	}
	for i, name := range groups {
		var values []float64
		for _, m := range movies {
			if key(m) == name {
				values = append(values, field.valueOf(m))
			}
		}
		if len(values) == 0 {
			continue
		}
		support, density := stats.KDE(values, densityPoints)
		v.Groups = append(v.Groups, ViolinGroup{
			Name:    name,
			Support: support,
			Density: density,
			Q1:      stats.Quantile(values, 0.25),
			Median:  stats.Quantile(values, 0.5),
			Q3:      stats.Quantile(values, 0.75),
			Color:   colorFor(i),
		})
	}
	return v
}

// NewFacetGrid splits one field's histogram into a genre×year grid. Cells
// with no rows carry an empty histogram so the grid shape stays rectangular.
func NewFacetGrid(t *dataset.Table, field Field, bins int) *FacetGrid {
	f := &FacetGrid{Field: field, RowField: "Genre", ColField: "Year"}
	if t.Len() == 0 {
		f.Empty = true
		return f
	}
	f.Rows = t.Genres()
	f.Cols = distinctYears(t.Movies())

	for _, genre := range f.Rows {
		for _, year := range f.Cols {
			var values []float64
			for _, m := range t.Movies() {
				if m.Genre == genre && strconv.Itoa(m.Year) == year {
					values = append(values, field.valueOf(m))
				}
			}
			cell := FacetCell{Row: genre, Col: year, Hist: &Histogram{Field: field, Color: colorFor(0)}}
			if len(values) == 0 {
				cell.Hist.Empty = true
			} else {
				cell.Hist.BinEdges, cell.Hist.Counts = stats.Histogram(values, bins)
			}
			f.Cells = append(f.Cells, cell)
		}
	}
	return f
}

// NewComposite assembles the fixed 2×2 grid: budget/audience density,
// budget/critic density, Drama rating-by-year violin, and critic/audience
// contours.
func NewComposite(t *dataset.Table) *Composite {
	c := &Composite{Title: "Advanced Dashboard"}
	if t.Len() == 0 {
		c.Empty = true
		return c
	}

	var drama []domain.Movie
	for _, m := range t.Movies() {
		if m.Genre == "Drama" {
			drama = append(drama, m)
		}
	}

	c.Panels = []CompositePanel{
		{Row: 0, Col: 0, Title: "Budget vs Audience (KDE)",
			Density2D: NewDensity2D(t, FieldBudgetMillions, FieldAudienceRating, true, "viridis")},
		{Row: 0, Col: 1, Title: "Budget vs Critic (KDE)",
			Density2D: NewDensity2D(t, FieldBudgetMillions, FieldCriticRating, true, "magma")},
		{Row: 1, Col: 0, Title: "Drama Rating by Year",
			Violin: NewViolinByYear(drama, FieldCriticRating)},
		{Row: 1, Col: 1, Title: "Critic vs Audience (Contours)",
			Density2D: NewDensity2D(t, FieldCriticRating, FieldAudienceRating, false, "Reds")},
	}
	return c
}

func genreValues(t *dataset.Table, genre string, field Field) []float64 {
	var out []float64
	for _, m := range t.Movies() {
		if m.Genre == genre {
			out = append(out, field.valueOf(m))
		}
	}
	return out
}

func distinctYears(movies []domain.Movie) []string {
	seen := make(map[int]struct{})
	var years []int
	for _, m := range movies {
		if _, ok := seen[m.Year]; !ok {
			seen[m.Year] = struct{}{}
			years = append(years, m.Year)
		}
	}
	sort.Ints(years)
	out := make([]string, len(years))
	for i, y := range years {
		out[i] = strconv.Itoa(y)
	}
	return out
}

func zipPoints(xs, ys []float64) []Point {
	points := make([]Point, len(xs))
	for i := range xs {
		points[i] = Point{X: xs[i], Y: ys[i]}
	}
	return points
}

func countWithEdges(values []float64, edges []float64) []int {
	counts := make([]int, len(edges)-1)
	for _, v := range values {
		idx := binIndex(v, edges)
		if idx >= 0 {
			counts[idx]++
		}
	}
	return counts
}

func count2D(xs, ys, xEdges, yEdges []float64) [][]int {
	cells := make([][]int, len(yEdges)-1)
	for i := range cells {
		cells[i] = make([]int, len(xEdges)-1)
	}
	for i := range xs {
		xi := binIndex(xs[i], xEdges)
		yi := binIndex(ys[i], yEdges)
		if xi >= 0 && yi >= 0 {
			cells[yi][xi]++
		}
	}
	return cells
}

// binIndex locates v among the edges; the last bin includes its upper edge.
// Values outside the edge span return -1.
func binIndex(v float64, edges []float64) int {
	n := len(edges) - 1
	if n < 1 || v < edges[0] || v > edges[n] {
		return -1
	}
	if v == edges[n] {
		return n - 1
	}
	width := (edges[n] - edges[0]) / float64(n)
	idx := int((v - edges[0]) / width)
	if idx >= n {
		idx = n - 1
	}
	return idx
}
