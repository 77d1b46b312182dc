// Package stats provides the numeric primitives behind the dashboard
// aggregates and chart specifications. All functions are deterministic and
// treat empty input as NaN rather than an error.
package stats

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean of xs, or NaN when xs is empty.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// StdDev returns the sample standard deviation, NaN for fewer than two values.
func StdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	mean := Mean(xs)
	var sum float64
	for _, x := range xs {
		d := x - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)-1))
}

// MinMax returns the extrema of xs; both are NaN when xs is empty.
func MinMax(xs []float64) (float64, float64) {
	if len(xs) == 0 {
		return math.NaN(), math.NaN()
	}
	min, max := xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return min, max
}

// Quantile returns the q-th quantile (0 ≤ q ≤ 1) using linear interpolation
// between closest ranks, matching the pandas/numpy default.
func Quantile(xs []float64, q float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Summary is the five-number summary plus count, mean, and deviation for one
// numeric column.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Describe computes the Summary of xs.
func Describe(xs []float64) Summary {
	min, max := MinMax(xs)
	return Summary{
		Count:  len(xs),
		Mean:   Mean(xs),
		Std:    StdDev(xs),
		Min:    min,
		Q1:     Quantile(xs, 0.25),
		Median: Quantile(xs, 0.5),
		Q3:     Quantile(xs, 0.75),
		Max:    max,
	}
}

// Histogram bins xs into count equal-width bins spanning [min,max]. The last
// bin includes its upper edge. Edges has len(counts)+1 entries. Empty input
// returns nil slices.
func Histogram(xs []float64, bins int) (edges []float64, counts []int) {
	if len(xs) == 0 || bins <= 0 {
		return nil, nil
	}
	min, max := MinMax(xs)
	if min == max {
		// Degenerate span: widen so every value lands in one real bin.
		min -= 0.5
		max += 0.5
	}
	width := (max - min) / float64(bins)

	edges = make([]float64, bins+1)
	for i := range edges {
		edges[i] = min + float64(i)*width
	}
	edges[bins] = max

	counts = make([]int, bins)
	for _, x := range xs {
		idx := int((x - min) / width)
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		counts[idx]++
	}
	return edges, counts
}

// Bandwidth returns the Silverman rule-of-thumb kernel bandwidth for xs.
func Bandwidth(xs []float64) float64 {
	n := float64(len(xs))
	if n < 2 {
		return 1.0
	}
	sigma := StdDev(xs)
	iqr := Quantile(xs, 0.75) - Quantile(xs, 0.25)
	spread := sigma
	if iqr > 0 && iqr/1.34 < spread {
		spread = iqr / 1.34
	}
	if spread <= 0 || math.IsNaN(spread) {
		return 1.0
	}
	return 0.9 * spread * math.Pow(n, -0.2)
}

// KDE evaluates a Gaussian kernel density estimate of xs on a grid of points
// points spanning the data extended by three bandwidths on each side.
func KDE(xs []float64, points int) (grid, density []float64) {
	if len(xs) == 0 || points <= 0 {
		return nil, nil
	}
	h := Bandwidth(xs)
	min, max := MinMax(xs)
	lo, hi := min-3*h, max+3*h

	grid = make([]float64, points)
	density = make([]float64, points)
	step := 0.0
	if points > 1 {
		step = (hi - lo) / float64(points-1)
	}
	norm := 1.0 / (float64(len(xs)) * h * math.Sqrt(2*math.Pi))
	for i := range grid {
		g := lo + float64(i)*step
		grid[i] = g
		var sum float64
		for _, x := range xs {
			z := (g - x) / h
			sum += math.Exp(-0.5 * z * z)
		}
		density[i] = norm * sum
	}
	return grid, density
}

// KDE2D evaluates a product-kernel Gaussian density of the (xs, ys) pairs on
// an nx×ny grid. Z is indexed [yi][xi] so each inner slice is one horizontal
// scanline. The three slices are nil when the input is empty.
func KDE2D(xs, ys []float64, nx, ny int) (gx, gy []float64, z [][]float64) {
	if len(xs) == 0 || len(xs) != len(ys) || nx <= 0 || ny <= 0 {
		return nil, nil, nil
	}
	hx := Bandwidth(xs)
	hy := Bandwidth(ys)

	gx = kdeGrid(xs, hx, nx)
	gy = kdeGrid(ys, hy, ny)

	norm := 1.0 / (float64(len(xs)) * hx * hy * 2 * math.Pi)
	z = make([][]float64, ny)
	for yi := range z {
		row := make([]float64, nx)
		for xi := range row {
			var sum float64
			for i := range xs {
				zx := (gx[xi] - xs[i]) / hx
				zy := (gy[yi] - ys[i]) / hy
				sum += math.Exp(-0.5 * (zx*zx + zy*zy))
			}
			row[xi] = norm * sum
		}
		z[yi] = row
	}
	return gx, gy, z
}

func kdeGrid(xs []float64, h float64, points int) []float64 {
	min, max := MinMax(xs)
	lo, hi := min-3*h, max+3*h
	grid := make([]float64, points)
	step := 0.0
	if points > 1 {
		step = (hi - lo) / float64(points-1)
	}
	for i := range grid {
		grid[i] = lo + float64(i)*step
	}
	return grid
}

// LinearFit computes the least-squares line y = slope*x + intercept. Both
// values are NaN when fewer than two points exist or x has no variance.
func LinearFit(xs, ys []float64) (slope, intercept float64) {
	if len(xs) < 2 || len(xs) != len(ys) {
		return math.NaN(), math.NaN()
	}
	mx := Mean(xs)
	my := Mean(ys)
	var cov, varX float64
	for i := range xs {
		cov += (xs[i] - mx) * (ys[i] - my)
		varX += (xs[i] - mx) * (xs[i] - mx)
	}
	if varX == 0 {
		return math.NaN(), math.NaN()
	}
	slope = cov / varX
	intercept = my - slope*mx
	return slope, intercept
}

// Residuals returns ys minus the fitted line values. Nil when no fit exists.
func Residuals(xs, ys []float64) []float64 {
	slope, intercept := LinearFit(xs, ys)
	if math.IsNaN(slope) {
		return nil
	}
	res := make([]float64, len(xs))
	for i := range xs {
		res[i] = ys[i] - (slope*xs[i] + intercept)
	}
	return res
}
