package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkumar312/movie-ratings-dashboard/internal/dataset"
	"github.com/mkumar312/movie-ratings-dashboard/internal/domain"
)

func sampleTable() *dataset.Table {
	return dataset.New([]domain.Movie{
		{Film: "A", Genre: "Action", CriticRating: 80, AudienceRating: 75, BudgetMillions: 100, Year: 2008},
		{Film: "B", Genre: "Action", CriticRating: 60, AudienceRating: 65, BudgetMillions: 150, Year: 2009},
		{Film: "C", Genre: "Comedy", CriticRating: 40, AudienceRating: 70, BudgetMillions: 30, Year: 2008},
		{Film: "D", Genre: "Comedy", CriticRating: 55, AudienceRating: 72, BudgetMillions: 20, Year: 2010},
		{Film: "E", Genre: "Drama", CriticRating: 90, AudienceRating: 85, BudgetMillions: 15, Year: 2009},
		{Film: "F", Genre: "Drama", CriticRating: 70, AudienceRating: 60, BudgetMillions: 25, Year: 2010},
	})
}

func emptyTable() *dataset.Table {
	return dataset.New(nil)
}

func TestNewHistogram(t *testing.T) {
	h := NewHistogram(sampleTable(), FieldAudienceRating, 10, true)
	require.False(t, h.Empty)
	require.Len(t, h.BinEdges, 11)
	require.Len(t, h.Counts, 10)
	require.NotNil(t, h.Density)

	total := 0
	for _, c := range h.Counts {
		total += c
	}
	assert.Equal(t, 6, total)
}

func TestNewHistogramEmpty(t *testing.T) {
	h := NewHistogram(emptyTable(), FieldAudienceRating, 10, true)
	assert.True(t, h.Empty)
	assert.Nil(t, h.Counts)
	assert.Nil(t, h.Density)
}

func TestNewDensity2D(t *testing.T) {
	d := NewDensity2D(sampleTable(), FieldBudgetMillions, FieldAudienceRating, true, "Greens")
	require.False(t, d.Empty)
	assert.Equal(t, "Greens", d.Colormap)
	require.Len(t, d.Y, len(d.Z))
	for _, row := range d.Z {
		require.Len(t, row, len(d.X))
	}
}

func TestNewStackedHistogram(t *testing.T) {
	s := NewStackedHistogram(sampleTable(), FieldBudgetMillions, 5)
	require.False(t, s.Empty)
	require.Len(t, s.Series, 3, "one layer per genre")

	total := 0
	for _, layer := range s.Series {
		require.Len(t, layer.Counts, 5)
		for _, c := range layer.Counts {
			total += c
		}
	}
	assert.Equal(t, 6, total, "layers must partition the rows")
}

func TestNewGroupedScatter(t *testing.T) {
	g := NewGroupedScatter(sampleTable(), FieldCriticRating, FieldAudienceRating)
	require.False(t, g.Empty)
	require.Len(t, g.Series, 3)
	assert.Equal(t, "Action", g.Series[0].Name)
	assert.Len(t, g.Series[0].Points, 2)
}

func TestNewJointKinds(t *testing.T) {
	table := sampleTable()

	scatter := NewJoint(table, FieldCriticRating, FieldAudienceRating, JointScatter, 10)
	assert.Len(t, scatter.Points, 6)
	assert.Nil(t, scatter.Trend)
	require.NotNil(t, scatter.XMarginal)
	require.NotNil(t, scatter.YMarginal)

	reg := NewJoint(table, FieldCriticRating, FieldAudienceRating, JointReg, 10)
	assert.Len(t, reg.Points, 6)
	require.NotNil(t, reg.Trend)

	resid := NewJoint(table, FieldCriticRating, FieldAudienceRating, JointResid, 10)
	assert.Len(t, resid.Points, 6)

	kde := NewJoint(table, FieldCriticRating, FieldAudienceRating, JointKDE, 10)
	require.NotNil(t, kde.Density)

	hex := NewJoint(table, FieldCriticRating, FieldAudienceRating, JointHex, 10)
	require.Len(t, hex.Cells, 10)
	total := 0
	for _, row := range hex.Cells {
		require.Len(t, row, 10)
		for _, c := range row {
			total += c
		}
	}
	assert.Equal(t, 6, total)
}

func TestNewJointEmpty(t *testing.T) {
	j := NewJoint(emptyTable(), FieldCriticRating, FieldAudienceRating, JointScatter, 10)
	assert.True(t, j.Empty)
	assert.Nil(t, j.Points)
	assert.Nil(t, j.XMarginal)
}

func TestNewBox(t *testing.T) {
	b := NewBox(sampleTable(), FieldCriticRating)
	require.False(t, b.Empty)
	require.Len(t, b.Groups, 3)

	action := b.Groups[0]
	assert.Equal(t, "Action", action.Name)
	assert.InDelta(t, 60, action.Min, 1e-9)
	assert.InDelta(t, 80, action.Max, 1e-9)
	assert.InDelta(t, 70, action.Median, 1e-9)
	assert.LessOrEqual(t, action.WhiskerLow, action.Q1)
	assert.GreaterOrEqual(t, action.WhiskerHigh, action.Q3)
}

func TestNewViolin(t *testing.T) {
	v := NewViolin(sampleTable(), FieldCriticRating)
	require.False(t, v.Empty)
	require.Len(t, v.Groups, 3)
	for _, g := range v.Groups {
		assert.Equal(t, len(g.Support), len(g.Density))
		assert.NotEmpty(t, g.Support)
	}
}

func TestNewFacetGrid(t *testing.T) {
	f := NewFacetGrid(sampleTable(), FieldBudgetMillions, 5)
	require.False(t, f.Empty)
	assert.Equal(t, []string{"Action", "Comedy", "Drama"}, f.Rows)
	assert.Equal(t, []string{"2008", "2009", "2010"}, f.Cols)
	require.Len(t, f.Cells, 9, "grid stays rectangular")

	empties := 0
	for _, cell := range f.Cells {
		require.NotNil(t, cell.Hist)
		if cell.Hist.Empty {
			empties++
		}
	}
	assert.Equal(t, 3, empties, "combos with no rows carry empty histograms")
}

func TestNewComposite(t *testing.T) {
	c := NewComposite(sampleTable())
	require.False(t, c.Empty)
	require.Len(t, c.Panels, 4)

	assert.NotNil(t, c.Panels[0].Density2D)
	assert.NotNil(t, c.Panels[1].Density2D)
	require.NotNil(t, c.Panels[2].Violin)
	assert.Equal(t, "Year", c.Panels[2].Violin.GroupBy)
	assert.NotNil(t, c.Panels[3].Density2D)
	assert.False(t, c.Panels[3].Density2D.Fill)
}

func TestNewCompositeWithoutDrama(t *testing.T) {
	table := dataset.New([]domain.Movie{
		{Film: "A", Genre: "Action", CriticRating: 80, AudienceRating: 75, BudgetMillions: 100, Year: 2008},
		{Film: "B", Genre: "Comedy", CriticRating: 60, AudienceRating: 65, BudgetMillions: 50, Year: 2009},
	})
	c := NewComposite(table)
	require.Len(t, c.Panels, 4)
	assert.True(t, c.Panels[2].Violin.Empty, "no Drama rows means an empty violin panel")
}

func TestBuildersAreDeterministic(t *testing.T) {
	table := sampleTable()
	assert.Equal(t,
		NewJoint(table, FieldCriticRating, FieldAudienceRating, JointKDE, 10),
		NewJoint(table, FieldCriticRating, FieldAudienceRating, JointKDE, 10))
	assert.Equal(t,
		NewStackedHistogram(table, FieldBudgetMillions, 8),
		NewStackedHistogram(table, FieldBudgetMillions, 8))
	assert.Equal(t, NewComposite(table), NewComposite(table))
}

func TestValidJointKind(t *testing.T) {
	for _, k := range []JointKind{JointScatter, JointHex, JointReg, JointKDE, JointHist, JointResid} {
		assert.True(t, ValidJointKind(k))
	}
	assert.False(t, ValidJointKind("pie"))
	assert.False(t, ValidJointKind(""))
}
