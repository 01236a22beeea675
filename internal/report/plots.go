package report

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 5 * vg.Inch
)

// matrixGrid adapts a matrix to plotter.GridXYZ with unit-spaced cells.
// Rows are drawn bottom-up, matching the NominalY label order.
type matrixGrid struct {
	m mat.Matrix
}

func (g matrixGrid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}

func (g matrixGrid) Z(c, r int) float64 { return g.m.At(r, c) }
func (g matrixGrid) X(c int) float64    { return float64(c) }
func (g matrixGrid) Y(r int) float64    { return float64(r) }

// heatmap renders a labeled matrix as a heatmap PNG.
func heatmap(m mat.Matrix, rowLabels, colLabels []string, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	h := plotter.NewHeatMap(matrixGrid{m: m}, palette.Heat(12, 1))
	p.Add(h)
	p.NominalX(colLabels...)
	p.NominalY(rowLabels...)
	return p.Save(plotWidth, plotHeight, path)
}

// sharesHeatmap renders a row-normalized share table as a heatmap PNG.
func sharesHeatmap(shares [][]float64, rowLabels, colLabels []string, title, path string) error {
	m := mat.NewDense(len(shares), len(colLabels), nil)
	for i, row := range shares {
		m.SetRow(i, row)
	}
	return heatmap(m, rowLabels, colLabels, title, path)
}

// scatterGroups renders the first two columns of xy as a scatter plot. When
// labels is non-empty, points are grouped and colored per distinct label in
// first-seen order, with a legend entry each; otherwise a single series is
// drawn.
func scatterGroups(xy *mat.Dense, labels []string, title, xlab, ylab, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlab
	p.Y.Label.Text = ylab

	n, _ := xy.Dims()
	if len(labels) != n {
		labels = make([]string, n)
	}
	var order []string
	seen := make(map[string]bool)
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			order = append(order, l)
		}
	}
	for gi, group := range order {
		var pts plotter.XYs
		for i := 0; i < n; i++ {
			if labels[i] != group {
				continue
			}
			pts = append(pts, plotter.XY{X: xy.At(i, 0), Y: xy.At(i, 1)})
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = plotutil.Color(gi)
		s.GlyphStyle.Radius = vg.Points(2)
		p.Add(s)
		if group != "" {
			p.Legend.Add(group, s)
		}
	}
	return p.Save(plotWidth, plotHeight, path)
}

// hbar renders values as a horizontal bar chart with names on the Y axis.
func hbar(names []string, values []float64, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	b, err := plotter.NewBarChart(plotter.Values(values), vg.Points(12))
	if err != nil {
		return err
	}
	b.Horizontal = true
	b.Color = plotutil.Color(0)
	p.Add(b)
	p.NominalY(names...)
	return p.Save(plotWidth, plotHeight, path)
}

// vbar renders values as a vertical bar chart with names on the X axis.
func vbar(names []string, values []float64, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	b, err := plotter.NewBarChart(plotter.Values(values), vg.Points(20))
	if err != nil {
		return err
	}
	b.Color = plotutil.Color(0)
	p.Add(b)
	p.NominalX(names...)
	return p.Save(plotWidth, plotHeight, path)
}

// boxPlot renders one box per category at unit-spaced positions.
func boxPlot(categories []string, groups [][]float64, title, ylab, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = ylab
	for i, vals := range groups {
		b, err := plotter.NewBoxPlot(vg.Points(20), float64(i), plotter.Values(vals))
		if err != nil {
			return err
		}
		p.Add(b)
	}
	p.NominalX(categories...)
	return p.Save(plotWidth, plotHeight, path)
}
