// Package report renders analysis results for humans: console tables on an
// io.Writer plus PNG charts in a plot directory.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"

	"github.com/KaramelBytes/tablescope-cli/internal/eda"
	"github.com/KaramelBytes/tablescope-cli/internal/utils"
)

// Reporter renders results as console tables and PNG charts. An empty plot
// directory disables chart output entirely.
type Reporter struct {
	w       io.Writer
	plotDir string
	runID   string
}

// New builds a Reporter. Each Reporter carries a short run ID used as a
// plot-filename prefix so repeated runs don't clobber earlier charts.
func New(w io.Writer, plotDir string) (*Reporter, error) {
	if plotDir != "" {
		if err := utils.EnsureDir(plotDir); err != nil {
			return nil, fmt.Errorf("create plot dir: %w", err)
		}
	}
	return &Reporter{w: w, plotDir: plotDir, runID: uuid.NewString()[:8]}, nil
}

// RunID returns the plot-filename prefix of this reporter.
func (r *Reporter) RunID() string { return r.runID }

func (r *Reporter) plotPath(name string) string {
	return filepath.Join(r.plotDir, fmt.Sprintf("%s_%s.png", r.runID, name))
}

func (r *Reporter) heading(text string) {
	color.New(color.FgCyan, color.Bold).Fprintf(r.w, "\n=== %s ===\n", text)
}

func (r *Reporter) savedNote(path string) {
	fmt.Fprintf(r.w, "✓ Saved plot to %s\n", path)
}

// Skip reports a guarded skip condition.
func (r *Reporter) Skip(note string) {
	fmt.Fprintf(r.w, "⚠ Skipping %s\n", note)
}

// BasicStats prints the descriptive summary of each non-empty partition.
func (r *Reporter) BasicStats(s *eda.BasicStats) {
	if len(s.Numeric) > 0 {
		r.heading("Numeric summary")
		t := tablewriter.NewWriter(r.w)
		t.SetHeader([]string{"Column", "Count", "Mean", "Std", "Min", "25%", "50%", "75%", "Max"})
		for _, c := range s.Numeric {
			t.Append([]string{
				c.Column, strconv.Itoa(c.Count),
				num(c.Mean), num(c.Std), num(c.Min), num(c.Q1), num(c.Median), num(c.Q3), num(c.Max),
			})
		}
		t.Render()
	}
	if len(s.Categorical) > 0 {
		r.heading("Categorical summary")
		t := tablewriter.NewWriter(r.w)
		t.SetHeader([]string{"Column", "Count", "Unique", "Top", "Freq"})
		for _, c := range s.Categorical {
			t.Append([]string{c.Column, strconv.Itoa(c.Count), strconv.Itoa(c.Unique), c.Top, strconv.Itoa(c.Freq)})
		}
		t.Render()
	}
}

// Correlation prints the Pearson matrix and the strongly correlated pairs,
// and renders the matrix as a heatmap.
func (r *Reporter) Correlation(c *eda.Correlation) error {
	r.heading("Correlation matrix")
	t := tablewriter.NewWriter(r.w)
	t.SetHeader(append([]string{""}, c.Columns...))
	for i, name := range c.Columns {
		row := []string{name}
		for j := range c.Columns {
			row = append(row, num(c.Matrix.At(i, j)))
		}
		t.Append(row)
	}
	t.Render()

	if len(c.Strong) == 0 {
		fmt.Fprintf(r.w, "No pairs with |r| > %.2f\n", c.Threshold)
	} else {
		fmt.Fprintf(r.w, "Highly correlated pairs (|r| > %.2f):\n", c.Threshold)
		for _, p := range c.Strong {
			fmt.Fprintf(r.w, "  %s ~ %s: r=%.3f\n", p.A, p.B, p.R)
		}
	}
	if r.plotDir == "" {
		return nil
	}
	path := r.plotPath("correlation_heatmap")
	if err := heatmap(c.Matrix, c.Columns, c.Columns, "Correlation Matrix", path); err != nil {
		return fmt.Errorf("correlation heatmap: %w", err)
	}
	r.savedNote(path)
	return nil
}

// MutualInfo prints the sorted per-feature scores and renders them as a
// horizontal bar chart.
func (r *Reporter) MutualInfo(m *eda.MutualInfo) error {
	r.heading(fmt.Sprintf("Mutual information (%s, k=%d)", m.Kind, m.Neighbors))
	t := tablewriter.NewWriter(r.w)
	t.SetHeader([]string{"Feature", "Score"})
	names := make([]string, 0, len(m.Scores))
	values := make([]float64, 0, len(m.Scores))
	for _, s := range m.Scores {
		t.Append([]string{s.Feature, num(s.Score)})
		names = append(names, s.Feature)
		values = append(values, s.Score)
	}
	t.Render()
	if r.plotDir == "" || len(values) == 0 {
		return nil
	}
	path := r.plotPath("mutual_info")
	if err := hbar(names, values, "Mutual Information", path); err != nil {
		return fmt.Errorf("mutual info chart: %w", err)
	}
	r.savedNote(path)
	return nil
}

// PCA prints the explained variance and the loading matrix, and renders a
// scatter of the first two components. Points are colored by the given
// labels when provided (one per row, classification targets).
func (r *Reporter) PCA(p *eda.PCA, labels []string) error {
	r.heading("Principal components")
	for i, v := range p.ExplainedVar {
		fmt.Fprintf(r.w, "PC%d explains %.1f%% of variance\n", i+1, v*100)
	}
	t := tablewriter.NewWriter(r.w)
	header := []string{"Feature"}
	for i := 0; i < p.Components; i++ {
		header = append(header, fmt.Sprintf("PC%d", i+1))
	}
	t.SetHeader(header)
	for i, name := range p.Columns {
		row := []string{name}
		for j := 0; j < p.Components; j++ {
			row = append(row, num(p.Loadings.At(i, j)))
		}
		t.Append(row)
	}
	t.Render()

	if r.plotDir == "" || p.Components < 2 {
		return nil
	}
	xlab := fmt.Sprintf("PC1 (%.1f%%)", p.ExplainedVar[0]*100)
	ylab := fmt.Sprintf("PC2 (%.1f%%)", p.ExplainedVar[1]*100)
	path := r.plotPath("pca_scatter")
	if err := scatterGroups(p.Scores, labels, "PCA Projection", xlab, ylab, path); err != nil {
		return fmt.Errorf("pca scatter: %w", err)
	}
	r.savedNote(path)
	return nil
}

// Cluster prints cluster sizes and per-cluster feature means, and renders
// the t-SNE embedding colored by cluster label.
func (r *Reporter) Cluster(c *eda.Cluster) error {
	r.heading(fmt.Sprintf("Clustering (k=%d)", c.K))
	t := tablewriter.NewWriter(r.w)
	t.SetHeader(append([]string{"Cluster", "Size"}, c.Columns...))
	for k := 0; k < c.K; k++ {
		row := []string{strconv.Itoa(k), strconv.Itoa(c.Sizes[k])}
		for _, v := range c.Means[k] {
			row = append(row, num(v))
		}
		t.Append(row)
	}
	t.Render()

	if r.plotDir == "" {
		return nil
	}
	labels := make([]string, len(c.Labels))
	for i, l := range c.Labels {
		labels[i] = "cluster " + strconv.Itoa(l)
	}
	path := r.plotPath("cluster_embedding")
	if err := scatterGroups(c.Embedding, labels, "Cluster Embedding (t-SNE)", "dim 1", "dim 2", path); err != nil {
		return fmt.Errorf("cluster embedding: %w", err)
	}
	r.savedNote(path)
	return nil
}

// Categorical prints per-column frequencies and, when a target is present,
// the per-category target distribution or cross-tabulation, rendering a
// count plot per column plus a box plot or crosstab heatmap.
func (r *Reporter) Categorical(c *eda.Categorical, target string) error {
	for _, col := range c.Columns {
		r.heading(fmt.Sprintf("Categorical: %s", col.Column))
		t := tablewriter.NewWriter(r.w)
		t.SetHeader([]string{"Value", "Count", "Share"})
		names := make([]string, 0, len(col.Freqs))
		counts := make([]float64, 0, len(col.Freqs))
		for _, f := range col.Freqs {
			t.Append([]string{f.Value, strconv.Itoa(f.Count), num(f.Share)})
			names = append(names, f.Value)
			counts = append(counts, float64(f.Count))
		}
		t.Render()

		if r.plotDir != "" && len(names) > 0 {
			path := r.plotPath("counts_" + col.Column)
			if err := vbar(names, counts, "Counts: "+col.Column, path); err != nil {
				return fmt.Errorf("count plot %s: %w", col.Column, err)
			}
			r.savedNote(path)
		}

		switch {
		case col.TargetByCategory != nil:
			if r.plotDir == "" {
				break
			}
			groups := make([][]float64, 0, len(names))
			kept := make([]string, 0, len(names))
			for _, name := range names {
				if vals := col.TargetByCategory[name]; len(vals) > 0 {
					groups = append(groups, vals)
					kept = append(kept, name)
				}
			}
			path := r.plotPath("target_box_" + col.Column)
			if err := boxPlot(kept, groups, fmt.Sprintf("%s by %s", target, col.Column), target, path); err != nil {
				return fmt.Errorf("box plot %s: %w", col.Column, err)
			}
			r.savedNote(path)
		case col.CrossTab != nil:
			ct := col.CrossTab
			t := tablewriter.NewWriter(r.w)
			t.SetHeader(append([]string{col.Column + " \\ " + target}, ct.Classes...))
			for i, cat := range ct.Categories {
				row := []string{cat}
				for _, v := range ct.Shares[i] {
					row = append(row, num(v))
				}
				t.Append(row)
			}
			t.Render()
			if r.plotDir == "" {
				break
			}
			path := r.plotPath("crosstab_" + col.Column)
			if err := sharesHeatmap(ct.Shares, ct.Categories, ct.Classes, fmt.Sprintf("%s vs %s", col.Column, target), path); err != nil {
				return fmt.Errorf("crosstab heatmap %s: %w", col.Column, err)
			}
			r.savedNote(path)
		}
	}
	return nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
