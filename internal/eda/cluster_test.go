package eda

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

// blobRows builds three well-separated point clouds in two dimensions.
func blobRows(t *testing.T) []string {
	t.Helper()
	rows := []string{"x,y"}
	centers := [][2]float64{{0, 0}, {100, 100}, {-100, 150}}
	offsets := []float64{-1.5, -0.75, 0, 0.75, 1.5}
	for _, c := range centers {
		for _, dx := range offsets {
			for _, dy := range offsets[:3] {
				rows = append(rows, fmt.Sprintf("%.2f,%.2f", c[0]+dx, c[1]+dy))
			}
		}
	}
	return rows
}

func TestClusterPartitionsRows(t *testing.T) {
	ds := mustDataset(t, blobRows(t))
	a, err := New(ds, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	namesBefore := ds.Names()

	res, err := a.Cluster(3)
	if err != nil {
		t.Fatalf("Cluster: %v", err)
	}
	if res.K != 3 {
		t.Fatalf("k = %d, want 3", res.K)
	}
	n := ds.Nrow()
	if len(res.Labels) != n {
		t.Fatalf("labels = %d, want one per row", len(res.Labels))
	}
	total := 0
	for _, s := range res.Sizes {
		total += s
	}
	if total != n {
		t.Fatalf("sizes sum = %d, want %d", total, n)
	}
	for i, l := range res.Labels {
		if l < 0 || l >= 3 {
			t.Fatalf("label[%d] = %d, out of range", i, l)
		}
	}
	if len(res.Means) != 3 || len(res.Means[0]) != 2 {
		t.Fatalf("means dims = %dx%d, want 3x2", len(res.Means), len(res.Means[0]))
	}
	if r, c := res.Embedding.Dims(); r != n || c != 2 {
		t.Fatalf("embedding dims = %dx%d, want %dx2", r, c, n)
	}

	// Clustering reads the table, it never widens it.
	if !reflect.DeepEqual(ds.Names(), namesBefore) {
		t.Fatalf("column set changed: %v -> %v", namesBefore, ds.Names())
	}
}

func TestClusterMeansMatchLabels(t *testing.T) {
	a, err := New(mustDataset(t, blobRows(t)), "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	res, err := a.Cluster(3)
	if err != nil {
		t.Fatalf("Cluster: %v", err)
	}
	raw := a.Dataset().Matrix(res.Columns)
	sums := make([][]float64, res.K)
	counts := make([]int, res.K)
	for c := range sums {
		sums[c] = make([]float64, len(res.Columns))
	}
	for i, l := range res.Labels {
		counts[l]++
		for j, v := range raw[i] {
			sums[l][j] += v
		}
	}
	for c := 0; c < res.K; c++ {
		if counts[c] != res.Sizes[c] {
			t.Fatalf("cluster %d size = %d, recount %d", c, res.Sizes[c], counts[c])
		}
		if counts[c] == 0 {
			continue
		}
		for j := range res.Columns {
			want := sums[c][j] / float64(counts[c])
			if diff := res.Means[c][j] - want; diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("cluster %d mean[%d] = %v, want %v", c, j, res.Means[c][j], want)
			}
		}
	}
}

func TestClusterRejectsBadK(t *testing.T) {
	a, err := New(mustDataset(t, blobRows(t)), "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := a.Cluster(0); err == nil {
		t.Fatalf("expected error for k=0")
	}
	if _, err := a.Cluster(1000); err == nil {
		t.Fatalf("expected error for k > rows")
	}
}

func TestClusterNeedsTwoNumeric(t *testing.T) {
	rows := []string{
		"only,label",
		"1.0,a",
		"2.0,b",
		"3.0,a",
	}
	a, err := New(mustDataset(t, rows), "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := a.Cluster(2); !errors.Is(err, ErrInsufficientNumeric) {
		t.Fatalf("err = %v, want ErrInsufficientNumeric", err)
	}
}
