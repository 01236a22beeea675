package minfo

import (
	"math"
	"math/rand"
	"testing"
)

func TestDigamma(t *testing.T) {
	cases := []struct {
		x, want float64
	}{
		{1, -0.5772156649015329},
		{2, 0.42278433509846714},
		{0.5, -1.9635100260214235},
		{10, 2.251752589066721},
	}
	for _, c := range cases {
		got := digamma(c.x)
		if math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("digamma(%v) = %v, want %v", c.x, got, c.want)
		}
	}
}

func TestRegressionDependentBeatsIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	n := 200
	x := make([]float64, n)
	yDep := make([]float64, n)
	yInd := make([]float64, n)
	for i := range x {
		x[i] = rng.NormFloat64()
		yDep[i] = 2*x[i] + 0.1*rng.NormFloat64()
		yInd[i] = rng.NormFloat64()
	}

	dep := Regression(x, yDep, 5)
	ind := Regression(x, yInd, 5)
	if dep <= ind {
		t.Fatalf("dependent MI = %v, independent MI = %v; want dependent larger", dep, ind)
	}
	if dep < 1 {
		t.Fatalf("MI of near-deterministic relation = %v, want >= 1 nat", dep)
	}
	if ind < 0 || dep < 0 {
		t.Fatalf("negative MI: dep=%v ind=%v", dep, ind)
	}
}

func TestRegressionDropsNaNPairs(t *testing.T) {
	x := []float64{1, 2, math.NaN(), 4, 5, 6}
	y := []float64{1, 2, 3, math.NaN(), 5, 6}
	if got := Regression(x, y, 2); got < 0 {
		t.Fatalf("MI with NaN pairs = %v, want >= 0", got)
	}
}

func TestRegressionDegenerateInputs(t *testing.T) {
	if got := Regression(nil, nil, 3); got != 0 {
		t.Fatalf("MI of empty input = %v, want 0", got)
	}
	if got := Regression([]float64{1}, []float64{2}, 3); got != 0 {
		t.Fatalf("MI of single pair = %v, want 0", got)
	}
	if got := Regression([]float64{1, 2}, []float64{3, 4}, 0); got != 0 {
		t.Fatalf("MI with k=0 = %v, want 0", got)
	}
}

func TestClassificationSeparatedGroups(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var x []float64
	var labels []string
	for i := 0; i < 100; i++ {
		x = append(x, rng.NormFloat64())
		labels = append(labels, "low")
	}
	for i := 0; i < 100; i++ {
		x = append(x, 50+rng.NormFloat64())
		labels = append(labels, "high")
	}

	sep := Classification(x, labels, 5)
	// Perfectly separated binary labels carry ln(2) nats.
	if math.Abs(sep-math.Ln2) > 0.15 {
		t.Fatalf("separated-group MI = %v, want about %v", sep, math.Ln2)
	}

	shuffled := append([]string(nil), labels...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	ind := Classification(x, shuffled, 5)
	if sep <= ind {
		t.Fatalf("separated MI = %v, shuffled MI = %v; want separated larger", sep, ind)
	}
}

func TestClassificationDropsSingletonLabels(t *testing.T) {
	x := []float64{1, 2, 3, 4, 100}
	labels := []string{"a", "a", "b", "b", "once"}
	if got := Classification(x, labels, 3); got < 0 {
		t.Fatalf("MI with singleton label = %v, want >= 0", got)
	}
}

func TestClassificationDegenerateInputs(t *testing.T) {
	if got := Classification([]float64{1, 2}, []string{"a"}, 3); got != 0 {
		t.Fatalf("MI with mismatched lengths = %v, want 0", got)
	}
	if got := Classification([]float64{1, 2}, []string{"a", "b"}, 3); got != 0 {
		t.Fatalf("MI of all-singleton labels = %v, want 0", got)
	}
}
