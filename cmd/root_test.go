package cmd

import (
	"testing"

	cfgpkg "github.com/KaramelBytes/tablescope-cli/internal/config"
)

func TestParseDelimiter(t *testing.T) {
	cases := []struct {
		in   string
		want rune
		ok   bool
	}{
		{"", 0, true},
		{",", ',', true},
		{";", ';', true},
		{"tab", '\t', true},
		{"\t", '\t', true},
		{"|", 0, false},
	}
	for _, c := range cases {
		got, err := parseDelimiter(c.in)
		if c.ok && (err != nil || got != c.want) {
			t.Fatalf("parseDelimiter(%q) = %q, %v; want %q", c.in, got, err, c.want)
		}
		if !c.ok && err == nil {
			t.Fatalf("parseDelimiter(%q) expected error", c.in)
		}
	}
}

func TestDefaultOptionsMergesConfig(t *testing.T) {
	old := cfg
	defer func() { cfg = old }()

	cfg = nil
	opt := defaultOptions()
	if opt.CorrThreshold != 0.7 || opt.Neighbors != 5 || opt.Components != 2 || opt.Clusters != 3 {
		t.Fatalf("defaults without config = %+v", opt)
	}

	cfg = &cfgpkg.Global{CorrThreshold: 0.9, MINeighbors: 3, PCAComponents: 4, Clusters: 6}
	opt = defaultOptions()
	if opt.CorrThreshold != 0.9 || opt.Neighbors != 3 || opt.Components != 4 || opt.Clusters != 6 {
		t.Fatalf("merged options = %+v", opt)
	}
}

func TestBuildAnalyzerRequiresInput(t *testing.T) {
	oldFile, oldDemo := flagFile, flagDemo
	defer func() { flagFile, flagDemo = oldFile, oldDemo }()

	flagFile, flagDemo = "", false
	if _, err := buildAnalyzer(); err == nil {
		t.Fatalf("expected error without --file or --demo")
	}
}

func TestBuildAnalyzerDemoTarget(t *testing.T) {
	oldFile, oldDemo, oldTarget := flagFile, flagDemo, flagTarget
	defer func() { flagFile, flagDemo, flagTarget = oldFile, oldDemo, oldTarget }()

	flagFile, flagDemo, flagTarget = "", true, ""
	a, err := buildAnalyzer()
	if err != nil {
		t.Fatalf("buildAnalyzer demo: %v", err)
	}
	if a.Target() != "species" {
		t.Fatalf("demo target = %q, want species", a.Target())
	}
}
