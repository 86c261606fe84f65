package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/ainkit/ainviz/pkg/cache"
	apperrors "github.com/ainkit/ainviz/pkg/errors"
	"github.com/ainkit/ainviz/pkg/graphio"
)

// overlapping chain: items 0/1 and 1/2 overlap, 0/2 are disjoint.
func testCollection() graphio.Collection {
	return graphio.Collection{
		Items: []graphio.Item{
			{Lower: 0, Upper: 2},
			{Lower: 1, Upper: 5},
			{Lower: 3, Upper: 4},
		},
		Degrees: [][]float64{
			{0, 0.5, 0},
			{0.5, 0, 0.5},
			{1, 0.5, 0},
		},
	}
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantCode apperrors.Code
	}{
		{name: "Defaults", opts: Options{}},
		{name: "ExplicitGraph", opts: Options{VizType: VizTypeGraph, Formats: []string{"svg", "dot"}}},
		{name: "Timeline", opts: Options{VizType: VizTypeTimeline, Formats: []string{"svg", "json"}}},
		{name: "BadVizType", opts: Options{VizType: "heatmap"}, wantCode: apperrors.ErrCodeInvalidVizType},
		{name: "BadFormat", opts: Options{Formats: []string{"gif"}}, wantCode: apperrors.ErrCodeInvalidFormat},
		{name: "BadPrecision", opts: Options{Precision: 11}, wantCode: apperrors.ErrCodeInvalidPrecision},
		{name: "NegativePrecision", opts: Options{Precision: -1}, wantCode: apperrors.ErrCodeInvalidPrecision},
		{name: "DotForTimeline", opts: Options{VizType: VizTypeTimeline, Formats: []string{"dot"}}, wantCode: apperrors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if tt.wantCode != "" {
				if apperrors.GetCode(err) != tt.wantCode {
					t.Fatalf("want code %s, got %v", tt.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.opts.VizType == "" || len(tt.opts.Formats) == 0 || tt.opts.Precision == 0 || tt.opts.Width == 0 {
				t.Errorf("defaults not applied: %+v", tt.opts)
			}
		})
	}
}

func TestValidatePrecision(t *testing.T) {
	tests := []struct {
		precision int
		wantErr   bool
	}{
		{-1, true},
		{0, true}, // 0 is "unset" in Options, never a valid explicit value
		{1, false},
		{DefaultPrecision, false},
		{MaxPrecision, false},
		{MaxPrecision + 1, true},
	}

	for _, tt := range tests {
		err := ValidatePrecision(tt.precision)
		if tt.wantErr && apperrors.GetCode(err) != apperrors.ErrCodeInvalidPrecision {
			t.Errorf("ValidatePrecision(%d) = %v, want INVALID_PRECISION", tt.precision, err)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("ValidatePrecision(%d) = %v, want nil", tt.precision, err)
		}
	}
}

func TestOptionsValidateIdempotent(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second call: %v", err)
	}
}

func TestExecuteGraph(t *testing.T) {
	runner := NewRunner(nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), testCollection(), Options{
		Formats: []string{FormatDOT, FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Stats.NodeCount != 3 {
		t.Errorf("NodeCount = %d, want 3", result.Stats.NodeCount)
	}
	if result.Stats.EdgeCount != 2 {
		t.Errorf("EdgeCount = %d, want 2", result.Stats.EdgeCount)
	}
	if result.GraphHash == "" {
		t.Error("GraphHash not set")
	}

	dot := string(result.Artifacts[FormatDOT])
	if !strings.Contains(dot, "graph G {") || !strings.Contains(dot, `0 -- 1 [label="0.2500"]`) {
		t.Errorf("unexpected DOT output:\n%s", dot)
	}

	doc, err := graphio.UnmarshalGraphDoc(result.Artifacts[FormatJSON])
	if err != nil {
		t.Fatalf("UnmarshalGraphDoc: %v", err)
	}
	if len(doc.Nodes) != 3 || len(doc.Edges) != 2 {
		t.Errorf("JSON document has %d nodes, %d edges", len(doc.Nodes), len(doc.Edges))
	}
}

func TestExecuteTimeline(t *testing.T) {
	runner := NewRunner(nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), testCollection(), Options{
		VizType: VizTypeTimeline,
		Formats: []string{FormatSVG, FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	want := [][]int{{0, 2}, {1}}
	if len(result.Levels) != len(want) {
		t.Fatalf("Levels = %v, want %v", result.Levels, want)
	}
	for i := range want {
		if len(result.Levels[i]) != len(want[i]) {
			t.Fatalf("Levels = %v, want %v", result.Levels, want)
		}
		for j := range want[i] {
			if result.Levels[i][j] != want[i][j] {
				t.Fatalf("Levels = %v, want %v", result.Levels, want)
			}
		}
	}
	if result.Stats.LevelCount != 2 {
		t.Errorf("LevelCount = %d, want 2", result.Stats.LevelCount)
	}

	svg := string(result.Artifacts[FormatSVG])
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "<polyline") {
		t.Errorf("unexpected timeline SVG:\n%s", svg)
	}

	doc, err := graphio.UnmarshalTimelineDoc(result.Artifacts[FormatJSON])
	if err != nil {
		t.Fatalf("UnmarshalTimelineDoc: %v", err)
	}
	if len(doc.Levels) != 2 {
		t.Errorf("JSON levels = %v", doc.Levels)
	}
}

func TestExecuteArtifactCaching(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	runner := NewRunner(fc, nil)
	defer runner.Close()

	opts := Options{Formats: []string{FormatDOT, FormatJSON}}

	first, err := runner.Execute(ctx, testCollection(), opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.RenderHit {
		t.Error("first run should not hit the cache")
	}

	second, err := runner.Execute(ctx, testCollection(), opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run should hit the cache")
	}
	if string(first.Artifacts[FormatDOT]) != string(second.Artifacts[FormatDOT]) {
		t.Error("cached artifact differs from computed artifact")
	}

	// Refresh bypasses the cache.
	refreshOpts := Options{Formats: []string{FormatDOT, FormatJSON}, Refresh: true}
	third, err := runner.Execute(ctx, testCollection(), refreshOpts)
	if err != nil {
		t.Fatalf("refresh Execute: %v", err)
	}
	if third.CacheInfo.RenderHit {
		t.Error("refresh run should bypass the cache")
	}
}

func TestExecuteInvalidCollection(t *testing.T) {
	runner := NewRunner(nil, nil)

	col := graphio.Collection{Items: []graphio.Item{{Lower: 5, Upper: 1}}}
	_, err := runner.Execute(context.Background(), col, Options{Formats: []string{FormatJSON}})
	if apperrors.GetCode(err) != apperrors.ErrCodeInvalidInput {
		t.Errorf("want INVALID_INPUT, got %v", err)
	}
}

func TestExecuteDegreeShapeMismatch(t *testing.T) {
	runner := NewRunner(nil, nil)

	col := graphio.Collection{
		Items:   []graphio.Item{{Lower: 0, Upper: 1}, {Lower: 2, Upper: 3}},
		Degrees: [][]float64{{0}},
	}
	_, err := runner.Execute(context.Background(), col, Options{Formats: []string{FormatJSON}})
	if apperrors.GetCode(err) != apperrors.ErrCodeInvalidInput {
		t.Errorf("want INVALID_INPUT, got %v", err)
	}
}
