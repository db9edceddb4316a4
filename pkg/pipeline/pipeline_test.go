package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/polytopia/wythoff/pkg/cache"
)

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"valid 3d", Options{Symbol: []int{4, 2, 3}, Distances: []float64{1, 0, 0}}, false},
		{"valid 4d", Options{Symbol: []int{4, 2, 2, 3, 2, 3}, Distances: []float64{1, 0, 0, 0}}, false},
		{"valid snub without distances", Options{Symbol: []int{4, 2, 3}, Snub: true}, false},
		{"missing symbol", Options{Distances: []float64{1, 0, 0}}, true},
		{"bad symbol arity", Options{Symbol: []int{4, 2}, Distances: []float64{1, 0}}, true},
		{"missing distances", Options{Symbol: []int{4, 2, 3}}, true},
		{"snub 4d", Options{Symbol: []int{4, 2, 2, 3, 2, 3}, Snub: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				if tt.opts.MaxCosets != DefaultMaxCosets {
					t.Errorf("MaxCosets = %d, want default", tt.opts.MaxCosets)
				}
				if tt.opts.Precision != DefaultPrecision {
					t.Errorf("Precision = %d, want default", tt.opts.Precision)
				}
				if tt.opts.Logger == nil {
					t.Error("Logger not defaulted")
				}
			}
		})
	}
}

func TestExecute(t *testing.T) {
	runner := NewRunner(nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		Symbol:    []int{4, 2, 3},
		Distances: []float64{1, 0, 0},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Stats.VertexCount != 8 || result.Stats.EdgeCount != 12 || result.Stats.FaceCount != 6 {
		t.Errorf("stats = %+v, want 8/12/6", result.Stats)
	}
	if result.CacheInfo.Hit {
		t.Error("NullCache run reported a cache hit")
	}
	if !strings.Contains(string(result.Include), "Face(0, 4, vertices_list)") {
		t.Error("include missing face calls")
	}
	if result.IncludeHash != cache.Hash(result.Include) {
		t.Error("IncludeHash does not match include bytes")
	}
}

func TestExecute_Snub(t *testing.T) {
	runner := NewRunner(nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		Symbol: []int{4, 2, 3},
		Snub:   true,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Stats.VertexCount != 24 || result.Stats.EdgeCount != 60 || result.Stats.FaceCount != 38 {
		t.Errorf("stats = %+v, want 24/60/38", result.Stats)
	}
}

func TestExecute_CacheRoundTrip(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(c, nil)
	defer runner.Close()

	opts := Options{Symbol: []int{3, 2, 3}, Distances: []float64{1, 1, 0}}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.Hit {
		t.Error("first run reported a cache hit")
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.Hit {
		t.Error("second run missed the cache")
	}
	if string(second.Include) != string(first.Include) {
		t.Error("cached include differs from rendered include")
	}
	if second.Stats.VertexCount != first.Stats.VertexCount {
		t.Errorf("cached stats = %+v, want counts of %+v", second.Stats, first.Stats)
	}
	if second.Stats.BuildTime != 0 || second.Stats.RenderTime != 0 {
		t.Error("cache hit should report zero durations")
	}

	// Refresh bypasses the stored artifact.
	opts.Refresh = true
	third, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("third Execute: %v", err)
	}
	if third.CacheInfo.Hit {
		t.Error("refresh run reported a cache hit")
	}
}

func TestOptionsCacheKey(t *testing.T) {
	a := Options{Symbol: []int{4, 2, 3}, Distances: []float64{1, 0, 0}}
	b := Options{Symbol: []int{4, 2, 3}, Distances: []float64{0, 0, 1}}
	c := Options{Symbol: []int{4, 2, 3}, Distances: []float64{1, 0, 0}, Precision: 4}
	for _, o := range []*Options{&a, &b, &c} {
		if err := o.ValidateAndSetDefaults(); err != nil {
			t.Fatal(err)
		}
	}
	if a.cacheKey() == b.cacheKey() {
		t.Error("different distances share a cache key")
	}
	if a.cacheKey() == c.cacheKey() {
		t.Error("different precision shares a cache key")
	}
}

func TestExecute_NonSphericalSymbol(t *testing.T) {
	runner := NewRunner(nil, nil)
	defer runner.Close()

	_, err := runner.Execute(context.Background(), Options{
		Symbol:    []int{6, 2, 3},
		Distances: []float64{1, 0, 0},
		MaxCosets: 500,
	})
	if err == nil {
		t.Fatal("Execute succeeded on an affine symbol")
	}
}

func TestExecute_ContextCancelled(t *testing.T) {
	runner := NewRunner(nil, nil)
	defer runner.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Execute(ctx, Options{
		Symbol:    []int{4, 2, 3},
		Distances: []float64{1, 0, 0},
	})
	if err == nil {
		t.Fatal("Execute succeeded with cancelled context")
	}
}
