package storage

import (
	"math"
	"testing"

	"github.com/san-kum/halosim/internal/astro"
	"github.com/san-kum/halosim/internal/curve"
)

func sampleResult(t *testing.T) *curve.Result {
	t.Helper()
	h, err := astro.NewHalo(1e12, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err := curve.Sample(h, curve.Grid{Min: 1, Max: 100, Points: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return res
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	result := sampleResult(t)
	runID, err := st.Save(RunMetadata{
		TotalMass:     1e12,
		ScaleRadius:   20,
		Concentration: 10,
		RMin:          1,
		RMax:          100,
		Points:        20,
	}, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.TotalMass != 1e12 || meta.ScaleRadius != 20 {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Metrics["v_peak"] != result.Metrics["v_peak"] {
		t.Errorf("expected metrics to roundtrip, got %+v", meta.Metrics)
	}

	loaded, err := st.LoadCurve(runID)
	if err != nil {
		t.Fatalf("load curve failed: %v", err)
	}
	if len(loaded.Radii) != len(result.Radii) {
		t.Fatalf("expected %d rows, got %d", len(result.Radii), len(loaded.Radii))
	}
	for i := range loaded.Radii {
		if math.Abs(loaded.Velocities[i]-result.Velocities[i]) > 1e-9 {
			t.Errorf("velocity mismatch at row %d", i)
		}
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	result := sampleResult(t)
	if _, err := st.Save(RunMetadata{TotalMass: 1e12, ScaleRadius: 20}, result); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(t.TempDir() + "/does-not-exist")

	runs, err := st.List()
	if err != nil {
		t.Fatalf("expected no error for missing dir, got %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestStoreLoadMissingRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); err == nil {
		t.Error("expected error for missing run")
	}
	if _, err := st.LoadCurve("nope"); err == nil {
		t.Error("expected error for missing curve")
	}
}
