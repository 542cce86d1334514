package sparse

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMatrixSetAndGet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.grammar")
	defer teardown()
	//
	M := NewIntMatrix(10, 10, -1)
	M.Set(2, 3, 4711)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected M(2,3) = 4711, is %d", v)
	}
	if v := M.Value(9, 9); v != -1 {
		t.Errorf("expected M(9,9) to be null-value, is %d", v)
	}
	M.Set(0, 1, 1)
	M.Set(5, 0, 5)
	if M.ValueCount() != 3 {
		t.Errorf("expected 3 values in M, have %d", M.ValueCount())
	}
	rows := []int{}
	M.Each(func(i, j int, a, b int32) {
		rows = append(rows, i)
	})
	if len(rows) != 3 || rows[0] != 0 || rows[1] != 2 || rows[2] != 5 {
		t.Errorf("expected entries in row-major order, have rows %v", rows)
	}
}

func TestMatrixAddConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.grammar")
	defer teardown()
	//
	M := NewIntMatrix(3, 3, DefaultNullValue)
	if M.Add(1, 1, 7) {
		t.Errorf("expected empty position to report no previous occupation")
	}
	if !M.Add(1, 1, 8) {
		t.Errorf("expected second Add to report occupation")
	}
	a, b := M.Values(1, 1)
	if a != 7 || b != 8 {
		t.Errorf("expected pair (7,8), have (%d,%d)", a, b)
	}
	if M.ValueCount() != 1 {
		t.Errorf("expected 1 position in M, have %d", M.ValueCount())
	}
}

func TestMatrixOutOfRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.grammar")
	defer teardown()
	//
	M := NewIntMatrix(2, 2, -1)
	M.Set(5, 5, 1)
	M.Set(-1, 0, 1)
	if M.ValueCount() != 0 {
		t.Errorf("expected out-of-range positions to be ignored")
	}
}
