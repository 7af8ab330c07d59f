package servicepoint_test

import (
	"testing"

	sp "github.com/cccb/servicepoint-sub000"
)

func TestValueGridGetSet(t *testing.T) {
	g := sp.NewValueGrid[byte](3, 2)
	g.Set(1, 1, 42)
	if got := g.Get(1, 1); got != 42 {
		t.Errorf("Get(1,1) = %d, want 42", got)
	}
}

func TestValueGridOutOfBoundsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get out of bounds should panic")
		}
	}()
	g := sp.NewValueGrid[byte](3, 2)
	g.Get(3, 0)
}

func TestValueGridGetOptional(t *testing.T) {
	g := sp.NewValueGrid[byte](3, 2)
	if _, ok := g.GetOptional(3, 0); ok {
		t.Error("GetOptional out of bounds should report false")
	}
	if _, ok := g.GetOptional(0, 0); !ok {
		t.Error("GetOptional in bounds should report true")
	}
}

func TestValueGridLoadDimensionMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("LoadValueGrid with mismatched data length should panic")
		}
	}()
	sp.LoadValueGrid[byte](2, 2, []byte{1, 2, 3})
}

func TestValueGridFill(t *testing.T) {
	g := sp.NewValueGrid[byte](2, 2)
	g.Fill(7)
	for _, v := range g.DataRef() {
		if v != 7 {
			t.Fatalf("Fill(7) left value %d", v)
		}
	}
}

func TestValueGridRowColumn(t *testing.T) {
	g := sp.LoadValueGrid[byte](2, 2, []byte{1, 2, 3, 4})
	row, ok := g.Row(1)
	if !ok {
		t.Fatal("Row(1) should succeed")
	}
	if row[0] != 3 || row[1] != 4 {
		t.Errorf("Row(1) = %v, want [3 4]", row)
	}

	col, ok := g.Column(0)
	if !ok {
		t.Fatal("Column(0) should succeed")
	}
	if col[0] != 1 || col[1] != 3 {
		t.Errorf("Column(0) = %v, want [1 3]", col)
	}
}

func TestValueGridSetRowWrongLength(t *testing.T) {
	g := sp.NewValueGrid[byte](2, 2)
	if err := g.SetRow(0, []byte{1}); err == nil {
		t.Error("SetRow with wrong length should fail")
	}
}

func TestValueGridMapPreservesShape(t *testing.T) {
	g := sp.LoadValueGrid[byte](2, 2, []byte{1, 2, 3, 4})
	doubled := sp.MapValueGrid(g, func(v byte) int { return int(v) * 2 })
	if doubled.Width() != g.Width() || doubled.Height() != g.Height() {
		t.Fatal("Map should preserve shape")
	}
	if doubled.Get(1, 1) != 8 {
		t.Errorf("Get(1,1) = %d, want 8", doubled.Get(1, 1))
	}
}

func TestValueGridWindow(t *testing.T) {
	g := sp.LoadValueGrid[byte](3, 3, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9})
	w, err := sp.WindowOf[byte](g, 1, 1, 2, 2)
	if err != nil {
		t.Fatalf("WindowOf: %v", err)
	}
	if w.Get(0, 0) != 5 {
		t.Errorf("window Get(0,0) = %d, want 5", w.Get(0, 0))
	}
}

func TestValueGridWindowMutWritesThroughToParent(t *testing.T) {
	g := sp.NewValueGrid[byte](3, 3)
	w, err := sp.WindowMutOf[byte](g, 1, 1, 2, 2)
	if err != nil {
		t.Fatalf("WindowMutOf: %v", err)
	}
	w.Set(0, 0, 9)
	if g.Get(1, 1) != 9 {
		t.Errorf("write through window did not reach parent: Get(1,1) = %d", g.Get(1, 1))
	}
}

func TestValueGridWindowOutOfBoundsFails(t *testing.T) {
	g := sp.NewValueGrid[byte](3, 3)
	if _, err := sp.WindowOf[byte](g, 2, 2, 2, 2); err == nil {
		t.Error("window escaping parent bounds should fail")
	}
	if _, err := sp.WindowOf[byte](g, 0, 0, 0, 1); err == nil {
		t.Error("window with zero area should fail")
	}
}

func TestValueGridEqual(t *testing.T) {
	a := sp.LoadValueGrid[byte](2, 1, []byte{1, 2})
	b := sp.LoadValueGrid[byte](2, 1, []byte{1, 2})
	c := sp.LoadValueGrid[byte](2, 1, []byte{1, 3})
	if !sp.ValueGridEqual(a, b) {
		t.Error("identical grids should be equal")
	}
	if sp.ValueGridEqual(a, c) {
		t.Error("different grids should not be equal")
	}
}
