package servicepoint

import "fmt"

// ValueGrid is a dense 2-D array of T in row-major order: index(x, y) =
// y*width + x. It is the layout the display expects for tile-addressed
// payloads (CP-437 glyphs, per-tile brightness, ...).
type ValueGrid[T any] struct {
	width, height int
	data          []T
}

// NewValueGrid creates a ValueGrid of the given dimensions, every cell set
// to the zero value of T.
func NewValueGrid[T any](width, height int) *ValueGrid[T] {
	return &ValueGrid[T]{width: width, height: height, data: make([]T, width*height)}
}

// LoadValueGrid copies data into a new ValueGrid of the given dimensions.
//
// Panics if len(data) != width*height.
func LoadValueGrid[T any](width, height int, data []T) *ValueGrid[T] {
	if width*height != len(data) {
		panic(fmt.Sprintf("dimension mismatch: %dx%d grid needs %d elements, got %d", width, height, width*height, len(data)))
	}
	cp := make([]T, len(data))
	copy(cp, data)
	return &ValueGrid[T]{width: width, height: height, data: cp}
}

// ValueGridFromSlice wraps data (without copying) into a grid of the given
// width, deriving height as len(data)/width.
//
// Panics if len(data) is not a multiple of width.
func ValueGridFromSlice[T any](width int, data []T) *ValueGrid[T] {
	if len(data)%width != 0 {
		panic(fmt.Sprintf("dimension mismatch: length %d is not divisible by width %d", len(data), width))
	}
	return &ValueGrid[T]{width: width, height: len(data) / width, data: data}
}

// TryLoadValueGrid copies data into a new ValueGrid, reporting
// InvalidDimensionsError instead of panicking if it does not fit exactly.
func TryLoadValueGrid[T any](width, height int, data []T) (*ValueGrid[T], error) {
	if width*height != len(data) {
		return nil, &InvalidDimensionsError{Width: width, Height: height, DataLen: len(data)}
	}
	return LoadValueGrid(width, height, data), nil
}

// InvalidDimensionsError is returned when a grid's declared dimensions do
// not match the length of the data provided to fill it.
type InvalidDimensionsError struct {
	Width, Height, DataLen int
}

func (e *InvalidDimensionsError) Error() string {
	return fmt.Sprintf("dimensions %dx%d do not match data length %d", e.Width, e.Height, e.DataLen)
}

// Width returns the grid's width in cells.
func (g *ValueGrid[T]) Width() int { return g.width }

// Height returns the grid's height in cells.
func (g *ValueGrid[T]) Height() int { return g.height }

func (g *ValueGrid[T]) index(x, y int) int {
	return x + y*g.width
}

func (g *ValueGrid[T]) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *ValueGrid[T]) assertInBounds(x, y int) {
	if !g.inBounds(x, y) {
		panic(fmt.Sprintf("position (%d, %d) is out of bounds for %dx%d grid", x, y, g.width, g.height))
	}
}

// Get returns the value at (x, y).
//
// Panics if x or y is out of bounds.
func (g *ValueGrid[T]) Get(x, y int) T {
	g.assertInBounds(x, y)
	return g.data[g.index(x, y)]
}

// GetOptional returns the value at (x, y) and true, or the zero value and
// false if the position is out of bounds.
func (g *ValueGrid[T]) GetOptional(x, y int) (T, bool) {
	if !g.inBounds(x, y) {
		var zero T
		return zero, false
	}
	return g.data[g.index(x, y)], true
}

// Set writes value at (x, y).
//
// Panics if x or y is out of bounds.
func (g *ValueGrid[T]) Set(x, y int, value T) {
	g.assertInBounds(x, y)
	g.data[g.index(x, y)] = value
}

// SetOptional writes value at (x, y), reporting whether the position was
// in bounds instead of panicking.
func (g *ValueGrid[T]) SetOptional(x, y int, value T) bool {
	if !g.inBounds(x, y) {
		return false
	}
	g.data[g.index(x, y)] = value
	return true
}

// Fill sets every cell in the grid to value.
func (g *ValueGrid[T]) Fill(value T) {
	for i := range g.data {
		g.data[i] = value
	}
}

// DataRef returns the backing storage for read-only inspection, in
// row-major order.
func (g *ValueGrid[T]) DataRef() []T {
	return g.data
}

// DataRefMut returns the backing storage for in-place mutation, in
// row-major order.
func (g *ValueGrid[T]) DataRefMut() []T {
	return g.data
}

// Row copies row y out of the grid. The second return value is false if y
// is out of bounds.
func (g *ValueGrid[T]) Row(y int) ([]T, bool) {
	if y < 0 || y >= g.height {
		return nil, false
	}
	row := make([]T, g.width)
	copy(row, g.data[y*g.width:(y+1)*g.width])
	return row, true
}

// Column copies column x out of the grid. The second return value is false
// if x is out of bounds.
func (g *ValueGrid[T]) Column(x int) ([]T, bool) {
	if x < 0 || x >= g.width {
		return nil, false
	}
	col := make([]T, g.height)
	for y := 0; y < g.height; y++ {
		col[y] = g.data[g.index(x, y)]
	}
	return col, true
}

// SetSeriesError is returned by SetRow and SetColumn when the replacement
// series has the wrong length, or the row/column index is out of bounds.
type SetSeriesError struct {
	// Kind is either "InvalidLength" or "OutOfBounds".
	Kind             string
	Expected, Actual int
	Index, Size      int
}

func (e *SetSeriesError) Error() string {
	if e.Kind == "OutOfBounds" {
		return fmt.Sprintf("index %d is out of bounds for size %d", e.Index, e.Size)
	}
	return fmt.Sprintf("expected series of length %d, got %d", e.Expected, e.Actual)
}

// SetRow overwrites row y with the contents of row, which must have exactly
// Width() elements.
func (g *ValueGrid[T]) SetRow(y int, row []T) error {
	if len(row) != g.width {
		return &SetSeriesError{Kind: "InvalidLength", Expected: g.width, Actual: len(row)}
	}
	if y < 0 || y >= g.height {
		return &SetSeriesError{Kind: "OutOfBounds", Index: y, Size: g.height}
	}
	copy(g.data[y*g.width:(y+1)*g.width], row)
	return nil
}

// SetColumn overwrites column x with the contents of col, which must have
// exactly Height() elements.
func (g *ValueGrid[T]) SetColumn(x int, col []T) error {
	if len(col) != g.height {
		return &SetSeriesError{Kind: "InvalidLength", Expected: g.height, Actual: len(col)}
	}
	if x < 0 || x >= g.width {
		return &SetSeriesError{Kind: "OutOfBounds", Index: x, Size: g.width}
	}
	for y := 0; y < g.height; y++ {
		g.data[g.index(x, y)] = col[y]
	}
	return nil
}

// Cell pairs a value with its grid position, yielded by Cells.
type Cell[T any] struct {
	X, Y  int
	Value T
}

// Cells iterates every cell in the grid, top-left to bottom-right.
func (g *ValueGrid[T]) Cells(yield func(Cell[T]) bool) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !yield(Cell[T]{X: x, Y: y, Value: g.data[g.index(x, y)]}) {
				return
			}
		}
	}
}

// Rows iterates every row in the grid, top to bottom, yielding a copy-free
// view into the backing slice.
func (g *ValueGrid[T]) Rows(yield func(y int, row []T) bool) {
	for y := 0; y < g.height; y++ {
		if !yield(y, g.data[y*g.width:(y+1)*g.width]) {
			return
		}
	}
}

// MapValueGrid converts a ValueGrid[T] into a same-shape ValueGrid[U] by
// applying f to every cell.
//
// This is a free function, not a method, because Go does not allow a
// method to introduce a type parameter beyond its receiver's.
func MapValueGrid[T, U any](g *ValueGrid[T], f func(T) U) *ValueGrid[U] {
	data := make([]U, len(g.data))
	for i, v := range g.data {
		data[i] = f(v)
	}
	return &ValueGrid[U]{width: g.width, height: g.height, data: data}
}

// Window is an immutable view into a rectangular sub-region of a
// ValueGrid, sharing its backing storage and translating coordinates.
type Window[T any] struct {
	parent  *ValueGrid[T]
	x, y    int
	w, h    int
}

// WindowOf constructs a Window over the rectangle (x, y, w, h) of parent.
//
// Fails if the rectangle has zero area or extends past the parent's bounds.
func WindowOf[T any](parent *ValueGrid[T], x, y, w, h int) (Window[T], error) {
	if w <= 0 || h <= 0 {
		return Window[T]{}, fmt.Errorf("window has zero area: %dx%d", w, h)
	}
	if x < 0 || y < 0 || x+w > parent.width || y+h > parent.height {
		return Window[T]{}, fmt.Errorf("window (%d,%d %dx%d) escapes parent bounds %dx%d", x, y, w, h, parent.width, parent.height)
	}
	return Window[T]{parent: parent, x: x, y: y, w: w, h: h}, nil
}

// Width returns the window's width in cells.
func (w Window[T]) Width() int { return w.w }

// Height returns the window's height in cells.
func (w Window[T]) Height() int { return w.h }

// Get returns the value at (x, y), relative to the window's origin.
func (w Window[T]) Get(x, y int) T {
	return w.parent.Get(w.x+x, w.y+y)
}

// WindowMut is a mutable view into a rectangular sub-region of a
// ValueGrid. Holding a WindowMut is the caller's exclusive-access token
// for the covered cells; Go has no borrow checker, so this is a
// documented convention rather than a compiler-enforced one.
type WindowMut[T any] struct {
	parent  *ValueGrid[T]
	x, y    int
	w, h    int
}

// WindowMutOf constructs a WindowMut over the rectangle (x, y, w, h) of
// parent, under the same constraints as WindowOf.
func WindowMutOf[T any](parent *ValueGrid[T], x, y, w, h int) (WindowMut[T], error) {
	if w <= 0 || h <= 0 {
		return WindowMut[T]{}, fmt.Errorf("window has zero area: %dx%d", w, h)
	}
	if x < 0 || y < 0 || x+w > parent.width || y+h > parent.height {
		return WindowMut[T]{}, fmt.Errorf("window (%d,%d %dx%d) escapes parent bounds %dx%d", x, y, w, h, parent.width, parent.height)
	}
	return WindowMut[T]{parent: parent, x: x, y: y, w: w, h: h}, nil
}

// Width returns the window's width in cells.
func (w WindowMut[T]) Width() int { return w.w }

// Height returns the window's height in cells.
func (w WindowMut[T]) Height() int { return w.h }

// Get returns the value at (x, y), relative to the window's origin.
func (w WindowMut[T]) Get(x, y int) T {
	return w.parent.Get(w.x+x, w.y+y)
}

// Set writes value at (x, y), relative to the window's origin, into the
// shared parent grid.
func (w WindowMut[T]) Set(x, y int, value T) {
	w.parent.Set(w.x+x, w.y+y, value)
}

// ValueGridEqual reports whether two grids have the same dimensions and content.
func ValueGridEqual[T comparable](a, b *ValueGrid[T]) bool {
	if a.width != b.width || a.height != b.height {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}
