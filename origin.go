package servicepoint

import "fmt"

// Pixels marks an Origin as measured in pixels.
type Pixels struct{}

// Tiles marks an Origin as measured in tiles.
type Tiles struct{}

// Unit is implemented by the marker types Pixels and Tiles. It exists only
// to keep Origin[Pixels] and Origin[Tiles] from being accidentally unified
// behind a single runtime-tagged type, per the "type-state for units"
// design note: a tile coordinate must never silently satisfy a pixel
// coordinate's API, or vice versa.
type Unit interface {
	Pixels | Tiles
}

// Origin marks the top-left position of a rectangular write to the
// display, tagged at the type level with the unit it is measured in.
type Origin[U Unit] struct {
	X, Y int
}

// NewOrigin creates an Origin at the given position.
func NewOrigin[U Unit](x, y int) Origin[U] {
	return Origin[U]{X: x, Y: y}
}

// ZeroOrigin is the origin at (0, 0).
func ZeroOrigin[U Unit]() Origin[U] {
	return Origin[U]{}
}

// Add returns the component-wise sum of two origins of the same unit.
func (o Origin[U]) Add(rhs Origin[U]) Origin[U] {
	return Origin[U]{X: o.X + rhs.X, Y: o.Y + rhs.Y}
}

// Equal reports whether two origins name the same position.
func (o Origin[U]) Equal(other Origin[U]) bool {
	return o.X == other.X && o.Y == other.Y
}

func (o Origin[U]) String() string {
	return fmt.Sprintf("(%d, %d)", o.X, o.Y)
}

// TilesToPixels converts a tile-measured origin to the equivalent
// pixel-measured origin, by scaling both coordinates by TileSize.
//
// Go generics do not allow specializing a method for one instantiation of
// its receiver's type parameter, so this is a free function rather than
// an Origin[Tiles] method.
func TilesToPixels(o Origin[Tiles]) Origin[Pixels] {
	return Origin[Pixels]{X: o.X * TileSize, Y: o.Y * TileSize}
}
