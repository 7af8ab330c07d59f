// Package servicepoint implements the wire protocol and data model for
// driving the CCCB LED segment display: a fixed grid of 8x8 pixel tiles,
// addressed over an unreliable datagram transport.
//
// The package is a pure codec: it converts typed [Command] values to and
// from [Packet]s, and [Packet]s to and from raw bytes. It does not open
// sockets, retry, or acknowledge; those concerns live above this package,
// in whatever transport the caller chooses.
package servicepoint

import "time"

// TileSize is the edge length, in pixels, of a single display tile.
const TileSize = 8

// TileWidth and TileHeight are the canonical display size in tiles.
const (
	TileWidth  = 56
	TileHeight = 20
)

// PixelWidth, PixelHeight and PixelCount are the canonical display size in
// pixels, derived from TileWidth/TileHeight and TileSize.
const (
	PixelWidth  = TileWidth * TileSize
	PixelHeight = TileHeight * TileSize
	PixelCount  = PixelWidth * PixelHeight
)

// FramePacing is the recommended minimum interval between sent frames.
// It is advisory only; the wire protocol has no notion of acknowledgement,
// rate limiting, or congestion control.
const FramePacing = 30 * time.Millisecond
