package servicepoint

import (
	"encoding/binary"
	"fmt"
)

// headerSize is the fixed size, in bytes, of a Packet's Header: five
// big-endian uint16 fields.
const headerSize = 10

// Header is the 10-byte fixed prefix of every Packet: a command code
// followed by four command-specific uint16 fields, whose meaning depends
// on the code.
type Header struct {
	Code       CommandCode
	A, B, C, D uint16
}

// Packet is a raw, type-erased wire message: a Header plus a variable
// length payload. Packet is the boundary between the typed Command algebra
// and bytes; nothing above this layer knows about the wire format, and
// nothing below it knows what a Command means.
type Packet struct {
	Header  Header
	Payload []byte
}

// TooShortError is returned by ParsePacket when fewer than 10 bytes are
// given, not enough to hold a Header.
type TooShortError struct {
	Len int
}

func (e *TooShortError) Error() string {
	return fmt.Sprintf("packet is too short: got %d bytes, need at least %d", e.Len, headerSize)
}

// Bytes serializes the packet to its wire representation: the header's
// five fields, big-endian, followed by the payload verbatim.
func (p Packet) Bytes() []byte {
	out := make([]byte, headerSize+len(p.Payload))
	binary.BigEndian.PutUint16(out[0:2], uint16(p.Header.Code))
	binary.BigEndian.PutUint16(out[2:4], p.Header.A)
	binary.BigEndian.PutUint16(out[4:6], p.Header.B)
	binary.BigEndian.PutUint16(out[6:8], p.Header.C)
	binary.BigEndian.PutUint16(out[8:10], p.Header.D)
	copy(out[headerSize:], p.Payload)
	return out
}

// ParsePacket interprets raw bytes as a Packet, copying the payload.
//
// Returns TooShortError if data holds fewer than 10 bytes.
func ParsePacket(data []byte) (Packet, error) {
	if len(data) < headerSize {
		return Packet{}, &TooShortError{Len: len(data)}
	}
	payload := make([]byte, len(data)-headerSize)
	copy(payload, data[headerSize:])
	return Packet{
		Header: Header{
			Code: CommandCode(binary.BigEndian.Uint16(data[0:2])),
			A:    binary.BigEndian.Uint16(data[2:4]),
			B:    binary.BigEndian.Uint16(data[4:6]),
			C:    binary.BigEndian.Uint16(data[6:8]),
			D:    binary.BigEndian.Uint16(data[8:10]),
		},
		Payload: payload,
	}, nil
}

// commandCodeOnly builds a Packet for commands with no header fields or
// payload, such as Clear and HardReset.
func commandCodeOnly(code CommandCode) Packet {
	return Packet{Header: Header{Code: code}}
}

// CommandCode identifies the kind of a Packet's Header, and by extension
// which Command variant it decodes to.
type CommandCode uint16

// Wire codes, matching the per-command table: most are unambiguous, but
// 0x0014 is assigned to both Utf8Data (CharGrid) and BitmapLinearAnd by
// different firmware generations. This implementation resolves the
// collision in CharGrid's favor: 0x0014 always decodes to CharGrid, and
// encoding a BitVec command with BinaryOperation And is rejected with a
// TryIntoPacketError of Kind "UnsupportedOperation" (see command.go).
const (
	CodeClear          CommandCode = 0x0002
	CodeCp437Data      CommandCode = 0x0003
	CodeCharBrightness CommandCode = 0x0005
	CodeBrightness     CommandCode = 0x0007
	CodeHardReset      CommandCode = 0x000b
	CodeFadeOut        CommandCode = 0x000d
	CodeBitmapLegacy   CommandCode = 0x0010

	CodeBitmapLinearOverwrite CommandCode = 0x0012
	CodeCharGrid              CommandCode = 0x0014 // also BitmapLinearAnd on some firmware; see above
	CodeBitmapLinearOr        CommandCode = 0x0015
	CodeBitmapLinearXor       CommandCode = 0x0016

	CodeBitmapLinearWinUncompressed CommandCode = 0x0013
	CodeBitmapLinearWinZlib         CommandCode = 0x0017
	CodeBitmapLinearWinBzip2        CommandCode = 0x0018
	CodeBitmapLinearWinLzma         CommandCode = 0x0019
	CodeBitmapLinearWinZstd         CommandCode = 0x001A
)

func (c CommandCode) String() string {
	switch c {
	case CodeClear:
		return "Clear"
	case CodeCp437Data:
		return "Cp437Data"
	case CodeCharBrightness:
		return "CharBrightness"
	case CodeBrightness:
		return "Brightness"
	case CodeHardReset:
		return "HardReset"
	case CodeFadeOut:
		return "FadeOut"
	case CodeBitmapLegacy:
		return "BitmapLegacy"
	case CodeBitmapLinearOverwrite:
		return "BitmapLinearOverwrite"
	case CodeCharGrid:
		return "CharGrid"
	case CodeBitmapLinearOr:
		return "BitmapLinearOr"
	case CodeBitmapLinearXor:
		return "BitmapLinearXor"
	case CodeBitmapLinearWinUncompressed:
		return "BitmapLinearWinUncompressed"
	case CodeBitmapLinearWinZlib:
		return "BitmapLinearWinZlib"
	case CodeBitmapLinearWinBzip2:
		return "BitmapLinearWinBzip2"
	case CodeBitmapLinearWinLzma:
		return "BitmapLinearWinLzma"
	case CodeBitmapLinearWinZstd:
		return "BitmapLinearWinZstd"
	default:
		return fmt.Sprintf("CommandCode(0x%04x)", uint16(c))
	}
}
