package web

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/vovakirdan/tui-tetris/internal/bridge"
)

// FrameMagic opens every binary frame.
const FrameMagic = "TBF1"

// HeaderSize is the fixed header length in bytes.
const HeaderSize = 16

// ErrShortFrame is returned when a frame is truncated.
var ErrShortFrame = errors.New("web: short frame")

// Header describes the layout of the buffers that follow it.
type Header struct {
	Height   int
	Width    int
	NumNexts int
	NextSize int
	HoldSize int
	Lines    uint8
	GameOver bool
}

// FrameSize returns the full frame length for the header's dimensions.
func (h Header) FrameSize() int {
	field := h.Height * h.Width
	nexts := h.NumNexts * h.NextSize * h.NextSize
	hold := h.HoldSize * h.HoldSize
	return HeaderSize + 5*(field+nexts+hold)
}

// EncodeFrame writes the header followed by the six bridge buffers in
// order: field, field color, nexts, nexts color, hold, hold color. Colors
// are little-endian float32.
func EncodeFrame(dst []byte, b *bridge.Bridge) []byte {
	h := Header{
		Height:   b.Height(),
		Width:    b.Width(),
		NumNexts: b.NumNexts(),
		NextSize: b.NextSize(),
		HoldSize: b.HoldSize(),
		Lines:    b.NumDeletedLines(),
		GameOver: b.GameOver(),
	}

	dst = dst[:0]
	dst = append(dst, FrameMagic...)
	dst = binary.LittleEndian.AppendUint16(dst, uint16(h.Height))
	dst = binary.LittleEndian.AppendUint16(dst, uint16(h.Width))
	dst = binary.LittleEndian.AppendUint16(dst, uint16(h.NumNexts))
	dst = binary.LittleEndian.AppendUint16(dst, uint16(h.NextSize))
	dst = binary.LittleEndian.AppendUint16(dst, uint16(h.HoldSize))
	dst = append(dst, h.Lines, boolByte(h.GameOver))

	dst = append(dst, b.Field()...)
	dst = appendFloats(dst, b.FieldColor())
	dst = append(dst, b.Nexts()...)
	dst = appendFloats(dst, b.NextsColor())
	dst = append(dst, b.Hold()...)
	dst = appendFloats(dst, b.HoldColor())
	return dst
}

// DecodeHeader parses and checks the fixed header.
func DecodeHeader(frame []byte) (Header, error) {
	if len(frame) < HeaderSize || string(frame[:4]) != FrameMagic {
		return Header{}, ErrShortFrame
	}
	le := binary.LittleEndian
	h := Header{
		Height:   int(le.Uint16(frame[4:])),
		Width:    int(le.Uint16(frame[6:])),
		NumNexts: int(le.Uint16(frame[8:])),
		NextSize: int(le.Uint16(frame[10:])),
		HoldSize: int(le.Uint16(frame[12:])),
		Lines:    frame[14],
		GameOver: frame[15] != 0,
	}
	if len(frame) < h.FrameSize() {
		return h, ErrShortFrame
	}
	return h, nil
}

func appendFloats(dst []byte, src []float32) []byte {
	for _, f := range src {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
	}
	return dst
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}
