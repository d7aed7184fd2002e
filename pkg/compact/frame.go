package compact

import (
	"encoding/binary"
	"hash/crc32"
)

// Frame layout: magic(2) | total length uint32 | payload | crc32(4).
// Length covers the whole frame; the CRC covers everything after the magic
// except itself.

var magic = [2]byte{0x6D, 0x6F}

const frameOverhead = 2 + 4 + 4

// EncodeFrame wraps payload in a length-prefixed, CRC-checked frame.
func EncodeFrame(payload []byte) []byte {
	out := make([]byte, 0, frameOverhead+len(payload))
	out = append(out, magic[0], magic[1])
	out = binary.LittleEndian.AppendUint32(out, uint32(frameOverhead+len(payload)))
	out = append(out, payload...)
	crc := crc32.ChecksumIEEE(out[2:])
	return binary.LittleEndian.AppendUint32(out, crc)
}

// DecodeFrame validates a frame and returns its payload. The returned
// slice aliases data.
func DecodeFrame(data []byte) ([]byte, error) {
	if len(data) < frameOverhead {
		return nil, ErrShortBuffer
	}
	if data[0] != magic[0] || data[1] != magic[1] {
		return nil, ErrBadFrame
	}
	if binary.LittleEndian.Uint32(data[2:]) != uint32(len(data)) {
		return nil, ErrBadFrame
	}
	want := binary.LittleEndian.Uint32(data[len(data)-4:])
	if crc32.ChecksumIEEE(data[2:len(data)-4]) != want {
		return nil, ErrChecksum
	}
	return data[6 : len(data)-4], nil
}
