package codec

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/golang/snappy"
	"github.com/pierrec/lz4/v4"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// Compression selects how an exported record is stored on disk
type Compression uint8

const (
	CompressionNone   Compression = 0
	CompressionSnappy Compression = 1
	CompressionLZ4    Compression = 2
)

// Framed payload layout:
// [0-1]: magic 0x5053 ("PS")
// [2]:   compression type
// [3]:   reserved
// [4-7]: uncompressed size, little endian
// [8+]:  payload
const (
	Magic      = 0x5053
	HeaderSize = 8

	// MaxRecordSize bounds the uncompressed size a header may claim
	MaxRecordSize = 64 << 20

	// lz4MaxExpansion is the largest output/input ratio of an LZ4 block
	lz4MaxExpansion = 255
)

func ParseCompression(raw string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "none":
		return CompressionNone, nil
	case "snappy":
		return CompressionSnappy, nil
	case "lz4":
		return CompressionLZ4, nil
	}
	return CompressionNone, fmt.Errorf("%w: %q", util.ErrUnsupportedCompression, raw)
}

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionSnappy:
		return "snappy"
	case CompressionLZ4:
		return "lz4"
	}
	return fmt.Sprintf("compression(%d)", uint8(c))
}

// Ext is the file suffix used for exports in this format
func (c Compression) Ext() string {
	switch c {
	case CompressionSnappy:
		return ".sz"
	case CompressionLZ4:
		return ".lz4"
	}
	return ""
}

// Encode compresses data and prepends the header.
// LZ4 output that does not fit its bound (incompressible input) is stored uncompressed.
func Encode(data []byte, c Compression) ([]byte, error) {
	if len(data) > MaxRecordSize {
		return nil, fmt.Errorf("[codec] [Encode] payload of %d bytes exceeds %d", len(data), MaxRecordSize)
	}

	var payload []byte

	switch c {
	case CompressionNone:
		payload = data

	case CompressionSnappy:
		payload = snappy.Encode(nil, data)

	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, fmt.Errorf("[codec] [Encode] lz4 compression failed: %w", err)
		}
		if n == 0 {
			c = CompressionNone
			payload = data
		} else {
			payload = buf[:n]
		}

	default:
		return nil, fmt.Errorf("[codec] [Encode] %w: %d", util.ErrUnsupportedCompression, c)
	}

	out := make([]byte, HeaderSize+len(payload))
	binary.LittleEndian.PutUint16(out[0:2], Magic)
	out[2] = byte(c)
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(data)))
	copy(out[HeaderSize:], payload)
	return out, nil
}

// IsFramed reports whether data starts with the codec header
func IsFramed(data []byte) bool {
	return len(data) >= HeaderSize && binary.LittleEndian.Uint16(data[0:2]) == Magic
}

// Decode reverses Encode and checks the recorded size
func Decode(data []byte) ([]byte, error) {
	if !IsFramed(data) {
		return nil, fmt.Errorf("[codec] [Decode] %w: missing header", util.ErrCorruptPayload)
	}

	c := Compression(data[2])
	size := int(binary.LittleEndian.Uint32(data[4:8]))
	payload := data[HeaderSize:]
	if size > MaxRecordSize {
		return nil, fmt.Errorf("[codec] [Decode] %w: header claims %d bytes, limit %d", util.ErrCorruptPayload, size, MaxRecordSize)
	}

	var out []byte
	switch c {
	case CompressionNone:
		out = payload

	case CompressionSnappy:
		if n, err := snappy.DecodedLen(payload); err != nil || n != size {
			return nil, fmt.Errorf("[codec] [Decode] snappy: %w: decoded length does not match header", util.ErrCorruptPayload)
		}
		decoded, err := snappy.Decode(nil, payload)
		if err != nil {
			return nil, fmt.Errorf("[codec] [Decode] snappy: %w: %v", util.ErrCorruptPayload, err)
		}
		out = decoded

	case CompressionLZ4:
		if size > len(payload)*lz4MaxExpansion {
			return nil, fmt.Errorf("[codec] [Decode] lz4: %w: header claims %d bytes from %d", util.ErrCorruptPayload, size, len(payload))
		}
		decoded := make([]byte, size)
		n, err := lz4.UncompressBlock(payload, decoded)
		if err != nil {
			return nil, fmt.Errorf("[codec] [Decode] lz4: %w: %v", util.ErrCorruptPayload, err)
		}
		out = decoded[:n]

	default:
		return nil, fmt.Errorf("[codec] [Decode] %w: %d", util.ErrUnsupportedCompression, c)
	}

	if len(out) != size {
		return nil, fmt.Errorf("[codec] [Decode] %w: size mismatch: got %d, expected %d", util.ErrCorruptPayload, len(out), size)
	}
	return out, nil
}
