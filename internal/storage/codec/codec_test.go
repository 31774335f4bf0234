package codec

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/golang/snappy"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	repetitive := bytes.Repeat([]byte(`{"frames":["1","2","3"],"pageFault":true,"referenceIndex":4},`), 64)

	noise := make([]byte, 512)
	rand.New(rand.NewSource(1)).Read(noise)

	inputs := map[string][]byte{
		"repetitive": repetitive,
		"noise":      noise,
		"short":      []byte("{}"),
	}

	for _, c := range []Compression{CompressionNone, CompressionSnappy, CompressionLZ4} {
		for name, data := range inputs {
			t.Run(c.String()+"/"+name, func(t *testing.T) {
				enc, err := Encode(data, c)
				require.NoError(t, err)
				assert.True(t, IsFramed(enc))

				dec, err := Decode(enc)
				require.NoError(t, err)
				assert.Equal(t, data, dec)
			})
		}
	}
}

func TestEncodeCompresses(t *testing.T) {
	data := bytes.Repeat([]byte("1 2 3 4 1 2 5 "), 200)

	for _, c := range []Compression{CompressionSnappy, CompressionLZ4} {
		enc, err := Encode(data, c)
		require.NoError(t, err)
		assert.Less(t, len(enc), len(data), c.String())
		assert.Equal(t, byte(c), enc[2])
	}
}

func TestDecodeRejects(t *testing.T) {
	_, err := Decode([]byte("plain json"))
	assert.ErrorIs(t, err, util.ErrCorruptPayload)

	enc, err := Encode([]byte("hello hello hello hello"), CompressionNone)
	require.NoError(t, err)
	enc[4]++ // corrupt recorded size
	_, err = Decode(enc)
	assert.ErrorIs(t, err, util.ErrCorruptPayload)

	enc, err = Encode([]byte("hello"), CompressionNone)
	require.NoError(t, err)
	enc[2] = 9
	_, err = Decode(enc)
	assert.ErrorIs(t, err, util.ErrUnsupportedCompression)

	_, err = Encode([]byte("x"), Compression(7))
	assert.ErrorIs(t, err, util.ErrUnsupportedCompression)
}

func TestDecodeRejectsOversizedHeader(t *testing.T) {
	frame := func(c Compression, size uint32, payload []byte) []byte {
		out := make([]byte, HeaderSize+len(payload))
		binary.LittleEndian.PutUint16(out[0:2], Magic)
		out[2] = byte(c)
		binary.LittleEndian.PutUint32(out[4:8], size)
		copy(out[HeaderSize:], payload)
		return out
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"LZ4 claims a gigabyte", frame(CompressionLZ4, 1<<30, []byte{0x10, 'a', 0, 0})},
		{"LZ4 claims max uint32", frame(CompressionLZ4, 0xFFFFFFFF, []byte{0x10, 'a', 0, 0})},
		{"LZ4 beyond expansion ratio", frame(CompressionLZ4, 4*lz4MaxExpansion+1, []byte{0x10, 'a', 0, 0})},
		{"Snappy claims a gigabyte", frame(CompressionSnappy, 1<<30, snappy.Encode(nil, []byte("abc")))},
		{"Snappy length mismatch", frame(CompressionSnappy, 4, snappy.Encode(nil, []byte("abc")))},
		{"None claims above limit", frame(CompressionNone, MaxRecordSize+1, []byte("abc"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			assert.ErrorIs(t, err, util.ErrCorruptPayload)
		})
	}
}

func TestParseCompression(t *testing.T) {
	for raw, expected := range map[string]Compression{"": CompressionNone, "none": CompressionNone, "Snappy": CompressionSnappy, "LZ4": CompressionLZ4} {
		c, err := ParseCompression(raw)
		require.NoError(t, err)
		assert.Equal(t, expected, c)
	}

	_, err := ParseCompression("zstd")
	assert.ErrorIs(t, err, util.ErrUnsupportedCompression)

	assert.Equal(t, ".sz", CompressionSnappy.Ext())
	assert.Equal(t, ".lz4", CompressionLZ4.Ext())
	assert.Equal(t, "", CompressionNone.Ext())
}
