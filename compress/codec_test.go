package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
)

// sampleData builds a repetitive payload resembling a gob-encoded category
// statistics table, so real codecs actually shrink it.
func sampleData() []byte {
	var buf bytes.Buffer
	for i := 0; i < 200; i++ {
		buf.WriteString("category=electronics;mean=0.4215;count=1234;")
	}

	return buf.Bytes()
}

// TestCodecRoundTrip verifies compress/decompress restores the input for
// every compression type
func TestCodecRoundTrip(t *testing.T) {
	data := sampleData()

	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}
	for _, compressionType := range types {
		t.Run(compressionType.String(), func(t *testing.T) {
			codec, err := GetCodec(compressionType)
			require.NoError(t, err)

			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, data, restored)
		})
	}
}

// TestCodecShrinksRepetitiveData verifies real codecs reduce the payload size
func TestCodecShrinksRepetitiveData(t *testing.T) {
	data := sampleData()

	for _, compressionType := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compressionType)
		require.NoError(t, err)

		compressed, err := codec.Compress(data)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(data), "codec %s", compressionType)
	}
}

// TestCreateCodec verifies factory behavior for valid and invalid types
func TestCreateCodec(t *testing.T) {
	codec, err := CreateCodec(format.CompressionS2, "payload")
	require.NoError(t, err)
	require.NotNil(t, codec)

	_, err = CreateCodec(format.CompressionType(0xFF), "payload")
	require.ErrorIs(t, err, errs.ErrInvalidCompression)

	_, err = GetCodec(format.CompressionType(0))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

// TestCodecEmptyInput verifies empty payload handling
func TestCodecEmptyInput(t *testing.T) {
	for _, compressionType := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compressionType)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)

		restored, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Empty(t, restored)
	}
}

// TestZstdDecompressGarbage verifies corrupted input surfaces an error
func TestZstdDecompressGarbage(t *testing.T) {
	codec := NewZstdCompressor()

	_, err := codec.Decompress([]byte("definitely not zstd"))
	require.Error(t, err)
}
