package main

import (
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ArchiveCompress and ArchiveDecompress wrap/unwrap an already-finished
// .qtc file for storage or transport (CLI flag -z, producing a .qtc.zst
// sidecar). This is strictly an outer wrapper: the canonical .qtc bytes
// it wraps are exactly what Encode produced, and unwrapping followed by
// Decode must reproduce the original pixels bit-for-bit. It never
// touches the bit-packed payload itself, whose exact bytes spec.md §8
// pins down.
//
// Pooled encoders/decoders avoid paying zstd's setup cost per call, the
// same pattern the original program used for its own final-stage
// entropy coding.

var zstdEncPool = sync.Pool{
	New: func() any {
		enc, err := zstd.NewWriter(nil,
			zstd.WithEncoderConcurrency(1),
			zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
			zstd.WithLowerEncoderMem(true),
		)
		if err != nil {
			panic(err)
		}
		return enc
	},
}

var zstdDecPool = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(true),
		)
		if err != nil {
			panic(err)
		}
		return dec
	},
}

// ArchiveCompress returns data wrapped in a zstd frame, in a freshly
// allocated buffer.
func ArchiveCompress(data []byte) []byte {
	return ArchiveCompressInto(nil, data)
}

// ArchiveCompressInto behaves like ArchiveCompress but appends into dst,
// reusing its backing array when it has enough spare capacity. Callers
// that archive many .qtc files in a loop (a batch CLI run, a long-lived
// server) can pass the previous call's result back in as dst to avoid
// a fresh allocation on every call; ownership of the returned slice
// (and of whatever dst pointed at) is the caller's alone, so unlike a
// pooled buffer there is no risk of a later call overwriting bytes the
// caller is still holding onto.
func ArchiveCompressInto(dst, data []byte) []byte {
	enc := zstdEncPool.Get().(*zstd.Encoder)
	out := enc.EncodeAll(data, dst[:0])
	zstdEncPool.Put(enc)
	return out
}

// ArchiveDecompress reverses ArchiveCompress, into a freshly allocated
// buffer.
func ArchiveDecompress(data []byte) ([]byte, error) {
	return ArchiveDecompressInto(nil, data)
}

// ArchiveDecompressInto behaves like ArchiveDecompress but appends into
// dst, for the same reuse-across-calls reason as ArchiveCompressInto.
func ArchiveDecompressInto(dst, data []byte) ([]byte, error) {
	dec := zstdDecPool.Get().(*zstd.Decoder)
	out, err := dec.DecodeAll(data, dst[:0])
	zstdDecPool.Put(dec)
	if err != nil {
		return nil, wrapError(KindFormat, "decompressing archive sidecar", err)
	}
	return out, nil
}
