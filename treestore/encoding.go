package treestore

import (
	"encoding/binary"
	"fmt"
	"math"
)

// encodeConfig packs coordinates into a little-endian float64 blob.
func encodeConfig(q []float64) []byte {
	b := make([]byte, len(q)*8)
	for i, v := range q {
		binary.LittleEndian.PutUint64(b[i*8:], math.Float64bits(v))
	}
	return b
}

// decodeConfig unpacks a blob produced by encodeConfig.
func decodeConfig(b []byte) ([]float64, error) {
	if len(b)%8 != 0 {
		return nil, fmt.Errorf("invalid configuration blob length %d (not multiple of 8)", len(b))
	}
	q := make([]float64, len(b)/8)
	for i := range q {
		q[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return q, nil
}
