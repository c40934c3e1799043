// utils/seed.go
package utils

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed generates a high-entropy seed for the simulation RNG using
// crypto/rand, so replays can be reproduced by recording the seed.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
