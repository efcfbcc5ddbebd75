package shuffle

import (
	"encoding/binary"
	"time"

	cryptorand "crypto/rand"
)

// Seed derives a seed for a session's random source from the system
// entropy pool, falling back to the clock if that fails.
func Seed() int64 {
	var seed int64
	if err := binary.Read(cryptorand.Reader, binary.LittleEndian, &seed); err != nil {
		return time.Now().UnixNano()
	}
	return seed
}
