// Package id generates time-sortable run identifiers.
package id

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu      sync.Mutex
	entropy io.Reader
)

func init() {
	// ulid.Monotonic keeps IDs generated within the same millisecond
	// lexicographically increasing, which is what the journal indexes on.
	var seed int64
	_ = binary.Read(cryptorand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	entropy = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// New returns a fresh ULID string.
func New() string {
	mu.Lock()
	defer mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(time.Now().UTC()), entropy)
	if err != nil {
		// Only possible if time goes backwards or entropy is exhausted.
		panic(err)
	}
	return id.String()
}
