package samples

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/kelindar/binary"
)

var (
	ErrNoSamples   = errors.New("no samples")
	ErrInvalidBits = errors.New("sample width must be 16 or 32 bits")
)

// Set is a replayable sequence of stream samples.
type Set struct {
	Seed   int64
	Bits   int
	Values []int32
}

// Generate draws n uniformly distributed samples of the given width.
// 16 bits mirrors the classic benchmark, 32 bits covers the full int32 range.
func Generate(n int, bits int, seed int64) (*Set, error) {
	if n <= 0 {
		return nil, ErrNoSamples
	}

	rnd := rand.New(rand.NewSource(seed))
	set := &Set{Seed: seed, Bits: bits, Values: make([]int32, n)}
	switch bits {
	case 16:
		for i := range set.Values {
			set.Values[i] = int32(int16(rnd.Uint32()))
		}
	case 32:
		for i := range set.Values {
			set.Values[i] = int32(rnd.Uint32())
		}
	default:
		return nil, ErrInvalidBits
	}
	return set, nil
}

// Save writes the set to path, truncating any existing file.
func (set *Set) Save(path string) error {
	payload, err := binary.Marshal(set)
	if err != nil {
		return fmt.Errorf("failed to encode samples: %w", err)
	}
	return os.WriteFile(path, payload, 0644)
}

// Load reads a set written by Save.
func Load(path string) (*Set, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var set Set
	if err := binary.Unmarshal(payload, &set); err != nil {
		return nil, fmt.Errorf("failed to decode samples from %s: %w", path, err)
	}
	if len(set.Values) == 0 {
		return nil, ErrNoSamples
	}
	return &set, nil
}
