// Package rand provides a pseudo-random number generator seeded with OS
// randomness, for tests and tooling.
//
// The OS randomness is obtained from crypto/rand but all values are
// produced by math/rand internally, so nothing here is suitable for
// cryptographic use. All methods are safe for concurrent use; a mutex
// guards the underlying source.
package rand

import (
	crand "crypto/rand"
	mrand "math/rand"

	"github.com/biguint/biguint"
	bgsync "github.com/biguint/biguint/libs/sync"
)

// Rand is a prng seeded with OS randomness.
type Rand struct {
	bgsync.Mutex
	rand *mrand.Rand
}

var grand *Rand

func init() {
	grand = NewRand()
}

func NewRand() *Rand {
	r := &Rand{}
	r.reset(newSeed())
	return r
}

func newSeed() int64 {
	bz := make([]byte, 8)
	if _, err := crand.Read(bz); err != nil {
		panic(err)
	}
	var seed uint64
	for i := 0; i < 8; i++ {
		seed |= uint64(bz[i])
		seed <<= 8
	}
	return int64(seed)
}

func (r *Rand) reset(seed int64) {
	// G404: Use of weak random number generator (math/rand instead of crypto/rand)
	//nolint:gosec
	r.rand = mrand.New(mrand.NewSource(seed))
}

// ----------------------------------------
// Global functions

func Seed(seed int64) {
	grand.Seed(seed)
}

func Int() int {
	return grand.Int()
}

func Intn(n int) int {
	return grand.Intn(n)
}

func Uint64() uint64 {
	return grand.Uint64()
}

func Bytes(n int) []byte {
	return grand.Bytes(n)
}

func Uint(width int) biguint.Uint {
	return grand.Uint(width)
}

// ----------------------------------------
// Rand methods

func (r *Rand) Seed(seed int64) {
	r.Lock()
	r.reset(seed)
	r.Unlock()
}

func (r *Rand) Int() int {
	r.Lock()
	i := r.rand.Int()
	r.Unlock()
	return i
}

// Intn returns, as an int, a uniform pseudo-random number in [0, n).
// It panics if n <= 0.
func (r *Rand) Intn(n int) int {
	r.Lock()
	i := r.rand.Intn(n)
	r.Unlock()
	return i
}

func (r *Rand) Uint64() uint64 {
	r.Lock()
	u := r.rand.Uint64()
	r.Unlock()
	return u
}

// Bytes returns n random bytes generated from the internal prng.
func (r *Rand) Bytes(n int) []byte {
	bs := make([]byte, n)
	for i := 0; i < len(bs); i++ {
		bs[i] = byte(r.Int() & 0xFF)
	}
	return bs
}

// Uint returns a uniformly random fixed-width value of the given byte
// width.
func (r *Rand) Uint(width int) biguint.Uint {
	return biguint.FromBytes(r.Bytes(width))
}
