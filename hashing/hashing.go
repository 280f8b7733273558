// Package hashing fingerprints values so they can be stored in hash-keyed
// collections such as set.Set.
package hashing

import (
	"encoding/binary"
	"encoding/hex"
	"hash"

	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. Values that are Equal must
// write the same bytes.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// XXH3 returns the 64-bit XXH3 hashing of the given Hashable as a
// hex-encoded string. It is meant for in-memory deduplication, not for
// anything security sensitive.
func XXH3(hashable Hashable) (string, error) {
	h := xxh3.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// WriteInt64 writes n to h as 8 big-endian bytes.
func WriteInt64(h hash.Hash, n int64) error {
	var buf [8]byte

	binary.BigEndian.PutUint64(buf[:], uint64(n))

	_, err := h.Write(buf[:])

	return err
}
