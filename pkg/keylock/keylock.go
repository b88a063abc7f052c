package keylock

import (
	"hash/fnv"
	"sync"
)

const DefaultStripes = 256

// Striped serializes work per key using a fixed set of mutexes. Two keys may
// share a stripe; a key never maps to more than one.
type Striped struct {
	stripes []sync.Mutex
}

func New(stripes int) *Striped {
	if stripes < 1 {
		stripes = DefaultStripes
	}
	return &Striped{
		stripes: make([]sync.Mutex, stripes),
	}
}

// Lock blocks until the key's stripe is free and returns the unlock func.
func (s *Striped) Lock(key string) func() {
	mu := &s.stripes[s.index(key)]
	mu.Lock()
	return mu.Unlock
}

func (s *Striped) index(key string) int {
	h := fnv.New32a()
	h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(s.stripes)))
}
