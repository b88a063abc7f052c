package keylock_test

import (
	"sync"
	"testing"

	"github.com/limbo/studyos/pkg/keylock"
	"github.com/stretchr/testify/assert"
)

func TestLockSerializesSameKey(t *testing.T) {
	locks := keylock.New(8)
	counter := 0
	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("habit-1")
			defer unlock()
			v := counter
			counter = v + 1
		}()
	}
	wg.Wait()
	assert.Equal(t, 100, counter)
}

func TestUnlockReleasesStripe(t *testing.T) {
	locks := keylock.New(0)
	unlockA := locks.Lock("a")
	done := make(chan struct{})
	go func() {
		unlock := locks.Lock("a")
		unlock()
		close(done)
	}()
	unlockA()
	<-done
}
