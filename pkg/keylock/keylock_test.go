package keylock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	km := New()

	var counter int
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.Lock("customer-1")
			defer km.Unlock("customer-1")
			counter++
		}()
	}

	wg.Wait()
	assert.Equal(t, 100, counter)
}

func TestKeyedMutex_IndependentKeysDoNotBlock(t *testing.T) {
	km := New()

	km.Lock("customer-1")
	defer km.Unlock("customer-1")

	done := make(chan struct{})
	go func() {
		km.Lock("customer-2")
		km.Unlock("customer-2")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on an unrelated key blocked")
	}
}

func TestKeyedMutex_SameKeyBlocksUntilUnlock(t *testing.T) {
	km := New()

	km.Lock("customer-1")

	acquired := make(chan struct{})
	go func() {
		km.Lock("customer-1")
		km.Unlock("customer-1")
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while first still held")
	case <-time.After(50 * time.Millisecond):
	}

	km.Unlock("customer-1")

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second lock never acquired after unlock")
	}
}
