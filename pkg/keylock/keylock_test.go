package keylock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyLockSerializesSameKey(t *testing.T) {
	locks := New()
	counters := map[string]int{}

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			locks.Lock("a")
			defer locks.Unlock("a")
			counters["a"]++
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counters["a"])
}

func TestKeyLockAllOrdersKeys(t *testing.T) {
	locks := New()

	var wg sync.WaitGroup
	shared := 0
	// половина горутин берет ключи в одном порядке, половина в обратном;
	// без сортировки внутри LockAll это классический deadlock
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			keys := []string{"a", "b"}
			if i%2 == 0 {
				keys = []string{"b", "a"}
			}
			locks.LockAll(keys...)
			defer locks.UnlockAll(keys...)
			shared++
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, shared)
}

func TestKeyLockAllCollapsesDuplicates(t *testing.T) {
	locks := New()

	// перевод самому себе: один и тот же ключ дважды не должен заблокировать
	locks.LockAll("a", "a")
	locks.UnlockAll("a", "a")

	locks.Lock("a")
	locks.Unlock("a")
}
