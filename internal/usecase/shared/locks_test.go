//go:build unit

package shared_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"room-booking/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
)

func TestRoomLocks(t *testing.T) {
	t.Run("same room is exclusive", func(t *testing.T) {
		locks := shared.NewRoomLocks()
		var inside, maxInside int32
		var wg sync.WaitGroup

		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock := locks.Lock(1)
				defer unlock()

				n := atomic.AddInt32(&inside, 1)
				for {
					cur := atomic.LoadInt32(&maxInside)
					if n <= cur || atomic.CompareAndSwapInt32(&maxInside, cur, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&inside, -1)
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), maxInside)
	})

	t.Run("different rooms do not block", func(t *testing.T) {
		locks := shared.NewRoomLocks()
		unlock := locks.Lock(1)
		defer unlock()

		done := make(chan struct{})
		go func() {
			release := locks.Lock(2)
			release()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("lock on room 2 blocked behind room 1")
		}
	})
}

func TestOwnerOrAdminPolicy(t *testing.T) {
	policy := shared.NewOwnerOrAdminPolicy()

	assert.True(t, policy.CanViewUpcoming(shared.Actor{UserID: 7, Role: "user"}, 7))
	assert.False(t, policy.CanViewUpcoming(shared.Actor{UserID: 8, Role: "user"}, 7))
	assert.True(t, policy.CanViewUpcoming(shared.Actor{UserID: 8, Role: "admin"}, 7))
}
