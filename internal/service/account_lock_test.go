package service

import (
	"context"
	"sync"
	"testing"
)

func TestMemoryAccountLocker_SerializesSameAccount(t *testing.T) {
	locker := NewMemoryAccountLocker()

	release, ok := locker.Acquire(context.Background(), "u1")
	if !ok {
		t.Fatalf("expected first acquire to succeed")
	}

	acquired := make(chan struct{})
	go func() {
		release2, ok2 := locker.Acquire(context.Background(), "u1")
		if !ok2 {
			t.Error("expected blocked acquire to eventually succeed")
		} else {
			release2()
		}
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatalf("expected second acquire to block while lease held")
	default:
	}

	release()
	<-acquired
}

func TestMemoryAccountLocker_IndependentAccounts(t *testing.T) {
	locker := NewMemoryAccountLocker()

	release1, ok := locker.Acquire(context.Background(), "u1")
	if !ok {
		t.Fatalf("expected acquire u1 to succeed")
	}
	defer release1()

	release2, ok := locker.Acquire(context.Background(), "u2")
	if !ok {
		t.Fatalf("expected acquire u2 to succeed while u1 held")
	}
	release2()
}

func TestMemoryAccountLocker_EmptyKey(t *testing.T) {
	locker := NewMemoryAccountLocker()
	if _, ok := locker.Acquire(context.Background(), ""); ok {
		t.Fatalf("expected acquire with empty key to fail")
	}
}

func TestMemoryAccountLocker_ConcurrentAcquires(t *testing.T) {
	locker := NewMemoryAccountLocker()

	var (
		wg      sync.WaitGroup
		counter int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, ok := locker.Acquire(context.Background(), "u1")
			if !ok {
				t.Error("expected acquire to succeed")
				return
			}
			counter++
			release()
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Fatalf("expected 50 serialized increments, got %d", counter)
	}
}
