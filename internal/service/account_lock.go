package service

import (
	"context"
	"sync"
)

// AccountLocker serializa las secuencias leer-validar-escribir de OTP por
// cuenta. Acquire devuelve ok=false cuando no pudo tomarse el lease; en ese
// caso la operación continúa sin serializar en vez de fallar.
type AccountLocker interface {
	Acquire(ctx context.Context, accountID string) (release func(), ok bool)
}

type memoryAccountLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewMemoryAccountLocker crea un locker en memoria con un mutex por cuenta.
func NewMemoryAccountLocker() AccountLocker {
	return &memoryAccountLocker{
		locks: make(map[string]*sync.Mutex),
	}
}

func (l *memoryAccountLocker) Acquire(_ context.Context, accountID string) (func(), bool) {
	if accountID == "" {
		return nil, false
	}
	l.mu.Lock()
	m, exists := l.locks[accountID]
	if !exists {
		m = &sync.Mutex{}
		l.locks[accountID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock, true
}
