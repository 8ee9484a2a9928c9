package content

import "sync/atomic"

// Store holds the current portfolio snapshot. Readers never see a partially
// updated value.
type Store struct {
	cur atomic.Pointer[Portfolio]
}

func NewStore(p *Portfolio) *Store {
	s := &Store{}
	s.cur.Store(p)
	return s
}

func (s *Store) Get() *Portfolio { return s.cur.Load() }

func (s *Store) Set(p *Portfolio) { s.cur.Store(p) }
