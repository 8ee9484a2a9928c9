package interaction

import (
	"sync"
	"time"
)

// Subscription holds everything a mounted Controller acquired: listeners and
// pending timers. Close releases them in reverse order of acquisition and
// unmounts the controller; it is safe to call more than once.
type Subscription struct {
	owner *Controller

	mu       sync.Mutex
	releases []func()
	once     sync.Once
}

func (s *Subscription) add(release func()) {
	if release == nil {
		return
	}
	s.mu.Lock()
	s.releases = append(s.releases, release)
	s.mu.Unlock()
}

// Len reports how many resources are still held.
func (s *Subscription) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.releases)
}

// Close releases every held resource. It always returns nil.
func (s *Subscription) Close() error {
	s.once.Do(func() {
		s.mu.Lock()
		releases := s.releases
		s.releases = nil
		s.mu.Unlock()

		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}
		s.owner.unmount(s)
	})
	return nil
}

// TimerScheduler schedules callbacks on the Go runtime timer.
type TimerScheduler struct{}

func (TimerScheduler) After(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
