package textscan

import (
	"sync"

	"github.com/vippsas/textscan/textreader"
)

// SyncScanner serializes access to a textreader.Scanner so that several
// goroutines can take tokens from the same input.
type SyncScanner struct {
	mu sync.Mutex
	s  *textreader.Scanner
}

func NewSyncScanner(s *textreader.Scanner) *SyncScanner {
	return &SyncScanner{s: s}
}

// GetNext is textreader.Scanner.GetNext under the lock. The spec is taken
// by value so callers can not share it by accident.
func (l *SyncScanner) GetNext(spec textreader.TokenSpec) (textreader.Token, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.GetNext(&spec)
}

func (l *SyncScanner) Remaining() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Remaining()
}

func (l *SyncScanner) Exhausted() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Exhausted()
}
