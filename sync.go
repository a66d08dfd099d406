package fuzzstream

import "sync"

// SyncSummarizer serializes access to a Summarizer so that it can be shared
// between goroutines. Points are still processed one at a time.
type SyncSummarizer struct {
	mu sync.Mutex
	s  *Summarizer
}

// NewSync creates a Summarizer with opts and wraps it.
func NewSync(opts ...Option) (*SyncSummarizer, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return &SyncSummarizer{s: s}, nil
}

func (ss *SyncSummarizer) Summarize(values []float64, timestamp float64) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Summarize(values, timestamp)
}

func (ss *SyncSummarizer) Summary() []FMiC {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Summary()
}

func (ss *SyncSummarizer) Len() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Len()
}

func (ss *SyncSummarizer) Stats() Stats {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Stats()
}

func (ss *SyncSummarizer) Reset() {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.s.Reset()
}
