package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/examforge/examgen-backend/internal/model"
)

// ExamStore keeps recently generated exams in memory so the download
// endpoint can resolve them by id. Entries expire after the configured
// TTL; nothing survives a process restart.
type ExamStore struct {
	mu      sync.Mutex
	entries map[string]*entry
	ttl     time.Duration
}

type entry struct {
	exam      model.Exam
	expiresAt time.Time
}

// NewExamStore creates an ExamStore and starts its eviction janitor.
func NewExamStore(ttl time.Duration) *ExamStore {
	s := &ExamStore{
		entries: make(map[string]*entry),
		ttl:     ttl,
	}

	// Evict expired exams every minute.
	go func() {
		for range time.Tick(time.Minute) {
			s.cleanup()
		}
	}()

	return s
}

// Put stores a copy of the exam under a fresh UUID and returns that id.
func (s *ExamStore) Put(exam model.Exam) string {
	id := uuid.New().String()
	exam.ID = id

	s.mu.Lock()
	s.entries[id] = &entry{
		exam:      exam,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.mu.Unlock()

	return id
}

// Get returns the exam stored under id, or false if the id is unknown
// or the entry has expired.
func (s *ExamStore) Get(id string) (model.Exam, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return model.Exam{}, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.entries, id)
		return model.Exam{}, false
	}
	return e.exam, true
}

func (s *ExamStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, id)
		}
	}
}
