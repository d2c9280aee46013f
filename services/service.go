package services

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shpjp/quicker-api/repositories"
)

// Service implements the domain rules on top of a repositories.Store:
// uniqueness, existence checks, counter maintenance and the timeline.
// Every operation is a single attempt; nothing is retried.
type Service struct {
	store *repositories.Store
	now   func() time.Time
	log   logrus.FieldLogger
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the clock used for created_at timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger replaces the logger. Defaults to the logrus standard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Service) { s.log = l }
}

// New returns a Service operating on st.
func New(st *repositories.Store, opts ...Option) *Service {
	s := &Service{
		store: st,
		now:   time.Now,
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Counts reports the current size of each collection.
func (s *Service) Counts() repositories.Counts {
	return s.store.Counts()
}

func (s *Service) timestamp() time.Time {
	return s.now().UTC()
}

// decr lowers a derived counter, never below zero.
func decr(n *int) {
	if *n > 0 {
		*n--
	}
}
