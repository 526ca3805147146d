// Package monitor periodically pings the durable backend and logs
// availability transitions. Observational only: the persistence facade
// still decides per call which backend serves a request.
package monitor

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	ping func(ctx context.Context) error
	c    *cron.Cron

	mu      sync.Mutex
	up      bool
	checked bool
}

func NewScheduler(ping func(ctx context.Context) error) *Scheduler {
	return &Scheduler{ping: ping}
}

// Start begins checking every five minutes.
func (s *Scheduler) Start() {
	s.c = cron.New(cron.WithSeconds())

	_, err := s.c.AddFunc("0 */5 * * * *", s.check)
	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Storage monitor started (checking every 5 minutes)")
	s.c.Start()
}

func (s *Scheduler) Stop() {
	if s.c != nil {
		s.c.Stop()
	}
}

func (s *Scheduler) check() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.ping(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	up := err == nil
	if s.checked && up == s.up {
		return
	}
	s.checked = true
	s.up = up

	if up {
		log.Println("MongoDB reachable, new writes go to the durable store")
	} else {
		log.Printf("MongoDB unreachable, serving from memory storage: %v", err)
	}
}
