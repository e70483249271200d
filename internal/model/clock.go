package model

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Clock accumulates the thinking time of one side.
type Clock struct {
	mu          sync.Mutex
	spent       time.Duration
	lastStarted time.Time // When the clock was last started
	isRunning   bool
	now         func() time.Time
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isRunning {
		c.lastStarted = c.now()
		c.isRunning = true
		log.Debug().Time("at", c.lastStarted).Msg("clock started")
	}
}

func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isRunning {
		c.spent += c.now().Sub(c.lastStarted)
		c.isRunning = false
		log.Debug().Dur("spent", c.spent).Msg("clock stopped")
	}
}

func (c *Clock) Spent() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isRunning {
		return c.spent + c.now().Sub(c.lastStarted)
	}
	return c.spent
}
