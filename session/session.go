// Package session persists the operand stack between invocations.
package session

import (
	"fmt"
	"sync"

	"github.com/metafates/gache"
	"github.com/spf13/viper"
	"github.com/stackcalc/stackcalc/filesystem"
	"github.com/stackcalc/stackcalc/key"
	"github.com/stackcalc/stackcalc/log"
	"github.com/stackcalc/stackcalc/stack"
	"github.com/stackcalc/stackcalc/where"
)

// Snapshot is the persisted form of a stack.
type Snapshot struct {
	Capacity int       `json:"capacity" jsonschema:"description=Capacity of the stack when it was saved"`
	Values   []float64 `json:"values" jsonschema:"description=Stored values ordered bottom to top"`
}

var (
	cacherOnce sync.Once
	cacher     *gache.Cache[*Snapshot]
)

// store resolves the session path lazily so tests can swap the filesystem first.
func store() *gache.Cache[*Snapshot] {
	cacherOnce.Do(func() {
		cacher = gache.New[*Snapshot](&gache.Options{
			Path:       where.Session(),
			FileSystem: &filesystem.GacheFs{},
		})
	})
	return cacher
}

// Capacity returns the configured capacity for new stacks.
func Capacity() int {
	return viper.GetInt(key.StackCapacity)
}

// Enabled reports whether the stack is kept between invocations.
func Enabled() bool {
	return viper.GetBool(key.SessionPersist)
}

// Load returns the persisted stack resized to the configured capacity,
// or a fresh stack when nothing was saved or persistence is disabled.
func Load() (*stack.Stack, error) {
	if !Enabled() {
		return stack.New(Capacity()), nil
	}

	snapshot, expired, err := store().Get()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	if expired || snapshot == nil || snapshot.Capacity == 0 {
		return stack.New(Capacity()), nil
	}

	s, err := stack.Restore(Capacity(), snapshot.Values)
	if err != nil {
		return nil, fmt.Errorf("load session: saved stack does not fit, clear it or raise %s: %w", key.StackCapacity, err)
	}

	log.With(log.Fields{"depth": s.Len(), "capacity": s.Cap()}).Debug("session loaded")
	return s, nil
}

// Save persists s. It is a no-op when persistence is disabled.
func Save(s *stack.Stack) error {
	if !Enabled() {
		return nil
	}

	if err := store().Set(&Snapshot{Capacity: s.Cap(), Values: s.Values()}); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	log.With(log.Fields{"depth": s.Len(), "capacity": s.Cap()}).Debug("session saved")
	return nil
}

// Reset discards the persisted stack.
func Reset() error {
	if err := store().Set(&Snapshot{}); err != nil {
		return fmt.Errorf("reset session: %w", err)
	}

	log.Info("session cleared")
	return nil
}
