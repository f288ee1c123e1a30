package rating

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mcdev12/shuttleleague/go/internal/models"
)

// Factory builds an Engine from a tournament's rating configuration.
type Factory func(cfg models.RatingConfig) (Engine, error)

var (
	registry   = make(map[models.RankingLogic]Factory)
	registryMu sync.RWMutex
)

// Register adds an engine factory under a ranking logic name.
// It should be called from the engine's init() function.
func Register(logic models.RankingLogic, factory Factory) error {
	registryMu.Lock()
	defer registryMu.Unlock()
	if logic == "" {
		return fmt.Errorf("ranking logic cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory for %q cannot be nil", logic)
	}
	if _, exists := registry[logic]; exists {
		return fmt.Errorf("engine already registered for %q", logic)
	}
	registry[logic] = factory
	return nil
}

// IsRegistered reports whether an engine exists for logic.
func IsRegistered(logic models.RankingLogic) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[logic]
	return ok
}

// Registered lists the registered ranking logics in name order.
func Registered() []models.RankingLogic {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]models.RankingLogic, 0, len(registry))
	for logic := range registry {
		out = append(out, logic)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// NewEngine returns the engine configured by cfg.
func NewEngine(cfg models.RatingConfig) (Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("rating config is required")
	}
	registryMu.RLock()
	factory, ok := registry[cfg.RankingLogic()]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no rating engine registered for %q", cfg.RankingLogic())
	}
	return factory(cfg)
}
