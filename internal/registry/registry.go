// Package registry provides a process-wide catalogue of named snake skins.
// Skins are registered from configuration at startup, allowing the hosts to
// list and resolve them by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/skin"
)

// SkinInfo contains metadata about a registered skin.
type SkinInfo struct {
	Name        string
	Description string
}

var (
	skins = make(map[string]skin.Skin)
	mu    sync.RWMutex
)

// Register validates and adds a skin to the registry.
// Returns an error if the skin is invalid or the name is already taken.
func Register(s skin.Skin) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("registry: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := skins[s.Name]; exists {
		return fmt.Errorf("registry: skin %q already registered", s.Name)
	}
	skins[s.Name] = s
	return nil
}

// List returns information about all registered skins, sorted by name.
func List() []SkinInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SkinInfo, 0, len(skins))
	for name, s := range skins {
		result = append(result, SkinInfo{
			Name:        name,
			Description: s.Description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Lookup returns a copy of the named skin.
// Returns an error if the name is not registered.
func Lookup(name string) (*skin.Skin, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := skins[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown skin %q", name)
	}
	return &s, nil
}

// Exists checks if a skin with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := skins[name]
	return ok
}

// Reset removes every registered skin.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	skins = make(map[string]skin.Skin)
}
