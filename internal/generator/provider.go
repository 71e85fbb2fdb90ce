// Package generator produces card sections programmatically. Providers
// register the sections they can generate; the gen command writes them out
// as partition files for the assembler to pick up.
package generator

import (
	"fmt"
	"sort"
	"sync"
)

// Provider produces generated sections for the deck.
type Provider interface {
	// Name identifies the provider.
	Name() string
	// Sections returns the provider's sections in deck order.
	Sections() ([]Section, error)
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Provider)
)

// Register adds a provider to the registry.
// Called by provider implementations in their init() functions.
func Register(p Provider) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[p.Name()] = p
}

// Get retrieves a provider by name.
func Get(name string) (Provider, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	p, ok := registry[name]
	return p, ok
}

// ListProviders returns all registered provider names (sorted).
func ListProviders() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnknownProviderError is returned when an unknown provider is requested.
type UnknownProviderError struct {
	Name      string
	Available []string
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("unknown provider %q\nAvailable providers: %v\nHint: run without --provider to use them all", e.Name, e.Available)
}

// Collect gathers sections from the named provider, or from every
// registered provider when name is empty. When start is positive the
// sections are renumbered sequentially from it.
func Collect(name string, start int) ([]Section, error) {
	var providers []Provider
	if name != "" {
		p, ok := Get(name)
		if !ok {
			return nil, &UnknownProviderError{Name: name, Available: ListProviders()}
		}
		providers = []Provider{p}
	} else {
		for _, n := range ListProviders() {
			p, _ := Get(n)
			providers = append(providers, p)
		}
	}

	var sections []Section
	for _, p := range providers {
		secs, err := p.Sections()
		if err != nil {
			return nil, fmt.Errorf("provider %s: %w", p.Name(), err)
		}
		sections = append(sections, secs...)
	}
	sort.Slice(sections, func(i, j int) bool { return sections[i].Number < sections[j].Number })

	if start > 0 {
		for i := range sections {
			sections[i].Number = start + i
		}
	}
	return sections, nil
}
