// Package registry holds the catalog of commands the console can run:
// built-ins registered by the server and shell-backed commands loaded from
// the operator's YAML catalog.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"admin-command-console/internal/command/domain"
)

// DefaultCategory groups commands that declare no category of their own.
const DefaultCategory = "general"

// Registry is a read-mostly catalog of command descriptors. Registration
// happens at startup; lookups happen per request.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]domain.Descriptor
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{commands: make(map[string]domain.Descriptor)}
}

// Register adds a command. Name must be non-empty and unique; a descriptor
// must carry either a handler or a shell line, not both.
func (r *Registry) Register(d domain.Descriptor) error {
	if d.Name == "" {
		return fmt.Errorf("registry: command name must not be empty")
	}
	if (d.Handler == nil) == (d.Shell == "") {
		return fmt.Errorf("registry: command %q must have exactly one of handler or shell", d.Name)
	}
	if d.Category == "" {
		d.Category = DefaultCategory
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.commands[d.Name]; exists {
		return fmt.Errorf("registry: command %q already registered", d.Name)
	}
	r.commands[d.Name] = d
	return nil
}

// Get returns the descriptor for name and whether it is registered.
func (r *Registry) Get(name string) (domain.Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.commands[name]
	return d, ok
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}

// Grouped returns all commands grouped by category, categories sorted
// alphabetically and commands sorted by name within each. This is the shape
// the dropdown renders.
func (r *Registry) Grouped() []domain.Group {
	r.mu.RLock()
	byCategory := make(map[string][]domain.Descriptor)
	for _, d := range r.commands {
		byCategory[d.Category] = append(byCategory[d.Category], d)
	}
	r.mu.RUnlock()

	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	out := make([]domain.Group, 0, len(categories))
	for _, c := range categories {
		cmds := byCategory[c]
		sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
		out = append(out, domain.Group{Category: c, Commands: cmds})
	}
	return out
}
