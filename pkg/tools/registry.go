package tools

import (
	"sort"
	"sync"
)

// Registry manages available tools with grouping support.
type Registry struct {
	mu     sync.RWMutex
	tools  map[string]*Tool    // name -> tool
	groups map[string][]string // group name -> tool names
}

// NewRegistry creates a new tool registry.
func NewRegistry() *Registry {
	return &Registry{
		tools:  make(map[string]*Tool),
		groups: make(map[string][]string),
	}
}

// Register adds a tool to the registry.
func (r *Registry) Register(tool *Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := tool.Name
	r.tools[name] = tool

	if tool.Group != "" {
		r.groups[tool.Group] = append(r.groups[tool.Group], name)
	}
}

// Get retrieves a tool by name.
func (r *Registry) Get(name string) *Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tools[name]
}

// Has checks if a tool exists by name.
func (r *Registry) Has(name string) bool {
	return r.Get(name) != nil
}

// All returns all registered tools, sorted by name for consistent
// ordering.
func (r *Registry) All() []*Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]*Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool {
		return tools[i].Name < tools[j].Name
	})
	return tools
}

// GetByGroup returns all tools in a group.
func (r *Registry) GetByGroup(group string) []*Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names, ok := r.groups[group]
	if !ok {
		return nil
	}
	tools := make([]*Tool, 0, len(names))
	for _, name := range names {
		if tool, ok := r.tools[name]; ok {
			tools = append(tools, tool)
		}
	}
	return tools
}

// Groups returns all group names.
func (r *Registry) Groups() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	groups := make([]string, 0, len(r.groups))
	for group := range r.groups {
		groups = append(groups, group)
	}
	sort.Strings(groups)
	return groups
}
