package cmd

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Fallback builds the command that handles a word no builtin claims.
type Fallback func(word string) Command

// Registry handles command registration and dispatch
type Registry struct {
	mu       sync.RWMutex
	cmds     map[Name]Command
	fallback Fallback
}

func NewRegistry() *Registry {
	return &Registry{
		cmds: make(map[Name]Command),
	}
}

// Register registers a builtin command
func (r *Registry) Register(cmd Command) error {
	if cmd == nil {
		return fmt.Errorf("command cannot be nil")
	}

	name := cmd.Name()
	if name == Unknown {
		return fmt.Errorf("command name cannot be unknown")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.cmds[name]; exists {
		return fmt.Errorf("command already registered: %s", name)
	}

	r.cmds[name] = cmd
	return nil
}

// Unregister removes a registered command
func (r *Registry) Unregister(name Name) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.cmds[name]; !exists {
		return fmt.Errorf("%w: %s", ErrNotRegistered, name)
	}

	delete(r.cmds, name)
	return nil
}

// SetFallback installs the handler for unrecognized command words.
func (r *Registry) SetFallback(fallback Fallback) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.fallback = fallback
}

// Get returns a command by name
func (r *Registry) Get(name Name) (Command, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmd, exists := r.cmds[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, name)
	}

	return cmd, nil
}

// List returns all registered commands ordered by name
func (r *Registry) List() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	commands := make([]Command, 0, len(r.cmds))
	for _, cmd := range r.cmds {
		commands = append(commands, cmd)
	}
	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name().String() < commands[j].Name().String()
	})

	return commands
}

// Lookup returns the command that handles word: a registered builtin, or
// the fallback for anything else.
func (r *Registry) Lookup(word string) (Command, error) {
	name := ParseName(word)
	if name != Unknown {
		return r.Get(name)
	}

	r.mu.RLock()
	fallback := r.fallback
	r.mu.RUnlock()

	if fallback == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, word)
	}
	return fallback(word), nil
}

// Execute dispatches word with args. Words nothing can handle report
// "command not found".
func (r *Registry) Execute(ctx context.Context, env *Env, word string, args []string) Result {
	if word == "" {
		return EmptyError()
	}

	cmd, err := r.Lookup(word)
	if err != nil {
		return Errorf("command not found: %s", word)
	}

	return cmd.Execute(ctx, env, args)
}
