package sim

import "fmt"

// ServerState tracks one server's availability and accumulated usage.
type ServerState struct {
	Name     string
	FreeAt   int64 // earliest time the server can start its next service
	BusyTime int64 // sum of committed service durations
	IdleTime int64 // sum of gaps between FreeAt and the next service start
	Served   int   // number of committed services
}

// IdleUntil returns the idle time accumulated up to the given clock,
// counting the open gap after the last service if the server is free by then.
func (s ServerState) IdleUntil(clock int64) int64 {
	if clock > s.FreeAt {
		return s.IdleTime + clock - s.FreeAt
	}
	return s.IdleTime
}

// ServerPool holds the servers in declaration order. Declaration order is the
// tie-break: when two servers become free at the same instant the one
// declared first is chosen.
type ServerPool struct {
	servers []*ServerState
	index   map[string]int
}

// NewServerPool creates a pool with every server free at time 0.
func NewServerPool(names ...string) (*ServerPool, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: at least one server is required", ErrConfiguration)
	}
	p := &ServerPool{
		servers: make([]*ServerState, 0, len(names)),
		index:   make(map[string]int, len(names)),
	}
	for _, name := range names {
		if name == "" {
			return nil, fmt.Errorf("%w: server name must not be empty", ErrConfiguration)
		}
		if _, dup := p.index[name]; dup {
			return nil, fmt.Errorf("%w: duplicate server name %q", ErrConfiguration, name)
		}
		p.index[name] = len(p.servers)
		p.servers = append(p.servers, &ServerState{Name: name})
	}
	return p, nil
}

// Names returns the server names in declaration order.
func (p *ServerPool) Names() []string {
	names := make([]string, len(p.servers))
	for i, s := range p.servers {
		names[i] = s.Name
	}
	return names
}

// State returns a copy of the named server's state.
func (p *ServerPool) State(name string) (ServerState, bool) {
	i, ok := p.index[name]
	if !ok {
		return ServerState{}, false
	}
	return *p.servers[i], true
}

// States returns copies of every server's state in declaration order.
func (p *ServerPool) States() []ServerState {
	states := make([]ServerState, len(p.servers))
	for i, s := range p.servers {
		states[i] = *s
	}
	return states
}

// IsFree reports whether the named server can start a service at time at.
// Unknown names are never free.
func (p *ServerPool) IsFree(name string, at int64) bool {
	i, ok := p.index[name]
	if !ok {
		return false
	}
	return p.servers[i].FreeAt <= at
}

// Commit books a service interval on the named server: FreeAt becomes
// start + duration. Starting before the current FreeAt would move FreeAt
// backwards and is rejected with ErrNonMonotonicCommit.
func (p *ServerPool) Commit(name string, start, duration int64) error {
	i, ok := p.index[name]
	if !ok {
		return fmt.Errorf("%w: commit on unknown server %q", ErrInvariantViolation, name)
	}
	s := p.servers[i]
	if start < s.FreeAt {
		return fmt.Errorf("%w: server %s free at %d, start %d", ErrNonMonotonicCommit, name, s.FreeAt, start)
	}
	if duration < 0 {
		return fmt.Errorf("%w: server %s given negative duration %d", ErrInvariantViolation, name, duration)
	}
	s.IdleTime += start - s.FreeAt
	s.BusyTime += duration
	s.Served++
	s.FreeAt = start + duration
	return nil
}
