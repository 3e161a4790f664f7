package sim

// EarliestFree returns the candidate with the smallest FreeAt.
// Ties are broken by declaration order in the pool, not by candidate order.
// Unknown names are ignored; returns "" when no candidate is known.
func (p *ServerPool) EarliestFree(candidates []string) string {
	wanted := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		wanted[c] = true
	}

	var target *ServerState
	for _, s := range p.servers {
		if !wanted[s.Name] {
			continue
		}
		if target == nil || s.FreeAt < target.FreeAt {
			target = s
		}
	}
	if target == nil {
		return ""
	}
	return target.Name
}

// EarliestFreeAt picks among the servers free at time at the one that became
// free earliest, with the first-declared server winning ties.
// ok is false when every server is busy past at.
func (p *ServerPool) EarliestFreeAt(at int64) (name string, ok bool) {
	eligible := p.FreeAt(at)
	if len(eligible) == 0 {
		return "", false
	}
	return p.EarliestFree(eligible), true
}

// FreeAt returns the names of the servers free at time at, in declaration order.
func (p *ServerPool) FreeAt(at int64) []string {
	var free []string
	for _, s := range p.servers {
		if s.FreeAt <= at {
			free = append(free, s.Name)
		}
	}
	return free
}
