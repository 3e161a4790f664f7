package sim

import "fmt"

const (
	// DefaultNumArrivals is the number of arrivals in the reference workload.
	DefaultNumArrivals = 100
	// DefaultQueueCapacity is the waiting-area size of the reference workload.
	DefaultQueueCapacity = 2
)

// ServerConfig declares one server and its service-time table.
type ServerConfig struct {
	Name    string       `yaml:"name" json:"name"`
	Service Distribution `yaml:"service" json:"service"`
}

// SimConfig groups everything a single run needs besides its random source.
// Servers are listed in priority order: the first declared wins ties.
type SimConfig struct {
	NumArrivals    int            `yaml:"num_arrivals" json:"num_arrivals"`
	QueueCapacity  int            `yaml:"queue_capacity" json:"queue_capacity"`
	UnboundedQueue bool           `yaml:"unbounded_queue" json:"unbounded_queue"`
	InterArrival   Distribution   `yaml:"inter_arrival" json:"inter_arrival"`
	Servers        []ServerConfig `yaml:"servers" json:"servers"`
}

// DefaultSimConfig returns the two-server Able/Baker reference workload.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		NumArrivals:   DefaultNumArrivals,
		QueueCapacity: DefaultQueueCapacity,
		InterArrival:  DefaultInterArrival(),
		Servers: []ServerConfig{
			{Name: "Able", Service: DefaultAbleService()},
			{Name: "Baker", Service: DefaultBakerService()},
		},
	}
}

// ServerNames returns the configured server names in declaration order.
func (c SimConfig) ServerNames() []string {
	names := make([]string, len(c.Servers))
	for i, s := range c.Servers {
		names[i] = s.Name
	}
	return names
}

// Validate checks counts, server declarations and every distribution table.
func (c SimConfig) Validate() error {
	if c.NumArrivals < 0 {
		return fmt.Errorf("%w: num_arrivals must be non-negative, got %d", ErrConfiguration, c.NumArrivals)
	}
	if c.QueueCapacity < 0 {
		return fmt.Errorf("%w: queue_capacity must be non-negative, got %d", ErrConfiguration, c.QueueCapacity)
	}
	if err := c.InterArrival.Validate(); err != nil {
		return fmt.Errorf("inter_arrival: %w", err)
	}
	if len(c.Servers) == 0 {
		return fmt.Errorf("%w: at least one server is required", ErrConfiguration)
	}
	seen := make(map[string]bool, len(c.Servers))
	for i, s := range c.Servers {
		if s.Name == "" {
			return fmt.Errorf("%w: server %d: name is required", ErrConfiguration, i)
		}
		if seen[s.Name] {
			return fmt.Errorf("%w: duplicate server name %q", ErrConfiguration, s.Name)
		}
		seen[s.Name] = true
		if err := s.Service.Validate(); err != nil {
			return fmt.Errorf("server %s service: %w", s.Name, err)
		}
	}
	return nil
}
