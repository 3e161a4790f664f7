package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/queue-sim/sim"
)

// FileConfig is the structure of a --config YAML file.
// Nil pointer fields mean "not set in YAML" and keep the defaults;
// empty tables also keep the defaults.
type FileConfig struct {
	Seed           *int64             `yaml:"seed"`
	NumArrivals    *int               `yaml:"num_arrivals"`
	QueueCapacity  *int               `yaml:"queue_capacity"`
	UnboundedQueue *bool              `yaml:"unbounded_queue"`
	InterArrival   sim.Distribution   `yaml:"inter_arrival"`
	Servers        []sim.ServerConfig `yaml:"servers"`
}

// defaultServiceTables holds the reference tables for the default server names.
var defaultServiceTables = map[string]func() sim.Distribution{
	"Able":  sim.DefaultAbleService,
	"Baker": sim.DefaultBakerService,
}

// loadFileConfig parses a config file with strict field checking:
// a misspelled key is an error rather than a silently ignored setting.
func loadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var fc FileConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&fc); err != nil {
		return nil, fmt.Errorf("%w: parsing config file %s: %v", sim.ErrConfiguration, path, err)
	}
	return &fc, nil
}

// applyTo overlays the values set in the file onto cfg and seed.
func (fc *FileConfig) applyTo(cfg *sim.SimConfig, seed *int64) {
	if fc.Seed != nil {
		*seed = *fc.Seed
	}
	if fc.NumArrivals != nil {
		cfg.NumArrivals = *fc.NumArrivals
	}
	if fc.QueueCapacity != nil {
		cfg.QueueCapacity = *fc.QueueCapacity
	}
	if fc.UnboundedQueue != nil {
		cfg.UnboundedQueue = *fc.UnboundedQueue
	}
	if len(fc.InterArrival) > 0 {
		cfg.InterArrival = fc.InterArrival
	}
	if len(fc.Servers) > 0 {
		servers := make([]sim.ServerConfig, len(fc.Servers))
		for i, s := range fc.Servers {
			if len(s.Service) == 0 {
				if table, ok := defaultServiceTables[s.Name]; ok {
					s.Service = table()
				}
			}
			servers[i] = s
		}
		cfg.Servers = servers
	}
}

// resolveSimConfig builds the run configuration: defaults, then the config
// file if --config is set, then any flag given explicitly on the command line.
func resolveSimConfig(cmd *cobra.Command) (sim.SimConfig, int64, error) {
	cfg := sim.DefaultSimConfig()
	runSeed := seed

	if configPath != "" {
		fc, err := loadFileConfig(configPath)
		if err != nil {
			return sim.SimConfig{}, 0, err
		}
		fc.applyTo(&cfg, &runSeed)
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		runSeed = seed
	}
	if flags.Changed("num-arrivals") {
		cfg.NumArrivals = numArrivals
	}
	if flags.Changed("queue-capacity") {
		cfg.QueueCapacity = queueCapacity
	}
	if flags.Changed("unbounded-queue") {
		cfg.UnboundedQueue = unboundedQueue
	}

	if err := cfg.Validate(); err != nil {
		return sim.SimConfig{}, 0, err
	}
	return cfg, runSeed, nil
}
