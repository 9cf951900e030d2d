package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// scenario describes one timed workload.
type scenario struct {
	Name       string `toml:"name"`
	Impl       string `toml:"impl"`
	Universe   int    `toml:"universe"`
	Inserts    int    `toml:"inserts"`
	Erases     int    `toml:"erases"`
	Successors int    `toml:"successors"`
	Seed       int64  `toml:"seed"`
}

func defaultScenario() scenario {
	return scenario{
		Name:       "adhoc",
		Impl:       "veb",
		Universe:   1 << 20,
		Inserts:    1 << 20,
		Erases:     1 << 18,
		Successors: 1 << 21,
		Seed:       1,
	}
}

// loadScenarios reads [[scenario]] tables from a TOML file. An omitted
// name, impl or universe falls back to the ad-hoc defaults; the workload
// counts are taken as written, zero included.
func loadScenarios(path string) ([]scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read scenario config")
	}

	var file struct {
		Scenario []scenario `toml:"scenario"`
	}
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	if len(file.Scenario) == 0 {
		return nil, errors.Errorf("%s holds no [[scenario]] tables", path)
	}

	for i := range file.Scenario {
		if err := file.Scenario[i].fillDefaults(i); err != nil {
			return nil, errors.Wrapf(err, "scenario %d", i)
		}
	}
	return file.Scenario, nil
}

func (sc *scenario) fillDefaults(i int) error {
	def := defaultScenario()

	if sc.Name == "" {
		sc.Name = fmt.Sprintf("scenario-%d", i)
	}
	if sc.Impl == "" {
		sc.Impl = def.Impl
	}
	if sc.Universe == 0 {
		sc.Universe = def.Universe
	}
	return sc.validate()
}

// validate rejects parameters the set constructors would panic on.
// Flag-built scenarios go through it directly, TOML ones via fillDefaults.
func (sc *scenario) validate() error {
	if sc.Universe < 1 {
		return errors.Errorf("universe %d is not positive", sc.Universe)
	}
	if sc.Inserts < 0 || sc.Erases < 0 || sc.Successors < 0 {
		return errors.New("workload counts must not be negative")
	}
	return nil
}
