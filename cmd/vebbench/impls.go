package main

import (
	"github.com/pkg/errors"

	"github.com/go-ds/veb/critbit"
	"github.com/go-ds/veb/set"
)

// ordered is the operation surface shared by the set implementations.
type ordered interface {
	Add(x int) bool
	Del(x int) bool
	Has(x int) bool
	Successor(x int) int
	Len() int
}

// newImpl builds a named implementation sized for the universe.
func newImpl(name string, universe int) (ordered, error) {
	switch name {
	case "veb":
		return set.NewSet(universe), nil
	case "critbit":
		return critbit.NewSet(), nil
	}
	return nil, errors.Errorf("unknown implementation %q", name)
}
