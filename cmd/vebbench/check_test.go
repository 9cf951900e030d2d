package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, impl := range []string{"veb", "critbit"} {
		for _, universe := range []int{40, 64, 1024} {
			err := checkOnce(impl, universe, universe/2, 3, 5, rng)

			require.NoError(t, err, "impl=%s universe=%d", impl, universe)
		}
	}
}

func TestCheckOnce_UnknownImpl(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	err := checkOnce("btree", 64, 10, 1, 1, rng)

	require.Error(t, err)
}
