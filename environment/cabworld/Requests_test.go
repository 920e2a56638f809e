package cabworld_test

import (
	"testing"

	"github.com/samuelfneumann/gocab/environment/cabworld"
)

func TestSampleRequestsShape(t *testing.T) {
	config := cabworld.DefaultConfig()
	actions := cabworld.ActionSpace(config.Locations)
	sampler := cabworld.NewRequestSampler(config, actions, 42)

	rides := len(actions) - 1

	for _, state := range cabworld.StateSpace(config.Locations) {
		indices, visible := sampler.Sample(state)

		if len(indices) != len(visible)-1 {
			t.Fatalf("%v: got %d indices for %d visible actions", state,
				len(indices), len(visible))
		}
		if len(indices) > cabworld.MaxVisibleRequests {
			t.Fatalf("%v: %d requests exceed the cap of %d", state,
				len(indices), cabworld.MaxVisibleRequests)
		}
		if !visible[len(visible)-1].IsIdle() {
			t.Fatalf("%v: last visible action is %v, want idle", state,
				visible[len(visible)-1])
		}

		for i, index := range indices {
			if index < 0 || index >= rides {
				t.Fatalf("%v: ride index %d ∉ [0, %d)", state, index,
					rides)
			}
			if visible[i] != actions[index] {
				t.Fatalf("%v: visible action %v does not match action %v "+
					"at index %d", state, visible[i], actions[index], index)
			}
			if visible[i].IsIdle() {
				t.Fatalf("%v: sampled the sentinel as a ride request", state)
			}
		}
	}
}

func TestSampleRequestsZeroRate(t *testing.T) {
	config, err := cabworld.NewConfig(3, 5, 9, []float64{0, 0, 0})
	if err != nil {
		t.Fatalf("could not create config: %v", err)
	}

	actions := cabworld.ActionSpace(config.Locations)
	sampler := cabworld.NewRequestSampler(config, actions, 42)

	for _, state := range cabworld.StateSpace(config.Locations) {
		indices, visible := sampler.Sample(state)
		if len(indices) != 0 {
			t.Fatalf("%v: got %d requests with zero rates", state,
				len(indices))
		}
		if len(visible) != 1 || !visible[0].IsIdle() {
			t.Fatalf("%v: got visible actions %v, want only idle", state,
				visible)
		}
	}
}

func TestSampleRequestsReproducible(t *testing.T) {
	config := cabworld.DefaultConfig()
	actions := cabworld.ActionSpace(config.Locations)

	first := cabworld.NewRequestSampler(config, actions, 77)
	second := cabworld.NewRequestSampler(config, actions, 77)

	state := cabworld.State{Location: 2, Hour: 9, Day: 4}
	for i := 0; i < 100; i++ {
		firstIndices, _ := first.Sample(state)
		secondIndices, _ := second.Sample(state)

		if len(firstIndices) != len(secondIndices) {
			t.Fatalf("draw %d: got %d and %d requests from equally seeded "+
				"samplers", i, len(firstIndices), len(secondIndices))
		}
		for j := range firstIndices {
			if firstIndices[j] != secondIndices[j] {
				t.Fatalf("draw %d: request %d differs between equally "+
					"seeded samplers", i, j)
			}
		}
	}
}
