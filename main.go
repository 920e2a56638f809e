package main

import (
	"fmt"
	"log"

	"github.com/samuelfneumann/gocab/agent/uniform"
	"github.com/samuelfneumann/gocab/environment/cabworld"
	"github.com/samuelfneumann/gocab/environment/envconfig"
	"github.com/samuelfneumann/gocab/experiment"
	"github.com/samuelfneumann/gocab/experiment/trackers"
)

func main() {
	var seed uint64 = 192382

	// Create the environment: the default five-city dispatch world
	// with one-week episodes. With no travel-time file configured, a
	// uniform one-hour table is used.
	conf := envconfig.NewConfig(envconfig.CabWorld, envconfig.Fare, 5, 5, 9,
		"", 168, 1.0)
	e, _, err := conf.Create(seed)
	if err != nil {
		log.Fatalf("could not create environment: %v", err)
	}

	// Create the uniform dispatch policy
	a := uniform.New(e.(*cabworld.Env), seed)

	// Experiment
	var tracker trackers.Tracker = trackers.NewReturn("./data.bin")
	hours := trackers.NewEpisodeHours("./hours.bin")
	exp := experiment.NewOnline(e, a, 100_000, tracker, hours)
	exp.Run()
	exp.Save()

	data := trackers.LoadData("./data.bin")
	fmt.Println(data[len(data)-10:])
}
