package main

import (
	"os"

	"golang.org/x/exp/slog"

	"github.com/mjacb/go-transitnet/feed"
	"github.com/mjacb/go-transitnet/parser"
	"github.com/mjacb/go-transitnet/street"
	"github.com/mjacb/go-transitnet/transit"
)

func main() {
	slog.SetDefault(slog.New(NewLogHandler(os.Stdout, nil)))

	config_file := "./config.yaml"
	if len(os.Args) > 1 {
		config_file = os.Args[1]
	}
	config, err := ReadConfig(config_file)
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}

	if err := BuildNetwork(config); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// BuildNetwork runs the network-construction pipeline: street graph from OSM,
// duplicate-intersection cleanup, transit layer from GTFS, stop linking,
// index rebuild and per-stop distance trees. The whole pipeline is a
// single-threaded batch except for the tree construction workers.
func BuildNetwork(config Config) error {
	graph, err := parser.ParseStreetGraph(config.Build.Source.OSM)
	if err != nil {
		return err
	}
	street.ConsolidateVertices(graph, config.Build.ConsolidatePrecision)
	graph.Freeze()

	gtfs, err := feed.LoadFeed(config.Build.Source.GTFS)
	if err != nil {
		return err
	}
	layer := transit.NewTransitLayer()
	if err := layer.LoadFromFeed(gtfs); err != nil {
		return err
	}

	transit.LinkStopsToStreets(layer, graph, config.Build.MaxLinkDistance)
	layer.RebuildTransientIndexes()
	layer.BuildStopTreesParallel(func() transit.StopRouter {
		return street.NewRouter(graph)
	}, config.Build.StopTreeRange, config.Build.Workers)

	return layer.Store(config.Output)
}
