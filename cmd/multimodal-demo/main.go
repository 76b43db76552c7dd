package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/routeweave/multimodal/builder"
	"github.com/routeweave/multimodal/multimodal"
	"github.com/routeweave/multimodal/poi"
	"github.com/routeweave/multimodal/road"
	"github.com/routeweave/multimodal/transit"
	"github.com/routeweave/multimodal/traverse"
)

func main() {
	if os.Getenv("MULTIMODAL_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	app := &cli.App{
		Name:  "multimodal-demo",
		Usage: "assemble a fixture multimodal network and run a shortest-path query",
		Commands: []*cli.Command{
			{
				Name:  "route",
				Usage: "build a small road+transit+POI fixture and run Dijkstra across it",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "nodes", Value: 6, Usage: "number of road nodes in the fixture path"},
				},
				Action: runRoute,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("multimodal-demo failed")
	}
}

func runRoute(c *cli.Context) error {
	n := c.Int("nodes")

	runID := uuid.New().String()
	logger := log.With().Str("run_id", runID).Logger()

	rg, err := builder.BuildGraph(nil, builder.Path(n))
	if err != nil {
		return fmt.Errorf("building road fixture: %w", err)
	}

	firstSection := road.EdgeID(0)
	lastSection := road.EdgeID(n - 2)

	tg := transit.NewGraph()
	s0 := tg.AddStop(transit.Stop{DBID: 900, RoadSection: firstSection})
	s1 := tg.AddStop(transit.Stop{DBID: 901, RoadSection: lastSection})
	if _, err := tg.AddSection(transit.Section{DBID: 9000, From: s0, To: s1, Mode: "bus", TravelTimeSeconds: 1}); err != nil {
		return fmt.Errorf("wiring transit fixture: %w", err)
	}
	rg.SetSectionStops(firstSection, []road.StopRef{{NetworkID: "demo-line", StopIndex: int(s0)}})
	rg.SetSectionStops(lastSection, []road.StopRef{{NetworkID: "demo-line", StopIndex: int(s1)}})

	tc := transit.NewCollection()
	tc.Add("demo-line", tg)
	tc.SelectAll()

	pois := poi.NewCollection()
	poiSection := road.EdgeID(0)
	h := pois.Add(poi.POI{DBID: 500, Kind: poi.TypeUserPOI, Section: poiSection, Abscissa: 0.5})
	rg.SetSectionPOIs(poiSection, []road.POIRef{{Index: int(h)}})

	g := multimodal.NewGraph(rg, tc, pois)

	logger.Info().
		Int("road_nodes", rg.NumNodes()).
		Int("road_sections", rg.NumSections()).
		Int("composite_vertices", g.NumVertices()).
		Int("composite_edges", g.NumEdges()).
		Msg("fixture assembled")

	weight := func(e multimodal.Edge) (int64, bool) {
		switch e.ConnectionType() {
		case multimodal.Road2Road:
			return 10, true
		case multimodal.Road2Transport, multimodal.Transport2Road:
			return 2, true
		case multimodal.Transport2Transport:
			return 1, true
		default:
			return 0, false
		}
	}

	source := multimodal.NewRoadVertex(0)
	target := multimodal.NewRoadVertex(road.Vertex(n - 1))

	result, err := traverse.Dijkstra(context.Background(), g, source, weight, true)
	if err != nil {
		return fmt.Errorf("dijkstra: %w", err)
	}

	dist := result.Dist[g.VertexIndex(target)]
	fmt.Printf("shortest cost from %s to %s: %d\n", g.VertexLabel(source), g.VertexLabel(target), dist)

	return nil
}
