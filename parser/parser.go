package parser

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"golang.org/x/exp/slog"

	"github.com/mjacb/go-transitnet/street"
	. "github.com/mjacb/go-transitnet/util"
)

//*******************************************
// osm parser
//*******************************************

type _TempNode struct {
	Point orb.Point
	Count int32
}

// ParseStreetGraph builds a street graph from an OSM pbf extract. Way nodes
// referenced more than once become intersections; ways are cut into one
// street edge per junction-to-junction segment, with a reverse edge unless
// the way is oneway. Edge lengths are great-circle meters along the way
// geometry.
func ParseStreetGraph(pbf_file string) (*street.Graph, error) {
	file, err := os.Open(pbf_file)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	osm_nodes := NewDict[int64, _TempNode](10000)
	if err := _ScanWayNodes(file, &osm_nodes); err != nil {
		return nil, err
	}
	if _, err := file.Seek(0, 0); err != nil {
		return nil, err
	}
	if err := _ScanNodeLocations(file, &osm_nodes); err != nil {
		return nil, err
	}
	if _, err := file.Seek(0, 0); err != nil {
		return nil, err
	}
	graph := street.NewGraph()
	if err := _ScanWayEdges(file, &osm_nodes, graph); err != nil {
		return nil, err
	}
	slog.Info(fmt.Sprintf("Parsed street graph with %d vertices", graph.VertexCount()))
	return graph, nil
}

func _IsStreetWay(tags Dict[string, string]) bool {
	return tags.ContainsKey("highway")
}

func _IsOneway(tags Dict[string, string]) bool {
	switch tags["oneway"] {
	case "yes", "true", "1":
		return true
	}
	return tags["junction"] == "roundabout"
}

// first pass: count node references of street ways; way endpoints always
// count as junctions
func _ScanWayNodes(file *os.File, osm_nodes *Dict[int64, _TempNode]) error {
	scanner := osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	defer scanner.Close()
	scanner.SkipNodes = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Way:
			if !_IsStreetWay(Dict[string, string](object.TagMap())) {
				continue
			}
			nodes := object.Nodes.NodeIDs()
			l := len(nodes)
			for i := 0; i < l; i++ {
				ndref := nodes[i].FeatureID().Ref()
				node := osm_nodes.Get(ndref)
				node.Count += 1
				if i == 0 || i == l-1 {
					node.Count += 1
				}
				osm_nodes.Set(ndref, node)
			}
		default:
			continue
		}
	}
	return scanner.Err()
}

// second pass: pick up the coordinates of referenced nodes
func _ScanNodeLocations(file *os.File, osm_nodes *Dict[int64, _TempNode]) error {
	scanner := osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	defer scanner.Close()
	scanner.SkipWays = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Node:
			id := object.FeatureID().Ref()
			if !osm_nodes.ContainsKey(id) {
				continue
			}
			node := osm_nodes.Get(id)
			node.Point = orb.Point{object.Lon, object.Lat}
			osm_nodes.Set(id, node)
		default:
			continue
		}
	}
	return scanner.Err()
}

// third pass: emit street edges between junction nodes
func _ScanWayEdges(file *os.File, osm_nodes *Dict[int64, _TempNode], graph *street.Graph) error {
	scanner := osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	defer scanner.Close()
	scanner.SkipNodes = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Way:
			tags := Dict[string, string](object.TagMap())
			if !_IsStreetWay(tags) {
				continue
			}
			name := tags["name"]
			oneway := _IsOneway(tags)

			nodes := object.Nodes.NodeIDs()
			l := len(nodes)
			start := nodes[0].FeatureID().Ref()
			length := 0.0
			last := osm_nodes.Get(start).Point
			for i := 1; i < l; i++ {
				curr := nodes[i].FeatureID().Ref()
				node := osm_nodes.Get(curr)
				length += geo.Distance(last, node.Point)
				last = node.Point
				if node.Count > 1 && curr != start {
					from := _VertexFor(graph, osm_nodes, start)
					to := _VertexFor(graph, osm_nodes, curr)
					graph.AddEdge(from, to, street.STREET_EDGE, name, int32(length))
					if !oneway {
						graph.AddEdge(to, from, street.STREET_EDGE, name, int32(length))
					}
					start = curr
					length = 0.0
				}
			}
		default:
			continue
		}
	}
	return scanner.Err()
}

func _VertexFor(graph *street.Graph, osm_nodes *Dict[int64, _TempNode], id int64) *street.Vertex {
	label := "osm:" + strconv.FormatInt(id, 10)
	if vertex, ok := graph.GetVertex(label); ok {
		return vertex
	}
	return graph.AddVertex(label, osm_nodes.Get(id).Point)
}
