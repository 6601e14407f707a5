package transit

import (
	"fmt"
	"sort"
	"time"

	"github.com/paulmach/orb"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"

	"github.com/mjacb/go-transitnet/feed"
	. "github.com/mjacb/go-transitnet/util"
)

//*******************************************
// transit layer
//*******************************************

// no street vertex assigned to a stop
const UNLINKED int32 = -1

// TransitLayer is the compact queryable form of one transit feed: stop table,
// service table, pattern table and the stop-to-street mapping. It is built
// single-threaded; once construction is complete it is immutable and safe to
// share between concurrent readers.
//
// patterns_for_stop, stop_for_street_vertex and stop_trees are derived state,
// recomputable from the authoritative tables, and are never mutated directly
// by callers.
type TransitLayer struct {
	stop_ids          Array[string]
	stop_locs         Array[orb.Point]
	index_for_stop_id Dict[string, int32]

	services      List[*feed.Service]
	service_codes Dict[string, int32]

	patterns List[*TripPattern]

	street_vertex_for_stop Array[int32]

	// transient indexes, see RebuildTransientIndexes
	patterns_for_stop      Array[List[int32]]
	stop_for_street_vertex Dict[int32, int32]
	stop_trees             Array[Array[int32]]
}

func NewTransitLayer() *TransitLayer {
	return &TransitLayer{
		index_for_stop_id: NewDict[string, int32](100),
		services:          NewList[*feed.Service](10),
		service_codes:     NewDict[string, int32](10),
		patterns:          NewList[*TripPattern](100),
	}
}

//*******************************************
// feed ingestion
//*******************************************

// LoadFromFeed ingests stops, services and trips. Trips sharing a stop
// sequence are grouped into patterns in first-encounter order; trips sharing
// a vehicle block are chained in departure order to model interlining.
// Any malformed reference fails the whole load.
func (self *TransitLayer) LoadFromFeed(f *feed.Feed) error {
	// stop indices follow feed iteration order
	self.stop_ids = NewArray[string](f.Stops.Length())
	self.stop_locs = NewArray[orb.Point](f.Stops.Length())
	self.street_vertex_for_stop = NewArray[int32](f.Stops.Length())
	for i, stop := range f.Stops {
		self.stop_ids[i] = stop.StopID
		self.stop_locs[i] = orb.Point{stop.Lon, stop.Lat}
		self.street_vertex_for_stop[i] = UNLINKED
		self.index_for_stop_id[stop.StopID] = int32(i)
	}

	// dense service codes, assigned in sorted id order
	service_ids := maps.Keys(f.Services)
	slices.Sort(service_ids)
	for _, service_id := range service_ids {
		self.service_codes[service_id] = int32(self.services.Length())
		self.services.Add(f.Services[service_id])
	}

	slog.Info("Grouping trips by stop pattern and block")
	pattern_for_key := NewDict[string, *TripPattern](100)
	block_order := NewList[string](100)
	schedules_for_block := NewDict[string, List[*TripSchedule]](100)
	trips_added := 0
	for _, trip := range f.Trips {
		stop_times := f.StopTimesForTrip(trip.TripID)
		if stop_times.Length() == 0 {
			return fmt.Errorf("trip %s has no stop times", trip.TripID)
		}
		service_code, ok := self.service_codes[trip.ServiceID]
		if !ok {
			return fmt.Errorf("trip %s references unknown service %s", trip.TripID, trip.ServiceID)
		}

		key := NewTripPatternKey(trip.RouteID)
		arrivals := NewList[int32](stop_times.Length())
		departures := NewList[int32](stop_times.Length())
		for _, st := range stop_times {
			stop_index, ok := self.index_for_stop_id[st.StopID]
			if !ok {
				return fmt.Errorf("trip %s references unknown stop %s", trip.TripID, st.StopID)
			}
			key.AddStopTime(stop_index, st.PickupType, st.DropoffType)
			arrivals.Add(int32(st.Arrival))
			departures.Add(int32(st.Departure))
		}
		if err := _CheckMonotonic(trip.TripID, arrivals, departures); err != nil {
			return err
		}

		encoded := key.Encode()
		pattern, ok := pattern_for_key[encoded]
		if !ok {
			pattern = NewTripPattern(&key)
			pattern_for_key[encoded] = pattern
			self.patterns.Add(pattern)
		}
		if err := pattern.SetOrVerifyDirection(trip.DirectionID); err != nil {
			return fmt.Errorf("trip %s: %w", trip.TripID, err)
		}
		schedule := &TripSchedule{
			TripID:      trip.TripID,
			Arrivals:    Array[int32](arrivals),
			Departures:  Array[int32](departures),
			ServiceCode: service_code,
		}
		if err := pattern.AddSchedule(schedule); err != nil {
			return err
		}
		trips_added += 1

		if trip.BlockID != "" {
			if !schedules_for_block.ContainsKey(trip.BlockID) {
				block_order.Add(trip.BlockID)
			}
			block := schedules_for_block[trip.BlockID]
			block.Add(schedule)
			schedules_for_block[trip.BlockID] = block
		}
	}
	slog.Info(fmt.Sprintf("Created %d trips on %d patterns", trips_added, self.patterns.Length()))

	// interlining: chain each block's trips in departure order, ties keep
	// ingestion order
	for _, block_id := range block_order {
		schedules := schedules_for_block[block_id]
		sort.SliceStable(schedules, func(i, j int) bool {
			return schedules[i].FirstDeparture() < schedules[j].FirstDeparture()
		})
		for i := 0; i < schedules.Length()-1; i++ {
			schedules[i].ChainTo(schedules[i+1])
		}
	}
	slog.Info(fmt.Sprintf("Chained trips of %d blocks", block_order.Length()))
	return nil
}

func _CheckMonotonic(trip_id string, arrivals List[int32], departures List[int32]) error {
	last := int32(0)
	for i := 0; i < arrivals.Length(); i++ {
		if arrivals[i] < 0 || departures[i] < 0 {
			return fmt.Errorf("trip %s is missing a time at stop %d", trip_id, i)
		}
		if arrivals[i] < last || departures[i] < arrivals[i] {
			return fmt.Errorf("trip %s has decreasing times at stop %d", trip_id, i)
		}
		last = departures[i]
	}
	return nil
}

//*******************************************
// accessors
//*******************************************

func (self *TransitLayer) StopCount() int {
	return self.stop_ids.Length()
}
func (self *TransitLayer) StopID(stop int32) string {
	return self.stop_ids[stop]
}
func (self *TransitLayer) StopLocation(stop int32) orb.Point {
	return self.stop_locs[stop]
}
func (self *TransitLayer) IndexForStopID(stop_id string) (int32, bool) {
	index, ok := self.index_for_stop_id[stop_id]
	return index, ok
}

func (self *TransitLayer) ServiceCount() int {
	return self.services.Length()
}
func (self *TransitLayer) ServiceCode(service_id string) (int32, bool) {
	code, ok := self.service_codes[service_id]
	return code, ok
}

func (self *TransitLayer) PatternCount() int {
	return self.patterns.Length()
}
func (self *TransitLayer) GetPattern(pattern int32) *TripPattern {
	return self.patterns[pattern]
}

// SetStreetVertexForStop records the street-vertex assignment of a stop, as
// produced by street linking. Transient indexes must be rebuilt afterwards.
func (self *TransitLayer) SetStreetVertexForStop(stop int32, vertex int32) {
	self.street_vertex_for_stop[stop] = vertex
}
func (self *TransitLayer) StreetVertexForStop(stop int32) int32 {
	return self.street_vertex_for_stop[stop]
}

func (self *TransitLayer) PatternsForStop(stop int32) List[int32] {
	return self.patterns_for_stop[stop]
}
func (self *TransitLayer) StopForStreetVertex(vertex int32) (int32, bool) {
	stop, ok := self.stop_for_street_vertex[vertex]
	return stop, ok
}
func (self *TransitLayer) StopTree(stop int32) Array[int32] {
	return self.stop_trees[stop]
}

//*******************************************
// transient indexes
//*******************************************

// RebuildTransientIndexes recomputes the stop-to-pattern membership lists and
// the inverse street-vertex map. Call after ingestion and after any change to
// the stop-to-street mapping. If two stops share a street vertex the later
// stop wins in the inverse map.
func (self *TransitLayer) RebuildTransientIndexes() {
	self.patterns_for_stop = NewArray[List[int32]](self.StopCount())
	for i := range self.patterns_for_stop {
		self.patterns_for_stop[i] = NewList[int32](4)
	}
	for p, pattern := range self.patterns {
		for _, stop := range pattern.Stops {
			members := self.patterns_for_stop[stop]
			if members.Length() > 0 && members[members.Length()-1] == int32(p) {
				// pattern visits the stop twice
				continue
			}
			members.Add(int32(p))
			self.patterns_for_stop[stop] = members
		}
	}

	self.stop_for_street_vertex = NewDict[int32, int32](self.StopCount())
	for stop, vertex := range self.street_vertex_for_stop {
		if vertex == UNLINKED {
			continue
		}
		self.stop_for_street_vertex[vertex] = int32(stop)
	}
}

//*******************************************
// active services
//*******************************************

// ActiveServicesForDate returns the set of service codes running on the given
// date, for masking out schedules at query time.
func (self *TransitLayer) ActiveServicesForDate(date time.Time) Bitset {
	active := NewBitset(self.services.Length())
	for code, service := range self.services {
		if service.ActiveOn(date) {
			active.Set(code)
		}
	}
	return active
}
