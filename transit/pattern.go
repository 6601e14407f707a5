package transit

import (
	"fmt"

	. "github.com/mjacb/go-transitnet/util"
)

//*******************************************
// trip pattern key
//*******************************************

// TripPatternKey is the canonical signature of a trip's stop sequence. Two
// trips with the same route, stops and pickup/dropoff policies share a
// pattern. Keys are value-compared through their encoded form and discarded
// after grouping.
type TripPatternKey struct {
	route_id string
	stops    List[int32]
	pickups  List[int8]
	dropoffs List[int8]
}

func NewTripPatternKey(route_id string) TripPatternKey {
	return TripPatternKey{
		route_id: route_id,
		stops:    NewList[int32](30),
		pickups:  NewList[int8](30),
		dropoffs: NewList[int8](30),
	}
}

func (self *TripPatternKey) AddStopTime(stop_index int32, pickup int8, dropoff int8) {
	self.stops.Add(stop_index)
	self.pickups.Add(pickup)
	self.dropoffs.Add(dropoff)
}

// Encode packs the key into a byte string usable as a grouping map key.
func (self *TripPatternKey) Encode() string {
	writer := NewBufferWriter()
	WriteString(writer, self.route_id)
	for i := 0; i < self.stops.Length(); i++ {
		Write(writer, self.stops[i])
		Write(writer, self.pickups[i])
		Write(writer, self.dropoffs[i])
	}
	return string(writer.Bytes())
}

//*******************************************
// trip pattern
//*******************************************

const NO_DIRECTION int8 = -1

// TripPattern is one unique stop sequence and the schedules of all trips
// running over it, in ingestion order.
type TripPattern struct {
	RouteID  string
	Stops    Array[int32]
	Pickups  Array[int8]
	Dropoffs Array[int8]

	direction int8
	schedules List[*TripSchedule]
}

func NewTripPattern(key *TripPatternKey) *TripPattern {
	return &TripPattern{
		RouteID:   key.route_id,
		Stops:     Array[int32](key.stops),
		Pickups:   Array[int8](key.pickups),
		Dropoffs:  Array[int8](key.dropoffs),
		direction: NO_DIRECTION,
		schedules: NewList[*TripSchedule](4),
	}
}

// SetOrVerifyDirection sets the pattern direction on first use and reports a
// data-consistency error when a later trip disagrees.
func (self *TripPattern) SetOrVerifyDirection(direction int8) error {
	if self.direction == NO_DIRECTION {
		self.direction = direction
		return nil
	}
	if self.direction != direction {
		return fmt.Errorf("direction %d conflicts with pattern direction %d on route %s", direction, self.direction, self.RouteID)
	}
	return nil
}

func (self *TripPattern) Direction() int8 {
	return self.direction
}

func (self *TripPattern) AddSchedule(schedule *TripSchedule) error {
	if schedule.Arrivals.Length() != self.Stops.Length() || schedule.Departures.Length() != self.Stops.Length() {
		return fmt.Errorf("trip %s has %d stop times, pattern has %d stops", schedule.TripID, schedule.Arrivals.Length(), self.Stops.Length())
	}
	self.schedules.Add(schedule)
	return nil
}

func (self *TripPattern) ScheduleCount() int {
	return self.schedules.Length()
}
func (self *TripPattern) GetSchedule(index int) *TripSchedule {
	return self.schedules[index]
}

//*******************************************
// trip schedule
//*******************************************

// TripSchedule is one trip's concrete times over its pattern. Overnight
// wraparound is unsupported, times must be non-decreasing along the trip.
type TripSchedule struct {
	TripID      string
	Arrivals    Array[int32]
	Departures  Array[int32]
	ServiceCode int32

	next_in_block *TripSchedule
}

func (self *TripSchedule) FirstDeparture() int32 {
	return self.Departures[0]
}

// ChainTo links the schedule to the next trip served by the same vehicle
// block. The link is traversal-only, ownership stays with the pattern.
func (self *TripSchedule) ChainTo(next *TripSchedule) {
	self.next_in_block = next
}

func (self *TripSchedule) NextInBlock() *TripSchedule {
	return self.next_in_block
}
