package feed

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

//*******************************************
// csv field types
//*******************************************

// Seconds is a time-of-day in seconds since midnight ("08:30:00" -> 30600).
// GTFS allows values past 24:00:00 for trips running after midnight; those are
// kept as-is, wraparound is not interpreted.
type Seconds int32

const NO_TIME Seconds = -1

func (self *Seconds) UnmarshalCSV(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		*self = NO_TIME
		return nil
	}
	parts := strings.Split(value, ":")
	if len(parts) != 3 {
		return errors.New("invalid time value: " + value)
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	s, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return errors.New("invalid time value: " + value)
	}
	*self = Seconds(h*3600 + m*60 + s)
	return nil
}
func (self Seconds) MarshalCSV() (string, error) {
	if self == NO_TIME {
		return "", nil
	}
	v := int(self)
	return strconv.Itoa(v/3600) + ":" + _Pad(v/60%60) + ":" + _Pad(v%60), nil
}

func _Pad(v int) string {
	if v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

// Date is a calendar day in the feed's local zone ("20240131").
type Date struct {
	time.Time
}

func (self *Date) UnmarshalCSV(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		self.Time = time.Time{}
		return nil
	}
	t, err := time.Parse("20060102", value)
	if err != nil {
		return err
	}
	self.Time = t
	return nil
}
func (self Date) MarshalCSV() (string, error) {
	if self.IsZero() {
		return "", nil
	}
	return self.Format("20060102"), nil
}

//*******************************************
// gtfs records
//*******************************************

type Stop struct {
	StopID string  `csv:"stop_id"`
	Name   string  `csv:"stop_name"`
	Lat    float64 `csv:"stop_lat"`
	Lon    float64 `csv:"stop_lon"`
}

type Route struct {
	RouteID   string `csv:"route_id"`
	ShortName string `csv:"route_short_name"`
	LongName  string `csv:"route_long_name"`
	Type      int32  `csv:"route_type"`
}

type Trip struct {
	TripID      string `csv:"trip_id"`
	RouteID     string `csv:"route_id"`
	ServiceID   string `csv:"service_id"`
	DirectionID int8   `csv:"direction_id"`
	BlockID     string `csv:"block_id"`
}

type StopTime struct {
	TripID       string  `csv:"trip_id"`
	StopID       string  `csv:"stop_id"`
	StopSequence int32   `csv:"stop_sequence"`
	Arrival      Seconds `csv:"arrival_time"`
	Departure    Seconds `csv:"departure_time"`
	PickupType   int8    `csv:"pickup_type"`
	DropoffType  int8    `csv:"drop_off_type"`
}

type Calendar struct {
	ServiceID string `csv:"service_id"`
	Monday    int8   `csv:"monday"`
	Tuesday   int8   `csv:"tuesday"`
	Wednesday int8   `csv:"wednesday"`
	Thursday  int8   `csv:"thursday"`
	Friday    int8   `csv:"friday"`
	Saturday  int8   `csv:"saturday"`
	Sunday    int8   `csv:"sunday"`
	StartDate Date   `csv:"start_date"`
	EndDate   Date   `csv:"end_date"`
}

type CalendarDate struct {
	ServiceID     string `csv:"service_id"`
	Date          Date   `csv:"date"`
	ExceptionType int8   `csv:"exception_type"`
}

const (
	EXCEPTION_ADDED   int8 = 1
	EXCEPTION_REMOVED int8 = 2
)
