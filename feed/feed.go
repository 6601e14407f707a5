package feed

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
	. "github.com/mjacb/go-transitnet/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// gtfs feed
//*******************************************

// Feed is the loaded content of one GTFS dataset. Trips and stops keep feed
// iteration order; stop-times are grouped per trip and ordered by
// stop_sequence.
type Feed struct {
	Stops    List[Stop]
	Routes   Dict[string, Route]
	Trips    List[Trip]
	Services Dict[string, *Service]

	stop_times Dict[string, List[StopTime]]
}

// NewFeed creates an empty feed for programmatic construction.
func NewFeed() *Feed {
	return &Feed{
		Routes:     NewDict[string, Route](10),
		Services:   NewDict[string, *Service](10),
		stop_times: NewDict[string, List[StopTime]](10),
	}
}

// StopTimesForTrip returns the trip's stop-times in stop_sequence order.
func (self *Feed) StopTimesForTrip(trip_id string) List[StopTime] {
	return self.stop_times[trip_id]
}

// SetStopTimes attaches a trip's stop-times, ordering them by stop_sequence.
func (self *Feed) SetStopTimes(trip_id string, times List[StopTime]) {
	sort.SliceStable(times, func(i, j int) bool {
		return times[i].StopSequence < times[j].StopSequence
	})
	self.stop_times[trip_id] = times
}

//*******************************************
// loading
//*******************************************

func init() {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		reader := csv.NewReader(in)
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1
		reader.TrimLeadingSpace = true
		return reader
	})
}

// LoadFeed reads a GTFS dataset from an unzipped directory or a .zip archive.
func LoadFeed(path string) (*Feed, error) {
	slog.Info("Loading GTFS feed from " + path)
	var files Dict[string, []byte]
	var err error
	if strings.HasSuffix(path, ".zip") {
		files, err = _ReadZipFiles(path)
	} else {
		files, err = _ReadDirFiles(path)
	}
	if err != nil {
		return nil, err
	}
	return _BuildFeed(files)
}

func _ReadDirFiles(path string) (Dict[string, []byte], error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	files := NewDict[string, []byte](10)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(path, entry.Name()))
		if err != nil {
			return nil, err
		}
		files[entry.Name()] = data
	}
	return files, nil
}

func _ReadZipFiles(path string) (Dict[string, []byte], error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer archive.Close()
	files := NewDict[string, []byte](10)
	for _, zf := range archive.File {
		if !strings.HasSuffix(zf.Name, ".txt") {
			continue
		}
		f, err := zf.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		files[filepath.Base(zf.Name)] = data
	}
	return files, nil
}

func _BuildFeed(files Dict[string, []byte]) (*Feed, error) {
	for _, name := range []string{"stops.txt", "routes.txt", "trips.txt", "stop_times.txt"} {
		if !files.ContainsKey(name) {
			return nil, fmt.Errorf("feed is missing required file %s", name)
		}
	}
	if !files.ContainsKey("calendar.txt") && !files.ContainsKey("calendar_dates.txt") {
		return nil, fmt.Errorf("feed has neither calendar.txt nor calendar_dates.txt")
	}

	feed := &Feed{
		Routes:     NewDict[string, Route](100),
		Services:   NewDict[string, *Service](100),
		stop_times: NewDict[string, List[StopTime]](1000),
	}

	var stops []Stop
	if err := _ParseFile(files, "stops.txt", &stops); err != nil {
		return nil, err
	}
	feed.Stops = stops

	var routes []Route
	if err := _ParseFile(files, "routes.txt", &routes); err != nil {
		return nil, err
	}
	for _, route := range routes {
		feed.Routes[route.RouteID] = route
	}

	var trips []Trip
	if err := _ParseFile(files, "trips.txt", &trips); err != nil {
		return nil, err
	}
	feed.Trips = trips

	var stop_times []StopTime
	if err := _ParseFile(files, "stop_times.txt", &stop_times); err != nil {
		return nil, err
	}
	for _, st := range stop_times {
		times := feed.stop_times[st.TripID]
		times.Add(st)
		feed.stop_times[st.TripID] = times
	}
	for trip_id, times := range feed.stop_times {
		sort.SliceStable(times, func(i, j int) bool {
			return times[i].StopSequence < times[j].StopSequence
		})
		feed.stop_times[trip_id] = times
	}

	if files.ContainsKey("calendar.txt") {
		var calendars []Calendar
		if err := _ParseFile(files, "calendar.txt", &calendars); err != nil {
			return nil, err
		}
		for _, cal := range calendars {
			service := _ServiceFor(feed, cal.ServiceID)
			service.SetCalendar(cal)
		}
	}
	if files.ContainsKey("calendar_dates.txt") {
		var exceptions []CalendarDate
		if err := _ParseFile(files, "calendar_dates.txt", &exceptions); err != nil {
			return nil, err
		}
		for _, exc := range exceptions {
			service := _ServiceFor(feed, exc.ServiceID)
			service.AddException(exc.Date.Time, exc.ExceptionType)
		}
	}

	slog.Info(fmt.Sprintf("Loaded feed: %d stops, %d routes, %d trips, %d services",
		feed.Stops.Length(), feed.Routes.Length(), feed.Trips.Length(), feed.Services.Length()))
	return feed, nil
}

func _ParseFile[T any](files Dict[string, []byte], name string, out *[]T) error {
	data := bytes.TrimPrefix(files[name], []byte{0xEF, 0xBB, 0xBF})
	if err := gocsv.UnmarshalBytes(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

func _ServiceFor(feed *Feed, service_id string) *Service {
	if service, ok := feed.Services[service_id]; ok {
		return service
	}
	service := NewService(service_id)
	feed.Services[service_id] = service
	return service
}
