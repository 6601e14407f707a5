package feed

import (
	"time"
)

//*******************************************
// service calendar
//*******************************************

// Service is a calendar of active dates, built from a calendar.txt row plus
// calendar_dates.txt exceptions. A service may exist without a weekly calendar
// (exception dates only).
type Service struct {
	ServiceID string

	has_calendar bool
	weekdays     [7]bool
	start_date   time.Time
	end_date     time.Time

	// keyed by yyyymmdd
	exceptions map[string]int8
}

func NewService(service_id string) *Service {
	return &Service{
		ServiceID:  service_id,
		exceptions: make(map[string]int8),
	}
}

func (self *Service) SetCalendar(cal Calendar) {
	self.has_calendar = true
	self.weekdays = [7]bool{
		cal.Sunday == 1, cal.Monday == 1, cal.Tuesday == 1, cal.Wednesday == 1,
		cal.Thursday == 1, cal.Friday == 1, cal.Saturday == 1,
	}
	self.start_date = cal.StartDate.Time
	self.end_date = cal.EndDate.Time
}

func (self *Service) AddException(date time.Time, exception_type int8) {
	self.exceptions[date.Format("20060102")] = exception_type
}

// ActiveOn reports whether the service runs on the given date. Exception
// dates override the weekly calendar in both directions.
func (self *Service) ActiveOn(date time.Time) bool {
	if exception, ok := self.exceptions[date.Format("20060102")]; ok {
		return exception == EXCEPTION_ADDED
	}
	if !self.has_calendar {
		return false
	}
	if date.Before(self.start_date) || date.After(self.end_date) {
		return false
	}
	return self.weekdays[int(date.Weekday())]
}
