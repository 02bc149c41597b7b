package availability

import (
	"errors"
	"fmt"
	"medbook-service/internal/app/models"
	"medbook-service/internal/pkg/constvars"
	"medbook-service/internal/pkg/utils"
	"sort"
	"time"
)

var (
	ErrNotWorkingThisDay   = errors.New("no working window for weekday")
	ErrOutsideWorkingHours = errors.New("slot is outside the working window")
	ErrSlotTaken           = errors.New("slot overlaps an occupied interval")
)

// NewWeeklyPlan validates stored working hours and indexes them by weekday.
// The first malformed row is reported as an error.
func NewWeeklyPlan(hours []models.WorkingHour) (WeeklyPlan, error) {
	var wp WeeklyPlan
	for i, h := range hours {
		if h.Weekday < time.Sunday || h.Weekday > time.Saturday {
			return WeeklyPlan{}, fmt.Errorf("workingHours[%d]: invalid weekday %d", i, h.Weekday)
		}
		start, err := utils.ParseClock(h.StartTime)
		if err != nil {
			return WeeklyPlan{}, fmt.Errorf("workingHours[%d]: %w", i, err)
		}
		end, err := utils.ParseClock(h.EndTime)
		if err != nil {
			return WeeklyPlan{}, fmt.Errorf("workingHours[%d]: %w", i, err)
		}
		if start >= end {
			return WeeklyPlan{}, fmt.Errorf("workingHours[%d]: start >= end (%s >= %s)", i, h.StartTime, h.EndTime)
		}
		if wp[h.Weekday] != nil {
			return WeeklyPlan{}, fmt.Errorf("workingHours[%d]: duplicate window for %s", i, h.Weekday)
		}
		wp[h.Weekday] = &TimeRange{Start: start, End: end}
	}
	return wp, nil
}

// SlotFromBooking converts a booked row into its occupied interval
// [start, start+duration).
func SlotFromBooking(b models.BookedSlot) (TimeRange, error) {
	start, err := utils.ParseClock(b.StartTime)
	if err != nil {
		return TimeRange{}, fmt.Errorf("appointment %s: %w", b.AppointmentID, err)
	}
	if b.DurationMinutes <= 0 {
		return TimeRange{}, fmt.Errorf("appointment %s: non-positive duration %d", b.AppointmentID, b.DurationMinutes)
	}
	return TimeRange{Start: start, End: start + b.DurationMinutes}, nil
}

// Resolve computes the availability of date. Cancelled bookings are
// skipped. Occupied intervals are neither merged nor clipped to the window.
func Resolve(date time.Time, plan WeeklyPlan, booked []models.BookedSlot) (*Result, error) {
	weekday := date.Weekday()
	window, ok := plan.ForWeekday(weekday)
	if !ok {
		return nil, ErrNotWorkingThisDay
	}

	occupied := make([]TimeRange, 0, len(booked))
	for _, b := range booked {
		if b.Status == constvars.AppointmentStatusCancelled {
			continue
		}
		slot, err := SlotFromBooking(b)
		if err != nil {
			return nil, err
		}
		occupied = append(occupied, slot)
	}
	sort.SliceStable(occupied, func(i, j int) bool {
		if occupied[i].Start == occupied[j].Start {
			return occupied[i].End < occupied[j].End
		}
		return occupied[i].Start < occupied[j].Start
	})

	return &Result{
		Date:         utils.StartOfDay(date),
		Weekday:      weekday,
		WorkingHours: window,
		Occupied:     occupied,
	}, nil
}

// CheckSlot reports whether slot can be booked against r.
func (r *Result) CheckSlot(slot TimeRange) error {
	if !r.WorkingHours.Contains(slot) {
		return ErrOutsideWorkingHours
	}
	for _, o := range r.Occupied {
		if o.Overlaps(slot) {
			return ErrSlotTaken
		}
	}
	return nil
}
