package models

import (
	"sort"

	"github.com/jinzhu/copier"
)

// RecalculateTotalCost recomputes a day's total cost as the full sum over its
// activities. Always a full recompute, never incremental, so the total cannot
// drift from the activity list.
func (d *Day) RecalculateTotalCost() {
	total := 0
	for _, activity := range d.Activities {
		total += activity.EstimatedCost
	}
	d.TotalCost = total
}

// sortActivitiesByStartTime orders a day's activities chronologically.
// HH:MM strings compare correctly as plain strings.
func (d *Day) sortActivitiesByStartTime() {
	sort.SliceStable(d.Activities, func(i, j int) bool {
		return d.Activities[i].StartTime < d.Activities[j].StartTime
	})
}

// TotalCost returns the trip total across all days
func (t *Timeline) TotalCost() int {
	total := 0
	for _, day := range t.Days {
		total += day.TotalCost
	}
	return total
}

// FindActivity locates an activity by ID across all days, returning the day
// index and a pointer into the timeline, or (-1, nil) if not found.
func (t *Timeline) FindActivity(activityID string) (int, *Activity) {
	for dayIndex := range t.Days {
		for i := range t.Days[dayIndex].Activities {
			if t.Days[dayIndex].Activities[i].ID == activityID {
				return dayIndex, &t.Days[dayIndex].Activities[i]
			}
		}
	}
	return -1, nil
}

// MoveActivity moves an activity between days (or re-times it within one day),
// re-sorts the target day by start time, and recomputes the affected day
// totals. newStartTime is optional; pass "" to keep the activity's time.
// Unknown activity IDs and out-of-range day indexes are ignored.
func (t *Timeline) MoveActivity(activityID string, fromDayIndex, toDayIndex int, newStartTime string) {
	if fromDayIndex < 0 || fromDayIndex >= len(t.Days) ||
		toDayIndex < 0 || toDayIndex >= len(t.Days) {
		return
	}

	sourceDay := &t.Days[fromDayIndex]

	activityIndex := -1
	for i := range sourceDay.Activities {
		if sourceDay.Activities[i].ID == activityID {
			activityIndex = i
			break
		}
	}
	if activityIndex == -1 {
		return
	}

	moved := sourceDay.Activities[activityIndex]
	sourceDay.Activities = append(sourceDay.Activities[:activityIndex], sourceDay.Activities[activityIndex+1:]...)

	if newStartTime != "" {
		moved.StartTime = newStartTime
	}

	targetDay := &t.Days[toDayIndex]
	targetDay.Activities = append(targetDay.Activities, moved)
	targetDay.sortActivitiesByStartTime()

	sourceDay.RecalculateTotalCost()
	if fromDayIndex != toDayIndex {
		targetDay.RecalculateTotalCost()
	}
}

// UpdateActivityCost updates an activity's estimated cost by ID and recomputes
// the owning day's total. Unknown IDs are ignored.
func (t *Timeline) UpdateActivityCost(activityID string, cost int) {
	dayIndex, activity := t.FindActivity(activityID)
	if activity == nil {
		return
	}

	activity.EstimatedCost = cost
	t.Days[dayIndex].RecalculateTotalCost()
}

// Clone returns a deep copy of the timeline so downstream editors can mutate
// freely without touching the parsed original.
func (t *Timeline) Clone() (*Timeline, error) {
	var copied Timeline
	err := copier.CopyWithOption(&copied, t, copier.Option{IgnoreEmpty: false, DeepCopy: true})
	if err != nil {
		return nil, err
	}
	return &copied, nil
}
