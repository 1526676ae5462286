// Package parser converts free-form itinerary text produced by a generative
// model into a structured timeline of days and activities. The upstream text
// has no guaranteed schema, so everything here is best-effort heuristic
// recovery: unrecognized lines are dropped, missing day headers are bridged by
// auto-advance, and the reconciliation pass guarantees the output always holds
// exactly the expected number of days.
package parser

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"japan-travel-timeline/internal/models"
)

const (
	// maxActivitiesPerDay bounds how many activities a single day can
	// accumulate before the scan forces a day boundary. Recovers from
	// source text that never emits day headers.
	maxActivitiesPerDay = 10

	// synthetic time assignment for activities with no detectable time:
	// 09:00 plus two hours per activity already in the day, capped at 23:00
	syntheticStartHour = 9
	syntheticStepHours = 2
	syntheticHourCap   = 23

	// minActivityTextLen is the minimum cleaned-text length for a line to
	// count as a meaningful activity
	minActivityTextLen = 10
)

var (
	// dayHeaderPattern matches "Day 3:", "Day 3 -", or a bare "Day 3"
	dayHeaderPattern = regexp.MustCompile(`(?i)^Day\s*(\d+)(?:\s*[:\-]|$)`)

	// activityCandidatePattern matches lines that reach a letter after any
	// bullet/numbering/time prefix, so "• 9:00 AM - Visit ..." qualifies
	activityCandidatePattern = regexp.MustCompile(`^[•\-*\d+.:\s]*[A-Za-z]`)

	// bulletPrefixPattern strips leading bullet markers, punctuation and
	// stray parentheses. Digits are deliberately not in the class: a leading
	// "9:00 AM" is content the time scan needs, not list decoration.
	bulletPrefixPattern = regexp.MustCompile(`^[•\-*+.()\s]+`)

	// listNumberPattern strips list numbering like "1. " or "2) " left at
	// the front after the bullet strip
	listNumberPattern = regexp.MustCompile(`^\d+[.)]\s+`)

	// extraBulletPattern catches a second layer of bullet markers left
	// behind after the first strip
	extraBulletPattern = regexp.MustCompile(`^\s*[-•*]\s*`)

	// parenthesizedPattern removes parenthesized substrings when deriving
	// an activity's display name
	parenthesizedPattern = regexp.MustCompile(`\([^)]*\)`)
)

// scanState carries the extractor's state across lines of one parse
type scanState struct {
	params           models.TripParameters
	daysMap          map[int]*models.Day
	currentDayNumber int

	// stats for the end-of-parse summary
	headerCount   int
	activityCount int
	skippedCount  int

	logger zerolog.Logger
}

// Parse converts raw itinerary text plus trip parameters into a Timeline. It
// never fails: malformed or unexpected input degrades to fewer activities,
// and the result always contains exactly params.TotalDuration days numbered
// 1..TotalDuration in ascending order. Same input always yields the same
// output, so retries are safe and calls are safe to run concurrently.
func Parse(text string, params models.TripParameters) *models.Timeline {
	logger := log.With().
		Str("parse_id", uuid.NewString()).
		Int("expected_days", params.TotalDuration).
		Logger()

	state := &scanState{
		params:           params,
		daysMap:          make(map[int]*models.Day),
		currentDayNumber: 1,
		logger:           logger,
	}

	lines := strings.Split(text, "\n")
	logger.Debug().Int("lines", len(lines)).Msg("Parsing itinerary text")

	for _, line := range lines {
		state.processLine(strings.TrimSpace(line))
	}

	days := state.reconcileDays()

	logger.Info().
		Int("headers", state.headerCount).
		Int("activities", state.activityCount).
		Int("skipped", state.skippedCount).
		Int("days", len(days)).
		Msg("Parsed itinerary")

	return &models.Timeline{
		Days:          days,
		TotalDuration: params.TotalDuration,
		Regions:       params.Regions,
		TravelStyle:   params.TravelStyle,
		Season:        params.Season,
	}
}

// processLine feeds one trimmed line through the filter, the day-header test,
// and the activity-candidate test, in that order.
func (s *scanState) processLine(line string) {
	if line == "" {
		return
	}

	if SkipLine(line) {
		s.skippedCount++
		s.logger.Debug().Str("line", truncate(line, 50)).Msg("Skipping line")
		return
	}

	if dayMatch := dayHeaderPattern.FindStringSubmatch(line); dayMatch != nil {
		s.handleDayHeader(line, dayMatch[1])
		return
	}

	if activityCandidatePattern.MatchString(line) {
		s.handleActivityLine(line)
	}
}

// handleDayHeader switches the scan to the day named by a header line. An
// out-of-range day number is logged and ignored; prior state stays intact.
// The header line itself is fully consumed either way.
func (s *scanState) handleDayHeader(line, numberText string) {
	s.headerCount++

	detectedDayNumber, err := strconv.Atoi(numberText)
	if err != nil || detectedDayNumber < 1 || detectedDayNumber > s.params.TotalDuration {
		s.logger.Warn().
			Str("header", truncate(line, 50)).
			Int("day", detectedDayNumber).
			Msgf("Ignoring day header outside range 1-%d", s.params.TotalDuration)
		return
	}

	s.currentDayNumber = detectedDayNumber
	s.getOrCreateDay(detectedDayNumber)
	s.logger.Debug().Int("day", detectedDayNumber).Msg("Found day header")
}

// handleActivityLine cleans a candidate line and, if it survives the
// defensive filters, builds an Activity and appends it to the current day.
func (s *scanState) handleActivityLine(line string) {
	// Re-check the admin filter against the raw line; the cleaned text gets
	// its own check below since stripping bullets can expose a phrase.
	if isBoringAdminTask(line) {
		s.skippedCount++
		s.logger.Debug().Str("line", truncate(line, 50)).Msg("Skipping admin task (raw)")
		return
	}

	cleaned := bulletPrefixPattern.ReplaceAllString(line, "")
	cleaned = listNumberPattern.ReplaceAllString(cleaned, "")
	cleaned = extraBulletPattern.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	if isBoringAdminTask(cleaned) {
		s.skippedCount++
		s.logger.Debug().Str("line", truncate(cleaned, 50)).Msg("Skipping admin task (cleaned)")
		return
	}

	if len(cleaned) <= minActivityTextLen {
		return
	}

	day := s.getOrCreateDay(s.currentDayNumber)
	activity := s.buildActivity(cleaned, day)

	day.Activities = append(day.Activities, activity)
	day.RecalculateTotalCost()
	s.activityCount++

	s.logger.Debug().
		Int("day", s.currentDayNumber).
		Str("activity", truncate(cleaned, 50)).
		Str("type", activity.Type).
		Msg("Added activity")

	// Force a day boundary once a day fills up, so text without usable day
	// headers still spreads across the trip.
	if len(day.Activities) >= maxActivitiesPerDay && s.currentDayNumber < s.params.TotalDuration {
		s.logger.Debug().
			Int("from_day", s.currentDayNumber).
			Int("activities", len(day.Activities)).
			Msg("Auto-advancing to next day")
		s.currentDayNumber++
	}
}

// buildActivity assembles an Activity record from cleaned text, applying the
// lexical classifiers and linking transport from the previous activity.
func (s *scanState) buildActivity(cleaned string, day *models.Day) models.Activity {
	activityType := detectActivityType(cleaned)
	duration := estimateDuration(cleaned)
	cost := estimateCost(cleaned, activityType)
	icon := activityIcon(activityType, cleaned)

	startTime := extractTime(cleaned)
	if startTime == defaultStartTime {
		startTime = syntheticTime(len(day.Activities))
	}

	currentLocation := extractLocation(cleaned, day.Region.Name)

	var transportMethod *models.TransportMethod
	if len(day.Activities) > 0 {
		previous := day.Activities[len(day.Activities)-1]
		if previous.CurrentLocation != nil {
			method := detectTransportMethod(previous.CurrentLocation.Area, currentLocation.Area)
			transportMethod = &method
		}
	}

	locationText := currentLocation.Ward
	if locationText == "" {
		locationText = currentLocation.Name
	}

	return models.Activity{
		ID:              models.ActivityID(s.currentDayNumber, len(day.Activities)),
		Name:            strings.TrimSpace(parenthesizedPattern.ReplaceAllString(cleaned, "")),
		Description:     cleaned,
		StartTime:       startTime,
		Duration:        duration,
		Type:            activityType,
		Icon:            icon,
		EstimatedCost:   cost,
		Location:        fmt.Sprintf("%s, %s", currentLocation.Area, locationText),
		CurrentLocation: &currentLocation,
		TransportMethod: transportMethod,
	}
}

// getOrCreateDay returns the Day for a day number, creating it lazily with
// its region resolved from the allocation.
func (s *scanState) getOrCreateDay(dayNumber int) *models.Day {
	if day, exists := s.daysMap[dayNumber]; exists {
		return day
	}

	region := RegionForDay(dayNumber, s.params.Regions)
	day := &models.Day{
		DayNumber:  dayNumber,
		Region:     region,
		Activities: []models.Activity{},
	}
	s.daysMap[dayNumber] = day

	s.logger.Debug().Int("day", dayNumber).Str("region", region.Name).Msg("Created day")
	return day
}

// reconcileDays is the final gate: exactly one Day per number in
// 1..TotalDuration, ascending, with empty region-tagged days filling any gap
// and anything outside the range discarded.
func (s *scanState) reconcileDays() []models.Day {
	days := make([]models.Day, 0, s.params.TotalDuration)

	for dayNumber := 1; dayNumber <= s.params.TotalDuration; dayNumber++ {
		if day, exists := s.daysMap[dayNumber]; exists {
			days = append(days, *day)
			continue
		}

		days = append(days, models.Day{
			DayNumber:  dayNumber,
			Region:     RegionForDay(dayNumber, s.params.Regions),
			Activities: []models.Activity{},
		})
		s.logger.Debug().Int("day", dayNumber).Msg("Synthesized empty day")
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].DayNumber < days[j].DayNumber
	})

	return days
}

// syntheticTime assigns a start time for an activity with no detectable time:
// two-hour slots from 09:00, capped at 23:00.
func syntheticTime(activitiesInDay int) string {
	hour := syntheticStartHour + activitiesInDay*syntheticStepHours
	if hour > syntheticHourCap {
		hour = syntheticHourCap
	}
	return fmt.Sprintf("%02d:00", hour)
}

// truncate shortens log output for long lines
func truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return text[:max] + "..."
}
