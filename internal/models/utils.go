package models

import (
	"fmt"
	"strings"
)

// ActivityID creates a deterministic ID for an activity from its day number and
// its index within the day at insertion time. Unique within a day without any
// global registry, and stable across parses of the same text.
func ActivityID(dayNumber, index int) string {
	return fmt.Sprintf("activity-%d-%d", dayNumber, index)
}

// ValidateActivityType checks if the activity type is valid
func ValidateActivityType(activityType string) bool {
	validTypes := []string{
		ActivityTypeAttraction,
		ActivityTypeMeal,
		ActivityTypeTransport,
		ActivityTypeAccommodation,
		ActivityTypeExperience,
	}

	for _, validType := range validTypes {
		if activityType == validType {
			return true
		}
	}
	return false
}

// ValidateTransportType checks if the transport method type is valid
func ValidateTransportType(transportType string) bool {
	validTypes := []string{
		TransportTypeWalk,
		TransportTypeTrain,
		TransportTypeSubway,
		TransportTypeBus,
		TransportTypeTaxi,
		TransportTypeShinkansen,
		TransportTypeFerry,
	}

	for _, validType := range validTypes {
		if transportType == validType {
			return true
		}
	}
	return false
}

// ValidateTravelStyleID checks if the travel style ID is valid
func ValidateTravelStyleID(styleID string) bool {
	validIDs := []string{
		TravelStyleTraditional,
		TravelStyleModern,
		TravelStyleNature,
		TravelStyleSpiritual,
		TravelStyleFoodie,
		TravelStyleRyokan,
	}

	for _, validID := range validIDs {
		if styleID == validID {
			return true
		}
	}
	return false
}

// ValidateSeasonID checks if the season ID is valid
func ValidateSeasonID(seasonID string) bool {
	validIDs := []string{
		SeasonSpring,
		SeasonSummer,
		SeasonAutumn,
		SeasonWinter,
		SeasonAny,
	}

	for _, validID := range validIDs {
		if seasonID == validID {
			return true
		}
	}
	return false
}

// GetActivityTypeDisplayName returns a human-readable name for an activity type
func GetActivityTypeDisplayName(activityType string) string {
	displayNames := map[string]string{
		ActivityTypeAttraction:    "Attraction",
		ActivityTypeMeal:          "Meal",
		ActivityTypeTransport:     "Transport",
		ActivityTypeAccommodation: "Accommodation",
		ActivityTypeExperience:    "Experience",
	}

	if displayName, exists := displayNames[activityType]; exists {
		return displayName
	}

	return activityType
}

// FormatDuration formats a duration in minutes for display, e.g. "45 min" or "2h 40m"
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}

	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatYen formats a yen amount for display, e.g. "¥1,500"
func FormatYen(amount int) string {
	s := fmt.Sprintf("%d", amount)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return "¥" + strings.Join(parts, ",")
}

// Format formats a transport method for display
func (tm TransportMethod) Format() string {
	if tm.Line == "" {
		return fmt.Sprintf("%s (%s)", tm.Type, FormatDuration(tm.Duration))
	}

	return fmt.Sprintf("%s (%s)", tm.Line, FormatDuration(tm.Duration))
}
