package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"japan-travel-timeline/internal/models"
)

// defaultStartTime is what extractTime returns when the text carries no
// recognizable time. The extractor treats this value as "no explicit time"
// and substitutes a synthetic slot.
const defaultStartTime = "09:00"

// timePattern matches "H:MM" / "HH:MM" or "H AM"/"H pm" anywhere in a line
var timePattern = regexp.MustCompile(`(\d{1,2}):(\d{2})|(\d{1,2})\s*(AM|PM|am|pm)`)

// costPattern matches an explicit yen amount like "¥500" or "¥1,200"
var costPattern = regexp.MustCompile(`¥\s*([0-9][0-9,]*)`)

// Classifier keyword tables. Priority order within detectActivityType is the
// contract: meal beats transport beats accommodation beats experience; the
// first category whose keyword set matches wins, and attraction is the
// default. Checks are plain case-insensitive substring matches.
var (
	mealKeywords          = []string{"meal", "dinner", "lunch", "breakfast", "restaurant", "food"}
	transportKeywords     = []string{"transport", "train", "travel", "shinkansen"}
	accommodationKeywords = []string{"hotel", "ryokan", "accommodation", "check-in"}
	experienceKeywords    = []string{"ceremony", "experience", "tour"}
)

// containsAny reports whether text contains any of the given keywords.
// Callers are expected to pass already-lowercased text.
func containsAny(lowerText string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lowerText, keyword) {
			return true
		}
	}
	return false
}

// detectActivityType classifies a line of activity text into one of the
// closed activity types.
func detectActivityType(text string) string {
	lowerText := strings.ToLower(text)

	if containsAny(lowerText, mealKeywords) {
		return models.ActivityTypeMeal
	}
	if containsAny(lowerText, transportKeywords) {
		return models.ActivityTypeTransport
	}
	if containsAny(lowerText, accommodationKeywords) {
		return models.ActivityTypeAccommodation
	}
	if containsAny(lowerText, experienceKeywords) {
		return models.ActivityTypeExperience
	}
	return models.ActivityTypeAttraction
}

// estimateDuration estimates how long an activity takes, in minutes,
// from keywords in its text.
func estimateDuration(text string) int {
	lowerText := strings.ToLower(text)

	switch {
	case containsAny(lowerText, []string{"meal", "dinner", "lunch", "breakfast"}):
		return 60
	case containsAny(lowerText, []string{"temple", "shrine", "museum"}):
		return 120
	case containsAny(lowerText, []string{"walk", "stroll"}):
		return 90
	case containsAny(lowerText, []string{"experience", "ceremony"}):
		return 180
	default:
		return 120
	}
}

// estimateCost estimates an activity's cost in yen. An explicit yen amount
// in the text wins outright; otherwise the estimate comes from the activity
// type and keyword tables.
func estimateCost(text, activityType string) int {
	if match := costPattern.FindStringSubmatch(text); match != nil {
		amount, err := strconv.Atoi(strings.ReplaceAll(match[1], ",", ""))
		if err == nil {
			return amount
		}
	}

	lowerText := strings.ToLower(text)

	switch activityType {
	case models.ActivityTypeMeal:
		if containsAny(lowerText, []string{"expensive", "fine dining"}) {
			return 8000
		}
		if containsAny(lowerText, []string{"cheap", "street food"}) {
			return 1000
		}
		return 3000 // average meal
	case models.ActivityTypeTransport:
		if strings.Contains(lowerText, "shinkansen") {
			return 8000
		}
		if strings.Contains(lowerText, "train") {
			return 500
		}
		return 300
	case models.ActivityTypeAccommodation:
		if containsAny(lowerText, []string{"luxury", "ryokan"}) {
			return 15000
		}
		return 8000
	case models.ActivityTypeExperience:
		return 2000
	case models.ActivityTypeAttraction:
		if strings.Contains(lowerText, "free") {
			return 0
		}
		return 1500
	default:
		return 1000
	}
}

// activityIcon picks a display icon for an activity, keyed first on specific
// nouns in the text, then on the activity type's default.
func activityIcon(activityType, text string) string {
	lowerText := strings.ToLower(text)

	switch activityType {
	case models.ActivityTypeMeal:
		if strings.Contains(lowerText, "sushi") {
			return "🍣"
		}
		if strings.Contains(lowerText, "ramen") {
			return "🍜"
		}
		if strings.Contains(lowerText, "tempura") {
			return "🍤"
		}
		if strings.Contains(lowerText, "tea") {
			return "🍵"
		}
		return "🍽️"
	case models.ActivityTypeTransport:
		if strings.Contains(lowerText, "shinkansen") {
			return "🚄"
		}
		if strings.Contains(lowerText, "train") {
			return "🚃"
		}
		return "🚌"
	case models.ActivityTypeAccommodation:
		if strings.Contains(lowerText, "ryokan") {
			return "🏯"
		}
		return "🏨"
	case models.ActivityTypeExperience:
		if strings.Contains(lowerText, "tea ceremony") {
			return "🍵"
		}
		if strings.Contains(lowerText, "meditation") {
			return "🧘"
		}
		return "✨"
	case models.ActivityTypeAttraction:
		if strings.Contains(lowerText, "temple") {
			return "⛩️"
		}
		if strings.Contains(lowerText, "shrine") {
			return "🏮"
		}
		if strings.Contains(lowerText, "castle") {
			return "🏯"
		}
		if strings.Contains(lowerText, "garden") {
			return "🌸"
		}
		if strings.Contains(lowerText, "mountain") || strings.Contains(lowerText, "fuji") {
			return "🗻"
		}
		if strings.Contains(lowerText, "market") {
			return "🏪"
		}
		if strings.Contains(lowerText, "museum") {
			return "🏛️"
		}
		return "📍"
	default:
		return "📍"
	}
}

// extractTime scans a line for an embedded time and normalizes it to 24-hour
// HH:MM. Handles "14:30", "9:00", "9 AM", "12pm". Returns defaultStartTime
// when no time is present.
func extractTime(text string) string {
	match := timePattern.FindStringSubmatch(text)
	if match == nil {
		return defaultStartTime
	}

	if match[1] != "" && match[2] != "" {
		hour, err := strconv.Atoi(match[1])
		if err != nil {
			return defaultStartTime
		}
		return fmt.Sprintf("%02d:%s", hour, match[2])
	}

	if match[3] != "" && match[4] != "" {
		hour, err := strconv.Atoi(match[3])
		if err != nil {
			return defaultStartTime
		}

		isPM := strings.EqualFold(match[4], "pm")
		if isPM && hour != 12 {
			hour += 12
		}
		if !isPM && hour == 12 {
			hour = 0
		}
		return fmt.Sprintf("%02d:00", hour)
	}

	return defaultStartTime
}
