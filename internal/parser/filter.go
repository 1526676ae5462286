package parser

import "strings"

// boringAdminPhrases is the closed set of phrases marking boilerplate admin
// tasks and introduction prose that the generator tends to emit around the
// actual itinerary. Substring matches only; intentionally narrow so genuine
// activities that merely mention similar words survive. The list is a known
// tradeoff (an attraction literally named "Suica Card Museum" would be
// dropped) and must stay literal for reproducible behavior.
var boringAdminPhrases = []string{
	// boring admin tasks
	"purchase a suica card", "purchase suica card", "buy a suica card", "buy suica card",
	"purchase a pasmo card", "purchase pasmo card", "buy a pasmo card", "buy pasmo card",
	"check into hotel", "hotel check-in", "check in to hotel",
	"collect luggage", "pick up luggage", "luggage collection",
	"airport transfer", "transfer to hotel", "travel to hotel from airport",
	"purchase sim card", "buy sim card", "activate sim card",
	"rent pocket wifi", "get pocket wifi",
	"currency exchange", "exchange money", "withdraw cash from atm",
	"immigration and customs", "clear customs", "customs clearance",
	// introduction / summary prose
	"this itinerary assumes", "all costs are estimates", "adjust activities based on",
	"jr pass will be cost-effective", "purchase in advance",
}

// introPhrases are looser markers checked only against whole raw lines, where
// a match almost always means generator preamble rather than an activity.
var introPhrases = []string{
	"this itinerary",
	"adjust activities",
	"jr pass",
	"all costs are estimates",
	"purchase in advance",
}

// isBoringAdminTask reports whether text matches the closed admin/intro
// phrase list.
func isBoringAdminTask(text string) bool {
	lowerText := strings.ToLower(text)

	for _, phrase := range boringAdminPhrases {
		if strings.Contains(lowerText, phrase) {
			return true
		}
	}
	return false
}

// SkipLine reports whether a raw itinerary line is noise that should never
// reach the extractor: blank or near-blank lines, markdown headings and bold
// markers, and generator preamble. Rules apply in order; any match skips.
func SkipLine(line string) bool {
	trimmed := strings.TrimSpace(line)

	if trimmed == "" || len(trimmed) < 5 {
		return true
	}

	if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "**") {
		return true
	}

	lowerLine := strings.ToLower(trimmed)
	for _, phrase := range introPhrases {
		if strings.Contains(lowerLine, phrase) {
			return true
		}
	}

	return isBoringAdminTask(trimmed)
}
