package parser

import "testing"

// TestSkipLine exercises the skip rules in order: blank/short lines, markdown
// markers, generator preamble, and the admin-phrase list.
func TestSkipLine(t *testing.T) {
	cases := []struct {
		name string
		line string
		want bool
	}{
		{"Empty", "", true},
		{"OnlyWhitespace", "   \t  ", true},
		{"TooShort", "hi", true},
		{"FourChars", "Nara", true},
		{"MarkdownHeading", "# Your Japan Itinerary", true},
		{"BoldMarker", "**Day 1 Highlights**", true},
		{"IntroAssumes", "This itinerary assumes you land at Narita.", true},
		{"IntroAdjust", "Feel free to adjust activities based on weather.", true},
		{"IntroJRPass", "A JR Pass will be cost-effective for this route.", true},
		{"IntroCosts", "All costs are estimates in yen.", true},
		{"AdminSuica", "Purchase a Suica card at the station", true},
		{"AdminCustoms", "Clear customs and immigration", true},
		{"AdminWifi", "Rent pocket wifi at the counter", true},
		{"GenuineActivity", "Visit Senso-ji Temple in Asakusa", false},
		{"GenuineMeal", "• Lunch at a sushi restaurant", false},
		{"DayHeader", "Day 3: Kyoto and Nara", false},
		{"MentionsCardLoosely", "Collect a stamp card at the temple office", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SkipLine(tc.line); got != tc.want {
				t.Errorf("SkipLine(%q) = %v, want %v", tc.line, got, tc.want)
			}
		})
	}
}

// TestIsBoringAdminTask verifies the closed phrase list matches as literal
// substrings, case-insensitively, and nothing more.
func TestIsBoringAdminTask(t *testing.T) {
	boring := []string{
		"Purchase a Suica card",
		"buy SIM card for data",
		"Hotel check-in at 3pm",
		"Withdraw cash from ATM near the exit",
		"Airport transfer via limousine bus",
	}
	for _, text := range boring {
		if !isBoringAdminTask(text) {
			t.Errorf("isBoringAdminTask(%q) = false, want true", text)
		}
	}

	genuine := []string{
		"Visit the Suica penguin statue in Shinjuku", // mentions suica, not the phrase
		"Tour the former customs house museum",
		"Buy souvenirs at the market",
	}
	for _, text := range genuine {
		if isBoringAdminTask(text) {
			t.Errorf("isBoringAdminTask(%q) = true, want false", text)
		}
	}
}
