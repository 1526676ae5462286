package parser

import (
	"fmt"
	"strings"

	"japan-travel-timeline/internal/models"
)

// areaEntry is one row of the known-area lookup tables. Tables are ordered
// slices, not maps: when a line matches several keywords the first entry in
// table order wins, so classification stays deterministic.
type areaEntry struct {
	keyword string
	area    string
	station string
	ward    string
}

// tokyoAreas maps lowercase keywords to well-known Tokyo areas
var tokyoAreas = []areaEntry{
	{keyword: "shibuya", area: "Shibuya", station: "Shibuya Station", ward: "Shibuya-ku"},
	{keyword: "shinjuku", area: "Shinjuku", station: "Shinjuku Station", ward: "Shinjuku-ku"},
	{keyword: "harajuku", area: "Harajuku", station: "Harajuku Station", ward: "Shibuya-ku"},
	{keyword: "ginza", area: "Ginza", station: "Ginza Station", ward: "Chuo-ku"},
	{keyword: "asakusa", area: "Asakusa", station: "Asakusa Station", ward: "Taito-ku"},
	{keyword: "ueno", area: "Ueno", station: "Ueno Station", ward: "Taito-ku"},
	{keyword: "akihabara", area: "Akihabara", station: "Akihabara Station", ward: "Chiyoda-ku"},
	{keyword: "tokyo station", area: "Marunouchi", station: "Tokyo Station", ward: "Chiyoda-ku"},
	{keyword: "roppongi", area: "Roppongi", station: "Roppongi Station", ward: "Minato-ku"},
	{keyword: "tsukiji", area: "Tsukiji", station: "Tsukiji Station", ward: "Chuo-ku"},
}

// kansaiAreas maps lowercase keywords to well-known Kyoto/Osaka areas
var kansaiAreas = []areaEntry{
	{keyword: "gion", area: "Gion", station: "Gion-Shijo Station", ward: "Higashiyama-ku"},
	{keyword: "arashiyama", area: "Arashiyama", station: "Arashiyama Station", ward: "Ukyo-ku"},
	{keyword: "fushimi", area: "Fushimi", station: "Fushimi-Inari Station", ward: "Fushimi-ku"},
	{keyword: "kiyomizu", area: "Higashiyama", station: "Kiyomizu-Gojo Station", ward: "Higashiyama-ku"},
	{keyword: "dotonbori", area: "Dotonbori", station: "Namba Station", ward: "Chuo-ku"},
	{keyword: "namba", area: "Namba", station: "Namba Station", ward: "Chuo-ku"},
	{keyword: "osaka castle", area: "Osaka Castle", station: "Osakajokoen Station", ward: "Chuo-ku"},
	{keyword: "umeda", area: "Umeda", station: "Umeda Station", ward: "Kita-ku"},
}

// extractLocation derives a location descriptor for activity text. The lookup
// is scoped to the current day's region family: Kanto days search the Tokyo
// table, Kansai days the Kansai table, anything else the union of both. When
// nothing matches, the descriptor falls back to the region itself with a
// synthesized "<Region> Station" station.
func extractLocation(text, regionName string) models.TransportLocation {
	lowerText := strings.ToLower(text)
	lowerRegion := strings.ToLower(regionName)

	var tables [][]areaEntry
	switch {
	case strings.Contains(lowerRegion, "kanto"):
		tables = [][]areaEntry{tokyoAreas}
	case strings.Contains(lowerRegion, "kansai"):
		tables = [][]areaEntry{kansaiAreas}
	default:
		tables = [][]areaEntry{tokyoAreas, kansaiAreas}
	}

	for _, table := range tables {
		for _, entry := range table {
			if strings.Contains(lowerText, entry.keyword) {
				return models.TransportLocation{
					Name:    entry.area,
					Area:    entry.area,
					Ward:    entry.ward,
					Station: entry.station,
				}
			}
		}
	}

	return models.TransportLocation{
		Name:    regionName,
		Area:    regionName,
		Station: regionName + " Station",
	}
}

// isTokyoKyotoCrossing reports whether the two areas sit on opposite sides of
// the Tokyo/Kyoto divide, which implies a shinkansen leg rather than local
// transit.
func isTokyoKyotoCrossing(fromArea, toArea string) bool {
	from := strings.ToLower(fromArea)
	to := strings.ToLower(toArea)

	return (strings.Contains(from, "tokyo") && strings.Contains(to, "kyoto")) ||
		(strings.Contains(from, "kyoto") && strings.Contains(to, "tokyo"))
}

// detectTransportMethod infers how to travel between two consecutive
// activities from their inferred areas. Inter-region hops get the Tokaido
// Shinkansen; everything else a generic Yamanote local leg.
func detectTransportMethod(fromArea, toArea string) models.TransportMethod {
	if isTokyoKyotoCrossing(fromArea, toArea) {
		return models.TransportMethod{
			Type:         models.TransportTypeShinkansen,
			Line:         "Tokaido Shinkansen",
			Duration:     160,
			Cost:         13000,
			Instructions: fmt.Sprintf("Take Tokaido Shinkansen from %s to %s (2h 40min)", fromArea, toArea),
		}
	}

	return models.TransportMethod{
		Type:         models.TransportTypeTrain,
		Line:         "JR Yamanote Line",
		Duration:     20,
		Cost:         200,
		Instructions: fmt.Sprintf("Take train from %s to %s (20 min)", fromArea, toArea),
	}
}
