// Offline smoke tool for the itinerary parser: feeds a sample itinerary (or a
// text file given as the first argument) through Parse and dumps the result.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kr/pretty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"japan-travel-timeline/internal/models"
	"japan-travel-timeline/internal/parser"
)

const sampleItinerary = `# Your 5-Day Japan Itinerary

This itinerary assumes you arrive in Tokyo. All costs are estimates.

Day 1: Tokyo Arrival
• Purchase a Suica card at the airport
• 10:00 AM - Explore Asakusa and Senso-ji Temple (¥500)
• Lunch at a ramen shop in Ueno
• Evening walk through Shibuya Crossing
• Check into hotel in Shinjuku

Day 2: Tokyo
• 9:00 AM - Tsukiji Outer Market street food tour
• Visit the Meiji Shrine (free entry)
• Afternoon in Harajuku and Takeshita Street
• Dinner at a fine dining sushi restaurant in Ginza

Day 3: Travel to Kyoto
• Take the Shinkansen from Tokyo to Kyoto
• Check-in at a luxury ryokan
• Evening stroll through Gion

Day 4: Kyoto
• Morning walk through Arashiyama Bamboo Grove
• Visit Fushimi Inari Shrine
• Traditional tea ceremony experience

Day 5: Kyoto
• Kiyomizu-dera Temple at sunrise
• Nishiki Market food tour
• Shinkansen back to Tokyo
`

func main() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	text := sampleItinerary
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			log.Fatal().Err(err).Msgf("Failed to read itinerary file %s", os.Args[1])
		}
		text = string(data)
	}

	kanto, _ := models.RegionByID("kanto")
	kansai, _ := models.RegionByID("kansai")
	style, _ := models.TravelStyleByID(models.TravelStyleTraditional)
	season, _ := models.SeasonByID(models.SeasonSpring)

	params := models.TripParameters{
		TotalDuration: 5,
		Regions: []models.RegionDays{
			{Region: kanto, Days: 2},
			{Region: kansai, Days: 3},
		},
		TravelStyle: &style,
		Season:      &season,
	}

	timeline := parser.Parse(text, params)

	fmt.Printf("Parsed %d days, trip total %s\n\n", len(timeline.Days), models.FormatYen(timeline.TotalCost()))
	for _, day := range timeline.Days {
		fmt.Printf("Day %d — %s %s: %d activities, %s\n",
			day.DayNumber, day.Region.Icon, day.Region.Name, len(day.Activities), models.FormatYen(day.TotalCost))
		for _, activity := range day.Activities {
			fmt.Printf("  %s %s %s (%s, %s)\n",
				activity.StartTime, activity.Icon, activity.Name,
				models.GetActivityTypeDisplayName(activity.Type), models.FormatYen(activity.EstimatedCost))
		}
	}

	fmt.Println("\nDay 1 in full:")
	pretty.Println(timeline.Days[0])

	timelineJSON, err := json.MarshalIndent(timeline, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal timeline")
	}
	fmt.Printf("\nTimeline JSON (%d bytes)\n%s\n", len(timelineJSON), timelineJSON)
}
