package parser

import "japan-travel-timeline/internal/models"

// RegionForDay resolves which region a 1-based day number falls in, walking
// the ordered allocation and accumulating prior regions' day counts. A day
// number past the end of the allocation resolves to the first region rather
// than failing, keeping the parser total. Returns a zero Region only when the
// allocation itself is empty.
func RegionForDay(dayNumber int, regions []models.RegionDays) models.Region {
	if len(regions) == 0 {
		return models.Region{}
	}

	totalDaysProcessed := 0
	for _, allocation := range regions {
		if dayNumber <= totalDaysProcessed+allocation.Days {
			return allocation.Region
		}
		totalDaysProcessed += allocation.Days
	}

	return regions[0].Region
}
