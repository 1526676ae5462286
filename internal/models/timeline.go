package models

// Timeline represents the complete parsed itinerary output
type Timeline struct {
	Days          []Day        `json:"days"`
	TotalDuration int          `json:"totalDuration"`
	Regions       []RegionDays `json:"regions"`
	TravelStyle   *TravelStyle `json:"travelStyle,omitempty"`
	Season        *Season      `json:"season,omitempty"`
}

// Day represents one day of the trip with its scheduled activities
type Day struct {
	DayNumber  int        `json:"dayNumber"` // 1-based, contiguous
	Date       string     `json:"date,omitempty"`
	Region     Region     `json:"region"`
	Activities []Activity `json:"activities"`
	TotalCost  int        `json:"totalCost"` // yen, sum of activity costs
}

// Activity represents a single scheduled item within a day
type Activity struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	NameJapanese string `json:"nameJapanese,omitempty"`
	Description  string `json:"description"`

	// Scheduling
	StartTime string `json:"startTime"` // HH:MM format (24-hour)
	Duration  int    `json:"duration"`  // minutes

	// Classification
	Type string `json:"type"` // attraction|meal|transport|accommodation|experience
	Icon string `json:"icon"`

	// Pricing
	EstimatedCost int `json:"estimatedCost,omitempty"` // yen

	// Location & transport
	Location        string             `json:"location,omitempty"` // display string, "Area, Ward"
	CurrentLocation *TransportLocation `json:"currentLocation,omitempty"`
	NextLocation    *TransportLocation `json:"nextLocation,omitempty"`
	TransportMethod *TransportMethod   `json:"transportMethod,omitempty"` // from the previous activity

	Notes string `json:"notes,omitempty"`
}

// TransportLocation describes where an activity takes place
type TransportLocation struct {
	Name         string       `json:"name"`
	NameJapanese string       `json:"nameJapanese,omitempty"`
	Area         string       `json:"area"`              // Shibuya, Asakusa, Gion, etc.
	Ward         string       `json:"ward,omitempty"`    // Shibuya-ku, Taito-ku, etc.
	Station      string       `json:"station,omitempty"` // nearest major station
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
}

// Coordinates represents geographical coordinates
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TransportMethod describes how to get from the previous activity to this one
type TransportMethod struct {
	Type         string `json:"type"`           // walk|train|subway|bus|taxi|shinkansen|ferry
	Line         string `json:"line,omitempty"` // "JR Yamanote Line", "Tokaido Shinkansen"
	Duration     int    `json:"duration"`       // minutes
	Cost         int    `json:"cost"`           // yen
	Instructions string `json:"instructions,omitempty"`
}

// Region represents one of Japan's major travel regions
type Region struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	NameJapanese string   `json:"nameJapanese"`
	Description  string   `json:"description"`
	Icon         string   `json:"icon"`
	Prefectures  []string `json:"prefectures,omitempty"`
}

// RegionDays allocates a number of trip days to a region
type RegionDays struct {
	Region Region `json:"region"`
	Days   int    `json:"days"`
}

// TravelStyle tags the overall character of a trip
type TravelStyle struct {
	ID           string `json:"id"` // traditional|modern|nature|spiritual|foodie|ryokan
	Name         string `json:"name"`
	NameJapanese string `json:"nameJapanese"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
}

// Season tags the time of year a trip takes place
type Season struct {
	ID           string   `json:"id"` // spring|summer|autumn|winter|any
	Name         string   `json:"name"`
	NameJapanese string   `json:"nameJapanese"`
	Description  string   `json:"description"`
	Highlights   []string `json:"highlights,omitempty"`
}

// TripParameters is the caller-supplied input alongside the itinerary text.
// Regions is ordered; the day counts are expected to sum to TotalDuration.
type TripParameters struct {
	Regions       []RegionDays `json:"regions"`
	TotalDuration int          `json:"totalDuration"`
	TravelStyle   *TravelStyle `json:"travelStyle,omitempty"`
	Season        *Season      `json:"season,omitempty"`
}

// Activity type constants
const (
	ActivityTypeAttraction    = "attraction"
	ActivityTypeMeal          = "meal"
	ActivityTypeTransport     = "transport"
	ActivityTypeAccommodation = "accommodation"
	ActivityTypeExperience    = "experience"
)

// Transport method type constants
const (
	TransportTypeWalk       = "walk"
	TransportTypeTrain      = "train"
	TransportTypeSubway     = "subway"
	TransportTypeBus        = "bus"
	TransportTypeTaxi       = "taxi"
	TransportTypeShinkansen = "shinkansen"
	TransportTypeFerry      = "ferry"
)

// Travel style ID constants
const (
	TravelStyleTraditional = "traditional"
	TravelStyleModern      = "modern"
	TravelStyleNature      = "nature"
	TravelStyleSpiritual   = "spiritual"
	TravelStyleFoodie      = "foodie"
	TravelStyleRyokan      = "ryokan"
)

// Season ID constants
const (
	SeasonSpring = "spring"
	SeasonSummer = "summer"
	SeasonAutumn = "autumn"
	SeasonWinter = "winter"
	SeasonAny    = "any"
)
