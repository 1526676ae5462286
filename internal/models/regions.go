package models

// JapanRegions is the canonical catalog of selectable travel regions.
// Immutable reference data; callers pick from this list when building
// a region allocation.
var JapanRegions = []Region{
	{
		ID:           "kanto",
		Name:         "Kantō",
		NameJapanese: "関東",
		Description:  "Tokyo, modern culture, and urban experiences",
		Icon:         "🏙️",
		Prefectures:  []string{"Tokyo", "Kanagawa", "Chiba", "Saitama", "Ibaraki", "Tochigi", "Gunma"},
	},
	{
		ID:           "kansai",
		Name:         "Kansai",
		NameJapanese: "関西",
		Description:  "Kyoto, Osaka, traditional culture and history",
		Icon:         "⛩️",
		Prefectures:  []string{"Osaka", "Kyoto", "Hyogo", "Nara", "Wakayama", "Shiga"},
	},
	{
		ID:           "chubu",
		Name:         "Chūbu",
		NameJapanese: "中部",
		Description:  "Mount Fuji, Japanese Alps, and nature",
		Icon:         "🗻",
		Prefectures:  []string{"Aichi", "Gifu", "Shizuoka", "Nagano", "Yamanashi", "Fukui", "Ishikawa", "Toyama", "Niigata"},
	},
	{
		ID:           "tohoku",
		Name:         "Tōhoku",
		NameJapanese: "東北",
		Description:  "Northern beauty, hot springs, and festivals",
		Icon:         "🌸",
		Prefectures:  []string{"Aomori", "Iwate", "Miyagi", "Akita", "Yamagata", "Fukushima"},
	},
	{
		ID:           "kyushu",
		Name:         "Kyūshū",
		NameJapanese: "九州",
		Description:  "Southern islands, hot springs, and unique culture",
		Icon:         "🌺",
		Prefectures:  []string{"Fukuoka", "Saga", "Nagasaki", "Kumamoto", "Oita", "Miyazaki", "Kagoshima"},
	},
	{
		ID:           "hokkaido",
		Name:         "Hokkaidō",
		NameJapanese: "北海道",
		Description:  "Snow, skiing, fresh seafood, and wilderness",
		Icon:         "❄️",
		Prefectures:  []string{"Hokkaido"},
	},
}

// TravelStyles is the canonical catalog of travel styles
var TravelStyles = []TravelStyle{
	{
		ID:           TravelStyleTraditional,
		Name:         "Traditional",
		NameJapanese: "伝統的",
		Description:  "Temples, tea ceremonies, and classical culture",
		Icon:         "🏮",
	},
	{
		ID:           TravelStyleModern,
		Name:         "Modern",
		NameJapanese: "現代的",
		Description:  "Technology, pop culture, and urban exploration",
		Icon:         "🎌",
	},
	{
		ID:           TravelStyleNature,
		Name:         "Nature",
		NameJapanese: "自然",
		Description:  "Mountains, forests, and outdoor adventures",
		Icon:         "🍃",
	},
	{
		ID:           TravelStyleSpiritual,
		Name:         "Spiritual",
		NameJapanese: "精神的",
		Description:  "Meditation, temples, and inner peace",
		Icon:         "🧘",
	},
	{
		ID:           TravelStyleFoodie,
		Name:         "Culinary",
		NameJapanese: "料理",
		Description:  "Local cuisine, street food, and dining experiences",
		Icon:         "🍜",
	},
	{
		ID:           TravelStyleRyokan,
		Name:         "Ryokan",
		NameJapanese: "旅館",
		Description:  "Traditional inns, hot springs, and hospitality",
		Icon:         "🏯",
	},
}

// Seasons is the canonical catalog of travel seasons
var Seasons = []Season{
	{
		ID:           SeasonSpring,
		Name:         "Spring",
		NameJapanese: "春",
		Description:  "Cherry blossoms and mild weather",
		Highlights:   []string{"Sakura viewing", "Hanami parties", "Perfect temperatures"},
	},
	{
		ID:           SeasonSummer,
		Name:         "Summer",
		NameJapanese: "夏",
		Description:  "Festivals and beach season",
		Highlights:   []string{"Matsuri festivals", "Fireworks", "Beach activities"},
	},
	{
		ID:           SeasonAutumn,
		Name:         "Autumn",
		NameJapanese: "秋",
		Description:  "Fall foliage and comfortable weather",
		Highlights:   []string{"Koyo viewing", "Harvest season", "Clear skies"},
	},
	{
		ID:           SeasonWinter,
		Name:         "Winter",
		NameJapanese: "冬",
		Description:  "Snow festivals and hot springs",
		Highlights:   []string{"Snow festivals", "Onsen season", "Winter illuminations"},
	},
}

// RegionByID looks up a region in the canonical catalog
func RegionByID(id string) (Region, bool) {
	for _, region := range JapanRegions {
		if region.ID == id {
			return region, true
		}
	}
	return Region{}, false
}

// TravelStyleByID looks up a travel style in the canonical catalog
func TravelStyleByID(id string) (TravelStyle, bool) {
	for _, style := range TravelStyles {
		if style.ID == id {
			return style, true
		}
	}
	return TravelStyle{}, false
}

// SeasonByID looks up a season in the canonical catalog
func SeasonByID(id string) (Season, bool) {
	for _, season := range Seasons {
		if season.ID == id {
			return season, true
		}
	}
	return Season{}, false
}
