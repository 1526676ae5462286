package parser

import (
	"strings"
	"testing"

	"japan-travel-timeline/internal/models"
)

// TestExtractLocationRegionScoping verifies the area lookup is scoped to the
// day's region family, with the union searched when the family is unknown.
func TestExtractLocationRegionScoping(t *testing.T) {
	t.Run("KantoSearchesTokyoTable", func(t *testing.T) {
		loc := extractLocation("Evening in Shibuya", "Kanto")
		if loc.Area != "Shibuya" || loc.Ward != "Shibuya-ku" || loc.Station != "Shibuya Station" {
			t.Errorf("Unexpected location: %+v", loc)
		}
	})

	t.Run("KantoDoesNotSearchKansaiTable", func(t *testing.T) {
		loc := extractLocation("Dreaming of Gion", "Kanto")
		if loc.Area != "Kanto" {
			t.Errorf("Kansai keyword should not match from a Kanto day, got area %s", loc.Area)
		}
	})

	t.Run("KansaiSearchesKansaiTable", func(t *testing.T) {
		loc := extractLocation("Walk through Gion at dusk", "Kansai")
		if loc.Area != "Gion" || loc.Station != "Gion-Shijo Station" {
			t.Errorf("Unexpected location: %+v", loc)
		}
	})

	t.Run("UnknownFamilySearchesUnion", func(t *testing.T) {
		tokyoLoc := extractLocation("Morning in Akihabara", "Chubu")
		if tokyoLoc.Area != "Akihabara" {
			t.Errorf("Union lookup missed Tokyo area, got %s", tokyoLoc.Area)
		}

		kansaiLoc := extractLocation("Neon lights of Dotonbori", "Chubu")
		if kansaiLoc.Area != "Dotonbori" {
			t.Errorf("Union lookup missed Kansai area, got %s", kansaiLoc.Area)
		}
	})
}

// TestExtractLocationFallback verifies the region-name fallback with its
// synthesized station.
func TestExtractLocationFallback(t *testing.T) {
	loc := extractLocation("A quiet afternoon somewhere", "Kansai")

	if loc.Name != "Kansai" || loc.Area != "Kansai" {
		t.Errorf("Fallback should use the region name, got %+v", loc)
	}
	if loc.Station != "Kansai Station" {
		t.Errorf("Fallback station %s, want Kansai Station", loc.Station)
	}
	if loc.Ward != "" {
		t.Errorf("Fallback should carry no ward, got %s", loc.Ward)
	}
}

// TestExtractLocationTableOrder verifies that when a line matches several
// keywords, the earliest table entry wins, keeping parses deterministic.
func TestExtractLocationTableOrder(t *testing.T) {
	loc := extractLocation("From Ginza walk over to Asakusa", "Kanto")

	// ginza precedes asakusa in the Tokyo table
	if loc.Area != "Ginza" {
		t.Errorf("Expected first table entry (Ginza) to win, got %s", loc.Area)
	}
}

// TestDetectTransportMethod verifies long-distance vs local inference
func TestDetectTransportMethod(t *testing.T) {
	t.Run("TokyoKyotoCrossing", func(t *testing.T) {
		for _, pair := range [][2]string{{"Tokyo", "Kyoto"}, {"Kyoto", "Tokyo"}} {
			method := detectTransportMethod(pair[0], pair[1])
			if method.Type != models.TransportTypeShinkansen {
				t.Errorf("%s→%s type %s, want shinkansen", pair[0], pair[1], method.Type)
			}
			if method.Duration != 160 || method.Cost != 13000 {
				t.Errorf("%s→%s duration/cost %d/%d, want 160/13000", pair[0], pair[1], method.Duration, method.Cost)
			}
			if !strings.Contains(method.Instructions, pair[0]) || !strings.Contains(method.Instructions, pair[1]) {
				t.Errorf("Instructions should name both endpoints: %s", method.Instructions)
			}
		}
	})

	t.Run("LocalTransit", func(t *testing.T) {
		method := detectTransportMethod("Shibuya", "Asakusa")
		if method.Type != models.TransportTypeTrain {
			t.Errorf("Local hop type %s, want train", method.Type)
		}
		if method.Line != "JR Yamanote Line" {
			t.Errorf("Local hop line %s, want JR Yamanote Line", method.Line)
		}
		if method.Duration != 20 || method.Cost != 200 {
			t.Errorf("Local hop duration/cost %d/%d, want 20/200", method.Duration, method.Cost)
		}
	})
}
