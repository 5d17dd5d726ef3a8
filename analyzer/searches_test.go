package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jaidevxr/instagram-wrapped/model"
)

func searchEntry(query string, ts int64) string {
	return fmt.Sprintf(`{"string_map_data":{"Search":{"value":%q},"Time":{"timestamp":%d}}}`, query, ts)
}

func searchRecord(entries ...string) model.ClassifiedRecord {
	return model.ClassifiedRecord{
		Category: model.CategorySearches,
		Content:  json.RawMessage(fmt.Sprintf(`{"searches_user":[%s]}`, strings.Join(entries, ","))),
	}
}

func TestAnalyzeSearches(t *testing.T) {
	ts := time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local).Unix()

	records := []model.ClassifiedRecord{searchRecord(
		searchEntry("travelgram", ts),
		searchEntry("travelgram", ts+60),
		searchEntry("foodie", ts+120),
		searchEntry("last_year", time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local).Unix()),
	)}

	stats := analyzeSearches(records, 2025)

	if stats.TotalSearches != 3 {
		t.Errorf("TotalSearches = %d, want 3", stats.TotalSearches)
	}
	if len(stats.TopSearchedAccounts) != 2 || stats.TopSearchedAccounts[0].Account != "travelgram" {
		t.Errorf("TopSearchedAccounts = %+v, want travelgram first", stats.TopSearchedAccounts)
	}
}

func TestAnalyzeSearches_TimestamplessCounted(t *testing.T) {
	records := []model.ClassifiedRecord{{
		Category: model.CategorySearches,
		Content:  json.RawMessage(`{"searches_user":[{"string_map_data":{"Search":{"value":"nodate"}}}]}`),
	}}

	stats := analyzeSearches(records, 2025)
	if stats.TotalSearches != 1 {
		t.Errorf("TotalSearches = %d, want 1 (no timestamp means no year filter)", stats.TotalSearches)
	}
}

func TestAnalyzeSearches_Personality(t *testing.T) {
	ts := time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local).Unix()

	t.Run("Loyal follower when one query dominates", func(t *testing.T) {
		records := []model.ClassifiedRecord{searchRecord(
			searchEntry("bestie", ts),
			searchEntry("bestie", ts+1),
			searchEntry("other", ts+2),
		)}
		if got := analyzeSearches(records, 2025).SearchPersonality; got != "Loyal Follower 💍" {
			t.Errorf("SearchPersonality = %q, want Loyal Follower", got)
		}
	})

	t.Run("Curious mind with five distinct queries", func(t *testing.T) {
		var entries []string
		for i := 0; i < 5; i++ {
			// Four repeats each keep every share at 20%, under the loyal cut.
			for j := 0; j < 4; j++ {
				entries = append(entries, searchEntry(fmt.Sprintf("query%d", i), ts+int64(i*10+j)))
			}
		}
		if got := analyzeSearches([]model.ClassifiedRecord{searchRecord(entries...)}, 2025).SearchPersonality; got != "Curious Mind 🧠" {
			t.Errorf("SearchPersonality = %q, want Curious Mind", got)
		}
	})

	t.Run("Explorer default", func(t *testing.T) {
		if got := analyzeSearches(nil, 2025).SearchPersonality; got != "Explorer 🔍" {
			t.Errorf("SearchPersonality = %q, want Explorer default", got)
		}
	})
}
