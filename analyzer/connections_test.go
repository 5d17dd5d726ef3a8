package analyzer

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/jaidevxr/instagram-wrapped/model"
)

func followerEntry(ts int64) string {
	return fmt.Sprintf(`{"string_list_data":[{"value":"someone","timestamp":%d}]}`, ts)
}

func TestAnalyzeConnections(t *testing.T) {
	in2025 := time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local).Unix()
	in2023 := time.Date(2023, 2, 1, 0, 0, 0, 0, time.Local).Unix()

	followers := []model.ClassifiedRecord{
		{
			Category: model.CategoryFollowers,
			Content: json.RawMessage(fmt.Sprintf(`[%s,%s,%s]`,
				followerEntry(in2025), followerEntry(in2025), followerEntry(in2023))),
		},
	}
	following := []model.ClassifiedRecord{
		{
			Category: model.CategoryFollowing,
			Content: json.RawMessage(fmt.Sprintf(`{"relationships_following":[%s,%s]}`,
				followerEntry(in2023), followerEntry(in2023))),
		},
	}

	stats := analyzeConnections(followers, following, 2025)

	if stats.Followers != 3 {
		t.Errorf("Followers = %d, want 3 (snapshot totals ignore the year)", stats.Followers)
	}
	if stats.NewFollowers != 2 {
		t.Errorf("NewFollowers = %d, want 2", stats.NewFollowers)
	}
	if stats.Following != 2 {
		t.Errorf("Following = %d, want 2", stats.Following)
	}
	if stats.Mutuals != 2 {
		t.Errorf("Mutuals = %d, want min(3,2) = 2", stats.Mutuals)
	}
	if stats.NetGrowth != stats.NewFollowers {
		t.Errorf("NetGrowth = %d, want %d", stats.NetGrowth, stats.NewFollowers)
	}
	if stats.Unfollowers != 0 {
		t.Errorf("Unfollowers = %d, want 0 (no removal history in the data)", stats.Unfollowers)
	}
}

func TestAnalyzeConnections_Empty(t *testing.T) {
	stats := analyzeConnections(nil, nil, 2025)
	if stats != (model.ConnectionStats{}) {
		t.Errorf("empty input produced %+v, want zero values", stats)
	}
}
