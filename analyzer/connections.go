package analyzer

import (
	"github.com/tidwall/gjson"

	"github.com/jaidevxr/instagram-wrapped/model"
	"github.com/jaidevxr/instagram-wrapped/utils"
)

// analyzeConnections counts the follower/following snapshot. Follower totals
// are unconditional; only the "new followers" counter is year-scoped. The
// export carries no per-account identity that is reliable enough for a real
// intersection, so mutuals is the declared min() approximation and
// unfollowers stays zero.
func analyzeConnections(followers, following []model.ClassifiedRecord, year int) model.ConnectionStats {
	stats := model.ConnectionStats{}

	for _, rec := range followers {
		doc := gjson.ParseBytes(rec.Content)

		items := doc.Get("relationships_followers").Array()
		if len(items) == 0 && doc.IsArray() {
			items = doc.Array()
		}

		for _, item := range items {
			stats.Followers++
			if ts := item.Get("string_list_data.0.timestamp").Int(); ts > 0 && utils.Year(ts) == year {
				stats.NewFollowers++
			}
		}
	}

	for _, rec := range following {
		doc := gjson.ParseBytes(rec.Content)

		items := doc.Get("relationships_following").Array()
		if len(items) == 0 && doc.IsArray() {
			items = doc.Array()
		}
		stats.Following += len(items)
	}

	stats.NetGrowth = stats.NewFollowers
	stats.Mutuals = stats.Followers
	if stats.Following < stats.Mutuals {
		stats.Mutuals = stats.Following
	}
	return stats
}
