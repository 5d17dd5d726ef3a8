package analyzer

import (
	"github.com/tidwall/gjson"

	"github.com/jaidevxr/instagram-wrapped/model"
	"github.com/jaidevxr/instagram-wrapped/utils"
)

func analyzeSearches(records []model.ClassifiedRecord, year int) model.SearchStats {
	stats := model.SearchStats{
		TopSearchedAccounts: []model.AccountCount{},
		SearchPersonality:   "Explorer 🔍",
	}
	searchCounts := make(map[string]int)

	for _, rec := range records {
		doc := gjson.ParseBytes(rec.Content)

		items := doc.Get("searches_user").Array()
		if len(items) == 0 {
			items = doc.Get("searches_keyword").Array()
		}
		if len(items) == 0 && doc.IsArray() {
			items = doc.Array()
		}

		for _, item := range items {
			ts := item.Get("string_map_data.Time.timestamp").Int()
			if ts == 0 {
				ts = item.Get("timestamp").Int()
			}
			// Events without a timestamp still count; only a mismatched year
			// rejects.
			if ts > 0 && utils.Year(ts) != year {
				continue
			}

			stats.TotalSearches++

			query := item.Get("string_map_data.Search.value").String()
			if query == "" {
				query = item.Get("title").String()
			}
			if query != "" {
				searchCounts[utils.RepairText(query)]++
			}
		}
	}

	for _, account := range sortedByCount(searchCounts, 5) {
		stats.TopSearchedAccounts = append(stats.TopSearchedAccounts, model.AccountCount{
			Account: account,
			Count:   searchCounts[account],
		})
	}

	if len(stats.TopSearchedAccounts) > 0 {
		topCount := stats.TopSearchedAccounts[0].Count
		switch {
		case float64(topCount) > float64(stats.TotalSearches)*0.3:
			stats.SearchPersonality = "Loyal Follower 💍"
		case len(stats.TopSearchedAccounts) >= 5:
			stats.SearchPersonality = "Curious Mind 🧠"
		}
	}
	return stats
}
