package analyzer

import (
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/jaidevxr/instagram-wrapped/model"
	"github.com/jaidevxr/instagram-wrapped/utils"
)

func analyzeComments(records []model.ClassifiedRecord, year int) model.CommentStats {
	stats := model.CommentStats{PerMonth: make(map[string]int)}

	for _, rec := range records {
		doc := gjson.ParseBytes(rec.Content)

		items := doc.Get("comments_media_comments").Array()
		if len(items) == 0 && doc.IsArray() {
			items = doc.Array()
		}

		for _, item := range items {
			ts := item.Get("string_list_data.0.timestamp").Int()
			if ts == 0 {
				ts = item.Get("timestamp").Int()
			}
			if ts == 0 || utils.Year(ts) != year {
				continue
			}

			stats.Total++
			if monthKey := utils.MonthKeyInYear(ts, year); monthKey != "" {
				stats.PerMonth[monthKey]++
			}
		}
	}
	return stats
}

func analyzeSaves(records []model.ClassifiedRecord, year int) model.SaveStats {
	stats := model.SaveStats{}

	for _, rec := range records {
		doc := gjson.ParseBytes(rec.Content)

		items := doc.Get("saved_saved_media").Array()
		if len(items) == 0 && doc.IsArray() {
			items = doc.Array()
		}

		for _, item := range items {
			ts := item.Get("string_list_data.0.timestamp").Int()
			if ts == 0 {
				ts = item.Get("timestamp").Int()
			}
			if ts > 0 && utils.Year(ts) != year {
				continue
			}
			stats.Total++
		}
	}
	return stats
}

// analyzeAds infers viewed vs clicked from the entry path, since both shapes
// carry the same item structure.
func analyzeAds(records []model.ClassifiedRecord, year int) model.AdStats {
	stats := model.AdStats{Categories: []string{}}
	categories := make(map[string]struct{})

	for _, rec := range records {
		doc := gjson.ParseBytes(rec.Content)
		pathLower := strings.ToLower(rec.Path)

		items := doc.Get("ads_viewed").Array()
		if len(items) == 0 {
			items = doc.Get("ads_clicked").Array()
		}
		if len(items) == 0 {
			items = doc.Get("ads_interests").Array()
		}
		if len(items) == 0 && doc.IsArray() {
			items = doc.Array()
		}

		for _, item := range items {
			ts := item.Get("string_list_data.0.timestamp").Int()
			if ts == 0 {
				ts = item.Get("timestamp").Int()
			}
			if ts > 0 && utils.Year(ts) != year {
				continue
			}

			if strings.Contains(pathLower, "click") {
				stats.Clicked++
			} else {
				stats.Viewed++
			}

			category := item.Get("title").String()
			if category == "" {
				category = item.Get("string_list_data.0.value").String()
			}
			if category != "" {
				categories[utils.RepairText(category)] = struct{}{}
			}
		}
	}

	for c := range categories {
		stats.Categories = append(stats.Categories, c)
	}
	sort.Strings(stats.Categories)
	if len(stats.Categories) > 10 {
		stats.Categories = stats.Categories[:10]
	}
	return stats
}
