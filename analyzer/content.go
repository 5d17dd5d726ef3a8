package analyzer

import (
	"github.com/tidwall/gjson"

	"github.com/jaidevxr/instagram-wrapped/model"
	"github.com/jaidevxr/instagram-wrapped/utils"
)

// analyzeContent counts posted media per type with a month histogram each.
func analyzeContent(posts, reels, stories []model.ClassifiedRecord, year int) model.ContentStats {
	postsPerMonth := make(map[string]int)
	reelsPerMonth := make(map[string]int)
	storiesPerMonth := make(map[string]int)
	var postTotal, reelTotal, storyTotal int

	for _, rec := range posts {
		doc := gjson.ParseBytes(rec.Content)

		var items []gjson.Result
		switch {
		case doc.IsArray():
			items = doc.Array()
		case doc.Get("photos").Exists():
			items = doc.Get("photos").Array()
		case doc.Get("videos").Exists():
			items = doc.Get("videos").Array()
		}

		for _, item := range items {
			ts := creationTimestamp(item)
			if ts == 0 || utils.Year(ts) != year {
				continue
			}
			postTotal++
			if monthKey := utils.MonthKeyInYear(ts, year); monthKey != "" {
				postsPerMonth[monthKey]++
			}
		}
	}

	for _, rec := range reels {
		doc := gjson.ParseBytes(rec.Content)

		items := doc.Get("ig_reels_media").Array()
		if len(items) == 0 && doc.IsArray() {
			items = doc.Array()
		}

		for _, item := range items {
			ts := creationTimestamp(item)
			if ts == 0 || utils.Year(ts) != year {
				continue
			}
			reelTotal++
			if monthKey := utils.MonthKeyInYear(ts, year); monthKey != "" {
				reelsPerMonth[monthKey]++
			}
		}
	}

	for _, rec := range stories {
		doc := gjson.ParseBytes(rec.Content)

		items := doc.Get("ig_stories").Array()
		if len(items) == 0 && doc.IsArray() {
			items = doc.Array()
		}

		for _, item := range items {
			ts := item.Get("creation_timestamp").Int()
			if ts == 0 || utils.Year(ts) != year {
				continue
			}
			storyTotal++
			if monthKey := utils.MonthKeyInYear(ts, year); monthKey != "" {
				storiesPerMonth[monthKey]++
			}
		}
	}

	return model.ContentStats{
		Reels: model.ReelContentStats{Total: reelTotal, PerMonth: reelsPerMonth},
		Posts: model.PostContentStats{
			Total:           postTotal,
			PerMonth:        postsPerMonth,
			MostActiveMonth: mostActiveMonth(postsPerMonth),
		},
		Stories: model.StoryContentStats{
			Total:     storyTotal,
			PerMonth:  storiesPerMonth,
			PeakMonth: mostActiveMonth(storiesPerMonth),
		},
	}
}

// creationTimestamp reads the item's own timestamp, falling back to its first
// media element (carousel posts keep it there).
func creationTimestamp(item gjson.Result) int64 {
	if ts := item.Get("creation_timestamp").Int(); ts > 0 {
		return ts
	}
	return item.Get("media.0.creation_timestamp").Int()
}
