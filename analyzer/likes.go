package analyzer

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/jaidevxr/instagram-wrapped/model"
	"github.com/jaidevxr/instagram-wrapped/utils"
)

// analyzeLikes handles the three shapes like data ships in: a
// likes_media_likes wrapper, a bare list, or a story_likes wrapper. The liked
// media type is not in the payload, so it is guessed from the entry path.
func analyzeLikes(records []model.ClassifiedRecord, year int) model.LikeStats {
	stats := model.LikeStats{
		LikesPerMonth:    make(map[string]int),
		LikesPerHour:     make(map[int]int),
		TopLikedAccounts: []model.AccountCount{},
		MediaTypeCounts:  map[string]int{"post": 0, "reel": 0, "story": 0},
	}
	accountCounts := make(map[string]int)

	for _, rec := range records {
		doc := gjson.ParseBytes(rec.Content)
		pathLower := strings.ToLower(rec.Path)

		var likes []gjson.Result
		switch {
		case doc.Get("likes_media_likes").Exists():
			likes = doc.Get("likes_media_likes").Array()
		case doc.IsArray():
			likes = doc.Array()
		case doc.Get("story_likes").Exists():
			likes = doc.Get("story_likes").Array()
		}

		for _, like := range likes {
			var ts int64
			var account string

			if t := like.Get("string_list_data.0.timestamp"); t.Int() > 0 {
				ts = t.Int()
				account = like.Get("title").String()
				if account == "" {
					account = like.Get("string_list_data.0.value").String()
				}
			} else if t := like.Get("timestamp"); t.Int() > 0 {
				ts = t.Int()
				account = like.Get("title").String()
			}

			if ts == 0 || utils.Year(ts) != year {
				continue
			}

			stats.TotalGiven++
			if monthKey := utils.MonthKeyInYear(ts, year); monthKey != "" {
				stats.LikesPerMonth[monthKey]++
			}
			stats.LikesPerHour[utils.Hour(ts)]++

			if account != "" {
				accountCounts[utils.RepairText(account)]++
			}

			switch {
			case strings.Contains(pathLower, "reel"):
				stats.MediaTypeCounts["reel"]++
			case strings.Contains(pathLower, "stor"):
				stats.MediaTypeCounts["story"]++
			default:
				stats.MediaTypeCounts["post"]++
			}
		}
	}

	for _, account := range sortedByCount(accountCounts, 10) {
		stats.TopLikedAccounts = append(stats.TopLikedAccounts, model.AccountCount{
			Account: account,
			Count:   accountCounts[account],
		})
	}
	return stats
}
