package analyzer

import (
	"fmt"
	"sort"

	"github.com/jaidevxr/instagram-wrapped/model"
)

var nightHours = []int{22, 23, 0, 1, 2, 3, 4}

// inferPersonality evaluates eight independent rules over the computed
// category stats. Firing rules are sorted by score (stable, so the rule
// order above breaks exact ties) and the top four are kept. No firing rule
// means an empty result; the presentation layer handles that case.
func inferPersonality(messages model.MessageStats, likes model.LikeStats, content model.ContentStats, searches model.SearchStats) []model.PersonalityInsight {
	insights := []model.PersonalityInsight{}

	totalHourly := 0
	for _, count := range messages.MessagesPerHour {
		totalHourly += count
	}
	nightCount := 0
	for _, h := range nightHours {
		nightCount += messages.MessagesPerHour[h]
	}
	if totalHourly > 0 {
		if share := float64(nightCount) / float64(totalHourly); share > 0.3 {
			insights = append(insights, model.PersonalityInsight{
				Tag:         "Night Scroller",
				Emoji:       "🌙",
				Description: "Most active during the night hours",
				Score:       share,
			})
		}
	}

	if content.Reels.Total > 20 {
		insights = append(insights, model.PersonalityInsight{
			Tag:         "Reel Addict",
			Emoji:       "🎥",
			Description: fmt.Sprintf("Posted %d reels this year", content.Reels.Total),
			Score:       capScore(float64(content.Reels.Total) / 50),
		})
	}

	if content.Posts.Total < 5 && messages.TotalSent > 100 {
		insights = append(insights, model.PersonalityInsight{
			Tag:         "Ghost Poster",
			Emoji:       "👻",
			Description: "Barely posts but always online",
			Score:       0.8,
		})
	}

	if len(messages.TopContacts) >= 5 && messages.TotalSent > 500 {
		insights = append(insights, model.PersonalityInsight{
			Tag:         "Social Builder",
			Emoji:       "🧱",
			Description: "Maintains many active conversations",
			Score:       capScore(float64(messages.TotalSent) / 1000),
		})
	}

	if likes.TotalGiven > messages.TotalSent*2 {
		insights = append(insights, model.PersonalityInsight{
			Tag:         "Silent Observer",
			Emoji:       "👀",
			Description: "Likes more than talks",
			Score:       capScore(float64(likes.TotalGiven) / 500),
		})
	}

	if content.Stories.Total > 100 {
		insights = append(insights, model.PersonalityInsight{
			Tag:         "Story Addict",
			Emoji:       "📖",
			Description: fmt.Sprintf("%d stories shared", content.Stories.Total),
			Score:       capScore(float64(content.Stories.Total) / 200),
		})
	}

	if len(messages.TopContacts) > 0 && messages.TopContacts[0].Percentage > 30 {
		insights = append(insights, model.PersonalityInsight{
			Tag:         "Loyal Friend",
			Emoji:       "💕",
			Description: "Has a bestie they message constantly",
			Score:       messages.TopContacts[0].Percentage / 100,
		})
	}

	if searches.TotalSearches > 100 {
		insights = append(insights, model.PersonalityInsight{
			Tag:         "Explorer",
			Emoji:       "🔍",
			Description: "Always discovering new accounts",
			Score:       capScore(float64(searches.TotalSearches) / 200),
		})
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Score > insights[j].Score
	})
	if len(insights) > 4 {
		insights = insights[:4]
	}
	return insights
}

func capScore(score float64) float64 {
	if score > 1 {
		return 1
	}
	return score
}
