package analyzer

import (
	"testing"

	"github.com/jaidevxr/instagram-wrapped/model"
)

func hasTag(insights []model.PersonalityInsight, tag string) bool {
	for _, in := range insights {
		if in.Tag == tag {
			return true
		}
	}
	return false
}

func TestInferPersonality_NightScroller(t *testing.T) {
	messages := model.MessageStats{
		MessagesPerHour: map[int]int{23: 4, 2: 3, 14: 3},
	}

	insights := inferPersonality(messages, model.LikeStats{}, model.ContentStats{}, model.SearchStats{})
	if !hasTag(insights, "Night Scroller") {
		t.Errorf("70%% night traffic did not trigger Night Scroller: %+v", insights)
	}

	// Exactly 30% must not trigger: the rule wants a strict majority share.
	messages.MessagesPerHour = map[int]int{23: 3, 14: 7}
	insights = inferPersonality(messages, model.LikeStats{}, model.ContentStats{}, model.SearchStats{})
	if hasTag(insights, "Night Scroller") {
		t.Error("30% night traffic triggered Night Scroller, threshold is exclusive")
	}
}

func TestInferPersonality_GhostPoster(t *testing.T) {
	messages := model.MessageStats{TotalSent: 150}
	content := model.ContentStats{Posts: model.PostContentStats{Total: 2}}

	insights := inferPersonality(messages, model.LikeStats{}, content, model.SearchStats{})
	if !hasTag(insights, "Ghost Poster") {
		t.Errorf("2 posts with 150 sent did not trigger Ghost Poster: %+v", insights)
	}
}

func TestInferPersonality_SilentObserver(t *testing.T) {
	messages := model.MessageStats{TotalSent: 10}
	likes := model.LikeStats{TotalGiven: 30}

	insights := inferPersonality(messages, likes, model.ContentStats{}, model.SearchStats{})
	if !hasTag(insights, "Silent Observer") {
		t.Errorf("30 likes vs 10 sent did not trigger Silent Observer: %+v", insights)
	}

	likes.TotalGiven = 20
	insights = inferPersonality(messages, likes, model.ContentStats{}, model.SearchStats{})
	if hasTag(insights, "Silent Observer") {
		t.Error("exactly 2x likes triggered Silent Observer, threshold is exclusive")
	}
}

func TestInferPersonality_TopFourCut(t *testing.T) {
	// Satisfy more than four rules at once and check only the four highest
	// scores survive.
	messages := model.MessageStats{
		TotalSent:       600,
		MessagesPerHour: map[int]int{1: 9, 12: 1},
		TopContacts: []model.TopContact{
			{Username: "a", Percentage: 40},
			{Username: "b"}, {Username: "c"}, {Username: "d"}, {Username: "e"},
		},
	}
	likes := model.LikeStats{TotalGiven: 2000}
	content := model.ContentStats{
		Reels:   model.ReelContentStats{Total: 60},
		Stories: model.StoryContentStats{Total: 250},
	}
	searches := model.SearchStats{TotalSearches: 300}

	insights := inferPersonality(messages, likes, content, searches)

	if len(insights) != 4 {
		t.Fatalf("got %d insights, want 4", len(insights))
	}
	for i := 1; i < len(insights); i++ {
		if insights[i].Score > insights[i-1].Score {
			t.Errorf("insights not sorted by score: %f before %f", insights[i-1].Score, insights[i].Score)
		}
	}
	for _, in := range insights {
		if in.Score < 0 || in.Score > 1 {
			t.Errorf("insight %q score %f out of [0,1]", in.Tag, in.Score)
		}
	}
}

func TestInferPersonality_QuietYear(t *testing.T) {
	insights := inferPersonality(model.MessageStats{}, model.LikeStats{}, model.ContentStats{}, model.SearchStats{})
	if len(insights) != 0 {
		t.Errorf("empty inputs produced insights: %+v", insights)
	}
}
