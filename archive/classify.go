package archive

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/jaidevxr/instagram-wrapped/model"
)

// Instagram exports carry no reliable schema: filenames and directory layout
// change between export versions, so classification is driven by document
// shape. Detectors run in a fixed priority order and the first match wins;
// ambiguous documents (e.g. satisfying both the likes and comments shape)
// deliberately resolve to the earlier category.

type detector struct {
	category model.Category
	match    func(doc gjson.Result) bool
}

var detectors = []detector{
	{model.CategoryMessages, func(d gjson.Result) bool {
		return d.Get("participants").Exists() && d.Get("messages").IsArray()
	}},
	{model.CategoryLikes, func(d gjson.Result) bool {
		return d.Get("likes_media_likes").Exists() ||
			d.Get("story_likes").Exists() ||
			(d.IsArray() && d.Get("0.string_list_data").Exists()) ||
			d.Get("impressions_history_posts_seen").Exists()
	}},
	{model.CategoryComments, func(d gjson.Result) bool {
		return d.Get("comments_media_comments").Exists() ||
			(d.IsArray() && strings.Contains(d.Get("0.string_list_data.0.value").String(), "@"))
	}},
	{model.CategoryPosts, func(d gjson.Result) bool {
		return d.Get("photos").Exists() ||
			d.Get("videos").Exists() ||
			(d.IsArray() && d.Get("0.media").Exists() && d.Get("0.creation_timestamp").Exists())
	}},
	{model.CategoryReels, func(d gjson.Result) bool {
		return d.Get("ig_reels_media").Exists()
	}},
	{model.CategoryStories, func(d gjson.Result) bool {
		return d.Get("ig_stories").Exists() ||
			(d.IsArray() && strings.Contains(d.Get("0.uri").String(), "story"))
	}},
	{model.CategoryFollowers, func(d gjson.Result) bool {
		return d.Get("relationships_followers").Exists() ||
			(d.IsArray() && d.Get("0.string_list_data").Exists() && !d.Get("0.title").Exists())
	}},
	{model.CategoryFollowing, func(d gjson.Result) bool {
		return d.Get("relationships_following").Exists()
	}},
	{model.CategorySearches, func(d gjson.Result) bool {
		return d.Get("searches_user").Exists() ||
			d.Get("searches_keyword").Exists() ||
			(d.IsArray() && d.Get("0.string_map_data.Search").Exists())
	}},
	{model.CategoryLogins, func(d gjson.Result) bool {
		return d.Get("account_history_login_history").Exists() ||
			(d.IsArray() && d.Get("0.string_map_data.IP Address").Exists())
	}},
	{model.CategoryAds, func(d gjson.Result) bool {
		return d.Get("ads_interests").Exists() ||
			d.Get("ads_viewed").Exists() ||
			d.Get("ads_clicked").Exists() ||
			(d.IsArray() && strings.Contains(strings.ToLower(d.Get("0.title").String()), "ad"))
	}},
	{model.CategorySaved, func(d gjson.Result) bool {
		return d.Get("saved_saved_media").Exists() ||
			d.Get("saved_saved_collections").Exists() ||
			(d.IsArray() && d.Get("0.string_list_data.0.href").Exists())
	}},
	{model.CategoryProfile, func(d gjson.Result) bool {
		return d.Get("profile_user").Exists() ||
			d.Get("username").Exists() ||
			d.Get("biography").Exists()
	}},
}

// pathHints is the path-substring fallback, in the same priority order as
// the shape detectors.
var pathHints = []struct {
	category   model.Category
	substrings []string
}{
	{model.CategoryMessages, []string{"message", "inbox"}},
	{model.CategoryLikes, []string{"like"}},
	{model.CategoryComments, []string{"comment"}},
	{model.CategoryPosts, []string{"post", "content"}},
	{model.CategoryReels, []string{"reel"}},
	{model.CategoryStories, []string{"stor"}},
	{model.CategoryFollowers, []string{"follower"}},
	{model.CategoryFollowing, []string{"following"}},
	{model.CategorySearches, []string{"search"}},
	{model.CategoryLogins, []string{"login", "device"}},
	{model.CategoryAds, []string{"ad"}},
	{model.CategorySaved, []string{"save"}},
	{model.CategoryProfile, []string{"profile"}},
}

// Classify assigns a category to a parsed export document. Shape detection
// runs first; if no detector matches, the entry path is scanned for
// case-insensitive category hints. Unmatched documents are CategoryUnknown.
func Classify(doc gjson.Result, path string) model.Category {
	for _, d := range detectors {
		if d.match(doc) {
			return d.category
		}
	}

	lower := strings.ToLower(path)
	for _, hint := range pathHints {
		for _, sub := range hint.substrings {
			if strings.Contains(lower, sub) {
				return hint.category
			}
		}
	}

	return model.CategoryUnknown
}
