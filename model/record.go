package model

import "encoding/json"

// Category is the content type a classified export entry belongs to.
type Category string

const (
	CategoryMessages  Category = "messages"
	CategoryLikes     Category = "likes"
	CategoryComments  Category = "comments"
	CategoryPosts     Category = "posts"
	CategoryReels     Category = "reels"
	CategoryStories   Category = "stories"
	CategoryFollowers Category = "followers"
	CategoryFollowing Category = "following"
	CategorySearches  Category = "searches"
	CategoryLogins    Category = "logins"
	CategoryAds       Category = "ads"
	CategorySaved     Category = "saved"
	CategoryProfile   Category = "profile"
	CategoryUnknown   Category = "unknown"
)

// ClassifiedRecord is one parsed export entry plus its assigned category.
// Content is the raw JSON document exactly as read from the archive; it is
// never mutated after ingestion, so records can be shared freely between
// analysis runs.
type ClassifiedRecord struct {
	Path     string          `json:"path"`
	Category Category        `json:"category"`
	Content  json.RawMessage `json:"content"`
}
