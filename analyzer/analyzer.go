// Package analyzer derives the year-scoped statistical summary from the
// classified records of one ingested export. Every call rebuilds the full
// AnalysisResult from scratch; no state survives between runs, so switching
// years back and forth is idempotent.
package analyzer

import (
	"github.com/jaidevxr/instagram-wrapped/model"
)

// Analyze computes the full per-year summary. It never fails: categories with
// no records, or records with malformed sub-fields, degrade to zero-valued
// stats. If the requested year is not present in the data the most recent
// available year is used instead.
func Analyze(records []model.ClassifiedRecord, year int) *model.AnalysisResult {
	years := AvailableYears(records)
	if len(years) > 0 && !containsYear(years, year) {
		year = years[0]
	}

	byCategory := make(map[model.Category][]model.ClassifiedRecord)
	for _, rec := range records {
		byCategory[rec.Category] = append(byCategory[rec.Category], rec)
	}

	messages := analyzeMessages(byCategory[model.CategoryMessages], year)
	likes := analyzeLikes(byCategory[model.CategoryLikes], year)
	content := analyzeContent(
		byCategory[model.CategoryPosts],
		byCategory[model.CategoryReels],
		byCategory[model.CategoryStories],
		year,
	)
	connections := analyzeConnections(
		byCategory[model.CategoryFollowers],
		byCategory[model.CategoryFollowing],
		year,
	)
	searches := analyzeSearches(byCategory[model.CategorySearches], year)
	logins := analyzeLogins(byCategory[model.CategoryLogins], year)
	comments := analyzeComments(byCategory[model.CategoryComments], year)
	saves := analyzeSaves(byCategory[model.CategorySaved], year)
	ads := analyzeAds(byCategory[model.CategoryAds], year)

	return &model.AnalysisResult{
		Messages:       messages,
		Likes:          likes,
		Content:        content,
		Connections:    connections,
		Searches:       searches,
		Logins:         logins,
		Comments:       comments,
		Saves:          saves,
		Ads:            ads,
		Personality:    inferPersonality(messages, likes, content, searches),
		AvailableYears: years,
		SelectedYear:   year,
	}
}

func containsYear(years []int, year int) bool {
	for _, y := range years {
		if y == year {
			return true
		}
	}
	return false
}
