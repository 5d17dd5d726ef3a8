package model

import "time"

// WordCount is a word with its occurrence count in the owner's sent messages.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type EmojiCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

type AccountCount struct {
	Account string `json:"account"`
	Count   int    `json:"count"`
}

// MediaStats counts media exchanged with a single contact, with reel shares
// split by direction.
type MediaStats struct {
	Photos        int `json:"photos"`
	Videos        int `json:"videos"`
	Reels         int `json:"reels"`
	Links         int `json:"links"`
	ReelsSent     int `json:"reelsSent"`
	ReelsReceived int `json:"reelsReceived"`
}

// MessageSnapshot captures a single message for first/last display.
type MessageSnapshot struct {
	Date    time.Time `json:"date"`
	Content string    `json:"content"`
	With    string    `json:"with,omitempty"`
}

// TopContact is the per-contact profile for the selected year. FirstInteraction
// is intentionally not year-scoped: it is the earliest message ever exchanged
// with this contact, so it survives a year switch.
type TopContact struct {
	Username         string            `json:"username"`
	TotalMessages    int               `json:"totalMessages"`
	Sent             int               `json:"sent"`
	Received         int               `json:"received"`
	Percentage       float64           `json:"percentage"`
	FirstInteraction time.Time         `json:"firstInteraction"`
	MostActiveMonth  string            `json:"mostActiveMonth"`
	MessagesPerMonth map[string]int    `json:"messagesPerMonth"`
	MessagesPerHour  map[int]int       `json:"messagesPerHour"`
	TopWords         []WordCount       `json:"topWords"`
	TopEmojis        []EmojiCount      `json:"topEmojis"`
	MediaStats       MediaStats        `json:"mediaStats"`
	LongestStreak    int               `json:"longestStreak"`
	FirstMessage     *MessageSnapshot  `json:"firstMessage,omitempty"`
	LastMessage      *MessageSnapshot  `json:"lastMessage,omitempty"`
}

type LongestConversation struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type MessageStats struct {
	TotalSent           int                 `json:"totalSent"`
	TotalReceived       int                 `json:"totalReceived"`
	TotalConversations  int                 `json:"totalConversations"`
	MessagesPerMonth    map[string]int      `json:"messagesPerMonth"`
	MessagesPerDay      map[string]int      `json:"messagesPerDay"`
	MessagesPerHour     map[int]int         `json:"messagesPerHour"`
	AvgMessagesPerDay   float64             `json:"avgMessagesPerDay"`
	LongestStreak       int                 `json:"longestStreak"`
	LongestConversation LongestConversation `json:"longestConversation"`
	FirstMessage        *MessageSnapshot    `json:"firstMessage"`
	LastMessage         *MessageSnapshot    `json:"lastMessage"`
	TopContacts         []TopContact        `json:"topContacts"`
}

type LikeStats struct {
	TotalGiven       int            `json:"totalGiven"`
	LikesPerMonth    map[string]int `json:"likesPerMonth"`
	LikesPerHour     map[int]int    `json:"likesPerHour"`
	TopLikedAccounts []AccountCount `json:"topLikedAccounts"`
	MediaTypeCounts  map[string]int `json:"mediaTypeCounts"`
}

type ReelContentStats struct {
	Total    int            `json:"total"`
	PerMonth map[string]int `json:"perMonth"`
}

type PostContentStats struct {
	Total           int            `json:"total"`
	PerMonth        map[string]int `json:"perMonth"`
	MostActiveMonth string         `json:"mostActiveMonth"`
}

type StoryContentStats struct {
	Total     int            `json:"total"`
	PerMonth  map[string]int `json:"perMonth"`
	PeakMonth string         `json:"peakMonth"`
}

type ContentStats struct {
	Reels   ReelContentStats  `json:"reels"`
	Posts   PostContentStats  `json:"posts"`
	Stories StoryContentStats `json:"stories"`
}

// ConnectionStats is derived from a single snapshot export: Mutuals is a
// declared approximation (min of the two counts) and Unfollowers is always
// zero since the export carries no removal history.
type ConnectionStats struct {
	Followers    int `json:"followers"`
	Following    int `json:"following"`
	NewFollowers int `json:"newFollowers"`
	Unfollowers  int `json:"unfollowers"`
	NetGrowth    int `json:"netGrowth"`
	Mutuals      int `json:"mutuals"`
}

type SearchStats struct {
	TotalSearches       int            `json:"totalSearches"`
	TopSearchedAccounts []AccountCount `json:"topSearchedAccounts"`
	SearchPersonality   string         `json:"searchPersonality"`
}

type LoginStats struct {
	TotalLogins    int      `json:"totalLogins"`
	Devices        []string `json:"devices"`
	MostUsedDevice string   `json:"mostUsedDevice"`
	Locations      []string `json:"locations"`
}

type CommentStats struct {
	Total    int            `json:"total"`
	PerMonth map[string]int `json:"perMonth"`
}

type SaveStats struct {
	Total int `json:"total"`
}

type AdStats struct {
	Viewed     int      `json:"viewed"`
	Clicked    int      `json:"clicked"`
	Categories []string `json:"categories"`
}

// PersonalityInsight is a scored qualitative trait derived purely from the
// aggregated category stats.
type PersonalityInsight struct {
	Tag         string  `json:"tag"`
	Emoji       string  `json:"emoji"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

// AnalysisResult is the single structure handed to the presentation layer.
// It is rebuilt wholesale on every analysis run; nothing in it is updated
// incrementally.
type AnalysisResult struct {
	Messages       MessageStats         `json:"messages"`
	Likes          LikeStats            `json:"likes"`
	Content        ContentStats         `json:"content"`
	Connections    ConnectionStats      `json:"connections"`
	Searches       SearchStats          `json:"searches"`
	Logins         LoginStats           `json:"logins"`
	Comments       CommentStats         `json:"comments"`
	Saves          SaveStats            `json:"saves"`
	Ads            AdStats              `json:"ads"`
	Personality    []PersonalityInsight `json:"personality"`
	AvailableYears []int                `json:"availableYears"`
	SelectedYear   int                  `json:"selectedYear"`
}
