package analyzer

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/tidwall/gjson"

	"github.com/jaidevxr/instagram-wrapped/model"
	"github.com/jaidevxr/instagram-wrapped/utils"
)

// conversation is the merged message history for one fixed participant set.
// Exports frequently shard a single thread across multiple files; shards are
// merged by the repaired, sorted, pipe-joined participant-name key.
type conversation struct {
	participants []string
	messages     []gjson.Result
}

// contactAccumulator collects per-contact counters during the year pass.
// overallFirstTs is deliberately not year-filtered: the "first chat ever"
// fact must survive a year switch.
type contactAccumulator struct {
	sent           int
	received       int
	overallFirstTs int64
	monthCounts    map[string]int
	hourCounts     map[int]int
	dayCounts      map[string]int
	words          map[string]int
	emojis         map[string]int
	media          model.MediaStats
	firstTs        int64
	lastTs         int64
	firstMsg       *model.MessageSnapshot
	lastMsg        *model.MessageSnapshot
}

func newContactAccumulator() *contactAccumulator {
	return &contactAccumulator{
		monthCounts: make(map[string]int),
		hourCounts:  make(map[int]int),
		dayCounts:   make(map[string]int),
		words:       make(map[string]int),
		emojis:      make(map[string]int),
	}
}

func analyzeMessages(records []model.ClassifiedRecord, year int) model.MessageStats {
	stats := model.MessageStats{
		MessagesPerMonth:    make(map[string]int),
		MessagesPerDay:      make(map[string]int),
		MessagesPerHour:     make(map[int]int),
		LongestConversation: model.LongestConversation{Name: "N/A"},
		TopContacts:         []model.TopContact{},
	}

	conversations := mergeConversations(records)
	if len(conversations) == 0 {
		return stats
	}
	stats.TotalConversations = len(conversations)

	owner := inferOwner(conversations)

	// Tie-breaks below (first/last snapshots on equal timestamps) are
	// first-seen-wins, so conversations are walked in stable key order.
	keys := make([]string, 0, len(conversations))
	for k := range conversations {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	contacts := make(map[string]*contactAccumulator)

	// Overall first-interaction pass, not filtered by year.
	for _, key := range keys {
		conv := conversations[key]
		name := contactName(conv.participants, owner)
		for _, msg := range conv.messages {
			ts := msg.Get("timestamp_ms").Int()
			if ts == 0 {
				continue
			}
			acc, ok := contacts[name]
			if !ok {
				acc = newContactAccumulator()
				acc.overallFirstTs = ts
				contacts[name] = acc
			}
			if ts < acc.overallFirstTs {
				acc.overallFirstTs = ts
			}
		}
	}

	var globalFirstTs, globalLastTs int64

	for _, key := range keys {
		conv := conversations[key]
		name := contactName(conv.participants, owner)

		for _, msg := range conv.messages {
			ts := msg.Get("timestamp_ms").Int()
			if ts == 0 {
				continue
			}
			if utils.Year(ts) != year {
				continue
			}

			sender := utils.RepairText(msg.Get("sender_name").String())
			isSent := owner != "" && sender == owner
			monthKey := utils.MonthKeyInYear(ts, year)
			dayKey := utils.DayKey(ts)
			hour := utils.Hour(ts)

			if isSent {
				stats.TotalSent++
			} else {
				stats.TotalReceived++
			}
			if monthKey != "" {
				stats.MessagesPerMonth[monthKey]++
			}
			stats.MessagesPerDay[dayKey]++
			stats.MessagesPerHour[hour]++

			text := "[Media]"
			if body := msg.Get("content"); body.Exists() {
				text = utils.RepairText(body.String())
			}
			when := time.UnixMilli(utils.ResolveMillis(ts))

			if globalFirstTs == 0 || ts < globalFirstTs {
				globalFirstTs = ts
				stats.FirstMessage = &model.MessageSnapshot{Date: when, Content: text, With: name}
			}
			if globalLastTs == 0 || ts > globalLastTs {
				globalLastTs = ts
				stats.LastMessage = &model.MessageSnapshot{Date: when, Content: text, With: name}
			}

			acc, ok := contacts[name]
			if !ok {
				acc = newContactAccumulator()
				acc.overallFirstTs = ts
				contacts[name] = acc
			}
			if isSent {
				acc.sent++
			} else {
				acc.received++
			}
			if monthKey != "" {
				acc.monthCounts[monthKey]++
			}
			acc.hourCounts[hour]++
			acc.dayCounts[dayKey]++

			if acc.firstTs == 0 || ts < acc.firstTs {
				acc.firstTs = ts
				acc.firstMsg = &model.MessageSnapshot{Date: when, Content: text}
			}
			if acc.lastTs == 0 || ts > acc.lastTs {
				acc.lastTs = ts
				acc.lastMsg = &model.MessageSnapshot{Date: when, Content: text}
			}

			countMedia(&acc.media, msg, isSent)

			if isSent {
				if body := msg.Get("content"); body.Exists() {
					repaired := utils.RepairText(body.String())
					for _, w := range tokenizeWords(repaired) {
						acc.words[w]++
					}
					for _, e := range extractEmojis(repaired) {
						acc.emojis[e]++
					}
				}
			}
		}
	}

	stats.LongestStreak = longestStreak(stats.MessagesPerDay)

	totalMessages := stats.TotalSent + stats.TotalReceived
	stats.TopContacts = rankContacts(contacts, totalMessages)

	// Longest conversation is independent of the top-5 cut.
	names := make([]string, 0, len(contacts))
	for n := range contacts {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		if total := contacts[n].sent + contacts[n].received; total > stats.LongestConversation.Count {
			stats.LongestConversation = model.LongestConversation{Name: n, Count: total}
		}
	}

	if days := len(stats.MessagesPerDay); days > 0 {
		stats.AvgMessagesPerDay = float64(totalMessages) / float64(days)
	}

	return stats
}

// mergeConversations folds duplicate export shards of the same thread into
// one conversation. Two shards whose repaired participant sets are equal
// always merge, regardless of participant order in the file.
func mergeConversations(records []model.ClassifiedRecord) map[string]*conversation {
	conversations := make(map[string]*conversation)

	for _, rec := range records {
		doc := gjson.ParseBytes(rec.Content)
		participants := doc.Get("participants")
		messages := doc.Get("messages")
		if !participants.Exists() || !messages.IsArray() {
			continue
		}

		var names []string
		participants.ForEach(func(_, p gjson.Result) bool {
			names = append(names, utils.RepairText(p.Get("name").String()))
			return true
		})

		sorted := append([]string(nil), names...)
		sort.Strings(sorted)
		key := strings.Join(sorted, "|")

		conv, ok := conversations[key]
		if !ok {
			conv = &conversation{participants: names}
			conversations[key] = conv
		}
		messages.ForEach(func(_, m gjson.Result) bool {
			conv.messages = append(conv.messages, m)
			return true
		})
	}

	return conversations
}

// inferOwner decides who the export belongs to: the participant appearing in
// the most distinct conversations wins; ties fall to whoever sent the most
// messages overall among the tied names, then to the lexicographically
// smallest name. The last step replaces the unspecified iteration-order
// behavior of the source data with a deterministic rule.
func inferOwner(conversations map[string]*conversation) string {
	conversationCount := make(map[string]int)
	sentCount := make(map[string]int)

	for _, conv := range conversations {
		seen := make(map[string]bool)
		for _, p := range conv.participants {
			if p == "" || seen[p] {
				continue
			}
			seen[p] = true
			conversationCount[p]++
		}
		for _, msg := range conv.messages {
			if sender := utils.RepairText(msg.Get("sender_name").String()); sender != "" {
				sentCount[sender]++
			}
		}
	}

	if len(conversationCount) == 0 {
		return ""
	}

	maxConvs := 0
	for _, count := range conversationCount {
		if count > maxConvs {
			maxConvs = count
		}
	}

	var tied []string
	for name, count := range conversationCount {
		if count == maxConvs {
			tied = append(tied, name)
		}
	}
	sort.Strings(tied)
	if len(tied) == 1 {
		return tied[0]
	}

	owner := tied[0]
	for _, name := range tied[1:] {
		if sentCount[name] > sentCount[owner] {
			owner = name
		}
	}
	return owner
}

func contactName(participants []string, owner string) string {
	var others []string
	for _, p := range participants {
		if p != owner {
			others = append(others, p)
		}
	}
	if len(others) == 0 {
		return "Unknown"
	}
	return strings.Join(others, ", ")
}

func countMedia(media *model.MediaStats, msg gjson.Result, isSent bool) {
	link := msg.Get("share.link").String()

	if isSent {
		if photos := msg.Get("photos"); photos.IsArray() {
			media.Photos += len(photos.Array())
		}
		if videos := msg.Get("videos"); videos.IsArray() {
			media.Videos += len(videos.Array())
		}
		if link != "" {
			if strings.Contains(link, "reel") {
				media.Reels++
				media.ReelsSent++
			} else {
				media.Links++
			}
		}
		return
	}

	// Received media: only the reel exchange is tracked.
	if link != "" && strings.Contains(link, "reel") {
		media.Reels++
		media.ReelsReceived++
	}
}

// tokenizeWords lower-cases, strips everything outside a-z and whitespace,
// and keeps tokens longer than two characters that are not stop words.
func tokenizeWords(text string) []string {
	lower := strings.ToLower(text)
	cleaned := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		if unicode.IsSpace(r) {
			return ' '
		}
		return -1
	}, lower)

	var words []string
	for _, w := range strings.Fields(cleaned) {
		if len(w) > 2 && !stopWords[w] {
			words = append(words, w)
		}
	}
	return words
}

// emoji code-point ranges counted in the owner's sent messages.
var emojiRanges = [][2]rune{
	{0x1F300, 0x1F9FF},
	{0x1FA00, 0x1FAFF},
	{0x1F680, 0x1F6FF},
	{0x1F1E0, 0x1F1FF},
	{0x2600, 0x26FF},
	{0x2700, 0x27BF},
	{0x2300, 0x23FF},
	{0x2B50, 0x2B50},
	{0xFE00, 0xFEFF},
}

func isEmoji(r rune) bool {
	for _, rng := range emojiRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}

func extractEmojis(text string) []string {
	var emojis []string
	for _, r := range text {
		if isEmoji(r) {
			emojis = append(emojis, string(r))
		}
	}
	return emojis
}

// longestStreak finds the longest run of calendar-consecutive day keys.
func longestStreak(dayCounts map[string]int) int {
	if len(dayCounts) == 0 {
		return 0
	}

	days := make([]time.Time, 0, len(dayCounts))
	for key := range dayCounts {
		if t, err := time.Parse("2006-01-02", key); err == nil {
			days = append(days, t)
		}
	}
	if len(days) == 0 {
		return 0
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, current := 0, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			current++
			continue
		}
		if current > longest {
			longest = current
		}
		current = 1
	}
	if current > longest {
		longest = current
	}
	return longest
}

// rankContacts builds the top-5 list by total message count. Percentage is
// the contact's share of all owner traffic for the year.
func rankContacts(contacts map[string]*contactAccumulator, totalMessages int) []model.TopContact {
	names := make([]string, 0, len(contacts))
	for name := range contacts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ti := contacts[names[i]].sent + contacts[names[i]].received
		tj := contacts[names[j]].sent + contacts[names[j]].received
		if ti != tj {
			return ti > tj
		}
		return names[i] < names[j]
	})
	if len(names) > 5 {
		names = names[:5]
	}

	top := make([]model.TopContact, 0, len(names))
	for _, name := range names {
		acc := contacts[name]
		total := acc.sent + acc.received

		percentage := 0.0
		if totalMessages > 0 {
			percentage = float64(total) / float64(totalMessages) * 100
		}

		top = append(top, model.TopContact{
			Username:         name,
			TotalMessages:    total,
			Sent:             acc.sent,
			Received:         acc.received,
			Percentage:       percentage,
			FirstInteraction: time.UnixMilli(utils.ResolveMillis(acc.overallFirstTs)),
			MostActiveMonth:  mostActiveMonth(acc.monthCounts),
			MessagesPerMonth: acc.monthCounts,
			MessagesPerHour:  acc.hourCounts,
			TopWords:         topWords(acc.words, 10),
			TopEmojis:        topEmojis(acc.emojis, 10),
			MediaStats:       acc.media,
			LongestStreak:    longestStreak(acc.dayCounts),
			FirstMessage:     acc.firstMsg,
			LastMessage:      acc.lastMsg,
		})
	}
	return top
}

// mostActiveMonth picks the month with the highest count; ties resolve to the
// earlier calendar month.
func mostActiveMonth(monthCounts map[string]int) string {
	best := "N/A"
	bestCount := 0
	for _, label := range utils.MonthLabels() {
		if count := monthCounts[label]; count > bestCount {
			best = label
			bestCount = count
		}
	}
	return best
}

func topWords(counts map[string]int, n int) []model.WordCount {
	words := sortedByCount(counts, n)
	out := make([]model.WordCount, 0, len(words))
	for _, w := range words {
		out = append(out, model.WordCount{Word: w, Count: counts[w]})
	}
	return out
}

func topEmojis(counts map[string]int, n int) []model.EmojiCount {
	emojis := sortedByCount(counts, n)
	out := make([]model.EmojiCount, 0, len(emojis))
	for _, e := range emojis {
		out = append(out, model.EmojiCount{Emoji: e, Count: counts[e]})
	}
	return out
}

// sortedByCount returns up to n keys ordered by count descending, ties by key.
func sortedByCount(counts map[string]int, n int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}
