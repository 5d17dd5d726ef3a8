package analyzer

import (
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/jaidevxr/instagram-wrapped/model"
	"github.com/jaidevxr/instagram-wrapped/utils"
)

// deviceKeywords classify a login's user-agent string; checked in order, the
// first hit wins.
var deviceKeywords = []struct {
	keyword string
	device  string
}{
	{"iPhone", "iPhone"},
	{"Android", "Android"},
	{"Windows", "Windows PC"},
	{"Mac", "Mac"},
	{"iPad", "iPad"},
}

func analyzeLogins(records []model.ClassifiedRecord, year int) model.LoginStats {
	stats := model.LoginStats{
		Devices:        []string{},
		MostUsedDevice: "Unknown",
		Locations:      []string{},
	}
	deviceCounts := make(map[string]int)
	locations := make(map[string]struct{})

	for _, rec := range records {
		doc := gjson.ParseBytes(rec.Content)

		items := doc.Get("account_history_login_history").Array()
		if len(items) == 0 && doc.IsArray() {
			items = doc.Array()
		}

		for _, item := range items {
			ts := item.Get("string_map_data.Time.timestamp").Int()
			if ts == 0 {
				ts = item.Get("timestamp").Int()
			}
			if ts > 0 && utils.Year(ts) != year {
				continue
			}

			stats.TotalLogins++

			if ua := item.Get("string_map_data.User Agent.value").String(); ua != "" {
				device := "Unknown"
				for _, dk := range deviceKeywords {
					if strings.Contains(ua, dk.keyword) {
						device = dk.device
						break
					}
				}
				deviceCounts[device]++
			}

			if ip := item.Get("string_map_data.IP Address.value").String(); ip != "" {
				if octets := strings.Split(ip, "."); len(octets) >= 2 {
					locations[octets[0]+"."+octets[1]+".x.x"] = struct{}{}
				}
			}
		}
	}

	for _, device := range sortedByCount(deviceCounts, len(deviceCounts)) {
		stats.Devices = append(stats.Devices, device)
	}
	if len(stats.Devices) > 0 {
		stats.MostUsedDevice = stats.Devices[0]
	}

	for loc := range locations {
		stats.Locations = append(stats.Locations, loc)
	}
	sort.Strings(stats.Locations)

	return stats
}
