package analyzer

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/jaidevxr/instagram-wrapped/model"
)

func loginEntry(userAgent, ip string, ts int64) string {
	return fmt.Sprintf(
		`{"string_map_data":{"User Agent":{"value":%q},"IP Address":{"value":%q},"Time":{"timestamp":%d}}}`,
		userAgent, ip, ts)
}

func loginRecord(entries ...string) model.ClassifiedRecord {
	return model.ClassifiedRecord{
		Category: model.CategoryLogins,
		Content:  json.RawMessage(fmt.Sprintf(`{"account_history_login_history":[%s]}`, strings.Join(entries, ","))),
	}
}

func TestAnalyzeLogins(t *testing.T) {
	ts := time.Date(2025, 5, 1, 8, 0, 0, 0, time.Local).Unix()

	records := []model.ClassifiedRecord{loginRecord(
		loginEntry("Mozilla/5.0 (iPhone; CPU iPhone OS 17_0)", "203.0.113.7", ts),
		loginEntry("Mozilla/5.0 (iPhone; CPU iPhone OS 17_0)", "203.0.113.9", ts+60),
		loginEntry("Mozilla/5.0 (Windows NT 10.0; Win64)", "198.51.100.4", ts+120),
	)}

	stats := analyzeLogins(records, 2025)

	if stats.TotalLogins != 3 {
		t.Errorf("TotalLogins = %d, want 3", stats.TotalLogins)
	}
	if stats.MostUsedDevice != "iPhone" {
		t.Errorf("MostUsedDevice = %q, want iPhone", stats.MostUsedDevice)
	}
	wantDevices := []string{"iPhone", "Windows PC"}
	if !reflect.DeepEqual(stats.Devices, wantDevices) {
		t.Errorf("Devices = %v, want %v", stats.Devices, wantDevices)
	}
}

func TestAnalyzeLogins_IPAnonymized(t *testing.T) {
	ts := time.Date(2025, 5, 1, 8, 0, 0, 0, time.Local).Unix()

	records := []model.ClassifiedRecord{loginRecord(
		loginEntry("", "203.0.113.7", ts),
		loginEntry("", "203.0.200.9", ts+60),
	)}

	stats := analyzeLogins(records, 2025)

	// Both addresses share the first two octets and collapse to one location;
	// the full address must never surface.
	want := []string{"203.0.x.x"}
	if !reflect.DeepEqual(stats.Locations, want) {
		t.Errorf("Locations = %v, want %v", stats.Locations, want)
	}
	// Empty user agents contribute no device rows.
	if len(stats.Devices) != 0 || stats.MostUsedDevice != "Unknown" {
		t.Errorf("Devices = %v, MostUsedDevice = %q, want none/Unknown", stats.Devices, stats.MostUsedDevice)
	}
}

func TestAnalyzeLogins_YearFilter(t *testing.T) {
	records := []model.ClassifiedRecord{loginRecord(
		loginEntry("Mozilla/5.0 (Android 14)", "192.0.2.1", time.Date(2023, 1, 1, 0, 0, 0, 0, time.Local).Unix()),
	)}

	if stats := analyzeLogins(records, 2025); stats.TotalLogins != 0 {
		t.Errorf("TotalLogins = %d, want 0 for out-of-year events", stats.TotalLogins)
	}
}
