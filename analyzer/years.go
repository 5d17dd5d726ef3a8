package analyzer

import (
	"sort"

	"github.com/tidwall/gjson"

	"github.com/jaidevxr/instagram-wrapped/model"
	"github.com/jaidevxr/instagram-wrapped/utils"
)

// AvailableYears scans every timestamp-bearing field in every record and
// returns the distinct calendar years, most recent first.
func AvailableYears(records []model.ClassifiedRecord) []int {
	seen := make(map[int]struct{})
	for _, rec := range records {
		collectYears(gjson.ParseBytes(rec.Content), seen)
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// collectYears walks the document tree with an explicit work stack; export
// trees are arbitrarily nested and recursion depth must not depend on input.
func collectYears(root gjson.Result, years map[int]struct{}) {
	stack := []gjson.Result{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node.ForEach(func(key, value gjson.Result) bool {
			switch key.String() {
			case "timestamp_ms", "timestamp", "creation_timestamp":
				if value.Type == gjson.Number {
					if ts := value.Int(); ts > 0 {
						years[utils.Year(ts)] = struct{}{}
					}
				}
			}
			if value.IsObject() || value.IsArray() {
				stack = append(stack, value)
			}
			return true
		})
	}
}
