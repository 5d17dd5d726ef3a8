package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/jaidevxr/instagram-wrapped/model"
	"github.com/jaidevxr/instagram-wrapped/utils"
)

// skipExtensions are media and plain-text payloads that can never hold
// structured export data.
var skipExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".mp4":  true,
	".webp": true,
	".txt":  true,
	".webm": true,
}

var markupExtensions = map[string]bool{
	".html": true,
	".htm":  true,
}

// Result is the outcome of one ingestion run.
type Result struct {
	Records []model.ClassifiedRecord

	// ParseFailures counts entries that were not valid JSON; Unclassified
	// counts documents that matched no detector and no path hint. Both are
	// recovered locally and never fail the run.
	ParseFailures int
	Unclassified  int
	SkippedMedia  int

	// MarkupOnly signals an HTML-formatted export: markup entries were seen
	// but nothing classifiable was found. The caller shows a different
	// message for this than for a genuinely empty archive.
	MarkupOnly bool
}

// Ingest walks a ZIP export and classifies every parseable entry. It fails
// only when the container itself cannot be read; individual bad entries are
// logged, counted and skipped.
func Ingest(data []byte) (*Result, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrCorruptArchive, err)
	}

	res := &Result{}
	sawMarkup := false

	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}

		ext := strings.ToLower(path.Ext(f.Name))
		if skipExtensions[ext] {
			res.SkippedMedia++
			continue
		}
		if markupExtensions[ext] {
			sawMarkup = true
			continue
		}

		content, err := readEntry(f)
		if err != nil {
			log.Warn().Err(err).Str("entry", f.Name).Msg("Failed to read archive entry")
			res.ParseFailures++
			continue
		}
		if !gjson.ValidBytes(content) {
			log.Warn().Str("entry", f.Name).Msg("Entry is not valid JSON, skipping")
			res.ParseFailures++
			continue
		}

		category := Classify(gjson.ParseBytes(content), f.Name)
		if category == model.CategoryUnknown {
			res.Unclassified++
			continue
		}

		res.Records = append(res.Records, model.ClassifiedRecord{
			Path:     f.Name,
			Category: category,
			Content:  content,
		})
	}

	res.MarkupOnly = sawMarkup && len(res.Records) == 0

	log.Info().
		Int("records", len(res.Records)).
		Int("parse_failures", res.ParseFailures).
		Int("unclassified", res.Unclassified).
		Int("skipped_media", res.SkippedMedia).
		Bool("markup_only", res.MarkupOnly).
		Msg("Archive ingested")

	return res, nil
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
