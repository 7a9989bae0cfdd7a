package ufcstats

import (
	"strings"

	"ufcpipe/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

type EventDirectoryRow struct {
	EventURL         string
	EventName        string
	EventDateRaw     string
	EventLocationRaw string
}

// ParseEventDirectory parses the completed-events listing page
// (/statistics/events/completed?page=all) in document order. Rows
// missing a URL or name are skipped. A page without the listing table
// yields an empty slice, not an error.
func ParseEventDirectory(html, base string) ([]EventDirectoryRow, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	table := doc.Find("table.b-statistics__table-events").First()
	if table.Length() == 0 {
		table = doc.Find("table").First()
	}
	if table.Length() == 0 {
		return nil, nil
	}

	var rows []EventDirectoryRow
	table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < 2 {
			return
		}

		anchor := cells.Eq(0).Find(`a[href*="event-details"]`).First()
		name := textutil.Clean(anchor.Text())
		url := NormalizeURL(anchor.AttrOr("href", ""), base)
		if url == "" || name == "" {
			return
		}

		rows = append(rows, EventDirectoryRow{
			EventURL:         url,
			EventName:        name,
			EventDateRaw:     textutil.Clean(cells.Eq(0).Find("span.b-statistics__date").First().Text()),
			EventLocationRaw: textutil.Clean(cells.Eq(1).Text()),
		})
	})

	return rows, nil
}
