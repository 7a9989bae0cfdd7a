package ufcstats

import (
	"strconv"
	"strings"

	"ufcpipe/lib/htmlutil"
	"ufcpipe/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

type EventMeta struct {
	EventName        string
	EventDateRaw     string
	EventLocationRaw string
}

// BoutRow mirrors one row of the event-details bout table. All values
// are raw strings.
type BoutRow struct {
	BoutURL        string
	BoutOrder      string
	Fighter1Name   string
	Fighter1URL    string
	Fighter1Result string
	Fighter2Name   string
	Fighter2URL    string
	Fighter2Result string
	KD1, Str1, TD1, Sub1 string
	KD2, Str2, TD2, Sub2 string
	WeightClassRaw string
	MethodRaw      string
	RoundRaw       string
	TimeRaw        string
}

// parseBadge normalizes the win/loss badge cell. Precedence matters:
// "WIN" wins over any other substring present in the same cell.
func parseBadge(text string) string {
	u := strings.ToUpper(textutil.Clean(text))
	switch {
	case strings.Contains(u, "WIN"):
		return "win"
	case strings.Contains(u, "LOSS"):
		return "loss"
	case strings.Contains(u, "DRAW"):
		return "draw"
	case strings.Contains(u, "NC"), strings.Contains(u, "NO CONTEST"):
		return "nc"
	}
	return ""
}

// ParseEventDetails parses an event-details page into its meta block
// and one BoutRow per bout. Rows without a fight-details anchor (the
// bout's primary key) are skipped and do not consume a bout order.
func ParseEventDetails(html, base string) (EventMeta, []BoutRow, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return EventMeta{}, nil, err
	}

	meta := EventMeta{
		EventName:        textutil.Clean(doc.Find("h2.b-content__title").First().Text()),
		EventDateRaw:     htmlutil.LabeledItem(doc, "li.b-list__box-list-item", "Date"),
		EventLocationRaw: htmlutil.LabeledItem(doc, "li.b-list__box-list-item", "Location"),
	}

	table := doc.Find("table.b-fight-details__table").First()
	if table.Length() == 0 {
		table = doc.Find("table").First()
	}
	if table.Length() == 0 {
		return meta, nil, nil
	}

	var bouts []BoutRow
	order := 0

	table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < 10 {
			return
		}

		boutURL := NormalizeURL(tr.Find(`a[href*="fight-details"]`).First().AttrOr("href", ""), base)
		if boutURL == "" {
			return
		}
		order++

		result1 := parseBadge(cells.Eq(0).Text())
		result2 := ""
		if result1 == "win" {
			result2 = "loss"
		}

		links := cells.Eq(1).Find(`a[href*="fighter-details"]`)
		if links.Length() < 2 {
			return
		}

		kd1, kd2 := htmlutil.StackedLines(cells.Eq(2))
		str1, str2 := htmlutil.StackedLines(cells.Eq(3))
		td1, td2 := htmlutil.StackedLines(cells.Eq(4))
		sub1, sub2 := htmlutil.StackedLines(cells.Eq(5))

		bouts = append(bouts, BoutRow{
			BoutURL:        boutURL,
			BoutOrder:      strconv.Itoa(order),
			Fighter1Name:   textutil.Clean(links.Eq(0).Text()),
			Fighter1URL:    NormalizeURL(links.Eq(0).AttrOr("href", ""), base),
			Fighter1Result: result1,
			Fighter2Name:   textutil.Clean(links.Eq(1).Text()),
			Fighter2URL:    NormalizeURL(links.Eq(1).AttrOr("href", ""), base),
			Fighter2Result: result2,
			KD1: kd1, Str1: str1, TD1: td1, Sub1: sub1,
			KD2: kd2, Str2: str2, TD2: td2, Sub2: sub2,
			WeightClassRaw: textutil.Clean(cells.Eq(6).Text()),
			MethodRaw:      textutil.Clean(cells.Eq(7).Text()),
			RoundRaw:       textutil.Clean(cells.Eq(8).Text()),
			TimeRaw:        textutil.Clean(cells.Eq(9).Text()),
		})
	})

	return meta, bouts, nil
}
