package ufcstats

import (
	"strings"

	"ufcpipe/lib/htmlutil"
	"ufcpipe/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

// FighterDetailsRow holds the DOB plus the eight career-rate stats
// from a fighter-details page. The schema is stable: every field is
// present even when zero labels matched on the page.
type FighterDetailsRow struct {
	DOBRaw string
	SLpM   string
	StrAcc string
	SApM   string
	StrDef string
	TDAvg  string
	TDAcc  string
	TDDef  string
	SubAvg string
}

// ParseFighterDetails scans the label:value list items of a
// fighter-details page for a fixed vocabulary. Unrecognized labels are
// ignored.
func ParseFighterDetails(html string) (FighterDetailsRow, error) {
	var row FighterDetailsRow

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return row, err
	}

	row.DOBRaw = htmlutil.LabeledItem(doc, "li.b-list__box-list-item", "DOB")

	wanted := map[string]*string{
		"SLpM":      &row.SLpM,
		"Str. Acc.": &row.StrAcc,
		"SApM":      &row.SApM,
		"Str. Def.": &row.StrDef,
		"TD Avg.":   &row.TDAvg,
		"TD Acc.":   &row.TDAcc,
		"TD Def.":   &row.TDDef,
		"Sub. Avg.": &row.SubAvg,
	}

	doc.Find("li.b-list__box-list-item").Each(func(_ int, li *goquery.Selection) {
		txt := textutil.Clean(li.Text())
		label, value, found := strings.Cut(txt, ":")
		if !found {
			return
		}
		if dst, ok := wanted[textutil.Clean(label)]; ok {
			*dst = textutil.Clean(value)
		}
	})

	return row, nil
}
