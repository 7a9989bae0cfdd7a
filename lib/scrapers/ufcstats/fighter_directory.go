package ufcstats

import (
	"strings"

	"ufcpipe/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

type FighterDirectoryRow struct {
	FighterURL  string
	FighterName string
	FirstName   string
	LastName    string
	NicknameRaw string
	HeightRaw   string
	WeightRaw   string
	ReachRaw    string
	StanceRaw   string
	WRaw        string
	LRaw        string
	DRaw        string
	BeltRaw     string
}

// Visible column layout of /statistics/fighters?char=X&page=all:
// FIRST | LAST | NICKNAME | HT. | WT. | REACH | STANCE | W | L | D | BELT
// Columns past the minimum cell count are individually optional.
const fighterDirectoryMinCells = 8

// ParseFighterDirectory parses one char partition of the fighters
// directory. Rows without a fighter-details anchor are skipped;
// results are deduplicated by URL, first occurrence kept.
func ParseFighterDirectory(html, base string) ([]FighterDirectoryRow, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	table := doc.Find("table.b-statistics__table").First()
	if table.Length() == 0 {
		table = doc.Find("table").First()
	}
	if table.Length() == 0 {
		return nil, nil
	}

	var rows []FighterDirectoryRow
	seen := make(map[string]struct{})

	table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < fighterDirectoryMinCells {
			return
		}

		url := NormalizeURL(tr.Find(`a[href*="fighter-details"]`).First().AttrOr("href", ""), base)
		if url == "" {
			return
		}
		if _, ok := seen[url]; ok {
			return
		}
		seen[url] = struct{}{}

		cell := func(i int) string {
			if i >= cells.Length() {
				return ""
			}
			return textutil.Clean(cells.Eq(i).Text())
		}

		first := cell(0)
		last := cell(1)

		rows = append(rows, FighterDirectoryRow{
			FighterURL:  url,
			FighterName: textutil.Clean(first + " " + last),
			FirstName:   first,
			LastName:    last,
			NicknameRaw: cell(2),
			HeightRaw:   cell(3),
			WeightRaw:   cell(4),
			ReachRaw:    cell(5),
			StanceRaw:   cell(6),
			WRaw:        cell(7),
			LRaw:        cell(8),
			DRaw:        cell(9),
			BeltRaw:     cell(10),
		})
	})

	return rows, nil
}
