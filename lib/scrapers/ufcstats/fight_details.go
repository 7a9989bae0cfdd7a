package ufcstats

import (
	"strings"

	"ufcpipe/lib/csvtable"
	"ufcpipe/lib/htmlutil"
	"ufcpipe/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

// FightDetailsRow is the flat raw-layer mirror of a fight-details
// page. Values stay raw strings ("15 of 27", "55%", "5:47"); the
// processed layer normalizes later. Every field defaults to "" so an
// absent table never fails the parse.
type FightDetailsRow struct {
	Snapshot string
	FightURL string

	EventURL  string
	EventName string

	WeightClassRaw string
	MethodRaw      string
	RoundRaw       string
	TimeRaw        string
	TimeFormatRaw  string
	RefereeRaw     string
	DetailsRaw     string

	Fighter1Name   string
	Fighter1URL    string
	Fighter1Result string
	Fighter2Name   string
	Fighter2URL    string
	Fighter2Result string

	// Totals table.
	KD1, KD2               string
	SigStr1, SigStr2       string
	SigStrPct1, SigStrPct2 string
	TotalStr1, TotalStr2   string
	TD1, TD2               string
	TDPct1, TDPct2         string
	SubAtt1, SubAtt2       string
	Rev1, Rev2             string
	Ctrl1, Ctrl2           string

	// Significant-strikes breakdown table.
	Head1, Head2         string
	Body1, Body2         string
	Leg1, Leg2           string
	Distance1, Distance2 string
	Clinch1, Clinch2     string
	Ground1, Ground2     string
}

// FightDetailsColumns fixes the raw fight_details snapshot schema.
var FightDetailsColumns = []string{
	"snapshot", "fight_url",
	"event_url", "event_name",
	"weight_class_raw", "method_raw", "round_raw", "time_raw",
	"time_format_raw", "referee_raw", "details_raw",
	"fighter_1_name", "fighter_1_url", "fighter_1_result",
	"fighter_2_name", "fighter_2_url", "fighter_2_result",
	"kd_1", "kd_2",
	"sig_str_1", "sig_str_2",
	"sig_str_pct_1", "sig_str_pct_2",
	"total_str_1", "total_str_2",
	"td_1", "td_2",
	"td_pct_1", "td_pct_2",
	"sub_att_1", "sub_att_2",
	"rev_1", "rev_2",
	"ctrl_1", "ctrl_2",
	"head_1", "head_2",
	"body_1", "body_2",
	"leg_1", "leg_2",
	"distance_1", "distance_2",
	"clinch_1", "clinch_2",
	"ground_1", "ground_2",
}

func (r FightDetailsRow) Record() csvtable.Record {
	return csvtable.Record{
		"snapshot": r.Snapshot, "fight_url": r.FightURL,
		"event_url": r.EventURL, "event_name": r.EventName,
		"weight_class_raw": r.WeightClassRaw, "method_raw": r.MethodRaw,
		"round_raw": r.RoundRaw, "time_raw": r.TimeRaw,
		"time_format_raw": r.TimeFormatRaw, "referee_raw": r.RefereeRaw,
		"details_raw": r.DetailsRaw,
		"fighter_1_name": r.Fighter1Name, "fighter_1_url": r.Fighter1URL,
		"fighter_1_result": r.Fighter1Result,
		"fighter_2_name": r.Fighter2Name, "fighter_2_url": r.Fighter2URL,
		"fighter_2_result": r.Fighter2Result,
		"kd_1": r.KD1, "kd_2": r.KD2,
		"sig_str_1": r.SigStr1, "sig_str_2": r.SigStr2,
		"sig_str_pct_1": r.SigStrPct1, "sig_str_pct_2": r.SigStrPct2,
		"total_str_1": r.TotalStr1, "total_str_2": r.TotalStr2,
		"td_1": r.TD1, "td_2": r.TD2,
		"td_pct_1": r.TDPct1, "td_pct_2": r.TDPct2,
		"sub_att_1": r.SubAtt1, "sub_att_2": r.SubAtt2,
		"rev_1": r.Rev1, "rev_2": r.Rev2,
		"ctrl_1": r.Ctrl1, "ctrl_2": r.Ctrl2,
		"head_1": r.Head1, "head_2": r.Head2,
		"body_1": r.Body1, "body_2": r.Body2,
		"leg_1": r.Leg1, "leg_2": r.Leg2,
		"distance_1": r.Distance1, "distance_2": r.Distance2,
		"clinch_1": r.Clinch1, "clinch_2": r.Clinch2,
		"ground_1": r.Ground1, "ground_2": r.Ground2,
	}
}

// The composite meta line concatenates up to five label:value segments
// with no separator ("Method: Submission Round: 2 Time: 4:46 ...").
var fightMetaLabels = []string{"Method", "Round", "Time", "Time format", "Referee", "Details"}

var totalsHeaderTokens = []string{"Sig. str.", "Total str.", "Sub. att", "Ctrl"}
var breakdownHeaderTokens = []string{"Head", "Body", "Leg", "Distance", "Clinch", "Ground"}

// ParseFightDetails parses one fight-details page into a single flat
// row. Missing sections leave their fields at "".
func ParseFightDetails(html, snapshot, fightURL string) (FightDetailsRow, error) {
	row := FightDetailsRow{Snapshot: snapshot, FightURL: fightURL}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return row, err
	}

	if anchor := doc.Find("h2.b-content__title a.b-link").First(); anchor.Length() > 0 {
		row.EventURL = strings.TrimSpace(anchor.AttrOr("href", ""))
		row.EventName = textutil.Clean(anchor.Text())
	}

	people := doc.Find("div.b-fight-details__persons div.b-fight-details__person")
	if people.Length() >= 2 {
		p1, p2 := people.Eq(0), people.Eq(1)

		row.Fighter1Result = textutil.Clean(p1.Find("i.b-fight-details__person-status").Text())
		a1 := p1.Find("a.b-fight-details__person-link").First()
		row.Fighter1Name = textutil.Clean(a1.Text())
		row.Fighter1URL = strings.TrimSpace(a1.AttrOr("href", ""))

		row.Fighter2Result = textutil.Clean(p2.Find("i.b-fight-details__person-status").Text())
		a2 := p2.Find("a.b-fight-details__person-link").First()
		row.Fighter2Name = textutil.Clean(a2.Text())
		row.Fighter2URL = strings.TrimSpace(a2.AttrOr("href", ""))
	}

	row.WeightClassRaw = textutil.Clean(doc.Find("div.b-fight-details__fight-head i.b-fight-details__fight-title").Text())

	doc.Find("div.b-fight-details__fight div.b-fight-details__content p.b-fight-details__text").Each(func(_ int, p *goquery.Selection) {
		txt := textutil.Clean(p.Text())

		if strings.Contains(txt, "Method:") {
			segments := htmlutil.LabeledSegments(txt, fightMetaLabels)
			row.MethodRaw = segments["Method"]
			row.RoundRaw = segments["Round"]
			row.TimeRaw = segments["Time"]
			row.TimeFormatRaw = segments["Time format"]
			row.RefereeRaw = segments["Referee"]
		}

		if strings.Contains(txt, "Details:") {
			_, after, _ := strings.Cut(txt, "Details:")
			row.DetailsRaw = textutil.Clean(after)
		}
	})

	if totals := htmlutil.FindTableByHeader(doc, totalsHeaderTokens); totals != nil {
		// The fight aggregate is the first body row; per-round rows
		// share the same column layout and must not bleed in.
		// Cell 0 is the fighter-name column; then KD, Sig. str.,
		// Sig. str. %, Total str., Td, Td %, Sub. att, Rev., Ctrl.
		cells := totals.Find("tbody tr").First().Find("td")
		if cells.Length() >= 10 {
			row.KD1, row.KD2 = htmlutil.StackedLines(cells.Eq(1))
			row.SigStr1, row.SigStr2 = htmlutil.StackedLines(cells.Eq(2))
			row.SigStrPct1, row.SigStrPct2 = htmlutil.StackedLines(cells.Eq(3))
			row.TotalStr1, row.TotalStr2 = htmlutil.StackedLines(cells.Eq(4))
			row.TD1, row.TD2 = htmlutil.StackedLines(cells.Eq(5))
			row.TDPct1, row.TDPct2 = htmlutil.StackedLines(cells.Eq(6))
			row.SubAtt1, row.SubAtt2 = htmlutil.StackedLines(cells.Eq(7))
			row.Rev1, row.Rev2 = htmlutil.StackedLines(cells.Eq(8))
			row.Ctrl1, row.Ctrl2 = htmlutil.StackedLines(cells.Eq(9))
		}
	}

	if breakdown := htmlutil.FindTableByHeader(doc, breakdownHeaderTokens); breakdown != nil {
		// First body row only, as above.
		// Columns: Fighter, Sig. str, Sig. str %, Head, Body, Leg,
		// Distance, Clinch, Ground.
		cells := breakdown.Find("tbody tr").First().Find("td")
		if cells.Length() >= 9 {
			row.Head1, row.Head2 = htmlutil.StackedLines(cells.Eq(3))
			row.Body1, row.Body2 = htmlutil.StackedLines(cells.Eq(4))
			row.Leg1, row.Leg2 = htmlutil.StackedLines(cells.Eq(5))
			row.Distance1, row.Distance2 = htmlutil.StackedLines(cells.Eq(6))
			row.Clinch1, row.Clinch2 = htmlutil.StackedLines(cells.Eq(7))
			row.Ground1, row.Ground2 = htmlutil.StackedLines(cells.Eq(8))
		}
	}

	return row, nil
}
