package ufcstats_test

import (
	"fmt"
	"strings"
	"testing"

	"ufcpipe/lib/scrapers/ufcstats"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func boutRowHTML(fightID, badge string, fighterLinks int) string {
	var b strings.Builder
	b.WriteString("<tr>")
	fmt.Fprintf(&b, `<td><a href="http://ufcstats.com/fight-details/%s"><i>%s</i></a></td>`, fightID, badge)
	b.WriteString("<td>")
	for i := 0; i < fighterLinks; i++ {
		fmt.Fprintf(&b, `<p><a href="http://ufcstats.com/fighter-details/%s-f%d">Fighter %d</a></p>`, fightID, i+1, i+1)
	}
	b.WriteString("</td>")
	for _, pair := range [][2]string{{"1", "0"}, {"30 of 50", "12 of 40"}, {"2", "0"}, {"1", "0"}} {
		fmt.Fprintf(&b, "<td><p>%s</p><p>%s</p></td>", pair[0], pair[1])
	}
	b.WriteString("<td>Lightweight</td><td>KO/TKO</td><td>2</td><td>3:15</td>")
	b.WriteString("</tr>")
	return b.String()
}

func eventDetailsPage() string {
	var b strings.Builder
	b.WriteString(`<h2 class="b-content__title"> UFC 300: Pereira vs Hill </h2>`)
	b.WriteString(`<ul>
		<li class="b-list__box-list-item"><i>Date:</i> April 13, 2024</li>
		<li class="b-list__box-list-item"><i>Location:</i> Las Vegas, Nevada, USA</li>
	</ul>`)
	b.WriteString(`<table class="b-fight-details__table"><tbody>`)
	b.WriteString(boutRowHTML("aaa", "WIN", 2))
	// No fight-details anchor at all: skipped, no bout order consumed.
	b.WriteString(`<tr><td>x</td><td>y</td><td></td><td></td><td></td><td></td><td></td><td></td><td></td><td></td></tr>`)
	// Anchor present but only one fighter link: skipped after the order
	// increment, leaving a gap in the sequence.
	b.WriteString(boutRowHTML("bbb", "WIN", 1))
	b.WriteString(boutRowHTML("ccc", "DRAW", 2))
	b.WriteString(`</tbody></table>`)
	return b.String()
}

func TestParseEventDetails(t *testing.T) {
	meta, bouts, err := ufcstats.ParseEventDetails(eventDetailsPage(), "http://ufcstats.com")
	require.NoError(t, err)

	require.Equal(t, ufcstats.EventMeta{
		EventName:        "UFC 300: Pereira vs Hill",
		EventDateRaw:     "April 13, 2024",
		EventLocationRaw: "Las Vegas, Nevada, USA",
	}, meta)

	want := []ufcstats.BoutRow{
		{
			BoutURL:        "http://ufcstats.com/fight-details/aaa",
			BoutOrder:      "1",
			Fighter1Name:   "Fighter 1",
			Fighter1URL:    "http://ufcstats.com/fighter-details/aaa-f1",
			Fighter1Result: "win",
			Fighter2Name:   "Fighter 2",
			Fighter2URL:    "http://ufcstats.com/fighter-details/aaa-f2",
			Fighter2Result: "loss",
			KD1: "1", Str1: "30 of 50", TD1: "2", Sub1: "1",
			KD2: "0", Str2: "12 of 40", TD2: "0", Sub2: "0",
			WeightClassRaw: "Lightweight",
			MethodRaw:      "KO/TKO",
			RoundRaw:       "2",
			TimeRaw:        "3:15",
		},
		{
			BoutURL:        "http://ufcstats.com/fight-details/ccc",
			BoutOrder:      "3",
			Fighter1Name:   "Fighter 1",
			Fighter1URL:    "http://ufcstats.com/fighter-details/ccc-f1",
			Fighter1Result: "draw",
			Fighter2Name:   "Fighter 2",
			Fighter2URL:    "http://ufcstats.com/fighter-details/ccc-f2",
			Fighter2Result: "",
			KD1: "1", Str1: "30 of 50", TD1: "2", Sub1: "1",
			KD2: "0", Str2: "12 of 40", TD2: "0", Sub2: "0",
			WeightClassRaw: "Lightweight",
			MethodRaw:      "KO/TKO",
			RoundRaw:       "2",
			TimeRaw:        "3:15",
		},
	}
	if diff := cmp.Diff(want, bouts); diff != "" {
		t.Fatalf("bouts mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEventDetailsNoTable(t *testing.T) {
	meta, bouts, err := ufcstats.ParseEventDetails(`<h2 class="b-content__title">UFC 1</h2>`, "http://ufcstats.com")
	require.NoError(t, err)
	require.Equal(t, "UFC 1", meta.EventName)
	require.Empty(t, bouts)
}
