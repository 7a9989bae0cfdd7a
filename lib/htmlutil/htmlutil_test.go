package htmlutil_test

import (
	"strings"
	"testing"

	"ufcpipe/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func doc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return d
}

func TestStackedLinesParagraphs(t *testing.T) {
	d := doc(t, `<table><tr><td><p> 15 of 27 </p><p>8 of 19</p></td></tr></table>`)
	top, bottom := htmlutil.StackedLines(d.Find("td"))
	require.Equal(t, "15 of 27", top)
	require.Equal(t, "8 of 19", bottom)
}

func TestStackedLinesSingleParagraph(t *testing.T) {
	d := doc(t, `<table><tr><td><p>2</p></td></tr></table>`)
	top, bottom := htmlutil.StackedLines(d.Find("td"))
	require.Equal(t, "2", top)
	require.Equal(t, "", bottom)
}

func TestStackedLinesBareText(t *testing.T) {
	// No <p> wrappers: values separated by block elements.
	d := doc(t, `<table><tr><td><div>1</div><div>0</div></td></tr></table>`)
	top, bottom := htmlutil.StackedLines(d.Find("td"))
	require.Equal(t, "1", top)
	require.Equal(t, "0", bottom)
}

func TestStackedLinesEmpty(t *testing.T) {
	d := doc(t, `<table><tr><td>   </td></tr></table>`)
	top, bottom := htmlutil.StackedLines(d.Find("td"))
	require.Equal(t, "", top)
	require.Equal(t, "", bottom)
}

func TestLabeledItem(t *testing.T) {
	d := doc(t, `<ul>
		<li class="b-list__box-list-item"><i>Date:</i> April 13, 2024</li>
		<li class="b-list__box-list-item"><i>Location:</i> Las Vegas, Nevada, USA</li>
	</ul>`)
	require.Equal(t, "April 13, 2024", htmlutil.LabeledItem(d, "li.b-list__box-list-item", "Date"))
	require.Equal(t, "Las Vegas, Nevada, USA", htmlutil.LabeledItem(d, "li.b-list__box-list-item", "Location"))
	require.Equal(t, "", htmlutil.LabeledItem(d, "li.b-list__box-list-item", "Referee"))
}

func TestLabeledSegments(t *testing.T) {
	labels := []string{"Method", "Round", "Time", "Time format", "Referee"}

	got := htmlutil.LabeledSegments(
		"Method: Submission Round: 2 Time: 4:46 Time format: 5 Rnd (5-5-5-5-5) Referee: Herb Dean",
		labels,
	)
	want := map[string]string{
		"Method":      "Submission",
		"Round":       "2",
		"Time":        "4:46",
		"Time format": "5 Rnd (5-5-5-5-5)",
		"Referee":     "Herb Dean",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("segments mismatch (-want +got):\n%s", diff)
	}
}

func TestLabeledSegmentsMissingLabels(t *testing.T) {
	labels := []string{"Method", "Round", "Time", "Referee"}

	// Referee absent: Time's value runs to the end of the text.
	got := htmlutil.LabeledSegments("Method: KO/TKO Round: 1 Time: 0:30", labels)
	want := map[string]string{
		"Method": "KO/TKO",
		"Round":  "1",
		"Time":   "0:30",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("segments mismatch (-want +got):\n%s", diff)
	}
	_, ok := got["Referee"]
	require.False(t, ok)
}

func TestFindTableByHeader(t *testing.T) {
	d := doc(t, `
		<table><thead><tr><th>Fighter</th><th>KD</th></tr></thead><tbody></tbody></table>
		<table><thead><tr><th>Fighter</th><th>Head</th><th>Body</th><th>Leg</th>
			<th>Distance</th><th>Clinch</th><th>Ground</th></tr></thead>
			<tbody><tr><td>x</td></tr></tbody></table>`)

	tbl := htmlutil.FindTableByHeader(d, []string{"Head", "Body", "Leg", "Distance", "Clinch", "Ground"})
	require.NotNil(t, tbl)
	require.Equal(t, 1, tbl.Find("tbody tr").Length())

	require.Nil(t, htmlutil.FindTableByHeader(d, []string{"Sig. str.", "Ctrl"}))
}
