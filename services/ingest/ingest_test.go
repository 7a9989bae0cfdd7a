package ingest_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"ufcpipe/lib/csvtable"
	"ufcpipe/services/ingest"

	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	base  string
	pages map[string]string
	calls []string
}

func (f *fakeFetcher) BaseURL() string { return f.base }

func (f *fakeFetcher) FetchHTML(_ context.Context, url string) (string, error) {
	f.calls = append(f.calls, url)
	page, ok := f.pages[url]
	if !ok {
		return "", fmt.Errorf("unexpected status 404")
	}
	return page, nil
}

const fakeBase = "http://ufcstats.com"

func eventPage(name, fightID string) string {
	return fmt.Sprintf(`
		<h2 class="b-content__title">%s</h2>
		<ul>
			<li class="b-list__box-list-item"><i>Date:</i> April 13, 2024</li>
			<li class="b-list__box-list-item"><i>Location:</i> Las Vegas, Nevada, USA</li>
		</ul>
		<table class="b-fight-details__table"><tbody>
			<tr>
				<td><a href="%s/fight-details/%s"><i>WIN</i></a></td>
				<td>
					<p><a href="%s/fighter-details/%s-f1">First Fighter</a></p>
					<p><a href="%s/fighter-details/%s-f2">Second Fighter</a></p>
				</td>
				<td><p>1</p><p>0</p></td>
				<td><p>30 of 50</p><p>12 of 40</p></td>
				<td><p>2</p><p>0</p></td>
				<td><p>0</p><p>0</p></td>
				<td>Lightweight</td><td>KO/TKO</td><td>2</td><td>3:15</td>
			</tr>
		</tbody></table>`,
		name, fakeBase, fightID, fakeBase, fightID, fakeBase, fightID)
}

func writeCSV(t *testing.T, path string, table csvtable.Table) {
	t.Helper()
	require.NoError(t, csvtable.WriteFile(path, table))
}

func TestEventDetails(t *testing.T) {
	dir := t.TempDir()

	seedPath := filepath.Join(dir, "event_directory__ufcstats__2026-08-25.csv")
	seeds := csvtable.New([]string{"event_url", "event_name", "event_date_raw", "event_location_raw"})
	seeds.Rows = []csvtable.Record{
		{"event_url": fakeBase + "/event-details/abc", "event_name": "seed name", "event_date_raw": "seed date"},
		{"event_url": fakeBase + "/event-details/broken"},
		{"event_url": ""},
	}
	writeCSV(t, seedPath, seeds)

	fetcher := &fakeFetcher{
		base: fakeBase,
		pages: map[string]string{
			fakeBase + "/event-details/abc": eventPage("UFC 300", "aaa"),
		},
	}

	outPath, rows, err := ingest.EventDetails(context.Background(), fetcher, ingest.EventDetailsOptions{
		InputPath: seedPath,
		OutDir:    dir,
	})
	require.NoError(t, err)
	require.Equal(t, 1, rows)
	require.Equal(t, filepath.Join(dir, "event_details__ufcstats__2026-08-25.csv"), outPath)

	// The broken event was attempted and skipped; the blank seed never
	// reached the fetcher.
	require.Equal(t, []string{
		fakeBase + "/event-details/abc",
		fakeBase + "/event-details/broken",
	}, fetcher.calls)

	got, err := csvtable.ReadFile(outPath)
	require.NoError(t, err)
	require.Len(t, got.Rows, 1)
	row := got.Rows[0]
	require.Equal(t, "2026-08-25", row["snapshot"])
	// Page meta wins over the seed row.
	require.Equal(t, "UFC 300", row["event_name"])
	require.Equal(t, "April 13, 2024", row["event_date_raw"])
	require.Equal(t, fakeBase+"/fight-details/aaa", row["bout_url"])
	require.Equal(t, "1", row["bout_order"])
	require.Equal(t, "win", row["fighter_1_result"])
	require.Equal(t, "loss", row["fighter_2_result"])
}

func TestEventDetailsAllFailuresFatal(t *testing.T) {
	dir := t.TempDir()

	seedPath := filepath.Join(dir, "event_directory__ufcstats__2026-08-25.csv")
	seeds := csvtable.New([]string{"event_url"})
	seeds.Rows = []csvtable.Record{{"event_url": fakeBase + "/event-details/gone"}}
	writeCSV(t, seedPath, seeds)

	fetcher := &fakeFetcher{base: fakeBase, pages: map[string]string{}}

	_, _, err := ingest.EventDetails(context.Background(), fetcher, ingest.EventDetailsOptions{
		InputPath: seedPath,
		OutDir:    dir,
	})
	require.Error(t, err)
}

func TestEventDirectoryEmptyParseFatal(t *testing.T) {
	fetcher := &fakeFetcher{
		base: fakeBase,
		pages: map[string]string{
			fakeBase + "/statistics/events/completed?page=all": "<html><body></body></html>",
		},
	}
	_, _, err := ingest.EventDirectory(context.Background(), fetcher, ingest.EventDirectoryOptions{
		OutPath: filepath.Join(t.TempDir(), "out.csv"),
	})
	require.Error(t, err)
}
