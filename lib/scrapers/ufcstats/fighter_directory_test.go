package ufcstats_test

import (
	"testing"

	"ufcpipe/lib/scrapers/ufcstats"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const fighterDirectoryPage = `
<table class="b-statistics__table">
  <tbody>
    <tr>
      <td><a href="https://www.ufcstats.com/fighter-details/f1">Jon</a></td>
      <td><a href="https://www.ufcstats.com/fighter-details/f1">Jones</a></td>
      <td>Bones</td>
      <td>6' 4"</td>
      <td>248 lbs.</td>
      <td>84.5"</td>
      <td>Orthodox</td>
      <td>27</td>
      <td>1</td>
      <td>0</td>
      <td><img alt="belt"/></td>
    </tr>
    <tr>
      <td><a href="http://ufcstats.com/fighter-details/f1">Jon</a></td>
      <td><a href="http://ufcstats.com/fighter-details/f1">Jones</a></td>
      <td>duplicate url, skipped</td>
      <td></td><td></td><td></td><td></td><td></td>
    </tr>
    <tr>
      <td>row without anchor</td>
      <td></td><td></td><td></td><td></td><td></td><td></td><td></td>
    </tr>
    <tr>
      <td><a href="http://ufcstats.com/fighter-details/f2">Amanda</a></td>
      <td><a href="http://ufcstats.com/fighter-details/f2">Nunes</a></td>
      <td>Lioness</td>
      <td>5' 8"</td>
      <td>135 lbs.</td>
      <td>69.0"</td>
      <td>Orthodox</td>
      <td>23</td>
    </tr>
  </tbody>
</table>`

func TestParseFighterDirectory(t *testing.T) {
	rows, err := ufcstats.ParseFighterDirectory(fighterDirectoryPage, "http://ufcstats.com")
	require.NoError(t, err)

	want := []ufcstats.FighterDirectoryRow{
		{
			FighterURL:  "http://ufcstats.com/fighter-details/f1",
			FighterName: "Jon Jones",
			FirstName:   "Jon",
			LastName:    "Jones",
			NicknameRaw: "Bones",
			HeightRaw:   `6' 4"`,
			WeightRaw:   "248 lbs.",
			ReachRaw:    `84.5"`,
			StanceRaw:   "Orthodox",
			WRaw:        "27",
			LRaw:        "1",
			DRaw:        "0",
			BeltRaw:     "",
		},
		{
			// Only 8 cells: trailing columns come back empty.
			FighterURL:  "http://ufcstats.com/fighter-details/f2",
			FighterName: "Amanda Nunes",
			FirstName:   "Amanda",
			LastName:    "Nunes",
			NicknameRaw: "Lioness",
			HeightRaw:   `5' 8"`,
			WeightRaw:   "135 lbs.",
			ReachRaw:    `69.0"`,
			StanceRaw:   "Orthodox",
			WRaw:        "23",
		},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFighterDirectoryEmptyPage(t *testing.T) {
	rows, err := ufcstats.ParseFighterDirectory("<html><body></body></html>", "http://ufcstats.com")
	require.NoError(t, err)
	require.Empty(t, rows)
}
