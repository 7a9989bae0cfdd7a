package build

import (
	"testing"

	"ufcpipe/lib/csvtable"

	"github.com/stretchr/testify/require"
)

func dimFighterInputs() (directory, details, factBout csvtable.Table) {
	directory = csvtable.New([]string{
		"snapshot", "char", "fighter_url", "fighter_name",
		"first_name", "last_name", "nickname_raw",
	})
	directory.Rows = []csvtable.Record{
		{
			"snapshot": "2026-08-25", "char": "J",
			"fighter_url":  "https://www.ufcstats.com/fighter-details/f1",
			"fighter_name": "Jon Jones",
			"first_name":   "", "last_name": "Jones",
			"nickname_raw": "Bones",
		},
		{
			"snapshot": "2026-08-25", "char": "N",
			"fighter_url":  "http://ufcstats.com/fighter-details/f2",
			"fighter_name": "Amanda Nunes",
			"first_name":   "Amanda", "last_name": "Nunes",
			"nickname_raw": "Lioness",
		},
		{
			"snapshot": "2026-08-25", "char": "R",
			"fighter_url":  "http://ufcstats.com/fighter-details/f3",
			"fighter_name": "Retired Guy",
			"first_name":   "Retired", "last_name": "Guy",
			"nickname_raw": "",
		},
	}

	details = csvtable.New([]string{
		"snapshot", "fighter_url", "first_name", "last_name", "dob_raw", "slpm",
	})
	details.Rows = []csvtable.Record{
		{
			"snapshot":    "2026-08-25",
			"fighter_url": "http://ufcstats.com/fighter-details/f1",
			"first_name":  "Jon", "last_name": "Jones",
			"dob_raw": "Jul 19, 1987", "slpm": "4.29",
		},
	}

	factBout = csvtable.New([]string{
		"is_ufc", "weight_class_raw", "fighter_1_url", "fighter_2_url",
	})
	factBout.Rows = []csvtable.Record{
		{
			"is_ufc":           "true",
			"weight_class_raw": "Light Heavyweight",
			"fighter_1_url":    "http://ufcstats.com/fighter-details/f1",
			"fighter_2_url":    "http://ufcstats.com/fighter-details/f9",
		},
		{
			"is_ufc":           "true",
			"weight_class_raw": "Women's Bantamweight",
			"fighter_1_url":    "http://ufcstats.com/fighter-details/f2",
			"fighter_2_url":    "http://ufcstats.com/fighter-details/f8",
		},
		{
			"is_ufc":           "false",
			"weight_class_raw": "Women's Featherweight",
			"fighter_1_url":    "http://ufcstats.com/fighter-details/f2",
			"fighter_2_url":    "",
		},
		{
			"is_ufc":           "true",
			"weight_class_raw": "Catch Weight",
			"fighter_1_url":    "http://ufcstats.com/fighter-details/f2",
			"fighter_2_url":    "http://ufcstats.com/fighter-details/f7",
		},
	}
	return directory, details, factBout
}

func TestDimFighter(t *testing.T) {
	directory, details, factBout := dimFighterInputs()

	got, err := DimFighter(directory, details, factBout)
	require.NoError(t, err)
	require.Len(t, got.Rows, 3)

	// Tracking columns never survive the build.
	require.False(t, got.Has("snapshot"))
	require.False(t, got.Has("char"))

	byURL := make(map[string]csvtable.Record)
	for _, r := range got.Rows {
		byURL[r["fighter_url"]] = r
	}

	f1 := byURL["http://ufcstats.com/fighter-details/f1"]
	require.NotNil(t, f1)
	// Blank directory first_name backfilled from the details side.
	require.Equal(t, "Jon", f1["first_name"])
	require.Equal(t, "Jul 19, 1987", f1["dob_raw"])
	require.Equal(t, "4.29", f1["slpm"])
	require.Equal(t, "1", f1["is_ufc_fighter"])
	require.Equal(t, "0", f1["is_female"])

	// Two of three bouts in women's divisions: majority vote passes.
	f2 := byURL["http://ufcstats.com/fighter-details/f2"]
	require.Equal(t, "1", f2["is_ufc_fighter"])
	require.Equal(t, "1", f2["is_female"])
	// No details row: joined columns are empty, not absent.
	require.Equal(t, "", f2["dob_raw"])

	// No bouts at all: flags default to 0.
	f3 := byURL["http://ufcstats.com/fighter-details/f3"]
	require.Equal(t, "0", f3["is_ufc_fighter"])
	require.Equal(t, "0", f3["is_female"])
}

func TestDimFighterTieBreaksFalse(t *testing.T) {
	directory, details, factBout := dimFighterInputs()

	// One women's bout, one men's bout: a tie is not a majority.
	factBout.Rows = []csvtable.Record{
		{
			"is_ufc":           "true",
			"weight_class_raw": "Women's Flyweight",
			"fighter_1_url":    "http://ufcstats.com/fighter-details/f1",
			"fighter_2_url":    "",
		},
		{
			"is_ufc":           "true",
			"weight_class_raw": "Flyweight",
			"fighter_1_url":    "http://ufcstats.com/fighter-details/f1",
			"fighter_2_url":    "",
		},
	}

	got, err := DimFighter(directory, details, factBout)
	require.NoError(t, err)
	for _, r := range got.Rows {
		if r["fighter_url"] == "http://ufcstats.com/fighter-details/f1" {
			require.Equal(t, "0", r["is_female"])
			return
		}
	}
	t.Fatal("fighter f1 not found")
}

func TestDimFighterColumnOrder(t *testing.T) {
	directory, details, factBout := dimFighterInputs()
	got, err := DimFighter(directory, details, factBout)
	require.NoError(t, err)

	// Preferred columns present in the inputs lead, flags included.
	want := []string{
		"fighter_url", "fighter_name", "first_name", "last_name",
		"nickname_raw", "dob_raw", "slpm", "is_ufc_fighter", "is_female",
	}
	require.Equal(t, want, got.Columns)
}

func TestDimFighterMissingKeyFatal(t *testing.T) {
	_, details, factBout := dimFighterInputs()
	_, err := DimFighter(csvtable.New([]string{"name"}), details, factBout)
	require.Error(t, err)
	require.Contains(t, err.Error(), "fighter_url")
}
