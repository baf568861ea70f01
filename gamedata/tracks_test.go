package gamedata

import "testing"

func TestCatalogShape(t *testing.T) {
	if len(MK8Tracks) != 96 {
		t.Fatalf("catalog has %d tracks, want 96", len(MK8Tracks))
	}
	if len(CupNames) != 24 {
		t.Fatalf("%d cups, want 24", len(CupNames))
	}

	seen := make(map[string]bool)
	for _, track := range MK8Tracks {
		if seen[track] {
			t.Errorf("duplicate track %q", track)
		}
		seen[track] = true
	}
}

func TestTourPartition(t *testing.T) {
	tour := TourTracks()
	nonTour := NonTourTracks()

	if len(tour)+len(nonTour) != len(MK8Tracks) {
		t.Errorf("partition loses tracks: %d + %d != %d", len(tour), len(nonTour), len(MK8Tracks))
	}
	if len(tour) != 16 {
		t.Errorf("%d tour tracks, want 16", len(tour))
	}
	for _, track := range tour {
		if !IsTourTrack(track) {
			t.Errorf("%q in tour subset but IsTourTrack is false", track)
		}
	}
	for _, track := range nonTour {
		if IsTourTrack(track) {
			t.Errorf("%q in non-tour subset but IsTourTrack is true", track)
		}
	}
}

func TestEnums(t *testing.T) {
	if !IsValidTrack("Mario Circuit") || IsValidTrack("Moo Moo Farm") {
		t.Error("IsValidTrack misclassifies")
	}
	if !IsValidMode("150cc") || !IsValidMode("200cc") || IsValidMode("100cc") {
		t.Error("IsValidMode misclassifies")
	}
	if !IsValidItems("shrooms") || !IsValidItems("no_items") || IsValidItems("bananas") {
		t.Error("IsValidItems misclassifies")
	}
}

func TestWorldRecordCoverage(t *testing.T) {
	for _, track := range MK8Tracks {
		if _, ok := WorldRecordsItemless[track]; !ok {
			t.Errorf("no itemless record for %s", track)
		}
	}
	for _, cc := range GameModes {
		table, ok := WorldRecordsShrooms[cc]
		if !ok {
			t.Fatalf("no shrooms table for %s", cc)
		}
		for _, track := range MK8Tracks {
			if _, ok := table[track]; !ok {
				t.Errorf("no %s shrooms record for %s", cc, track)
			}
		}
	}
}
