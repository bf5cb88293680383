package trip

import "testing"

func TestEnumValidity(t *testing.T) {
	if len(AllTravelTags()) != 7 {
		t.Fatalf("expected 7 travel tags, got %d", len(AllTravelTags()))
	}
	for _, tag := range AllTravelTags() {
		if !tag.Valid() {
			t.Fatalf("tag %q should be valid", tag)
		}
	}
	if TravelTag("隨便").Valid() {
		t.Fatal("unknown tag accepted")
	}

	for _, tp := range AllTransportPreferences() {
		if !tp.Valid() {
			t.Fatalf("transport %q should be valid", tp)
		}
	}
	if TransportPreference("飛行").Valid() {
		t.Fatal("unknown transport accepted")
	}

	for _, f := range AllTravelFrequencies() {
		if !f.Valid() {
			t.Fatalf("frequency %q should be valid", f)
		}
	}
	if TravelFrequency("第十次").Valid() {
		t.Fatal("unknown frequency accepted")
	}
}

func TestSwapReasonsClosedSet(t *testing.T) {
	reasons := SwapReasons()
	if len(reasons) != 4 {
		t.Fatalf("expected 4 canned reasons, got %d", len(reasons))
	}
	for _, r := range reasons {
		if r.Label == "" || r.Value == "" {
			t.Fatalf("reason with empty label or value: %+v", r)
		}
	}
	if reasons[0].Label != "太俗氣" || reasons[0].Value != "太普通了，我不要當觀光客" {
		t.Fatalf("unexpected first reason: %+v", reasons[0])
	}
}
