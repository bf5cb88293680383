package ai

import (
	"strings"
	"testing"
)

const validElement = `{
	"id": "A", "name": "錦市場", "type": "吃貨派",
	"description": "京都的廚房，邊走邊吃的靈魂修行。",
	"isIndoor": true, "rating": 4.6, "time": "09:00 - 11:00",
	"duration": 120, "cost": "NT$800", "lat": 35.005, "lng": 135.764,
	"imageSearchKeyword": "kyoto market alley"
}`

func TestDecodeItinerary(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantLen int
		wantErr bool
	}{
		{name: "empty payload is zero-stop success", raw: "", wantLen: 0},
		{name: "blank payload is zero-stop success", raw: "   ", wantLen: 0},
		{name: "single valid element", raw: "[" + validElement + "]", wantLen: 1},
		{name: "empty array", raw: "[]", wantLen: 0},
		{name: "malformed json", raw: "{not json", wantErr: true},
		{name: "object instead of array", raw: validElement, wantErr: true},
		{
			name:    "missing id rejects whole batch",
			raw:     `[` + validElement + `,{"name":"somewhere","description":"x"}]`,
			wantErr: true,
		},
		{
			name:    "duplicate ids rejected",
			raw:     "[" + validElement + "," + validElement + "]",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeItinerary(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %d destinations", len(got))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.wantLen {
				t.Fatalf("expected %d destinations, got %d", tt.wantLen, len(got))
			}
		})
	}
}

func TestDecodeItineraryFieldMapping(t *testing.T) {
	got, err := decodeItinerary("[" + validElement + "]")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	d := got[0]
	if d.ID != "A" || d.Name != "錦市場" || string(d.Type) != "吃貨派" {
		t.Fatalf("identity fields wrong: %+v", d)
	}
	if d.Duration != 120 || d.Rating != 4.6 || d.Lat != 35.005 || d.Lng != 135.764 {
		t.Fatalf("numeric fields wrong: %+v", d)
	}
	if !strings.Contains(d.Image, "keyword=kyoto+market+alley") {
		t.Fatalf("image keyword not encoded into URL: %s", d.Image)
	}
}

func TestDecodeDestination(t *testing.T) {
	if _, err := decodeDestination(""); err == nil {
		t.Fatal("empty payload should fail for a single destination")
	}
	if _, err := decodeDestination(`{"id":"B2"}`); err == nil {
		t.Fatal("missing required fields should fail")
	}

	d, err := decodeDestination(validElement)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.ID != "A" {
		t.Fatalf("expected id A, got %s", d.ID)
	}
}

func TestDecodeDestinationKeywordFallback(t *testing.T) {
	raw := `{
		"id": "B2", "name": "哲學之道", "type": "文青派",
		"description": "沿著水渠思考人生，或只是發呆。",
		"isIndoor": false, "rating": 4.4, "time": "14:00 - 15:30",
		"duration": 90, "cost": "免費", "lat": 35.027, "lng": 135.794,
		"imageSearchKeyword": ""
	}`
	d, err := decodeDestination(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Missing keyword falls back to the destination name.
	if !strings.Contains(d.Image, "keyword=%E5%93%B2%E5%AD%B8%E4%B9%8B%E9%81%93") {
		t.Fatalf("image URL should fall back to encoded name: %s", d.Image)
	}
}

func TestCleanJSONString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"```json\n[]\n```", "[]"},
		{"```\n{}\n```", "{}"},
		{"  []  ", "[]"},
		{"[]", "[]"},
	}
	for _, tt := range tests {
		if got := cleanJSONString(tt.in); got != tt.want {
			t.Fatalf("cleanJSONString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPlaceholderImageURL(t *testing.T) {
	u := placeholderImageURL("cozy tokyo alley")
	if !strings.HasPrefix(u, "https://images.unsplash.com/photo-1500000000000?") {
		t.Fatalf("unexpected base URL: %s", u)
	}
	if !strings.Contains(u, "keyword=cozy+tokyo+alley") {
		t.Fatalf("keyword not query-encoded: %s", u)
	}
	if !strings.Contains(u, "sig=") {
		t.Fatalf("missing disambiguator: %s", u)
	}
}
