package catalog

import "testing"

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  int
		ok    bool
	}{
		{"nil", nil, 0, false},
		{"number", float64(90), 90, true},
		{"fractional number", 90.7, 90, true},
		{"negative clamped", float64(-5), 0, true},
		{"int", 42, 42, true},
		{"plain seconds string", "75", 75, true},
		{"mm:ss", "1:30", 90, true},
		{"hh:mm:ss", "1:02:03", 3723, true},
		{"many components", "1:1:1:1", 219661, true},
		{"padded components", " 1 : 30 ", 90, true},
		{"fractional string", "1:30.5", 90, true},
		{"non-numeric component", "1:abc", 0, false},
		{"empty string", "", 0, false},
		{"empty component", "1::30", 0, false},
		{"bool", true, 0, false},
		{"object", map[string]any{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimestamp(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseTimestamp(%v) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseTimestamp(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassifyVideoCategory(t *testing.T) {
	tests := []struct {
		input string
		want  VideoCategory
	}{
		{"3D Live", CategoryLive},
		{"LIVE", CategoryLive},
		{"MV", CategoryMV},
		{"Official MV", CategoryMV},
		{"Streaming", CategoryStreaming},
		{"singing streaming", CategoryStreaming},
		{"short", CategoryOther},
		{"", CategoryOther},
		// Priority order: live wins over mv when both appear.
		{"Live MV", CategoryLive},
		{"mv streaming", CategoryMV},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ClassifyVideoCategory(tt.input); got != tt.want {
				t.Errorf("ClassifyVideoCategory(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassifyPerformanceType(t *testing.T) {
	if got := ClassifyPerformanceType(nil); got != PerformanceSolo {
		t.Errorf("nil id list = %v, want solo", got)
	}
	if got := ClassifyPerformanceType([]int{1}); got != PerformanceSolo {
		t.Errorf("one id = %v, want solo", got)
	}
	if got := ClassifyPerformanceType([]int{1, 2}); got != PerformanceUnit {
		t.Errorf("two ids = %v, want unit", got)
	}
	// Unofficial ids still count toward the performer total.
	if got := ClassifyPerformanceType([]int{9001, 9002}); got != PerformanceUnit {
		t.Errorf("two unofficial ids = %v, want unit", got)
	}
}

func testDirectory() Directory {
	return Directory{
		1: {ID: 1, Name: "Kanata", Color: "#76a2dc"},
		2: {ID: 2, NameJP: "Watame", Color: "#ffd3b5"},
		3: {ID: 3, DisplayNameAlt: "Suisei"},
	}
}

func TestResolveSingers_OfficialIDs(t *testing.T) {
	singers := ResolveSingers([]int{1, 2}, nil, nil, testDirectory())

	if len(singers) != 2 {
		t.Fatalf("len = %d, want 2", len(singers))
	}
	if singers[0].Name != "Kanata" || singers[0].Color != "#76a2dc" {
		t.Errorf("singers[0] = %+v, want Kanata/#76a2dc", singers[0])
	}
	if singers[1].Name != "Watame" {
		t.Errorf("singers[1] = %+v, want Watame", singers[1])
	}
}

func TestResolveSingers_UnofficialIDExcluded(t *testing.T) {
	singers := ResolveSingers([]int{1, 9001}, nil, nil, testDirectory())

	if len(singers) != 1 || singers[0].Name != "Kanata" {
		t.Errorf("singers = %+v, want only Kanata", singers)
	}
}

func TestResolveSingers_MissingIDPlaceholder(t *testing.T) {
	singers := ResolveSingers([]int{42}, nil, nil, testDirectory())

	if len(singers) != 1 || singers[0].Name != "ID: 42" {
		t.Errorf("singers = %+v, want placeholder ID: 42", singers)
	}
}

func TestResolveSingers_Sentinel(t *testing.T) {
	singers := ResolveSingers(nil, nil, nil, testDirectory())

	if len(singers) != 1 {
		t.Fatalf("len = %d, want exactly one sentinel", len(singers))
	}
	if singers[0].Name != "(unknown)" || singers[0].Color != "" {
		t.Errorf("sentinel = %+v", singers[0])
	}
}

func TestResolveSingers_DedupePreservesOrder(t *testing.T) {
	singers := ResolveSingers([]int{1}, []string{"Kanata", "Guest"}, "Guest、Kanata", testDirectory())

	want := []string{"Kanata", "Guest"}
	if len(singers) != len(want) {
		t.Fatalf("singers = %+v, want %v", singers, want)
	}
	for i, name := range want {
		if singers[i].Name != name {
			t.Errorf("singers[%d] = %q, want %q", i, singers[i].Name, name)
		}
	}
	// Directory color survives dedupe since the official entry came first.
	if singers[0].Color != "#76a2dc" {
		t.Errorf("singers[0].Color = %q, want directory color", singers[0].Color)
	}
}

func TestNamesFromInfo(t *testing.T) {
	tests := []struct {
		name string
		info any
		want []string
	}{
		{"nil", nil, nil},
		{"array", []any{"A", " B ", ""}, []string{"A", "B"}},
		{"object singer field", map[string]any{"singer": []any{"A", "B"}}, []string{"A", "B"}},
		{"object singers field", map[string]any{"singers": []any{"C"}}, []string{"C"}},
		{"object without field", map[string]any{"note": "x"}, nil},
		{"json array string", `["A","B"]`, []string{"A", "B"}},
		{"json object string", `{"singer":["A"]}`, []string{"A"}},
		{"empty object json", "{}", nil},
		{"broken json", `{"singer":`, nil},
		{"plain delimited", "A、B,C & D + E / F", []string{"A", "B", "C", "D", "E", "F"}},
		{"bracket junk dropped", "A、{}、[]", []string{"A"}},
		{"plain single", "Solo Guest", []string{"Solo Guest"}},
		{"non-string", 12.5, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := namesFromInfo(tt.info)
			if len(got) != len(tt.want) {
				t.Fatalf("namesFromInfo(%v) = %v, want %v", tt.info, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("namesFromInfo(%v)[%d] = %q, want %q", tt.info, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNormalizeSong_FieldPrecedence(t *testing.T) {
	raw := RawSong{
		ID:       1,
		MovieID:  10,
		Title:    "song",
		StartSec: float64(30),
		Time:     float64(99),
		EndTime:  "1:00",
	}

	song := NormalizeSong(raw, nil)

	if song.Start == nil || *song.Start != 30 {
		t.Errorf("Start = %v, want 30 (start_sec wins over time)", song.Start)
	}
	if song.End == nil || *song.End != 60 {
		t.Errorf("End = %v, want 60", song.End)
	}
}

func TestNormalizeSong_UnparseableStart(t *testing.T) {
	raw := RawSong{ID: 1, MovieID: 10, Start: "bogus"}

	song := NormalizeSong(raw, nil)

	if song.Start != nil {
		t.Errorf("Start = %v, want nil", song.Start)
	}
	if song.StartSeconds() != 0 {
		t.Errorf("StartSeconds() = %d, want 0", song.StartSeconds())
	}
	if song.HasEnd() {
		t.Error("HasEnd() should be false without an end")
	}
}

func TestSong_HasEnd(t *testing.T) {
	start, end := 30, 45
	song := Song{Start: &start, End: &end}
	if !song.HasEnd() {
		t.Error("end after start should count as a boundary")
	}

	badEnd := 30
	song.End = &badEnd
	if song.HasEnd() {
		t.Error("end at start is not a usable boundary")
	}

	earlier := 10
	song.End = &earlier
	if song.HasEnd() {
		t.Error("end before start is not a usable boundary")
	}
}
