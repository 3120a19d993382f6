package catalog

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// unofficialIDFloor marks the start of the reserved singer id range.
// Ids at or above it never resolve against the talent directory and
// surface only through fallback names or the info field.
const unofficialIDFloor = 9000

// unknownSingerName is the sentinel used when nothing resolves.
const unknownSingerName = "(unknown)"

// ClassifyVideoCategory maps a free-text video type string to a
// category by case-insensitive substring match. Priority order matters:
// a type mentioning both "live" and "mv" is a live.
func ClassifyVideoCategory(typeText string) VideoCategory {
	lower := strings.ToLower(typeText)
	switch {
	case strings.Contains(lower, "live"):
		return CategoryLive
	case strings.Contains(lower, "mv"):
		return CategoryMV
	case strings.Contains(lower, "streaming"):
		return CategoryStreaming
	default:
		return CategoryOther
	}
}

// ClassifyPerformanceType classifies a song from its raw singer id list.
// The count deliberately includes unofficial (>= 9000) ids: unit status
// reflects how many people performed, not how many resolve in the
// directory.
func ClassifyPerformanceType(singerIDs []int) PerformanceType {
	if len(singerIDs) > 1 {
		return PerformanceUnit
	}
	return PerformanceSolo
}

// ParseTimestamp converts a raw timestamp value to whole seconds.
// Numbers are floored and clamped at zero. Strings are read as
// colon-separated components ("ss", "mm:ss", "hh:mm:ss", or longer)
// accumulated as acc*60+component. The second return is false for nil
// input, non-numeric components, or any other type.
func ParseTimestamp(value any) (int, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		return clampSeconds(v)
	case int:
		return clampSeconds(float64(v))
	case string:
		parts := strings.Split(v, ":")
		total := 0.0
		for _, part := range parts {
			part = strings.TrimSpace(part)
			if part == "" {
				return 0, false
			}
			n, err := strconv.ParseFloat(part, 64)
			if err != nil {
				return 0, false
			}
			total = total*60 + n
		}
		return clampSeconds(total)
	default:
		return 0, false
	}
}

func clampSeconds(v float64) (int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if v < 0 {
		return 0, true
	}
	return int(math.Floor(v)), true
}

// ResolveSingers builds the ordered singer list for a song from three
// sources: official directory ids, fallback name strings, and the
// free-form info field. The result is de-duplicated by name (first
// occurrence wins) and never empty.
func ResolveSingers(singerIDs []int, fallbackNames []string, info any, dir Directory) []Singer {
	var singers []Singer

	for _, id := range singerIDs {
		if id >= unofficialIDFloor {
			continue
		}
		if t, ok := dir[id]; ok && t.DisplayName() != "" {
			singers = append(singers, Singer{Name: t.DisplayName(), Color: t.Color})
			continue
		}
		singers = append(singers, Singer{Name: fmt.Sprintf("ID: %d", id)})
	}

	for _, name := range fallbackNames {
		name = strings.TrimSpace(name)
		if name != "" {
			singers = append(singers, Singer{Name: name})
		}
	}

	for _, name := range namesFromInfo(info) {
		singers = append(singers, Singer{Name: name})
	}

	singers = dedupeByName(singers)
	if len(singers) == 0 {
		singers = []Singer{{Name: unknownSingerName}}
	}
	return singers
}

// namesFromInfo extracts singer names from the untyped info annotation.
// Info has appeared as null, an array of names, an object with a
// singer/singers array, a JSON string encoding either of those, and a
// plain delimited string. Malformed values contribute nothing.
func namesFromInfo(info any) []string {
	switch v := info.(type) {
	case nil:
		return nil
	case []any:
		return cleanNameList(v)
	case []string:
		anys := make([]any, len(v))
		for i, s := range v {
			anys[i] = s
		}
		return cleanNameList(anys)
	case map[string]any:
		return namesFromObject(v)
	case string:
		trimmed := strings.TrimSpace(v)
		if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
			// JSON-looking: parse or contribute nothing. Never fall
			// through to delimiter splitting for these.
			var parsed any
			if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
				return nil
			}
			switch p := parsed.(type) {
			case []any:
				return cleanNameList(p)
			case map[string]any:
				return namesFromObject(p)
			default:
				return nil
			}
		}
		return splitNames(trimmed)
	default:
		return nil
	}
}

func namesFromObject(obj map[string]any) []string {
	for _, key := range []string{"singer", "singers"} {
		if field, ok := obj[key]; ok {
			if list, ok := field.([]any); ok {
				return cleanNameList(list)
			}
		}
	}
	return nil
}

func cleanNameList(list []any) []string {
	var names []string
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s != "" {
			names = append(names, s)
		}
	}
	return names
}

// splitNames splits a plain annotation string on the delimiters seen in
// hand-entered data. Tokens that are only brace/bracket characters are
// leftovers from malformed JSON and are dropped.
func splitNames(s string) []string {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case '、', ',', '&', '+', '/':
			return true
		}
		return false
	})
	var names []string
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" || isBracketJunk(tok) {
			continue
		}
		names = append(names, tok)
	}
	return names
}

func isBracketJunk(s string) bool {
	for _, r := range s {
		switch r {
		case '{', '}', '[', ']':
		default:
			return false
		}
	}
	return true
}

func dedupeByName(singers []Singer) []Singer {
	seen := make(map[string]struct{}, len(singers))
	result := singers[:0]
	for _, s := range singers {
		if _, ok := seen[s.Name]; ok {
			continue
		}
		seen[s.Name] = struct{}{}
		result = append(result, s)
	}
	return result
}

// NormalizeSong derives the canonical song model from a raw record.
func NormalizeSong(raw RawSong, dir Directory) Song {
	song := Song{
		ID:          raw.ID,
		MovieID:     raw.MovieID,
		Title:       raw.Title,
		Singers:     ResolveSingers(raw.SingerIDs, raw.Singers, raw.Info, dir),
		Performance: ClassifyPerformanceType(raw.SingerIDs),
	}
	if sec, ok := ParseTimestamp(raw.StartValue()); ok {
		song.Start = &sec
	}
	if sec, ok := ParseTimestamp(raw.EndValue()); ok {
		song.End = &sec
	}
	return song
}
