package shufflepanel

// windowItem is one row of the playlist window: either a song index or
// an ellipsis separator standing in for a skipped range.
type windowItem struct {
	separator bool
	index     int
}

// playlistWindow selects which playlist rows to show: the first entry,
// a neighborhood around the focus index, and the last entry, with
// separators replacing the skipped ranges. radius is the number of
// neighbors on each side of the focus.
func playlistWindow(length, focus, radius int) []windowItem {
	if length == 0 {
		return nil
	}
	lo := focus - radius
	hi := focus + radius
	if lo < 0 {
		lo = 0
	}
	if hi > length-1 {
		hi = length - 1
	}

	var items []windowItem
	if lo > 0 {
		items = append(items, windowItem{index: 0})
		if lo > 1 {
			items = append(items, windowItem{separator: true})
		}
	}
	for i := lo; i <= hi; i++ {
		items = append(items, windowItem{index: i})
	}
	if hi < length-1 {
		if hi < length-2 {
			items = append(items, windowItem{separator: true})
		}
		items = append(items, windowItem{index: length - 1})
	}
	return items
}
