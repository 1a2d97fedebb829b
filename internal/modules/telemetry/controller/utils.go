package controller

// roundMinute rounds unix seconds to the nearest minute; :30 rounds down.
func roundMinute(ts int64) int64 {
	s := ts % 60
	if s < 0 {
		s += 60
	}
	if s <= 30 {
		return ts - s
	}
	return ts + (60 - s)
}
