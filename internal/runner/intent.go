package runner

import "strings"

// bookingKeywords trigger the booking-link text message. Matched as literal
// case-insensitive substrings of the raw utterance, "come in" as a phrase.
var bookingKeywords = []string{"book", "schedule", "appointment", "reserve", "come in"}

func wantsBooking(utterance string) bool {
	u := strings.ToLower(utterance)
	for _, kw := range bookingKeywords {
		if strings.Contains(u, kw) {
			return true
		}
	}
	return false
}
