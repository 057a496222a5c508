// Package runner turns one recognized caller utterance into the next
// voice-response document.
//
// Invariant:
//   - within a gather cycle the caller turn is appended before the
//     completion request, and the assistant turn after it, so the backend
//     always sees the utterance it is replying to.
//
// Flow:
//
//	caller(speech) -> append user turn -> completion -> [booking SMS] ->
//	append assistant turn -> gather again
package runner
