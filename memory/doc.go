// Package memory holds per-call conversation transcripts in process memory.
//
// Model:
//   - Only text turns are stored (role + text). The system instruction is
//     injected at completion-request time and never enters a transcript.
//   - Sessions live for the duration of a call; an idle TTL plus a janitor
//     sweep bounds the registry when a call never reaches its end event.
package memory
