// Package provider adapts language-model completion backends behind a
// single interface. The receptionist only needs one operation: turn a
// system instruction plus an ordered transcript into the next reply.
package provider

import (
	"context"

	"github.com/jasonsolar777/ai-receptionist/memory"
)

// temperature keeps replies deterministic and on-script.
const temperature = 0.3

// Completer produces the next assistant reply for a transcript. The turns
// are supplied oldest first; the system instruction is passed separately
// and must not appear in turns.
type Completer interface {
	Complete(ctx context.Context, system string, turns []memory.Turn) (string, error)
}
