package runner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jasonsolar777/ai-receptionist/internal/metrics"
	"github.com/jasonsolar777/ai-receptionist/internal/notify"
	"github.com/jasonsolar777/ai-receptionist/internal/provider"
	"github.com/jasonsolar777/ai-receptionist/internal/telemetry"
	"github.com/jasonsolar777/ai-receptionist/internal/twiml"
	"github.com/jasonsolar777/ai-receptionist/memory"
)

// Scripted prompts. Every failure path in a gather cycle resolves to one of
// these; nothing is ever surfaced to the caller as an error.
const (
	repairPrompt  = "Sorry, I didn't catch that. Could you say it again in a short sentence?"
	fallbackReply = "Could you restate that a bit more simply?"
	bookingSuffix = " I've texted you our booking link. What day works best for you?"
)

// completionTimeout caps one backend request; a hung backend costs one
// fallback reply, not a hung call.
const completionTimeout = 30 * time.Second

const systemPromptTemplate = `
You are a calm, friendly, concise AI receptionist for %s.
Goals: answer FAQs, qualify callers, capture name/number, and book or route correctly.
Keep replies under 2 sentences. If caller asks to book, confirm preference and say you'll text a link.
If emergency or out-of-scope, offer to take a message and escalate to a human.
`

// SystemPrompt builds the fixed system instruction for a business name.
// Established once at startup and shared read-only across all calls.
func SystemPrompt(businessName string) string {
	return fmt.Sprintf(systemPromptTemplate, businessName)
}

// Input carries one speech-collection callback.
type Input struct {
	CallSID   string
	From      string
	To        string
	Utterance string
}

// Params wires a Runner. Messenger may be nil when SMS is not configured.
type Params struct {
	Store        *memory.Store
	Completer    provider.Completer
	Messenger    notify.Messenger
	Log          *zap.Logger
	SystemPrompt string
	OfficeName   string
	BookingLink  string
	GatherPath   string
}

// Runner orchestrates one utterance -> reply cycle per call.
type Runner struct {
	store      *memory.Store
	completer  provider.Completer
	messenger  notify.Messenger
	log        *zap.Logger
	system     string
	officeName string
	booking    string
	gatherPath string
}

func New(p Params) *Runner {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		store:      p.Store,
		completer:  p.Completer,
		messenger:  p.Messenger,
		log:        log,
		system:     p.SystemPrompt,
		officeName: p.OfficeName,
		booking:    p.BookingLink,
		gatherPath: p.GatherPath,
	}
}

// Process handles one gather callback and returns the next voice-response
// document. It never fails: empty input yields a repair prompt without
// touching the session, and backend failures degrade to scripted replies.
func (r *Runner) Process(ctx context.Context, in Input) string {
	text := strings.TrimSpace(in.Utterance)
	if text == "" {
		return twiml.Gather(repairPrompt, r.gatherPath)
	}

	ctx = telemetry.WithCallSID(ctx, in.CallSID)
	turnID := fmt.Sprintf("turn-%d", time.Now().UnixNano())
	start := time.Now()

	r.store.Append(in.CallSID, memory.Turn{Role: memory.RoleUser, Text: text})

	reply := r.complete(ctx, turnID)

	intent := wantsBooking(in.Utterance)
	if intent && r.booking != "" && r.messenger != nil {
		body := fmt.Sprintf("Here's the booking link for %s: %s", r.officeName, r.booking)
		if err := r.messenger.Send(ctx, in.From, in.To, body); err != nil {
			// Best-effort side channel; the reply stays unchanged.
			r.log.Warn("booking sms failed",
				zap.String("call_sid", in.CallSID), zap.Error(err))
			telemetry.Emit("sms_failed", map[string]any{
				"call_sid": in.CallSID,
				"turn_id":  turnID,
				"error":    err.Error(),
			})
		} else {
			reply += bookingSuffix
		}
	}

	r.store.Append(in.CallSID, memory.Turn{Role: memory.RoleAssistant, Text: reply})

	f := metrics.CountFeatures(text)
	telemetry.Emit("turn_completed", map[string]any{
		"call_sid":        in.CallSID,
		"turn_id":         turnID,
		"utterance_words": f.Words,
		"utterance_runes": f.Runes,
		"booking_intent":  intent,
		"duration_ms":     time.Since(start).Milliseconds(),
	})

	return twiml.Gather(reply, r.gatherPath)
}

// complete asks the backend for the next reply, degrading to the fixed
// fallback on any failure or empty result. The call SID rides in on the
// context set by Process.
func (r *Runner) complete(ctx context.Context, turnID string) string {
	callSID, _ := telemetry.CallSIDFromContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	out, err := r.completer.Complete(ctx, r.system, r.store.Turns(callSID))
	if err != nil {
		r.log.Warn("completion backend failed",
			zap.String("call_sid", callSID), zap.Error(err))
		telemetry.Emit("completion_failed", map[string]any{
			"call_sid": callSID,
			"turn_id":  turnID,
			"error":    err.Error(),
		})
		return fallbackReply
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return fallbackReply
	}
	return out
}
