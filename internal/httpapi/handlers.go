package httpapi

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/jasonsolar777/ai-receptionist/internal/runner"
	"github.com/jasonsolar777/ai-receptionist/internal/telemetry"
	"github.com/jasonsolar777/ai-receptionist/internal/twiml"
	"github.com/jasonsolar777/ai-receptionist/memory"
)

// Handler wires the webhook endpoints to the session store and the turn
// processor. The provider sends application/x-www-form-urlencoded bodies.
type Handler struct {
	Store      *memory.Store
	Runner     *runner.Runner
	Log        *zap.Logger
	OfficeName string
}

// Health is the liveness probe.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("AI Receptionist up"))
}

// Voice handles the call-initiated event: a fresh session and a greeting.
// A duplicate CallSid resets the transcript.
func (h *Handler) Voice(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	callSID := r.FormValue("CallSid")
	h.Store.Register(callSID)

	h.Log.Info("call started", zap.String("call_sid", callSID))
	telemetry.Emit("call_started", map[string]any{"call_sid": callSID})

	greet := fmt.Sprintf("Thanks for calling %s. How can I help today?", h.OfficeName)
	writeTwiML(w, twiml.Gather(greet, GatherPath))
}

// Gather handles a speech-collection callback and delegates to the turn
// processor. Unknown CallSids behave as empty sessions.
func (h *Handler) Gather(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	in := runner.Input{
		CallSID:   r.FormValue("CallSid"),
		From:      r.FormValue("From"),
		To:        r.FormValue("To"),
		Utterance: r.FormValue("SpeechResult"),
	}
	h.Log.Info("gather", zap.String("call_sid", in.CallSID))

	writeTwiML(w, h.Runner.Process(r.Context(), in))
}

// Goodbye speaks the farewell and hangs up, releasing the session when the
// provider told us which call ended.
func (h *Handler) Goodbye(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	if callSID := r.FormValue("CallSid"); callSID != "" {
		h.Store.Evict(callSID)
		h.Log.Info("call ended", zap.String("call_sid", callSID))
		telemetry.Emit("call_ended", map[string]any{"call_sid": callSID})
	}
	writeTwiML(w, twiml.Goodbye())
}

func writeTwiML(w http.ResponseWriter, doc string) {
	w.Header().Set("Content-Type", twiml.ContentType)
	_, _ = w.Write([]byte(doc))
}
