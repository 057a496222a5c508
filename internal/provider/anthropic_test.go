package provider_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/jasonsolar777/ai-receptionist/internal/provider"
	"github.com/jasonsolar777/ai-receptionist/memory"
)

type capture struct {
	method string
	url    string
	body   []byte
}

type fakeTransport struct {
	respStatus int
	respBody   []byte
	captured   *capture
}

func (f *fakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	b, _ := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if f.captured != nil {
		f.captured.method = req.Method
		f.captured.url = req.URL.String()
		f.captured.body = b
	}
	resp := &http.Response{
		StatusCode: f.respStatus,
		Body:       io.NopCloser(bytes.NewReader(f.respBody)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp, nil
}

func newClientWithTransport(rt http.RoundTripper) *anthropic.Client {
	c := anthropic.NewClient(
		option.WithHTTPClient(&http.Client{Transport: rt}),
		option.WithAPIKey("test-key"),
	)
	return &c
}

type anthropicReqBody struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	System      []struct {
		Text string `json:"text"`
	} `json:"system"`
	Messages []struct {
		Role    string `json:"role"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text,omitempty"`
		} `json:"content"`
	} `json:"messages"`
}

func TestAnthropic_BuildsRequestFromTranscript(t *testing.T) {
	capReq := &capture{}
	fake := &fakeTransport{
		respStatus: 200,
		respBody:   []byte(`{"role":"assistant","content":[{"type":"text","text":"Friday works."}]}`),
		captured:   capReq,
	}
	a := provider.NewAnthropicWithClient(newClientWithTransport(fake), "")

	turns := []memory.Turn{
		{Role: memory.RoleUser, Text: "hi"},
		{Role: memory.RoleAssistant, Text: "hello"},
		{Role: memory.RoleUser, Text: "book me in"},
	}
	reply, err := a.Complete(context.Background(), "You are a receptionist.", turns)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if reply != "Friday works." {
		t.Fatalf("reply: got %q", reply)
	}

	if capReq.body == nil {
		t.Fatal("no request captured")
	}
	var rb anthropicReqBody
	if err := json.Unmarshal(capReq.body, &rb); err != nil {
		t.Fatalf("unmarshal body: %v\nbody=%s", err, string(capReq.body))
	}
	if rb.Model != string(provider.DefaultAnthropicModel) {
		t.Errorf("model: got %q", rb.Model)
	}
	if rb.Temperature != 0.3 {
		t.Errorf("temperature: got %v", rb.Temperature)
	}
	if len(rb.System) != 1 || rb.System[0].Text != "You are a receptionist." {
		t.Errorf("system instruction not injected: %+v", rb.System)
	}
	wantRoles := []string{"user", "assistant", "user"}
	if len(rb.Messages) != len(wantRoles) {
		t.Fatalf("message count: got %d want %d", len(rb.Messages), len(wantRoles))
	}
	for i, role := range wantRoles {
		if rb.Messages[i].Role != role {
			t.Errorf("message %d role: got %q want %q", i, rb.Messages[i].Role, role)
		}
		if rb.Messages[i].Content[0].Text != turns[i].Text {
			t.Errorf("message %d text: got %q want %q", i, rb.Messages[i].Content[0].Text, turns[i].Text)
		}
	}
}

func TestAnthropic_JoinsTextBlocks(t *testing.T) {
	fake := &fakeTransport{
		respStatus: 200,
		respBody:   []byte(`{"role":"assistant","content":[{"type":"text","text":"one"},{"type":"text","text":"two"}]}`),
	}
	a := provider.NewAnthropicWithClient(newClientWithTransport(fake), "")

	reply, err := a.Complete(context.Background(), "sys", []memory.Turn{{Role: memory.RoleUser, Text: "hi"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if reply != "one\ntwo" {
		t.Fatalf("reply: got %q", reply)
	}
}

func TestAnthropic_BackendError(t *testing.T) {
	fake := &fakeTransport{
		respStatus: 500,
		respBody:   []byte(`{"type":"error","error":{"type":"api_error","message":"overloaded"}}`),
	}
	a := provider.NewAnthropicWithClient(newClientWithTransport(fake), "")

	if _, err := a.Complete(context.Background(), "sys", []memory.Turn{{Role: memory.RoleUser, Text: "hi"}}); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestAnthropic_ModelOverride(t *testing.T) {
	capReq := &capture{}
	fake := &fakeTransport{
		respStatus: 200,
		respBody:   []byte(`{"role":"assistant","content":[]}`),
		captured:   capReq,
	}
	a := provider.NewAnthropicWithClient(newClientWithTransport(fake), "claude-test-model")

	if _, err := a.Complete(context.Background(), "sys", nil); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	var rb anthropicReqBody
	if err := json.Unmarshal(capReq.body, &rb); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if rb.Model != "claude-test-model" {
		t.Errorf("model override: got %q", rb.Model)
	}
}
