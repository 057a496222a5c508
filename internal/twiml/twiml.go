// Package twiml renders the voice-response documents returned to the
// telephony provider.
//
// Twilio expects Content-Type: text/xml. Both renderers are pure functions
// of their inputs and always produce a well-formed document.
package twiml

import "encoding/xml"

// ContentType is the header value for every rendered document.
const ContentType = "text/xml; charset=utf-8"

// voice used for all spoken prompts.
const voice = "Polly.Joanna"

const (
	fillerPrompt = "I'm listening."
	farewell     = "Thanks for calling. Have a great day."
)

type response struct {
	XMLName xml.Name `xml:"Response"`
	Say     *say     `xml:"Say,omitempty"`
	Gather  *gather  `xml:"Gather,omitempty"`
	Hangup  *hangup  `xml:"Hangup,omitempty"`
}

type say struct {
	Voice string `xml:"voice,attr,omitempty"`
	Text  string `xml:",chardata"`
}

type gather struct {
	Input           string `xml:"input,attr"`
	Language        string `xml:"language,attr"`
	SpeechTimeout   string `xml:"speechTimeout,attr"`
	Action          string `xml:"action,attr"`
	ProfanityFilter string `xml:"profanityFilter,attr"`
	Say             *say   `xml:"Say"`
}

type hangup struct{}

// Gather renders a document that speaks sayText (skipped when empty) and
// then opens a speech-collection directive whose callback is action. A
// short filler line plays while the provider waits for speech.
func Gather(sayText, action string) string {
	r := response{
		Gather: &gather{
			Input:           "speech",
			Language:        "en-US",
			SpeechTimeout:   "auto",
			Action:          action,
			ProfanityFilter: "true",
			Say:             &say{Voice: voice, Text: fillerPrompt},
		},
	}
	if sayText != "" {
		r.Say = &say{Voice: voice, Text: sayText}
	}
	return marshal(r)
}

// Goodbye renders the farewell document that terminates the call.
func Goodbye() string {
	return marshal(response{
		Say:    &say{Voice: voice, Text: farewell},
		Hangup: &hangup{},
	})
}

func marshal(r response) string {
	// Well-formed by construction; marshaling a value of these types
	// cannot fail.
	out, _ := xml.MarshalIndent(r, "", "  ")
	return xml.Header + string(out)
}
