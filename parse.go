package reagent

import (
	"encoding/json"
	"regexp"
	"strings"
)

// ParseStatus classifies one model response against the expected
// Thought/Action/Action Input grammar.
type ParseStatus int

const (
	// ParseOK means the response contained exactly one well-formed directive.
	ParseOK ParseStatus = iota

	// ParseRunaway means the model got ahead of the protocol: it fabricated an
	// "Observation:" line, or emitted more than one action attempt in a single
	// response. The whole exchange is unreliable and should be discarded.
	ParseRunaway

	// ParseMalformed means a required tag ("Action:" or "Action Input:") is
	// missing entirely.
	ParseMalformed

	// ParseInvalidInput means both tags were present exactly once but the
	// Action Input payload does not parse as a JSON object.
	ParseInvalidInput
)

// String returns a short lowercase name for the status.
func (s ParseStatus) String() string {
	switch s {
	case ParseOK:
		return "ok"
	case ParseRunaway:
		return "runaway"
	case ParseMalformed:
		return "malformed"
	case ParseInvalidInput:
		return "invalid-input"
	default:
		return "unknown"
	}
}

// Directive is the parsed intent of one model response: the tool to invoke
// and the named arguments to invoke it with. Directives are transient; they
// live only within the loop iteration that produced them.
type Directive struct {
	// Action is the tool name. Always a non-empty identifier.
	Action string

	// Input is the named arguments, decoded from the Action Input JSON
	// object. Never nil for a valid directive, but may be empty.
	Input map[string]any
}

// ParseResult is the classified outcome of one model response.
// Directive is non-nil only when Status is ParseOK.
type ParseResult struct {
	Status    ParseStatus
	Directive *Directive
}

// tagObservation marks a tool result fed back to the model. The model must
// never write one itself; its presence in a response means the model invented
// a result instead of stopping after its action.
const tagObservation = "Observation:"

var (
	reAction         = regexp.MustCompile(`(?m)^Action:\s*([_a-zA-Z][_a-zA-Z0-9]*)`)
	reActionInputTag = regexp.MustCompile(`(?m)^Action Input:`)
	reActionInput    = regexp.MustCompile(`(?ms)^Action Input:\s*(\{.*\})`)
)

// ParseResponse classifies a model response and extracts its directive.
//
// The expected grammar is deliberately narrow, one response carrying exactly
// one of each tag:
//
//	Thought: <free text>
//	Action: <tool-name>
//	Action Input: <JSON object>
//
// The JSON object may span multiple lines but its root must be an object, not
// an array or scalar. This is a recognizer, not a general parser: strictness
// is what lets the caller detect a model that is getting ahead of itself.
func ParseResponse(text string) ParseResult {
	// An Observation anywhere, even embedded mid-line, means the model
	// fabricated a tool result.
	if strings.Contains(text, tagObservation) {
		return ParseResult{Status: ParseRunaway}
	}

	actions := reAction.FindAllStringSubmatch(text, -1)
	inputTags := reActionInputTag.FindAllString(text, -1)

	if len(actions) == 0 || len(inputTags) == 0 {
		return ParseResult{Status: ParseMalformed}
	}
	if len(actions) > 1 || len(inputTags) > 1 {
		// Multiple action attempts in one response: same overreach as a
		// fabricated observation, handled the same way downstream.
		return ParseResult{Status: ParseRunaway}
	}

	payload := reActionInput.FindStringSubmatch(text)
	if payload == nil {
		return ParseResult{Status: ParseInvalidInput}
	}

	var input map[string]any
	if err := json.Unmarshal([]byte(payload[1]), &input); err != nil {
		return ParseResult{Status: ParseInvalidInput}
	}

	return ParseResult{
		Status:    ParseOK,
		Directive: &Directive{Action: actions[0][1], Input: input},
	}
}
