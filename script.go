package tilepaste

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string `json:"action"`
	Key    string `json:"key,omitempty"`
	Count  int    `json:"count,omitempty"`
	Frames int    `json:"frames,omitempty"`
	Label  string `json:"label,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// Script replays key presses across frames for unattended runs:
//
//	{"steps": [
//		{"action": "press", "key": "right", "count": 3},
//		{"action": "wait", "frames": 30},
//		{"action": "screenshot", "label": "after-move"},
//		{"action": "close"}
//	]}
//
// A press step delivers one key-press event per frame, count times. A
// screenshot step takes one frame and queues a capture of it.
type Script struct {
	steps     []scriptStep
	shots     []string
	cursor    int
	pending   int // presses left in the current press step
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script.
func LoadScript(jsonData []byte) (*Script, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press":
			if _, ok := ParseKey(st.Key); !ok {
				return nil, fmt.Errorf("parse input script: step %d: unknown key %q", i, st.Key)
			}
		case "wait", "close", "screenshot":
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: script.Steps}, nil
}

// Done reports whether every step has been delivered.
func (s *Script) Done() bool {
	return s.done
}

// Screenshots returns and clears the labels of screenshot steps reached
// since the last call.
func (s *Script) Screenshots() []string {
	shots := s.shots
	s.shots = nil
	return shots
}

// Next appends this frame's scripted events to events and returns it.
func (s *Script) Next(events []Event) []Event {
	if s.done {
		return events
	}
	if s.waitCount > 0 {
		s.waitCount--
		return events
	}
	if s.pending == 0 {
		if s.cursor >= len(s.steps) {
			s.done = true
			return events
		}
		st := s.steps[s.cursor]
		s.cursor++
		switch st.Action {
		case "press":
			s.pending = max(st.Count, 1)
		case "wait":
			if st.Frames > 0 {
				s.waitCount = st.Frames - 1 // this frame counts as one
			}
			return events
		case "screenshot":
			s.shots = append(s.shots, st.Label)
			if s.cursor >= len(s.steps) {
				s.done = true
			}
			return events
		case "close":
			s.done = true
			return append(events, CloseEvent())
		}
	}

	key, _ := ParseKey(s.steps[s.cursor-1].Key)
	s.pending--
	events = append(events, KeyPress(key))
	if s.pending == 0 && s.cursor >= len(s.steps) {
		s.done = true
	}
	return events
}
