package codec

import (
	"encoding/json"

	"github.com/bft-labs/uireplay/pkg/session"
	"github.com/bft-labs/uireplay/pkg/timestamp"
)

// jsonFrame is the on-disk shape of one frame in the text codec.
type jsonFrame struct {
	Time   int64             `json:"time"`
	Events []json.RawMessage `json:"events"`
}

func (s *Store) encodeJSON(frames []session.FrameEvents) ([]byte, error) {
	out := make([]jsonFrame, 0, len(frames))
	for _, frame := range frames {
		jf := jsonFrame{
			Time:   frame.Time.Nanos(),
			Events: make([]json.RawMessage, 0, len(frame.Events)),
		}
		for _, e := range frame.Events {
			payload, err := s.marshaler.Marshal(e)
			if err != nil {
				return nil, err
			}
			jf.Events = append(jf.Events, payload)
		}
		out = append(out, jf)
	}
	return json.MarshalIndent(out, "", "  ")
}

func (s *Store) decodeJSON(data []byte) ([]session.FrameEvents, error) {
	var in []jsonFrame
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}
	frames := make([]session.FrameEvents, 0, len(in))
	for _, jf := range in {
		events := make([]session.Event, 0, len(jf.Events))
		for _, payload := range jf.Events {
			e, err := s.marshaler.Unmarshal(payload)
			if err != nil {
				return nil, err
			}
			events = append(events, e)
		}
		frames = append(frames, session.FrameEvents{
			Time:   timestamp.FromNanos(jf.Time),
			Events: events,
		})
	}
	return frames, nil
}
