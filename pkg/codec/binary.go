package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/bft-labs/uireplay/pkg/session"
	"github.com/bft-labs/uireplay/pkg/timestamp"
)

// Binary container layout, all integers little-endian:
//
//	magic "URPL" | version u8 | frame count u32
//	per frame: time i64 | event count u32 | per event: length u32 + payload
var binaryMagic = [4]byte{'U', 'R', 'P', 'L'}

const binaryVersion byte = 1

func (s *Store) encodeBinary(frames []session.FrameEvents) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Write(binaryMagic[:])
	buf.WriteByte(binaryVersion)
	if err := binary.Write(buf, binary.LittleEndian, uint32(len(frames))); err != nil {
		return nil, err
	}

	for _, frame := range frames {
		ts, err := frame.Time.MarshalBinary()
		if err != nil {
			return nil, err
		}
		buf.Write(ts)
		if err := binary.Write(buf, binary.LittleEndian, uint32(len(frame.Events))); err != nil {
			return nil, err
		}
		for _, e := range frame.Events {
			payload, err := s.marshaler.Marshal(e)
			if err != nil {
				return nil, err
			}
			if err := binary.Write(buf, binary.LittleEndian, uint32(len(payload))); err != nil {
				return nil, err
			}
			buf.Write(payload)
		}
	}
	return buf.Bytes(), nil
}

func (s *Store) decodeBinary(data []byte) ([]session.FrameEvents, error) {
	r := bytes.NewReader(data)

	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil || magic != binaryMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrCorrupt)
	}
	version, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("%w: truncated header", ErrCorrupt)
	}
	if version != binaryVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, version)
	}

	var frameCount uint32
	if err := binary.Read(r, binary.LittleEndian, &frameCount); err != nil {
		return nil, fmt.Errorf("%w: truncated frame count", ErrCorrupt)
	}
	// A frame is at least 12 bytes (timestamp + event count).
	if int64(frameCount)*12 > int64(r.Len()) {
		return nil, fmt.Errorf("%w: frame count %d exceeds remaining data", ErrCorrupt, frameCount)
	}

	frames := make([]session.FrameEvents, 0, frameCount)
	for i := uint32(0); i < frameCount; i++ {
		var tsBytes [8]byte
		if _, err := io.ReadFull(r, tsBytes[:]); err != nil {
			return nil, fmt.Errorf("%w: truncated frame %d", ErrCorrupt, i)
		}
		var ts timestamp.Timestamp
		if err := ts.UnmarshalBinary(tsBytes[:]); err != nil {
			return nil, err
		}

		var eventCount uint32
		if err := binary.Read(r, binary.LittleEndian, &eventCount); err != nil {
			return nil, fmt.Errorf("%w: truncated frame %d", ErrCorrupt, i)
		}
		if int(eventCount) > r.Len() {
			return nil, fmt.Errorf("%w: event count %d exceeds remaining data", ErrCorrupt, eventCount)
		}

		events := make([]session.Event, 0, eventCount)
		for j := uint32(0); j < eventCount; j++ {
			var length uint32
			if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
				return nil, fmt.Errorf("%w: truncated event %d in frame %d", ErrCorrupt, j, i)
			}
			if int(length) > r.Len() {
				return nil, fmt.Errorf("%w: event length %d exceeds remaining data", ErrCorrupt, length)
			}
			payload := make([]byte, length)
			if _, err := io.ReadFull(r, payload); err != nil {
				return nil, fmt.Errorf("%w: truncated event %d in frame %d", ErrCorrupt, j, i)
			}
			e, err := s.marshaler.Unmarshal(payload)
			if err != nil {
				return nil, err
			}
			events = append(events, e)
		}
		frames = append(frames, session.FrameEvents{Time: ts, Events: events})
	}
	return frames, nil
}
