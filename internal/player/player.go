package player

import "context"

// Metadata describes the track a player is on. Missing fields are empty.
type Metadata struct {
	TrackID string
	Artists []string
	Title   string
}

// Artist returns the first artist, or "" when the player reported none.
func (m Metadata) Artist() string {
	if len(m.Artists) == 0 {
		return ""
	}
	return m.Artists[0]
}

// SameTrack reports whether m and o describe the same track.
func (m Metadata) SameTrack(o Metadata) bool {
	return m.TrackID == o.TrackID && m.Artist() == o.Artist() && m.Title == o.Title
}

// EventKind tags an [Event].
type EventKind int

const (
	EventTrackChanged EventKind = iota
	EventOther
	EventTransportError
)

func (k EventKind) String() string {
	switch k {
	case EventTrackChanged:
		return "track_changed"
	case EventTransportError:
		return "transport_error"
	default:
		return "other"
	}
}

// Event is one notification from a player.
//
// Metadata is set for [EventTrackChanged]; Err is set for [EventTransportError].
type Event struct {
	Kind     EventKind
	Metadata Metadata
	Err      error
}

// Player is a media player that can be followed.
type Player interface {
	// Name returns the player's bus name.
	Name() string

	// Metadata returns the current track.
	Metadata(ctx context.Context) (Metadata, error)

	// Events streams notifications until ctx is done or a transport error occurs.
	// The channel is closed when the stream ends.
	Events(ctx context.Context) (<-chan Event, error)
}
