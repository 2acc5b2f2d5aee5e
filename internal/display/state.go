package display

// ReservedRows is the number of rows above the lyrics: the header and a blank separator.
const ReservedRows = 2

// ScrollCommand moves the visible window over the lyrics.
type ScrollCommand int

const (
	ScrollNone ScrollCommand = iota
	ScrollUp                 // reveal the next line below
	ScrollDown               // step back towards the top
	ScrollReset              // jump to the first line
)

func (c ScrollCommand) String() string {
	switch c {
	case ScrollUp:
		return "up"
	case ScrollDown:
		return "down"
	case ScrollReset:
		return "reset"
	default:
		return "none"
	}
}

// StateDelta is one update sent by a producer.
//
// Nil fields and [ScrollNone] mean "no change". A non-nil Lyrics replaces the
// lyrics, even when empty. The sender gives up the Lyrics slice when sending.
type StateDelta struct {
	Artist    *string
	Title     *string
	Lyrics    []string
	Scroll    ScrollCommand
	Terminate bool
}

// TrackDelta replaces the track and its lyrics and returns to the top.
func TrackDelta(artist, title string, lyrics []string) StateDelta {
	if lyrics == nil {
		lyrics = []string{}
	}
	return StateDelta{Artist: &artist, Title: &title, Lyrics: lyrics, Scroll: ScrollReset}
}

// ScrollDelta changes only the scroll offset.
func ScrollDelta(cmd ScrollCommand) StateDelta {
	return StateDelta{Scroll: cmd}
}

// TerminateDelta asks the aggregator to stop.
func TerminateDelta() StateDelta {
	return StateDelta{Terminate: true}
}

// State is the single source of truth for the frame.
type State struct {
	Artist string
	Title  string
	Lyrics []string
	Offset int
}

// Header is the text of the first row.
func (s State) Header() string {
	return s.Artist + " - " + s.Title
}

// VisibleRows is how many lyric lines fit in a terminal of the given height.
func VisibleRows(height int) int {
	return max(0, height-ReservedRows)
}

// MaxOffset is the largest offset that still fills the viewport, or zero.
func (s State) MaxOffset(height int) int {
	return max(0, len(s.Lyrics)-VisibleRows(height))
}

// Apply folds d into s for a terminal of the given height. It reports whether d
// asked to terminate, in which case s is left untouched.
func (s *State) Apply(d StateDelta, height int) (terminate bool) {
	if d.Terminate {
		return true
	}

	if d.Artist != nil {
		s.Artist = *d.Artist
	}
	if d.Title != nil {
		s.Title = *d.Title
	}

	if d.Lyrics != nil {
		s.Lyrics = d.Lyrics
		s.Offset = 0
	} else {
		s.scroll(d.Scroll, height)
	}

	s.Clamp(height)
	return false
}

func (s *State) scroll(cmd ScrollCommand, height int) {
	switch cmd {
	case ScrollUp:
		if len(s.Lyrics)-s.Offset > VisibleRows(height) {
			s.Offset++
		}
	case ScrollDown:
		if s.Offset > 0 {
			s.Offset--
		}
	case ScrollReset:
		s.Offset = 0
	}
}

// Clamp keeps the offset within [0, MaxOffset(height)].
func (s *State) Clamp(height int) {
	s.Offset = min(max(s.Offset, 0), s.MaxOffset(height))
}
