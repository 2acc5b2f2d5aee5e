// Package player follows a media player over MPRIS on the D-Bus session bus.
//
// [Finder.Find] selects the first bus name under org.mpris.MediaPlayer2 that
// contains the configured name, e.g. "cmus" matches org.mpris.MediaPlayer2.cmus.
// The resulting [Player] reports the current [Metadata] and streams [Event]
// values built from PropertiesChanged signals:
//   - [EventTrackChanged] when the track identity (track id, first artist, title) changes
//   - [EventOther] for any other property change (playback status, volume, ...)
//   - [EventTransportError] when the bus connection drops or the player exits; the stream ends after it
package player
