// Package display owns what is on screen.
//
// Producers describe changes as [StateDelta] values and send them over one
// channel. [Aggregator.Run] is the only reader of that channel and the only
// writer of [State] and of the terminal: for every delta it folds the change
// into the state, re-clamps the scroll offset against the current terminal
// height, and redraws the whole frame.
//
// Within one delta, new lyrics win over a scroll command: the offset goes back
// to the top even if the same delta also asked to scroll.
//
// The frame layout is a bold, underlined "<artist> - <title>" header, one blank
// row, then as many lyric lines as fit starting at the scroll offset.
package display
