// Package terminal adapts a tcell screen to what the lyrics display needs:
// an alternate screen with mouse capture, styled text at a position, the
// current size, and input events polled with a bounded wait.
package terminal
