// Package tasks runs the producers that feed the display.
//
// # Producers
//
// Both producers send [display.StateDelta] values on a shared channel read by [display.Aggregator]:
//
//  1. [TrackProducer] : follows a [player.Player]
//     - Sends the current track once at startup
//     - Fetches lyrics on every track change and sends them with a scroll reset
//     - Records each play through an optional [PlayRecorder]
//     - Stops on a transport error without touching the rest of the program
//
//  2. [InputProducer] : polls terminal input
//     - Ctrl+C sends a terminate delta
//     - Wheel down scrolls forward, wheel up scrolls back
//     - Never stops on its own
//
// Sends select on the context so a producer blocked on a full channel still exits when the program does.
package tasks
