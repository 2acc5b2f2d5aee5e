// Package ui styles the command-line output of lyrx with lipgloss.
//
// The full-screen lyrics view draws through the terminal package instead; this
// package only covers one-shot commands such as fetch, history and setup.
package ui
