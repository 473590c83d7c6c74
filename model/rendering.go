package model

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClearScreen = "\033[H\033[2J"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

func (r *TerminalRenderer) writer() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display renders the snapshot to the terminal
func (r *TerminalRenderer) Display(s *Snapshot) error {
	w := bufio.NewWriter(r.writer())
	for y := range s.Height {
		row := s.Cells[y*s.Width : (y+1)*s.Width]
		for _, c := range row {
			if c == Alive {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Display] failed to flush frame")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	if _, err := io.WriteString(r.writer(), ansiClearScreen); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Clear] failed to clear terminal")
	}
	return nil
}
