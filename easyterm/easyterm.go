// This file is part of Chips.
//
// Chips is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chips is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chips.  If not, see <https://www.gnu.org/licenses/>.

package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Geometry contains the dimensions of a terminal in characters.
type Geometry struct {
	Rows int
	Cols int
}

// Terminal is the main container for posix terminals.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	rawAttr    unix.Termios
	cbreakAttr unix.Termios

	// sig/ack channels to control signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	// geometry is updated by the signal handler
	mu       sync.Mutex
	geometry Geometry
}

// Initialise the fields in the Terminal struct.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm: Terminal requires an input file")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm: Terminal requires an output file")
	}

	pt.input = inputFile
	pt.output = outputFile

	// the cbreak and raw attributes are based on the canonical attributes
	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)
	pt.rawAttr = pt.canAttr
	termios.Cfmakeraw(&pt.rawAttr)

	_ = pt.UpdateGeometry()

	pt.terminateHandlerSig = make(chan bool)
	pt.terminateHandlerAck = make(chan bool)

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			pt.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = pt.UpdateGeometry()
			case <-pt.terminateHandlerSig:
				return
			}
		}
	}()

	return nil
}

// CleanUp returns the terminal to canonical mode and stops the signal handler
// started by Initialise().
func (pt *Terminal) CleanUp() {
	_ = pt.CanonicalMode()
	pt.terminateHandlerSig <- true
	<-pt.terminateHandlerAck
}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...any) {
	pt.output.WriteString(fmt.Sprintf(s, a...))
	pt.output.Sync()
}

// UpdateGeometry gets the current dimensions of the output terminal.
func (pt *Terminal) UpdateGeometry() error {
	cols, rows, err := term.GetSize(int(pt.output.Fd()))
	if err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}

	pt.mu.Lock()
	defer pt.mu.Unlock()
	pt.geometry = Geometry{Rows: rows, Cols: cols}

	return nil
}

// Geometry returns the most recent dimensions of the output terminal.
func (pt *Terminal) Geometry() Geometry {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return pt.geometry
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.canAttr)
}

// RawMode puts terminal into raw mode.
func (pt *Terminal) RawMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.rawAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (pt *Terminal) CBreakMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.cbreakAttr)
}

// Flush makes sure the terminal's input/output buffers are empty.
func (pt *Terminal) Flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return err
	}
	if err := termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH); err != nil {
		return err
	}
	return nil
}

// ReadKey waits for a single byte of input. Only useful in cbreak or raw
// mode.
func (pt *Terminal) ReadKey() (byte, error) {
	var b [1]byte
	_, err := pt.input.Read(b[:])
	return b[0], err
}
