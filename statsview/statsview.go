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

//go:build statsview

package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/chips/logger"
)

// Address of the statistics server.
const Address = "localhost:12680"

const url = "/debug/statsview"

// the server can only be started once
var launch sync.Once

// Launch a new goroutine running the statsview. Calling Launch() more than
// once has no effect.
func Launch(output io.Writer) {
	launch.Do(func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr := statsview.New()

		go mgr.Start()

		logger.Logf(logger.Allow, "statsview", "launched on %s", Address)
		fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)
	})
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
