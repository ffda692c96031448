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

// Package statsview offers a local HTTP server with runtime statistics of the
// running program. It is only present when built with the statsview build
// tag, otherwise Available() returns false and Launch() does nothing.
//
// The statistics are provided by "github.com/go-echarts/statsview" and are
// viewable at:
//
//	localhost:12680/debug/statsview
//
// Standard Go pprof statistics are available at:
//
//	localhost:12680/debug/pprof/
package statsview
