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

package logger

// Permission implementations indicate whether the environment making a log
// request is allowed to create new log entries.
type Permission interface {
	AllowLogging() bool
}

// PermissionFunc adapts an ordinary function to the Permission interface.
type PermissionFunc func() bool

// AllowLogging implements the Permission interface.
func (f PermissionFunc) AllowLogging() bool {
	return f()
}

type always bool

func (a always) AllowLogging() bool {
	return bool(a)
}

// Allow is the permission for log entries that should always be made.
var Allow Permission = always(true)

// Deny is the permission for log entries that should never be made. Useful
// for silencing a component without removing its logging calls.
var Deny Permission = always(false)
