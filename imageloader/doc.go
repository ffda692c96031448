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

// Package imageloader reads program images from a filesystem. Images are
// loaded through the afero.Fs interface so that the host can use the real
// filesystem, an in-memory filesystem or anything else that implements the
// interface.
//
// Files with the PRG extension begin with a two byte load address, low byte
// first. All other files are raw binary data and are loaded at the origin
// given to Load().
package imageloader
