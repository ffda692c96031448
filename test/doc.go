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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a test error and allow the test to continue.
// The Demand*() functions report a fatal error and stop the test immediately.
// Use the demand variety when the result of the test is required by further
// tests in the same function.
//
// The success/failure functions test for failure and success under generic
// conditions. Currently supported types are bool, error and nil. The nil type
// is considered a success. This may not be how we want to interpret nil in all
// situations but because of how errors usually work (nil to indicate no error)
// we need to interpret nil in this way.
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output. The CompareWriter.Compare() function can then be
// used to test for equality.
package test
