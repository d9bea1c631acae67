// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

//go:build statsview

package statsview_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6502/statsview"
	"github.com/jetsetilly/gopher6502/test"
)

func TestLaunch(t *testing.T) {
	test.ExpectSuccess(t, statsview.Available())

	// every call reports the location but only the first starts a server
	for range 2 {
		w := &strings.Builder{}
		statsview.Launch(w)
		test.ExpectEquality(t, w.String(), "emulator runtime stats at http://localhost:16502/debug/statsview\n")
	}
}
