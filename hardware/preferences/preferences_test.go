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

package preferences_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/preferences"
	"github.com/jetsetilly/gopher6502/prefs"
	"github.com/jetsetilly/gopher6502/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Trace.Get().(bool), false)
	test.ExpectEquality(t, p.StackWarnings.Get().(bool), true)
	test.ExpectEquality(t, p.RunLimit.Get().(int), 0)
	test.ExpectEquality(t, p.String(), "cpu.trace::false; cpu.stackwarnings::true; machine.runlimit::0")
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("cpu.trace::true; machine.runlimit::1000; unknown::foo")
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Trace.Get().(bool), true)
	test.ExpectEquality(t, p.StackWarnings.Get().(bool), true)
	test.ExpectEquality(t, p.RunLimit.Get().(int), 1000)

	// unused entries remain in the group
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unknown::foo")

	// defaults are restored
	test.ExpectSuccess(t, p.SetDefaults())
	test.ExpectEquality(t, p.Trace.Get().(bool), false)
	test.ExpectEquality(t, p.RunLimit.Get().(int), 0)
}

func TestBadCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("machine.runlimit::-1")
	defer prefs.PopCommandLineStack()

	_, err := preferences.NewPreferences()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, preferences.BadPreference))
}

func TestRunLimit(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, p.RunLimit.Set(-10))
	test.ExpectEquality(t, p.RunLimit.Get().(int), 0)
	test.ExpectSuccess(t, p.RunLimit.Set("50"))
	test.ExpectEquality(t, p.RunLimit.Get().(int), 50)
}
