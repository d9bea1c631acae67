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

package hardware

import (
	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/govern"
	"github.com/jetsetilly/gopher6502/logger"
)

// While the continueCheck() function only runs at the end of a CPU
// instruction, it can still be expensive to do a full continue check every
// time.
//
// The PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Halted, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// RunLimitReached is the pattern for the error returned by Run() when the
// number of instructions executed reaches the value of the machine.runlimit
// preference.
const RunLimitReached = "machine: run limit reached (%d instructions)"

// Run the machine until it halts. The continueCheck() function is called
// after every instruction and can stop the run by returning govern.Halted.
// Stopping a run in this way does not halt the machine. A nil continueCheck
// runs the machine until it halts.
//
// If the machine.runlimit preference is greater than zero, the run stops with
// a RunLimitReached error after that many instructions.
func (m *Machine) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	limit := m.Prefs.RunLimit.Get().(int)

	var err error
	var count int

	state := m.State()
	for state == govern.Running {
		state, err = m.Step()
		if err != nil {
			return err
		}

		count++
		if limit > 0 && count >= limit && state == govern.Running {
			err = curated.Errorf(RunLimitReached, limit)
			logger.Log(logger.Allow, "machine", err)
			return err
		}

		if state == govern.Running {
			state, err = continueCheck()
			if err != nil {
				return err
			}
		}
	}

	logger.Logf(logger.Allow, "machine", "run ended after %d instructions (%s)", count, m.State())

	return nil
}
