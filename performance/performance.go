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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware"
	"github.com/jetsetilly/gopher6502/hardware/govern"
	"github.com/jetsetilly/gopher6502/statsview"
)

// Check the performance of the emulator by running the program loaded into
// the machine for the specified duration. The run ends early if the machine
// halts.
//
// Output is of the form:
//
//	12.34 MIPS (123400000 instructions in 10.00 seconds)
func Check(output io.Writer, m *hardware.Machine, duration time.Duration) error {
	// the timer signals on the channel once the duration has elapsed
	timerChan := make(chan bool, 1)
	timer := time.AfterFunc(duration, func() {
		timerChan <- true
	})
	defer timer.Stop()

	startInstructions := m.Instructions
	startTime := time.Now()

	// only check for end of measurement period every PerformanceBrake CPU
	// instructions. checking the timerChan is relatively expensive
	performanceBrake := 0

	err := m.Run(func() (govern.State, error) {
		performanceBrake++
		if performanceBrake >= hardware.PerformanceBrake {
			performanceBrake = 0
			select {
			case <-timerChan:
				return govern.Halted, nil
			default:
			}
		}
		return govern.Running, nil
	})
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	elapsed := time.Since(startTime).Seconds()
	numInstructions := m.Instructions - startInstructions
	mips := float64(numInstructions) / elapsed / 1000000

	_, err = io.WriteString(output, fmt.Sprintf("%.2f MIPS (%d instructions in %.2f seconds)\n", mips, numInstructions, elapsed))
	return err
}

// CheckWithStats is the same as Check except that the runtime statistics
// server is launched first, if it is available in this build.
func CheckWithStats(output io.Writer, m *hardware.Machine, duration time.Duration) error {
	if statsview.Available() {
		statsview.Launch(output)
	}
	return Check(output, m, duration)
}
