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

package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address of the stats server. The port is the 6502's part number.
const Address = "localhost:16502"

// Page is the path of the statistics page served at Address.
const Page = "/debug/statsview"

// the server binds Address so it must only be started once per process
var launch sync.Once

// Launch the stats server in a new goroutine and write its location to
// output. Only the first call starts a server. Later calls only report the
// location, so performance checks can be repeated in the same process.
func Launch(output io.Writer) {
	launch.Do(func() {
		go func() {
			viewer.SetConfiguration(viewer.WithAddr(Address))
			mgr := statsview.New()
			mgr.Start()
		}()
	})

	fmt.Fprintf(output, "emulator runtime stats at http://%s%s\n", Address, Page)
}

// Available returns true. The statsview build tag is present.
func Available() bool {
	return true
}
