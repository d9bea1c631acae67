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

// Package preferences holds the configurable values of the emulated
// hardware. Values are set to their defaults on creation and then updated
// with any values found in the current command line group of the prefs
// package.
package preferences

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/prefs"
)

// BadPreference is the pattern for errors returned by NewPreferences() when
// a command line preference cannot be applied.
const BadPreference = "preferences: %s: %v"

// Preference keys. These are the keys used in command line groups.
const (
	KeyTrace         = "cpu.trace"
	KeyStackWarnings = "cpu.stackwarnings"
	KeyRunLimit      = "machine.runlimit"
)

// Preferences defines the hardware preferences.
type Preferences struct {
	// log every executed instruction in disassembled form
	Trace prefs.Bool

	// log a warning when the stack pointer wraps around
	StackWarnings prefs.Bool

	// the maximum number of instructions executed by a call to Run(). zero
	// means there is no limit
	RunLimit prefs.Int
}

func (p *Preferences) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s::%s; ", KeyTrace, p.Trace.String()))
	s.WriteString(fmt.Sprintf("%s::%s; ", KeyStackWarnings, p.StackWarnings.String()))
	s.WriteString(fmt.Sprintf("%s::%s", KeyRunLimit, p.RunLimit.String()))
	return s.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	p.RunLimit.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return errors.New("run limit cannot be negative")
		}
		return nil
	})

	err := p.SetDefaults()
	if err != nil {
		return nil, err
	}

	for k, v := range p.list() {
		if _, err := prefs.ApplyCommandLinePref(k, v); err != nil {
			return nil, curated.Errorf(BadPreference, k, err)
		}
	}

	return p, nil
}

func (p *Preferences) list() map[string]prefs.Pref {
	return map[string]prefs.Pref{
		KeyTrace:         &p.Trace,
		KeyStackWarnings: &p.StackWarnings,
		KeyRunLimit:      &p.RunLimit,
	}
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	if err := p.Trace.Set(false); err != nil {
		return err
	}
	if err := p.StackWarnings.Set(true); err != nil {
		return err
	}
	if err := p.RunLimit.Set(0); err != nil {
		return err
	}
	return nil
}
