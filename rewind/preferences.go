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

package rewind

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/prefs"
)

// Keys for the rewind preferences. The keys are used in command-line
// preference groups.
const (
	KeyMaxEntries = "rewind.maxentries"
	KeyFreq       = "rewind.freq"
)

// BadPreference is the pattern for errors returned by newPreferences() when a
// command-line preference cannot be applied.
const BadPreference = "rewind: preferences: %s: %v"

// Preferences for the rewind system.
type Preferences struct {
	// the maximum number of entries to store before the earliest entries are
	// forgotten
	MaxEntries prefs.Int

	// how often a snapshot is taken, measured in instructions
	Freq prefs.Int
}

const maxEntries = 100
const snapshotFreq = 1

func (p *Preferences) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s::%s; ", KeyMaxEntries, p.MaxEntries.String()))
	s.WriteString(fmt.Sprintf("%s::%s", KeyFreq, p.Freq.String()))
	return s.String()
}

// newPreferences is the preferred method of initialisation for the
// Preferences type.
func newPreferences(r *Rewind) (*Preferences, error) {
	p := &Preferences{}

	p.MaxEntries.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return errors.New("maximum entries must be at least one")
		}
		return nil
	})
	p.MaxEntries.SetHookPost(func(v prefs.Value) error {
		r.trim(v.(int))
		return nil
	})

	p.Freq.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return errors.New("snapshot frequency must be at least one")
		}
		return nil
	})

	err := p.SetDefaults()
	if err != nil {
		return nil, err
	}

	for k, v := range map[string]prefs.Pref{
		KeyMaxEntries: &p.MaxEntries,
		KeyFreq:       &p.Freq,
	} {
		if _, err := prefs.ApplyCommandLinePref(k, v); err != nil {
			return nil, curated.Errorf(BadPreference, k, err)
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	if err := p.MaxEntries.Set(maxEntries); err != nil {
		return err
	}
	if err := p.Freq.Set(snapshotFreq); err != nil {
		return err
	}
	return nil
}
