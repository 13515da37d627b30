package game

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pixil98/go-errors"
)

// Flags is the per-entity tag bag that carries all persistent puzzle
// state. A flag is either bare presence (value "") or a stored scalar
// (e.g. question1 -> "MAGUS"). Objects and characters each carry one;
// there is deliberately no other place to hide puzzle progress.
type Flags map[string]string

// vocabulary is the set of flag names registered at startup. Looking
// up or setting an unregistered name is a programming error: silent
// typos in string-keyed flags are how puzzles quietly never trigger.
var (
	vocabMu    sync.RWMutex
	vocabulary = map[string]bool{}
)

// RegisterFlags adds names to the known flag vocabulary. Content
// packages call this from init().
func RegisterFlags(names ...string) {
	vocabMu.Lock()
	defer vocabMu.Unlock()
	for _, n := range names {
		vocabulary[n] = true
	}
}

// ValidateVocabulary checks every given name against the registered
// vocabulary. Run once at startup over all flag names the content
// states reference.
func ValidateVocabulary(names ...string) error {
	vocabMu.RLock()
	defer vocabMu.RUnlock()

	el := errors.NewErrorList()
	for _, n := range names {
		if !vocabulary[n] {
			el.Add(fmt.Errorf("flag %q is not registered", n))
		}
	}
	return el.Err()
}

func knownFlag(name string) bool {
	vocabMu.RLock()
	defer vocabMu.RUnlock()
	return vocabulary[name]
}

// Set marks a bare flag.
func (f *Flags) Set(name string) {
	f.SetValue(name, "")
}

// SetValue stores a scalar under a flag name.
func (f *Flags) SetValue(name, value string) {
	if !knownFlag(name) {
		panic(fmt.Sprintf("flag %q is not in the registered vocabulary", name))
	}
	if *f == nil {
		*f = Flags{}
	}
	(*f)[name] = value
}

// Has reports whether the flag is present.
func (f Flags) Has(name string) bool {
	if !knownFlag(name) {
		panic(fmt.Sprintf("flag %q is not in the registered vocabulary", name))
	}
	_, ok := f[name]
	return ok
}

// Value returns the stored scalar for a flag, or "" if unset.
func (f Flags) Value(name string) string {
	return f[name]
}

// Clear removes a flag if present.
func (f Flags) Clear(name string) {
	delete(f, name)
}

// clone copies the flag bag for snapshots.
func (f Flags) clone() Flags {
	if f == nil {
		return nil
	}
	out := make(Flags, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Names returns the present flag names, sorted for stable output.
func (f Flags) Names() []string {
	names := make([]string, 0, len(f))
	for n := range f {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
