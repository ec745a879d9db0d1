package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Turns pointers into memorable names for debugging, since raw pointer
// strings are hopeless to tell apart in a trace. Names are memoized for the
// life of the process, which leaks, but only when tracing is actually in use.

var (
	memo = map[string]string{}
	used = map[string]bool{}
)

func init() {
	// Names are handed out in demand order, so keep them nondeterministic as a
	// reminder that a name never means the same thing across two runs.
	petname.NonDeterministicMode()
}

// Name returns a stable readable name for the pointer obj. Distinct pointers
// get distinct names even when the generator repeats itself.
func Name(obj interface{}) string {
	if obj == nil || reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	key := fmt.Sprintf("%p", obj)
	if r, ok := memo[key]; ok {
		return r
	}
	r := freshName()
	memo[key] = r
	used[r] = true
	return r
}

func freshName() string {
	base := strings.Title(petname.Adjective()) + strings.Title(petname.Name())
	name := base
	for n := 2; used[name]; n++ {
		name = fmt.Sprintf("%s%d", base, n)
	}
	return name
}
