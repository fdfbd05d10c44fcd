package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable, memoized names for otherwise anonymous values (robot ids,
// pointers) in debug output. Names are generated lazily and the memo is
// never freed, which is fine for debugging and nothing else.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are handed out in order of demand, so make them
	// nondeterministic to remind the user that the same name doesn't mean
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(key interface{}) string {
	if key == nil {
		return "Ø"
	}

	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}
