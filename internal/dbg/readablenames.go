package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/kr/pretty"
)

// Debug helpers for printing entities. Ids are easy to confuse with one
// another in a long log; "BraveOtter" and "QuietHeron" are not.
//
// Names are remembered for as long as the process runs, and so is everything
// that was ever named. Only ask for a name when something is actually being
// printed.

var (
	namesMu sync.Mutex
	names   = make(map[interface{}]string)
)

func init() {
	// Names are handed out in order of demand, so make them nondeterministic as
	// a reminder that the same name doesn't mean the same entity between runs.
	petname.NonDeterministicMode()
}

// A readable name for obj, stable for the life of the process. Safe to call
// from several goroutines.
func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	namesMu.Lock()
	defer namesMu.Unlock()
	if name, ok := names[obj]; ok {
		return name
	}
	name := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	names[obj] = name
	return name
}

// Multi-line dump of a value with all of its fields, for failure messages.
func Dump(obj interface{}) string {
	return pretty.Sprint(obj)
}
