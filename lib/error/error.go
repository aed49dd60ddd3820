/*package error contains simple functions for reporting fatal dem errors.
Everything is written through the standard logger, so callers can redirect it
with log.SetOutput.
*/
package error

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
)

// exit is replaced in tests.
var exit = os.Exit

// External reports an error which a user could reasonably be expected to fix
// through changes to their config file or command line, then exits. It has
// the same signature as the standard fmt.*printf() functions.
func External(format string, a ...interface{}) {
	log.Printf("dem exited early with the following error:\n%s",
		fmt.Sprintf(format, a...))
	exit(1)
}

// Internal reports an error which needs a code dive to fix, along with the
// stack of the caller, then exits.
func Internal(format string, a ...interface{}) {
	log.Printf("dem exited early with the following internal error:\n%s\n\n%s",
		fmt.Sprintf(format, a...), debug.Stack())
	exit(1)
}
