package assert

import (
	"fmt"

	"github.com/bloeys/nshader/logging"
)

// T panics when check is false and the debug build tag is set, otherwise it only logs.
func T(check bool, msg string, args ...any) {

	if check {
		return
	}

	if isDebugBuild {
		panic("Assert failed: " + fmt.Sprintf(msg, args...))
	}

	logging.ErrLog.Println("Assert failed: " + fmt.Sprintf(msg, args...))
}
