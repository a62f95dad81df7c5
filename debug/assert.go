package debug

import (
	"fmt"
	"os"
	"strconv"
)

const envAssertPanic = "GO_MENU_ASSERT_PANIC"

var enableAssert bool

func init() {
	loadAssertEnv()
}

func loadAssertEnv() {
	if e, err := strconv.ParseBool(os.Getenv(envAssertPanic)); err == nil {
		enableAssert = e
	} else {
		enableAssert = false
	}
}

// Assert panics with msg if cond is false and assertions are enabled via the
// environment. When disabled it writes the message to stderr instead, so
// violations still leave a trace. msg may be a string, an fmt.Stringer, or a
// func() string evaluated lazily.
func Assert(cond bool, msg any) {
	if cond {
		return
	}
	fail(toString(msg))
}

// AssertNoError is Assert for the common err == nil condition.
func AssertNoError(err error) {
	if err == nil {
		return
	}
	fail(err.Error())
}

func fail(msg string) {
	if enableAssert {
		panic(msg)
	}
	writeWithSync(2, "[ASSERT] "+msg+"\n")
}

func toString(v any) string {
	switch m := v.(type) {
	case func() string:
		return m()
	case string:
		return m
	case fmt.Stringer:
		return m.String()
	default:
		return fmt.Sprintf("unexpected assert message: %#v", v)
	}
}
