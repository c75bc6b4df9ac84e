//go:build release

package err

const Enabled = false

func Assert(condition bool) {}

func Assertf(condition bool, format string, args ...any) {}

func Never(format string, args ...any) {}
