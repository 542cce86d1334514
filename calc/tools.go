//go:build tools
// +build tools

package calc

import (
	_ "golang.org/x/tools/cmd/stringer"
)
