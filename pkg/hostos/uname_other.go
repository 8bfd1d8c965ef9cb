//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package hostos

import (
	"runtime"
	"strings"
)

// Without uname(2) the best we have is what the binary was built for.
func readUname() (unameInfo, error) {
	return unameInfo{
		Sysname: strings.ToUpper(runtime.GOOS[:1]) + runtime.GOOS[1:],
		Machine: runtime.GOARCH,
	}, nil
}
