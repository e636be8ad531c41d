package constants

import (
	"fmt"
	"runtime"

	"github.com/tesh254/chatdown/internal/version"
)

const ASCII = `
       _           _      _
   ___| |__   __ _| |_ __| | _____      ___ __
  / __| '_ \ / _` + "`" + ` | __/ _` + "`" + ` |/ _ \ \ /\ / / '_ \
 | (__| | | | (_| | || (_| | (_) \ V  V /| | | |
  \___|_| |_|\__,_|\__\__,_|\___/ \_/\_/ |_| |_|

`

func VERSION() string {
	return version.GetVersion()
}

func DETAILED_VERSION() string {
	return version.GetDetailedVersion()
}

func CurrentOSWithVersion() string {
	return fmt.Sprintf("chatdown %s on %s/%s", version.GetVersion(), runtime.GOOS, runtime.GOARCH)
}

func GetReleaseInfo() string {
	return "Releases: https://github.com/tesh254/chatdown/releases"
}
