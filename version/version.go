// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of the application. The version number
// is set at build time with the linker:
//
//	go build -ldflags "-X github.com/jetsetilly/gopher6502/version.number=v0.1.0"
//
// Revision information is taken from the build information embedded by the Go
// toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher6502"

// set by the linker. empty if the binary was not built for release
var number string

var version string
var revision string

// Version returns the version string and the revision string. The version is
// "unreleased" if the binary was built from a source tree without a version
// number and "local" if there is no vcs information at all.
//
// The revision is suffixed with "+dirty" if the source tree had uncommitted
// changes.
func Version() (string, string) {
	return version, revision
}

// String returns the application name and version.
func String() string {
	return fmt.Sprintf("%s %s", ApplicationName, version)
}

func init() {
	var vcs bool
	var modified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if revision == "" {
		revision = "no revision information"
	} else if modified {
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
