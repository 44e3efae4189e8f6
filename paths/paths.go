// This file is part of Turtle.
//
// Turtle is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Turtle is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Turtle.  If not, see <https://www.gnu.org/licenses/>.

// Package paths prepares paths to turtle resources.
//
// If a directory called ".turtle" exists in the current working directory
// then resources are found there. Otherwise the "turtle" directory in the
// user's configuration directory is used. On a modern Linux system the path
// of the preferences file will be:
//
//	/home/user/.config/turtle/preferences
package paths

import (
	"os"
	"path/filepath"
)

// the local base path. used in preference to the user config directory if it
// exists.
const localBasePath = ".turtle"

// the name of the directory in the user config directory.
const configDirName = "turtle"

// ResourcePath returns the path to a resource file in the sub directory. The
// sub directory (and the base directory) are created if necessary. Either
// argument can be empty.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := basePath()
	if err != nil {
		return "", err
	}

	pth := filepath.Join(base, subPth)
	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return filepath.Join(pth, file), nil
}

func basePath() (string, error) {
	if info, err := os.Stat(localBasePath); err == nil && info.IsDir() {
		return localBasePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, configDirName), nil
}
