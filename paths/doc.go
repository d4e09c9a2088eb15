// This file is part of curst.
//
// curst is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// curst is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with curst.  If not, see <https://www.gnu.org/licenses/>.

// Package paths contains functions to prepare paths to curst resources, such
// as the preferences file.
//
// The ResourcePath() function prepends the supplied resource path with the
// base directory, creating the directories as required. For example:
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// By default, the base directory is ".curst" in the current working
// directory. When compiled with the "release" build tag, the base directory
// is "curst" in the user's config directory as reported by
// os.UserConfigDir(). On a modern Linux system, that is:
//
//	/home/user/.config/curst/preferences
package paths
