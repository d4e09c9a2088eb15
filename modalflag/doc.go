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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("DEMO", "KEYS", "INFO")
//	sim := md.AddBool("sim", false, "use the simulated terminal")
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
// After Parse(), Mode() returns the selected mode. The first mode in the list
// is the default and is selected when the first argument after the flags is
// not a mode name. Mode comparisons are case insensitive.
//
// The selected mode can then define its own flags and sub-modes by calling
// NewMode() followed by Parse() once again. Parsing continues from the
// argument following the mode selector:
//
//	switch md.Mode() {
//	case "KEYS":
//		md.NewMode()
//		wait := md.AddInt("wait", -1, "input wait in milliseconds")
//		_, _ = md.Parse()
//		keys(*sim, *wait, md.RemainingArgs())
//	}
//
// Path() returns every mode selected so far, separated by a forward slash.
package modalflag
