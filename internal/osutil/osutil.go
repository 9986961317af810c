// Package osutil holds operating system constants
package osutil

const Windows = "windows"

type exitCode int

const ExitError exitCode = 1

// DirPermission is used for every directory lift creates.
const DirPermission = 0o750

// FilePermission is used for every file lift creates.
const FilePermission = 0o600
