// Package scenarios holds the built-in battle scenarios and a watcher reporting edits
// to scenario files on disk.
package scenarios

import "embed"

// Default is the scenario loaded when none is given on the command line.
const Default = "skirmish.yaml"

//go:embed *.yaml
var FS embed.FS
