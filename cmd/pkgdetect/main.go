// Package main is the entrypoint for the pkgdetect CLI.
package main

import "github.com/repoforge/pkgdetect/cmd/pkgdetect/cmd"

func main() {
	cmd.Execute()
}
