// hash-omikuji — deterministic SHA-256 fortune telling.
//
// Usage:
//
//	hash-omikuji draw --user alice              # on January 1st
//	hash-omikuji draw --user alice --force      # any other day
//	hash-omikuji draw --user alice --json
//	hash-omikuji history verify
package main

import "github.com/elzup/hash-omikuji/cmd"

var version = "dev"

func main() {
	cmd.Execute(version)
}
