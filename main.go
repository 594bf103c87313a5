/*
Copyright © 2026 Paulo Suderio
*/
package main

import "github.com/suderio/yacht-dice/cmd"

func main() {
	cmd.Execute()
}
