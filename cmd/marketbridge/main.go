// Package main is the entry point for the marketbridge CLI and server.
package main

import "github.com/donaldgifford/marketbridge/cmd/marketbridge/cmd"

func main() {
	cmd.Execute()
}
