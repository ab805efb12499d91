/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package main

import "github.com/rrenner/lfmkit/cmd"

func main() {
	cmd.Execute()
}
