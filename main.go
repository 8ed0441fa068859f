package main

import (
	"fmt"
	"os"
	"strings"

	"yelpcamp/service"
)

// CliVersion is reported by the version command.
const CliVersion = "1.0.0"

var exit = os.Exit

func main() {
	RealMain()
}

// RealMain dispatches os.Args to a command.
func RealMain() {
	if len(os.Args) < 2 {
		printHelp()
		exit(1)
		return
	}

	cmd := strings.ToLower(os.Args[1])
	switch {
	case cmd == "help" || cmd == "-h" || cmd == "--help":
		printHelp()
	case cmd == "version":
		fmt.Printf("yelpcamp version %s\n", CliVersion)
	case service.IsCommand(cmd):
		if code := service.HandleCommand(append([]string{cmd}, os.Args[2:]...)); code != 0 {
			exit(code)
		}
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		exit(1)
	}
}

func printHelp() {
	service.PrintHelp()
}
