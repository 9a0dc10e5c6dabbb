/*
File    : golox/cmd/golox/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Command golox is the thin external wrapper around package interp: file
mode is the one required invocation, plus REPL and TCP-server
conveniences layered on top, none of which are part of the core
pipeline.
*/
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/akashmaji946/golox/interp"
	"github.com/akashmaji946/golox/repl"
	"github.com/fatih/color"
)

const (
	version = "0.1.0"
	author  = "akashmaji(@iisc.ac.in)"
	line    = "------------------------------------------------------------"
	license = "MIT"
	banner  = `
   _____     _
  / ____|   | |
 | |  __  __| |  ___   __  __
 | | |_ |/ _  | / _ \  \ \/ /
 | |__| | (_| || (_) |  >  <
  \_____|\__,_| \___/  /_/\_\
`
)

func main() {
	args := os.Args[1:]

	if len(args) == 0 {
		startRepl()
		return
	}

	switch args[0] {
	case "--help", "-h":
		showHelp()
	case "--version", "-v":
		showVersion()
	case "server":
		port := "4000"
		if len(args) > 1 {
			port = args[1]
		}
		if err := startServer(port); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	default:
		if err := runFile(args[0]); err != nil {
			color.New(color.FgRed).Fprintf(os.Stderr, "%s\n", err)
			os.Exit(1)
		}
	}
}

func runFile(path string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("runtime error: %v", r)
		}
	}()
	src, readErr := os.ReadFile(path)
	if readErr != nil {
		return readErr
	}
	return interp.Interpret(string(src), os.Stdout)
}

func startRepl() {
	r := repl.New(banner, version, author, line, license, "golox >>> ")
	r.Start(os.Stdout)
}

func startServer(port string) error {
	ln, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return err
	}
	defer ln.Close()
	fmt.Printf("golox server listening on :%s\n", port)
	for {
		conn, err := ln.Accept()
		if err != nil {
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	r := repl.New(banner, version, author, line, license, "golox >>> ")
	r.StartSession(conn, conn)
}

func showHelp() {
	fmt.Println("golox - a small Lox-family interpreter")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  golox                run the interactive REPL")
	fmt.Println("  golox <file>          run a source file")
	fmt.Println("  golox server [port]   run a TCP REPL server (default port 4000)")
	fmt.Println("  golox --help          show this help text")
	fmt.Println("  golox --version       show version information")
}

func showVersion() {
	fmt.Printf("golox %s\n", version)
}
