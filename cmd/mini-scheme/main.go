package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	scheme "github.com/diefish1024/SchemeInterpreter"
	"github.com/mattn/go-isatty"
)

func repl() {
	env := scheme.NewEnvironment()
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		ret, err := scheme.Run(env, strings.NewReader(scanner.Text()))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		switch ret.(type) {
		case *scheme.Terminate:
			return
		case *scheme.Void:
		default:
			fmt.Println(scheme.Show(ret))
		}
	}
}

func main() {
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	var f *os.File
	var err error

	if flag.NArg() == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			repl()
			return
		}
		f = os.Stdin
	}

	if flag.NArg() == 1 {
		f, err = os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	env := scheme.NewEnvironment()
	if _, err := scheme.Run(env, f); err != nil {
		log.Fatal(err)
	}
}
