package main

import (
	"errors"
	"fmt"
	"os"
	"strscript"

	"fortio.org/log"
	"github.com/jessevdk/go-flags"
)

type options struct {
	Config  string `short:"c" long:"config" description:"interpreter settings (.properties)" value-name:"FILE"`
	Verbose bool   `short:"v" long:"verbose" description:"trace execution on stderr"`
	Args    struct {
		Script string `positional-arg-name:"script"`
	} `positional-args:"yes"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = "[OPTIONS] script"
	rest, err := parser.ParseArgs(args)
	if err != nil || opts.Args.Script == "" || len(rest) > 0 {
		parser.WriteHelp(os.Stdout)
		return 1
	}
	config := strscript.DefaultConfig()
	if opts.Config != "" {
		config, err = strscript.LoadConfig(opts.Config)
		if err != nil {
			return report(err)
		}
	}
	if err := config.ApplyLogLevel(); err != nil {
		return report(err)
	}
	if opts.Verbose {
		log.SetLogLevelQuiet(log.Verbose)
	}
	source, err := os.ReadFile(opts.Args.Script)
	if err != nil {
		return report(err)
	}
	interp := strscript.NewInterpreter(os.Stdout, config)
	if err := interp.Run(opts.Args.Script, source); err != nil {
		return report(err)
	}
	return 0
}

// report writes the single diagnostic line. Failures outside the interpreter
// have no source line and are reported as line 0.
func report(err error) int {
	var e strscript.Error
	if errors.As(err, &e) {
		fmt.Fprintf(os.Stderr, "ERROR (line %d): %s\n", e.Line(), e.Message())
	} else {
		fmt.Fprintf(os.Stderr, "ERROR (line 0): %s\n", err)
	}
	return 1
}
