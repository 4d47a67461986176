package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"strscript"
)

func main() {
	repl()
}

var interp = strscript.NewInterpreter(os.Stdout, strscript.DefaultConfig())
var depth = 0
var buff strings.Builder
var line uint = 0

// repl keeps one interpreter alive, so variables declared at the prompt stay
// in the global frame. Input is buffered until its braces balance.
func repl() {
	reader := bufio.NewReader(os.Stdin)
	for {
		if depth > 0 {
			fmt.Print(". ")
		} else {
			fmt.Print("> ")
		}
		text, err := reader.ReadString('\n')
		if err != nil && text == "" {
			fmt.Println()
			return
		}
		line++
		text = strings.TrimRight(text, "\r\n")
		for _, ch := range text {
			if ch == '{' {
				depth++
			}
			if ch == '}' {
				depth--
			}
		}
		buff.WriteString(text)
		buff.WriteString("\n")
		if depth > 0 {
			continue
		}
		depth = 0
		source := buff.String()
		buff.Reset()
		if err := interp.Run("<repl>", []byte(source)); err != nil {
			if e, ok := err.(strscript.Error); ok {
				fmt.Fprintf(os.Stderr, "ERROR (line %d): %s\n", line-countLines(source)+e.Line(), e.Message())
				continue
			}
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		}
	}
}

func countLines(source string) uint {
	return uint(strings.Count(source, "\n"))
}
