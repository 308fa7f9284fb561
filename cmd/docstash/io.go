package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"unicode"

	"golang.org/x/term"
)

// requestChoice represents a single-choice decision callback, the first option is considered the default "yes"-like choice.
// If the choice is aborted ChoiceAborted must be returned.
// If cleanup is set the implementation is recommended to remove the choice presentation after selection.
type requestChoice func(request string, options []string, cleanup bool) (choice string)

const ChoiceAborted = ""

func PromptUser(allowEscapeSequences bool) requestChoice {
	return func(request string, options []string, cleanup bool) (choice string) {
		letterToChoice := make(map[rune]string)
		var displayOptions []string

	ParseOptions:
		for _, option := range options {
			for i, letter := range option {
				if _, taken := letterToChoice[letter]; !taken {
					letterToChoice[unicode.ToUpper(letter)] = option
					letterToChoice[unicode.ToLower(letter)] = option
					printLetter := fmt.Sprintf("\x1B[1m\x1B[4m%c\x1B[0m", letter)
					if !allowEscapeSequences {
						printLetter = fmt.Sprintf("[%c]", letter)
					}
					displayOptions = append(displayOptions, fmt.Sprintf("%s%s%s", option[:i], printLetter, option[i+1:]))
					continue ParseOptions
				}
			}
		}

		key := make(chan rune, 1)
		interrupt := make(chan os.Signal, 1)

		signal.Notify(interrupt, os.Interrupt)
		defer signal.Reset(os.Interrupt)

		rawMode := false
		out := func(text string) {
			fmt.Fprint(os.Stdout, text)
		}
		rawOut := func(text string) {
			if rawMode {
				fmt.Fprint(os.Stdout, text)
			}
		}

		stdin := int(os.Stdin.Fd())
		if allowEscapeSequences && term.IsTerminal(stdin) {
			if oldTermState, err := term.MakeRaw(stdin); err == nil {
				rawMode = true
				defer term.Restore(stdin, oldTermState)
			} // else ENTER is required to confirm input -> acceptable fallback
		}
		reader := bufio.NewReader(os.Stdin)
		waitForKey := func() {
			input, err := reader.ReadByte()
			if err != nil { //stdin closed, nobody is going to answer
				interrupt <- os.Interrupt
				return
			}
			if !rawMode {
				if input == '\n' {
					key <- '?'
					return
				}
				rest, _ := reader.ReadString('\n')
				if strings.TrimRight(rest, "\r\n") != "" {
					key <- '?'
					return
				}
			}
			if rawMode && input == 3 { //Ctrl+C
				interrupt <- os.Interrupt
			} else {
				rawOut(fmt.Sprintf("%c", unicode.ToUpper(rune(input))))
				key <- rune(input)
			}
		}

		prompt := fmt.Sprintf("%s (%s): ", request, strings.Join(displayOptions, " / "))
		out(prompt)
		for {
			go waitForKey()
			select {
			case letterPressed := <-key:
				if selection, found := letterToChoice[letterPressed]; found {
					if cleanup {
						rawOut("\033[2K\r") //clear line
					} else {
						rawOut("\r\n")
					}
					return selection
				}
				rawOut("\a\033[1D") //bell and move cursor left by 1
				if !rawMode {
					out(prompt)
				}
			case <-interrupt:
				out("<CANCELLED>\r\n")
				return ChoiceAborted
			}
		}
	}
}

func AutoChooseDefaultOption(out io.Writer, quiet bool) requestChoice {
	return func(request string, options []string, cleanup bool) string {
		defaultChoice := options[0] //by definition of type requestChoice
		if !cleanup && !quiet {
			fmt.Fprintf(out, "%s => [%s]\n", request, strings.ToUpper(defaultChoice))
		}
		return defaultChoice
	}
}
