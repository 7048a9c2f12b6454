package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"go.soorj.dev/pkg"
)

const (
	historyFile = ".soorj_history"
	prompt      = "soorj> "
)

const helpText = `
Սուրճ (Soorj) - Armenian Programming Language REPL
================================================

Commands:
  .help     - Show this help message
  .exit     - Exit the REPL
  .clear    - Clear the screen
  .example  - Show example code

Armenian Keywords:
  եթե        - if
  հպ         - else
  մինչև      - while
  գործ       - function
  տուր       - return
  այո        - true
  ոչ         - false
  հեչ        - null
  և          - and
  կամ        - or
  չի         - not

Built-in Functions:
  գրէ(...)   - Print values (write)
  թիվ(x)     - Convert to number
  բառ(x)     - Convert to string (word)

Example: ա = 5; գրէ("Բարեւ աշխարգ!")
`

const exampleText = `
Example Soorj Programs:
=======================

1. Hello World:
   գրէ("Բարեւ աշխարգ!")

2. Variables and arithmetic:
   ա = 10
   բ = 20
   գումար = ա + բ
   գրէ("Գումարը:", գումար)

3. Conditional (if-else):
   ա = 15
   եթե ա > 10 {
       գրէ("Ա-ն մեծ է 10-ից")
   } հպ {
       գրէ("Ա-ն փոքր է կամ հավասար 10-ին")
   }

4. Loop (while):
   ի = 1
   մինչև ի <= 5 {
       գրէ("Հաշվարկ:", ի)
       ի = ի + 1
   }

5. Function definition:
   գործ ողջունել(անուն) {
       գրէ("Բարեւ,", անուն, "!")
       տուր անուն
   }

   արդյունք = ողջունել("Հայաստան")
   գրէ("Գործառույթը վերադարձրեց:", արդյունք)
`

func main() {
	if len(os.Args) > 1 {
		os.Exit(runFile(os.Args[1]))
	}

	os.Exit(repl())
}

func runFile(path string) int {
	in := soorj.NewInterpreter(os.Stdout)
	if err := in.RunFile(path); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}

func repl() int {
	fmt.Println("Սուրճ (Soorj) Armenian Programming Language")
	fmt.Println("Type .help for help, .exit to quit")
	fmt.Println("=========================================")

	ln := liner.NewLiner()
	defer ln.Close()

	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	in := soorj.NewInterpreter(os.Stdout)

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println("\nՑտեսություն! (Goodbye!)")
			return 0
		}

		if errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println("Interrupted")
			continue
		}

		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		switch strings.TrimSpace(line) {
		case "":
			continue
		case ".exit":
			fmt.Println("Ցտեսություն! (Goodbye!)")
			return 0
		case ".help":
			fmt.Print(helpText)
			continue
		case ".example":
			fmt.Print(exampleText)
			continue
		case ".clear":
			fmt.Print("\x1b[2J\x1b[H")
			continue
		}

		ln.AppendHistory(line)

		v, echo, err := in.EvalSource(line)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}

		if echo {
			fmt.Println(v)
		}
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}

	return filepath.Join(home, historyFile)
}
