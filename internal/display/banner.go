package display

import (
	"fmt"
	"os"

	"github.com/bigteeny/splicesort/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Magenta != "" {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, `  ___       _ _          ___          _
 / __|_ __ | (_)__ ___  / __| ___ _ _| |_
 \__ \ '_ \| | / _/ -_) \__ \/ _ \ '_|  _|
 |___/ .__/|_|_\__\___| |___/\___/_|  \__|
     |_|
`)
	if term.Magenta != "" {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
