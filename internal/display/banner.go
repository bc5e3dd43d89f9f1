package display

import (
	"fmt"
	"os"

	"github.com/bbimams/video-splitter/internal/term"
)

// PrintBanner prints the ASCII art banner; magenta when colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, `__     ___     _             ____        _ _ _   _
\ \   / (_) __| | ___  ___  / ___| _ __ | (_) |_| |_ ___ _ __
 \ \ / /| |/ _`+"`"+` |/ _ \/ _ \ \___ \| '_ \| | | __| __/ _ \ '__|
  \ V / | | (_| |  __/ (_) | ___) | |_) | | | |_| ||  __/ |
   \_/  |_|\__,_|\___|\___/ |____/| .__/|_|_|\__|\__\___|_|
                                  |_|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
