// Command lzsave converts a save file between its raw and compressed forms.
//
//	lzsave <input_file> <output_file>
//
// The direction follows the input's type marker. A wrong argument count
// prints usage and exits with status 0.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/woozymasta/lzsave/savefile"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lzsave", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: lzsave <input_file> <output_file>")
	}
	if err := fs.Parse(args); err != nil {
		return 0
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return 0
	}

	summary, err := convert(fs.Arg(0), fs.Arg(1))
	if err != nil {
		log.New(stderr, "lzsave: ", 0).Print(err)
		return 1
	}

	fmt.Fprintln(stdout, summary)
	return 0
}

// convert toggles the save at in and writes the result to out.
func convert(in, out string) (string, error) {
	f, err := savefile.Open(in)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", in, err)
	}

	action := "compressed"
	if f.Header.Compressed {
		action = "decompressed"
	}
	before := len(f.Payload)

	if err := f.Toggle(); err != nil {
		return "", fmt.Errorf("convert %s: %w", in, err)
	}

	if err := f.Save(out); err != nil {
		return "", fmt.Errorf("write %s: %w", out, err)
	}

	return fmt.Sprintf("%s %q: %d -> %d payload bytes, saved to %s",
		action, f.Header.Name, before, len(f.Payload), out), nil
}
