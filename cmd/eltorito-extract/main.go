package main

import (
	"fmt"
	"os"
	"time"

	eltorito "github.com/bgrewell/eltorito-kit"
	"github.com/bgrewell/eltorito-kit/pkg/logging"
	"github.com/bgrewell/eltorito-kit/pkg/option"
	"github.com/bgrewell/eltorito-kit/pkg/report"
	"github.com/bgrewell/usage"
	"github.com/theckman/yacspin"
	"golang.org/x/term"
)

var (
	version = "dev"
)

// truncateString truncates the input string to the specified max length.
// If truncation occurs, it prepends "..." to indicate the string has been shortened.
func truncateString(input string, maxLength int) string {
	if len(input) <= maxLength {
		return input
	}
	if maxLength <= 3 {
		return input[len(input)-maxLength:]
	}
	return "..." + input[len(input)-(maxLength-3):]
}

// statusMessage builds a spinner message sized to the current terminal width.
func statusMessage(action string, path string) string {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width = 80 // Default width
	}
	available := width - len(action) - 6
	if available < 10 {
		available = 10
	}
	return fmt.Sprintf(" %s %s", action, truncateString(path, available))
}

// InitializeSpinner sets up and starts the yacspin spinner.
func InitializeSpinner() (*yacspin.Spinner, error) {
	settings := yacspin.Config{
		Frequency:         100 * time.Millisecond,
		ShowCursor:        false,
		SpinnerAtEnd:      false,
		CharSet:           yacspin.CharSets[14],
		Colors:            []string{"fgHiCyan"},
		StopColors:        []string{"fgHiGreen"},
		StopFailColors:    []string{"fgHiRed"},
		StopFailCharacter: "✗",
		StopCharacter:     "✓",
	}

	spinner, err := yacspin.New(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create spinner: %w", err)
	}

	if err := spinner.Start(); err != nil {
		return nil, fmt.Errorf("failed to start spinner: %w", err)
	}

	return spinner, nil
}

func main() {

	u := usage.NewUsage()
	help := u.AddBooleanOption("h", "help", false, "Show this help message", "optional", nil)
	verbose := u.AddBooleanOption("v", "verbose", false, "Enable verbose (debug) logging", "", nil)
	trace := u.AddBooleanOption("vv", "trace", false, "Enable trace logging", "", nil)
	input := u.AddArgument(1, "cd-image", "Path to the cd image to read", "")
	output := u.AddArgument(2, "boot-image", "Path to write the extracted boot image", "")
	parsed := u.Parse()

	if !parsed {
		u.PrintError(fmt.Errorf("failed to parse arguments"))
		os.Exit(1)
	}

	if *help {
		u.PrintUsage()
		os.Exit(0)
	}

	if input == nil || *input == "" || output == nil || *output == "" {
		u.PrintError(fmt.Errorf("both <cd-image> and <boot-image> paths must be provided"))
		os.Exit(1)
	}

	// Map -v/-vv to the logger's verbosity levels; logs go to stderr so
	// they do not interleave with the spinner on stdout.
	level := logging.LEVEL_INFO
	if *verbose {
		level = logging.LEVEL_DEBUG
	}
	if *trace {
		level = logging.LEVEL_TRACE
	}
	useColor := term.IsTerminal(int(os.Stderr.Fd()))
	logger := logging.NewLogger(logging.NewSimpleLogger(os.Stderr, level, useColor))

	spinner, err := InitializeSpinner()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize spinner: %v\n", err)
		fmt.Fprintf(os.Stderr, "Progress updates will be disabled.\n")
	}
	if spinner != nil {
		spinner.Message(statusMessage("extracting boot image from", *input))
	}

	// Collect every decoded field so it can be shown after extraction.
	fields := &report.Fields{}

	err = eltorito.ExtractFile(*input, *output,
		option.WithLogger(logger),
		option.WithReport(fields),
	)
	if err != nil {
		if spinner != nil {
			spinner.StopFailMessage(fmt.Sprintf(" This is not a valid bootable cd image: %v", err))
			spinner.StopFail()
		} else {
			fmt.Fprintf(os.Stderr, "This is not a valid bootable cd image: %v\n", err)
		}
		os.Exit(1)
	}

	var imageBytes int64
	if v, ok := fields.Get("sector_count"); ok {
		if count, ok := v.(uint32); ok {
			imageBytes = int64(count) * 512
		}
	}

	if spinner != nil {
		spinner.StopMessage(fmt.Sprintf(" Image written to %s (%d bytes)", *output, imageBytes))
		spinner.Stop()
	} else {
		fmt.Printf("Image written to %s (%d bytes)\n", *output, imageBytes)
	}

	if *verbose || *trace {
		for _, f := range fields.Pairs() {
			fmt.Printf("%s: %v\n", f.Name, f.Value)
		}
	}
}
