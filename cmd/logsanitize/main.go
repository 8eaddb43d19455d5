// Command logsanitize reads log lines from stdin and writes them through the
// sanitizing console, one output line per input line.
//
//	tail -f app.log | logsanitize -mode production -level warn
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dmitrymomot/customerdesk/pkg/environment"
	"github.com/dmitrymomot/customerdesk/pkg/logger"
)

const maxLineSize = 1 << 20

func main() {
	mode := flag.String("mode", string(logger.ModeFor(environment.Parse(os.Getenv("APP_ENV")))), "output mode: development or production")
	level := flag.String("level", "info", "level to write lines at: info, warn or error")
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, logger.Mode(*mode), *level); err != nil {
		fmt.Fprintln(os.Stderr, "logsanitize:", err)
		os.Exit(2)
	}
}

func run(in io.Reader, out io.Writer, mode logger.Mode, level string) error {
	if mode != logger.ModeDevelopment && mode != logger.ModeProduction {
		return fmt.Errorf("unknown mode %q", mode)
	}

	console := logger.NewConsole(out, mode)
	var write func(args ...any)
	switch level {
	case "info":
		write = console.Info
	case "warn":
		write = console.Warn
	case "error":
		write = console.Error
	default:
		return fmt.Errorf("unknown level %q", level)
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64<<10), maxLineSize)
	for scanner.Scan() {
		write(scanner.Text())
	}
	return scanner.Err()
}
