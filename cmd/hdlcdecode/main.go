package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/danmuck/hdlcbody/internal/hdlc"
	"github.com/danmuck/hdlcbody/internal/logging"
	"github.com/danmuck/hdlcbody/internal/observability"
	"github.com/danmuck/hdlcbody/internal/render"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const metricsSource = "cli"

type options struct {
	input  string
	output string
	ids    bool
}

func main() {
	opts := parseFlags()
	logging.ConfigureRuntime()
	logger := logging.New("hdlcdecode")

	if opts.input == "" || opts.input == "-" {
		os.Exit(run(opts, os.Stdin, os.Stdout, os.Stderr, logger))
	}
	f, err := os.Open(opts.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hdlcdecode: %v\n", err)
		os.Exit(1)
	}
	code := run(opts, f, os.Stdout, os.Stderr, logger)
	f.Close()
	os.Exit(code)
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.input, "input", "-", "file with one frame per line, - for stdin")
	flag.StringVar(&opts.output, "output", render.FormatJSON, "output format: json|yaml")
	flag.BoolVar(&opts.ids, "ids", false, "tag each record with a generated request id")
	flag.Parse()
	return opts
}

// run decodes each non-empty line of in. Unknown frame kinds are logged and
// skipped; malformed lines are reported on errOut and make the exit code 1.
func run(opts options, in io.Reader, out, errOut io.Writer, logger zerolog.Logger) int {
	interpreter := hdlc.NewInterpreter(hdlc.WithLogger(logging.NewAdapter(logger)))
	scanner := bufio.NewScanner(in)

	exitCode := 0
	lineNo := 0
	written := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" || strings.HasPrefix(text, "#") {
			continue
		}

		frame, err := interpreter.Apply(text)
		if err != nil {
			observability.RecordDecodeError(metricsSource, "malformed")
			fmt.Fprintf(errOut, "line %d: %v\n", lineNo, err)
			exitCode = 1
			continue
		}
		if frame == nil {
			observability.RecordDecodeError(metricsSource, "unknown_frame_type")
			continue
		}

		observability.RecordDecode(metricsSource, frame.Kind().String())
		rec := render.FromFrame(frame)
		if opts.ids {
			rec.RequestID = uuid.NewString()
		}
		if written > 0 && opts.output == render.FormatYAML {
			fmt.Fprintln(out, "---")
		}
		if err := render.Write(out, opts.output, rec); err != nil {
			fmt.Fprintf(errOut, "hdlcdecode: %v\n", err)
			return 1
		}
		written++
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(errOut, "hdlcdecode: read input: %v\n", err)
		return 1
	}
	if lineNo == 0 {
		logger.Warn().Msg("no input lines")
	}
	return exitCode
}
