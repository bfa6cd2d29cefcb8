// Command cookiehead decodes Cookie header values and prints them as JSON.
//
// Header values are taken from the arguments, or line by line from stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gobwas/cookiehead"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// CLI flags
	configFilenameFlag string
	canonicalNamesFlag bool
	jsonPathFlag       string
	prettyFlag         bool
	verbosityDebugFlag bool
	verbosityTraceFlag bool
	logFilenameFlag    string

	// this is set at build time
	version string
)

func init() {
	flag.StringVar(&configFilenameFlag, "config", "", "Path to YAML config file")
	flag.BoolVar(&canonicalNamesFlag, "canonical-names", false, "Upper-case the first letter of cookie keys")
	flag.StringVar(&jsonPathFlag, "json-path", "", "Read header value from this path of JSON input")
	flag.BoolVar(&prettyFlag, "pretty", false, "Indent JSON output")
	flag.BoolVar(&verbosityDebugFlag, "v", false, "Verbosity: debug logging")
	flag.BoolVar(&verbosityTraceFlag, "vv", false, "Verbosity: trace logging")
	flag.StringVar(&logFilenameFlag, "log-file", "", "Log file to use (in addition to stderr)")

	if version == "" {
		version = "DEV"
	}
}

func main() {
	flag.Parse()

	config := Config{}
	if configFilenameFlag != "" {
		var err error
		if config, err = getConfig(configFilenameFlag); err != nil {
			// Logger is not set up yet.
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "canonical-names":
			config.CanonicalNames = canonicalNamesFlag
		case "json-path":
			config.JSONPath = jsonPathFlag
		case "pretty":
			config.Pretty = prettyFlag
		case "v":
			config.LogLevel = zerolog.DebugLevel.String()
		case "vv":
			config.LogLevel = zerolog.TraceLevel.String()
		case "log-file":
			config.LogFile = logFilenameFlag
		}
	})

	setupLogger(config)

	headers, err := readHeaders(os.Stdin, flag.Args())
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot read headers")
	}
	if err := run(config, headers, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("Cannot decode headers")
	}
}

func setupLogger(config Config) {
	logLevel := zerolog.InfoLevel
	if config.LogLevel != "" {
		level, err := zerolog.ParseLevel(config.LogLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "unknown log level %q\n", config.LogLevel)
		} else {
			logLevel = level
		}
	}

	// set up log output to stderr, stdout is for the decoded cookies
	// also output to rotated logfile if specified
	logOutputs := make([]io.Writer, 0, 2)
	logOutputs = append(logOutputs, zerolog.ConsoleWriter{Out: os.Stderr})
	if config.LogFile != "" {
		logOutputs = append(logOutputs, &lumberjack.Logger{
			Filename:   config.LogFile,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		})
	}
	multiWriter := zerolog.MultiLevelWriter(logOutputs...)
	log.Logger = log.Level(logLevel).Output(multiWriter).
		With().Str("version", version).Logger()
}

// run decodes every header and writes one JSON document per line to w.
func run(config Config, headers []string, w io.Writer) error {
	decoder := cookiehead.Decoder{
		Logger:        &log.Logger,
		CanonicalName: config.CanonicalNames,
	}
	for i, input := range headers {
		header, ok := extractHeader(input, config.JSONPath)
		if !ok {
			continue
		}
		cookies := decoder.Decode(header)
		log.Debug().Int("input", i).Int("cookies", len(cookies)).Msg("Decoded header")

		out, err := renderCookies(cookies, config.Pretty)
		if err != nil {
			return fmt.Errorf("render input %d: %w", i, err)
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
