package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

// readHeaders returns header values given as arguments, or every non-empty
// line of r if args is empty.
func readHeaders(r io.Reader, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var headers []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			headers = append(headers, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return headers, nil
}

// extractHeader returns the header value found at path of the JSON
// document. The input is returned as is if path is empty.
func extractHeader(input, path string) (string, bool) {
	if path == "" {
		return input, true
	}
	if !gjson.Valid(input) {
		log.Warn().Str("input", input).Msg("Input is not valid JSON")
		return "", false
	}
	res := gjson.Get(input, path)
	if !res.Exists() {
		log.Warn().Str("path", path).Msg("No value at JSON path")
		return "", false
	}
	return res.String(), true
}
