package syntheticcontrol

import (
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// Fetch downloads the raw dataset and returns its non-empty lines in file
// order. Any network or HTTP failure is fatal to the pipeline; there is no
// retry.
func Fetch(url string) ([]string, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s", url)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read body of %s", url)
	}
	return splitLines(string(body)), nil
}

func splitLines(s string) (lines []string) {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
