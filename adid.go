package wheelads

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

var adIDRe = regexp.MustCompile(`/(\d{7,10})`)

// AdID returns the numeric ad identifier embedded in an ad URL, the first
// run of 7 to 10 digits following a slash.
func AdID(url string) (string, bool) {
	m := adIDRe.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ParseURLs reads one URL per line from r. Surrounding whitespace is trimmed
// and blank lines are ignored.
func ParseURLs(r io.Reader) ([]string, error) {
	var urls []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if u := strings.TrimSpace(sc.Text()); u != "" {
			urls = append(urls, u)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return urls, nil
}
