// Package classifier identifies the label format of a scanned string by its
// exact length and marker substrings, and extracts the part and serial numbers.
package classifier

import (
	"errors"
	"strings"
)

const (
	pidHost    = "pid.sick.com/"
	pidHTTPURL = "http://pid.sick.com/"
)

// Code is the result of a successful classification. An empty PartNumber or
// SerialNumber means the matched format did not yield that component.
type Code struct {
	Format            string `json:"format"`
	PartNumber        string `json:"partNumber,omitempty"`
	SerialNumber      string `json:"serialNumber,omitempty"`
	HasSeparateSerial bool   `json:"hasSeparateSerial"`
}

// Complete reports whether both components were extracted.
func (c Code) Complete() bool { return c.PartNumber != "" && c.SerialNumber != "" }

// Rule is one row of the label table. Length counts characters, not bytes.
type Rule struct {
	Name              string
	Length            int
	Marker            string
	HasSeparateSerial bool
	PartNumber        func(s []rune) string
	SerialNumber      func(s []rune) string
}

func (r Rule) matches(s []rune, raw string) bool {
	if len(s) != r.Length {
		return false
	}
	return r.Marker == "" || strings.Contains(raw, r.Marker)
}

// Rules is evaluated in order; the first match wins. New label formats are
// added here.
var Rules = []Rule{
	{
		Name:              "pid_long",
		Length:            29,
		Marker:            pidHost,
		HasSeparateSerial: true,
		PartNumber:        slashField(1),
		SerialNumber:      slashField(2),
	},
	{
		Name:         "pid_short",
		Length:       20,
		Marker:       pidHost,
		PartNumber:   slashField(1),
		SerialNumber: slashField(1),
	},
	{
		Name:         "pid_url",
		Length:       27,
		Marker:       pidHTTPURL,
		PartNumber:   slashField(3),
		SerialNumber: slashField(3),
	},
	{
		Name:              "composite",
		Length:            15,
		HasSeparateSerial: true,
		PartNumber:        head(7),
		SerialNumber:      tail(8),
	},
	{
		Name:         "dated",
		Length:       11,
		PartNumber:   head(7),
		SerialNumber: whole,
	},
	{
		Name:         "dated_suffix",
		Length:       12,
		PartNumber:   head(7),
		SerialNumber: whole,
	},
	{
		Name:         "part",
		Length:       7,
		PartNumber:   whole,
		SerialNumber: whole,
	},
}

var ErrUnrecognized = errors.New("classifier: unrecognized code")

// Classify trims surrounding whitespace and matches the text against Rules.
func Classify(raw string) (Code, error) {
	return ClassifyWith(Rules, raw)
}

func ClassifyWith(rules []Rule, raw string) (Code, error) {
	raw = strings.TrimSpace(raw)
	s := []rune(raw)
	for _, r := range rules {
		if !r.matches(s, raw) {
			continue
		}
		return Code{
			Format:            r.Name,
			PartNumber:        r.PartNumber(s),
			SerialNumber:      r.SerialNumber(s),
			HasSeparateSerial: r.HasSeparateSerial,
		}, nil
	}
	return Code{}, ErrUnrecognized
}

func slashField(i int) func([]rune) string {
	return func(s []rune) string {
		fields := strings.Split(string(s), "/")
		if i >= len(fields) {
			return ""
		}
		return fields[i]
	}
}

func head(n int) func([]rune) string {
	return func(s []rune) string { return string(s[:n]) }
}

func tail(n int) func([]rune) string {
	return func(s []rune) string { return string(s[len(s)-n:]) }
}

func whole(s []rune) string { return string(s) }
