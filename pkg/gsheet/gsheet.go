// Package gsheet decodes Google Visualization (gviz) query responses, the
// JSONP-wrapped format a published spreadsheet returns from its /gviz/tq
// endpoint.
package gsheet

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrNoJSON = errors.New("gsheet: no JSON object in payload")

type Cell struct {
	V any `json:"v"`
}

type Row struct {
	C []*Cell `json:"c"`
}

type Table struct {
	Rows []Row `json:"rows"`
}

type response struct {
	Table Table `json:"table"`
}

// Parse strips the JSONP wrapper and decodes the table.
func Parse(raw []byte) (Table, error) {
	start := bytes.IndexByte(raw, '{')
	end := bytes.LastIndexByte(raw, '}')

	if start < 0 || end < start {
		return Table{}, ErrNoJSON
	}

	var res response
	if err := json.Unmarshal(raw[start:end+1], &res); err != nil {
		return Table{}, fmt.Errorf("gsheet: decode: %w", err)
	}

	return res.Table, nil
}

func (r Row) value(i int) any {
	if i < 0 || i >= len(r.C) || r.C[i] == nil {
		return nil
	}

	return r.C[i].V
}

// String returns the cell as text. Numbers are formatted without a trailing ".0".
func (r Row) String(i int) (string, bool) {
	switch v := r.value(i).(type) {
	case string:
		return strings.TrimSpace(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

func (r Row) Float(i int) (float64, bool) {
	switch v := r.value(i).(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)

		return f, err == nil
	default:
		return 0, false
	}
}

// ParseDateCells combines a gviz date cell, Date(y,m,d), with a time cell,
// Date(y,m,d,h,mi,s). gviz months are zero based, so Date(2024,4,4) is
// May 4th; the month is not taken literally.
func ParseDateCells(date, clock string) (time.Time, error) {
	d, err := parseDate(date)
	if err != nil {
		return time.Time{}, err
	}

	c, err := parseDate(clock)
	if err != nil {
		return time.Time{}, err
	}

	year, month, day := d[0], d[1]+1, d[2]
	hour, minute, second := c[3], c[4], c[5]

	if month < 1 || month > 12 || day < 1 || day > daysIn(year, month) {
		return time.Time{}, fmt.Errorf("gsheet: invalid date: %s", date)
	}

	if hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, fmt.Errorf("gsheet: invalid time: %s", clock)
	}

	return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC), nil
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// parseDate returns y, m, d, h, mi, s with the time part zeroed for the
// three-argument form.
func parseDate(input string) ([6]int, error) {
	var out [6]int

	s := strings.Trim(strings.TrimSpace(input), `"`)

	inner, ok := strings.CutPrefix(s, "Date(")
	if ok {
		inner, ok = strings.CutSuffix(inner, ")")
	}

	if !ok {
		return out, fmt.Errorf("gsheet: invalid date format: %s", input)
	}

	parts := strings.Split(inner, ",")
	if len(parts) != 3 && len(parts) != 6 {
		return out, fmt.Errorf("gsheet: unexpected date format: %s", input)
	}

	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return out, fmt.Errorf("gsheet: invalid number in: %s", input)
		}

		out[i] = n
	}

	return out, nil
}
