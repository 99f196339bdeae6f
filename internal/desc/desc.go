// Package desc fills numeric parameters into skill and light cone templates
// such as "Deals DMG equal to #1[i]% of ATK for #2[i] turn(s)".
package desc

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// SegmentKind tells clients how to render a segment.
type SegmentKind string

const (
	SegmentText  SegmentKind = "text"
	SegmentParam SegmentKind = "param"
)

type Segment struct {
	Kind SegmentKind
	Text string
}

// Description is a rendered template. Params holds the formatted values in
// marker order; Segments alternate between plain text and parameters.
type Description struct {
	Template string
	Params   []string
	Segments []Segment
}

// String joins all segments.
func (d Description) String() string {
	var sb strings.Builder
	for _, s := range d.Segments {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

var (
	indexRe  = regexp.MustCompile(`#(\d+)\[`)
	markerRe = regexp.MustCompile(`#(\d+)\[([^\]]*)\](%?)`)
)

var hundred = decimal.NewFromInt(100)

// SortedParams returns params reordered so the k-th value belongs to the k-th
// #N marker in template. Markers pointing outside params are skipped.
func SortedParams(params []float64, template string) []float64 {
	out := make([]float64, 0, len(params))
	for _, m := range indexRe.FindAllStringSubmatch(template, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 || n > len(params) {
			continue
		}
		out = append(out, params[n-1])
	}
	return out
}

// Render substitutes params into template.
//   - #N[i] prints params[N-1] as an integer.
//   - #N[fM] prints it with M decimals.
//   - A trailing % multiplies by 100 and is kept in the output.
//
// Markers with an unknown directive or an index outside params stay verbatim.
func Render(template string, params []float64) Description {
	d := Description{Template: template, Params: []string{}}
	last := 0
	text := func(s string) {
		if s == "" {
			return
		}
		if n := len(d.Segments); n > 0 && d.Segments[n-1].Kind == SegmentText {
			d.Segments[n-1].Text += s
			return
		}
		d.Segments = append(d.Segments, Segment{Kind: SegmentText, Text: s})
	}

	for _, loc := range markerRe.FindAllStringSubmatchIndex(template, -1) {
		whole := template[loc[0]:loc[1]]
		n, _ := strconv.Atoi(template[loc[2]:loc[3]])
		directive := template[loc[4]:loc[5]]
		percent := loc[7] > loc[6]

		text(template[last:loc[0]])
		last = loc[1]

		if n < 1 || n > len(params) {
			text(whole)
			continue
		}
		formatted, ok := format(params[n-1], directive, percent)
		if !ok {
			text(whole)
			continue
		}
		d.Params = append(d.Params, formatted)
		d.Segments = append(d.Segments, Segment{Kind: SegmentParam, Text: formatted})
	}
	text(template[last:])
	return d
}

func format(v float64, directive string, percent bool) (string, bool) {
	var places int32
	switch {
	case directive == "i":
		places = 0
	case strings.HasPrefix(directive, "f"):
		m, err := strconv.Atoi(directive[1:])
		if err != nil || m < 0 || m > 8 {
			return "", false
		}
		places = int32(m)
	default:
		return "", false
	}

	d := decimal.NewFromFloat(v)
	if percent {
		d = d.Mul(hundred)
	}
	s := d.StringFixed(places)
	if percent {
		s += "%"
	}
	return s, true
}
