// Copyright (c) 2026 WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Package svg reads the subset of SVG the QR encoder emits: a sized
// document containing path elements built from move/line commands.
// Coordinates are SVG user units, origin top-left, y increasing downward.
package svg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Point is a position in SVG user units.
type Point struct {
	X float64
	Y float64
}

// Image is a parsed vector image: its intrinsic size and the closed
// subpaths of its path elements, in document order.
type Image struct {
	Width    float64
	Height   float64
	Subpaths [][]Point
}

var errNoGeometry = errors.New("svg: document has no usable geometry")

type svgDoc struct {
	XMLName xml.Name  `xml:"svg"`
	Width   string    `xml:"width,attr"`
	Height  string    `xml:"height,attr"`
	ViewBox string    `xml:"viewBox,attr"`
	Paths   []svgPath `xml:"path"`
}

type svgPath struct {
	D string `xml:"d,attr"`
}

// Parse decodes an SVG byte buffer into an Image.
func Parse(data []byte) (*Image, error) {
	var doc svgDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("svg: decoding document: %w", err)
	}

	w, h, err := documentSize(doc)
	if err != nil {
		return nil, err
	}

	img := &Image{Width: w, Height: h}
	for _, p := range doc.Paths {
		subpaths, err := parsePathData(p.D)
		if err != nil {
			return nil, err
		}
		img.Subpaths = append(img.Subpaths, subpaths...)
	}
	return img, nil
}

// documentSize resolves the image size from width/height attributes,
// falling back to the viewBox.
func documentSize(doc svgDoc) (float64, float64, error) {
	w, werr := parseLength(doc.Width)
	h, herr := parseLength(doc.Height)
	if werr == nil && herr == nil && w > 0 && h > 0 {
		return w, h, nil
	}

	fields := strings.Fields(strings.ReplaceAll(doc.ViewBox, ",", " "))
	if len(fields) == 4 {
		vw, werr := strconv.ParseFloat(fields[2], 64)
		vh, herr := strconv.ParseFloat(fields[3], 64)
		if werr == nil && herr == nil && vw > 0 && vh > 0 {
			return vw, vh, nil
		}
	}
	return 0, 0, errNoGeometry
}

// parseLength reads a length attribute, tolerating a trailing unit such
// as "mm" or "px".
func parseLength(s string) (float64, error) {
	s = strings.TrimSpace(s)
	end := len(s)
	for end > 0 {
		c := s[end-1]
		if (c >= '0' && c <= '9') || c == '.' {
			break
		}
		end--
	}
	return strconv.ParseFloat(s[:end], 64)
}

// parsePathData interprets path data restricted to moveto, lineto
// (absolute and relative, including H/V shorthands) and closepath.
func parsePathData(d string) ([][]Point, error) {
	s := &pathScanner{data: d}
	var (
		subpaths [][]Point
		current  []Point
		x, y     float64
	)

	flush := func() {
		if len(current) >= 3 {
			subpaths = append(subpaths, current)
		}
		current = nil
	}

	for {
		cmd, ok := s.nextCommand()
		if !ok {
			break
		}
		switch cmd {
		case 'M', 'm':
			flush()
			px, py, err := s.pair()
			if err != nil {
				return nil, err
			}
			if cmd == 'm' {
				x += px
				y += py
			} else {
				x, y = px, py
			}
			current = append(current, Point{x, y})
			// Additional coordinate pairs after a moveto are linetos.
			for s.hasNumber() {
				px, py, err := s.pair()
				if err != nil {
					return nil, err
				}
				if cmd == 'm' {
					x += px
					y += py
				} else {
					x, y = px, py
				}
				current = append(current, Point{x, y})
			}
		case 'L', 'l':
			for first := true; first || s.hasNumber(); first = false {
				px, py, err := s.pair()
				if err != nil {
					return nil, err
				}
				if cmd == 'l' {
					x += px
					y += py
				} else {
					x, y = px, py
				}
				current = append(current, Point{x, y})
			}
		case 'H', 'h':
			for first := true; first || s.hasNumber(); first = false {
				v, err := s.number()
				if err != nil {
					return nil, err
				}
				if cmd == 'h' {
					x += v
				} else {
					x = v
				}
				current = append(current, Point{x, y})
			}
		case 'V', 'v':
			for first := true; first || s.hasNumber(); first = false {
				v, err := s.number()
				if err != nil {
					return nil, err
				}
				if cmd == 'v' {
					y += v
				} else {
					y = v
				}
				current = append(current, Point{x, y})
			}
		case 'Z', 'z':
			if len(current) > 0 {
				x, y = current[0].X, current[0].Y
			}
			flush()
		default:
			return nil, fmt.Errorf("svg: unsupported path command %q", cmd)
		}
	}
	flush()
	return subpaths, nil
}

// pathScanner tokenizes SVG path data into commands and numbers.
type pathScanner struct {
	data string
	pos  int
}

func (s *pathScanner) skipSeparators() {
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ',' {
			s.pos++
			continue
		}
		return
	}
}

func (s *pathScanner) nextCommand() (byte, bool) {
	s.skipSeparators()
	if s.pos >= len(s.data) {
		return 0, false
	}
	c := s.data[s.pos]
	s.pos++
	return c, true
}

func (s *pathScanner) hasNumber() bool {
	s.skipSeparators()
	if s.pos >= len(s.data) {
		return false
	}
	c := s.data[s.pos]
	return (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.'
}

func (s *pathScanner) number() (float64, error) {
	s.skipSeparators()
	start := s.pos
	if s.pos < len(s.data) && (s.data[s.pos] == '-' || s.data[s.pos] == '+') {
		s.pos++
	}
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		if (c >= '0' && c <= '9') || c == '.' {
			s.pos++
			continue
		}
		break
	}
	if s.pos == start {
		return 0, fmt.Errorf("svg: expected number at offset %d", start)
	}
	return strconv.ParseFloat(s.data[start:s.pos], 64)
}

func (s *pathScanner) pair() (float64, float64, error) {
	x, err := s.number()
	if err != nil {
		return 0, 0, err
	}
	y, err := s.number()
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
