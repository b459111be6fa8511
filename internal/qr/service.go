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

// Package qr encodes text payloads as QR symbols rendered to SVG.
package qr

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/skip2/go-qrcode"
)

// moduleSize is the side length of a single QR module in SVG user units.
const moduleSize = 10

var (
	// ErrContentEmpty is returned when there is nothing to encode.
	ErrContentEmpty = errors.New("qr content cannot be empty")

	// ErrContentTooLong is returned when the payload exceeds the symbol
	// capacity at the configured recovery level.
	ErrContentTooLong = errors.New("qr content exceeds symbol capacity")
)

// Service defines the business logic for QR codes.
type Service interface {
	EncodeSVG(content string) ([]byte, error)
}

// service implements the Service interface.
type service struct{}

// NewService creates a new instance of the QR service.
func NewService() Service {
	return &service{}
}

// EncodeSVG builds a QR symbol for the given content and renders it as a
// self-contained SVG document.
//
// The symbol uses recovery level Low (~7%), the smallest version that fits
// the payload, and the standard 4-module quiet zone. Dark modules are
// emitted as a single path of axis-aligned squares so downstream rendering
// stays simple.
func (s *service) EncodeSVG(content string) ([]byte, error) {
	if content == "" {
		return nil, ErrContentEmpty
	}

	code, err := qrcode.New(content, qrcode.Low)
	if err != nil {
		// The only data-dependent failure in the encoder is version
		// overflow; everything else would be a programming error.
		return nil, fmt.Errorf("%w: %v", ErrContentTooLong, err)
	}

	// Bitmap includes the quiet zone.
	return renderSVG(code.Bitmap()), nil
}

// renderSVG draws the module matrix as one black path on a transparent
// background, one M/h/v/z subpath per dark module.
func renderSVG(modules [][]bool) []byte {
	side := len(modules) * moduleSize

	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		side, side, side, side)
	buf.WriteString(`<path fill="#000000" d="`)

	for row, cols := range modules {
		for col, dark := range cols {
			if !dark {
				continue
			}
			fmt.Fprintf(&buf, "M%d %dh%dv%dh-%dz",
				col*moduleSize, row*moduleSize, moduleSize, moduleSize, moduleSize)
		}
	}

	buf.WriteString(`"/></svg>` + "\n")
	return buf.Bytes()
}
