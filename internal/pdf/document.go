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

// Package pdf implements the document stamping pipeline: parsing and
// validating uploaded PDFs, computing overlay placement, and merging a
// QR overlay onto the first page.
package pdf

import (
	"bytes"
	"errors"
	"fmt"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var (
	// ErrInvalidDocument is returned for input that does not parse as a
	// PDF or whose first page cannot be read.
	ErrInvalidDocument = errors.New("invalid or corrupted PDF file")

	// ErrEmptyDocument is returned for a PDF with zero pages.
	ErrEmptyDocument = errors.New("PDF file is empty")
)

// Document is a parsed, validated PDF held in memory for the duration of
// a single request.
type Document struct {
	data      []byte
	PageCount int

	// First page media box dimensions in points.
	PageWidth  float64
	PageHeight float64
}

// Bytes returns the original serialized document.
func (d *Document) Bytes() []byte { return d.data }

// Read parses raw bytes into a Document using relaxed validation, so
// structurally sloppy but recoverable files are accepted. It fails with
// ErrInvalidDocument or ErrEmptyDocument rather than panicking on any
// malformed input.
func Read(data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no data", ErrInvalidDocument)
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := pdfapi.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if ctx.PageCount == 0 {
		return nil, ErrEmptyDocument
	}

	_, _, inh, err := ctx.PageDict(1, false)
	if err != nil || inh == nil || inh.MediaBox == nil {
		return nil, fmt.Errorf("%w: first page is not readable", ErrInvalidDocument)
	}

	return &Document{
		data:       data,
		PageCount:  ctx.PageCount,
		PageWidth:  inh.MediaBox.Width(),
		PageHeight: inh.MediaBox.Height(),
	}, nil
}

// Validate reports whether data is a readable PDF with at least one
// accessible page. Pure predicate over Read, no side effects.
func Validate(data []byte) bool {
	_, err := Read(data)
	return err == nil
}
