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

package pdf

import (
	"fmt"
	"log/slog"

	"github.com/wso2-open-operations/common-tools/operations/pdf-qr-stamp/internal/qr"
	"github.com/wso2-open-operations/common-tools/operations/pdf-qr-stamp/internal/svg"
)

// Service defines the business logic for stamping documents.
type Service interface {
	// Stamp returns a copy of the PDF with a QR code encoding content
	// merged onto the first page.
	Stamp(pdfBytes []byte, content string) ([]byte, error)
}

// service implements the Service interface.
type service struct {
	encoder qr.Service
	logger  *slog.Logger
}

// NewService creates a new instance of the stamping service.
func NewService(encoder qr.Service, logger *slog.Logger) Service {
	return &service{
		encoder: encoder,
		logger:  logger,
	}
}

// Stamp runs the pipeline: validate the document, encode the payload,
// composite the overlay page, and reassemble. Each request works on its
// own buffers; nothing is written until every step has succeeded.
func (s *service) Stamp(pdfBytes []byte, content string) ([]byte, error) {
	doc, err := Read(pdfBytes)
	if err != nil {
		return nil, err
	}

	svgBytes, err := s.encoder.EncodeSVG(content)
	if err != nil {
		return nil, err
	}

	img, err := svg.Parse(svgBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	rect := overlayRectFor(doc.PageWidth, doc.PageHeight)
	overlay, err := buildOverlay(doc.PageWidth, doc.PageHeight, rect, img)
	if err != nil {
		return nil, err
	}

	out, err := stampFirstPage(doc.Bytes(), overlay)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("document stamped",
		"pages", doc.PageCount,
		"page_width", doc.PageWidth,
		"page_height", doc.PageHeight,
		"qr_size", rect.Size,
	)
	return out, nil
}
