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

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"github.com/wso2-open-operations/common-tools/operations/pdf-qr-stamp/internal/pdf"
	"github.com/wso2-open-operations/common-tools/operations/pdf-qr-stamp/internal/qr"
)

// sniffLen is how many leading bytes the mime detector inspects before
// any PDF parsing happens.
const sniffLen = 2048

type Handler struct {
	svc           pdf.Service
	logger        *slog.Logger
	maxUploadSize int64
}

func NewHandler(svc pdf.Service, logger *slog.Logger, maxUploadSize int64) *Handler {
	return &Handler{
		svc:           svc,
		logger:        logger,
		maxUploadSize: maxUploadSize,
	}
}

// Stamp accepts a multipart upload with a "pdf_file" part and a
// "qr_content" field and responds with the stamped PDF as an attachment.
func (h *Handler) Stamp(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Invalid multipart form data", http.StatusBadRequest)
		return
	}

	content := r.FormValue("qr_content")
	if content == "" {
		http.Error(w, "Missing qr_content parameter", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("pdf_file")
	if err != nil {
		http.Error(w, "Missing pdf_file upload", http.StatusBadRequest)
		return
	}
	defer file.Close()

	h.logger.Info("processing upload", "filename", header.Filename, "size", header.Size)

	// Sniff the leading bytes before anything touches the PDF parser.
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		h.logger.Error("failed to read upload", "error", err)
		http.Error(w, "Failed to read uploaded file", http.StatusInternalServerError)
		return
	}
	head = head[:n]

	if mt := mimetype.Detect(head); !mt.Is("application/pdf") {
		http.Error(w, "Uploaded file is not a PDF", http.StatusBadRequest)
		return
	}

	rest, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("failed to read upload", "error", err)
		http.Error(w, "Failed to read uploaded file", http.StatusInternalServerError)
		return
	}
	pdfBytes := append(head, rest...)

	out, err := h.svc.Stamp(pdfBytes, content)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=modified_%s", safeFilename(header.Filename)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out); err != nil {
		h.logger.Error("failed to write response", "error", err)
		return
	}

	h.logger.Info("upload processed", "filename", header.Filename, "output_size", len(out))
}

// writeError maps pipeline failures to user-facing status codes. Invalid
// input, including a payload too large for the QR symbol, is the
// client's fault; everything else surfaces as a 500 with the error text.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pdf.ErrEmptyDocument):
		http.Error(w, "PDF file is empty", http.StatusBadRequest)
	case errors.Is(err, pdf.ErrInvalidDocument):
		http.Error(w, "Invalid or corrupted PDF file", http.StatusBadRequest)
	case errors.Is(err, qr.ErrContentEmpty):
		http.Error(w, "Missing qr_content parameter", http.StatusBadRequest)
	case errors.Is(err, qr.ErrContentTooLong):
		http.Error(w, "qr_content is too long to encode as a QR code", http.StatusBadRequest)
	default:
		h.logger.Error("failed to stamp PDF", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// safeFilename reduces a client-supplied filename to its base name.
func safeFilename(name string) string {
	base := filepath.Base(name)
	if base == "." || base == string(filepath.Separator) || base == "" {
		return "document.pdf"
	}
	return base
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		h.logger.Error("failed to encode health check response", "error", err)
	}
}
