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
	"bytes"
	"errors"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/wso2-open-operations/common-tools/operations/pdf-qr-stamp/internal/svg"
)

// ErrRender is returned when the overlay page cannot be produced or
// merged onto the document.
var ErrRender = errors.New("rendering QR overlay failed")

// buildOverlay produces a standalone single-page PDF of exactly the
// target page size, containing an opaque white backing rectangle and the
// QR vector image filled into its placement square. The page is otherwise
// empty so merging it preserves all original content beneath.
func buildOverlay(width, height float64, rect overlayRect, img *svg.Image) ([]byte, error) {
	if img.Width <= 0 || len(img.Subpaths) == 0 {
		return nil, fmt.Errorf("%w: vector image has no drawable content", ErrRender)
	}

	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	// gofpdf uses a top-left origin with y down; rect is bottom-left
	// based, so flip.
	top := height - rect.Y - rect.Size

	doc.SetFillColor(255, 255, 255)
	doc.Rect(rect.X-rect.Padding, top-rect.Padding,
		rect.Size+2*rect.Padding, rect.Size+2*rect.Padding, "F")

	// SVG y grows downward like gofpdf's, so modules map without flipping.
	scale := rect.Size / img.Width
	doc.SetFillColor(0, 0, 0)
	for _, sub := range img.Subpaths {
		doc.MoveTo(rect.X+sub[0].X*scale, top+sub[0].Y*scale)
		for _, p := range sub[1:] {
			doc.LineTo(rect.X+p.X*scale, top+p.Y*scale)
		}
		doc.ClosePath()
	}
	doc.DrawPath("f")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}
