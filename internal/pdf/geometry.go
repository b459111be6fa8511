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

import "math"

const (
	// minQRSize keeps the code scannable on large pages.
	minQRSize = 100.0

	// maxQRFraction caps the overlay at a fifth of the short page edge.
	maxQRFraction = 0.2

	// Target size grows sub-linearly with page area.
	targetScale  = 0.1
	areaExponent = 0.3

	// edgeMargin is the distance from the page edges, backingPad the gap
	// between the QR image and its white backing rectangle.
	edgeMargin = 20.0
	backingPad = 2.0
)

// overlayRect is the placement of the QR image on a page, in points,
// bottom-left origin with y increasing upward.
type overlayRect struct {
	X       float64
	Y       float64
	Size    float64
	Padding float64
}

// qrSizeFor derives the QR side length from the page dimensions.
//
// The floor wins over the ceiling: on pages whose short edge is under
// 500pt the result stays 100 even though that exceeds the nominal 20%
// cap. Intentional, scan-ability beats proportion there.
func qrSizeFor(width, height float64) float64 {
	maxSize := math.Min(width, height) * maxQRFraction
	target := targetScale * math.Pow(width*height, areaExponent)
	return math.Max(minQRSize, math.Min(target, maxSize))
}

// overlayRectFor anchors the QR image in the top-right corner of a page.
func overlayRectFor(width, height float64) overlayRect {
	size := qrSizeFor(width, height)
	return overlayRect{
		X:       width - size - edgeMargin - backingPad,
		Y:       height - size - edgeMargin - backingPad,
		Size:    size,
		Padding: backingPad,
	}
}
