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
	"fmt"
	"os"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// stampFirstPage paints the overlay page on top of page 1 of the
// original document and returns the reassembled PDF. Pages 2..N are
// carried through untouched, so the output page count always matches
// the input.
//
// pdfcpu resolves a PDF stamp source by path, so the overlay goes
// through a request-scoped temp file that is removed before returning.
func stampFirstPage(original, overlay []byte) ([]byte, error) {
	tmp, err := os.CreateTemp("", "qr-overlay-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(overlay); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	// Overlay and target page share the same dimensions, so centering at
	// absolute scale 1 aligns them exactly.
	wm, err := pdfapi.PDFWatermark(tmp.Name(), "pos:c, scale:1 abs, rot:0, op:1", true, false, types.POINTS)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	var out bytes.Buffer
	if err := pdfapi.AddWatermarks(bytes.NewReader(original), &out, []string{"1"}, wm, conf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return out.Bytes(), nil
}
