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
	"io"
	"log/slog"
	"strings"
	"testing"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/stretchr/testify/require"

	"github.com/wso2-open-operations/common-tools/operations/pdf-qr-stamp/internal/qr"
)

func newTestService() Service {
	return NewService(qr.NewService(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// pageDims reads every page's media box dimensions.
func pageDims(t *testing.T, data []byte) []types.Dim {
	t.Helper()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	ctx, err := pdfapi.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	require.NoError(t, err)

	dims, err := ctx.PageDims()
	require.NoError(t, err)
	return dims
}

func TestStampPreservesPageCountAndGeometry(t *testing.T) {
	t.Parallel()

	input := makeTestPDF(t, 3, 612, 792)
	out, err := newTestService().Stamp(input, "https://example.com/invoice/123")
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	require.True(t, Validate(out))

	inDims := pageDims(t, input)
	outDims := pageDims(t, out)
	require.Len(t, outDims, len(inDims))
	for i := range inDims {
		require.InDelta(t, inDims[i].Width, outDims[i].Width, 0.5, "page %d width", i+1)
		require.InDelta(t, inDims[i].Height, outDims[i].Height, 0.5, "page %d height", i+1)
	}
}

func TestStampSinglePageLetter(t *testing.T) {
	t.Parallel()

	out, err := newTestService().Stamp(makeTestPDF(t, 1, 612, 792), "https://example.com/invoice/123")
	require.NoError(t, err)

	doc, err := Read(out)
	require.NoError(t, err)
	require.Equal(t, 1, doc.PageCount)
	require.InDelta(t, 612, doc.PageWidth, 0.5)
	require.InDelta(t, 792, doc.PageHeight, 0.5)
}

// A 200x200 page takes the 100pt floor, so the overlay covers half the
// page width. Expected behavior on tiny pages.
func TestStampSmallPageUsesFloor(t *testing.T) {
	t.Parallel()

	require.Equal(t, 100.0, qrSizeFor(200, 200))

	out, err := newTestService().Stamp(makeTestPDF(t, 1, 200, 200), "https://example.com/invoice/123")
	require.NoError(t, err)
	require.True(t, Validate(out))
}

func TestStampInvalidInput(t *testing.T) {
	t.Parallel()

	_, err := newTestService().Stamp([]byte("junk"), "payload")
	require.ErrorIs(t, err, ErrInvalidDocument)

	_, err = newTestService().Stamp(nil, "payload")
	require.ErrorIs(t, err, ErrInvalidDocument)
}

func TestStampEmptyContent(t *testing.T) {
	t.Parallel()

	_, err := newTestService().Stamp(makeTestPDF(t, 1, 612, 792), "")
	require.ErrorIs(t, err, qr.ErrContentEmpty)
}

func TestStampContentTooLong(t *testing.T) {
	t.Parallel()

	_, err := newTestService().Stamp(makeTestPDF(t, 1, 612, 792), strings.Repeat("x", 8000))
	require.ErrorIs(t, err, qr.ErrContentTooLong)
}
