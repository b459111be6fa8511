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

package qr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wso2-open-operations/common-tools/operations/pdf-qr-stamp/internal/svg"
)

func TestEncodeSVGStructure(t *testing.T) {
	t.Parallel()

	out, err := NewService().EncodeSVG("hello")
	require.NoError(t, err)

	data := string(out)
	require.True(t, strings.HasPrefix(data, "<?xml"))
	require.Contains(t, data, "<path")

	img, err := svg.Parse(out)
	require.NoError(t, err)
	require.Equal(t, img.Width, img.Height)

	// "hello" fits a version 1 symbol: 21 modules plus a 4-module quiet
	// zone on each side, at 10 units per module.
	require.Equal(t, 290.0, img.Width)
	require.NotEmpty(t, img.Subpaths)

	// Top-left finder pattern corner module sits just inside the quiet zone.
	require.Contains(t, data, "M40 40h10v10h-10z")
}

func TestEncodeSVGModulesAreSquares(t *testing.T) {
	t.Parallel()

	out, err := NewService().EncodeSVG("hello")
	require.NoError(t, err)

	img, err := svg.Parse(out)
	require.NoError(t, err)
	for _, sub := range img.Subpaths {
		require.Len(t, sub, 4)
		require.InDelta(t, float64(moduleSize), sub[1].X-sub[0].X, 1e-9)
		require.InDelta(t, float64(moduleSize), sub[2].Y-sub[1].Y, 1e-9)
	}
}

func TestEncodeSVGGrowsWithPayload(t *testing.T) {
	t.Parallel()

	svc := NewService()

	small, err := svc.EncodeSVG("hi")
	require.NoError(t, err)
	large, err := svc.EncodeSVG(strings.Repeat("https://example.com/invoice/123?", 8))
	require.NoError(t, err)

	smallImg, err := svg.Parse(small)
	require.NoError(t, err)
	largeImg, err := svg.Parse(large)
	require.NoError(t, err)
	require.Greater(t, largeImg.Width, smallImg.Width)
}

func TestEncodeSVGEmptyContent(t *testing.T) {
	t.Parallel()

	_, err := NewService().EncodeSVG("")
	require.ErrorIs(t, err, ErrContentEmpty)
}

func TestEncodeSVGContentTooLong(t *testing.T) {
	t.Parallel()

	// Level L caps out at 2953 bytes.
	_, err := NewService().EncodeSVG(strings.Repeat("a", 5000))
	require.ErrorIs(t, err, ErrContentTooLong)
}
