// SPDX-License-Identifier: MIT

package triangulate

import "errors"

// ErrEmptyMoralGraph indicates Run was called with zero nodes.
var ErrEmptyMoralGraph = errors.New("triangulate: moral graph has no nodes")
