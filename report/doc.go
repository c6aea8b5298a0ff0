// SPDX-License-Identifier: MIT

// Package report renders catalog data and engine results as text.
//
// Every view is a sequence of Sections: a heading plus one go-pretty table,
// rendered either as box-drawn ASCII for terminals or as GitHub-flavoured
// Markdown. The Renderer composes sections into the summary, structure
// detail, comparison, trace, transition and route views, and
// MarkdownDocument writes the full export document. YAML writes the same catalog as structured data.
package report
