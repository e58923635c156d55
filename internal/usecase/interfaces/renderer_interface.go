package interfaces

import (
	"context"

	"web_estimate/internal/domain/estimate"
)

// IDocumentRenderer turns the estimate document model into HTML for the
// display and print outputs, and for the snapshot handed to PDF export.
type IDocumentRenderer interface {
	RenderHTML(doc estimate.Document, mode estimate.OutputMode) ([]byte, error)
}

// IPDFRenderer produces PDF bytes from a fully rendered snapshot.
type IPDFRenderer interface {
	Render(ctx context.Context, snapshot estimate.Snapshot) ([]byte, error)
}
