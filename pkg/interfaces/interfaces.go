package interfaces

import (
	"context"
	"net/http"

	"github.com/hsqStephenZhang/emoji-cheat-sheet/internal/chart"
	"github.com/hsqStephenZhang/emoji-cheat-sheet/internal/emoji"
)

// HTTPClientFactory creates HTTP clients for upstream requests.
type HTTPClientFactory interface {
	GetClient() (*http.Client, error)
}

// BodyFetcher retrieves a full upstream response body.
type BodyFetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// ShortcodeSource yields the classified shortcode entries of the GitHub
// emoji endpoint, in document order.
type ShortcodeSource interface {
	Fetch(ctx context.Context) ([]emoji.Entry, error)
}

// ChartSource retrieves the Unicode emoji chart for event walking.
type ChartSource interface {
	Fetch(ctx context.Context) (*chart.Document, error)
}

// Renderer turns the categorized tree into the cheat sheet document.
type Renderer interface {
	Render(title string, tree *emoji.Categorized) string
}
