package categorizer

import "context"

// AIClient defines the interface for AI-based categorization fallbacks. The
// abstraction keeps the decision-list core testable independently of external
// API calls.
type AIClient interface {
	// Categorize asks the AI service to pick one of the given category names
	// for the description. Implementations must return a name from the list
	// or an error; the caller validates the answer either way.
	Categorize(ctx context.Context, description string, categories []string) (string, error)
}
