package ai

// TopicTypes defines the valid categories for document classification.
// Analyzers must only emit topics from this list.
var TopicTypes = []string{
	"business",
	"cooking",
	"education",
	"finance",
	"general",
	"health",
	"legal",
	"personal",
	"real_estate",
	"receipts",
	"science",
	"technology",
	"travel",
}
