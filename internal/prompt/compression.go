package prompt

var compressionPrompt = mustPrompt("compression.md")

// CompressionPrompt returns the instructions for summarizing chat history
// into the state snapshot schema. It takes no inputs and always returns the
// same string.
func CompressionPrompt() string {
	return compressionPrompt
}
