package port

import "context"

// ImageAttachment is a user-supplied image forwarded to an AI provider as an
// inline base64 part.
type ImageAttachment struct {
	Data        []byte
	ContentType string
}

// AIClient abstracts a single generative AI provider behind one call: send a
// text prompt plus zero or more images, get back the best raw text completion.
// An empty string return with a nil error means the model declined to answer.
// Implementations perform no retries; retry policy belongs to the caller.
type AIClient interface {
	Invoke(ctx context.Context, prompt string, images []ImageAttachment) (string, error)
}
