package caption

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"
)

var (
	ErrNotAnImage       = errors.New("only image file is allowed")
	ErrDecode           = errors.New("cannot decode image")
	ErrInference        = errors.New("caption generation failed")
	ErrEmptyCaption     = errors.New("model returned an empty caption")
	ErrEnhancement      = errors.New("caption enhancement failed")
	ErrModelUnavailable = errors.New("captioning model unavailable")
)

// PromptTemplate is the instruction sent to the enhancement model, %s is the caption.
const PromptTemplate = "Based on the caption '%s', generate a detailed retail product description " +
	"including color, material, size, and condition. " +
	"Example: 'A vibrant red cotton T-shirt, size medium, in excellent condition.'"

// Generator produces a short caption from decoded pixels.
type Generator interface {
	Generate(ctx context.Context, img image.Image) (string, error)
}

// Enhancer expands a caption into a product description.
type Enhancer interface {
	Enhance(ctx context.Context, caption string) (string, error)
}

// Blob is an uploaded file as received, before decoding.
type Blob struct {
	Data        []byte
	ContentType string
	FileName    string
}

type Result struct {
	Original string
	Enhanced string
}

func IsImage(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}

func BuildPrompt(caption string) string {
	return fmt.Sprintf(PromptTemplate, caption)
}

var specialTokens = strings.NewReplacer(
	"[CLS]", " ",
	"[SEP]", " ",
	"[PAD]", " ",
	"[UNK]", " ",
	"[MASK]", " ",
	"<s>", " ",
	"</s>", " ",
	"<pad>", " ",
	"<unk>", " ",
)

// StripSpecialTokens removes tokenizer markers and collapses whitespace.
func StripSpecialTokens(text string) string {
	return strings.Join(strings.Fields(specialTokens.Replace(text)), " ")
}
