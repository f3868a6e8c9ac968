package caption

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type Stage string

const (
	StageValidating Stage = "validating"
	StageCaptioning Stage = "captioning"
	StageEnhancing  Stage = "enhancing"
)

// StageError reports which step of the pipeline failed and the kind of failure.
type StageError struct {
	Stage Stage
	Kind  error
	Err   error
}

func (e *StageError) Error() string {
	if errors.Is(e.Err, e.Kind) {
		return e.Err.Error()
	}

	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

func (e *StageError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Service runs the upload through validation, captioning and the optional
// enhancement. A nil enhancer means the caption is returned as both fields.
type Service struct {
	generator Generator
	enhancer  Enhancer
}

func NewService(generator Generator, enhancer Enhancer) *Service {
	return &Service{
		generator: generator,
		enhancer:  enhancer,
	}
}

func (s *Service) Caption(ctx context.Context, blob Blob) (*Result, error) {
	if err := s.validate(blob); err != nil {
		return nil, err
	}

	text, err := s.caption(ctx, blob)
	if err != nil {
		return nil, err
	}

	enhanced, err := s.enhance(ctx, text)
	if err != nil {
		return nil, err
	}

	return &Result{Original: text, Enhanced: enhanced}, nil
}

func (s *Service) validate(blob Blob) error {
	if !IsImage(blob.ContentType) {
		return &StageError{
			Stage: StageValidating,
			Kind:  ErrNotAnImage,
			Err:   fmt.Errorf("got content type %q", blob.ContentType),
		}
	}

	return nil
}

func (s *Service) caption(ctx context.Context, blob Blob) (string, error) {
	img, err := Decode(blob.Data)
	if err != nil {
		return "", &StageError{Stage: StageCaptioning, Kind: ErrDecode, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return "", &StageError{Stage: StageCaptioning, Kind: ErrInference, Err: err}
	}

	text, err := s.generator.Generate(ctx, img)
	if err != nil {
		return "", &StageError{Stage: StageCaptioning, Kind: ErrInference, Err: err}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", &StageError{Stage: StageCaptioning, Kind: ErrInference, Err: ErrEmptyCaption}
	}

	return text, nil
}

func (s *Service) enhance(ctx context.Context, text string) (string, error) {
	if s.enhancer == nil {
		return text, nil
	}

	enhanced, err := s.enhancer.Enhance(ctx, text)
	if err != nil {
		return "", &StageError{Stage: StageEnhancing, Kind: ErrEnhancement, Err: err}
	}

	return enhanced, nil
}
