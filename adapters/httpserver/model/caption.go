package model

import "github.com/SeaCloudHub/captioner/domain/caption"

type CaptionResponse struct {
	OriginalCaption string `json:"original_caption"`
	EnhancedCaption string `json:"enhanced_caption"`
} // @name model.CaptionResponse

func NewCaptionResponse(r *caption.Result) *CaptionResponse {
	return &CaptionResponse{
		OriginalCaption: r.Original,
		EnhancedCaption: r.Enhanced,
	}
}
