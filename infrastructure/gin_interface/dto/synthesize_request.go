package dto

import "verse-audio-api/domain"

type ScriptureRef struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
}

type SynthesizeRequest struct {
	Text          string        `json:"text" binding:"required"`
	Provider      string        `json:"provider"`
	Voice         string        `json:"voice"`
	Speed         *float64      `json:"speed"`
	ScriptureRef  *ScriptureRef `json:"scriptureRef"`
	UseCache      *bool         `json:"useCache"`
	ResponseShape string        `json:"responseShape"`
}

func (r SynthesizeRequest) ToDomain() domain.SynthesisRequest {
	req := domain.SynthesisRequest{
		Text:          r.Text,
		Provider:      domain.OpenAIProvider,
		Voice:         r.Voice,
		Speed:         1.0,
		UseCache:      true,
		ResponseShape: domain.InlineResponseShape,
	}

	if r.Provider != "" {
		req.Provider = domain.Provider(r.Provider)
	}
	if r.Speed != nil {
		req.Speed = *r.Speed
	}
	if r.UseCache != nil {
		req.UseCache = *r.UseCache
	}
	if r.ResponseShape != "" {
		req.ResponseShape = domain.ResponseShape(r.ResponseShape)
	}
	if r.ScriptureRef != nil {
		req.ScriptureRef = &domain.ScriptureRef{
			Book:    r.ScriptureRef.Book,
			Chapter: r.ScriptureRef.Chapter,
			Verse:   r.ScriptureRef.Verse,
		}
	}

	return req
}
