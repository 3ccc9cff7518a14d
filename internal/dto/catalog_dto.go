package dto

type TagListResponse struct {
	Data []TagResponse `json:"data"`
	Meta PageMeta      `json:"meta"`
}

type TimeSignatureListResponse struct {
	Data []TimeSignatureResponse `json:"data"`
	Meta PageMeta                `json:"meta"`
}
