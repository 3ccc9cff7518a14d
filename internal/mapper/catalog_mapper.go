package mapper

import (
	"musichub-be/internal/dto"
	"musichub-be/internal/entity"
	"musichub-be/internal/model"
)

type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) TagsToEntities(tags []*model.Tag) []*entity.Tag {
	entities := make([]*entity.Tag, len(tags))
	for i, t := range tags {
		entities[i] = &entity.Tag{Id: t.Id, Name: t.Name}
	}
	return entities
}

func (m *CatalogMapper) TimeSignaturesToEntities(items []*model.TimeSignature) []*entity.TimeSignature {
	entities := make([]*entity.TimeSignature, len(items))
	for i, ts := range items {
		entities[i] = &entity.TimeSignature{Id: ts.Id, Name: ts.Name}
	}
	return entities
}

func (m *CatalogMapper) TagsToResponses(tags []*entity.Tag) []dto.TagResponse {
	responses := make([]dto.TagResponse, 0, len(tags))
	for _, t := range tags {
		responses = append(responses, dto.TagResponse{Id: t.Id, Name: t.Name})
	}
	return responses
}

func (m *CatalogMapper) TimeSignaturesToResponses(items []*entity.TimeSignature) []dto.TimeSignatureResponse {
	responses := make([]dto.TimeSignatureResponse, 0, len(items))
	for _, ts := range items {
		responses = append(responses, dto.TimeSignatureResponse{Id: ts.Id, Name: ts.Name})
	}
	return responses
}
