package service

import (
	"issuer/internal/dto"
	"issuer/internal/repository"
)

type MetasService interface {
	ListByType(metaType string) ([]*dto.MetasResponse, error)
}

type metasService struct {
	repo repository.MetasRepository
}

func NewMetasService(repo repository.MetasRepository) MetasService {
	return &metasService{repo: repo}
}

func (s *metasService) ListByType(metaType string) ([]*dto.MetasResponse, error) {
	metas, err := s.repo.ListByType(metaType)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.MetasResponse, len(metas))
	for i, meta := range metas {
		responses[i] = &dto.MetasResponse{
			MetaType:  meta.MetaType,
			MetaValue: meta.MetaValue,
			Note:      meta.Note,
		}
	}
	return responses, nil
}
