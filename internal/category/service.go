package category

import (
	"log/slog"
)

type RepositoryAPI interface {
	GetAll() ([]*Category, error)
	GetByName(name string) (*Category, error)
	Create(category *Category) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetAllCategories returns the active catalog entries for the entry form.
func (s *Service) GetAllCategories() ([]CategoryResponse, error) {
	categories, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get categories from repository", "error", err)
		return nil, err
	}

	var responses []CategoryResponse
	for _, c := range categories {
		if c.IsActiveCategory() {
			responses = append(responses, c.ToResponse())
		}
	}

	s.logger.Info("retrieved categories", "count", len(responses))
	return responses, nil
}

func (s *Service) GetCategoryByName(name string) (*CategoryResponse, error) {
	c, err := s.repo.GetByName(name)
	if err != nil {
		s.logger.Error("failed to get category", "name", name, "error", err)
		return nil, err
	}
	if c == nil || !c.IsActiveCategory() {
		return nil, nil
	}
	response := c.ToResponse()
	return &response, nil
}

// IsValidCategory reports whether name is an active catalog entry. The
// expense core does not call this; it accepts any category string.
func (s *Service) IsValidCategory(name string) bool {
	c, err := s.GetCategoryByName(name)
	if err != nil {
		s.logger.Warn("error checking category validity", "name", name, "error", err)
		return false
	}
	return c != nil
}
