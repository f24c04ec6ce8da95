package org

import "log/slog"

// Repository defines the lookup reads.
type Repository interface {
	ActiveDepartments() ([]Department, error)
	ActiveLocations() ([]Location, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) Departments() ([]Department, error) {
	deps, err := s.repo.ActiveDepartments()
	if err != nil {
		s.logger.Error("failed to list departments", "error", err)
		return nil, err
	}
	return deps, nil
}

func (s *Service) Locations() ([]Location, error) {
	locs, err := s.repo.ActiveLocations()
	if err != nil {
		s.logger.Error("failed to list locations", "error", err)
		return nil, err
	}
	return locs, nil
}
