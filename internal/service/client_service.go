package service

import (
	"context"
	"fmt"
	"strings"

	"workshop-service/internal/model"
	"workshop-service/internal/repository"
)

type ClientService struct {
	clientRepo *repository.ClientRepository
}

func NewClientService(clientRepo *repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

type ClientInput struct {
	Name  string
	Phone string
	Email string
}

func (s *ClientService) Create(ctx context.Context, input ClientInput) (*model.Client, error) {
	client, err := clientFromInput(input)
	if err != nil {
		return nil, err
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) List(ctx context.Context) ([]model.Client, error) {
	return s.clientRepo.List(ctx)
}

func (s *ClientService) Get(ctx context.Context, id uint) (*model.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrNotFound
	}
	return client, nil
}

// GetWithVehicles loads a client and its vehicles for the detail page.
func (s *ClientService) GetWithVehicles(ctx context.Context, id uint) (*model.Client, error) {
	client, err := s.clientRepo.GetWithVehicles(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrNotFound
	}
	return client, nil
}

func (s *ClientService) Update(ctx context.Context, id uint, input ClientInput) (*model.Client, error) {
	existing, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	updated, err := clientFromInput(input)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID

	if err := s.clientRepo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the client and cascades over its vehicles and their
// service records.
func (s *ClientService) Delete(ctx context.Context, id uint) error {
	existing, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.clientRepo.DeleteCascade(ctx, id)
}

func clientFromInput(input ClientInput) (*model.Client, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}

	client := &model.Client{
		Name:  name,
		Phone: strings.TrimSpace(input.Phone),
	}
	if email := strings.TrimSpace(input.Email); email != "" {
		client.Email = &email
	}
	return client, nil
}
