package service

import (
	"context"

	"rentalcar-backend/internal/domain"
	"rentalcar-backend/internal/repository"
)

type inventoryService struct {
	carRepo repository.CarRepository
}

func NewInventoryService(carRepo repository.CarRepository) InventoryService {
	return &inventoryService{carRepo: carRepo}
}

func (s *inventoryService) ListCars(ctx context.Context) ([]domain.Car, error) {
	return s.carRepo.List(ctx)
}
