package postgres

import (
	"context"

	"fleetops/internal/domain/entity"
	domainerrors "fleetops/internal/domain/errors"
	"fleetops/internal/domain/repository"
	"fleetops/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// FetchAll retrieves every known location, optionally narrowed to a region scope.
func (repo *locationRepository) FetchAll(ctx context.Context, scope repository.LocationScope) ([]*entity.Location, error) {
	query := repo.db.WithContext(ctx).Model(&model.LocationModel{})
	if scope.Country != "" || scope.Region != "" {
		// Untagged locations stay visible in every scope.
		query = query.Where(
			"(country = ? AND region = ?) OR (country = '' AND region = '')",
			scope.Country, scope.Region,
		)
	}

	var locationModels []*model.LocationModel
	if err := query.Order("name ASC").Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to fetch locations")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// FindByID retrieves a location by its unique ID.
func (repo *locationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel
	if err := repo.db.WithContext(ctx).First(&locationM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by ID")
	}

	return toLocationDomain(&locationM), nil
}

// Save persists a new location or updates an existing one.
func (repo *locationRepository) Save(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Save(locationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrLocationSaveFailed.WrapMessage("missing required location information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save location")
	}

	// Update the entity with generated values
	location.ID = locationM.ID
	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// Delete removes a location by its ID. Deleting an absent id is not an error.
func (repo *locationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.LocationModel{}, "id = ?", id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete location")
	}

	return nil
}

func toLocationDomain(m *model.LocationModel) *entity.Location {
	return &entity.Location{
		ID:             m.ID,
		Name:           m.Name,
		Address:        m.Address,
		Latitude:       m.Latitude,
		Longitude:      m.Longitude,
		Category:       entity.LocationCategory(m.Category),
		FullCylinders:  m.FullCylinders,
		EmptyCylinders: m.EmptyCylinders,
		OperatingHours: m.OperatingHours,
		Country:        m.Country,
		Region:         m.Region,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func fromLocationDomain(l *entity.Location) *model.LocationModel {
	return &model.LocationModel{
		ID:             l.ID,
		Name:           l.Name,
		Address:        l.Address,
		Latitude:       l.Latitude,
		Longitude:      l.Longitude,
		Category:       string(l.Category),
		FullCylinders:  l.FullCylinders,
		EmptyCylinders: l.EmptyCylinders,
		OperatingHours: l.OperatingHours,
		Country:        l.Country,
		Region:         l.Region,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}
