package services

import (
	"errors"
	"strings"

	"github.com/avrilov/stride/internal/models"
)

var ErrInvalidProfileName = errors.New("profile name must not be empty")

type ProfileRepository interface {
	FindByName(name string) (models.Profile, bool, error)
	Create(profile *models.Profile) error
}

// ProfileService resolves the local owner identity the CLI acts as.
// It stands in for the external auth layer: whatever id it hands out
// is the verified requester id for every engine call.
type ProfileService struct {
	profiles ProfileRepository
}

func NewProfileService(profiles ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// Resolve returns the profile with the given name, creating it on
// first use.
func (service *ProfileService) Resolve(name string) (models.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Profile{}, ErrInvalidProfileName
	}

	profile, found, err := service.profiles.FindByName(name)
	if err != nil {
		return models.Profile{}, storageFailure(err)
	}
	if found {
		return profile, nil
	}

	profile = models.Profile{Name: name}
	if err := service.profiles.Create(&profile); err != nil {
		if errors.Is(err, ErrStorageConflict) {
			// Another process created it first; use theirs.
			existing, found, findErr := service.profiles.FindByName(name)
			if findErr == nil && found {
				return existing, nil
			}
		}
		return models.Profile{}, storageFailure(err)
	}
	return profile, nil
}
