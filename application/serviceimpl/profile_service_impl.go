package serviceimpl

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/Madhavladani/adeptjs64/domain/apperror"
	"github.com/Madhavladani/adeptjs64/domain/dto"
	"github.com/Madhavladani/adeptjs64/domain/models"
	"github.com/Madhavladani/adeptjs64/domain/repositories"
	"github.com/Madhavladani/adeptjs64/domain/services"
	"github.com/Madhavladani/adeptjs64/pkg/logger"
)

type ProfileServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewProfileService(userRepo repositories.UserRepository) services.ProfileService {
	return &ProfileServiceImpl{userRepo: userRepo}
}

func (s *ProfileServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.WarnContext(ctx, "Profile not found", "user_id", userID)
			return nil, apperror.NotFound("profile", userID)
		}
		return nil, apperror.Store("get profile", err)
	}
	return user, nil
}

func (s *ProfileServiceImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Country != nil {
		user.Country = trimmedOrNil(req.Country)
	}
	if req.City != nil {
		user.City = trimmedOrNil(req.City)
	}
	if req.MobileNumber != nil {
		user.MobileNumber = trimmedOrNil(req.MobileNumber)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to update profile", "user_id", userID, "error", err)
		return nil, apperror.Store("update profile", err)
	}

	logger.InfoContext(ctx, "Profile updated", "user_id", userID)
	return user, nil
}
