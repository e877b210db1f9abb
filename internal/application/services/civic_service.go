package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"purple-insta/internal/application/command"
	"purple-insta/internal/domain/entities"
	"purple-insta/internal/domain/repositories"
	"purple-insta/internal/infrastructure"
	"purple-insta/internal/infrastructure/civic"
	"purple-insta/internal/util"
)

const repCacheTTL = time.Hour

type CivicService struct {
	userRepo    repositories.UserRepository
	civicClient *civic.Client
	cache       *infrastructure.RedisService
	mailService *infrastructure.MailService
}

func NewCivicService(
	userRepo repositories.UserRepository,
	civicClient *civic.Client,
	cache *infrastructure.RedisService,
	mailService *infrastructure.MailService,
) *CivicService {
	return &CivicService{
		userRepo:    userRepo,
		civicClient: civicClient,
		cache:       cache,
		mailService: mailService,
	}
}

// RepresentativesFor looks up the elected officials for the user's zip
// code. A missing zip code is reported before any network call is made.
func (s *CivicService) RepresentativesFor(ctx context.Context, userId uint) ([]entities.Representative, error) {
	user, err := s.userRepo.FindById(userId)
	if err != nil {
		return nil, err
	}
	if user == nil || user.ZipCode == "" {
		return nil, ErrNoZipCode
	}

	cached, err := s.cache.GetRepresentatives(ctx, user.ZipCode)
	if err != nil {
		util.Logger.Warn("representative cache read failed", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	reps, err := s.civicClient.Representatives(ctx, user.ZipCode)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetRepresentatives(ctx, user.ZipCode, reps, repCacheTTL); err != nil {
		util.Logger.Warn("representative cache write failed", zap.Error(err))
	}

	return reps, nil
}

// Contact acknowledges a message to a representative. Delivery only happens
// when the mailer is configured and the form carried the representative's
// address; otherwise the acknowledgement is the whole effect.
func (s *CivicService) Contact(contactCommand *command.ContactRepCommand) (*command.ContactRepCommandResult, error) {
	receipt := entities.NewContactReceipt(contactCommand.RepName, contactCommand.Message)

	if s.mailService.Enabled() && contactCommand.RepEmail != "" {
		err := s.mailService.Send(
			contactCommand.RepName,
			contactCommand.RepEmail,
			"A message from a Purple Insta constituent",
			contactCommand.Message,
		)
		if err != nil {
			return nil, err
		}
	} else {
		util.Logger.Info("contact message acknowledged without delivery",
			zap.String("rep_name", contactCommand.RepName))
	}

	return &command.ContactRepCommandResult{
		Receipt:      receipt,
		Confirmation: receipt.Confirmation(),
	}, nil
}
