package services

import (
	"context"
	"fmt"

	"localserve/internal/models"
	"localserve/internal/repositories/interfaces"
	"localserve/internal/utils"
	"localserve/pkg/logger"
	"localserve/pkg/sms"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationService sends best-effort SMS updates. Failures are logged
// and never fail the operation that triggered them.
type NotificationService interface {
	NotifyBookingAccepted(ctx context.Context, request *models.ServiceRequest)
	NotifyPaymentCaptured(ctx context.Context, payment *models.Payment)
	NotifyPayoutDispatched(ctx context.Context, transfer *models.Transfer)
}

type notificationService struct {
	smsProvider sms.SMSProvider
	userRepo    interfaces.UserRepository
	log         *logger.Logger
}

func NewNotificationService(smsProvider sms.SMSProvider, userRepo interfaces.UserRepository, log *logger.Logger) NotificationService {
	return &notificationService{
		smsProvider: smsProvider,
		userRepo:    userRepo,
		log:         log,
	}
}

func (s *notificationService) NotifyBookingAccepted(ctx context.Context, request *models.ServiceRequest) {
	message := fmt.Sprintf("Your booking for %s has been accepted.", request.TimeSlot.Format("Jan 2 15:04"))
	s.send(ctx, request.CustomerID, message)
}

func (s *notificationService) NotifyPaymentCaptured(ctx context.Context, payment *models.Payment) {
	message := fmt.Sprintf("Payment of %s received for your service. Payout of %s is pending dispatch.",
		utils.FormatAmount(payment.Amount, payment.Currency),
		utils.FormatAmount(payment.ProviderShare(), payment.Currency))
	s.send(ctx, payment.ProviderID, message)
}

func (s *notificationService) NotifyPayoutDispatched(ctx context.Context, transfer *models.Transfer) {
	message := fmt.Sprintf("Payout of %s has been dispatched to your bank account.",
		utils.FormatAmount(transfer.Amount, transfer.Currency))
	s.send(ctx, transfer.ProviderID, message)
}

func (s *notificationService) send(ctx context.Context, userID primitive.ObjectID, message string) {
	if s.smsProvider == nil {
		return
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.log.WithError(err).Warn("notification skipped: user lookup failed")
		return
	}

	_, err = s.smsProvider.SendSMS(ctx, &sms.SMSRequest{
		To:      user.FullPhone(),
		Message: message,
	})
	if err != nil {
		s.log.WithError(err).WithUserID(user.ID).Warn("failed to send SMS notification")
	}
}
