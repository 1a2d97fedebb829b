package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/bjhara/temp-hum-logger/internal/modules/telemetry/repository"
	"github.com/bjhara/temp-hum-logger/internal/modules/telemetry/types"
	"github.com/bjhara/temp-hum-logger/internal/mqtt"
	"github.com/bjhara/temp-hum-logger/internal/wire"
)

const storeTimeout = 5 * time.Second

type Service struct {
	repository repository.MeasurementRepository
	logger     *slog.Logger
}

func NewService(repository repository.MeasurementRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repository: repository, logger: logger}
}

// Register makes s the frame handler of subscriber. Call it before the
// subscriber connects so retained or queued frames are not lost.
func (s *Service) Register(subscriber mqtt.FrameSubscriber) {
	subscriber.SetHandler(s.Store)
}

// Store persists one frame. Redelivered frames are not an error.
func (s *Service) Store(clientID string, f wire.Frame) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	inserted, err := s.repository.InsertMeasurement(ctx, types.Measurement{
		ClientID:  clientID,
		Timestamp: int64(f.Timestamp),
		Temp:      int(f.Temp),
		Hum:       int(f.Hum),
	})
	if err != nil {
		return err
	}
	if !inserted {
		s.logger.Debug("duplicate frame ignored", "client_id", clientID, "timestamp", f.Timestamp)
	}
	return nil
}
