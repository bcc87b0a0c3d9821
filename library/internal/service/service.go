package service

import (
	"github.com/IBM/sarama"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/openshelf/library-api/library/internal/repository"
)

// FinePolicy carries the monetary constants the fine engine applies.
type FinePolicy struct {
	RatePerDay     decimal.Decimal
	DamageFraction decimal.Decimal
	ExtendDays     int
}

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	policy   FinePolicy
	producer sarama.SyncProducer
}

// NewService wires the lifecycle service. producer may be nil; lifecycle
// events are then skipped.
func NewService(repo repository.Repository, policy FinePolicy, producer sarama.SyncProducer, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		policy:   policy,
		producer: producer,
	}
}
