package shipment

import (
	"context"
	"fmt"
	"math/rand/v2"

	domainShipment "shipment-tracker/internal/domain/shipment"
)

// maxGenerateAttempts bounds the generate-then-check loop. The pre-check
// only reduces collisions; the unique index on tracking_number is what
// actually guarantees uniqueness under concurrent creation.
const maxGenerateAttempts = 10

// NumberGenerator mints external-facing tracking numbers: an optional
// alphabetic prefix followed by nine random digits.
type NumberGenerator struct {
	repo   domainShipment.Repository
	prefix string
}

func NewNumberGenerator(repo domainShipment.Repository, prefix string) *NumberGenerator {
	return &NumberGenerator{repo: repo, prefix: prefix}
}

func (g *NumberGenerator) Generate(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		candidate := fmt.Sprintf("%s%d", g.prefix, 100000000+rand.IntN(900000000))

		exists, err := g.repo.ExistsByTrackingNumber(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check tracking number candidate: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", domainShipment.ErrGenerationExhausted
}
