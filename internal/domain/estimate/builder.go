package estimate

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"web_estimate/internal/clock"
	"web_estimate/internal/domain/entities"
)

const (
	DefaultSubject = "Webサイト制作費用"

	numberPrefix = "EST-"
	numberDigits = 10000
)

// RandomSource supplies the 4-digit suffix of estimate numbers.
type RandomSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Builder stamps a price calculation into an EstimateData. Time and the
// random suffix are its only non-deterministic inputs and are both injected.
type Builder struct {
	clock    clock.Clock
	rand     RandomSource
	config   entities.EstimateConfig
	location *time.Location
}

// NewBuilder returns a builder. A nil clock, random source or location falls
// back to the wall clock, math/rand and time.Local.
func NewBuilder(clk clock.Clock, rnd RandomSource, cfg entities.EstimateConfig, loc *time.Location) *Builder {
	if clk == nil {
		clk = clock.RealClock{}
	}
	if rnd == nil {
		rnd = globalRand{}
	}
	if loc == nil {
		loc = time.Local
	}
	return &Builder{clock: clk, rand: rnd, config: cfg, location: loc}
}

func (b *Builder) Build(calc entities.PriceCalculation, isUrgent bool, plan entities.PlanType, subject string) entities.EstimateData {
	issued := b.clock.Now().In(b.location)
	subject = strings.TrimSpace(subject)
	if subject == "" {
		subject = DefaultSubject
	}
	return entities.EstimateData{
		EstimateNumber: b.number(issued),
		IssueDate:      issued,
		ExpiryDate:     issued.AddDate(0, 0, b.config.ValidityDays),
		Subject:        subject,
		Calculation:    calc,
		IsUrgent:       isUrgent,
		SelectedPlan:   plan,
	}
}

func (b *Builder) number(t time.Time) string {
	return fmt.Sprintf("%s%s-%04d", numberPrefix, t.Format("20060102"), b.rand.IntN(numberDigits))
}
