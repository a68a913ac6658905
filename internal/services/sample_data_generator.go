package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"bancore/internal/dto"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// merchantPool is the fixed set of merchants used for generated charges
var merchantPool = []string{
	"Walmart Supercenter",
	"Whole Foods Market",
	"Starbucks",
	"Chipotle Mexican Grill",
	"Shell",
	"Uber",
	"Amazon.com",
	"Best Buy",
	"IKEA",
	"Netflix",
	"Cinemark Theatres",
	"CVS Pharmacy",
}

// sampleDataGenerator seeds a development database with realistic owners,
// accounts, cards, loans, and settlement activity. It drives the public
// services rather than the repositories so the generated data obeys every
// business rule.
type sampleDataGenerator struct {
	ledger     LedgerServiceInterface
	cards      CardServiceInterface
	loans      LoanServiceInterface
	settlement SettlementServiceInterface
	rng        *rand.Rand
	logger     *slog.Logger
}

func NewSampleDataGenerator(
	ledger LedgerServiceInterface,
	cards CardServiceInterface,
	loans LoanServiceInterface,
	settlement SettlementServiceInterface,
	logger *slog.Logger,
) SampleDataGeneratorInterface {
	return &sampleDataGenerator{
		ledger:     ledger,
		cards:      cards,
		loans:      loans,
		settlement: settlement,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:     logger,
	}
}

// Generate seeds ownerCount owners, each with a principal account and a mix
// of cards, loans, and settlement activity. Business-rule rejections from
// individual operations are expected noise and only logged.
func (g *sampleDataGenerator) Generate(ctx context.Context, ownerCount int) error {
	for i := 0; i < ownerCount; i++ {
		if err := g.generateOwner(ctx, i); err != nil {
			return fmt.Errorf("failed to seed owner %d: %w", i, err)
		}
	}

	g.logger.Info("sample data generated", slog.Int("owners", ownerCount))
	return nil
}

func (g *sampleDataGenerator) generateOwner(ctx context.Context, index int) error {
	owner, account, err := g.ledger.OpenPrincipal(&dto.OpenPrincipalRequest{
		FirstName:      gofakeit.FirstName(),
		LastName:       gofakeit.LastName(),
		Email:          gofakeit.Email(),
		InitialBalance: g.amountBetween(500, 5000),
	})
	if err != nil {
		return err
	}

	for j := 0; j < g.rng.Intn(3)+1; j++ {
		outcome := g.settlement.Deposit(ctx, &dto.DepositRequest{
			AccountNumber: account.Number,
			Amount:        g.amountBetween(50, 1500),
			Description:   gofakeit.ProductName(),
		})
		g.logOutcome("deposit", outcome)
	}

	code := fmt.Sprintf("%04d", g.rng.Intn(10000))
	card, err := g.cards.IssueCard(&dto.IssueCardRequest{
		OwnerID:          owner.ID,
		Limit:            g.amountBetween(1000, 10000),
		VerificationCode: code,
	})
	if err != nil {
		return err
	}

	for j := 0; j < g.rng.Intn(4)+1; j++ {
		outcome := g.settlement.CaptureMerchantCharge(ctx, &dto.MerchantChargeRequest{
			CardNumber:       card.Number,
			Amount:           g.amountBetween(10, 400),
			MerchantName:     merchantPool[g.rng.Intn(len(merchantPool))],
			VerificationCode: code,
		})
		g.logOutcome("merchant charge", outcome)
	}

	outcome := g.settlement.PayCard(ctx, &dto.PayCardRequest{
		CardNumber:    card.Number,
		AccountNumber: account.Number,
		Amount:        g.amountBetween(20, 300),
	})
	g.logOutcome("card payment", outcome)

	// every third owner also carries an installment loan
	if index%3 == 0 {
		loan, err := g.loans.Originate(&dto.OriginateLoanRequest{
			OwnerID:      owner.ID,
			OriginatorID: owner.ID,
			Principal:    g.amountBetween(5000, 50000),
			AnnualRate:   g.amountBetween(6, 18),
			TermMonths:   []int{12, 24, 36}[g.rng.Intn(3)],
		})
		if err != nil {
			g.logger.Debug("sample loan refused", slog.String("error", err.Error()))
			return nil
		}

		outcome := g.settlement.PayLoan(ctx, &dto.PayLoanRequest{
			LoanNumber:    loan.Number,
			AccountNumber: account.Number,
			Amount:        loan.MonthlyPayment,
		})
		g.logOutcome("loan payment", outcome)
	}

	return nil
}

func (g *sampleDataGenerator) amountBetween(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(gofakeit.Price(min, max)).Round(2)
}

func (g *sampleDataGenerator) logOutcome(operation string, outcome *dto.Outcome) {
	if outcome == nil || outcome.Success {
		return
	}
	g.logger.Debug("sample settlement rejected",
		slog.String("operation", operation),
		slog.String("code", string(outcome.Failure.Code)),
	)
}
