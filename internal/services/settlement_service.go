package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"bancore/internal/dto"
	apperrors "bancore/internal/errors"
	"bancore/internal/models"
	"bancore/internal/repositories"
	"bancore/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// cashAdvanceRatePercent is the flat interest charged on every cash advance.
// Interest is computed on the advance amount and rounded to cents before the
// credit ceiling is checked.
var cashAdvanceRatePercent = decimal.NewFromFloat(6.25)

// Journal origin labels written by the settlement operations
const (
	originDeposit     = "deposit"
	originWithdrawal  = "withdrawal"
	originTransfer    = "transfer"
	originBeneficiary = "beneficiary payment"
)

// settlementService implements SettlementServiceInterface. Every operation
// follows the same shape: validate the request, load and check entities in
// fail-fast order, run the atomic store operation under a bounded commit
// retry, then emit metrics, audit, and notification strictly after commit.
type settlementService struct {
	accountRepo repositories.AccountRepositoryInterface
	cardRepo    repositories.CardRepositoryInterface
	loanRepo    repositories.LoanRepositoryInterface
	ownerRepo   repositories.OwnerRepositoryInterface
	verifier    VerifierInterface
	audit       AuditRecorderInterface
	notifier    NotifierInterface
	metrics     MetricsRecorderInterface
	validator   *validation.Validator
	maxRetries  int
	logger      *slog.Logger
}

// NewSettlementService creates the settlement orchestrator
func NewSettlementService(
	accountRepo repositories.AccountRepositoryInterface,
	cardRepo repositories.CardRepositoryInterface,
	loanRepo repositories.LoanRepositoryInterface,
	ownerRepo repositories.OwnerRepositoryInterface,
	verifier VerifierInterface,
	audit AuditRecorderInterface,
	notifier NotifierInterface,
	metrics MetricsRecorderInterface,
	maxCommitRetries int,
	logger *slog.Logger,
) SettlementServiceInterface {
	return &settlementService{
		accountRepo: accountRepo,
		cardRepo:    cardRepo,
		loanRepo:    loanRepo,
		ownerRepo:   ownerRepo,
		verifier:    verifier,
		audit:       audit,
		notifier:    notifier,
		metrics:     metrics,
		validator:   validation.GetValidator(),
		maxRetries:  maxCommitRetries,
		logger:      logger,
	}
}

// Deposit credits an external cash deposit into a savings account
func (s *settlementService) Deposit(ctx context.Context, req *dto.DepositRequest) *dto.Outcome {
	start := time.Now()
	if fieldErrors := s.validator.ValidateStruct(req); fieldErrors != nil {
		return s.finish("deposit", start, decimal.Zero, dto.FailValidation(fieldErrors))
	}

	account, failed := s.loadActiveAccount(req.AccountNumber)
	if failed != nil {
		return s.finish("deposit", start, decimal.Zero, failed)
	}
	owner := s.ownerFor(ctx, account.OwnerID)

	origin := originDeposit
	if req.Description != "" {
		origin = req.Description
	}

	var entryID uuid.UUID
	err := s.withCommitRetry(ctx, "deposit", func() error {
		var applyErr error
		entryID, applyErr = s.accountRepo.ApplyEntry(account.ID, req.Amount,
			models.EntryDirectionCredit, origin, ownerLabel(owner, account))
		return applyErr
	})
	if err != nil {
		return s.finish("deposit", start, decimal.Zero, s.outcomeForError(ctx, err))
	}

	s.metrics.IncrementCounter("journal.entry", map[string]string{"direction": models.EntryDirectionCredit})
	s.audit.Record(ctx, &account.OwnerID, models.AuditActionDeposit, "account", account.ID.String(), models.JSONBMap{
		"number":   account.Number,
		"amount":   req.Amount.String(),
		"entry_id": entryID.String(),
	})
	s.notify(ctx, owner, NotifyKindDeposit, account.Number, req.Amount)

	return s.finish("deposit", start, req.Amount, dto.Succeed("Deposit settled", &dto.EntryReceipt{
		EntryID:       entryID,
		AccountNumber: account.Number,
		Amount:        req.Amount,
	}))
}

// Withdraw debits an external cash withdrawal from a savings account
func (s *settlementService) Withdraw(ctx context.Context, req *dto.WithdrawRequest) *dto.Outcome {
	start := time.Now()
	if fieldErrors := s.validator.ValidateStruct(req); fieldErrors != nil {
		return s.finish("withdrawal", start, decimal.Zero, dto.FailValidation(fieldErrors))
	}

	account, failed := s.loadActiveAccount(req.AccountNumber)
	if failed != nil {
		return s.finish("withdrawal", start, decimal.Zero, failed)
	}
	if !account.CanWithdraw(req.Amount) {
		return s.finish("withdrawal", start, decimal.Zero, dto.Fail(apperrors.AccountInsufficientFunds))
	}
	owner := s.ownerFor(ctx, account.OwnerID)

	origin := originWithdrawal
	if req.Description != "" {
		origin = req.Description
	}

	var entryID uuid.UUID
	err := s.withCommitRetry(ctx, "withdrawal", func() error {
		var applyErr error
		entryID, applyErr = s.accountRepo.ApplyEntry(account.ID, req.Amount,
			models.EntryDirectionDebit, origin, ownerLabel(owner, account))
		return applyErr
	})
	if err != nil {
		return s.finish("withdrawal", start, decimal.Zero, s.outcomeForError(ctx, err))
	}

	s.metrics.IncrementCounter("journal.entry", map[string]string{"direction": models.EntryDirectionDebit})
	s.audit.Record(ctx, &account.OwnerID, models.AuditActionWithdrawal, "account", account.ID.String(), models.JSONBMap{
		"number":   account.Number,
		"amount":   req.Amount.String(),
		"entry_id": entryID.String(),
	})
	s.notify(ctx, owner, NotifyKindWithdrawal, account.Number, req.Amount)

	return s.finish("withdrawal", start, req.Amount, dto.Succeed("Withdrawal settled", &dto.EntryReceipt{
		EntryID:       entryID,
		AccountNumber: account.Number,
		Amount:        req.Amount,
	}))
}

// TransferBetweenOwnAccounts moves money between two accounts held by the
// same owner. Both journal legs carry the owner's own name.
func (s *settlementService) TransferBetweenOwnAccounts(ctx context.Context, req *dto.OwnTransferRequest) *dto.Outcome {
	start := time.Now()
	if fieldErrors := s.validator.ValidateStruct(req); fieldErrors != nil {
		return s.finish("own_transfer", start, decimal.Zero, dto.FailValidation(fieldErrors))
	}

	from, failed := s.loadActiveAccount(req.FromNumber)
	if failed != nil {
		return s.finish("own_transfer", start, decimal.Zero, failed)
	}
	to, failed := s.loadActiveAccount(req.ToNumber)
	if failed != nil {
		return s.finish("own_transfer", start, decimal.Zero, failed)
	}
	if from.ID == to.ID {
		return s.finish("own_transfer", start, decimal.Zero, dto.Fail(apperrors.AccountSameAccount))
	}
	if from.OwnerID != to.OwnerID {
		return s.finish("own_transfer", start, decimal.Zero, dto.Fail(apperrors.SettlementNotSameOwner))
	}
	if !from.CanWithdraw(req.Amount) {
		return s.finish("own_transfer", start, decimal.Zero, dto.Fail(apperrors.AccountInsufficientFunds))
	}

	owner := s.ownerFor(ctx, from.OwnerID)
	label := ownerLabel(owner, from)

	receipt, failed := s.executeTransfer(ctx, "own_transfer", from, to, req.Amount, originTransfer, label, label)
	if failed != nil {
		return s.finish("own_transfer", start, decimal.Zero, failed)
	}

	s.audit.Record(ctx, &from.OwnerID, models.AuditActionTransfer, "account", from.ID.String(), models.JSONBMap{
		"from":   from.Number,
		"to":     to.Number,
		"amount": req.Amount.String(),
	})
	s.notify(ctx, owner, NotifyKindTransferSent, to.Number, req.Amount)

	return s.finish("own_transfer", start, req.Amount, dto.Succeed("Transfer settled", receipt))
}

// TransferToThirdParty moves money to an account held by a different owner.
// Each journal leg names the counterparty.
func (s *settlementService) TransferToThirdParty(ctx context.Context, req *dto.ThirdPartyTransferRequest) *dto.Outcome {
	start := time.Now()
	if fieldErrors := s.validator.ValidateStruct(req); fieldErrors != nil {
		return s.finish("third_party_transfer", start, decimal.Zero, dto.FailValidation(fieldErrors))
	}

	from, failed := s.loadActiveAccount(req.FromNumber)
	if failed != nil {
		return s.finish("third_party_transfer", start, decimal.Zero, failed)
	}
	to, failed := s.loadActiveAccount(req.ToNumber)
	if failed != nil {
		return s.finish("third_party_transfer", start, decimal.Zero, failed)
	}
	if from.OwnerID == to.OwnerID {
		return s.finish("third_party_transfer", start, decimal.Zero, dto.Fail(apperrors.SettlementSameOwner))
	}
	if !from.CanWithdraw(req.Amount) {
		return s.finish("third_party_transfer", start, decimal.Zero, dto.Fail(apperrors.AccountInsufficientFunds))
	}

	sender := s.ownerFor(ctx, from.OwnerID)
	recipient := s.ownerFor(ctx, to.OwnerID)

	receipt, failed := s.executeTransfer(ctx, "third_party_transfer", from, to, req.Amount,
		originTransfer, ownerLabel(recipient, to), ownerLabel(sender, from))
	if failed != nil {
		return s.finish("third_party_transfer", start, decimal.Zero, failed)
	}

	s.audit.Record(ctx, &from.OwnerID, models.AuditActionTransfer, "account", from.ID.String(), models.JSONBMap{
		"from":   from.Number,
		"to":     to.Number,
		"amount": req.Amount.String(),
	})
	s.notify(ctx, sender, NotifyKindTransferSent, to.Number, req.Amount)
	s.notify(ctx, recipient, NotifyKindTransferIn, from.Number, req.Amount)

	return s.finish("third_party_transfer", start, req.Amount, dto.Succeed("Transfer settled", receipt))
}

// PayBeneficiary pays a saved beneficiary addressed by account number. The
// caller-supplied display name becomes the journal label on both legs.
func (s *settlementService) PayBeneficiary(ctx context.Context, req *dto.PayBeneficiaryRequest) *dto.Outcome {
	start := time.Now()
	if fieldErrors := s.validator.ValidateStruct(req); fieldErrors != nil {
		return s.finish("beneficiary_payment", start, decimal.Zero, dto.FailValidation(fieldErrors))
	}

	from, failed := s.loadActiveAccount(req.FromNumber)
	if failed != nil {
		return s.finish("beneficiary_payment", start, decimal.Zero, failed)
	}
	to, failed := s.loadActiveAccount(req.BeneficiaryNumber)
	if failed != nil {
		return s.finish("beneficiary_payment", start, decimal.Zero, failed)
	}
	if from.ID == to.ID {
		return s.finish("beneficiary_payment", start, decimal.Zero, dto.Fail(apperrors.AccountSameAccount))
	}
	if !from.CanWithdraw(req.Amount) {
		return s.finish("beneficiary_payment", start, decimal.Zero, dto.Fail(apperrors.AccountInsufficientFunds))
	}

	sender := s.ownerFor(ctx, from.OwnerID)

	receipt, failed := s.executeTransfer(ctx, "beneficiary_payment", from, to, req.Amount,
		originBeneficiary, req.BeneficiaryName, req.BeneficiaryName)
	if failed != nil {
		return s.finish("beneficiary_payment", start, decimal.Zero, failed)
	}

	s.audit.Record(ctx, &from.OwnerID, models.AuditActionTransfer, "account", from.ID.String(), models.JSONBMap{
		"from":        from.Number,
		"to":          to.Number,
		"beneficiary": req.BeneficiaryName,
		"amount":      req.Amount.String(),
	})
	s.notify(ctx, sender, NotifyKindTransferSent, to.Number, req.Amount)

	return s.finish("beneficiary_payment", start, req.Amount, dto.Succeed("Beneficiary payment settled", receipt))
}

// PayCard pays down credit card debt from a savings account. The account is
// debited by min(requested, debt), never by the requested amount.
func (s *settlementService) PayCard(ctx context.Context, req *dto.PayCardRequest) *dto.Outcome {
	start := time.Now()
	if fieldErrors := s.validator.ValidateStruct(req); fieldErrors != nil {
		return s.finish("card_payment", start, decimal.Zero, dto.FailValidation(fieldErrors))
	}

	card, failed := s.loadCard(req.CardNumber)
	if failed != nil {
		return s.finish("card_payment", start, decimal.Zero, failed)
	}
	if !card.Active {
		return s.finish("card_payment", start, decimal.Zero, dto.Fail(apperrors.CardInactive))
	}
	if card.Debt.IsZero() {
		return s.finish("card_payment", start, decimal.Zero, dto.Fail(apperrors.CardNoOutstandingDebt))
	}

	account, failed := s.loadActiveAccount(req.AccountNumber)
	if failed != nil {
		return s.finish("card_payment", start, decimal.Zero, failed)
	}
	if !account.CanWithdraw(decimal.Min(req.Amount, card.Debt)) {
		return s.finish("card_payment", start, decimal.Zero, dto.Fail(apperrors.AccountInsufficientFunds))
	}
	owner := s.ownerFor(ctx, account.OwnerID)

	var applied decimal.Decimal
	var entryID uuid.UUID
	err := s.withCommitRetry(ctx, "card_payment", func() error {
		var execErr error
		applied, entryID, execErr = s.cardRepo.ExecuteCardPayment(card.ID, account.ID, req.Amount)
		return execErr
	})
	if err != nil {
		return s.finish("card_payment", start, decimal.Zero, s.outcomeForError(ctx, err))
	}

	s.metrics.IncrementCounter("journal.entry", map[string]string{"direction": models.EntryDirectionDebit})
	s.audit.Record(ctx, &card.OwnerID, models.AuditActionCardPayment, "credit_card", card.ID.String(), models.JSONBMap{
		"number":    card.MaskedNumber(),
		"account":   account.Number,
		"requested": req.Amount.String(),
		"applied":   applied.String(),
	})
	s.notify(ctx, owner, NotifyKindCardPayment, card.MaskedNumber(), applied)

	return s.finish("card_payment", start, applied, dto.Succeed("Card payment settled", &dto.CardPaymentReceipt{
		EntryID:       entryID,
		CardNumber:    card.MaskedNumber(),
		Requested:     req.Amount,
		AmountApplied: applied,
		RemainingDebt: card.Debt.Sub(applied),
	}))
}

// PayLoan settles loan installments from a savings account. Installments are
// paid whole and in sequence; the account is debited by exactly the amount
// applied, and any remainder stays with the payer.
func (s *settlementService) PayLoan(ctx context.Context, req *dto.PayLoanRequest) *dto.Outcome {
	start := time.Now()
	if fieldErrors := s.validator.ValidateStruct(req); fieldErrors != nil {
		return s.finish("loan_payment", start, decimal.Zero, dto.FailValidation(fieldErrors))
	}

	loan, failed := s.loadLoan(req.LoanNumber)
	if failed != nil {
		return s.finish("loan_payment", start, decimal.Zero, failed)
	}
	if !loan.Active {
		return s.finish("loan_payment", start, decimal.Zero, dto.Fail(apperrors.LoanInactive))
	}

	account, failed := s.loadActiveAccount(req.AccountNumber)
	if failed != nil {
		return s.finish("loan_payment", start, decimal.Zero, failed)
	}
	owner := s.ownerFor(ctx, account.OwnerID)

	var alloc models.PaymentAllocation
	var entryID uuid.UUID
	err := s.withCommitRetry(ctx, "loan_payment", func() error {
		var execErr error
		alloc, entryID, execErr = s.loanRepo.ExecuteLoanPayment(loan.ID, account.ID, req.Amount)
		return execErr
	})
	if err != nil {
		return s.finish("loan_payment", start, decimal.Zero, s.outcomeForError(ctx, err))
	}

	s.metrics.IncrementCounter("journal.entry", map[string]string{"direction": models.EntryDirectionDebit})
	for i := 0; i < alloc.InstallmentsPaid; i++ {
		s.metrics.IncrementCounter("loan.installments_paid", nil)
	}
	s.audit.Record(ctx, &loan.OwnerID, models.AuditActionLoanPayment, "loan", loan.ID.String(), models.JSONBMap{
		"number":            loan.Number,
		"account":           account.Number,
		"installments_paid": alloc.InstallmentsPaid,
		"applied":           alloc.AmountApplied.String(),
		"returned":          alloc.AmountReturned.String(),
		"settled":           alloc.Settled,
	})
	s.notify(ctx, owner, NotifyKindLoanPayment, loan.Number, alloc.AmountApplied)

	return s.finish("loan_payment", start, alloc.AmountApplied, dto.Succeed("Loan payment settled", &dto.LoanPaymentReceipt{
		EntryID:          entryID,
		LoanNumber:       loan.Number,
		InstallmentsPaid: alloc.InstallmentsPaid,
		AmountApplied:    alloc.AmountApplied,
		AmountReturned:   alloc.AmountReturned,
		Settled:          alloc.Settled,
	}))
}

// CashAdvance draws cash against a card's available credit into a savings
// account. The cardholder must present the verification code; the gross of
// amount plus interest must fit under the credit ceiling.
func (s *settlementService) CashAdvance(ctx context.Context, req *dto.CashAdvanceRequest) *dto.Outcome {
	start := time.Now()
	if fieldErrors := s.validator.ValidateStruct(req); fieldErrors != nil {
		return s.finish("cash_advance", start, decimal.Zero, dto.FailValidation(fieldErrors))
	}

	card, failed := s.loadCard(req.CardNumber)
	if failed != nil {
		return s.finish("cash_advance", start, decimal.Zero, failed)
	}
	if !s.verifier.Verify(req.VerificationCode, card.VerificationHash) {
		return s.finish("cash_advance", start, decimal.Zero, dto.Fail(apperrors.CardVerificationFailed))
	}
	if !card.Active {
		return s.finish("cash_advance", start, decimal.Zero, dto.Fail(apperrors.CardInactive))
	}
	if card.IsExpired(time.Now()) {
		return s.finish("cash_advance", start, decimal.Zero, dto.Fail(apperrors.CardExpired))
	}

	interest := req.Amount.Mul(cashAdvanceRatePercent).Div(decimal.NewFromInt(100)).Round(2)
	gross := req.Amount.Add(interest)
	if !card.CanConsume(gross) {
		return s.finish("cash_advance", start, decimal.Zero, dto.Fail(apperrors.CardInsufficientCredit))
	}

	account, failed := s.loadActiveAccount(req.AccountNumber)
	if failed != nil {
		return s.finish("cash_advance", start, decimal.Zero, failed)
	}
	owner := s.ownerFor(ctx, account.OwnerID)

	var entryID uuid.UUID
	err := s.withCommitRetry(ctx, "cash_advance", func() error {
		var execErr error
		entryID, execErr = s.cardRepo.ExecuteCashAdvance(card.ID, account.ID, req.Amount, interest)
		return execErr
	})
	if err != nil {
		return s.finish("cash_advance", start, decimal.Zero, s.outcomeForError(ctx, err))
	}

	s.metrics.IncrementCounter("journal.entry", map[string]string{"direction": models.EntryDirectionCredit})
	s.audit.Record(ctx, &card.OwnerID, models.AuditActionCashAdvance, "credit_card", card.ID.String(), models.JSONBMap{
		"number":   card.MaskedNumber(),
		"account":  account.Number,
		"amount":   req.Amount.String(),
		"interest": interest.String(),
	})
	s.notify(ctx, owner, NotifyKindCashAdvance, card.MaskedNumber(), req.Amount)

	return s.finish("cash_advance", start, req.Amount, dto.Succeed("Cash advance settled", &dto.CashAdvanceReceipt{
		EntryID:    entryID,
		CardNumber: card.MaskedNumber(),
		Amount:     req.Amount,
		Interest:   interest,
		DebtAdded:  gross,
	}))
}

// CaptureMerchantCharge records a merchant consumption against a card. The
// verification code is checked before authorization; a rejected authorization
// is still recorded and returns a failure outcome carrying the charge.
func (s *settlementService) CaptureMerchantCharge(ctx context.Context, req *dto.MerchantChargeRequest) *dto.Outcome {
	start := time.Now()
	if fieldErrors := s.validator.ValidateStruct(req); fieldErrors != nil {
		return s.finish("merchant_charge", start, decimal.Zero, dto.FailValidation(fieldErrors))
	}

	card, failed := s.loadCard(req.CardNumber)
	if failed != nil {
		return s.finish("merchant_charge", start, decimal.Zero, failed)
	}
	if !s.verifier.Verify(req.VerificationCode, card.VerificationHash) {
		return s.finish("merchant_charge", start, decimal.Zero, dto.Fail(apperrors.CardVerificationFailed))
	}

	var charge *models.CardCharge
	err := s.withCommitRetry(ctx, "merchant_charge", func() error {
		var execErr error
		charge, execErr = s.cardRepo.ExecuteAuthorization(card.ID, req.Amount, req.MerchantName, req.MerchantID, time.Now())
		return execErr
	})
	if err != nil && charge == nil {
		return s.finish("merchant_charge", start, decimal.Zero, s.outcomeForError(ctx, err))
	}

	receipt := &dto.ChargeReceipt{
		ChargeID:     charge.ID,
		CardNumber:   card.MaskedNumber(),
		Amount:       req.Amount,
		MerchantName: req.MerchantName,
		Status:       charge.Status,
	}

	s.metrics.IncrementCounter("card.authorization", map[string]string{"status": charge.Status})
	s.audit.Record(ctx, &card.OwnerID, models.AuditActionCardCharge, "card_charge", charge.ID.String(), models.JSONBMap{
		"number":   card.MaskedNumber(),
		"merchant": req.MerchantName,
		"amount":   req.Amount.String(),
		"status":   charge.Status,
	})

	if err != nil {
		outcome := s.rejectionOutcome(err)
		outcome.Payload = receipt
		return s.finish("merchant_charge", start, decimal.Zero, outcome)
	}

	s.notify(ctx, s.ownerFor(ctx, card.OwnerID), NotifyKindCardCharge, card.MaskedNumber(), req.Amount)

	return s.finish("merchant_charge", start, req.Amount, dto.Succeed("Charge captured", receipt))
}

// executeTransfer runs the two-legged atomic transfer under the bounded
// commit retry, emits the journal metrics, and builds the receipt.
func (s *settlementService) executeTransfer(
	ctx context.Context,
	operation string,
	from, to *models.Account,
	amount decimal.Decimal,
	origin, fromBeneficiary, toBeneficiary string,
) (*dto.TransferReceipt, *dto.Outcome) {
	var debitEntryID, creditEntryID uuid.UUID
	err := s.withCommitRetry(ctx, operation, func() error {
		var execErr error
		debitEntryID, creditEntryID, execErr = s.accountRepo.ExecuteAtomicTransfer(
			from.ID, to.ID, amount, origin, fromBeneficiary, toBeneficiary)
		return execErr
	})
	if err != nil {
		return nil, s.outcomeForError(ctx, err)
	}

	s.metrics.IncrementCounter("journal.entry", map[string]string{"direction": models.EntryDirectionDebit})
	s.metrics.IncrementCounter("journal.entry", map[string]string{"direction": models.EntryDirectionCredit})

	return &dto.TransferReceipt{
		DebitEntryID:  debitEntryID,
		CreditEntryID: creditEntryID,
		FromNumber:    from.Number,
		ToNumber:      to.Number,
		Amount:        amount,
	}, nil
}

// withCommitRetry runs fn, retrying only on store commit conflicts, at most
// maxRetries extra attempts. Any other error stops the loop immediately.
func (s *settlementService) withCommitRetry(ctx context.Context, operation string, fn func() error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = fn()
		if err == nil || !repositories.IsCommitConflict(err) || attempt >= s.maxRetries {
			return err
		}
		s.metrics.IncrementCounter("settlement.commit_conflict", map[string]string{"operation": operation})
		s.logger.WarnContext(ctx, "retrying settlement after commit conflict",
			slog.String("operation", operation),
			slog.Int("attempt", attempt+1),
		)
	}
}

// finish records the per-operation metrics and passes the outcome through
func (s *settlementService) finish(operation string, start time.Time, amount decimal.Decimal, outcome *dto.Outcome) *dto.Outcome {
	name := "settlement.failed"
	if outcome.Success {
		name = "settlement.completed"
	}
	s.metrics.IncrementCounter(name, map[string]string{"operation": operation})
	s.metrics.RecordProcessingTime("settlement.duration", time.Since(start))
	if outcome.Success {
		s.metrics.RecordGauge("settlement.amount", amount.InexactFloat64(), nil)
	}
	return outcome
}

// loadActiveAccount resolves an account by number and checks it is active
func (s *settlementService) loadActiveAccount(number string) (*models.Account, *dto.Outcome) {
	account, err := s.accountRepo.GetByNumber(number)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, dto.Fail(apperrors.AccountNotFound)
		}
		return nil, s.systemFailure("account lookup", err)
	}
	if !account.Active {
		return nil, dto.Fail(apperrors.AccountInactive)
	}
	return account, nil
}

// loadCard resolves a card by number. Active and expiry checks stay with the
// callers: a rejected merchant authorization must still be recorded.
func (s *settlementService) loadCard(number string) (*models.CreditCard, *dto.Outcome) {
	card, err := s.cardRepo.GetByNumber(number)
	if err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return nil, dto.Fail(apperrors.CardNotFound)
		}
		return nil, s.systemFailure("card lookup", err)
	}
	return card, nil
}

// loadLoan resolves a loan by number
func (s *settlementService) loadLoan(number string) (*models.Loan, *dto.Outcome) {
	loan, err := s.loanRepo.GetByNumber(number)
	if err != nil {
		if errors.Is(err, repositories.ErrLoanNotFound) {
			return nil, dto.Fail(apperrors.LoanNotFound)
		}
		return nil, s.systemFailure("loan lookup", err)
	}
	return loan, nil
}

// ownerFor loads the owner behind an account or card for journal labels and
// notifications. The lookup is best-effort: on failure the settlement keeps
// going with the account number as the label and no notification.
func (s *settlementService) ownerFor(ctx context.Context, ownerID uuid.UUID) *models.Owner {
	owner, err := s.ownerRepo.GetByID(ownerID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to load owner for settlement",
			slog.String("owner_id", ownerID.String()),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return owner
}

func (s *settlementService) notify(ctx context.Context, owner *models.Owner, kind, reference string, amount decimal.Decimal) {
	if owner == nil {
		return
	}
	s.notifier.Notify(ctx, Notification{
		Recipient: owner.Email,
		Kind:      kind,
		Amount:    amount,
		Reference: reference,
	})
}

func (s *settlementService) systemFailure(action string, err error) *dto.Outcome {
	s.logger.Error("settlement "+action+" failed", slog.String("error", err.Error()))
	return dto.Fail(apperrors.SystemInternalError)
}

// outcomeForError maps sentinel errors surfacing from the atomic store
// operations onto typed failure outcomes
func (s *settlementService) outcomeForError(ctx context.Context, err error) *dto.Outcome {
	switch {
	case errors.Is(err, repositories.ErrAccountNotFound):
		return dto.Fail(apperrors.AccountNotFound)
	case errors.Is(err, repositories.ErrAccountNotActive), errors.Is(err, models.ErrAccountNotActive):
		return dto.Fail(apperrors.AccountInactive)
	case errors.Is(err, repositories.ErrInsufficientFunds), errors.Is(err, models.ErrInsufficientFunds):
		return dto.Fail(apperrors.AccountInsufficientFunds)
	case errors.Is(err, repositories.ErrSameAccount):
		return dto.Fail(apperrors.AccountSameAccount)
	case errors.Is(err, models.ErrCardNotActive):
		return dto.Fail(apperrors.CardInactive)
	case errors.Is(err, models.ErrCardExpired):
		return dto.Fail(apperrors.CardExpired)
	case errors.Is(err, models.ErrExceedsAvailable):
		return dto.Fail(apperrors.CardInsufficientCredit)
	case errors.Is(err, models.ErrNoOutstandingDebt):
		return dto.Fail(apperrors.CardNoOutstandingDebt)
	case errors.Is(err, models.ErrLoanNotActive):
		return dto.Fail(apperrors.LoanInactive)
	case errors.Is(err, models.ErrNoUnpaidInstallments):
		return dto.Fail(apperrors.LoanNoUnpaidInstallment)
	case errors.Is(err, repositories.ErrPaymentBelowInstallment):
		return dto.Fail(apperrors.SettlementBelowNextInstallment)
	case repositories.IsCommitConflict(err):
		return dto.Fail(apperrors.SystemCommitConflict)
	default:
		s.logger.ErrorContext(ctx, "settlement store operation failed", slog.String("error", err.Error()))
		return dto.Fail(apperrors.SystemInternalError)
	}
}

// rejectionOutcome maps an authorization reject reason onto its card failure
// code. The charge row has already committed, so an unrecognized reason is
// still a rejected charge, never a system fault.
func (s *settlementService) rejectionOutcome(reason error) *dto.Outcome {
	switch {
	case errors.Is(reason, models.ErrCardNotActive):
		return dto.Fail(apperrors.CardInactive)
	case errors.Is(reason, models.ErrCardExpired):
		return dto.Fail(apperrors.CardExpired)
	case errors.Is(reason, models.ErrExceedsAvailable):
		return dto.Fail(apperrors.CardInsufficientCredit)
	default:
		return dto.Fail(apperrors.CardChargeRejected)
	}
}

// ownerLabel is the journal beneficiary label for an account: the owner's
// full name when known, otherwise the account number.
func ownerLabel(owner *models.Owner, account *models.Account) string {
	if owner != nil {
		return owner.FullName()
	}
	return account.Number
}
