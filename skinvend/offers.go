package skinvend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

// OfferStep identifies one of the two exchanges behind CreateOffer.
type OfferStep string

const (
	StepCreateDeposit OfferStep = "create_deposit"
	StepSendOffer     OfferStep = "send_offer"
)

// OfferFlowError reports which step of the composite offer flow failed. It
// wraps the step's normalized error, so errors.Is against the taxonomy
// sentinels still works through it.
type OfferFlowError struct {
	Step OfferStep
	Err  error
}

func (e *OfferFlowError) Error() string {
	return fmt.Sprintf("skinvend: create offer failed at %s: %v", e.Step, e.Err)
}

func (e *OfferFlowError) Unwrap() error {
	return e.Err
}

type CreateOfferRequest struct {
	SteamID   string
	TradeURL  string
	MinAmount decimal.Decimal
	Currency  string
	CustomID  string
	GameID    int

	// Message is placed on the outgoing Steam trade offer.
	Message string
}

// CreateOfferResult captures the progress of the two-step flow. Deposit is
// set once step one succeeds and survives a step-two failure, so callers
// can reconcile; the remote protocol has no rollback.
type CreateOfferResult struct {
	Deposit *Deposit
	Offer   *Offer
}

// CreateOffer is a composite operation: it creates a deposit and then asks
// the marketplace to send the matching trade offer. The two exchanges are
// signed independently, each with its own parameter set and timestamp. On a
// step-two failure the partial result is returned alongside the error.
func (c *Client) CreateOffer(ctx context.Context, req CreateOfferRequest) (*CreateOfferResult, error) {
	deposit, err := c.CreateDeposit(ctx, CreateDepositRequest{
		SteamID:   req.SteamID,
		TradeURL:  req.TradeURL,
		MinAmount: req.MinAmount,
		Currency:  req.Currency,
		CustomID:  req.CustomID,
		GameID:    req.GameID,
	})
	if err != nil {
		return nil, &OfferFlowError{Step: StepCreateDeposit, Err: err}
	}

	result := &CreateOfferResult{Deposit: deposit}

	params := map[string]any{
		"deposit_id": deposit.ID,
		"trade_url":  req.TradeURL,
	}

	if req.Message != "" {
		params["message"] = req.Message
	}

	var offer Offer
	if err := c.do(ctx, http.MethodPost, endpointOfferSend, params, &offer); err != nil {
		return result, &OfferFlowError{Step: StepSendOffer, Err: err}
	}

	result.Offer = &offer

	return result, nil
}
