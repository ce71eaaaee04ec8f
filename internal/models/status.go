package models

import (
	"localserve/internal/utils"
)

// Status transitions for requests, bills, payments and transfers. Every
// mutation of a status field goes through one of these checks first;
// repositories additionally keep the expected from-state in the update
// filter so a lost race shows up as zero modified documents.
//
// A transition into the state the entity already occupies is reported as a
// duplicate operation rather than a generic invalid transition, so retried
// captures and dispatches stay distinguishable in monitoring.

var (
	requestTransitions = map[RequestStatus][]RequestStatus{
		RequestStatusPending:  {RequestStatusAccepted, RequestStatusRejected},
		RequestStatusAccepted: {RequestStatusCompleted},
	}

	billTransitions = map[BillStatus][]BillStatus{
		BillStatusUnpaid: {BillStatusPaid},
	}

	paymentTransitions = map[PaymentStatus][]PaymentStatus{
		PaymentStatusCreated: {PaymentStatusCaptured, PaymentStatusFailed},
	}

	transferTransitions = map[TransferStatus][]TransferStatus{
		TransferStatusCreated: {TransferStatusCaptured},
	}
)

func CanTransitionRequest(from, to RequestStatus) error {
	if from == to {
		return utils.NewDuplicateError("service request is already " + string(to))
	}
	for _, allowed := range requestTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return utils.NewInvalidStateError("service request cannot move from " + string(from) + " to " + string(to))
}

func CanTransitionBill(from, to BillStatus) error {
	if from == to {
		return utils.NewDuplicateError("bill is already " + string(to))
	}
	for _, allowed := range billTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return utils.NewInvalidStateError("bill cannot move from " + string(from) + " to " + string(to))
}

func CanTransitionPayment(from, to PaymentStatus) error {
	if from == to {
		return utils.NewDuplicateError("payment is already " + string(to))
	}
	for _, allowed := range paymentTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return utils.NewInvalidStateError("payment cannot move from " + string(from) + " to " + string(to))
}

func CanTransitionTransfer(from, to TransferStatus) error {
	if from == to {
		return utils.NewDuplicateError("transfer is already " + string(to))
	}
	for _, allowed := range transferTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return utils.NewInvalidStateError("transfer cannot move from " + string(from) + " to " + string(to))
}
