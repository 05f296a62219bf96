package models

import (
	"fmt"
	"time"
)

// Role is the closed set of permission tiers. Values outside it are
// rejected at parse time so authorization sites only ever see known roles.
type Role string

const (
	RoleUser        Role = "user"
	RoleHost        Role = "host"
	RoleAdmin       Role = "admin"
	RoleMasterAdmin Role = "master_admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleHost, RoleAdmin, RoleMasterAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

type User struct {
	ID           int
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool
	IsVIP        bool
	Coins        int
	CreatedAt    time.Time
}

// TransactionType tags an entry in the coin ledger.
type TransactionType string

const (
	TxPurchase        TransactionType = "purchase"
	TxGiftSent        TransactionType = "gift_sent"
	TxGiftReceived    TransactionType = "gift_received"
	TxPayoutRequested TransactionType = "payout_requested"
	TxPayoutApproved  TransactionType = "payout_approved"
)

// CoinTransaction is one append-only ledger entry. Amount is the signed
// balance delta: summing amounts per user reproduces the current balance.
// A payout request carries delta 0, nothing is deducted until approval.
type CoinTransaction struct {
	ID        int
	UserID    int
	Type      TransactionType
	Amount    int
	Details   string
	CreatedAt time.Time
}

type PayoutStatus string

const (
	PayoutPending  PayoutStatus = "pending"
	PayoutApproved PayoutStatus = "approved"
)

type PayoutRequest struct {
	ID         int
	UserID     int
	Amount     int
	Status     PayoutStatus
	CreatedAt  time.Time
	ApprovedAt *time.Time
}

// CoinAnalytics summarizes the coin economy for the admin dashboard.
// Every figure is aggregated from the users and ledger tables.
type CoinAnalytics struct {
	TotalCoins     int
	CoinsPurchased int
	CoinsSpent     int
	CoinsPaidOut   int
}

type StreamSession struct {
	ID        string
	HostID    int
	Title     string
	IsActive  bool
	StartedAt time.Time
	EndedAt   *time.Time
}
