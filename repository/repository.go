package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"treqsy/models"

	"github.com/lib/pq"
)

// Sentinel errors surfaced to the service layer. Handlers map them to
// stable status codes without leaking storage details.
var (
	ErrNotFound            = errors.New("record not found")
	ErrDuplicateEmail      = errors.New("email already registered")
	ErrInsufficientBalance = errors.New("insufficient coin balance")
	ErrAlreadyProcessed    = errors.New("payout request already processed")
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) PostgresRepository {
	return PostgresRepository{db: db}
}

// Migrate creates the schema. The coins CHECK backs up the in-transaction
// balance precondition at the database level.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'user',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			is_vip BOOLEAN NOT NULL DEFAULT FALSE,
			coins INTEGER NOT NULL DEFAULT 0 CHECK (coins >= 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS coin_transactions (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id),
			type TEXT NOT NULL,
			amount INTEGER NOT NULL,
			details TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS payout_requests (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id),
			amount INTEGER NOT NULL CHECK (amount > 0),
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			approved_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS stream_sessions (
			id TEXT PRIMARY KEY,
			host_id INTEGER NOT NULL REFERENCES users(id),
			title TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			started_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			ended_at TIMESTAMPTZ
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

const userColumns = "id, email, password_hash, role, is_active, is_vip, coins, created_at"

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.IsVIP, &u.Coins, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return u, nil
}

func (r PostgresRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (models.User, error) {
	row := r.db.QueryRowContext(
		ctx,
		"SELECT "+userColumns+" FROM users WHERE email=$1",
		email,
	)
	return scanUser(row)
}

func (r PostgresRepository) GetUserByID(
	ctx context.Context,
	id int,
) (models.User, error) {
	row := r.db.QueryRowContext(
		ctx,
		"SELECT "+userColumns+" FROM users WHERE id=$1",
		id,
	)
	return scanUser(row)
}

func (r PostgresRepository) CreateUser(
	ctx context.Context,
	email, passwordHash string,
	role models.Role,
) (models.User, error) {
	row := r.db.QueryRowContext(
		ctx,
		"INSERT INTO users (email, password_hash, role) VALUES ($1, $2, $3) RETURNING "+userColumns,
		email, passwordHash, string(role),
	)
	u, err := scanUser(row)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

func (r PostgresRepository) ListUsers(
	ctx context.Context,
) ([]models.User, error) {
	rows, err := r.db.QueryContext(
		ctx,
		"SELECT "+userColumns+" FROM users ORDER BY id",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(
			&u.ID,
			&u.Email,
			&u.PasswordHash,
			&u.Role,
			&u.IsActive,
			&u.IsVIP,
			&u.Coins,
			&u.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r PostgresRepository) updateUserField(
	ctx context.Context,
	id int,
	query string,
	value interface{},
) error {
	res, err := r.db.ExecContext(ctx, query, value, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r PostgresRepository) UpdateUserRole(
	ctx context.Context,
	id int,
	role models.Role,
) error {
	return r.updateUserField(ctx, id, "UPDATE users SET role=$1 WHERE id=$2", string(role))
}

func (r PostgresRepository) UpdateUserActive(
	ctx context.Context,
	id int,
	active bool,
) error {
	return r.updateUserField(ctx, id, "UPDATE users SET is_active=$1 WHERE id=$2", active)
}

func (r PostgresRepository) UpdateUserVIP(
	ctx context.Context,
	id int,
	vip bool,
) error {
	return r.updateUserField(ctx, id, "UPDATE users SET is_vip=$1 WHERE id=$2", vip)
}

// lockCoins takes a row lock on the user and returns the current balance.
// Ledger mutations on the same user serialize on this lock.
func lockCoins(ctx context.Context, tx *sql.Tx, userID int) (int, error) {
	var coins int
	err := tx.QueryRowContext(
		ctx,
		"SELECT coins FROM users WHERE id=$1 FOR UPDATE",
		userID,
	).Scan(&coins)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return coins, nil
}

func setCoins(ctx context.Context, tx *sql.Tx, userID, coins int) error {
	_, err := tx.ExecContext(
		ctx,
		"UPDATE users SET coins=$1 WHERE id=$2",
		coins, userID,
	)
	return err
}

func appendTransaction(
	ctx context.Context,
	tx *sql.Tx,
	userID int,
	typ models.TransactionType,
	amount int,
	details string,
) error {
	_, err := tx.ExecContext(
		ctx,
		"INSERT INTO coin_transactions (user_id, type, amount, details, created_at) "+
			"VALUES ($1, $2, $3, $4, $5)",
		userID, string(typ), amount, details, time.Now(),
	)
	return err
}

// PurchaseCoins credits the user and appends the ledger entry in one
// transaction.
func (r PostgresRepository) PurchaseCoins(
	ctx context.Context,
	userID, amount int,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	coins, err := lockCoins(ctx, tx, userID)
	if err != nil {
		return err
	}
	if err := setCoins(ctx, tx, userID, coins+amount); err != nil {
		return err
	}
	if err := appendTransaction(ctx, tx, userID, models.TxPurchase, amount, ""); err != nil {
		return err
	}
	return tx.Commit()
}

// GiftCoins moves coins between two users. Both balance updates and both
// ledger entries commit together or not at all. Rows are locked in id
// order so two concurrent opposite gifts cannot deadlock.
func (r PostgresRepository) GiftCoins(
	ctx context.Context,
	fromID, toID, amount int,
) error {
	if fromID == toID {
		return fmt.Errorf("gift from user %d to itself", fromID)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	first, second := fromID, toID
	if second < first {
		first, second = second, first
	}
	balances := make(map[int]int, 2)
	for _, id := range []int{first, second} {
		coins, err := lockCoins(ctx, tx, id)
		if err != nil {
			return err
		}
		balances[id] = coins
	}

	if balances[fromID] < amount {
		return ErrInsufficientBalance
	}

	if err := setCoins(ctx, tx, fromID, balances[fromID]-amount); err != nil {
		return err
	}
	if err := setCoins(ctx, tx, toID, balances[toID]+amount); err != nil {
		return err
	}
	if err := appendTransaction(
		ctx, tx, fromID, models.TxGiftSent, -amount, fmt.Sprintf("to user %d", toID),
	); err != nil {
		return err
	}
	if err := appendTransaction(
		ctx, tx, toID, models.TxGiftReceived, amount, fmt.Sprintf("from user %d", fromID),
	); err != nil {
		return err
	}
	return tx.Commit()
}

// CreatePayoutRequest records a pending request plus a zero-delta ledger
// entry. The balance is untouched until approval.
func (r PostgresRepository) CreatePayoutRequest(
	ctx context.Context,
	userID, amount int,
) (models.PayoutRequest, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.PayoutRequest{}, err
	}
	defer tx.Rollback()

	coins, err := lockCoins(ctx, tx, userID)
	if err != nil {
		return models.PayoutRequest{}, err
	}
	if coins < amount {
		return models.PayoutRequest{}, ErrInsufficientBalance
	}

	var req models.PayoutRequest
	err = tx.QueryRowContext(
		ctx,
		"INSERT INTO payout_requests (user_id, amount, status) VALUES ($1, $2, $3) "+
			"RETURNING id, user_id, amount, status, created_at",
		userID, amount, string(models.PayoutPending),
	).Scan(&req.ID, &req.UserID, &req.Amount, &req.Status, &req.CreatedAt)
	if err != nil {
		return models.PayoutRequest{}, err
	}
	if err := appendTransaction(
		ctx, tx, userID, models.TxPayoutRequested, 0,
		fmt.Sprintf("requested %d coins, request %d", amount, req.ID),
	); err != nil {
		return models.PayoutRequest{}, err
	}
	return req, tx.Commit()
}

// ApprovePayoutRequest flips pending to approved, deducts the balance, and
// appends the ledger entry in one transaction. The status guard in the
// UPDATE makes a second approval fail instead of double-deducting.
func (r PostgresRepository) ApprovePayoutRequest(
	ctx context.Context,
	requestID int,
) (models.PayoutRequest, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.PayoutRequest{}, err
	}
	defer tx.Rollback()

	var req models.PayoutRequest
	var approvedAt time.Time
	err = tx.QueryRowContext(
		ctx,
		"UPDATE payout_requests SET status=$1, approved_at=NOW() "+
			"WHERE id=$2 AND status=$3 "+
			"RETURNING id, user_id, amount, status, created_at, approved_at",
		string(models.PayoutApproved), requestID, string(models.PayoutPending),
	).Scan(&req.ID, &req.UserID, &req.Amount, &req.Status, &req.CreatedAt, &approvedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PayoutRequest{}, r.classifyMissingPayout(ctx, requestID)
		}
		return models.PayoutRequest{}, err
	}
	req.ApprovedAt = &approvedAt

	coins, err := lockCoins(ctx, tx, req.UserID)
	if err != nil {
		return models.PayoutRequest{}, err
	}
	if coins < req.Amount {
		return models.PayoutRequest{}, ErrInsufficientBalance
	}
	if err := setCoins(ctx, tx, req.UserID, coins-req.Amount); err != nil {
		return models.PayoutRequest{}, err
	}
	if err := appendTransaction(
		ctx, tx, req.UserID, models.TxPayoutApproved, -req.Amount,
		fmt.Sprintf("request %d", req.ID),
	); err != nil {
		return models.PayoutRequest{}, err
	}
	return req, tx.Commit()
}

func (r PostgresRepository) classifyMissingPayout(
	ctx context.Context,
	requestID int,
) error {
	var status models.PayoutStatus
	err := r.db.QueryRowContext(
		ctx,
		"SELECT status FROM payout_requests WHERE id=$1",
		requestID,
	).Scan(&status)
	if err != nil {
		return ErrNotFound
	}
	if status != models.PayoutPending {
		return ErrAlreadyProcessed
	}
	return ErrNotFound
}

func (r PostgresRepository) PendingPayoutRequests(
	ctx context.Context,
) ([]models.PayoutRequest, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, user_id, amount, status, created_at
		 FROM payout_requests
		 WHERE status=$1
		 ORDER BY created_at DESC`,
		string(models.PayoutPending),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []models.PayoutRequest
	for rows.Next() {
		var req models.PayoutRequest
		if err := rows.Scan(
			&req.ID,
			&req.UserID,
			&req.Amount,
			&req.Status,
			&req.CreatedAt,
		); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r PostgresRepository) UserTransactions(
	ctx context.Context,
	userID int,
) ([]models.CoinTransaction, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, user_id, type, amount, details, created_at
		 FROM coin_transactions
		 WHERE user_id=$1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []models.CoinTransaction
	for rows.Next() {
		var t models.CoinTransaction
		if err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.Type,
			&t.Amount,
			&t.Details,
			&t.CreatedAt,
		); err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

func (r PostgresRepository) GetSetting(
	ctx context.Context,
	key string,
) (string, error) {
	var value string
	err := r.db.QueryRowContext(
		ctx,
		"SELECT value FROM settings WHERE key=$1",
		key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (r PostgresRepository) UpsertSetting(
	ctx context.Context,
	key, value string,
) error {
	_, err := r.db.ExecContext(
		ctx,
		"INSERT INTO settings (key, value) VALUES ($1, $2) "+
			"ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value",
		key, value,
	)
	return err
}

// CoinAnalytics aggregates the coin economy: circulating balances from the
// users table, purchase/spend/payout volumes from the ledger.
func (r PostgresRepository) CoinAnalytics(
	ctx context.Context,
) (models.CoinAnalytics, error) {
	var a models.CoinAnalytics
	err := r.db.QueryRowContext(
		ctx,
		"SELECT COALESCE(SUM(coins), 0) FROM users",
	).Scan(&a.TotalCoins)
	if err != nil {
		return models.CoinAnalytics{}, err
	}

	sums := []struct {
		typ  models.TransactionType
		dest *int
	}{
		{models.TxPurchase, &a.CoinsPurchased},
		{models.TxGiftSent, &a.CoinsSpent},
		{models.TxPayoutApproved, &a.CoinsPaidOut},
	}
	for _, s := range sums {
		err := r.db.QueryRowContext(
			ctx,
			"SELECT COALESCE(SUM(ABS(amount)), 0) FROM coin_transactions WHERE type=$1",
			string(s.typ),
		).Scan(s.dest)
		if err != nil {
			return models.CoinAnalytics{}, err
		}
	}
	return a, nil
}

func (r PostgresRepository) CreateStream(
	ctx context.Context,
	s models.StreamSession,
) error {
	_, err := r.db.ExecContext(
		ctx,
		"INSERT INTO stream_sessions (id, host_id, title, is_active, started_at) "+
			"VALUES ($1, $2, $3, $4, $5)",
		s.ID, s.HostID, s.Title, s.IsActive, s.StartedAt,
	)
	return err
}

func (r PostgresRepository) EndStream(
	ctx context.Context,
	id string,
) (models.StreamSession, error) {
	var s models.StreamSession
	var endedAt time.Time
	err := r.db.QueryRowContext(
		ctx,
		"UPDATE stream_sessions SET is_active=FALSE, ended_at=NOW() "+
			"WHERE id=$1 AND is_active "+
			"RETURNING id, host_id, title, is_active, started_at, ended_at",
		id,
	).Scan(&s.ID, &s.HostID, &s.Title, &s.IsActive, &s.StartedAt, &endedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.StreamSession{}, ErrNotFound
		}
		return models.StreamSession{}, err
	}
	s.EndedAt = &endedAt
	return s, nil
}

func (r PostgresRepository) ActiveStreams(
	ctx context.Context,
) ([]models.StreamSession, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, host_id, title, is_active, started_at
		 FROM stream_sessions
		 WHERE is_active
		 ORDER BY started_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var streams []models.StreamSession
	for rows.Next() {
		var s models.StreamSession
		if err := rows.Scan(
			&s.ID,
			&s.HostID,
			&s.Title,
			&s.IsActive,
			&s.StartedAt,
		); err != nil {
			return nil, err
		}
		streams = append(streams, s)
	}
	return streams, rows.Err()
}
