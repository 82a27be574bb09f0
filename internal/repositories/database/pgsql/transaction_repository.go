package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/swiftremit/money_transfer_app/internal/apperrors"
	"github.com/swiftremit/money_transfer_app/internal/core/domain"
	portsrepo "github.com/swiftremit/money_transfer_app/internal/core/ports/repositories"
	"github.com/swiftremit/money_transfer_app/internal/models"
	"github.com/swiftremit/money_transfer_app/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `t.transaction_id, t.owner_user_id, t.beneficiary_id, t.source_amount, t.source_currency, t.target_amount, t.target_currency, t.exchange_rate, t.base_fee, t.exchange_fee, t.total_fee, t.purpose, t.status, t.is_high_risk, t.admin_notes, t.created_at, t.updated_at`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.OwnerUserID,
		&m.BeneficiaryID,
		&m.SourceAmount,
		&m.SourceCurrency,
		&m.TargetAmount,
		&m.TargetCurrency,
		&m.ExchangeRate,
		&m.BaseFee,
		&m.ExchangeFee,
		&m.TotalFee,
		&m.Purpose,
		&m.Status,
		&m.IsHighRisk,
		&m.AdminNotes,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxTransactionRepository) collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	defer rows.Close()

	ms := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "error iterating transactions", rows.Err())
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
        INSERT INTO transactions (
            transaction_id, owner_user_id, beneficiary_id,
            source_amount, source_currency, target_amount, target_currency,
            exchange_rate, base_fee, exchange_fee, total_fee,
            purpose, status, is_high_risk, admin_notes, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.OwnerUserID,
		m.BeneficiaryID,
		m.SourceAmount,
		m.SourceCurrency,
		m.TargetAmount,
		m.TargetCurrency,
		m.ExchangeRate,
		m.BaseFee,
		m.ExchangeFee,
		m.TotalFee,
		m.Purpose,
		m.Status,
		m.IsHighRisk,
		m.AdminNotes,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save transaction "+m.TransactionID, err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		WHERE t.transaction_id = $1;
	`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("transaction with ID " + transactionID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction by ID "+transactionID, err)
	}

	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// ListTransactionsByOwner retrieves a user's transactions, newest first.
// The search term matches the referenced beneficiary's name
// case-insensitively; the Since bound excludes older transactions.
func (r *PgxTransactionRepository) ListTransactionsByOwner(ctx context.Context, ownerUserID string, filter portsrepo.TransactionListFilter) ([]domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions t
        JOIN beneficiaries b ON b.beneficiary_id = t.beneficiary_id
        WHERE t.owner_user_id = $1
    `
	args := []any{ownerUserID}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND b.name ILIKE $%d", len(args))
	}
	if filter.Since != nil {
		args = append(args, *filter.Since)
		query += fmt.Sprintf(" AND t.created_at >= $%d", len(args))
	}
	query += " ORDER BY t.created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	query += ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	return r.collectTransactions(rows)
}

func (r *PgxTransactionRepository) ListAllTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions t
        ORDER BY t.created_at DESC
    `
	args := []any{}
	if limit > 0 {
		args = append(args, limit)
		query += " LIMIT $1"
	}
	query += ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query all transactions", err)
	}
	return r.collectTransactions(rows)
}

func (r *PgxTransactionRepository) ListHighRiskTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions t
        WHERE t.is_high_risk = TRUE
        ORDER BY t.created_at DESC;
    `
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query high-risk transactions", err)
	}
	return r.collectTransactions(rows)
}

func (r *PgxTransactionRepository) CountTransactions(ctx context.Context) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions;`).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count transactions", err)
	}
	return count, nil
}

func (r *PgxTransactionRepository) CountTransactionsForBeneficiary(ctx context.Context, beneficiaryID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE beneficiary_id = $1;`, beneficiaryID).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count transactions for beneficiary "+beneficiaryID, err)
	}
	return count, nil
}

func (r *PgxTransactionRepository) SumCompletedVolume(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `SELECT COALESCE(SUM(source_amount), 0) FROM transactions WHERE status = 'completed';`
	if err := r.Pool.QueryRow(ctx, query).Scan(&sum); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum completed volume", err)
	}
	return sum, nil
}

// UpdateTransactionStatus overwrites status, admin notes and updated_at.
// The pricing columns are never touched after insert.
func (r *PgxTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, adminNotes string, updatedAt time.Time) error {
	query := `
        UPDATE transactions
        SET status = $1, admin_notes = NULLIF($2, ''), updated_at = $3
        WHERE transaction_id = $4;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, string(status), adminNotes, updatedAt, transactionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status for transaction "+transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction with ID " + transactionID + " not found")
	}
	return nil
}
