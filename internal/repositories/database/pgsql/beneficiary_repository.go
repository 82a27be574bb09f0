package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swiftremit/money_transfer_app/internal/apperrors"
	"github.com/swiftremit/money_transfer_app/internal/core/domain"
	portsrepo "github.com/swiftremit/money_transfer_app/internal/core/ports/repositories"
	"github.com/swiftremit/money_transfer_app/internal/models"
	"github.com/swiftremit/money_transfer_app/internal/utils/mapping"
)

type PgxBeneficiaryRepository struct {
	BaseRepository
}

func newPgxBeneficiaryRepository(pool *pgxpool.Pool) portsrepo.BeneficiaryRepositoryFacade {
	return &PgxBeneficiaryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BeneficiaryRepositoryFacade = (*PgxBeneficiaryRepository)(nil)

const beneficiaryColumns = `beneficiary_id, owner_user_id, name, account_number, country, currency, created_at, updated_at`

func scanBeneficiary(row pgx.Row) (models.Beneficiary, error) {
	var m models.Beneficiary
	err := row.Scan(
		&m.BeneficiaryID,
		&m.OwnerUserID,
		&m.Name,
		&m.AccountNumber,
		&m.Country,
		&m.Currency,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxBeneficiaryRepository) SaveBeneficiary(ctx context.Context, beneficiary domain.Beneficiary) error {
	m := mapping.ToModelBeneficiary(beneficiary)
	query := `
        INSERT INTO beneficiaries (beneficiary_id, owner_user_id, name, account_number, country, currency, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.BeneficiaryID,
		m.OwnerUserID,
		m.Name,
		m.AccountNumber,
		m.Country,
		m.Currency,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save beneficiary "+m.BeneficiaryID, err)
	}
	return nil
}

func (r *PgxBeneficiaryRepository) FindBeneficiaryByID(ctx context.Context, beneficiaryID string) (*domain.Beneficiary, error) {
	query := `
		SELECT ` + beneficiaryColumns + `
		FROM beneficiaries
		WHERE beneficiary_id = $1;
	`
	m, err := scanBeneficiary(r.Pool.QueryRow(ctx, query, beneficiaryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("beneficiary with ID " + beneficiaryID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find beneficiary by ID "+beneficiaryID, err)
	}

	beneficiary := mapping.ToDomainBeneficiary(m)
	return &beneficiary, nil
}

func (r *PgxBeneficiaryRepository) ListBeneficiariesByOwner(ctx context.Context, ownerUserID string) ([]domain.Beneficiary, error) {
	query := `
        SELECT ` + beneficiaryColumns + `
        FROM beneficiaries
        WHERE owner_user_id = $1
        ORDER BY created_at DESC;
    `
	rows, err := r.Pool.Query(ctx, query, ownerUserID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query beneficiaries", err)
	}
	defer rows.Close()

	ms := []models.Beneficiary{}
	for rows.Next() {
		m, err := scanBeneficiary(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan beneficiary", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "error iterating beneficiaries", rows.Err())
	}

	return mapping.ToDomainBeneficiarySlice(ms), nil
}

func (r *PgxBeneficiaryRepository) UpdateBeneficiary(ctx context.Context, beneficiary domain.Beneficiary) error {
	m := mapping.ToModelBeneficiary(beneficiary)
	query := `
        UPDATE beneficiaries
        SET name = $1, account_number = $2, country = $3, currency = $4, updated_at = $5
        WHERE beneficiary_id = $6;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.AccountNumber,
		m.Country,
		m.Currency,
		m.UpdatedAt,
		m.BeneficiaryID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update beneficiary "+m.BeneficiaryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("beneficiary with ID " + m.BeneficiaryID + " not found")
	}
	return nil
}

func (r *PgxBeneficiaryRepository) DeleteBeneficiary(ctx context.Context, beneficiaryID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM beneficiaries WHERE beneficiary_id = $1;`, beneficiaryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete beneficiary "+beneficiaryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("beneficiary with ID " + beneficiaryID + " not found")
	}
	return nil
}
