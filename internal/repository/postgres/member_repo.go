package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"wayfare/internal/domain"
	"wayfare/internal/port"
)

type memberRepo struct {
	db *sqlx.DB
}

// NewMemberRepo creates a new PostgreSQL-backed MemberRepository.
func NewMemberRepo(db *sqlx.DB) port.MemberRepository {
	return &memberRepo{db: db}
}

func (r *memberRepo) Create(ctx context.Context, m *domain.FamilyMember) error {
	m.CreatedAt = time.Now().UTC()

	query := `INSERT INTO family_members (
		id, trip_id, name, name_he, emoji, device_type, email, is_virtual, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.TripID, m.Name, m.NameHe, m.Emoji, m.DeviceType, m.Email, m.IsVirtual, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("memberRepo.Create: %w", err)
	}
	return nil
}

func (r *memberRepo) GetByID(ctx context.Context, tripID, memberID uuid.UUID) (*domain.FamilyMember, error) {
	var m domain.FamilyMember
	err := r.db.GetContext(ctx, &m,
		"SELECT * FROM family_members WHERE id = $1 AND trip_id = $2", memberID, tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("memberRepo.GetByID: %w", err)
	}
	return &m, nil
}

func (r *memberRepo) GetByEmail(ctx context.Context, tripID uuid.UUID, email string) (*domain.FamilyMember, error) {
	var m domain.FamilyMember
	err := r.db.GetContext(ctx, &m,
		"SELECT * FROM family_members WHERE trip_id = $1 AND email = $2", tripID, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("memberRepo.GetByEmail: %w", err)
	}
	return &m, nil
}

func (r *memberRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.FamilyMember, error) {
	var members []domain.FamilyMember
	err := r.db.SelectContext(ctx, &members,
		"SELECT * FROM family_members WHERE trip_id = $1 ORDER BY created_at", tripID)
	if err != nil {
		return nil, fmt.Errorf("memberRepo.ListByTrip: %w", err)
	}
	return members, nil
}

func (r *memberRepo) Update(ctx context.Context, m *domain.FamilyMember) error {
	query := `UPDATE family_members SET
		name = $3, name_he = $4, emoji = $5, device_type = $6, email = $7, is_virtual = $8
	WHERE id = $1 AND trip_id = $2`

	res, err := r.db.ExecContext(ctx, query,
		m.ID, m.TripID, m.Name, m.NameHe, m.Emoji, m.DeviceType, m.Email, m.IsVirtual)
	if err != nil {
		return fmt.Errorf("memberRepo.Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

func (r *memberRepo) Delete(ctx context.Context, tripID, memberID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM family_members WHERE id = $1 AND trip_id = $2", memberID, tripID)
	if err != nil {
		return fmt.Errorf("memberRepo.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}
