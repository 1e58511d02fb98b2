package postgres

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"dropy/internal/core/domain"
	"dropy/internal/core/port"
)

// maxAttempts bounds how often Execute reruns a unit of work that lost a
// serialization conflict.
const maxAttempts = 3

// LedgerRepository implements port.LedgerRepository using pgxpool for
// PostgreSQL. Account buffers live in the accounts table; the execution log
// lives in executions. 64-bit unsigned values are stored as numeric(20,0)
// and exchanged as text.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository returns a new repository instance.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// Execute runs fn in a serializable transaction holding row locks on every
// named account. Serialization failures are retried; fn is rerun against
// freshly loaded accounts each time.
func (r *LedgerRepository) Execute(ctx context.Context, addresses []domain.Identity, fn func([]*domain.Account) error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = r.execute(ctx, addresses, fn)
		if !isSerializationFailure(err) {
			return err
		}
	}
	return err
}

func (r *LedgerRepository) execute(ctx context.Context, addresses []domain.Identity, fn func([]*domain.Account) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	// no-op once committed; also covers a panicking fn
	defer func() { _ = tx.Rollback(ctx) }()

	keys := uniqueSorted(addresses)
	raw := make([][]byte, len(keys))
	for i, k := range keys {
		raw[i] = bytes.Clone(k[:])
	}
	// lock accounts
	rows, err := tx.Query(ctx, `SELECT address, owner, data FROM accounts WHERE address = ANY($1) ORDER BY address FOR UPDATE`, raw)
	if err != nil {
		return err
	}
	loaded, err := pgx.CollectRows(rows, scanAccount)
	if err != nil {
		return err
	}

	working := make(map[domain.Identity]*domain.Account, len(keys))
	for _, a := range loaded {
		working[a.Address] = a
	}
	original := make(map[domain.Identity]*domain.Account, len(keys))
	for _, k := range keys {
		if _, ok := working[k]; !ok {
			working[k] = &domain.Account{Address: k}
		}
		original[k] = working[k].Clone()
	}
	accounts := make([]*domain.Account, len(addresses))
	for i, k := range addresses {
		accounts[i] = working[k]
	}

	if err = fn(accounts); err != nil {
		return err
	}

	for _, k := range keys {
		a, o := working[k], original[k]
		if a.Owner == o.Owner && bytes.Equal(a.Data, o.Data) {
			continue
		}
		_, err = tx.Exec(ctx, `INSERT INTO accounts (address, owner, data, created_at, updated_at) VALUES ($1,$2,$3,now(),now())
ON CONFLICT (address) DO UPDATE SET owner = EXCLUDED.owner, data = EXCLUDED.data, updated_at = now()`,
			k[:], a.Owner[:], a.Data)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func scanAccount(row pgx.CollectableRow) (*domain.Account, error) {
	var addr, owner []byte
	a := &domain.Account{}
	if err := row.Scan(&addr, &owner, &a.Data); err != nil {
		return nil, err
	}
	if len(addr) != domain.IdentitySize || len(owner) != domain.IdentitySize {
		return nil, fmt.Errorf("account row: address %d bytes, owner %d bytes", len(addr), len(owner))
	}
	copy(a.Address[:], addr)
	copy(a.Owner[:], owner)
	if a.Data == nil {
		a.Data = []byte{}
	}
	return a, nil
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && (pgErr.Code == "40001" || pgErr.Code == "40P01")
}

func uniqueSorted(addresses []domain.Identity) []domain.Identity {
	keys := slices.Clone(addresses)
	slices.SortFunc(keys, domain.Identity.Compare)
	return slices.Compact(keys)
}

// CreateAccount inserts a zeroed account.
func (r *LedgerRepository) CreateAccount(ctx context.Context, address, owner domain.Identity, space int) error {
	tag, err := r.pool.Exec(ctx, `INSERT INTO accounts (address, owner, data, created_at, updated_at) VALUES ($1,$2,$3,now(),now()) ON CONFLICT DO NOTHING`,
		address[:], owner[:], make([]byte, space))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrAccountExists
	}
	return nil
}

// GetAccount returns an account by address.
func (r *LedgerRepository) GetAccount(ctx context.Context, address domain.Identity) (*domain.Account, error) {
	rows, err := r.pool.Query(ctx, `SELECT address, owner, data FROM accounts WHERE address = $1`, address[:])
	if err != nil {
		return nil, err
	}
	a, err := pgx.CollectOneRow(rows, scanAccount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// InsertExecution appends an execution log entry.
func (r *LedgerRepository) InsertExecution(ctx context.Context, exec *domain.Execution) error {
	var code *int32
	if exec.ErrorCode != nil {
		c := int32(*exec.ErrorCode)
		code = &c
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO executions
    (id, campaign_id, operation, signer, amount, nonce, status, error_code, error, created_at)
VALUES ($1,$2::text::numeric,$3,$4,$5::text::numeric,$6::text::numeric,$7,$8,$9,$10)`,
		exec.ID, u64(exec.CampaignID), exec.Operation, exec.Signer[:], u64(exec.Amount), u64(exec.Nonce),
		string(exec.Status), code, exec.Error, exec.CreatedAt)
	return err
}

// ListExecutions returns the latest execution log entries for a campaign.
func (r *LedgerRepository) ListExecutions(ctx context.Context, campaignID uint64, limit int) ([]domain.Execution, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, campaign_id::text, operation, signer, amount::text, nonce::text, status, error_code, error, created_at
FROM executions WHERE campaign_id = $1::text::numeric ORDER BY created_at DESC LIMIT $2`, u64(campaignID), limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Execution, error) {
		var (
			e                      domain.Execution
			campaign, amount, nonc string
			signer                 []byte
			status                 string
			code                   *int32
			createdAt              time.Time
		)
		err := row.Scan(&e.ID, &campaign, &e.Operation, &signer, &amount, &nonc, &status, &code, &e.Error, &createdAt)
		if err != nil {
			return e, err
		}
		if e.CampaignID, err = strconv.ParseUint(campaign, 10, 64); err != nil {
			return e, err
		}
		if e.Amount, err = strconv.ParseUint(amount, 10, 64); err != nil {
			return e, err
		}
		if e.Nonce, err = strconv.ParseUint(nonc, 10, 64); err != nil {
			return e, err
		}
		copy(e.Signer[:], signer)
		e.Status = domain.ExecutionStatus(status)
		if code != nil {
			c := domain.Code(*code)
			e.ErrorCode = &c
		}
		e.CreatedAt = createdAt.UTC()
		return e, nil
	})
}

// GetStats aggregates the execution log in a period.
func (r *LedgerRepository) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := []interface{}{req.From, req.To, domain.TagDepositRewards.String(), domain.TagClaimReward.String()}
	whereCampaign := ""
	if req.CampaignID != nil {
		whereCampaign = "AND campaign_id = $5::text::numeric"
		args = append(args, u64(*req.CampaignID))
	}
	query := fmt.Sprintf(`SELECT
    count(*) FILTER (WHERE status = 'applied'),
    count(*) FILTER (WHERE status = 'rejected'),
    COALESCE(sum(amount) FILTER (WHERE status = 'applied' AND operation = $3), 0)::text,
    COALESCE(sum(amount) FILTER (WHERE status = 'applied' AND operation = $4), 0)::text
FROM executions WHERE created_at >= $1 AND created_at <= $2 %s`, whereCampaign)
	var (
		resp               port.StatsResp
		deposited, claimed string
	)
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&resp.Applied, &resp.Rejected, &deposited, &claimed); err != nil {
		return nil, err
	}
	var ok bool
	if resp.Deposited, ok = new(big.Int).SetString(deposited, 10); !ok {
		return nil, fmt.Errorf("parse deposited sum %q", deposited)
	}
	if resp.Claimed, ok = new(big.Int).SetString(claimed, 10); !ok {
		return nil, fmt.Errorf("parse claimed sum %q", claimed)
	}
	return &resp, nil
}

func u64(v uint64) string {
	return strconv.FormatUint(v, 10)
}
