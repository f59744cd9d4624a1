package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/AgentTarik/financas-api/internal/domain"
)

const stmtTimeout = 3 * time.Second

// PostgresStore implements TagRepo; incomes and expenses are served by
// table-scoped views over the same handle.
type PostgresStore struct {
	DB *sql.DB
}

func NewPostgres(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(15)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(1 * time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return &PostgresStore{DB: db}, nil
}

func (p *PostgresStore) Close() error { return p.DB.Close() }

func (p *PostgresStore) Ping(ctx context.Context) error { return p.DB.PingContext(ctx) }

// Incomes returns the income repository backed by the receitas table.
func (p *PostgresStore) Incomes() TransactionRepo {
	return &pgTxTable{db: p.DB, table: "receitas", joinTable: "receita_tags", fk: "receita_id"}
}

// Expenses returns the expense repository backed by the despesas table.
func (p *PostgresStore) Expenses() TransactionRepo {
	return &pgTxTable{db: p.DB, table: "despesas", joinTable: "despesa_tags", fk: "despesa_id"}
}

// Tags

func (p *PostgresStore) SaveTag(ctx context.Context, tag domain.Tag) error {
	ctx, cancel := context.WithTimeout(ctx, stmtTimeout)
	defer cancel()

	_, err := p.DB.ExecContext(ctx, `
		INSERT INTO tags (id, nome, cor, icone, criada_em)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET nome = EXCLUDED.nome,
		    cor = EXCLUDED.cor,
		    icone = EXCLUDED.icone
	`, tag.ID, tag.Name, tag.Color, tag.Icon, tag.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation (nome)
			return ErrTagAlreadyExists
		}
		return err
	}
	return nil
}

func (p *PostgresStore) FindTagByID(ctx context.Context, id string) (domain.Tag, error) {
	ctx, cancel := context.WithTimeout(ctx, stmtTimeout)
	defer cancel()

	return scanTag(p.DB.QueryRowContext(ctx,
		`SELECT id, nome, cor, icone, criada_em FROM tags WHERE id = $1`, id))
}

func (p *PostgresStore) FindTagByName(ctx context.Context, name string) (domain.Tag, error) {
	ctx, cancel := context.WithTimeout(ctx, stmtTimeout)
	defer cancel()

	return scanTag(p.DB.QueryRowContext(ctx,
		`SELECT id, nome, cor, icone, criada_em FROM tags WHERE lower(nome) = lower($1)`, name))
}

func (p *PostgresStore) ListTags(ctx context.Context) ([]domain.Tag, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := p.DB.QueryContext(ctx,
		`SELECT id, nome, cor, icone, criada_em FROM tags ORDER BY nome`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Tag
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.Icon, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (p *PostgresStore) DeleteTag(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, stmtTimeout)
	defer cancel()

	// join rows vão junto via ON DELETE CASCADE
	res, err := p.DB.ExecContext(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTagNotFound
	}
	return nil
}

func (p *PostgresStore) CountTags(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, stmtTimeout)
	defer cancel()

	var n int
	err := p.DB.QueryRowContext(ctx, `SELECT count(*) FROM tags`).Scan(&n)
	return n, err
}

func (p *PostgresStore) CountTagUses(ctx context.Context, tagID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, stmtTimeout)
	defer cancel()

	var n int
	err := p.DB.QueryRowContext(ctx, `
		SELECT (SELECT count(*) FROM receita_tags WHERE tag_id = $1)
		     + (SELECT count(*) FROM despesa_tags WHERE tag_id = $1)
	`, tagID).Scan(&n)
	return n, err
}

func scanTag(row *sql.Row) (domain.Tag, error) {
	var t domain.Tag
	err := row.Scan(&t.ID, &t.Name, &t.Color, &t.Icon, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Tag{}, ErrTagNotFound
		}
		return domain.Tag{}, err
	}
	return t, nil
}

// Transactions

type pgTxTable struct {
	db        *sql.DB
	table     string
	joinTable string
	fk        string
}

func (t *pgTxTable) SaveTransaction(ctx context.Context, tx domain.Transaction) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	dbtx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer dbtx.Rollback()

	_, err = dbtx.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (id, descricao, valor, data, criada_em, atualizada_em)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET descricao = EXCLUDED.descricao,
		    valor = EXCLUDED.valor,
		    data = EXCLUDED.data,
		    atualizada_em = EXCLUDED.atualizada_em
	`, t.table), tx.ID, tx.Description, tx.Amount.Value(), tx.Date.Time(), tx.CreatedAt, tx.UpdatedAt)
	if err != nil {
		return err
	}

	// substitui as associações de tags dentro da mesma transação
	if _, err := dbtx.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.joinTable, t.fk), tx.ID); err != nil {
		return err
	}
	for _, tag := range tx.Tags {
		if _, err := dbtx.ExecContext(ctx,
			fmt.Sprintf(`INSERT INTO %s (%s, tag_id) VALUES ($1, $2)`, t.joinTable, t.fk),
			tx.ID, tag.ID); err != nil {
			return err
		}
	}
	return dbtx.Commit()
}

func (t *pgTxTable) FindTransactionByID(ctx context.Context, id string) (domain.Transaction, error) {
	txs, err := t.query(ctx, `WHERE t.id = $1`, id)
	if err != nil {
		return domain.Transaction{}, err
	}
	if len(txs) == 0 {
		return domain.Transaction{}, ErrTransactionNotFound
	}
	return txs[0], nil
}

func (t *pgTxTable) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return t.query(ctx, "")
}

func (t *pgTxTable) ListByPeriod(ctx context.Context, p domain.Period) ([]domain.Transaction, error) {
	return t.query(ctx,
		`WHERE extract(month FROM t.data) = $1 AND extract(year FROM t.data) = $2`,
		p.Month, p.Year)
}

func (t *pgTxTable) ListByTag(ctx context.Context, tagID string) ([]domain.Transaction, error) {
	return t.query(ctx, fmt.Sprintf(
		`WHERE t.id IN (SELECT %s FROM %s WHERE tag_id = $1)`, t.fk, t.joinTable), tagID)
}

func (t *pgTxTable) DeleteTransaction(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, stmtTimeout)
	defer cancel()

	res, err := t.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, t.table), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func (t *pgTxTable) CountByPeriod(ctx context.Context, p domain.Period) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, stmtTimeout)
	defer cancel()

	var n int
	err := t.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT count(*) FROM %s
		WHERE extract(month FROM data) = $1 AND extract(year FROM data) = $2
	`, t.table), p.Month, p.Year).Scan(&n)
	return n, err
}

// query loads transactions with their tags in a single LEFT JOIN pass.
func (t *pgTxTable) query(ctx context.Context, where string, args ...any) ([]domain.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	q := fmt.Sprintf(`
		SELECT t.id, t.descricao, t.valor, t.data, t.criada_em, t.atualizada_em,
		       g.id, g.nome, g.cor, g.icone, g.criada_em
		FROM %s t
		LEFT JOIN %s j ON j.%s = t.id
		LEFT JOIN tags g ON g.id = j.tag_id
		%s
		ORDER BY t.data DESC, t.id
	`, t.table, t.joinTable, t.fk, where)

	rows, err := t.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := map[string]*domain.Transaction{}
	var order []string
	for rows.Next() {
		var (
			id, desc               string
			valor                  float64
			data, criada, mudada   time.Time
			tagID, nome, cor, icone sql.NullString
			tagCriada              sql.NullTime
		)
		if err := rows.Scan(&id, &desc, &valor, &data, &criada, &mudada,
			&tagID, &nome, &cor, &icone, &tagCriada); err != nil {
			return nil, err
		}
		tx, ok := byID[id]
		if !ok {
			amount, err := domain.NewMoney(valor)
			if err != nil {
				return nil, fmt.Errorf("linha %s: %w", id, err)
			}
			date, err := domain.NewDate(data)
			if err != nil {
				return nil, fmt.Errorf("linha %s: %w", id, err)
			}
			built, err := domain.NewTransaction(id, desc, amount, date, nil, criada, mudada)
			if err != nil {
				return nil, fmt.Errorf("linha %s: %w", id, err)
			}
			tx = &built
			byID[id] = tx
			order = append(order, id)
		}
		if tagID.Valid {
			tag, err := domain.NewTag(tagID.String, nome.String, cor.String, icone.String, tagCriada.Time)
			if err != nil {
				return nil, fmt.Errorf("tag %s: %w", tagID.String, err)
			}
			tx.Tags = append(tx.Tags, tag)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]domain.Transaction, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out, nil
}
