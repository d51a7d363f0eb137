// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=sales_record.go -destination=mocks/sales_record.go -package=mocks

type SalesRecordRepository interface {
	GetPeriodTotals(ctx context.Context, start, end time.Time) (*domain.PeriodTotals, error)
	GetDailyRealized(ctx context.Context, start, end time.Time) ([]*domain.DailyRealized, error)
	UpsertAll(ctx context.Context, records []*domain.SaleRecord) (int, error)
}

type salesRecordRepository struct {
	conn postgres.Conn
}

func NewSalesRecordRepository(conn postgres.Conn) SalesRecordRepository {
	return &salesRecordRepository{
		conn: conn,
	}
}

func periodFilter(start, end time.Time) squirrel.Sqlizer {
	return squirrel.Expr("data BETWEEN ? AND ?", start.Format(time.DateOnly), end.Format(time.DateOnly))
}

func (r *salesRecordRepository) GetPeriodTotals(ctx context.Context, start, end time.Time) (*domain.PeriodTotals, error) {
	query, args, err := squirrel.
		Select(
			"COALESCE(SUM(receita), 0) AS receita_total",
			"COUNT(DISTINCT cliente) AS clientes_unicos",
			"COUNT(cliente) AS pedidos",
		).
		From(domain.SalesTable).
		Where(periodFilter(start, end)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	totals := &domain.PeriodTotals{}
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&totals.TotalRevenue,
		&totals.UniqueCustomers,
		&totals.TotalOrders,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDatabaseError("erro ao consultar totais do período", err)
	}

	return totals, nil
}

func (r *salesRecordRepository) GetDailyRealized(ctx context.Context, start, end time.Time) ([]*domain.DailyRealized, error) {
	query, args, err := squirrel.
		Select(
			"data::date AS dia",
			"COALESCE(SUM(receita), 0) AS receita_total",
			"COUNT(cliente) AS pedidos_realizado",
		).
		From(domain.SalesTable).
		Where(periodFilter(start, end)).
		GroupBy("data::date").
		OrderBy("dia ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapDatabaseError("erro ao consultar vendas por dia", err)
	}
	defer rows.Close()

	days := make([]*domain.DailyRealized, 0)
	for rows.Next() {
		day := &domain.DailyRealized{}
		if err := rows.Scan(&day.Day, &day.Revenue, &day.Orders); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas por dia: %w", err)
		}
		day.Label = domain.DayLabel(day.Day)
		days = append(days, day)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return days, nil
}

// UpsertAll grava os registros um a um (insert-or-update por id) dentro de uma transação
func (r *salesRecordRepository) UpsertAll(ctx context.Context, records []*domain.SaleRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	upserted := 0
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, record := range records {
			sqlQuery, args, err := upsertQuery(record).ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
				return wrapDatabaseError(fmt.Sprintf("erro ao gravar venda %d", record.ID), err)
			}
			upserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return upserted, nil
}

func upsertQuery(record *domain.SaleRecord) squirrel.InsertBuilder {
	return squirrel.StatementBuilder.
		Insert(domain.SalesTable).
		Columns("id", "data", "cliente", "receita", "status").
		Values(
			record.ID,
			record.Date,
			record.Customer,
			record.Revenue,
			record.Status,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				data = EXCLUDED.data,
				cliente = EXCLUDED.cliente,
				receita = EXCLUDED.receita,
				status = EXCLUDED.status
		`).
		PlaceholderFormat(squirrel.Dollar)
}

func wrapDatabaseError(message string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("%s: %w (código: %s)", message, pqErr, pqErr.Code)
	}
	return fmt.Errorf("%s: %w", message, err)
}
