package main

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")
}

func createSalesTable(ctx context.Context, tx *sql.Tx) error {
	logrus.Infof("Criando tabela %s...", domain.SalesTable)

	_, err := tx.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS tb_vendas_mes (
			id      BIGINT PRIMARY KEY,
			data    DATE NOT NULL,
			cliente TEXT NOT NULL,
			receita NUMERIC(14, 2) NOT NULL,
			status  TEXT NOT NULL
		)
	`)
	return err
}

func createDateIndex(ctx context.Context, tx *sql.Tx) error {
	logrus.Infof("Criando índice por data na tabela %s...", domain.SalesTable)

	_, err := tx.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS tb_vendas_mes_data_idx ON tb_vendas_mes (data)`)
	return err
}

// widenRevenueColumn ajusta bancos criados com receita em ponto flutuante
func widenRevenueColumn(ctx context.Context, tx *sql.Tx) error {
	var dataType string
	err := tx.QueryRowContext(ctx, `
		SELECT data_type FROM information_schema.columns
		WHERE table_name = $1
		AND column_name = 'receita'
	`, domain.SalesTable).Scan(&dataType)
	if err != nil {
		return err
	}

	if dataType == "numeric" {
		logrus.Info("Coluna receita já está em NUMERIC")
		return nil
	}

	logrus.Warnf("Coluna receita em %s, convertendo para NUMERIC(14, 2)", dataType)
	_, err = tx.ExecContext(ctx, `ALTER TABLE tb_vendas_mes ALTER COLUMN receita TYPE NUMERIC(14, 2) USING receita::NUMERIC(14, 2)`)
	return err
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("Conectando ao banco de dados...")
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		logrus.Fatalf("ERRO ao verificar conexão com o banco: %v", err)
	}
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	startTime := time.Now()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		logrus.Fatalf("ERRO ao iniciar transação: %v", err)
	}

	steps := []func(context.Context, *sql.Tx) error{
		createSalesTable,
		widenRevenueColumn,
		createDateIndex,
	}
	for _, step := range steps {
		if err := step(ctx, tx); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logrus.Errorf("ERRO ao reverter transação: %v", rbErr)
			}
			logrus.Fatalf("ERRO na migração, transação revertida: %v", err)
		}
	}

	if err := tx.Commit(); err != nil {
		logrus.Fatalf("ERRO ao confirmar transação: %v", err)
	}

	logrus.Infof("Migração concluída em %v!", time.Since(startTime))
}
