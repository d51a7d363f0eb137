package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	Report        Report        `mapstructure:",squash"`
	ObjectStorage ObjectStorage `mapstructure:",squash"`
	Ingestion     Ingestion     `mapstructure:",squash"`
	IngestionSync IngestionSync `mapstructure:",squash"`
	SecretKey     string        `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	SSLMode  string `mapstructure:"database_sslmode"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

// Report descreve o período de apuração e as metas mensais usadas pelo dashboard
type Report struct {
	PeriodStart        string `mapstructure:"report_period_start"`
	PeriodEnd          string `mapstructure:"report_period_end"`
	MonthlyRevenueGoal string `mapstructure:"monthly_revenue_goal"`
	MonthlyOrdersGoal  int    `mapstructure:"monthly_orders_goal"`
	GoalsCSVPath       string `mapstructure:"goals_csv_path"`
	Location           string `mapstructure:"report_location"`
}

type ObjectStorage struct {
	Region   string `mapstructure:"aws_region"`
	Endpoint string `mapstructure:"s3_endpoint"`
	Bucket   string `mapstructure:"s3_bucket"`
	Prefix   string `mapstructure:"s3_prefix"`
}

type Ingestion struct {
	FileSuffix string `mapstructure:"ingestion_file_suffix"`
}

type IngestionSync struct {
	CronSchedule string `mapstructure:"ingestion_sync_cron"`
	Enabled      bool   `mapstructure:"ingestion_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8501")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/vendas")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	// Período e metas de agosto/2025
	viper.SetDefault("REPORT_PERIOD_START", "2025-08-01")
	viper.SetDefault("REPORT_PERIOD_END", "2025-08-31")
	viper.SetDefault("MONTHLY_REVENUE_GOAL", "1442909.46")
	viper.SetDefault("MONTHLY_ORDERS_GOAL", 735)
	viper.SetDefault("GOALS_CSV_PATH", "meta_agosto.csv")
	viper.SetDefault("REPORT_LOCATION", "America/Sao_Paulo")

	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("S3_ENDPOINT", "")
	viper.SetDefault("S3_BUCKET", "excelfilesevolusom")
	viper.SetDefault("S3_PREFIX", "")

	viper.SetDefault("INGESTION_FILE_SUFFIX", ".xlsx")

	viper.SetDefault("INGESTION_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("INGESTION_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s?sslmode=%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
		config.Database.SSLMode,
	)

	return config, nil
}

// ReportingPeriod converte a configuração de relatório no período usado pelo dashboard
func (c *Config) ReportingPeriod() (domain.ReportingPeriod, error) {
	loc, err := time.LoadLocation(c.Report.Location)
	if err != nil {
		return domain.ReportingPeriod{}, fmt.Errorf("fuso horário inválido %q: %w", c.Report.Location, err)
	}

	start, err := time.ParseInLocation(time.DateOnly, c.Report.PeriodStart, loc)
	if err != nil {
		return domain.ReportingPeriod{}, fmt.Errorf("REPORT_PERIOD_START inválido: %w", err)
	}

	end, err := time.ParseInLocation(time.DateOnly, c.Report.PeriodEnd, loc)
	if err != nil {
		return domain.ReportingPeriod{}, fmt.Errorf("REPORT_PERIOD_END inválido: %w", err)
	}

	if end.Before(start) {
		return domain.ReportingPeriod{}, fmt.Errorf("período inválido: %s é anterior a %s", c.Report.PeriodEnd, c.Report.PeriodStart)
	}

	revenueGoal, err := decimal.NewFromString(c.Report.MonthlyRevenueGoal)
	if err != nil {
		return domain.ReportingPeriod{}, fmt.Errorf("MONTHLY_REVENUE_GOAL inválido: %w", err)
	}

	return domain.ReportingPeriod{
		Start:              start,
		End:                end,
		MonthlyRevenueGoal: revenueGoal,
		MonthlyOrdersGoal:  c.Report.MonthlyOrdersGoal,
	}, nil
}

// Location retorna o fuso usado para calcular "hoje"; cai para UTC se inválido
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Report.Location)
	if err != nil {
		logrus.Warnf("Fuso horário inválido: %s, usando UTC", c.Report.Location)
		return time.UTC
	}
	return loc
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
