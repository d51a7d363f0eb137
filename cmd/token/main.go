// Command token emite um token de acesso à API para um operador.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
)

func main() {
	subject := flag.String("subject", "", "nome do operador")
	roleID := flag.Int("role", authenticating.RoleClient, "perfil: 1=admin, 2=supervisor, 3=cliente")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	token, err := authenticating.NewService(cfg).IssueToken(*subject, *roleID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao emitir token")
		os.Exit(1)
	}

	fmt.Println(token)
}
