// create-user crea un usuario del panel o, si ya existe, le resetea la contraseña y lo reactiva.
//
// Uso:
//
//	CREATE_USER_PASSWORD=... go run ./cmd/create-user -username maria -name "María Gómez"
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/mobile-inventory/internal/application/auth"
	"github.com/jhoicas/mobile-inventory/internal/infrastructure/postgres"
	"github.com/jhoicas/mobile-inventory/pkg/config"
	"github.com/jhoicas/mobile-inventory/pkg/logger"
)

func main() {
	username := flag.String("username", "", "nombre de usuario (obligatorio)")
	fullName := flag.String("name", "", "nombre completo")
	password := flag.String("password", "", "contraseña (por defecto CREATE_USER_PASSWORD)")
	flag.Parse()

	if *password == "" {
		*password = os.Getenv("CREATE_USER_PASSWORD")
	}
	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "uso: create-user -username <usuario> [-name <nombre>] con -password o CREATE_USER_PASSWORD")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	uc := auth.NewAuthUseCase(
		postgres.NewUserRepository(pool),
		postgres.NewHistoryLogRepository(pool),
		nil,
		auth.JWTConfig{Secret: cfg.JWT.Secret, ExpMinutes: cfg.JWT.Expiration, Issuer: cfg.JWT.Issuer},
		log,
	)
	u, created, err := uc.EnsureUser(ctx, *username, *password, *fullName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "crear usuario: %v\n", err)
		os.Exit(1)
	}
	if created {
		fmt.Printf("usuario %q creado (id %d)\n", u.Username, u.ID)
		return
	}
	fmt.Printf("usuario %q actualizado (id %d): contraseña reseteada y cuenta activa\n", u.Username, u.ID)
}
