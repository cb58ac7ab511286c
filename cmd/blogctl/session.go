package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"imersao-completa/internal/app"
	"imersao-completa/internal/auth"
	"imersao-completa/pkg/config"
	"imersao-completa/pkg/database"
	"imersao-completa/pkg/logger"

	"github.com/go-extras/cobraflags"
	"gorm.io/gorm"
)

const (
	emailFlag    = "email"
	passwordFlag = "password"
	tokenFlag    = "token"
)

const signInTimeout = 15 * time.Second

func credentialFlags() map[string]cobraflags.Flag {
	return map[string]cobraflags.Flag{
		emailFlag: &cobraflags.StringFlag{
			Name:  emailFlag,
			Value: "",
			Usage: "Account email",
		},
		passwordFlag: &cobraflags.StringFlag{
			Name:  passwordFlag,
			Value: "",
			Usage: "Account password",
		},
		tokenFlag: &cobraflags.StringFlag{
			Name:  tokenFlag,
			Value: "",
			Usage: "Access token to resume instead of signing in",
		},
	}
}

// environment holds what every signed-in command needs.
type environment struct {
	log      *logger.Logger
	services *app.Services
	session  *auth.Session
	close    func()
}

func connect() (*config.Config, *logger.Logger, *gorm.DB, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	return cfg, log, db, closeDB, nil
}

// signIn opens a session from the credential flags and waits until the
// user's roles are known.
func signIn(ctx context.Context, flags map[string]cobraflags.Flag) (*environment, error) {
	email := flags[emailFlag].GetString()
	password := flags[passwordFlag].GetString()
	token := flags[tokenFlag].GetString()
	if token == "" && (email == "" || password == "") {
		return nil, errors.New("either --token or both --email and --password are required")
	}

	cfg, log, db, closeDB, err := connect()
	if err != nil {
		return nil, err
	}
	services := app.NewServices(cfg, log, db, nil, nil, nil)

	provider := auth.NewLocalProvider(services.Auth)
	session := auth.NewSession(provider, services.Auth, log)
	env := &environment{
		log:      log,
		services: services,
		session:  session,
		close: func() {
			session.Close()
			closeDB()
		},
	}

	ctx, cancel := context.WithTimeout(ctx, signInTimeout)
	defer cancel()

	if err := session.Start(ctx); err != nil {
		env.close()
		return nil, err
	}

	if token != "" {
		_, err = provider.Restore(ctx, token)
	} else {
		_, err = session.SignIn(ctx, email, password)
	}
	if err != nil {
		env.close()
		return nil, fmt.Errorf("sign in failed: %w", err)
	}

	if err := session.WaitRoles(ctx); err != nil {
		env.close()
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}
	return env, nil
}
