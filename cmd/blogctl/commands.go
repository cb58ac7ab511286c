package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"imersao-completa/internal/app"
	"imersao-completa/internal/usecase"
	"imersao-completa/pkg/content"
	"imersao-completa/pkg/queue"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
)

func newWhoamiCommand() *cobra.Command {
	flags := credentialFlags()
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Sign in and print the account, profile and roles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := signIn(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer env.close()

			out := cmd.OutOrStdout()
			user := env.session.User()
			fmt.Fprintf(out, "id:     %s\n", user.ID)
			fmt.Fprintf(out, "email:  %s\n", user.Email)
			if profile := env.session.Profile(); profile != nil && profile.FullName != nil {
				fmt.Fprintf(out, "name:   %s\n", *profile.FullName)
			}

			roles := make([]string, 0, len(env.session.Roles()))
			for _, role := range env.session.Roles() {
				roles = append(roles, string(role))
			}
			fmt.Fprintf(out, "roles:  %s\n", strings.Join(roles, ", "))
			fmt.Fprintf(out, "admin:  %t\n", env.session.IsAdmin())
			fmt.Fprintf(out, "editor: %t\n", env.session.IsEditor())
			fmt.Fprintf(out, "token:  %s\n", env.session.Current().AccessToken)
			return nil
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	return cmd
}

const outFlag = "out"

func newExportCommand() *cobra.Command {
	flags := credentialFlags()
	flags[outFlag] = &cobraflags.StringFlag{
		Name:  outFlag,
		Value: "",
		Usage: "Output file (defaults to the dated export name)",
	}

	cmd := &cobra.Command{
		Use:   "export-subscribers",
		Short: "Write every newsletter subscriber to a CSV file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := signIn(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer env.close()

			if !env.session.IsAdmin() {
				return fmt.Errorf("%s is not an admin", env.session.User().Email)
			}

			path := flags[outFlag].GetString()
			if path == "" {
				path = usecase.ExportFilename(time.Now())
			}

			file, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", path, err)
			}
			defer file.Close()

			w := bufio.NewWriter(file)
			if err := env.services.Newsletter.ExportCSV(cmd.Context(), w); err != nil {
				return err
			}
			if err := w.Flush(); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			env.log.Info("Subscribers exported to %s", path)
			return nil
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	return cmd
}

const fileFlag = "file"

func newValidateCommand() *cobra.Command {
	flags := map[string]cobraflags.Flag{
		fileFlag: &cobraflags.StringFlag{
			Name:  fileFlag,
			Value: "",
			Usage: "HTML or markdown file with the post body",
		},
	}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run the SEO checklist on a post body",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := flags[fileFlag].GetString()
			if path == "" {
				return fmt.Errorf("--%s is required", fileFlag)
			}

			body, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			report(cmd, content.Validate(string(body)), content.ContentStats(string(body)))
			return nil
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	return cmd
}

func report(cmd *cobra.Command, result content.Validation, stats content.Stats) {
	out := cmd.OutOrStdout()
	for _, e := range result.Errors {
		fmt.Fprintf(out, "ERRO   %s\n", e)
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(out, "AVISO  %s\n", w)
	}
	fmt.Fprintf(out, "\npalavras: %d  caracteres: %d  parágrafos: %d  títulos: %d  links: %d  imagens: %d  leitura: %d min\n",
		stats.WordCount, stats.CharacterCount, stats.ParagraphCount, stats.HeadingCount,
		stats.LinkCount, stats.ImageCount, stats.ReadingTime)
	if result.Valid {
		fmt.Fprintln(out, "conteúdo válido")
	}
}

func newResetPasswordCommand() *cobra.Command {
	flags := map[string]cobraflags.Flag{
		emailFlag: &cobraflags.StringFlag{
			Name:  emailFlag,
			Value: "",
			Usage: "Account email",
		},
	}

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Queue a password reset link for an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			email := flags[emailFlag].GetString()
			if email == "" {
				return fmt.Errorf("--%s is required", emailFlag)
			}

			cfg, log, db, closeDB, err := connect()
			if err != nil {
				return err
			}
			defer closeDB()

			queueClient, err := queue.NewRabbitMQClient(cfg, log)
			if err != nil {
				return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
			}
			defer queueClient.Close()

			publisher := newConfirmingPublisher(queueClient)
			services := app.NewServices(cfg, log, db, nil, publisher, nil)
			if err := services.Auth.ResetPassword(cmd.Context(), email); err != nil {
				return err
			}

			select {
			case err := <-publisher.done:
				if err != nil {
					return fmt.Errorf("failed to queue reset email: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "reset link queued for %s\n", email)
			case <-time.After(publishWait):
				fmt.Fprintf(cmd.OutOrStdout(), "no reset link queued; %s may not have an account\n", email)
			}
			return nil
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	return cmd
}

const publishWait = 5 * time.Second

// confirmingPublisher reports the outcome of the first publish on done.
type confirmingPublisher struct {
	next usecase.TaskPublisher
	done chan error
}

func newConfirmingPublisher(next usecase.TaskPublisher) *confirmingPublisher {
	return &confirmingPublisher{next: next, done: make(chan error, 1)}
}

func (p *confirmingPublisher) PublishNotificationTask(task map[string]interface{}) error {
	err := p.next.PublishNotificationTask(task)
	select {
	case p.done <- err:
	default:
	}
	return err
}
