package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/frontdesk/frontdesk/internal/config"
	"github.com/frontdesk/frontdesk/internal/console"
	"github.com/frontdesk/frontdesk/internal/domain/directory"
	"github.com/frontdesk/frontdesk/internal/domain/identity"
	"github.com/frontdesk/frontdesk/internal/domain/ledger"
	"github.com/frontdesk/frontdesk/internal/domain/scheduling"
	"github.com/frontdesk/frontdesk/internal/domain/staff"
	"github.com/frontdesk/frontdesk/internal/platform/auth"
	"github.com/frontdesk/frontdesk/internal/platform/seed"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "frontdesk",
		Short: "Hospital front desk record keeper",
	}

	rootCmd.AddCommand(consoleCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(doctorsCmd())
	rootCmd.AddCommand(appointmentsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger writes to stderr so log lines never interleave with the
// menus on stdout.
func newLogger(cfg *config.Config) zerolog.Logger {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return logger.Level(level)
}

func buildDeps(cfg *config.Config, logger zerolog.Logger) (console.Deps, error) {
	docRepo, err := directory.NewFileRepository(cfg.CollectionPath(config.DoctorsFile), logger, seed.Doctors())
	if err != nil {
		return console.Deps{}, fmt.Errorf("doctor directory: %w", err)
	}
	staffRepo, err := staff.NewFileRepository(cfg.CollectionPath(config.StaffFile), logger, seed.StaffMembers())
	if err != nil {
		return console.Deps{}, fmt.Errorf("staff roster: %w", err)
	}
	creds, err := auth.NewCredentialStore(cfg.CollectionPath(config.UsersFile), logger)
	if err != nil {
		return console.Deps{}, fmt.Errorf("credential store: %w", err)
	}

	doctors := directory.NewService(docRepo, logger)
	staffSvc := staff.NewService(staffRepo, logger)
	patients := identity.NewService(identity.NewFileRepository(cfg.CollectionPath(config.PatientsFile), logger), creds, logger)
	appointments := ledger.NewService(ledger.NewFileRepository(cfg.CollectionPath(config.AppointmentsFile), logger), logger)
	scheduler := scheduling.NewService(doctors, appointments, logger)

	return console.Deps{
		Doctors:      doctors,
		Staff:        staffSvc,
		Patients:     patients,
		Appointments: appointments,
		Scheduler:    scheduler,
		Credentials:  creds,
		Logger:       logger,
	}, nil
}

func consoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Run the interactive front desk console",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)
			deps, err := buildDeps(cfg, logger)
			if err != nil {
				return err
			}
			logger.Info().Str("data_dir", cfg.DataDir).Msg("front desk starting")
			console.New(os.Stdin, os.Stdout, deps).Run()
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the stock doctor and staff rosters to the data directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)

			seedFiles := []string{config.DoctorsFile, config.StaffFile, config.UsersFile}
			for _, name := range seedFiles {
				path := cfg.CollectionPath(name)
				if _, err := os.Stat(path); err == nil {
					if !force {
						return fmt.Errorf("%s already exists, re-run with --force to overwrite", path)
					}
					if err := os.Remove(path); err != nil {
						return fmt.Errorf("removing %s: %w", path, err)
					}
				}
			}

			if _, err := directory.NewFileRepository(cfg.CollectionPath(config.DoctorsFile), logger, seed.Doctors()); err != nil {
				return err
			}
			if _, err := staff.NewFileRepository(cfg.CollectionPath(config.StaffFile), logger, seed.StaffMembers()); err != nil {
				return err
			}
			if _, err := auth.NewCredentialStore(cfg.CollectionPath(config.UsersFile), logger); err != nil {
				return err
			}

			fmt.Printf("Seeded %d doctors, %d staff members and default admin accounts into %s\n",
				len(seed.Doctors()), len(seed.StaffMembers()), cfg.DataDir)
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite existing rosters")
	return cmd
}

func doctorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctors",
		Short: "Inspect the doctor directory",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print the doctor roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)
			deps, err := buildDeps(cfg, logger)
			if err != nil {
				return err
			}

			doctors := deps.Doctors.List()
			fmt.Printf("%-5s %-25s %-22s %s\n", "ID", "NAME", "SPECIALIZATION", "TIMINGS")
			fmt.Println("----- ------------------------- ---------------------- --------------------")
			for _, d := range doctors {
				fmt.Printf("%-5d Dr. %-22s %-22s %s\n", d.ID, d.Name, d.Specialization, d.Timings())
			}
			return nil
		},
	})

	return cmd
}

func appointmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appointments",
		Short: "Inspect the appointment ledger",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print appointments, optionally for one patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			patientID, _ := cmd.Flags().GetString("patient")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)
			deps, err := buildDeps(cfg, logger)
			if err != nil {
				return err
			}

			var appts []ledger.Appointment
			if patientID != "" {
				appts = deps.Appointments.ListForPatient(patientID)
			} else {
				appts = deps.Appointments.List()
			}
			if len(appts) == 0 {
				fmt.Println("No appointments found.")
				return nil
			}
			for _, a := range appts {
				fmt.Println(a)
			}
			return nil
		},
	}
	listCmd.Flags().String("patient", "", "Filter by patient ID")
	cmd.AddCommand(listCmd)

	return cmd
}
