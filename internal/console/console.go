// Package console implements the interactive front-desk menus for
// admins and patients. It owns all terminal IO; the domain services it
// drives know nothing about presentation.
package console

import (
	"bufio"
	"io"

	"github.com/rs/zerolog"

	"github.com/frontdesk/frontdesk/internal/domain/directory"
	"github.com/frontdesk/frontdesk/internal/domain/identity"
	"github.com/frontdesk/frontdesk/internal/domain/ledger"
	"github.com/frontdesk/frontdesk/internal/domain/scheduling"
	"github.com/frontdesk/frontdesk/internal/domain/staff"
	"github.com/frontdesk/frontdesk/internal/platform/auth"
)

// Deps are the services the console drives.
type Deps struct {
	Doctors      *directory.Service
	Staff        *staff.Service
	Patients     *identity.Service
	Appointments *ledger.Service
	Scheduler    *scheduling.Service
	Credentials  *auth.CredentialStore
	Logger       zerolog.Logger
}

// Console runs the menu system over one input/output pair.
type Console struct {
	in  *bufio.Scanner
	out io.Writer

	doctors      *directory.Service
	staff        *staff.Service
	patients     *identity.Service
	appointments *ledger.Service
	scheduler    *scheduling.Service
	creds        *auth.CredentialStore
	log          zerolog.Logger
}

func New(in io.Reader, out io.Writer, deps Deps) *Console {
	return &Console{
		in:           bufio.NewScanner(in),
		out:          out,
		doctors:      deps.Doctors,
		staff:        deps.Staff,
		patients:     deps.Patients,
		appointments: deps.Appointments,
		scheduler:    deps.Scheduler,
		creds:        deps.Credentials,
		log:          deps.Logger,
	}
}

// Run drives the main menu until the user exits or input ends.
func (c *Console) Run() {
	for {
		c.banner("HOSPITAL FRONT DESK", 50)
		c.printf("Select Your Role:\n")
		c.printf("1. Admin\n")
		c.printf("2. Patient\n")
		c.printf("3. Exit\n")

		choice, ok := c.readLine("Enter your choice: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			if session, authed := c.adminLogin(); authed {
				c.adminMenu(session)
			}
		case "2":
			c.patientMenu()
		case "3":
			c.printf("Thank you for using the hospital front desk!\n")
			return
		default:
			c.errorf("Invalid choice! Please try again.")
		}
	}
}
