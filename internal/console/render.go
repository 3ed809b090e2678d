package console

import (
	"strings"
	"time"

	"github.com/frontdesk/frontdesk/internal/domain/directory"
	"github.com/frontdesk/frontdesk/internal/domain/scheduling"
)

const gridColWidth = 15

func (c *Console) printDoctorTable(doctors []directory.Doctor) {
	if len(doctors) == 0 {
		c.printf("[WARNING] No doctors registered.\n")
		return
	}
	c.printf("\n%-5s %-25s %-22s %s\n", "ID", "Name", "Specialization", "Timings")
	c.printf("%s\n", strings.Repeat("-", 70))
	for _, d := range doctors {
		c.printf("%-5d Dr. %-22s %-22s %s\n", d.ID, d.Name, d.Specialization, d.Timings())
	}
}

func (c *Console) listDoctors() {
	c.banner("DOCTOR DIRECTORY", 50)
	c.printDoctorTable(c.doctors.List())
}

func (c *Console) listStaff() {
	c.banner("STAFF DIRECTORY", 50)
	members := c.staff.List()
	if len(members) == 0 {
		c.printf("[WARNING] No staff registered.\n")
		return
	}
	c.printf("\n%-5s %-25s %-20s %s\n", "ID", "Name", "Role", "Shift")
	c.printf("%s\n", strings.Repeat("-", 70))
	for _, s := range members {
		c.printf("%-5d %-25s %-20s %s\n", s.ID, s.Name, s.Role, s.ShiftTimings)
	}
}

func (c *Console) listPatients() {
	c.banner("REGISTERED PATIENTS", 50)
	patients := c.patients.List()
	if len(patients) == 0 {
		c.printf("[WARNING] No patients registered.\n")
		return
	}
	c.printf("\n%-10s %-25s %-15s %s\n", "ID", "Name", "Phone", "Email")
	c.printf("%s\n", strings.Repeat("-", 70))
	for _, p := range patients {
		c.printf("%-10s %-25s %-15s %s\n", p.PatientID, p.Name, p.Phone, p.Email)
	}
}

func (c *Console) listAppointments() {
	c.banner("ALL APPOINTMENTS", 50)
	appts := c.appointments.List()
	if len(appts) == 0 {
		c.printf("[WARNING] No appointments found.\n")
		return
	}
	for _, a := range appts {
		c.printf("%s\n", a)
	}
}

// printWeekGrid prints the seven-day availability table for one doctor.
// Booked cells show B, free cells show _.
func (c *Console) printWeekGrid(g scheduling.WeekGrid) {
	c.printf("\nAvailability for Dr. %s (%s) over the next %d days:\n",
		g.Doctor.Name, g.Doctor.Specialization, len(g.Dates))

	c.printf("%-*s", gridColWidth, `Slot\Date`)
	for _, date := range g.Dates {
		c.printf("%-*s", gridColWidth, shortDate(date))
	}
	c.printf("\n")

	for si, slot := range g.Slots {
		c.printf("%-*s", gridColWidth, slot)
		for di := range g.Dates {
			cell := "_"
			if g.Booked[si][di] {
				cell = "B"
			}
			c.printf("%-*s", gridColWidth, cell)
		}
		c.printf("\n")
	}
	c.printf("Legend: B = Booked, _ = Free\n")
}

// printDayColumn prints one day's slots with their status, numbered for
// selection. day is 1-based.
func (c *Console) printDayColumn(g scheduling.WeekGrid, day int) {
	c.printf("\nSlots on %s:\n", g.Dates[day-1])
	for si, slot := range g.Slots {
		status := "Free"
		if g.Booked[si][day-1] {
			status = "Booked"
		}
		c.printf("%d. %s  [%s]\n", si+1, slot, status)
	}
}

// shortDate rewrites "02-09-2026" as "Wed 02-Sep" for the grid header.
// Unparseable dates pass through untouched.
func shortDate(date string) string {
	t, err := time.Parse(scheduling.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Mon 02-Jan")
}
