package console

import (
	"errors"
	"time"

	"github.com/frontdesk/frontdesk/internal/domain/directory"
	"github.com/frontdesk/frontdesk/internal/domain/ledger"
	"github.com/frontdesk/frontdesk/internal/domain/scheduling"
)

func (c *Console) patientMenu() {
	for {
		c.banner("PATIENT PORTAL", 50)
		c.printf("1. Book New Appointment\n")
		c.printf("2. View My Appointments\n")
		c.printf("3. Cancel My Appointment\n")
		c.printf("4. Back to Main Menu\n")

		choice, ok := c.readLine("Enter your choice: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			c.bookAppointment()
		case "2":
			c.viewOwnAppointments()
		case "3":
			c.cancelOwnAppointment()
		case "4":
			return
		default:
			c.errorf("Invalid choice! Please try again.")
		}
	}
}

// bookAppointment walks a new patient through registration, doctor
// selection, the week grid and slot selection, then commits.
func (c *Console) bookAppointment() {
	c.printf("\n--- Book New Appointment ---\n")
	name, ok := c.readLine("Enter your full name: ")
	if !ok {
		return
	}
	phone, ok := c.readLine("Enter your contact number: ")
	if !ok {
		return
	}
	email, ok := c.readLine("Enter your email: ")
	if !ok {
		return
	}

	patient, password, err := c.patients.Register(name, phone, email)
	if err != nil {
		c.errorf("Registration failed: %v", err)
		return
	}
	c.banner("PATIENT REGISTERED SUCCESSFULLY!", 50)
	c.printf("Your Patient ID: %s\n", patient.PatientID)
	c.printf("Your Password: %s\n", password)
	c.printf("IMPORTANT: Please save these credentials!\n")

	// An optional complaint narrows the roster to the right
	// specialization; blank shows everyone.
	condition, _ := c.readLine("\nDescribe your condition (or press Enter to see all doctors): ")
	var roster []directory.Doctor
	if condition != "" {
		matched, specialization := c.doctors.MatchSpecialization(condition)
		c.printf("Recommended specialization: %s\n", specialization)
		roster = matched
		if len(roster) == 0 {
			c.printf("No %s doctors available; showing the full roster.\n", specialization)
			roster = c.doctors.List()
		}
	} else {
		roster = c.doctors.List()
	}
	c.printDoctorTable(roster)

	doctorID, err := c.readInt("\nEnter Doctor ID to book appointment with: ")
	if err != nil {
		c.errorf("Invalid Doctor ID!")
		return
	}

	grid, err := c.scheduler.RenderWeek(doctorID, time.Time{})
	if err != nil {
		c.errorf("Invalid Doctor ID!")
		return
	}
	c.printWeekGrid(grid)

	c.printf("\nChoose the day and slot to book.\n")
	c.printf("Enter Day number (1 for %s, %d for %s)\n", grid.Dates[0], len(grid.Dates), grid.Dates[len(grid.Dates)-1])
	day, err := c.readInt("Day (1-7): ")
	if err != nil {
		c.errorf("Invalid day input.")
		return
	}
	if day < 1 || day > len(grid.Dates) {
		c.errorf("Day choice out of range.")
		return
	}

	c.printDayColumn(grid, day)
	slot, err := c.readInt("Choose slot number: ")
	if err != nil {
		c.errorf("Invalid slot input.")
		return
	}

	date, label, err := c.scheduler.SelectCell(grid, day, slot)
	switch {
	case errors.Is(err, scheduling.ErrInvalidSelection):
		c.errorf("Slot choice out of range.")
		return
	case errors.Is(err, ledger.ErrSlotTaken):
		c.errorf("That slot is already booked. Please try another.")
		return
	case err != nil:
		c.errorf("Could not select slot: %v", err)
		return
	}

	reason := c.readLineDefault("Optional: Briefly describe reason for visit (or press Enter to skip): ", "")

	id, err := c.scheduler.CommitBooking(patient.PatientID, doctorID, date, label, reason)
	if errors.Is(err, ledger.ErrSlotTaken) {
		c.errorf("That slot is already booked. Please try another.")
		return
	}
	if err != nil {
		c.errorf("Booking failed: %v", err)
		return
	}
	c.successf("Appointment booked successfully! Appointment ID: %d", id)
}

// verifyPatient prompts for patient credentials and checks them.
func (c *Console) verifyPatient() (string, bool) {
	patientID, ok := c.readLine("Enter your Patient ID: ")
	if !ok {
		return "", false
	}
	password, ok := c.readLine("Enter your Password: ")
	if !ok {
		return "", false
	}
	if !c.patients.Verify(patientID, password) {
		c.errorf("Invalid credentials!")
		return "", false
	}
	return patientID, true
}

func (c *Console) viewOwnAppointments() {
	patientID, ok := c.verifyPatient()
	if !ok {
		return
	}
	appts := c.appointments.ListForPatient(patientID)
	if len(appts) == 0 {
		c.printf("[WARNING] No appointments found for Patient ID: %s\n", patientID)
		return
	}
	c.printf("\nAppointments for Patient ID: %s\n", patientID)
	for _, a := range appts {
		c.printf("%s\n", a)
	}
}

func (c *Console) cancelOwnAppointment() {
	patientID, ok := c.verifyPatient()
	if !ok {
		return
	}
	id, err := c.readInt("Enter Appointment ID to cancel: ")
	if err != nil {
		c.errorf("Invalid Appointment ID!")
		return
	}

	a, err := c.appointments.Get(id)
	if err != nil || a.PatientID != patientID {
		c.errorf("Appointment not found or does not belong to you!")
		return
	}
	if err := c.appointments.Cancel(id); err != nil {
		c.errorf("Failed to cancel appointment: %v", err)
		return
	}
	c.successf("Appointment cancelled successfully!")
}
