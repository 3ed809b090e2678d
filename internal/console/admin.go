package console

import (
	"errors"

	"github.com/frontdesk/frontdesk/internal/domain/staff"
	"github.com/frontdesk/frontdesk/internal/platform/auth"
	"github.com/frontdesk/frontdesk/internal/platform/store"
)

func (c *Console) adminLogin() (auth.Session, bool) {
	c.banner("ADMIN LOGIN", 40)
	username, ok := c.readLine("Enter admin username: ")
	if !ok {
		return auth.Session{}, false
	}
	password, ok := c.readLine("Enter admin password: ")
	if !ok {
		return auth.Session{}, false
	}

	if !c.creds.Verify(username, password, auth.RoleAdmin) {
		c.errorf("Invalid admin credentials!")
		return auth.Session{}, false
	}

	session := auth.NewSession(username, auth.RoleAdmin)
	c.log.Info().Str("username", username).Str("session", session.Token).Msg("admin logged in")
	c.successf("Login Successful! Welcome Admin!")
	return session, true
}

func (c *Console) adminMenu(session auth.Session) {
	for {
		c.banner("ADMIN DASHBOARD", 50)
		c.printf("1. Doctor Management\n")
		c.printf("2. Hospital Staff Management\n")
		c.printf("3. View All Patients\n")
		c.printf("4. View All Appointments\n")
		c.printf("5. Cancel Appointment\n")
		c.printf("6. Logout\n")

		choice, ok := c.readLine("Enter your choice: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			c.doctorMenu()
		case "2":
			c.staffMenu()
		case "3":
			c.listPatients()
		case "4":
			c.listAppointments()
		case "5":
			c.cancelAppointmentAdmin()
		case "6":
			c.log.Info().Str("session", session.Token).Msg("admin logged out")
			c.printf("Logging out...\n")
			return
		default:
			c.errorf("Invalid choice! Please try again.")
		}
	}
}

// -- Doctor management --

func (c *Console) doctorMenu() {
	for {
		c.banner("DOCTOR MANAGEMENT", 40)
		c.printf("1. Add Doctor\n")
		c.printf("2. View All Doctors\n")
		c.printf("3. Update Doctor\n")
		c.printf("4. Delete Doctor\n")
		c.printf("5. Back to Admin Menu\n")

		choice, ok := c.readLine("Enter your choice: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			c.addDoctor()
		case "2":
			c.listDoctors()
		case "3":
			c.updateDoctor()
		case "4":
			c.deleteDoctor()
		case "5":
			return
		default:
			c.errorf("Invalid choice! Please try again.")
		}
	}
}

func (c *Console) addDoctor() {
	c.printf("\n--- Add New Doctor ---\n")
	name, ok := c.readLine("Enter doctor name: ")
	if !ok {
		return
	}
	specialization, ok := c.readLine("Enter specialization: ")
	if !ok {
		return
	}
	shiftStart := c.readIntDefault("Enter shift start hour (0-23, default 9): ", 9)
	shiftHours := c.readIntDefault("Enter shift hours (default 8): ", 8)

	d, err := c.doctors.Add(name, specialization, shiftStart, shiftHours)
	if err != nil {
		c.errorf("Failed to add doctor: %v", err)
		return
	}
	c.successf("Doctor %s added successfully with ID: %d", d.Name, d.ID)
}

func (c *Console) updateDoctor() {
	id, err := c.readInt("Enter doctor ID to update: ")
	if err != nil {
		c.errorf("Invalid input! Please enter a valid ID.")
		return
	}
	d, err := c.doctors.Get(id)
	if err != nil {
		c.errorf("Doctor not found!")
		return
	}

	c.printf("Current doctor data: %s\n", d)
	c.printf("\nEnter new information: (leave blank to keep current)\n")
	name := c.readLineDefault("Enter new name: ", d.Name)
	specialization := c.readLineDefault("Enter new specialization: ", d.Specialization)
	shiftStart := c.readIntDefault("Enter new shift start hour: ", d.ShiftStartHour)
	shiftHours := c.readIntDefault("Enter new shift hours: ", d.ShiftHours)

	if err := c.doctors.Update(id, name, specialization, shiftStart, shiftHours); err != nil {
		c.errorf("Failed to update doctor: %v", err)
		return
	}
	c.successf("Doctor updated successfully!")
}

func (c *Console) deleteDoctor() {
	id, err := c.readInt("Enter doctor ID to delete: ")
	if err != nil {
		c.errorf("Invalid input! Please enter a valid ID.")
		return
	}
	if err := c.doctors.Delete(id); err != nil {
		c.errorf("Doctor not found!")
		return
	}
	c.successf("Doctor deleted successfully!")
}

// -- Staff management --

func (c *Console) staffMenu() {
	for {
		c.banner("HOSPITAL STAFF MANAGEMENT", 40)
		c.printf("1. Add Staff Member\n")
		c.printf("2. View All Staff\n")
		c.printf("3. Update Staff\n")
		c.printf("4. Delete Staff\n")
		c.printf("5. Back to Admin Menu\n")

		choice, ok := c.readLine("Enter your choice: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			c.addStaff()
		case "2":
			c.listStaff()
		case "3":
			c.updateStaff()
		case "4":
			c.deleteStaff()
		case "5":
			return
		default:
			c.errorf("Invalid choice! Please try again.")
		}
	}
}

func (c *Console) promptRole(def string) string {
	c.printf("\nSelect Role:\n")
	c.printf("1. %s\n", staff.RoleReceptionist)
	c.printf("2. %s\n", staff.RoleNurse)
	c.printf("3. %s\n", staff.RoleManagement)
	choice, _ := c.readLine("Enter role choice: ")
	switch choice {
	case "1":
		return staff.RoleReceptionist
	case "2":
		return staff.RoleNurse
	case "3":
		return staff.RoleManagement
	default:
		return def
	}
}

func (c *Console) addStaff() {
	c.printf("\n--- Add New Staff Member ---\n")
	name, ok := c.readLine("Enter staff name: ")
	if !ok {
		return
	}
	role := c.promptRole("Staff")
	shift, ok := c.readLine("Enter shift timings: ")
	if !ok {
		return
	}

	member, err := c.staff.Add(name, role, shift)
	if err != nil {
		c.errorf("Failed to add staff member: %v", err)
		return
	}
	c.successf("Staff member %s added successfully with ID: %d", member.Name, member.ID)
}

func (c *Console) updateStaff() {
	id, err := c.readInt("Enter staff ID to update: ")
	if err != nil {
		c.errorf("Invalid input! Please enter a valid ID.")
		return
	}
	member, err := c.staff.Get(id)
	if err != nil {
		c.errorf("Staff member not found!")
		return
	}

	c.printf("Current staff data: %s\n", member)
	c.printf("\nEnter new information: (leave blank to keep current)\n")
	name := c.readLineDefault("Enter new name: ", member.Name)
	role := c.promptRole(member.Role)
	shift := c.readLineDefault("Enter new shift timings: ", member.ShiftTimings)

	if err := c.staff.Update(id, name, role, shift); err != nil {
		c.errorf("Failed to update staff: %v", err)
		return
	}
	c.successf("Staff updated successfully!")
}

func (c *Console) deleteStaff() {
	id, err := c.readInt("Enter staff ID to delete: ")
	if err != nil {
		c.errorf("Invalid input! Please enter a valid ID.")
		return
	}
	if err := c.staff.Delete(id); err != nil {
		c.errorf("Staff not found!")
		return
	}
	c.successf("Staff deleted successfully!")
}

// -- Appointments --

func (c *Console) cancelAppointmentAdmin() {
	id, err := c.readInt("Enter Appointment ID to cancel: ")
	if err != nil {
		c.errorf("Invalid Appointment ID!")
		return
	}
	if err := c.appointments.Cancel(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.errorf("Appointment not found!")
		} else {
			c.errorf("Failed to cancel appointment: %v", err)
		}
		return
	}
	c.successf("Appointment cancelled successfully!")
}
