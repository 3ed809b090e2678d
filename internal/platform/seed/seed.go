// Package seed provides the stock data a fresh installation starts
// with: the hospital's standing doctor roster and the core front-desk
// staff. Seeds are applied only when a collection file does not exist
// yet; they never overwrite live data.
package seed

import (
	"github.com/frontdesk/frontdesk/internal/domain/directory"
	"github.com/frontdesk/frontdesk/internal/domain/staff"
)

// Doctors returns the default roster of twenty specializations. All
// stock doctors work the standard 9-to-5 shift of eight 1-hour slots.
func Doctors() []directory.Doctor {
	roster := []struct {
		name           string
		specialization string
	}{
		{"Rajesh Kumar", "Cardiology"},
		{"Priya Sharma", "General Physician"},
		{"Amit Patel", "Orthopedics"},
		{"Sunita Singh", "Pediatrics"},
		{"Vikram Reddy", "Dermatology"},
		{"Neha Gupta", "ENT Specialist"},
		{"Arun Verma", "Neurology"},
		{"Kavita Joshi", "Psychiatry"},
		{"Sanjay Rao", "Ophthalmology"},
		{"Anita Deshpande", "Gynecology"},
		{"Rahul Bhat", "Endocrinology"},
		{"Meera Iyer", "Gastroenterology"},
		{"Karan Malhotra", "Pulmonology"},
		{"Swati Kapoor", "Nephrology"},
		{"Rohit Sinha", "Urology"},
		{"Nisha Menon", "Oncology"},
		{"Vikram Chawla", "Rheumatology"},
		{"Pooja Jain", "Dermatology (Cosmetic)"},
		{"Aditya Nair", "Sports Medicine"},
		{"Deepa Kaur", "Dentistry"},
	}

	doctors := make([]directory.Doctor, 0, len(roster))
	for i, d := range roster {
		doctors = append(doctors, directory.Doctor{
			ID:             i + 1,
			Name:           d.name,
			Specialization: d.specialization,
			ShiftStartHour: directory.DefaultShiftStart,
			ShiftHours:     directory.DefaultShiftHours,
		})
	}
	return doctors
}

// StaffMembers returns the default front-desk staffing.
func StaffMembers() []staff.Staff {
	return []staff.Staff{
		{ID: 1, Name: "Anjali Mehta", Role: staff.RoleReceptionist, ShiftTimings: "8:00 AM - 4:00 PM"},
		{ID: 2, Name: "Ravi Kumar", Role: staff.RoleReceptionist, ShiftTimings: "4:00 PM - 12:00 AM"},
		{ID: 3, Name: "Meena Sharma", Role: staff.RoleNurse, ShiftTimings: "9:00 AM - 5:00 PM"},
		{ID: 4, Name: "Pooja Desai", Role: staff.RoleNurse, ShiftTimings: "5:00 PM - 1:00 AM"},
		{ID: 5, Name: "Suresh Rao", Role: staff.RoleManagement, ShiftTimings: "9:00 AM - 6:00 PM"},
	}
}
