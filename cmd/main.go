// Command workshop is the single-operator CLI for the vehicle-service
// workshop: a login gate, then a numeric menu over the workflow operations.
// All state loads from the snapshot files at startup and is written through
// on every mutation.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cast"

	"github.com/NayanikaSethi/workshop/internal/auth"
	"github.com/NayanikaSethi/workshop/internal/config"
	"github.com/NayanikaSethi/workshop/internal/db"
	"github.com/NayanikaSethi/workshop/internal/service"
	"github.com/NayanikaSethi/workshop/internal/store"
)

func main() {
	cfg := config.Load()

	gate, err := auth.NewService(cfg)
	if err != nil {
		log.Fatalf("Failed to initialise login gate: %v", err)
	}

	database, err := db.Open(cfg.DataFile, cfg.HistoryFile)
	if err != nil {
		log.Fatalf("Failed to open snapshot files: %v", err)
	}
	defer database.Close()

	customers, active, revenue, err := database.LoadData()
	if err != nil {
		log.WithError(err).Error("data snapshot load failed, starting empty")
	}
	history, err := database.LoadHistory()
	if err != nil {
		log.WithError(err).Error("history snapshot load failed, starting empty")
	}
	if len(customers) == 0 && len(active) == 0 && len(history) == 0 {
		fmt.Println("No previous data found, starting fresh.")
	}

	st := store.FromSnapshot(customers, active, history, revenue)
	ws := service.New(st, database, db.NewAuditLog(cfg.AuditFile))

	in := bufio.NewScanner(os.Stdin)
	token := loginLoop(in, gate)
	menuLoop(in, gate, token, ws)
}

// loginLoop prompts for credentials until the gate accepts them, then
// returns the session token.
func loginLoop(in *bufio.Scanner, gate *auth.Service) string {
	for {
		fmt.Println("-------- LOGIN PAGE --------")
		username := prompt(in, "Enter Username: ")
		password := prompt(in, "Enter Password: ")

		token, err := gate.Login(username, password)
		if err == nil {
			fmt.Println("\nLogin Successful!")
			fmt.Println()
			return token
		}
		fmt.Println("Incorrect credentials! Try again.")
		fmt.Println()
	}
}

func menuLoop(in *bufio.Scanner, gate *auth.Service, token string, ws *service.Workshop) {
	for {
		fmt.Println("========== MAIN MENU ==========")
		fmt.Println("1. Customer Registration")
		fmt.Println("2. Book Service")
		fmt.Println("3. Check Status")
		fmt.Println("4. Generate Bill")
		fmt.Println("5. Admin Dashboard")
		fmt.Println("6. View Service History")
		fmt.Println("7. Update Booking Status")
		fmt.Println("8. Exit")

		choice, err := cast.ToIntE(strings.TrimSpace(prompt(in, "Enter Choice: ")))
		if err != nil {
			fmt.Println("Invalid input! Enter a number.")
			fmt.Println()
			continue
		}

		if err := gate.ValidateSession(token); err != nil {
			fmt.Println("Session expired, please log in again.")
			fmt.Println()
			token = loginLoop(in, gate)
		}

		switch choice {
		case 1:
			runRegisterCustomer(in, ws)
		case 2:
			runBookService(in, ws)
		case 3:
			runCheckStatus(in, ws)
		case 4:
			runGenerateBill(in, ws)
		case 5:
			runDashboard(ws)
		case 6:
			runServiceHistory(ws)
		case 7:
			runUpdateStatus(in, ws)
		case 8:
			fmt.Println("Exiting System...")
			ws.Flush()
			return
		default:
			fmt.Println("Invalid Choice!")
			fmt.Println()
		}
	}
}

func runRegisterCustomer(in *bufio.Scanner, ws *service.Workshop) {
	fmt.Println("----- Customer Registration -----")
	name := prompt(in, "Enter Name: ")
	contact := prompt(in, "Enter Contact Number: ")
	vehicle := prompt(in, "Enter Vehicle Number: ")

	ws.RegisterCustomer(name, contact, vehicle)
	fmt.Println("Customer Registered Successfully!")
	fmt.Println()
}

func runBookService(in *bufio.Scanner, ws *service.Workshop) {
	fmt.Println("----- Book Service -----")
	vehicle := prompt(in, "Enter Vehicle Number: ")
	name := prompt(in, "Enter Customer Name: ")
	serviceType := prompt(in, "Enter Service Type: ")

	booking := ws.BookService(vehicle, name, serviceType)
	fmt.Println("\nService Booked Successfully!")
	fmt.Printf("Technician Assigned: %s\n\n", booking.Technician)
}

func runCheckStatus(in *bufio.Scanner, ws *service.Workshop) {
	vehicle := prompt(in, "Enter Vehicle Number: ")

	status, technician, err := ws.CheckStatus(vehicle)
	if err != nil {
		fmt.Println("No booking found!")
		fmt.Println()
		return
	}
	fmt.Printf("Service Status: %s\n", status)
	fmt.Printf("Technician: %s\n\n", technician)
}

func runGenerateBill(in *bufio.Scanner, ws *service.Workshop) {
	vehicle := prompt(in, "Enter Vehicle Number: ")
	if _, _, err := ws.CheckStatus(vehicle); err != nil {
		fmt.Println("Booking Not Found!")
		fmt.Println()
		return
	}

	fmt.Println("Select Spare Part Used:")
	fmt.Println("1. Engine Part (Turbo Booster - ₹5000)")
	fmt.Println("2. Body Part (Front Bumper - ₹2000)")
	partChoice, err := service.ParseChoice(prompt(in, "Enter Choice: "))
	if err != nil {
		fmt.Println("Invalid numeric input! Please try again.")
		fmt.Println()
		return
	}

	serviceCharge, err := service.ParseAmount(prompt(in, "Enter Service Charge: "))
	if err != nil {
		fmt.Println("Invalid numeric input! Please try again.")
		fmt.Println()
		return
	}

	notes := prompt(in, "Enter Mechanic Notes: ")

	bill, err := ws.GenerateBill(vehicle, partChoice, serviceCharge, notes)
	if errors.Is(err, service.ErrNotFound) {
		fmt.Println("Booking Not Found!")
		fmt.Println()
		return
	}

	fmt.Println("\n----- FINAL BILL -----")
	fmt.Printf("Spare Part Used: %s\n", bill.PartName)
	fmt.Printf("Labor Cost: ₹%.2f\n", bill.LaborCost)
	fmt.Printf("Service Charge: ₹%.2f\n", bill.ServiceCharge)
	fmt.Printf("Discount Applied: %.0f%%\n", bill.DiscountPct)
	fmt.Printf("Total Bill: ₹%.2f\n", bill.Total)
	fmt.Printf("Notes: %s\n", bill.Notes)
	fmt.Println("Service Completed & Customer Notified!")
	fmt.Println()
}

func runDashboard(ws *service.Workshop) {
	summary := ws.Dashboard()
	fmt.Println("--------- ADMIN DASHBOARD ---------")
	fmt.Printf("Total Customers: %d\n", summary.Customers)
	fmt.Printf("Total Bookings: %d\n", summary.ActiveBookings)
	fmt.Printf("Total Completed Services: %d\n", summary.CompletedServices)
	fmt.Printf("Total Revenue: ₹%.2f\n\n", summary.TotalRevenue)
}

func runServiceHistory(ws *service.Workshop) {
	fmt.Println("--------- SERVICE HISTORY ---------")
	history := ws.ServiceHistory()
	if len(history) == 0 {
		fmt.Println("No completed services yet.")
		fmt.Println()
		return
	}
	for _, b := range history {
		fmt.Printf("Customer: %s\n", b.CustomerName)
		fmt.Printf("Vehicle: %s\n", b.VehicleNo)
		fmt.Printf("Service Type: %s\n", b.ServiceType)
		fmt.Printf("Technician: %s\n", b.Technician)
		fmt.Printf("Bill: ₹%.2f\n", b.Record.ServiceCost)
		fmt.Printf("Notes: %s\n", b.Record.MechanicNotes)
		fmt.Printf("Status: %s\n", b.Status)
		fmt.Println("----------------------------------")
	}
	fmt.Println()
}

func runUpdateStatus(in *bufio.Scanner, ws *service.Workshop) {
	vehicle := prompt(in, "Enter Vehicle Number to update status: ")
	if _, _, err := ws.CheckStatus(vehicle); err != nil {
		fmt.Printf("Booking not found for vehicle: %s\n\n", vehicle)
		return
	}

	newStatus := prompt(in, "Enter new status: ")
	if err := ws.UpdateStatus(vehicle, newStatus); err != nil {
		fmt.Printf("Booking not found for vehicle: %s\n\n", vehicle)
		return
	}
	fmt.Printf("Booking status updated to: %s\n\n", newStatus)
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !in.Scan() {
		return ""
	}
	return in.Text()
}
