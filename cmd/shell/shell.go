// Package shell implements the interactive booking session
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fjacquet/bookctl/cmd/root"
	"fjacquet/bookctl/internal/booking"
	"fjacquet/bookctl/internal/bookingerror"
	"fjacquet/bookctl/internal/catalog"
	"fjacquet/bookctl/internal/directory"
	"fjacquet/bookctl/internal/ledger"
	"fjacquet/bookctl/internal/models"
	"fjacquet/bookctl/internal/recordstore"

	"github.com/spf13/cobra"
)

// Cmd represents the shell command
var Cmd = &cobra.Command{
	Use:   "shell",
	Short: "Run an interactive booking session",
	Long: `Run the interactive menu: login or register as a customer to browse
and book offerings, or login as an administrator to manage users and
catalog rows.`,
	Run: shellFunc,
}

// session carries the state of one interactive run
type session struct {
	in     *bufio.Reader
	out    io.Writer
	dir    *directory.Directory
	loader *catalog.Loader
	engine *booking.Engine
	store  *ledger.Store
}

func shellFunc(cmd *cobra.Command, args []string) {
	dir, err := root.LoadDirectory()
	if err != nil {
		root.Log.Fatalf("Error loading user directory: %v", err)
	}

	s := &session{
		in:     bufio.NewReader(cmd.InOrStdin()),
		out:    cmd.OutOrStdout(),
		dir:    dir,
		loader: root.NewLoader(),
		engine: root.NewEngine(cmd),
		store:  ledger.NewStore(root.LedgerPath()),
	}
	s.run()
}

func (s *session) run() {
	fmt.Fprintln(s.out, "1. Login\n2. Register\n3. Admin Login")
	switch s.prompt("Choose an option: ") {
	case "1":
		s.login()
	case "2":
		s.register()
	case "3":
		s.adminLogin()
	default:
		fmt.Fprintln(s.out, "Invalid option selected.")
	}
}

// prompt prints a label and reads one trimmed line
func (s *session) prompt(label string) string {
	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

func (s *session) login() {
	userID := s.prompt("User ID: ")
	password := s.prompt("Password: ")

	user, err := s.dir.Authenticate(userID, password)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid credentials.")
		return
	}

	fmt.Fprintf(s.out, "\nWelcome, %s!\n", user.Name)
	s.customerMenu(user)
}

func (s *session) register() {
	userID := s.prompt("Enter new user ID: ")
	name := s.prompt("Enter your name: ")
	email := s.prompt("Enter your email: ")
	password := s.prompt("Enter your password: ")

	user := &models.User{
		ID: userID, Name: name, Email: email, Password: password,
		Role: models.RoleCustomer,
	}
	if err := s.dir.Register(user); err != nil {
		var dup *bookingerror.DuplicateUserError
		if errors.As(err, &dup) {
			fmt.Fprintln(s.out, "User ID already exists. Please choose another.")
			return
		}
		root.Log.Errorf("Error registering user: %v", err)
		return
	}
	fmt.Fprintln(s.out, "Registration successful. You can now login.")
}

func (s *session) customerMenu(user *models.User) {
	for {
		fmt.Fprintln(s.out, "\n1. Book Travel\n2. Book Stay\n3. Book Trip\n4. View Bookings\n5. Exit")
		switch s.prompt("Choose category: ") {
		case "1":
			choice := strings.ToLower(s.prompt("Choose Travel Type (flight/train/bus): "))
			kind, err := models.ParseServiceKind(choice)
			if err != nil || !kind.HasSeats() {
				fmt.Fprintln(s.out, "Invalid travel type selected.")
				continue
			}
			s.bookFlow(user, kind)
		case "2":
			choice := strings.ToLower(s.prompt("Choose Stay Type (hotel/homestay/farmhouse): "))
			kind, err := models.ParseServiceKind(choice)
			if err != nil || !kind.IsStay() {
				fmt.Fprintln(s.out, "Invalid stay type selected.")
				continue
			}
			s.bookFlow(user, kind)
		case "3":
			s.bookFlow(user, models.KindTrip)
		case "4":
			s.viewBookings(user)
		case "5":
			fmt.Fprintln(s.out, "Thank you for using the booking system!")
			return
		default:
			fmt.Fprintln(s.out, "Invalid category.")
		}
	}
}

func (s *session) bookFlow(user *models.User, kind models.ServiceKind) {
	offerings, err := s.loader.LoadOfferings(kind)
	if err != nil {
		root.Log.Errorf("Error loading catalog: %v", err)
		return
	}
	if len(offerings) == 0 {
		fmt.Fprintln(s.out, "No services available.")
		return
	}

	fmt.Fprintln(s.out, "\nAvailable Options:")
	for i, offering := range offerings {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, offering.Info())
	}

	choice, err := strconv.Atoi(s.prompt("Select a service by number: "))
	if err != nil {
		fmt.Fprintln(s.out, "Please enter a valid number.")
		return
	}
	if choice < 1 || choice > len(offerings) {
		fmt.Fprintln(s.out, "Invalid selection.")
		return
	}
	selected := &offerings[choice-1]

	quantity := 1
	if selected.Kind.HasCapacity() {
		unit := "seats"
		if selected.Kind.HasRooms() {
			unit = "rooms"
		}
		quantity, err = strconv.Atoi(s.prompt(fmt.Sprintf("Enter number of %s to book: ", unit)))
		if err != nil {
			fmt.Fprintf(s.out, "Invalid number of %s.\n", unit)
			return
		}
	}

	booked, err := s.engine.Reserve(user, selected, quantity)
	if err != nil {
		var capErr *bookingerror.InsufficientCapacityError
		if errors.As(err, &capErr) {
			fmt.Fprintln(s.out, "Not enough capacity available.")
			return
		}
		fmt.Fprintln(s.out, "Invalid quantity.")
		return
	}

	if selected.Kind.HasCapacity() {
		_, err := recordstore.UpdateWhere(s.loader.ResourcePath(kind),
			"service_id", selected.ID,
			selected.CapacityColumn(), strconv.Itoa(selected.Available()))
		if err != nil {
			root.Log.Errorf("Error persisting updated capacity: %v", err)
		}
	}

	s.engine.Pay(booked, booked.TotalPrice)
	s.engine.Notify(user, "Your booking is confirmed!")
}

func (s *session) viewBookings(user *models.User) {
	// The engine records every reservation in the ledger, so the persisted
	// history already includes bookings made earlier in this session.
	bookings, err := s.store.LoadForUser(user.ID)
	if err != nil {
		root.Log.Errorf("Error loading booking history: %v", err)
		bookings = make([]models.Booking, 0, len(user.Bookings))
		for _, b := range user.Bookings {
			bookings = append(bookings, *b)
		}
	}

	if len(bookings) == 0 {
		fmt.Fprintln(s.out, "You have no bookings yet.")
		return
	}
	fmt.Fprintln(s.out, "\n--- Your Bookings ---")
	for _, b := range bookings {
		fmt.Fprintln(s.out, b.String())
	}
}

func (s *session) adminLogin() {
	userID := s.prompt("Admin user ID: ")
	password := s.prompt("Admin password: ")

	user, err := s.dir.Authenticate(userID, password)
	if err != nil || !user.IsAdmin() {
		fmt.Fprintln(s.out, "Invalid admin credentials.")
		return
	}

	fmt.Fprintln(s.out, "\nWelcome Admin!")
	s.adminMenu()
}

func (s *session) adminMenu() {
	for {
		fmt.Fprintln(s.out, "--- Admin Menu ---")
		fmt.Fprintln(s.out, "1. View Users\n2. Add Offering\n3. Remove Offering\n4. Logout")
		switch s.prompt("Choose an action: ") {
		case "1":
			fmt.Fprintln(s.out, "\n--- Registered Users ---")
			for _, user := range s.dir.Users() {
				fmt.Fprintf(s.out, "ID: %s, Name: %s, Email: %s, Role: %s\n",
					user.ID, user.Name, user.Email, user.Role)
			}
		case "2":
			s.addOffering()
		case "3":
			s.removeOffering()
		case "4":
			return
		default:
			fmt.Fprintln(s.out, "Invalid choice. Try again.")
		}
	}
}

func (s *session) promptKind() (models.ServiceKind, bool) {
	choice := strings.ToLower(s.prompt("Choose service type (flight/bus/train/trip/hotel/homestay/farmhouse): "))
	kind, err := models.ParseServiceKind(choice)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid type.")
		return "", false
	}
	return kind, true
}

func (s *session) addOffering() {
	kind, ok := s.promptKind()
	if !ok {
		return
	}

	schema := catalog.Schema(kind)
	fmt.Fprintln(s.out, "Enter new service details:")
	row := make([]string, 0, len(schema))
	for _, column := range schema {
		row = append(row, s.prompt(fmt.Sprintf("%s: ", column)))
	}

	if err := recordstore.AppendRow(s.loader.ResourcePath(kind), row, schema); err != nil {
		root.Log.Errorf("Error adding offering row: %v", err)
		return
	}
	fmt.Fprintln(s.out, "New service added successfully.")
}

func (s *session) removeOffering() {
	kind, ok := s.promptKind()
	if !ok {
		return
	}

	path := s.loader.ResourcePath(kind)
	table, err := recordstore.Load(path)
	if err != nil {
		var notFound *bookingerror.NotFoundError
		if errors.As(err, &notFound) {
			fmt.Fprintln(s.out, "File not found.")
			return
		}
		root.Log.Errorf("Error loading resource: %v", err)
		return
	}
	if table.RowCount() == 0 {
		fmt.Fprintln(s.out, "No services available.")
		return
	}

	for i, row := range table.Rows {
		fmt.Fprintf(s.out, "%d. %s\n", i, strings.Join(row, ", "))
	}

	index, err := strconv.Atoi(s.prompt("Enter the index of the service to remove: "))
	if err != nil {
		fmt.Fprintln(s.out, "Invalid input.")
		return
	}
	if err := recordstore.DeleteAtIndex(path, index); err != nil {
		fmt.Fprintln(s.out, "Invalid index.")
		return
	}
	fmt.Fprintln(s.out, "Service removed successfully.")
}
