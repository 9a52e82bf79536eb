// Package directory manages the registry of users backed by users.csv.
package directory

import (
	"errors"
	"sort"

	"fjacquet/bookctl/internal/bookingerror"
	"fjacquet/bookctl/internal/common"
	"fjacquet/bookctl/internal/models"
	"fjacquet/bookctl/internal/recordstore"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// UserSchema is the ordered header of the users resource
var UserSchema = []string{"user_id", "name", "email", "password", "role"}

// Directory owns the set of users for the process lifetime. Loaded once at
// startup; registrations update both the in-memory map and the backing file.
type Directory struct {
	path  string
	users map[string]*models.User
}

// Load reads the user directory from the given resource. When the resource
// is absent the directory falls back to a single bootstrap admin, which is
// kept in memory only until a registration forces a durable write.
func Load(path string, bootstrap models.User) (*Directory, error) {
	d := &Directory{
		path:  path,
		users: make(map[string]*models.User),
	}

	rows, err := common.ReadCSVFile[models.UserRow](path)
	if err != nil {
		var notFound *bookingerror.NotFoundError
		if errors.As(err, &notFound) {
			log.WithField("resource", path).Warn("User directory not found, bootstrapping admin")
			bootstrap.Role = models.RoleAdmin
			d.users[bootstrap.ID] = &bootstrap
			return d, nil
		}
		return nil, err
	}

	for _, row := range rows {
		user := &models.User{
			ID:       row.UserID,
			Name:     row.Name,
			Email:    row.Email,
			Password: row.Password,
			Role:     models.ParseRole(row.Role, row.UserID),
		}
		d.users[user.ID] = user
	}

	log.WithFields(logrus.Fields{
		"resource": path,
		"count":    len(d.users),
	}).Debug("Loaded user directory")
	return d, nil
}

// Lookup returns the user with the given ID, or nil
func (d *Directory) Lookup(userID string) *models.User {
	return d.users[userID]
}

// Size returns the number of registered users
func (d *Directory) Size() int {
	return len(d.users)
}

// Users returns all users sorted by ID, for the admin listing
func (d *Directory) Users() []*models.User {
	users := make([]*models.User, 0, len(d.users))
	for _, u := range d.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

// Register persists a new user and inserts it into the directory. Fails with
// a DuplicateUserError when the ID is already taken; the resource is not
// touched in that case.
func (d *Directory) Register(user *models.User) error {
	if _, exists := d.users[user.ID]; exists {
		return &bookingerror.DuplicateUserError{UserID: user.ID}
	}
	if user.Role == "" {
		user.Role = models.RoleCustomer
	}

	row := []string{user.ID, user.Name, user.Email, user.Password, string(user.Role)}
	if err := recordstore.AppendRow(d.path, row, UserSchema); err != nil {
		return err
	}

	d.users[user.ID] = user
	log.WithField("user", user.ID).Info("Registered user")
	return nil
}

// Authenticate returns the user when the ID exists and the password matches.
// Passwords are compared in plain text, matching the system this replaces.
func (d *Directory) Authenticate(userID, password string) (*models.User, error) {
	user, ok := d.users[userID]
	if !ok || user.Password != password {
		return nil, &bookingerror.InvalidCredentialsError{UserID: userID}
	}
	return user, nil
}
