package accountstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dalemusser/coursehub/internal/app/system/authutil"
	"github.com/dalemusser/coursehub/internal/app/system/normalize"
	"github.com/dalemusser/coursehub/internal/domain/models"
)

var (
	// ErrDuplicateUsername is returned when the username is already registered.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrDuplicateStudent is returned when the student email is already registered.
	ErrDuplicateStudent = errors.New("student already exists")

	// ErrInvalidCredentials is returned on any login failure. Unknown account
	// and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Store struct {
	users    *mongo.Collection
	students *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		users:    db.Collection("users"),
		students: db.Collection("students"),
	}
}

// RegisterUser creates a user account with a bcrypt-hashed password.
// Duplicate usernames surface as ErrDuplicateUsername via the unique index.
func (s *Store) RegisterUser(ctx context.Context, username, email, password string) error {
	hash, err := authutil.HashPassword(password)
	if err != nil {
		return err
	}
	u := models.User{
		ID:           primitive.NewObjectID(),
		Username:     normalize.Username(username),
		Email:        normalize.Email(email),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := s.users.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateUsername
		}
		return err
	}
	return nil
}

// LoginUser verifies a username/password pair.
func (s *Store) LoginUser(ctx context.Context, username, password string) error {
	var u models.User
	err := s.users.FindOne(ctx, bson.M{"username": normalize.Username(username)}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrInvalidCredentials
		}
		return err
	}
	if !authutil.CheckPassword(u.PasswordHash, password) {
		return ErrInvalidCredentials
	}
	return nil
}

// RegisterStudent creates a student account keyed by email. The password is
// hashed exactly like a user's.
func (s *Store) RegisterStudent(ctx context.Context, name, email, password, course string) error {
	hash, err := authutil.HashPassword(password)
	if err != nil {
		return err
	}
	st := models.Student{
		ID:           primitive.NewObjectID(),
		Name:         normalize.Name(name),
		Email:        normalize.Email(email),
		PasswordHash: hash,
		Course:       course,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := s.students.InsertOne(ctx, st); err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateStudent
		}
		return err
	}
	return nil
}

// LoginStudent verifies an email/password pair.
func (s *Store) LoginStudent(ctx context.Context, email, password string) error {
	var st models.Student
	err := s.students.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&st)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrInvalidCredentials
		}
		return err
	}
	if !authutil.CheckPassword(st.PasswordHash, password) {
		return ErrInvalidCredentials
	}
	return nil
}
