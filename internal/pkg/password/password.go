package password

import (
	"service-broker/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyPassword = errs.Mark(errs.New("password must not be empty"), errs.ErrValidation)
	ErrCorruptHash   = errs.New("stored password hash is unusable")
)

// Cost is the bcrypt work factor for newly stored hashes.
var Cost = bcrypt.DefaultCost

func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", errs.Wrap(err, "hash password")
	}
	return string(hashed), nil
}

// Matches reports whether plain matches hashed. A mismatch is (false, nil);
// an error means the stored hash itself cannot be checked.
func Matches(hashed, plain string) (bool, error) {
	if plain == "" {
		return false, nil
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, errs.Mark(errs.Wrap(err, "compare password"), ErrCorruptHash)
	}
}
