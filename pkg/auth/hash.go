package auth

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=hash.go -destination=mock_hash.go -package=auth

// Hasher produces salted one-way hashes for passwords and PINs.
type Hasher interface {
	Hash(secret string) (string, error)
	Compare(hash, secret string) bool
}

var ErrEmptySecret = errors.New("secret cannot be empty")

var placeholderHash = sync.OnceValue(func() string {
	hash, err := bcrypt.GenerateFromPassword([]byte("dojoledger-placeholder"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
})

// PlaceholderHash is a bcrypt hash at the default cost that matches no user secret. Comparing
// against it for unknown accounts makes a miss cost as much as a mismatch.
func PlaceholderHash() string {
	return placeholderHash()
}

type BcryptHasher struct {
	Cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{Cost: bcrypt.DefaultCost}
}

func (b *BcryptHasher) Hash(secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}

	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare never matches an empty hash or an empty secret.
func (b *BcryptHasher) Compare(hash, secret string) bool {
	if hash == "" || secret == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
