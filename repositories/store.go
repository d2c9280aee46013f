package repositories

import "github.com/shpjp/quicker-api/models"

// Scope selects the collections a transaction locks.
type Scope uint8

const (
	Users Scope = 1 << iota
	Tweets
	Likes
	Follows
)

// Store owns the four entity collections. Each collection has its own lock;
// transactions spanning several of them always acquire Users, Tweets, Likes,
// Follows in that order and release in reverse.
type Store struct {
	Users   *Collection[models.User]
	Tweets  *Collection[models.Tweet]
	Likes   *Collection[models.Like]
	Follows *Collection[models.Follow]
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		Users:   NewCollection[models.User](),
		Tweets:  NewCollection[models.Tweet](),
		Likes:   NewCollection[models.Like](),
		Follows: NewCollection[models.Follow](),
	}
}

// Tx exposes the tables locked for one transaction. Tables outside the
// requested scope are nil.
type Tx struct {
	Users   *Table[models.User]
	Tweets  *Table[models.Tweet]
	Likes   *Table[models.Like]
	Follows *Table[models.Follow]
}

// Update runs fn with exclusive locks on every collection in scope.
// fn must not call back into the Store.
func (s *Store) Update(scope Scope, fn func(tx *Tx) error) error {
	tx, unlock := s.lock(scope, true)
	defer unlock()
	return fn(tx)
}

// View runs fn with shared locks on every collection in scope.
// fn must only read.
func (s *Store) View(scope Scope, fn func(tx *Tx) error) error {
	tx, unlock := s.lock(scope, false)
	defer unlock()
	return fn(tx)
}

func (s *Store) lock(scope Scope, write bool) (*Tx, func()) {
	tx := &Tx{}
	var unlocks []func()
	grab := func(l interface {
		Lock()
		Unlock()
		RLock()
		RUnlock()
	}) {
		if write {
			l.Lock()
			unlocks = append(unlocks, l.Unlock)
		} else {
			l.RLock()
			unlocks = append(unlocks, l.RUnlock)
		}
	}

	if scope&Users != 0 {
		grab(&s.Users.mu)
		tx.Users = &s.Users.t
	}
	if scope&Tweets != 0 {
		grab(&s.Tweets.mu)
		tx.Tweets = &s.Tweets.t
	}
	if scope&Likes != 0 {
		grab(&s.Likes.mu)
		tx.Likes = &s.Likes.t
	}
	if scope&Follows != 0 {
		grab(&s.Follows.mu)
		tx.Follows = &s.Follows.t
	}

	return tx, func() {
		for i := len(unlocks) - 1; i >= 0; i-- {
			unlocks[i]()
		}
	}
}

// Counts reports the number of records per collection. Each collection is
// read under its own lock, so the figures are not a single snapshot.
type Counts struct {
	Users, Tweets, Likes, Follows int
}

func (s *Store) Counts() Counts {
	return Counts{
		Users:   s.Users.Len(),
		Tweets:  s.Tweets.Len(),
		Likes:   s.Likes.Len(),
		Follows: s.Follows.Len(),
	}
}
